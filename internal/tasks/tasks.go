// package tasks orchestrates lookup and watchlist operations.
//
// The core abstraction is WatchlistEngine, which ties the metadata provider
// to the persistence layer: one lookup followed by a short sequence of
// sequential persistence calls, with no background work or retries.
// Operations emit progress updates via channels for non-blocking status
// reporting to CLI/UI layers.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/services"
	"github.com/avelasco/reel/internal/shared"
)

// EntryStore defines the persistence operations the engine depends on.
// This abstraction allows for easier testing and decoupling from concrete implementation.
type EntryStore interface {
	Add(userID string, movie models.Movie, status models.Status) (*models.Entry, error)
	List(userID string) ([]*models.Entry, error)
	ListByStatus(userID string, status models.Status) ([]*models.Entry, error)
	UpdateStatus(entryID string, status models.Status) error
	UpdateRating(entryID string, rating *int) error
	Delete(entryID string) error
	DeleteAll(userID string) (int, error)
}

// FetchAddResult contains all data from a fetch-and-add operation.
type FetchAddResult struct {
	Movie     *models.Movie // Normalized lookup record
	Entry     *models.Entry // Inserted row (nil when Duplicate is true)
	Duplicate bool          // The catalog item was already on this account's list
}

// WatchlistSnapshot groups an account's entries by status for display.
type WatchlistSnapshot struct {
	WantToWatch []*models.Entry
	Watched     []*models.Entry
}

// Total returns the number of entries across both buckets.
func (s *WatchlistSnapshot) Total() int {
	return len(s.WantToWatch) + len(s.Watched)
}

// WatchlistEngine coordinates the metadata provider and the entry store.
type WatchlistEngine struct {
	provider services.MovieService
	entries  EntryStore
}

// NewWatchlistEngine creates a new WatchlistEngine with the provided dependencies.
func NewWatchlistEngine(provider services.MovieService, entries EntryStore) *WatchlistEngine {
	return &WatchlistEngine{provider: provider, entries: entries}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *WatchlistEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// FetchAndAdd looks up a title and inserts it into the account's watchlist.
//
// A provider miss surfaces as [shared.ErrTitleNotFound]; a duplicate add is
// reported through the result rather than as an error, so callers can show
// a non-blocking warning and let the user retry immediately.
func (e *WatchlistEngine) FetchAndAdd(ctx context.Context, progress chan<- ProgressUpdate, userID, title string, status models.Status) (*FetchAddResult, error) {
	if e.provider == nil {
		return nil, fmt.Errorf("%w: metadata provider not initialized", shared.ErrInvalidConfig)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: account id cannot be empty", shared.ErrInvalidInput)
	}

	e.sendProgress(progress, lookupTitleUpdate(title))

	movie, err := e.provider.Lookup(ctx, title)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, foundTitleUpdate(movie))
	e.sendProgress(progress, saveEntryUpdate(movie, status))

	result := &FetchAddResult{Movie: movie}

	entry, err := e.entries.Add(userID, *movie, status)
	if errors.Is(err, shared.ErrDuplicateEntry) {
		result.Duplicate = true
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	result.Entry = entry
	return result, nil
}

// Snapshot loads the account's entries grouped by status.
func (e *WatchlistEngine) Snapshot(ctx context.Context, progress chan<- ProgressUpdate, userID string) (*WatchlistSnapshot, error) {
	e.sendProgress(progress, loadEntriesUpdate(1, 2))

	want, err := e.entries.ListByStatus(userID, models.WantToWatch)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, loadEntriesUpdate(2, 2))

	watched, err := e.entries.ListByStatus(userID, models.Watched)
	if err != nil {
		return nil, err
	}

	return &WatchlistSnapshot{WantToWatch: want, Watched: watched}, nil
}

// ClearAll removes every entry for the account and returns the deleted count.
func (e *WatchlistEngine) ClearAll(ctx context.Context, userID string) (int, error) {
	return e.entries.DeleteAll(userID)
}
