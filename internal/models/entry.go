package models

import (
	"fmt"
	"time"

	"github.com/avelasco/reel/internal/shared"
)

// Entry represents a single watchlist row: one account, one catalog item,
// a watch status, and an optional 1-5 rating while the entry is watched.
type Entry struct {
	id        string
	userID    string
	movie     Movie
	status    Status
	rating    *int
	dateAdded time.Time
}

var _ Model = (*Entry)(nil)

// NewEntry creates an Entry for the given account and lookup record.
// The ID is assigned by the repository at insert time.
func NewEntry(userID string, movie Movie, status Status) *Entry {
	return &Entry{
		userID:    userID,
		movie:     movie,
		status:    status,
		dateAdded: time.Now(),
	}
}

func (e *Entry) ID() string           { return e.id }
func (e *Entry) UserID() string       { return e.userID }
func (e *Entry) Movie() Movie         { return e.movie }
func (e *Entry) ImdbID() string       { return e.movie.ImdbID }
func (e *Entry) Status() Status       { return e.status }
func (e *Entry) CreatedAt() time.Time { return e.dateAdded }
func (e *Entry) DateAdded() time.Time { return e.dateAdded }

// Rating returns the user rating, or nil when the entry is unrated.
func (e *Entry) Rating() *int { return e.rating }

func (e *Entry) SetID(id string)          { e.id = id }
func (e *Entry) SetStatus(s Status)       { e.status = s }
func (e *Entry) SetRating(r *int)         { e.rating = r }
func (e *Entry) SetDateAdded(t time.Time) { e.dateAdded = t }

// Validate checks the entry invariants before persistence.
func (e *Entry) Validate() error {
	if e.userID == "" {
		return fmt.Errorf("%w: entry requires an account id", shared.ErrInvalidInput)
	}
	if e.movie.ImdbID == "" {
		return fmt.Errorf("%w: entry requires a catalog id", shared.ErrInvalidInput)
	}
	if !e.status.Valid() {
		return fmt.Errorf("%w: %q", shared.ErrInvalidStatus, e.status)
	}
	if err := ValidateRating(e.rating); err != nil {
		return err
	}
	return nil
}

// ValidateRating checks an optional rating. A nil rating is always valid.
func ValidateRating(r *int) error {
	if r != nil && (*r < 1 || *r > 5) {
		return fmt.Errorf("%w: got %d", shared.ErrInvalidRating, *r)
	}
	return nil
}
