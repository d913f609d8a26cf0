// package services defines interface MovieService for querying movie metadata providers
package services

import (
	"context"

	"github.com/avelasco/reel/internal/models"
)

// MovieService defines the interface for metadata providers that can resolve
// a movie title into a normalized record.
type MovieService interface {
	// Lookup fetches metadata for the given title.
	// Returns [shared.ErrTitleNotFound] when the provider reports no match,
	// which is an expected outcome rather than a transport failure.
	Lookup(ctx context.Context, title string) (*models.Movie, error)

	// Name returns the name of the provider (e.g., "OMDb")
	Name() string
}
