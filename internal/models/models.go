package models

import (
	"time"

	"github.com/avelasco/reel/internal/shared"
)

// Model defines the base interface for all persistent models in the movie tracker.
// Implementations include [User] and [Entry].
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Status enumerates the watch state of an [Entry].
type Status string

const (
	WantToWatch Status = "Want to Watch"
	Watched     Status = "Watched"
)

// ParseStatus converts user-supplied text into a [Status].
// Accepts the canonical labels plus a few CLI-friendly spellings.
func ParseStatus(s string) (Status, error) {
	switch s {
	case string(WantToWatch), "want", "want-to-watch", "unwatched":
		return WantToWatch, nil
	case string(Watched), "watched", "seen":
		return Watched, nil
	default:
		return "", shared.ErrInvalidStatus
	}
}

// Valid reports whether the status is one of the two enumerated values.
func (s Status) Valid() bool {
	return s == WantToWatch || s == Watched
}

// Movie is the normalized record returned by a title lookup.
//
// ImdbID is the provider's opaque catalog key and serves as the natural
// key for duplicate detection within an account's watchlist.
type Movie struct {
	ImdbID     string `json:"imdb_id"`
	Title      string `json:"title"`
	Year       string `json:"year"`
	Director   string `json:"director"`
	Genre      string `json:"genre"`
	Poster     string `json:"poster"`
	Plot       string `json:"plot,omitempty"`
	Actors     string `json:"actors,omitempty"`
	Runtime    string `json:"runtime,omitempty"`
	ImdbRating string `json:"imdb_rating,omitempty"`
}
