package tasks

import (
	"fmt"

	"github.com/avelasco/reel/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	LookupTitle Phase = iota
	SaveEntry
	LoadEntries
	ClearEntries
)

func (p Phase) String() string {
	switch p {
	case LookupTitle:
		return "lookup_title"
	case SaveEntry:
		return "save_entry"
	case LoadEntries:
		return "load_entries"
	case ClearEntries:
		return "clear_entries"
	default:
		return ""
	}
}

func lookupTitleUpdate(title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LookupTitle,
		Step:    1,
		Total:   2,
		Message: fmt.Sprintf("Looking up '%s'...", title),
	}
}

func foundTitleUpdate(movie *models.Movie) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LookupTitle,
		Step:    1,
		Total:   2,
		Message: fmt.Sprintf("Found '%s' (%s)", movie.Title, movie.Year),
		Data:    movie,
	}
}

func saveEntryUpdate(movie *models.Movie, status models.Status) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SaveEntry,
		Step:    2,
		Total:   2,
		Message: fmt.Sprintf("Saving '%s' as '%s'...", movie.Title, status),
	}
}

func loadEntriesUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadEntries,
		Step:    step,
		Total:   total,
		Message: "Loading watchlist...",
	}
}
