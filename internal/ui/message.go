package ui

import (
	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/tasks"
)

// loginDoneMsg reports the outcome of an authentication or registration attempt.
type loginDoneMsg struct {
	user *models.User
	err  error
}

// entriesLoadedMsg carries a freshly loaded watchlist.
type entriesLoadedMsg struct {
	entries []*models.Entry
	err     error
}

// addDoneMsg reports the outcome of a lookup-and-add.
type addDoneMsg struct {
	result *tasks.FetchAddResult
	err    error
}

// entryUpdatedMsg reports the outcome of a status, rating, or delete mutation.
type entryUpdatedMsg struct {
	err error
}

// clearedMsg reports the outcome of a clear-all.
type clearedMsg struct {
	count int
	err   error
}

// progressUpdateMsg forwards engine progress into the Elm loop.
type progressUpdateMsg tasks.ProgressUpdate
