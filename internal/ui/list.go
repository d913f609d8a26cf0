package ui

import (
	"fmt"
	"strings"

	"github.com/avelasco/reel/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = entryItem{}

// entryItem wraps [models.Entry] to implement [list.Item].
type entryItem struct {
	entry *models.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Movie().Title }
func (i entryItem) Title() string {
	movie := i.entry.Movie()
	return fmt.Sprintf("%s (%s)", movie.Title, movie.Year)
}

func (i entryItem) Description() string {
	desc := string(i.entry.Status())
	if r := i.entry.Rating(); r != nil {
		desc = fmt.Sprintf("%s • %s", desc, strings.Repeat("★", *r))
	}
	if genre := i.entry.Movie().Genre; genre != "" && genre != "N/A" {
		desc = fmt.Sprintf("%s • %s", desc, genre)
	}
	return desc
}
