package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avelasco/reel/internal/formatter"
	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/shared"
	"github.com/avelasco/reel/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Lookup queries the metadata provider for a title and prints the result.
//
// A miss is reported as a warning rather than a failure so shell pipelines
// can probe for titles without aborting.
func (r *Runner) Lookup(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")

	if title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrMissingArgument)
	}
	if r.provider == nil {
		return fmt.Errorf("%w: no metadata provider configured", shared.ErrInvalidConfig)
	}

	movie, err := r.provider.Lookup(ctx, title)
	if err != nil {
		if errors.Is(err, shared.ErrTitleNotFound) {
			r.logger.Warn("title not found", "title", title)
			r.writePlain("No match for %q.\n", title)
			return nil
		}
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(movie, cmd.Bool("pretty"))
	}

	r.writePlain("%s (%s)\n", movie.Title, movie.Year)
	r.writePlain("  Director: %s\n", movie.Director)
	r.writePlain("  Genre:    %s\n", movie.Genre)
	if movie.ImdbRating != "" && movie.ImdbRating != "N/A" {
		r.writePlain("  IMDb:     %s\n", movie.ImdbRating)
	}
	if movie.Plot != "" && movie.Plot != "N/A" {
		r.writePlain("  %s\n", movie.Plot)
	}
	return nil
}

// Add fetches a title from the metadata provider and saves it to the
// account's watchlist. Adding a title that is already present is a no-op.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrMissingArgument)
	}

	status, err := models.ParseStatus(cmd.String("status"))
	if err != nil {
		return err
	}

	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	user, err := r.resolveUser(s, cmd)
	if err != nil {
		return err
	}

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := s.engine.FetchAndAdd(ctx, progressCh, user.ID(), title, status)
	close(progressCh)
	<-done

	if err != nil {
		if errors.Is(err, shared.ErrTitleNotFound) {
			r.writePlain("No match for %q; nothing added.\n", title)
			return nil
		}
		return err
	}

	if result.Duplicate {
		r.writePlain("%s is already on your watchlist.\n", result.Movie.Title)
		return nil
	}

	r.writePlain("Added %s (%s) as %s.\n", result.Movie.Title, result.Movie.Year, result.Entry.Status())
	return nil
}

// List prints the account's watchlist, optionally filtered by status and
// exported to CSV or Markdown.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	user, err := r.resolveUser(s, cmd)
	if err != nil {
		return err
	}

	var entries []*models.Entry
	if filter := cmd.String("status"); filter != "" {
		status, err := models.ParseStatus(filter)
		if err != nil {
			return err
		}
		entries, err = s.entries.ListByStatus(user.ID(), status)
		if err != nil {
			return err
		}
	} else {
		entries, err = s.entries.List(user.ID())
		if err != nil {
			return err
		}
	}

	var data []byte
	switch format := strings.ToLower(cmd.String("format")); format {
	case "json":
		return r.writeJSON(entriesToRows(entries), true)
	case "csv":
		data, err = formatter.ExportToCSV(entries)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(user.Username(), entries)
	case "text", "":
		data, err = formatter.ExportToText(user.Username(), entries)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return err
	}

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := formatter.SaveToFile(outputPath, data); err != nil {
			return err
		}
		r.writePlain("Wrote %d entries to %s\n", len(entries), outputPath)
		return nil
	}

	return r.writePlain("%s", data)
}

// entryRow is the JSON projection of a watchlist entry.
type entryRow struct {
	ID        string `json:"id"`
	ImdbID    string `json:"imdb_id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Director  string `json:"director"`
	Genre     string `json:"genre"`
	Status    string `json:"status"`
	Rating    *int   `json:"rating"`
	DateAdded string `json:"date_added"`
}

func entriesToRows(entries []*models.Entry) []entryRow {
	rows := make([]entryRow, 0, len(entries))
	for _, e := range entries {
		movie := e.Movie()
		rows = append(rows, entryRow{
			ID:        e.ID(),
			ImdbID:    movie.ImdbID,
			Title:     movie.Title,
			Year:      movie.Year,
			Director:  movie.Director,
			Genre:     movie.Genre,
			Status:    string(e.Status()),
			Rating:    e.Rating(),
			DateAdded: e.DateAdded().Format("2006-01-02"),
		})
	}
	return rows
}
