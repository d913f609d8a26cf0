package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// EntryStatus moves an entry between the two watchlist states. Moving an
// entry back to 'Want to Watch' clears any rating it carried.
func (r *Runner) EntryStatus(ctx context.Context, cmd *cli.Command) error {
	entryID := cmd.String("id")

	status, err := models.ParseStatus(cmd.String("to"))
	if err != nil {
		return err
	}

	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.entries.UpdateStatus(entryID, status); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("no entry with id %s", entryID)
		}
		return err
	}

	r.writePlain("Entry %s moved to %s.\n", entryID, status)
	return nil
}

// EntryRate sets or clears the rating on a watched entry.
func (r *Runner) EntryRate(ctx context.Context, cmd *cli.Command) error {
	entryID := cmd.String("id")

	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	if cmd.Bool("clear") {
		if err := s.entries.UpdateRating(entryID, nil); err != nil {
			return err
		}
		r.writePlain("Rating cleared for entry %s.\n", entryID)
		return nil
	}

	rating := int(cmd.Int("rating"))
	if err := models.ValidateRating(&rating); err != nil {
		return err
	}

	if err := s.entries.UpdateRating(entryID, &rating); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("no watched entry with id %s; only watched movies can be rated", entryID)
		}
		return err
	}

	r.writePlain("Rated entry %s: %d/5.\n", entryID, rating)
	return nil
}

// EntryDelete removes a single entry from the watchlist.
func (r *Runner) EntryDelete(ctx context.Context, cmd *cli.Command) error {
	entryID := cmd.String("id")

	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.entries.Delete(entryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("no entry with id %s", entryID)
		}
		return err
	}

	r.writePlain("Entry %s deleted.\n", entryID)
	return nil
}

// Clear deletes every entry on the account's watchlist. Requires --yes.
func (r *Runner) Clear(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("yes") {
		r.writePlain("This removes every entry on your watchlist. Re-run with --yes to confirm.\n")
		return nil
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

	count, err := s.engine.ClearAll(ctx, user.ID())
	if err != nil {
		return err
	}

	r.writePlain("Removed %d entries.\n", count)
	return nil
}
