package main

import (
	"context"
	"fmt"

	"github.com/avelasco/reel/internal/shared"
	"github.com/avelasco/reel/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for watchlist management.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.provider == nil {
		return fmt.Errorf("%w: no metadata provider configured", shared.ErrInvalidConfig)
	}

	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/reel-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, s.users, s.entries, s.engine)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
