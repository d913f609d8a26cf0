package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelasco/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

// AccountCreate registers a new account with a unique username.
func (r *Runner) AccountCreate(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	password := cmd.String("password")

	if username == "" {
		return fmt.Errorf("%w: username is required", shared.ErrMissingArgument)
	}

	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	user, err := s.users.Create(username, password)
	if err != nil {
		if errors.Is(err, shared.ErrUserExists) {
			return fmt.Errorf("account %q already exists", username)
		}
		return err
	}

	r.writePlain("Account created: %s (%s)\n", user.Username(), user.ID())
	return nil
}

// AccountLogin verifies credentials and prints the account id.
func (r *Runner) AccountLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	password := cmd.String("password")

	if username == "" {
		return fmt.Errorf("%w: username is required", shared.ErrMissingArgument)
	}

	s, err := r.openStore(cmd.String("config"))
	if err != nil {
		return err
	}
	defer s.Close()

	user, err := s.users.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			return fmt.Errorf("invalid username or password")
		}
		return err
	}

	r.writePlain("Logged in as %s (%s)\n", user.Username(), user.ID())
	return nil
}
