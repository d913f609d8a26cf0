// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func userFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:     "user",
			Aliases:  []string{"u"},
			Usage:    "Account username",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Aliases:  []string{"p"},
			Usage:    "Account password",
			Required: true,
		},
	}
}

// setupCommand handles database and configuration bootstrap.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize config file, database, and run migrations",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// accountCommand handles account operations
func accountCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage accounts",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a new account",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "username"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password (minimum 4 characters)",
						Required: true,
					},
				},
				Action: r.AccountCreate,
			},
			{
				Name:  "login",
				Usage: "Verify credentials and print the account id",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "username"},
				},
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AccountLogin,
			},
		},
	}
}

// lookupCommand queries the metadata provider without touching the watchlist.
func lookupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "Look up a movie title against the metadata provider",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "title"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Lookup,
	}
}

// addCommand looks up a title and saves it to the account's watchlist.
func addCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Fetch a title and add it to your watchlist",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "title"},
		},
		Flags: append(userFlags(),
			&cli.StringFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "Initial status: want or watched",
				Value:   "want",
			},
		),
		Action: r.Add,
	}
}

// listCommand prints or exports the account's watchlist.
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List watchlist entries",
		Flags: append(userFlags(),
			&cli.StringFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "Filter by status: want or watched",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, csv, or markdown",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to a file instead of stdout",
			},
		),
		Action: r.List,
	}
}

// entryCommand mutates individual watchlist rows.
func entryCommand(r *Runner) *cli.Command {
	idFlag := func() *cli.StringFlag {
		return &cli.StringFlag{
			Name:     "id",
			Usage:    "Entry id",
			Required: true,
		}
	}

	return &cli.Command{
		Name:  "entry",
		Usage: "Update or delete a single watchlist entry",
		Commands: []*cli.Command{
			{
				Name:  "status",
				Usage: "Move an entry between 'Want to Watch' and 'Watched'",
				Flags: []cli.Flag{
					configFlag(),
					idFlag(),
					&cli.StringFlag{
						Name:     "to",
						Usage:    "New status: want or watched",
						Required: true,
					},
				},
				Action: r.EntryStatus,
			},
			{
				Name:  "rate",
				Usage: "Rate a watched entry (1-5), or clear the rating",
				Flags: []cli.Flag{
					configFlag(),
					idFlag(),
					&cli.IntFlag{
						Name:    "rating",
						Aliases: []string{"r"},
						Usage:   "Rating from 1 to 5",
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Clear the rating",
					},
				},
				Action: r.EntryRate,
			},
			{
				Name:   "delete",
				Usage:  "Delete an entry",
				Flags:  []cli.Flag{configFlag(), idFlag()},
				Action: r.EntryDelete,
			},
		},
	}
}

// clearCommand deletes every entry for an account, gated on --yes.
func clearCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Delete every entry on your watchlist",
		Flags: append(userFlags(),
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "Confirm deletion; without it nothing is removed",
			},
		),
		Action: r.Clear,
	}
}

// tuiCommand returns the top-level TUI command for interactive watchlist management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
