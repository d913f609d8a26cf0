package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/repositories"
	"github.com/avelasco/reel/internal/services"
	"github.com/avelasco/reel/internal/shared"
	"github.com/avelasco/reel/internal/tasks"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	provider   services.MovieService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Provider   services.MovieService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		provider:   opts.Provider,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the Runner's logger. Used by the TUI to redirect logs
// away from the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, accountCommand, lookupCommand, addCommand, listCommand, entryCommand, clearCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// store bundles an open database with the repositories and engine built on it.
// Each command action opens its own store and closes it before returning.
type store struct {
	db      *sql.DB
	users   *repositories.UserRepository
	entries *repositories.EntryRepository
	engine  *tasks.WatchlistEngine
}

func (s *store) Close() error {
	return s.db.Close()
}

// loadConfig reads the config file at path, falling back to the embedded defaults.
func (r *Runner) loadConfig(path string) *shared.Config {
	if _, err := os.Stat(path); err == nil {
		if config, err := shared.LoadConfig(path); err == nil {
			return config
		} else {
			r.logger.Warn("failed to load config, using defaults", "error", err)
		}
	}
	return r.config
}

// openStore opens the configured database and builds the persistence layer on it.
func (r *Runner) openStore(configPath string) (*store, error) {
	config := r.loadConfig(configPath)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	users := repositories.NewUserRepository(db, r.logger)
	entries := repositories.NewEntryRepository(db, r.logger)

	return &store{
		db:      db,
		users:   users,
		entries: entries,
		engine:  tasks.NewWatchlistEngine(r.provider, entries),
	}, nil
}

// resolveUser authenticates the account named by the --user/--password flags.
// Persistence calls are always scoped to the returned account; there is no
// ambient logged-in state.
func (r *Runner) resolveUser(s *store, cmd *cli.Command) (*models.User, error) {
	username := cmd.String("user")
	password := cmd.String("password")

	if username == "" {
		return nil, fmt.Errorf("%w: --user is required", shared.ErrMissingArgument)
	}

	return s.users.Authenticate(username, password)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
