package main

import (
	"context"
	"errors"
	"os"

	"github.com/avelasco/reel/internal/services"
	"github.com/avelasco/reel/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	provider := services.NewOMDBService(services.OMDBOpts{
		APIKey:    config.Credentials.OMDB.APIKey,
		BaseURL:   config.Credentials.OMDB.BaseURL,
		Plot:      config.Credentials.OMDB.Plot,
		RateLimit: config.Credentials.OMDB.RateLimit,
		Logger:    logger,
	})

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Provider: provider,
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "reel",
		Usage:    "Track movies you want to watch and rate the ones you have",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrMissingAPIKey) {
			logger.Fatal("no OMDb API key configured, run 'reel setup' and edit config.toml")
		}
		logger.Fatalf("application error: %v", err)
	}
}
