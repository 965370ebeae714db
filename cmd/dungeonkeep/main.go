// Package main is the entry point for DungeonKeep.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/dungeonkeep/internal/game"
	"github.com/samdwyer/dungeonkeep/internal/logger"
	"github.com/samdwyer/dungeonkeep/internal/telemetry"
)

var version = "dev"

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONKEEP_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cmd := &cli.Command{
		Name:    "dungeonkeep",
		Usage:   "dig out a dungeon from the terminal",
		Version: version,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "map seed, 0 picks one from the clock",
				Sources: cli.EnvVars("KEEPER_SEED"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "right click digs and claims, selection always drawn",
				Sources: cli.EnvVars("KEEPER_DEBUG"),
			},
			&cli.BoolFlag{
				Name:    "cursors",
				Usage:   "show the cursor glyph in the status bar",
				Value:   true,
				Sources: cli.EnvVars("KEEPER_CURSORS"),
			},
			&cli.IntFlag{
				Name:    "imps",
				Usage:   "workers the keeper starts with",
				Value:   3,
				Sources: cli.EnvVars("KEEPER_IMPS"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Usage:   "frame interval for creature jobs",
				Value:   game.DefaultTick,
				Sources: cli.EnvVars("KEEPER_TICK"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs here instead of stderr",
				Value:   "dungeonkeep.log",
				Sources: cli.EnvVars("KEEPER_LOG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Sources: cli.EnvVars("LOG_FORMAT"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	closer, err := logger.Init(logger.Options{
		Level:  cmd.String("log-level"),
		Format: cmd.String("log-format"),
		File:   cmd.String("log-file"),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closer.Close()
	l := logger.For("main")

	shutdown, err := telemetry.Setup(ctx, otelOptions())
	if err != nil {
		// Continue without telemetry - game still works
		l.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				l.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	g, err := game.New(game.Config{
		Seed:       cmd.Int64("seed"),
		Debug:      cmd.Bool("debug"),
		UseCursors: cmd.Bool("cursors"),
		Tick:       cmd.Duration("tick"),
		Imps:       cmd.Int("imps"),
	})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	l.WithField("version", version).Info("starting")
	return g.Run(ctx)
}

// otelOptions points the exporter at Honeycomb when an API key is set.
// Otherwise the standard OTEL_* variables decide.
func otelOptions() telemetry.Options {
	opts := telemetry.Options{Version: version}

	apiKey := os.Getenv("HONEYCOMB_DUNGEONKEEP_API_KEY")
	if apiKey == "" {
		return opts
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONKEEP_DATASET")
	if dataset == "" {
		dataset = "dungeonkeep"
	}
	opts.Endpoint = "https://api.honeycomb.io"
	opts.Headers = map[string]string{
		"x-honeycomb-team":    apiKey,
		"x-honeycomb-dataset": dataset,
	}
	return opts
}
