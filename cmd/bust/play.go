package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/twentyonebust/internal/config"
	"github.com/lox/twentyonebust/internal/console"
	"github.com/lox/twentyonebust/internal/game"
	"github.com/lox/twentyonebust/internal/randutil"
)

// PlayCmd plays an interactive game at the console
type PlayCmd struct {
	Config    string `kong:"default='bust.hcl',help='Path to the HCL table config (optional)'"`
	Seed      *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Name      string `kong:"help='Your name, asked for when not given'"`
	Opponents int    `kong:"help='Number of opponents (3 to 9), asked for when not given'"`
	LogFile   string `kong:"help='File to write logs to, overrides the config'"`
	LogLevel  string `kong:"help='Log level, overrides the config'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}

	logger, closeLog, err := newFileLogger(cfg.Log.File, cfg.Log.Level, "bust")
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := c.consoleOptions(cfg)
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	rng, seed := randutil.FromClock(clock, cfg.Game.Seed)
	logger.Info("Starting game", "name", cfg.Game.Name, "seed", seed)

	g := game.NewGame(cfg.Game.Name, game.WithRNG(rng), game.WithLogger(logger))
	opts = append(opts,
		console.WithClock(clock),
		console.WithLogger(logger),
		console.WithRNG(rng),
	)

	ctx, cancel := signalContext(logger)
	defer cancel()

	err = console.New(g, opts...).Run(ctx)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, console.ErrInputClosed):
		logger.Info("Game ended early", "reason", err)
		return nil
	case err != nil:
		logger.Error("Game failed", "error", err)
		return err
	}
	logger.Info("Game finished")
	return nil
}

// consoleOptions turns config and flags into console options. Opponents
// named in the config win over the --opponents flag.
func (c *PlayCmd) consoleOptions(cfg *config.Config) ([]console.Option, error) {
	pauses, err := cfg.Pauses()
	if err != nil {
		return nil, err
	}
	opts := []console.Option{console.WithPauses(pauses)}

	// until the count is asked for, any default name could be seated
	roster := cfg.OpponentRoster(config.MaxOpponents)
	switch {
	case len(cfg.Opponents) > 0:
		opts = append(opts, console.WithRoster(roster))
	case c.Opponents != 0:
		if c.Opponents < config.MinOpponents || c.Opponents > config.MaxOpponents {
			return nil, fmt.Errorf("opponents must be between %d and %d, got %d",
				config.MinOpponents, config.MaxOpponents, c.Opponents)
		}
		roster = cfg.OpponentRoster(c.Opponents)
		opts = append(opts, console.WithRoster(roster))
	}

	if c.Name != "" {
		for _, o := range roster {
			if o.Name == c.Name {
				return nil, fmt.Errorf("name %s is taken by an opponent: %w", c.Name, game.ErrDuplicatePlayer)
			}
		}
		opts = append(opts, console.WithPlayerName(c.Name))
	}
	return opts, nil
}
