// Package simulator plays bot-only rounds of 21 Bust across many tables.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/twentyonebust/internal/bot"
	"github.com/lox/twentyonebust/internal/config"
	"github.com/lox/twentyonebust/internal/game"
	"github.com/lox/twentyonebust/internal/randutil"
	"github.com/lox/twentyonebust/internal/statistics"
)

// Table size limits
const (
	MinPlayers = 2
	MaxPlayers = 10
)

// ErrInvalidConfig is returned by New for a config that cannot run
var ErrInvalidConfig = errors.New("invalid simulator config")

// Config holds configuration for running simulations
type Config struct {
	Rounds  int   // rounds played at each table
	Tables  int   // independent tables, each with its own game and seed
	Players int   // bots at each table
	Seed    int64 // table i is seeded Seed+i
	Workers int   // tables played at once, defaults to the number of CPUs
	Logger  *log.Logger
}

// Simulator runs 21 Bust simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(cfg Config) (*Simulator, error) {
	if cfg.Tables == 0 {
		cfg.Tables = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	switch {
	case cfg.Rounds < 1:
		return nil, fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, cfg.Rounds)
	case cfg.Tables < 1:
		return nil, fmt.Errorf("%w: tables must be positive, got %d", ErrInvalidConfig, cfg.Tables)
	case cfg.Players < MinPlayers || cfg.Players > MaxPlayers:
		return nil, fmt.Errorf("%w: players must be between %d and %d, got %d",
			ErrInvalidConfig, MinPlayers, MaxPlayers, cfg.Players)
	}

	return &Simulator{config: cfg}, nil
}

// Run plays every table and merges the results. Table results are merged in
// table order so the outcome depends only on the config, not on scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]*statistics.Statistics, s.config.Tables)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for table := range s.config.Tables {
		g.Go(func() error {
			stats, err := s.playTable(ctx, table)
			if err != nil {
				return fmt.Errorf("table %d: %w", table, err)
			}
			results[table] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, r := range results {
		stats.Merge(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playTable plays every round at one table on a single goroutine
func (s *Simulator) playTable(ctx context.Context, table int) (*statistics.Statistics, error) {
	seed := s.config.Seed + int64(table)
	rng := randutil.New(seed)
	logger := s.config.Logger.With("table", table)

	g := game.NewGame(fmt.Sprintf("Table %d", table), game.WithRNG(rng), game.WithLogger(logger))
	for i := range s.config.Players {
		selector, err := bot.New(rng, bot.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := g.AddPlayer(game.NewPlayer(i, playerName(i), selector)); err != nil {
			return nil, err
		}
	}
	if _, err := g.RandomizeFirstPlayer(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for round := range s.config.Rounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := PlayRound(g)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		result.Seed = seed
		stats.Add(result)
	}

	logger.Debug("Table finished", "rounds", s.config.Rounds, "seed", seed)
	return stats, nil
}

func playerName(i int) string {
	if i < len(config.DefaultOpponentNames) {
		return config.DefaultOpponentNames[i]
	}
	return fmt.Sprintf("Bot %d", i+1)
}

// PlayRound plays one full round with every player deciding through its
// Decider, then resets the game for the next round.
func PlayRound(g *game.Game) (statistics.RoundResult, error) {
	if _, err := g.Deal(); err != nil {
		return statistics.RoundResult{}, err
	}

	for {
		state, err := g.NextPlayer()
		if err != nil {
			return statistics.RoundResult{}, err
		}
		if state == game.ResolvingGame {
			break
		}

		p := g.ActivePlayer()
		if p.UserControlled() {
			return statistics.RoundResult{}, fmt.Errorf("player %s has no decider", p.Name)
		}
		for state != game.GettingNextPlayer {
			if _, err := g.StartTurn(p); err != nil {
				return statistics.RoundResult{}, err
			}
			if p.Decider.ShouldStick(p.BestTotal(), g.Stats()) {
				state, err = g.ResolveStickAction(p)
			} else {
				state, _, err = g.ResolveTwistAction(p)
			}
			if err != nil {
				return statistics.RoundResult{}, err
			}
		}
	}

	_, winners, err := g.ResolveGame()
	if err != nil {
		return statistics.RoundResult{}, err
	}

	var result statistics.RoundResult
	for _, p := range g.Players() {
		result.Players = append(result.Players, statistics.PlayerResult{
			Name:  p.Name,
			State: p.State(),
			Total: p.BestTotal(),
			Won:   slices.Contains(winners, p),
		})
	}

	if _, err := g.ResetGame(winners); err != nil {
		return statistics.RoundResult{}, err
	}
	return result, nil
}
