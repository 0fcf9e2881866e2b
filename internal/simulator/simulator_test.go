package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyonebust/cards"
	"github.com/lox/twentyonebust/internal/bot"
	"github.com/lox/twentyonebust/internal/game"
	"github.com/lox/twentyonebust/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no rounds", Config{Rounds: 0, Players: 4}},
		{"negative tables", Config{Rounds: 1, Tables: -1, Players: 4}},
		{"too few players", Config{Rounds: 1, Players: 1}},
		{"too many players", Config{Rounds: 1, Players: 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	sim, err := New(Config{Rounds: 5, Players: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, sim.config.Tables)
	assert.Positive(t, sim.config.Workers)
	assert.NotNil(t, sim.config.Logger)
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()
	cfg := Config{Rounds: 50, Tables: 6, Players: 5, Seed: 42, Logger: quietLogger()}

	run := func(workers int) string {
		cfg := cfg
		cfg.Workers = workers
		sim, err := New(cfg)
		require.NoError(t, err)
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats.Summary()
	}

	first := run(1)
	assert.Equal(t, first, run(1))
	assert.Equal(t, first, run(4))
}

func TestRunCountsEveryRound(t *testing.T) {
	t.Parallel()
	sim, err := New(Config{Rounds: 40, Tables: 3, Players: 4, Seed: 42, Workers: 2, Logger: quietLogger()})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, stats.Validate())

	assert.Equal(t, 120, stats.Rounds)
	assert.Len(t, stats.Players, 4)
	for _, name := range []string{"Adam", "Betty", "Chris", "Denise"} {
		require.Contains(t, stats.Players, name)
		ps := stats.Players[name]
		assert.Equal(t, 120, ps.Rounds)
		assert.Equal(t, ps.Rounds, ps.Sticks+ps.Busts)
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	t.Parallel()
	sim, err := New(Config{Rounds: 1000, Tables: 4, Players: 4, Seed: 42})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayRoundResetsTheGame(t *testing.T) {
	t.Parallel()
	rng := randutil.New(42)
	g := game.NewGame("Round", game.WithRNG(rng))
	for i, name := range []string{"Ann", "Bob", "Cat"} {
		s, err := bot.New(rng)
		require.NoError(t, err)
		require.NoError(t, g.AddPlayer(game.NewPlayer(i, name, s)))
	}

	for range 20 {
		result, err := PlayRound(g)
		require.NoError(t, err)
		require.Len(t, result.Players, 3)

		assert.Equal(t, game.Dealing, g.State())
		assert.Equal(t, cards.Size, g.Deck().Remaining())
		for _, r := range result.Players {
			if r.Won {
				assert.Equal(t, game.Stick, r.State)
				assert.LessOrEqual(t, r.Total, game.BustLimit)
			}
			if r.State == game.Bust {
				assert.Greater(t, r.Total, game.BustLimit)
			}
		}
	}
}

func TestPlayRoundRejectsHumans(t *testing.T) {
	t.Parallel()
	g := game.NewGame("Round", game.WithRNG(randutil.New(42)))
	require.NoError(t, g.AddPlayer(game.NewPlayer(0, "Human", nil)))
	require.NoError(t, g.AddPlayer(game.NewPlayer(1, "Bot", &bot.ActionSelector{LowTarget: 15, HighTarget: 18})))

	_, err := PlayRound(g)
	assert.ErrorContains(t, err, "no decider")
}
