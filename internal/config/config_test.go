package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyonebust/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bust.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "21 Bust", cfg.Game.Name)
	assert.Equal(t, "info", cfg.Log.Level)

	pauses, err := cfg.Pauses()
	require.NoError(t, err)
	assert.Equal(t, Pauses{Short: time.Second, Medium: 3 * time.Second, Long: 5 * time.Second}, pauses)
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
game {
  name        = "Friday night"
  seed        = 42
  short_pause = "0s"
  long_pause  = "500ms"
}

opponent "Ann" {
  low_target  = 14
  high_target = 19
}
opponent "Bob" {}
opponent "Cat" {
  low_target = 20
}

log {
  level = "debug"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Friday night", cfg.Game.Name)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "bust.log", cfg.Log.File)

	pauses, err := cfg.Pauses()
	require.NoError(t, err)
	assert.Zero(t, pauses.Short)
	assert.Equal(t, 3*time.Second, pauses.Medium)
	assert.Equal(t, 500*time.Millisecond, pauses.Long)

	require.Len(t, cfg.Opponents, 3)
	assert.Equal(t, "Ann", cfg.Opponents[0].Name)
	require.NotNil(t, cfg.Opponents[0].LowTarget)
	assert.Equal(t, 14, *cfg.Opponents[0].LowTarget)
	assert.Equal(t, 19, *cfg.Opponents[0].HighTarget)
	assert.Nil(t, cfg.Opponents[1].LowTarget)
	assert.Nil(t, cfg.Opponents[2].HighTarget)
	assert.Equal(t, cfg.Opponents, cfg.OpponentRoster(8))
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"syntax", `game {`, "failed to parse"},
		{"unknown attribute", `game { players = 3 }`, "failed to decode"},
		{"bad duration", `game { short_pause = "soon" }`, "short_pause"},
		{"negative duration", `game { long_pause = "-1s" }`, "long_pause"},
		{"too few opponents", `opponent "A" {}`, "need between 3 and 9"},
		{"target out of range", `
opponent "A" { high_target = 22 }
opponent "B" {}
opponent "C" {}`, "target 22"},
		{"targets inverted", `
opponent "A" {
  low_target  = 18
  high_target = 14
}
opponent "B" {}
opponent "C" {}`, "above high target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadRejectsDuplicateOpponents(t *testing.T) {
	t.Parallel()
	_, err := Load(writeConfig(t, `
opponent "A" {}
opponent "B" {}
opponent "A" {}`))
	assert.ErrorIs(t, err, game.ErrDuplicatePlayer)
}

func TestOpponentRosterDefaults(t *testing.T) {
	t.Parallel()
	cfg := Default()

	roster := cfg.OpponentRoster(4)
	require.Len(t, roster, 4)
	assert.Equal(t, "Adam", roster[0].Name)
	assert.Equal(t, "Denise", roster[3].Name)

	assert.Len(t, cfg.OpponentRoster(1), MinOpponents)
	assert.Len(t, cfg.OpponentRoster(20), MaxOpponents)
	assert.Equal(t, "Jake", cfg.OpponentRoster(9)[8].Name)
}
