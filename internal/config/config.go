// Package config loads the HCL file describing a table of 21 Bust.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/twentyonebust/internal/game"
)

// Limits on the number of opponents at a console table
const (
	MinOpponents = 3
	MaxOpponents = 9
)

// DefaultOpponentNames are used when the file names no opponents
var DefaultOpponentNames = []string{
	"Adam", "Betty", "Chris", "Denise", "Ethan", "Francesca", "Gregory", "Harriet", "Jake",
}

// Config represents a complete table configuration
type Config struct {
	Game      *GameSettings    `hcl:"game,block"`
	Opponents []OpponentConfig `hcl:"opponent,block"`
	Log       *LogSettings     `hcl:"log,block"`
}

// GameSettings holds table-level settings
type GameSettings struct {
	Name        string `hcl:"name,optional"`
	Seed        int64  `hcl:"seed,optional"`
	ShortPause  string `hcl:"short_pause,optional"`
	MediumPause string `hcl:"medium_pause,optional"`
	LongPause   string `hcl:"long_pause,optional"`
}

// OpponentConfig names an app controlled opponent. Targets left unset are
// drawn at random when the opponent sits down.
type OpponentConfig struct {
	Name       string `hcl:"name,label"`
	LowTarget  *int   `hcl:"low_target,optional"`
	HighTarget *int   `hcl:"high_target,optional"`
}

// LogSettings configures the logger
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Pauses are the parsed pacing durations used by the console
type Pauses struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Name == "" {
		c.Game.Name = "21 Bust"
	}
	if c.Game.ShortPause == "" {
		c.Game.ShortPause = "1s"
	}
	if c.Game.MediumPause == "" {
		c.Game.MediumPause = "3s"
	}
	if c.Game.LongPause == "" {
		c.Game.LongPause = "5s"
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "bust.log"
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if _, err := c.Pauses(); err != nil {
		return err
	}

	if n := len(c.Opponents); n > 0 && (n < MinOpponents || n > MaxOpponents) {
		return fmt.Errorf("opponents: need between %d and %d, got %d", MinOpponents, MaxOpponents, n)
	}

	seen := make(map[string]bool, len(c.Opponents))
	for _, o := range c.Opponents {
		if seen[o.Name] {
			return fmt.Errorf("opponent %s: %w", o.Name, game.ErrDuplicatePlayer)
		}
		seen[o.Name] = true

		for _, target := range []*int{o.LowTarget, o.HighTarget} {
			if target != nil && (*target < 1 || *target > game.BustLimit) {
				return fmt.Errorf("opponent %s: target %d must be between 1 and %d", o.Name, *target, game.BustLimit)
			}
		}
		if o.LowTarget != nil && o.HighTarget != nil && *o.LowTarget > *o.HighTarget {
			return fmt.Errorf("opponent %s: low target %d is above high target %d", o.Name, *o.LowTarget, *o.HighTarget)
		}
	}
	return nil
}

// Pauses parses the pause durations
func (c *Config) Pauses() (Pauses, error) {
	var p Pauses
	for _, d := range []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"short_pause", c.Game.ShortPause, &p.Short},
		{"medium_pause", c.Game.MediumPause, &p.Medium},
		{"long_pause", c.Game.LongPause, &p.Long},
	} {
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return Pauses{}, fmt.Errorf("%s: %w", d.name, err)
		}
		if parsed < 0 {
			return Pauses{}, fmt.Errorf("%s: must not be negative", d.name)
		}
		*d.dst = parsed
	}
	return p, nil
}

// OpponentRoster returns the configured opponents, or the first n default
// names when none are configured.
func (c *Config) OpponentRoster(n int) []OpponentConfig {
	if len(c.Opponents) > 0 {
		return c.Opponents
	}
	n = max(MinOpponents, min(n, MaxOpponents))
	roster := make([]OpponentConfig, n)
	for i := range roster {
		roster[i].Name = DefaultOpponentNames[i]
	}
	return roster
}
