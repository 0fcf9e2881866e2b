// Package bot decides whether players the app controls should stick or twist.
package bot

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyonebust/internal/game"
)

// ErrTargetOutOfRange is returned for a target total outside 1 to 21
var ErrTargetOutOfRange = errors.New("target must be in range 1 to 21")

// Default target ranges used when a target is not given
const (
	MinLowTarget  = 12
	MaxLowTarget  = 18
	MaxHighTarget = 20
)

// ActionSelector tells a player to stick when:
//  1. every other player has gone bust,
//  2. most other players are sticking or yet to play and the high target has
//     been reached, or
//  3. most other players have gone bust and the low target has been reached.
type ActionSelector struct {
	LowTarget  int
	HighTarget int

	logger *log.Logger
}

var _ game.Decider = (*ActionSelector)(nil)

// Option configures an ActionSelector
type Option func(*config)

type config struct {
	low, high *int
	logger    *log.Logger
}

// WithTargets fixes both targets instead of picking them at random
func WithTargets(low, high int) Option {
	return func(c *config) {
		c.low = &low
		c.high = &high
	}
}

// WithLowTarget fixes the low target only
func WithLowTarget(low int) Option {
	return func(c *config) { c.low = &low }
}

// WithHighTarget fixes the high target only
func WithHighTarget(high int) Option {
	return func(c *config) { c.high = &high }
}

// WithLogger reports every decision at debug level
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates an ActionSelector. Targets not fixed by an option are drawn
// from rng: the low target from 12 to 18, the high target from one above the
// low target to 20.
func New(rng *rand.Rand, opts ...Option) (*ActionSelector, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	for _, target := range []*int{cfg.low, cfg.high} {
		if target != nil && (*target < 1 || *target > game.BustLimit) {
			return nil, fmt.Errorf("%w: got %d", ErrTargetOutOfRange, *target)
		}
	}

	s := &ActionSelector{logger: cfg.logger}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.WithPrefix("bot")

	if cfg.low != nil {
		s.LowTarget = *cfg.low
	} else {
		s.LowTarget = between(rng, MinLowTarget, MaxLowTarget)
	}

	switch {
	case cfg.high != nil:
		s.HighTarget = *cfg.high
	case s.LowTarget >= MaxHighTarget:
		s.HighTarget = game.BustLimit
	default:
		s.HighTarget = between(rng, s.LowTarget+1, MaxHighTarget)
	}

	return s, nil
}

// between returns a uniform int in [lo, hi]
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// ShouldStick decides whether a player on bestTotal should stick. The stats
// still count the deciding player as unfinished, so they are taken out first.
func (s *ActionSelector) ShouldStick(bestTotal int, stats game.Stats) bool {
	others := stats.PlayerCount - 1
	waiting := stats.UnfinishedCount - 1

	allOthersBust := stats.BustCount == others
	notBust := stats.StickingCount + waiting
	mostNotBust := 2*notBust > others

	var stick bool
	var reason string
	switch {
	case allOthersBust:
		stick, reason = true, "everyone else is bust"
	case mostNotBust:
		stick, reason = bestTotal >= s.HighTarget, "aiming high"
	default:
		stick, reason = bestTotal >= s.LowTarget, "aiming low"
	}

	// selectors built as literals have no logger
	if s.logger == nil {
		return stick
	}
	s.logger.Debug("Decision",
		"total", bestTotal,
		"stick", stick,
		"reason", reason,
		"low", s.LowTarget,
		"high", s.HighTarget,
		"sticking", stats.StickingCount,
		"bust", stats.BustCount,
		"waiting", waiting)
	return stick
}
