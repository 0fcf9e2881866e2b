package console

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/twentyonebust/internal/config"
)

// Option configures a Controller
type Option func(*Controller)

// WithInput sets where answers to prompts are read from
func WithInput(r io.Reader) Option {
	return func(c *Controller) { c.input = r }
}

// WithOutput sets where the game is written
func WithOutput(w io.Writer) Option {
	return func(c *Controller) { c.output = w }
}

// WithClock sets the clock used for pauses
func WithClock(clock quartz.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithPauses sets the pacing between messages. Zero durations do not pause.
func WithPauses(p config.Pauses) Option {
	return func(c *Controller) { c.pauses = p }
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithRNG sets the source used to pick opponent targets
func WithRNG(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// WithRoster seats these opponents instead of asking how many to play
func WithRoster(roster []config.OpponentConfig) Option {
	return func(c *Controller) { c.roster = roster }
}

// WithPlayerName skips asking the user for their name
func WithPlayerName(name string) Option {
	return func(c *Controller) { c.playerName = name }
}
