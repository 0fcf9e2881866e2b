package game

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyonebust/cards"
	"github.com/lox/twentyonebust/internal/randutil"
)

// Option configures a Game during creation
type Option func(*Game)

// WithRNG sets the random source used to shuffle and to pick the first
// player. A fixed seed makes a game reproducible.
func WithRNG(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger state transitions are reported to
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithDeck replaces the standard freshly built deck. The deck must hold the
// full set of cards.
func WithDeck(deck *cards.Deck) Option {
	return func(g *Game) { g.deck = deck }
}

// WithID overrides the generated game ID
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

func applyDefaults(g *Game) {
	if g.rng == nil {
		g.rng = randutil.New(time.Now().UnixNano())
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.deck == nil {
		g.deck = cards.NewDeck("Deck", g.rng)
	}
}
