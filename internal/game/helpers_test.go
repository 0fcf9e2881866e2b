package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/twentyonebust/cards"
	"github.com/lox/twentyonebust/internal/randutil"
)

// newTestGame creates a game seeded with 42 and seats a player per name
func newTestGame(t *testing.T, names ...string) (*Game, []*Player) {
	t.Helper()
	g := NewGame("Test Game", WithRNG(randutil.New(42)), WithID("test-game"))
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(i, name, nil)
		require.NoError(t, g.AddPlayer(players[i]))
	}
	return g, players
}

// takeCard removes the named card from wherever it is. A card taken from
// another player's hand is replaced with the bottom card of the deck.
func takeCard(t *testing.T, g *Game, s string) *cards.Card {
	t.Helper()
	want, err := cards.ParseCard(s)
	require.NoError(t, err)
	same := func(c *cards.Card) bool { return c.Value == want.Value && c.Suit == want.Suit }

	for i, c := range g.deck.Cards {
		if same(c) {
			g.deck.Cards = append(g.deck.Cards[:i], g.deck.Cards[i+1:]...)
			return c
		}
	}
	for _, q := range g.players {
		for i, c := range q.Hand.Cards {
			if !same(c) {
				continue
			}
			require.NotEmpty(t, g.deck.Cards)
			q.Hand.Cards[i] = g.deck.Cards[0]
			g.deck.Cards = g.deck.Cards[1:]
			q.totals = TotalsOf(q.Hand.Cards...)
			q.bestTotal = q.totals.Best()
			return c
		}
	}
	t.Fatalf("card %s is not in play", s)
	return nil
}

// giveHand swaps whatever p holds for the named cards, taken from the deck
func giveHand(t *testing.T, g *Game, p *Player, strs ...string) {
	t.Helper()
	state := p.state
	g.deck.Return(p.Hand)
	p.Reset()
	for _, s := range strs {
		p.AddCard(takeCard(t, g, s))
	}
	p.state = state
}

// stackDeck moves the named cards to the top of the deck so they are drawn
// in the order given
func stackDeck(t *testing.T, g *Game, strs ...string) {
	t.Helper()
	for i := len(strs) - 1; i >= 0; i-- {
		g.deck.Cards = append(g.deck.Cards, takeCard(t, g, strs[i]))
	}
}

// dealAndStart deals and starts the first player's turn
func dealAndStart(t *testing.T, g *Game) *Player {
	t.Helper()
	_, err := g.Deal()
	require.NoError(t, err)
	_, err = g.NextPlayer()
	require.NoError(t, err)
	p := g.ActivePlayer()
	_, err = g.StartTurn(p)
	require.NoError(t, err)
	return p
}

// playAllStick plays a whole round with every player sticking on the cards
// they were dealt, leaving the game in ResolvingGame
func playAllStick(t *testing.T, g *Game) {
	t.Helper()
	_, err := g.Deal()
	require.NoError(t, err)
	for {
		state, err := g.NextPlayer()
		require.NoError(t, err)
		if state == ResolvingGame {
			return
		}
		p := g.ActivePlayer()
		_, err = g.StartTurn(p)
		require.NoError(t, err)
		_, err = g.ResolveStickAction(p)
		require.NoError(t, err)
	}
}

// requireAllCardsAccountedFor checks the deck and every hand together hold
// each of the 52 cards exactly once
func requireAllCardsAccountedFor(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[*cards.Card]bool, cards.Size)
	identities := make(map[string]bool, cards.Size)
	add := func(cs []*cards.Card) {
		for _, c := range cs {
			require.False(t, seen[c], "card %s held twice", c.Short())
			seen[c] = true
			identities[c.Short()] = true
		}
	}
	add(g.deck.Cards)
	for _, p := range g.players {
		add(p.Hand.Cards)
	}
	require.Len(t, seen, cards.Size)
	require.Len(t, identities, cards.Size)
}

// snapshot captures everything a rejected call must leave alone
type snapshot struct {
	state     GameState
	index     int
	stats     Stats
	order     []*Player
	deckTop   *cards.Card
	deckLen   int
	hands     [][]*cards.Card
	pstates   []PlayerState
	totals    []Totals
	winCounts []int
}

func takeSnapshot(g *Game) snapshot {
	s := snapshot{
		state:   g.state,
		index:   g.activePlayerIndex,
		stats:   g.stats,
		order:   g.Players(),
		deckLen: len(g.deck.Cards),
	}
	if s.deckLen > 0 {
		s.deckTop = g.deck.Cards[s.deckLen-1]
	}
	for _, p := range g.players {
		s.hands = append(s.hands, append([]*cards.Card(nil), p.Hand.Cards...))
		s.pstates = append(s.pstates, p.state)
		s.totals = append(s.totals, p.totals)
		s.winCounts = append(s.winCounts, p.winCount)
	}
	return s
}
