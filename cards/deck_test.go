package cards

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeck() *Deck {
	return NewDeck("Deck", rand.New(rand.NewPCG(42, 42)))
}

func cardSet(cards []*Card) map[Card]int {
	set := make(map[Card]int, len(cards))
	for _, c := range cards {
		set[Card{Value: c.Value, Suit: c.Suit}]++
	}
	return set
}

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	require.Equal(t, Size, d.Remaining())

	set := cardSet(d.Cards)
	assert.Len(t, set, 52)
	for card, n := range set {
		assert.Equal(t, 1, n, "duplicate %s", card.Description(true))
	}
	for _, c := range d.Cards {
		assert.False(t, c.FaceUp)
	}
}

func TestShufflePreservesCards(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	before := cardSet(d.Cards)
	order := make([]*Card, len(d.Cards))
	copy(order, d.Cards)

	d.Shuffle()

	assert.Equal(t, before, cardSet(d.Cards))
	assert.NotEqual(t, order, d.Cards, "a seeded shuffle of 52 cards should change the order")
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := newTestDeck()
	b := newTestDeck()
	a.Shuffle()
	b.Shuffle()

	for i := range a.Cards {
		assert.Equal(t, a.Cards[i].Short(), b.Cards[i].Short())
	}
}

func TestDrawTakesFromTop(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	top := d.Cards[len(d.Cards)-1]

	c, err := d.Draw()
	require.NoError(t, err)
	assert.Same(t, top, c)
	assert.Equal(t, Size-1, d.Remaining())
}

func TestDrawEmptyDeck(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	for range Size {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	c, err := d.Draw()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDealRoundRobin(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	n := len(d.Cards)
	// cards come off the end of the pile
	first, second, third, fourth := d.Cards[n-1], d.Cards[n-2], d.Cards[n-3], d.Cards[n-4]

	a, b := NewHand("a"), NewHand("b")
	require.NoError(t, d.Deal(2, a, b))

	assert.Equal(t, []*Card{first, third}, a.Cards)
	assert.Equal(t, []*Card{second, fourth}, b.Cards)
	assert.Equal(t, Size-4, d.Remaining())
}

func TestDealTooManyLeavesDeckUntouched(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	hands := make([]Receiver, 27)
	for i := range hands {
		hands[i] = NewHand("h")
	}

	err := d.Deal(2, hands...)
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, Size, d.Remaining())
	for _, h := range hands {
		assert.Zero(t, h.(*Hand).Len())
	}
}

func TestDealWholeDeck(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	hands := make([]Receiver, 26)
	for i := range hands {
		hands[i] = NewHand("h")
	}

	require.NoError(t, d.Deal(2, hands...))
	assert.Zero(t, d.Remaining())
	for _, h := range hands {
		assert.Equal(t, 2, h.(*Hand).Len())
	}

	err := d.Deal(1, NewHand("late"))
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestReturnCardsFaceDown(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	h := NewHand("h")
	require.NoError(t, d.Deal(3, h))
	h.Reveal()

	d.Return(h)

	assert.Zero(t, h.Len())
	assert.Equal(t, Size, d.Remaining())
	assert.Len(t, cardSet(d.Cards), 52)
	for _, c := range d.Cards {
		assert.False(t, c.FaceUp)
	}
}
