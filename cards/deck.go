package cards

import (
	"errors"
	"math/rand/v2"
)

// ErrDeckExhausted is returned when more cards are requested than remain
var ErrDeckExhausted = errors.New("deck exhausted")

// Size is the number of cards in a standard deck
const Size = len(Values) * len(Suits)

// Deck is a standard 52-card deck with no jokers. Cards are drawn from the
// end of the pile.
type Deck struct {
	Hand
	rng *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a full, unshuffled deck that shuffles with rng
func NewDeck(name string, rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{
		Hand: Hand{Name: name, Cards: make([]*Card, 0, Size)},
		rng:  rng,
	}
	for _, value := range Values {
		for _, suit := range Suits {
			d.Cards = append(d.Cards, NewCard(value, suit))
		}
	}
	return d
}

// Shuffle shuffles the remaining cards with the deck's random source
func (d *Deck) Shuffle() {
	d.Hand.Shuffle(d.rng)
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.Cards)
}

// Draw removes the top card of the pile
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrDeckExhausted
	}
	c := d.Cards[n-1]
	d.Cards[n-1] = nil
	d.Cards = d.Cards[:n-1]
	return c, nil
}

// Deal gives n cards to each receiver one at a time: the first card to every
// receiver in order, then the second, and so on. Nothing is dealt when the
// deck cannot cover the whole deal.
func (d *Deck) Deal(n int, receivers ...Receiver) error {
	if n*len(receivers) > len(d.Cards) {
		return ErrDeckExhausted
	}
	for range n {
		for _, r := range receivers {
			c, err := d.Draw()
			if err != nil {
				return err
			}
			r.AddCard(c)
		}
	}
	return nil
}

// Return moves every card in h back into the deck face down and empties h
func (d *Deck) Return(h *Hand) {
	for _, c := range h.take() {
		c.FaceUp = false
		d.Cards = append(d.Cards, c)
	}
}
