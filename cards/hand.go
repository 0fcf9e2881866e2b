package cards

import (
	"fmt"
	"math/rand/v2"
)

// Receiver is anything a deck can deal a card to
type Receiver interface {
	AddCard(c *Card)
}

// Hand is a named, ordered group of cards. It can be a player's hand or any
// other pile of cards.
type Hand struct {
	Name  string
	Cards []*Card
}

// NewHand creates an empty hand
func NewHand(name string) *Hand {
	return &Hand{Name: name}
}

// AddCard appends a card to the end of the hand
func (h *Hand) AddCard(c *Card) {
	h.Cards = append(h.Cards, c)
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.Cards)
}

// Contains reports whether this exact card is held
func (h *Hand) Contains(c *Card) bool {
	for _, held := range h.Cards {
		if held == c {
			return true
		}
	}
	return false
}

// Reveal turns every card face up
func (h *Hand) Reveal() {
	for _, c := range h.Cards {
		c.FaceUp = true
	}
}

// Conceal turns every card face down
func (h *Hand) Conceal() {
	for _, c := range h.Cards {
		c.FaceUp = false
	}
}

// Shuffle puts the cards into a uniformly random order
func (h *Hand) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(h.Cards), func(i, j int) {
		h.Cards[i], h.Cards[j] = h.Cards[j], h.Cards[i]
	})
}

// Description returns e.g. "Adam's hand contains 3 cards"
func (h *Hand) Description() string {
	return fmt.Sprintf("%s contains %d cards", h.Name, len(h.Cards))
}

// take removes and returns every card, leaving the hand empty
func (h *Hand) take() []*Card {
	taken := h.Cards
	h.Cards = nil
	return taken
}
