package game

import (
	"slices"

	"github.com/lox/twentyonebust/cards"
)

// Totals is the set of every sum a hand can add up to, sorted ascending with
// no duplicates. A Totals value is never modified in place; Add returns a new
// set.
type Totals []int

// NewTotals returns the totals of an empty hand, {0}
func NewTotals() Totals {
	return Totals{0}
}

// TotalsOf computes the totals of a whole hand from scratch
func TotalsOf(hand ...*cards.Card) Totals {
	t := NewTotals()
	for _, c := range hand {
		t = t.Add(c)
	}
	return t
}

// Add returns the totals after c is added to the hand. Every total grows by
// the card's primary value; an ace also produces each total plus 11.
func (t Totals) Add(c *cards.Card) Totals {
	primary := PrimaryValue(c.Value)
	alt, hasAlt := AltValue(c.Value)

	next := make(Totals, 0, len(t)*2)
	for _, total := range t {
		next = append(next, total+primary)
		if hasAlt {
			next = append(next, total+alt)
		}
	}
	slices.Sort(next)
	return slices.Compact(next)
}

// Best returns the highest total that is not bust. When every total is bust
// the lowest one is returned; callers only use it to see the hand is bust.
func (t Totals) Best() int {
	if len(t) == 0 {
		return 0
	}
	for i := len(t) - 1; i >= 0; i-- {
		if t[i] <= BustLimit {
			return t[i]
		}
	}
	return t[0]
}

// Bust reports whether no total is 21 or under
func (t Totals) Bust() bool {
	return t.Best() > BustLimit
}

// Contains reports whether n is one of the totals
func (t Totals) Contains(n int) bool {
	_, found := slices.BinarySearch(t, n)
	return found
}
