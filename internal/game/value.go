package game

import "github.com/lox/twentyonebust/cards"

// BustLimit is the highest total a hand can have without going bust
const BustLimit = 21

// aceHigh is the alternate value of an ace
const aceHigh = 11

// PrimaryValue is what a card adds to a hand total. Picture cards are worth
// 10, everything else its face value, aces 1.
func PrimaryValue(v cards.Value) int {
	if v > cards.Ten {
		return 10
	}
	return int(v)
}

// AltValue returns the alternate value of a card, which only aces have
func AltValue(v cards.Value) (int, bool) {
	if v == cards.Ace {
		return aceHigh, true
	}
	return 0, false
}
