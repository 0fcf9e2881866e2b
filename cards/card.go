package cards

import "fmt"

// Suit is the suit of a playing card. Suits are ordered Clubs < Diamonds <
// Hearts < Spades, which only matters when card identity needs a stable order.
type Suit uint8

// Suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in ascending order
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Value is the rank of a playing card, Ace (1) through King (13)
type Value uint8

// Value constants
const (
	Ace Value = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Values lists every rank from Ace to King
var Values = [...]Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var valueNames = [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

func (v Value) String() string {
	if v < Ace || v > King {
		return fmt.Sprintf("Value(%d)", uint8(v))
	}
	return valueNames[v]
}

// Card is a single playing card. Cards are always handled by pointer so that
// exactly one Hand or Deck holds a given card at any time.
type Card struct {
	Value  Value
	Suit   Suit
	FaceUp bool
}

// NewCard creates a face down card
func NewCard(value Value, suit Suit) *Card {
	return &Card{Value: value, Suit: suit}
}

// String describes the card, or "Facedown card" when it is face down
func (c *Card) String() string {
	return c.Description(false)
}

// Description returns "Ace of Spades" style text. When ignoreFaceUp is false a
// face down card is described without giving away its value.
func (c *Card) Description(ignoreFaceUp bool) string {
	if ignoreFaceUp || c.FaceUp {
		return c.Value.String() + " of " + c.Suit.String()
	}
	return "Facedown card"
}

// Short returns the two character form used in logs and tests, e.g. "As", "Td"
func (c *Card) Short() string {
	return string("?A23456789TJQK"[c.Value]) + string("cdhs"[c.Suit])
}

// ParseCard parses a string like "As" into a face down card
func ParseCard(s string) (*Card, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("invalid card string: %s", s)
	}

	var value Value
	switch s[0] {
	case 'A', 'a':
		value = Ace
	case '2':
		value = Two
	case '3':
		value = Three
	case '4':
		value = Four
	case '5':
		value = Five
	case '6':
		value = Six
	case '7':
		value = Seven
	case '8':
		value = Eight
	case '9':
		value = Nine
	case 'T', 't':
		value = Ten
	case 'J', 'j':
		value = Jack
	case 'Q', 'q':
		value = Queen
	case 'K', 'k':
		value = King
	default:
		return nil, fmt.Errorf("invalid value: %c", s[0])
	}

	var suit Suit
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return nil, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(value, suit), nil
}

// MustParseCards parses each string with ParseCard and panics on failure.
// Intended for fixtures.
func MustParseCards(strs ...string) []*Card {
	out := make([]*Card, 0, len(strs))
	for _, s := range strs {
		c, err := ParseCard(s)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
