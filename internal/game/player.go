package game

import (
	"fmt"

	"github.com/lox/twentyonebust/cards"
)

// Decider chooses between stick and twist for a player the app controls
type Decider interface {
	ShouldStick(bestTotal int, stats Stats) bool
}

// Player is a player in a game of 21 Bust. ID, Name and Decider are set up
// once; the hand, totals and state are reset every round while the win count
// carries over.
type Player struct {
	ID      int
	Name    string
	Hand    *cards.Hand
	Decider Decider // nil for a user controlled player

	state     PlayerState
	totals    Totals
	bestTotal int
	winCount  int
}

// NewPlayer creates a player waiting to play. Pass a nil decider for a player
// the user controls.
func NewPlayer(id int, name string, decider Decider) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Hand:    cards.NewHand(fmt.Sprintf("%s's hand", name)),
		Decider: decider,
		state:   WaitingToPlay,
		totals:  NewTotals(),
	}
}

// State returns the player's current state
func (p *Player) State() PlayerState { return p.state }

// Totals returns every total the player's hand can make
func (p *Player) Totals() Totals { return p.totals }

// BestTotal returns the best total of the hand, see Totals.Best
func (p *Player) BestTotal() int { return p.bestTotal }

// WinCount returns how many rounds this player has won
func (p *Player) WinCount() int { return p.winCount }

// UserControlled returns true if the player has no Decider
func (p *Player) UserControlled() bool { return p.Decider == nil }

// AppControlled returns true if the player's choices come from a Decider
func (p *Player) AppControlled() bool { return p.Decider != nil }

// Play starts or continues the player's turn
func (p *Player) Play() (PlayerState, error) {
	if p.state != WaitingToPlay && p.state != DecidingAction {
		return p.state, &PlayerStateError{Current: p.state, Expected: []PlayerState{WaitingToPlay, DecidingAction}}
	}

	p.state = DecidingAction
	return p.state, nil
}

// Stick ends the player's turn, freezing their best total
func (p *Player) Stick() (PlayerState, error) {
	if p.state != DecidingAction {
		return p.state, &PlayerStateError{Current: p.state, Expected: []PlayerState{DecidingAction}}
	}

	p.state = Stick
	return p.state, nil
}

// Twist adds card to the player's hand. The player goes bust if no total is
// left at 21 or under, otherwise they keep deciding.
func (p *Player) Twist(card *cards.Card) (PlayerState, error) {
	if p.state != DecidingAction {
		return p.state, &PlayerStateError{Current: p.state, Expected: []PlayerState{DecidingAction}}
	}

	p.AddCard(card)

	if p.bestTotal > BustLimit {
		p.state = Bust
	}
	return p.state, nil
}

// AddCard puts card in the player's hand and updates the totals. It does not
// check state and is how cards are dealt.
func (p *Player) AddCard(card *cards.Card) {
	p.Hand.AddCard(card)
	p.totals = p.totals.Add(card)
	p.bestTotal = p.totals.Best()
}

// RevealHand turns every card in the hand face up
func (p *Player) RevealHand() {
	p.Hand.Reveal()
}

// Reset gets the player ready for a new round. The hand is expected to have
// been returned to the deck already; any cards left are dropped.
func (p *Player) Reset() {
	p.Hand.Cards = nil
	p.totals = NewTotals()
	p.bestTotal = 0
	p.state = WaitingToPlay
}

func (p *Player) String() string {
	return p.Name
}
