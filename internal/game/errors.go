package game

import (
	"errors"
	"fmt"

	"github.com/lox/twentyonebust/cards"
)

var (
	// ErrInvalidGameState is matched by every *GameStateError
	ErrInvalidGameState = errors.New("invalid game state")
	// ErrInvalidPlayerState is matched by every *PlayerStateError
	ErrInvalidPlayerState = errors.New("invalid player state")
	// ErrPlayerOrder is matched by every *PlayerOrderError
	ErrPlayerOrder = errors.New("player acted out of turn")

	// ErrDeckExhausted is returned when a twist or deal needs more cards than
	// the deck holds.
	ErrDeckExhausted = cards.ErrDeckExhausted

	ErrNotEnoughPlayers = errors.New("at least 2 players are required")
	ErrUnknownPlayer    = errors.New("player is not seated in this game")
	ErrDuplicatePlayer  = errors.New("player is already seated in this game")
)

// GameStateError occurs when a Game method is called while the game is in a
// state that method does not accept, e.g. Deal while WaitingForPlayer.
type GameStateError struct {
	Current  GameState
	Expected []GameState
}

func (e *GameStateError) Error() string {
	return fmt.Sprintf("invalid game state: current state=%s expected states=%v", e.Current, e.Expected)
}

func (e *GameStateError) Unwrap() error { return ErrInvalidGameState }

// PlayerStateError occurs when a Player method is called while the player is
// in a state that method does not accept, e.g. Stick after going bust.
type PlayerStateError struct {
	Current  PlayerState
	Expected []PlayerState
}

func (e *PlayerStateError) Error() string {
	return fmt.Sprintf("invalid player state: current state=%s expected states=%v", e.Current, e.Expected)
}

func (e *PlayerStateError) Unwrap() error { return ErrInvalidPlayerState }

// PlayerOrderError occurs when a turn scoped method is given a player whose
// turn it is not.
type PlayerOrderError struct {
	Player   *Player
	Expected *Player
}

func (e *PlayerOrderError) Error() string {
	return fmt.Sprintf("player acted out of turn: player=%s expected player=%s", nameOf(e.Player), nameOf(e.Expected))
}

func (e *PlayerOrderError) Unwrap() error { return ErrPlayerOrder }

func nameOf(p *Player) string {
	if p == nil {
		return "<none>"
	}
	return p.Name
}
