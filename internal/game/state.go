package game

import "fmt"

// GameState is the phase of a round. States are entered in a fixed cycle:
// Dealing, GettingNextPlayer, StartingPlayerTurn, WaitingForPlayer (back to
// StartingPlayerTurn or GettingNextPlayer), ResolvingGame, ResettingGame.
type GameState int

const (
	Dealing GameState = iota
	GettingNextPlayer
	StartingPlayerTurn
	WaitingForPlayer
	ResolvingGame
	ResettingGame
)

func (s GameState) String() string {
	switch s {
	case Dealing:
		return "DEALING"
	case GettingNextPlayer:
		return "GETTING_NEXT_PLAYER"
	case StartingPlayerTurn:
		return "STARTING_PLAYER_TURN"
	case WaitingForPlayer:
		return "WAITING_FOR_PLAYER"
	case ResolvingGame:
		return "RESOLVING_GAME"
	case ResettingGame:
		return "RESETTING_GAME"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// PlayerState is where a player is in their turn
type PlayerState int

const (
	WaitingToPlay PlayerState = iota
	DecidingAction
	Stick
	Bust
)

func (s PlayerState) String() string {
	switch s {
	case WaitingToPlay:
		return "WAITING_TO_PLAY"
	case DecidingAction:
		return "DECIDING_ACTION"
	case Stick:
		return "STICK"
	case Bust:
		return "BUST"
	}
	return fmt.Sprintf("PlayerState(%d)", int(s))
}

// Finished reports whether the player's turn is over
func (s PlayerState) Finished() bool {
	return s == Stick || s == Bust
}
