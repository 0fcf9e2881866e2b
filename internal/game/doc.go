// Package game implements the rules and state machines for 21 Bust, a
// simplified game of Blackjack.
//
// The main type is Game, which owns the deck, the ordered players and the
// round state machine. Every exported Game and Player method checks the
// current state before doing anything and returns a typed error, without
// mutating, when called out of order.
//
// # Basic Usage
//
// Drive one round in the only legal order:
//
//	g := game.NewGame("21 Bust", game.WithRNG(randutil.New(42)))
//	g.AddPlayer(game.NewPlayer(0, "Alice", nil))
//	g.AddPlayer(game.NewPlayer(1, "Bob", nil))
//
//	g.Deal()
//	for {
//	    state, _ := g.NextPlayer()
//	    if state == game.ResolvingGame {
//	        break
//	    }
//	    p := g.ActivePlayer()
//	    for state != game.GettingNextPlayer {
//	        g.StartTurn(p)
//	        state, _, _ = g.ResolveTwistAction(p) // or ResolveStickAction
//	    }
//	}
//	_, winners, _ := g.ResolveGame()
//	g.ResetGame(winners)
//
// # Hand Totals
//
// Aces are worth 1 or 11, so a hand does not have one total but a set of
// them. Totals holds that set and is threaded through every card added;
// Totals.Best picks the highest total that is not bust.
//
// # Deterministic Testing
//
// Shuffling and the choice of first player after a shared win use the
// *rand.Rand passed with WithRNG. A fixed seed replays the same game.
package game
