package game

import (
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/twentyonebust/cards"
)

// MinPlayers is the fewest players a round can be dealt to
const MinPlayers = 2

// cardsPerHand is how many cards each player is dealt
const cardsPerHand = 2

// Game is a game of 21 Bust:
//   - There is a single deck of 52 standard playing cards.
//   - Aces are worth 1 or 11, picture cards 10, other cards their face value.
//   - Each player is dealt 2 cards face down and the dealer does not play.
//   - In turn, each player twists (draws a card) or sticks (ends their turn).
//   - A player whose total goes over 21 is bust and their turn ends.
//   - Once everyone has played, the players who stuck on the highest total win.
//   - A winner goes first in the next round.
//
// The methods must be called in the order described by GameState. A method
// called out of order returns a *GameStateError and changes nothing.
type Game struct {
	id                string
	name              string
	deck              *cards.Deck
	players           []*Player
	state             GameState
	activePlayerIndex int
	stats             Stats

	rng    *rand.Rand
	logger *log.Logger
}

// NewGame creates a game waiting for players to be added and dealt to
func NewGame(name string, opts ...Option) *Game {
	g := &Game{
		name:              name,
		state:             Dealing,
		activePlayerIndex: -1,
	}
	for _, opt := range opts {
		opt(g)
	}
	applyDefaults(g)
	if g.id == "" {
		g.id = uuid.Must(uuid.NewV7()).String()
	}
	g.logger = g.logger.With("game", g.id)
	return g
}

// ID identifies this game in logs
func (g *Game) ID() string { return g.id }

// Name returns the game's name
func (g *Game) Name() string { return g.name }

// State returns the current GameState
func (g *Game) State() GameState { return g.state }

// Deck returns the deck cards are dealt from
func (g *Game) Deck() *cards.Deck { return g.deck }

// Stats returns a snapshot of this round's player stats
func (g *Game) Stats() Stats { return g.stats }

// ActivePlayerIndex returns the index into Players of the player whose turn
// it is. It is -1 straight after a deal and len(Players) once everyone has
// played.
func (g *Game) ActivePlayerIndex() int { return g.activePlayerIndex }

// Players returns the players in turn order
func (g *Game) Players() []*Player {
	return slices.Clone(g.players)
}

// ActivePlayer returns the player whose turn it is, or nil between turns
func (g *Game) ActivePlayer() *Player {
	if g.activePlayerIndex < 0 || g.activePlayerIndex >= len(g.players) {
		return nil
	}
	return g.players[g.activePlayerIndex]
}

func (g *Game) checkState(expected ...GameState) error {
	if slices.Contains(expected, g.state) {
		return nil
	}
	return &GameStateError{Current: g.state, Expected: expected}
}

func (g *Game) checkActivePlayer(p *Player) error {
	active := g.ActivePlayer()
	if p != active {
		return &PlayerOrderError{Player: p, Expected: active}
	}
	return nil
}

func (g *Game) setState(s GameState) GameState {
	g.logger.Debug("Game state changed", "from", g.state, "to", s)
	g.state = s
	return s
}

// AddPlayer seats a player at the end of the turn order. Players can only
// join between rounds.
func (g *Game) AddPlayer(p *Player) error {
	if err := g.checkState(Dealing); err != nil {
		return err
	}
	if p == nil {
		return ErrUnknownPlayer
	}
	if slices.Contains(g.players, p) {
		return ErrDuplicatePlayer
	}

	g.players = append(g.players, p)
	g.logger.Debug("Player added", "player", p.Name, "id", p.ID, "seat", len(g.players)-1)
	return nil
}

// RandomizeFirstPlayer picks a random player and changes the turn order so
// they go first. The returned player is the new first player.
func (g *Game) RandomizeFirstPlayer() (*Player, error) {
	if err := g.checkState(Dealing); err != nil {
		return nil, err
	}
	if len(g.players) == 0 {
		return nil, ErrNotEnoughPlayers
	}

	g.rotate(g.rng.IntN(len(g.players)))
	g.logger.Debug("First player chosen", "player", g.players[0].Name)
	return g.players[0], nil
}

// Deal shuffles the deck and deals 2 cards to each player one at a time, the
// first card to every player and then the second.
//
// Use after NewGame or ResetGame. Moves to GettingNextPlayer.
func (g *Game) Deal() (GameState, error) {
	if err := g.checkState(Dealing); err != nil {
		return g.state, err
	}
	if len(g.players) < MinPlayers {
		return g.state, ErrNotEnoughPlayers
	}
	if len(g.players)*cardsPerHand > g.deck.Remaining() {
		return g.state, ErrDeckExhausted
	}

	g.deck.Shuffle()
	receivers := make([]cards.Receiver, len(g.players))
	for i, p := range g.players {
		receivers[i] = p
	}
	if err := g.deck.Deal(cardsPerHand, receivers...); err != nil {
		return g.state, err
	}

	g.activePlayerIndex = -1
	g.stats = NewStats(len(g.players))

	g.logger.Debug("Dealt", "players", len(g.players), "remaining", g.deck.Remaining())
	return g.setState(GettingNextPlayer), nil
}

// NextPlayer moves the turn on to the next player. Once every player has had
// a turn the game moves to ResolvingGame, otherwise to StartingPlayerTurn.
//
// Use after Deal, ResolveStickAction, or a ResolveTwistAction that went bust.
func (g *Game) NextPlayer() (GameState, error) {
	if err := g.checkState(GettingNextPlayer); err != nil {
		return g.state, err
	}

	g.activePlayerIndex++

	if g.activePlayerIndex == len(g.players) {
		return g.setState(ResolvingGame), nil
	}
	g.logger.Debug("Next player", "player", g.players[g.activePlayerIndex].Name, "index", g.activePlayerIndex)
	return g.setState(StartingPlayerTurn), nil
}

// StartTurn tells the active player to decide whether to stick or twist.
// Passing any other player returns a *PlayerOrderError.
//
// Use after NextPlayer, or a ResolveTwistAction that did not go bust.
func (g *Game) StartTurn(p *Player) (GameState, error) {
	if err := g.checkState(StartingPlayerTurn); err != nil {
		return g.state, err
	}
	if err := g.checkActivePlayer(p); err != nil {
		return g.state, err
	}

	if _, err := p.Play(); err != nil {
		return g.state, err
	}

	return g.setState(WaitingForPlayer), nil
}

// ResolveStickAction ends the active player's turn on their current total
//
// Use after StartTurn. Moves to GettingNextPlayer.
func (g *Game) ResolveStickAction(p *Player) (GameState, error) {
	if err := g.checkState(WaitingForPlayer); err != nil {
		return g.state, err
	}
	if err := g.checkActivePlayer(p); err != nil {
		return g.state, err
	}

	state, err := p.Stick()
	if err != nil {
		return g.state, err
	}
	g.stats.Update(state)

	g.logger.Debug("Player sticks", "player", p.Name, "total", p.BestTotal())
	return g.setState(GettingNextPlayer), nil
}

// ResolveTwistAction draws a card from the deck for the active player and
// returns it with the new state: GettingNextPlayer if they went bust,
// otherwise StartingPlayerTurn so the same player carries on.
//
// Use after StartTurn.
func (g *Game) ResolveTwistAction(p *Player) (GameState, *cards.Card, error) {
	if err := g.checkState(WaitingForPlayer); err != nil {
		return g.state, nil, err
	}
	if err := g.checkActivePlayer(p); err != nil {
		return g.state, nil, err
	}
	if p.State() != DecidingAction {
		return g.state, nil, &PlayerStateError{Current: p.State(), Expected: []PlayerState{DecidingAction}}
	}

	card, err := g.deck.Draw()
	if err != nil {
		return g.state, nil, err
	}

	state, err := p.Twist(card)
	if err != nil {
		return g.state, nil, err
	}

	g.logger.Debug("Player twists", "player", p.Name, "card", card.Short(), "total", p.BestTotal(), "state", state)
	if state == Bust {
		g.stats.Update(state)
		return g.setState(GettingNextPlayer), card, nil
	}
	return g.setState(StartingPlayerTurn), card, nil
}

// ResolveGame finds the winners once every player has had their turn, adds
// one to each winner's win count and reveals every hand.
//
// Use after NextPlayer returns ResolvingGame. Moves to ResettingGame.
func (g *Game) ResolveGame() (GameState, []*Player, error) {
	if err := g.checkState(ResolvingGame); err != nil {
		return g.state, nil, err
	}

	winners := g.Winners()
	for _, p := range winners {
		p.winCount++
	}
	for _, p := range g.players {
		p.RevealHand()
	}

	g.logger.Debug("Round resolved", "winners", playerNames(winners))
	return g.setState(ResettingGame), winners, nil
}

// Winners returns the players who stuck on the highest best total, in turn
// order. Bust players never win; if nobody stuck there are no winners.
func (g *Game) Winners() []*Player {
	var winners []*Player
	best := 0

	for _, p := range g.players {
		if p.State() != Stick {
			continue
		}
		switch {
		case len(winners) == 0 || p.BestTotal() > best:
			best = p.BestTotal()
			winners = []*Player{p}
		case p.BestTotal() == best:
			winners = append(winners, p)
		}
	}

	return winners
}

// ResetGame gets the game ready to deal again. When there are winners one is
// picked at random to go first next round, keeping everyone else in the same
// order around the table. All cards go back to the deck face down and every
// player is reset. Any winner not seated at the table returns
// ErrUnknownPlayer before anything changes.
//
// Use after ResolveGame. Moves to Dealing.
func (g *Game) ResetGame(winners []*Player) (GameState, error) {
	if err := g.checkState(ResettingGame); err != nil {
		return g.state, err
	}

	seats := make([]int, len(winners))
	for i, w := range winners {
		if seats[i] = slices.Index(g.players, w); seats[i] < 0 {
			return g.state, ErrUnknownPlayer
		}
	}

	first := 0
	if len(seats) > 0 {
		first = seats[g.rng.IntN(len(seats))]
	}
	g.rotate(first)

	for _, p := range g.players {
		g.deck.Return(p.Hand)
		p.Reset()
	}
	g.activePlayerIndex = -1

	g.logger.Debug("Round reset", "order", playerNames(g.players))
	return g.setState(Dealing), nil
}

// rotate reorders the players so the one at index first goes first and
// everyone keeps their place relative to each other.
func (g *Game) rotate(first int) {
	n := len(g.players)
	if n == 0 || first == 0 {
		return
	}
	rotated := make([]*Player, n)
	for i, p := range g.players {
		rotated[(i-first+n)%n] = p
	}
	g.players = rotated
}

func playerNames(players []*Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}
