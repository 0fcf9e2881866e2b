// Package console plays 21 Bust in a terminal: one human against a table of
// bots, with prompts read line by line and pauses between messages so the
// bots' turns can be followed.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/lox/twentyonebust/cards"
	"github.com/lox/twentyonebust/internal/bot"
	"github.com/lox/twentyonebust/internal/config"
	"github.com/lox/twentyonebust/internal/game"
	"github.com/lox/twentyonebust/internal/randutil"
)

// Controller drives a Game for a human playing at the console
type Controller struct {
	game *game.Game

	input  io.Reader
	output io.Writer
	reader *bufio.Reader
	term   *termenv.Output
	styles styles

	clock  quartz.Clock
	pauses config.Pauses
	logger *log.Logger
	rng    *rand.Rand

	roster     []config.OpponentConfig
	playerName string
}

// New creates a Controller for g, which must have no players yet
func New(g *game.Game, opts ...Option) *Controller {
	c := &Controller{
		game:   g,
		input:  os.Stdin,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.logger = c.logger.WithPrefix("console")
	if c.rng == nil {
		c.rng, _ = randutil.FromClock(c.clock, 0)
	}

	c.reader = newReader(c.input)
	c.term = termenv.NewOutput(c.output)
	c.styles = newStyles(lipgloss.NewRenderer(c.output))
	return c
}

// Run plays rounds until the user chooses to stop
func (c *Controller) Run(ctx context.Context) error {
	c.clear()
	c.println("%s", c.styles.title.Render(fmt.Sprintf("Welcome to our game of %s.", c.game.Name())))
	if err := c.pause(ctx, c.pauses.Short); err != nil {
		return err
	}

	if err := c.setup(ctx); err != nil {
		return err
	}

	for {
		if err := c.playRound(ctx); err != nil {
			return err
		}
		winners, err := c.resolveRound(ctx)
		if err != nil {
			return err
		}

		again, err := c.getOption(ctx, "Play again? (y or n): ", "y", "n")
		if err != nil {
			return err
		}
		if again == "n" {
			break
		}
		if err := c.resetRound(ctx, winners); err != nil {
			return err
		}
	}

	c.clear()
	c.println("Thank you for playing.")
	if err := c.pause(ctx, c.pauses.Short); err != nil {
		return err
	}

	players := c.game.Players()
	slices.SortStableFunc(players, func(a, b *game.Player) int {
		return b.WinCount() - a.WinCount()
	})
	for _, p := range players {
		c.println("%s won %d %s.", p.Name, p.WinCount(), plural(p.WinCount(), "game", "games"))
	}
	return nil
}

// setup seats the human and their opponents and picks who goes first
func (c *Controller) setup(ctx context.Context) error {
	roster := c.roster
	taken := make([]string, 0, len(config.DefaultOpponentNames))
	if len(roster) > 0 {
		for _, o := range roster {
			taken = append(taken, o.Name)
		}
	} else {
		taken = append(taken, config.DefaultOpponentNames...)
	}

	name := c.playerName
	if slices.Contains(taken, name) {
		return fmt.Errorf("player %s: %w", name, game.ErrDuplicatePlayer)
	}
	if name == "" {
		var err error
		if name, err = c.getName(ctx, taken); err != nil {
			return err
		}
	}

	if len(roster) == 0 {
		options := make([]string, 0, config.MaxOpponents-config.MinOpponents+1)
		for n := config.MinOpponents; n <= config.MaxOpponents; n++ {
			options = append(options, strconv.Itoa(n))
		}
		answer, err := c.getOption(ctx,
			fmt.Sprintf("Enter number of opponent players (%d to %d): ", config.MinOpponents, config.MaxOpponents),
			options...)
		if err != nil {
			return err
		}
		count, _ := strconv.Atoi(answer)
		roster = config.Default().OpponentRoster(count)
	}

	if err := c.game.AddPlayer(game.NewPlayer(0, name, nil)); err != nil {
		return err
	}
	for i, o := range roster {
		selector, err := bot.New(c.rng, selectorOptions(o, c.logger)...)
		if err != nil {
			return fmt.Errorf("opponent %s: %w", o.Name, err)
		}
		if err := c.game.AddPlayer(game.NewPlayer(i+1, o.Name, selector)); err != nil {
			return err
		}
		c.logger.Debug("Opponent seated", "player", o.Name, "low", selector.LowTarget, "high", selector.HighTarget)
	}

	c.println("Our players are...")
	for _, p := range c.game.Players() {
		if err := c.pause(ctx, c.pauses.Short); err != nil {
			return err
		}
		c.println("%s", p.Name)
	}

	first, err := c.game.RandomizeFirstPlayer()
	if err != nil {
		return err
	}
	c.println("%s has been selected to go first.", first.Name)
	return c.pauseAndClear(ctx, c.pauses.Medium)
}

func selectorOptions(o config.OpponentConfig, logger *log.Logger) []bot.Option {
	opts := []bot.Option{bot.WithLogger(logger.With("player", o.Name))}
	if o.LowTarget != nil {
		opts = append(opts, bot.WithLowTarget(*o.LowTarget))
	}
	if o.HighTarget != nil {
		opts = append(opts, bot.WithHighTarget(*o.HighTarget))
	}
	return opts
}

// playRound deals and gives every player their turn
func (c *Controller) playRound(ctx context.Context) error {
	c.println("Dealing.")
	if _, err := c.game.Deal(); err != nil {
		return err
	}
	if err := c.pauseAndClear(ctx, c.pauses.Short); err != nil {
		return err
	}

	for {
		state, err := c.game.NextPlayer()
		if err != nil {
			return err
		}
		if state == game.ResolvingGame {
			return nil
		}
		if err := c.playerTurn(ctx, c.game.ActivePlayer()); err != nil {
			return err
		}
	}
}

// playerTurn runs one player's actions until they stick or go bust
func (c *Controller) playerTurn(ctx context.Context, p *game.Player) error {
	for c.game.State() != game.GettingNextPlayer {
		c.println("%s", c.styles.turn.Render(fmt.Sprintf("It is %s's turn.", p.Name)))
		if _, err := c.game.StartTurn(p); err != nil {
			return err
		}

		var err error
		if p.UserControlled() {
			err = c.userAction(ctx, p)
		} else {
			err = c.appAction(p)
		}
		if err != nil {
			return err
		}

		if err := c.pauseAndClear(ctx, c.pauses.Medium); err != nil {
			return err
		}
	}
	return nil
}

// userAction shows the human their hand and asks whether to stick or twist
func (c *Controller) userAction(ctx context.Context, p *game.Player) error {
	c.println("%s", p.Hand.Description())
	for _, card := range p.Hand.Cards {
		c.println("%s", c.renderCard(card, true))
	}
	c.println("%s", c.styles.subdued.Render("Best total: "+strconv.Itoa(p.BestTotal())))

	option, err := c.getOption(ctx, "Stick or Twist? (s or t): ", "s", "t")
	if err != nil {
		return err
	}
	if option == "s" {
		c.println("%s sticks.", p.Name)
		_, err := c.game.ResolveStickAction(p)
		return err
	}

	c.println("%s twists.", p.Name)
	_, card, err := c.game.ResolveTwistAction(p)
	if err != nil {
		return err
	}
	c.println("And draws %s.", c.renderCard(card, true))
	if p.State() == game.Bust {
		c.println("%s", c.styles.bust.Render(p.Name+" goes bust."))
	}
	return nil
}

// appAction asks the player's decider whether to stick, showing only how
// many cards they hold
func (c *Controller) appAction(p *game.Player) error {
	c.println("%s", p.Hand.Description())

	if p.Decider.ShouldStick(p.BestTotal(), c.game.Stats()) {
		c.println("%s sticks.", p.Name)
		_, err := c.game.ResolveStickAction(p)
		return err
	}

	c.println("%s twists.", p.Name)
	if _, _, err := c.game.ResolveTwistAction(p); err != nil {
		return err
	}
	// the two dealt cards are not counted
	c.println("And draws their %s card.", humanize.Ordinal(p.Hand.Len()-2))
	if p.State() == game.Bust {
		c.println("%s", c.styles.bust.Render(p.Name+" goes bust."))
	}
	return nil
}

// resolveRound reveals every hand and announces the winners
func (c *Controller) resolveRound(ctx context.Context) ([]*game.Player, error) {
	c.println("Results.")
	_, winners, err := c.game.ResolveGame()
	if err != nil {
		return nil, err
	}

	for _, p := range c.game.Players() {
		c.println("%s reveals their cards...", p.Name)
		for _, card := range p.Hand.Cards {
			c.println("%s", c.renderCard(card, false))
		}
		if p.State() == game.Bust {
			c.println("Went bust.")
		} else {
			c.println("Has a total of %d.", p.BestTotal())
		}
		if err := c.pauseAndClear(ctx, c.pauses.Medium); err != nil {
			return nil, err
		}
	}

	switch len(winners) {
	case 0:
		c.println("No winners this round.")
	case 1:
		c.println("The winner of this round is...")
	default:
		c.println("The winners of this round are...")
	}
	for _, p := range winners {
		if err := c.pause(ctx, c.pauses.Short); err != nil {
			return nil, err
		}
		c.println("%s", c.styles.winner.Render(p.Name))
	}

	return winners, c.pauseAndClear(ctx, c.pauses.Medium)
}

// resetRound gets the game ready for the next round and shows the new order
func (c *Controller) resetRound(ctx context.Context, winners []*game.Player) error {
	c.println("Resetting game.")
	if _, err := c.game.ResetGame(winners); err != nil {
		return err
	}

	c.println("Player order now is...")
	for _, p := range c.game.Players() {
		if err := c.pause(ctx, c.pauses.Short); err != nil {
			return err
		}
		c.println("%s", p.Name)
	}
	return c.pauseAndClear(ctx, c.pauses.Long)
}

func (c *Controller) renderCard(card *cards.Card, ignoreFaceUp bool) string {
	text := card.Description(ignoreFaceUp)
	if !ignoreFaceUp && !card.FaceUp {
		return c.styles.subdued.Render(text)
	}
	if card.Suit.Red() {
		return c.styles.red.Render(text)
	}
	return c.styles.black.Render(text)
}

func (c *Controller) println(format string, args ...any) {
	fmt.Fprintf(c.output, format+"\n", args...)
}

func (c *Controller) clear() {
	c.term.ClearScreen()
}

// pause waits for d on the controller's clock, returning early with the
// context's error if it is cancelled
func (c *Controller) pause(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := c.clock.NewTimer(d, "console", "pause")
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) pauseAndClear(ctx context.Context, d time.Duration) error {
	if err := c.pause(ctx, d); err != nil {
		return err
	}
	c.clear()
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
