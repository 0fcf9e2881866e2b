package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/twentyonebust/internal/fileutil"
	"github.com/lox/twentyonebust/internal/randutil"
	"github.com/lox/twentyonebust/internal/simulator"
	"github.com/lox/twentyonebust/internal/statistics"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// SimulateCmd plays bot-only tables and prints the results
type SimulateCmd struct {
	Rounds   int    `kong:"default='1000',help='Rounds played at each table'"`
	Tables   int    `kong:"default='4',help='Independent tables'"`
	Players  int    `kong:"default='4',help='Bots at each table (2 to 10)'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Workers  int    `kong:"default='0',help='Tables played at once, 0 for one per CPU'"`
	LogLevel string `kong:"default='warn',help='Log level'"`
	Out      string `kong:"help='Also write the report to this file'"`
}

func (c *SimulateCmd) Run() error {
	logger, err := newLogger(os.Stderr, c.LogLevel, "simulate")
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(logger)
	defer cancel()

	return c.run(ctx, os.Stdout, quartz.NewReal(), logger)
}

func (c *SimulateCmd) run(ctx context.Context, w io.Writer, clock quartz.Clock, logger *log.Logger) error {
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	}
	seed = randutil.Seed(clock, seed)

	sim, err := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Tables:  c.Tables,
		Players: c.Players,
		Seed:    seed,
		Workers: c.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	logger.Info("Starting simulation", "rounds", c.Rounds, "tables", c.Tables, "players", c.Players, "seed", seed)
	start := clock.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := clock.Since(start).Round(time.Millisecond)

	fmt.Fprintln(w, titleStyle.Render("21 Bust simulation"))
	writeReport(w, seed, stats)
	logger.Info("Simulation finished", "elapsed", elapsed)

	if c.Out != "" {
		err := fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error {
			_, err := writeReport(w, seed, stats)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Report written", "path", c.Out)
	}
	return nil
}

func writeReport(w io.Writer, seed int64, stats *statistics.Statistics) (int, error) {
	return fmt.Fprintf(w, "Seed: %d\n%s", seed, stats.Summary())
}
