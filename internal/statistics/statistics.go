// Package statistics aggregates the outcomes of simulated 21 Bust rounds.
package statistics

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lox/twentyonebust/internal/game"
)

// PlayerResult is how one player finished a round
type PlayerResult struct {
	Name  string
	State game.PlayerState // Stick or Bust
	Total int              // best total at the end of the round
	Won   bool
}

// RoundResult represents the outcome of a single round
type RoundResult struct {
	Seed    int64 // seed of the table the round was played on
	Players []PlayerResult
}

// winners returns how many players won and the total they won on
func (r RoundResult) winners() (count, total int) {
	for _, p := range r.Players {
		if p.Won {
			count++
			total = p.Total
		}
	}
	return count, total
}

// PlayerStats tracks one player across every round they played
type PlayerStats struct {
	Rounds        int
	Wins          int
	Sticks        int
	Busts         int
	StickTotalSum int
}

// Statistics tracks simulation results across rounds and tables
type Statistics struct {
	Rounds          int
	NoWinnerRounds  int // everyone went bust
	SharedWinRounds int // two or more players tied on the winning total

	// Winning totals, for the distribution of what it took to win
	SumWinning    float64
	SumWinning2   float64
	WinningTotals []int

	Players map[string]*PlayerStats
}

// New returns empty statistics
func New() *Statistics {
	return &Statistics{Players: make(map[string]*PlayerStats)}
}

func (s *Statistics) player(name string) *PlayerStats {
	if s.Players == nil {
		s.Players = make(map[string]*PlayerStats)
	}
	ps, ok := s.Players[name]
	if !ok {
		ps = &PlayerStats{}
		s.Players[name] = ps
	}
	return ps
}

// Add incorporates a round into the statistics
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++

	count, total := result.winners()
	switch {
	case count == 0:
		s.NoWinnerRounds++
	default:
		if count > 1 {
			s.SharedWinRounds++
		}
		s.SumWinning += float64(total)
		s.SumWinning2 += float64(total * total)
		s.WinningTotals = append(s.WinningTotals, total)
	}

	for _, r := range result.Players {
		ps := s.player(r.Name)
		ps.Rounds++
		switch r.State {
		case game.Stick:
			ps.Sticks++
			ps.StickTotalSum += r.Total
		case game.Bust:
			ps.Busts++
		}
		if r.Won {
			ps.Wins++
		}
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.NoWinnerRounds += other.NoWinnerRounds
	s.SharedWinRounds += other.SharedWinRounds
	s.SumWinning += other.SumWinning
	s.SumWinning2 += other.SumWinning2
	s.WinningTotals = append(s.WinningTotals, other.WinningTotals...)

	for name, o := range other.Players {
		ps := s.player(name)
		ps.Rounds += o.Rounds
		ps.Wins += o.Wins
		ps.Sticks += o.Sticks
		ps.Busts += o.Busts
		ps.StickTotalSum += o.StickTotalSum
	}
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// WinRate returns the share of rounds the player won, ties included
func (s *Statistics) WinRate(name string) float64 {
	ps, ok := s.Players[name]
	if !ok {
		return 0
	}
	return ratio(ps.Wins, ps.Rounds)
}

// BustRate returns the share of rounds the player went bust
func (s *Statistics) BustRate(name string) float64 {
	ps, ok := s.Players[name]
	if !ok {
		return 0
	}
	return ratio(ps.Busts, ps.Rounds)
}

// AverageStickTotal returns the mean best total the player stuck on
func (s *Statistics) AverageStickTotal(name string) float64 {
	ps, ok := s.Players[name]
	if !ok {
		return 0
	}
	return ratio(ps.StickTotalSum, ps.Sticks)
}

// MeanWinningTotal returns the mean total of rounds that had a winner
func (s *Statistics) MeanWinningTotal() float64 {
	n := len(s.WinningTotals)
	if n == 0 {
		return 0
	}
	return s.SumWinning / float64(n)
}

// WinningTotalStdDev returns the sample standard deviation of winning totals
func (s *Statistics) WinningTotalStdDev() float64 {
	n := len(s.WinningTotals)
	if n < 2 {
		return 0
	}
	mean := s.MeanWinningTotal()
	variance := (s.SumWinning2 - float64(n)*mean*mean) / float64(n-1)
	return math.Sqrt(max(variance, 0))
}

// MedianWinningTotal returns the median total of rounds that had a winner
func (s *Statistics) MedianWinningTotal() float64 {
	if len(s.WinningTotals) == 0 {
		return 0
	}
	sorted := slices.Clone(s.WinningTotals)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// PlayerNames returns every player, most wins first then by name
func (s *Statistics) PlayerNames() []string {
	names := make([]string, 0, len(s.Players))
	for name := range s.Players {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(
			cmp.Compare(s.Players[b].Wins, s.Players[a].Wins),
			strings.Compare(a, b),
		)
	})
	return names
}

// Validate checks the totals agree with each other
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if s.NoWinnerRounds+s.SharedWinRounds > s.Rounds {
		return fmt.Errorf("no-winner rounds (%d) plus shared-win rounds (%d) exceed rounds (%d)",
			s.NoWinnerRounds, s.SharedWinRounds, s.Rounds)
	}
	if won := s.Rounds - s.NoWinnerRounds; len(s.WinningTotals) != won {
		return fmt.Errorf("winning totals (%d) do not match rounds with a winner (%d)", len(s.WinningTotals), won)
	}
	for _, total := range s.WinningTotals {
		if total < 2 || total > game.BustLimit {
			return fmt.Errorf("impossible winning total: %d", total)
		}
	}

	wins := 0
	for name, ps := range s.Players {
		if ps.Sticks+ps.Busts != ps.Rounds {
			return fmt.Errorf("player %s: sticks (%d) plus busts (%d) do not match rounds (%d)",
				name, ps.Sticks, ps.Busts, ps.Rounds)
		}
		if ps.Wins > ps.Sticks {
			return fmt.Errorf("player %s: wins (%d) exceed sticks (%d)", name, ps.Wins, ps.Sticks)
		}
		wins += ps.Wins
	}

	// every round with a winner has at least one, shared rounds at least two
	if minWins := s.Rounds - s.NoWinnerRounds + s.SharedWinRounds; wins < minWins {
		return fmt.Errorf("total wins (%d) below rounds won (%d)", wins, minWins)
	}
	return nil
}

// Summary renders a plain text report
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds: %d (no winner %d, shared %d)\n", s.Rounds, s.NoWinnerRounds, s.SharedWinRounds)
	fmt.Fprintf(&b, "Winning total: mean %.2f, median %.1f, stddev %.2f\n",
		s.MeanWinningTotal(), s.MedianWinningTotal(), s.WinningTotalStdDev())
	fmt.Fprintf(&b, "%-12s %8s %8s %8s %10s\n", "Player", "Wins", "Win%", "Bust%", "Avg stick")
	for _, name := range s.PlayerNames() {
		fmt.Fprintf(&b, "%-12s %8d %7.1f%% %7.1f%% %10.2f\n",
			name,
			s.Players[name].Wins,
			100*s.WinRate(name),
			100*s.BustRate(name),
			s.AverageStickTotal(name))
	}
	return b.String()
}
