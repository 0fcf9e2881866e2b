package statistics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyonebust/internal/game"
)

func stick(name string, total int, won bool) PlayerResult {
	return PlayerResult{Name: name, State: game.Stick, Total: total, Won: won}
}

func bust(name string, total int) PlayerResult {
	return PlayerResult{Name: name, State: game.Bust, Total: total}
}

func sampleRounds() []RoundResult {
	return []RoundResult{
		{Players: []PlayerResult{stick("Ann", 19, true), stick("Bob", 17, false), bust("Cat", 24)}},
		{Players: []PlayerResult{stick("Ann", 20, true), stick("Bob", 20, true), stick("Cat", 15, false)}},
		{Players: []PlayerResult{bust("Ann", 22), bust("Bob", 25), bust("Cat", 23)}},
		{Players: []PlayerResult{bust("Ann", 26), stick("Bob", 14, false), stick("Cat", 21, true)}},
	}
}

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()
	s := New()

	assert.Zero(t, s.WinRate("Ann"))
	assert.Zero(t, s.BustRate("Ann"))
	assert.Zero(t, s.AverageStickTotal("Ann"))
	assert.Zero(t, s.MeanWinningTotal())
	assert.Zero(t, s.MedianWinningTotal())
	assert.Zero(t, s.WinningTotalStdDev())
	assert.Empty(t, s.PlayerNames())
	assert.Error(t, s.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	t.Parallel()
	s := New()
	for _, r := range sampleRounds() {
		s.Add(r)
	}
	require.NoError(t, s.Validate())

	assert.Equal(t, 4, s.Rounds)
	assert.Equal(t, 1, s.NoWinnerRounds)
	assert.Equal(t, 1, s.SharedWinRounds)
	assert.Equal(t, []int{19, 20, 21}, s.WinningTotals)

	assert.Equal(t, &PlayerStats{Rounds: 4, Wins: 2, Sticks: 2, Busts: 2, StickTotalSum: 39}, s.Players["Ann"])
	assert.InDelta(t, 0.5, s.WinRate("Ann"), 1e-9)
	assert.InDelta(t, 0.5, s.BustRate("Ann"), 1e-9)
	assert.InDelta(t, 19.5, s.AverageStickTotal("Ann"), 1e-9)
	assert.InDelta(t, 17.0, s.AverageStickTotal("Bob"), 1e-9)
	assert.InDelta(t, 0.25, s.WinRate("Cat"), 1e-9)

	assert.InDelta(t, 20.0, s.MeanWinningTotal(), 1e-9)
	assert.InDelta(t, 20.0, s.MedianWinningTotal(), 1e-9)
	assert.InDelta(t, 1.0, s.WinningTotalStdDev(), 1e-9)

	assert.Equal(t, []string{"Ann", "Bob", "Cat"}, s.PlayerNames())
}

func TestStatisticsMerge(t *testing.T) {
	t.Parallel()
	rounds := sampleRounds()

	whole := New()
	for _, r := range rounds {
		whole.Add(r)
	}

	left, right := New(), New()
	for _, r := range rounds[:2] {
		left.Add(r)
	}
	for _, r := range rounds[2:] {
		right.Add(r)
	}
	merged := New()
	merged.Merge(left)
	merged.Merge(right)

	assert.Equal(t, whole, merged)
	require.NoError(t, merged.Validate())
}

func TestStatisticsValidateCatchesInconsistency(t *testing.T) {
	t.Parallel()
	s := New()
	for _, r := range sampleRounds() {
		s.Add(r)
	}

	s.Players["Bob"].Busts++
	assert.ErrorContains(t, s.Validate(), "player Bob")

	s.Players["Bob"].Busts--
	s.Players["Cat"].Wins = 0
	assert.ErrorContains(t, s.Validate(), "total wins")

	s.Players["Cat"].Wins = 1
	s.WinningTotals[0] = 30
	assert.ErrorContains(t, s.Validate(), "impossible winning total")
}

func TestStatisticsSummary(t *testing.T) {
	t.Parallel()
	s := New()
	for _, r := range sampleRounds() {
		s.Add(r)
	}

	summary := s.Summary()
	assert.Contains(t, summary, "Rounds: 4 (no winner 1, shared 1)")
	assert.Contains(t, summary, "mean 20.00")
	assert.Contains(t, summary, "Ann")
	assert.Less(t, strings.Index(summary, "Ann"), strings.Index(summary, "Cat"))
}
