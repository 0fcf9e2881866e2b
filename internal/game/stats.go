package game

// Stats counts how far every player has got with their turn this round. It
// is rebuilt by Deal and read by Deciders to choose between stick and twist.
type Stats struct {
	PlayerCount     int
	UnfinishedCount int // yet to start or finish their turn
	StickingCount   int
	BustCount       int
}

// NewStats returns stats for a round where nobody has played yet
func NewStats(playerCount int) Stats {
	return Stats{
		PlayerCount:     playerCount,
		UnfinishedCount: playerCount,
	}
}

// Update records a player finishing their turn in state. It does nothing once
// every player is counted as finished, and ignores states that do not end a
// turn.
func (s *Stats) Update(state PlayerState) {
	if s.UnfinishedCount == 0 {
		return
	}

	switch state {
	case Stick:
		s.StickingCount++
		s.UnfinishedCount--
	case Bust:
		s.BustCount++
		s.UnfinishedCount--
	}
}
