// Package randutil builds the *rand.Rand instances the game is driven by.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Two 64-bit PCG seeds are derived from the one value so that every call site
// replays the same sequence for the same seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed unchanged when it is non-zero, otherwise a seed taken
// from the clock. Callers log the result so a game can be replayed.
func Seed(clock quartz.Clock, seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return clock.Now().UnixNano()
}

// FromClock is New(Seed(clock, seed)) and also reports the seed used
func FromClock(clock quartz.Clock, seed int64) (*rand.Rand, int64) {
	seed = Seed(clock, seed)
	return New(seed), seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
