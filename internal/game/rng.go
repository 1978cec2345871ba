package game

import "math/rand"

// RNG is the injected randomness stream the rules consume where the
// rules call for a random pick (buff tile selection). Implementations
// must be deterministic for a given seed so replays reproduce matches.
type RNG interface {
	Intn(n int) int
}

// NewSeededRNG returns the standard deterministic stream for a seed.
func NewSeededRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}
