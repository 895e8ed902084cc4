package maze

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns a generator seeded from the runtime's random hash seeds.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewSeededRand returns a deterministic generator; equal seeds produce equal
// mazes for equal dimensions.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
