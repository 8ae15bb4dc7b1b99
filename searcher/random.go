package searcher

import "math/rand/v2"

// RandomSource picks the candidate a query starts from.
//
// *rand.Rand from math/rand/v2 satisfies it. A source shared by concurrent
// queries must be safe for concurrent use; *rand.Rand is not.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a source backed by the top-level math/rand/v2
// generator, which is safe for concurrent use.
func DefaultSource() RandomSource { return defaultSource{} }

// NewSeededSource returns an independent, reproducible PCG stream.
// It must be confined to one goroutine.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
