// Package pool provides pooled per-query scratch state for nearest-neighbour search.
// Uses sync.Pool for memory reuse and bitsets for tested-candidate tracking.
package pool

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

const (
	// DefaultCandidates is the initial bitset capacity.
	DefaultCandidates = 1024

	// MaxRetainedCandidates bounds the bitset size kept in the pool.
	// Larger contexts are dropped on Put so one huge index does not pin memory.
	MaxRetainedCandidates = 1 << 20
)

// SearchContext holds the state of one query. It is owned by a single
// goroutine between Get and Put.
type SearchContext struct {
	// Tested marks candidates whose distance to the query has been evaluated.
	Tested *bitset.BitSet

	size uint
}

var searchContextPool = sync.Pool{
	New: func() any {
		return &SearchContext{
			Tested: bitset.New(DefaultCandidates),
		}
	},
}

// Get retrieves a SearchContext able to track n candidates, with no
// candidate marked tested.
func Get(n int) *SearchContext {
	sc := searchContextPool.Get().(*SearchContext)
	sc.Reset(n)
	return sc
}

// Put returns a SearchContext to the pool for reuse.
func Put(sc *SearchContext) {
	if sc == nil {
		return
	}
	if sc.Tested.Len() > MaxRetainedCandidates {
		return
	}
	searchContextPool.Put(sc)
}

// Reset clears all marks and sizes the context for n candidates.
func (sc *SearchContext) Reset(n int) {
	size := uint(max(n, 0))
	if size > sc.Tested.Len() {
		sc.Tested = bitset.New(size)
	} else {
		sc.Tested.ClearAll()
	}
	sc.size = size
}

// MarkTested marks candidate i as tested.
// Returns true if it was already tested, false otherwise.
func (sc *SearchContext) MarkTested(i int) bool {
	if sc.Tested.Test(uint(i)) {
		return true
	}
	sc.Tested.Set(uint(i))
	return false
}

// IsTested reports whether candidate i has been tested.
func (sc *SearchContext) IsTested(i int) bool {
	return sc.Tested.Test(uint(i))
}

// TestedCount returns the number of tested candidates.
func (sc *SearchContext) TestedCount() int {
	return int(sc.Tested.Count())
}

// Size returns the number of candidates the context was sized for.
func (sc *SearchContext) Size() int {
	return int(sc.size)
}
