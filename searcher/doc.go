// Package searcher answers nearest-neighbour queries against an
// index.DistanceIndex with Orchard's algorithm.
//
// A query needs nothing but the distance function: it starts at a random
// candidate, walks that candidate's precomputed neighbour list, and jumps to
// every closer candidate it finds. Orchard's bound ends the walk early:
//
//	d(query, best) <= 0.5 * d(best, nearest neighbour of best)
//
// Under the triangle inequality no other candidate can then be closer to the
// query, so the result is exact regardless of the start. For distance
// functions that are not metrics the search still terminates and returns a
// candidate, but the bound may end it before the true nearest is reached.
//
// # Randomness
//
// The start candidate comes from a RandomSource supplied per query:
//
//	res, err := searcher.Nearest(ctx, idx, q, func(o *searcher.Options) {
//	    o.Random = searcher.NewSeededSource(42)
//	})
//
// DefaultSource is safe for concurrent queries. Seeded sources are not and
// should be confined to one goroutine.
//
// # Concurrency
//
// Query state (tested marks, best candidate, cursor) lives only inside the
// call. Any number of goroutines may query the same index at once.
package searcher
