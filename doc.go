// Package orchard provides exact nearest-neighbour search over a fixed set
// of points under any caller-supplied metric.
//
// Orchard needs no coordinates, trees or vector space. It precomputes all
// pairwise distances between the candidates and, per candidate, the list of
// all candidates ordered by distance. A query then runs Orchard's algorithm:
// a local search that starts at a random candidate, jumps to any closer
// candidate on the current best's list, and stops once the triangle
// inequality proves nothing can be closer.
//
// # Quick Start
//
//	ctx := context.Background()
//	idx, err := orchard.New(ctx, []float64{0, 10, 20}, distance.Infallible(distance.Absolute))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, _ := idx.Nearest(ctx, 7)
//	fmt.Println(res.Index, res.Candidate, res.Distance) // 1 10 3
//
// # Arbitrary Metrics
//
// Points are opaque. Strings under edit distance work like vectors under
// Euclidean distance:
//
//	words, _ := orchard.New(ctx, dictionary, distance.Infallible(distance.Levenshtein))
//	res, _ := words.Nearest(ctx, "ochard")
//
// # Cost Model
//
//   - Build: N² distance evaluations, O(N² log N) sorting, N² × 12 bytes
//   - Query: between 1 and N distance evaluations, no allocation beyond a pooled bitset
//
// # Correctness
//
// Results are exact whenever the distance function is a metric (in
// particular, it satisfies the triangle inequality). For other functions the
// search still terminates and returns a candidate, which may not be the
// nearest.
//
// # Randomness and Concurrency
//
// The start candidate is drawn per query from an injectable source
// (WithRandomSource, WithSeed, WithStart). The index is read-only after
// New, so any number of goroutines may query it at once; NearestBatch does
// this with a bounded worker pool.
//
// # Observability
//
// WithLogger, WithMetricsCollector and WithObserver report builds and
// queries. The library itself never writes output unless a logger is set.
package orchard
