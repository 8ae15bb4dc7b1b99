// Package index builds the immutable DistanceIndex that nearest-neighbour
// queries run against.
//
// Building evaluates the distance function on all N² ordered pairs of
// candidates and stores, for every candidate, a permutation of all candidate
// indices sorted ascending by distance. Ties are broken by ascending index,
// so the same candidate sequence and distance function always produce
// bit-identical structures.
//
// # Usage
//
//	idx, err := index.Build(ctx, []float64{0, 10, 20}, distance.Infallible(distance.Absolute))
//	if err != nil {
//	    return err
//	}
//	idx.Order(1) // [1 0 2]
//
// Rows can be computed concurrently:
//
//	idx, err := index.Build(ctx, points, fn, func(o *index.Options) {
//	    o.Workers = runtime.GOMAXPROCS(0)
//	})
//
// # Errors
//
// Build returns ErrEmptyCandidateSet for zero candidates. Failures of the
// distance function, including negative or NaN results, are returned as a
// *DistanceError matching ErrDistanceEvaluation.
package index
