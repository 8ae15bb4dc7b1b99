package index

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/orchard/distance"
	"github.com/hupe1980/orchard/resource"
)

// DistanceIndex holds the full pairwise distance matrix of a candidate set
// and, per candidate, every candidate index ordered by distance from it.
//
// A DistanceIndex is immutable once Build returns and is safe for concurrent
// readers.
type DistanceIndex[P any] struct {
	candidates []P
	fn         distance.Func[P]
	n          int

	// Row-major N×N matrices.
	distances []float64
	order     []int32

	rc       *resource.Controller
	reserved int64
	closed   atomic.Bool
}

// Build computes the distance matrix and neighbour orderings for candidates.
//
// Every ordered pair is evaluated, including each candidate with itself.
// Rows are sorted with a stable sort so ties keep ascending index order.
// If the distance function fails, Build returns a *DistanceError and no index.
func Build[P any](ctx context.Context, candidates []P, fn distance.Func[P], optFns ...func(o *Options)) (*DistanceIndex[P], error) {
	opts := DefaultOptions
	for _, f := range optFns {
		f(&opts)
	}

	n := len(candidates)
	if n == 0 {
		return nil, ErrEmptyCandidateSet
	}
	if fn == nil {
		return nil, ErrNilDistanceFunc
	}
	if n > MaxCandidates {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyCandidates, n, MaxCandidates)
	}

	reserved := EstimateMemory(n)
	if err := opts.Resource.AcquireMemory(reserved); err != nil {
		return nil, fmt.Errorf("reserve %d bytes for %d candidates: %w", reserved, n, err)
	}

	x := &DistanceIndex[P]{
		candidates: slices.Clone(candidates),
		fn:         fn,
		n:          n,
		distances:  make([]float64, n*n),
		order:      make([]int32, n*n),
		rc:         opts.Resource,
		reserved:   reserved,
	}

	if err := x.fill(ctx, opts.Workers); err != nil {
		opts.Resource.ReleaseMemory(reserved)
		return nil, err
	}

	return x, nil
}

// MaxCandidates is the largest candidate set Build accepts. It keeps order
// entries within int32 and the matrix size within int64.
const MaxCandidates = 1 << 29

// EstimateMemory returns the bytes held by the matrices of an index over n
// candidates. It saturates at math.MaxInt64 above MaxCandidates.
func EstimateMemory(n int) int64 {
	if n > MaxCandidates {
		return math.MaxInt64
	}
	cells := int64(n) * int64(n)
	return cells * (8 + 4)
}

func (x *DistanceIndex[P]) fill(ctx context.Context, workers int) error {
	workers = min(max(1, workers), x.n)

	if workers == 1 {
		for i := range x.n {
			if err := x.buildRow(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range x.n {
		g.Go(func() error {
			return x.buildRow(gctx, i)
		})
	}

	return g.Wait()
}

// buildRow writes distances[i][*] and order[i]. Rows are disjoint, so
// concurrent calls for different i never share memory.
func (x *DistanceIndex[P]) buildRow(ctx context.Context, i int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := x.rc.AcquireWorker(ctx); err != nil {
		return err
	}
	defer x.rc.ReleaseWorker()

	n := x.n
	row := x.distances[i*n : (i+1)*n]
	for j := range n {
		if err := x.rc.AcquireEvaluation(ctx); err != nil {
			return err
		}
		d, err := evaluate(x.fn, x.candidates[i], x.candidates[j])
		if err != nil {
			return &DistanceError{Row: i, Col: j, Err: err}
		}
		row[j] = d
	}

	ord := x.order[i*n : (i+1)*n]
	for j := range ord {
		ord[j] = int32(j)
	}
	slices.SortStableFunc(ord, func(a, b int32) int {
		return cmp.Compare(row[a], row[b])
	})

	return nil
}

func evaluate[P any](fn distance.Func[P], a, b P) (float64, error) {
	d, err := fn(a, b)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || d < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDistance, d)
	}
	return d, nil
}

// Len returns the number of candidates.
func (x *DistanceIndex[P]) Len() int { return x.n }

// Candidate returns candidate i.
func (x *DistanceIndex[P]) Candidate(i int) P { return x.candidates[i] }

// Candidates returns a copy of the candidate slice in index order.
func (x *DistanceIndex[P]) Candidates() []P { return slices.Clone(x.candidates) }

// Distance returns the precomputed distance from candidate i to candidate j.
func (x *DistanceIndex[P]) Distance(i, j int) float64 { return x.distances[i*x.n+j] }

// Row returns a copy of the distances from candidate i to every candidate.
func (x *DistanceIndex[P]) Row(i int) []float64 {
	return slices.Clone(x.distances[i*x.n : (i+1)*x.n])
}

// Neighbor returns the k-th entry of candidate i's ordered neighbour list.
// Neighbor(i, 0) is i itself unless another candidate ties it at distance 0
// with a smaller index.
func (x *DistanceIndex[P]) Neighbor(i, k int) int { return int(x.order[i*x.n+k]) }

// Order returns a copy of candidate i's ordered neighbour list.
func (x *DistanceIndex[P]) Order(i int) []int {
	ord := x.order[i*x.n : (i+1)*x.n]
	out := make([]int, len(ord))
	for k, j := range ord {
		out[k] = int(j)
	}
	return out
}

// NearestNeighborDistance returns the distance from i to the second entry
// of its ordered list, which is its nearest other candidate whenever its
// self-distance is 0. It is 0 for a singleton index.
func (x *DistanceIndex[P]) NearestNeighborDistance(i int) float64 {
	if x.n < 2 {
		return 0
	}
	return x.Distance(i, x.Neighbor(i, 1))
}

// QueryDistance evaluates the distance function between query and candidate j.
// Failures are reported as a *DistanceError with Row == QueryRow.
func (x *DistanceIndex[P]) QueryDistance(query P, j int) (float64, error) {
	d, err := evaluate(x.fn, query, x.candidates[j])
	if err != nil {
		return 0, &DistanceError{Row: QueryRow, Col: j, Err: err}
	}
	return d, nil
}

// DistanceFunc returns the distance function the index was built with.
func (x *DistanceIndex[P]) DistanceFunc() distance.Func[P] { return x.fn }

// Resource returns the controller the index was built with, or nil.
func (x *DistanceIndex[P]) Resource() *resource.Controller { return x.rc }

// MemoryBytes returns the bytes reserved for the index matrices.
func (x *DistanceIndex[P]) MemoryBytes() int64 { return x.reserved }

// Close returns the index's memory reservation to its resource controller.
// It is safe to call more than once.
func (x *DistanceIndex[P]) Close() error {
	if x.closed.Swap(true) {
		return nil
	}
	x.rc.ReleaseMemory(x.reserved)
	return nil
}
