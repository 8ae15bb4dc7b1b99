package searcher

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/orchard/index"
	"github.com/hupe1980/orchard/internal/pool"
	"github.com/hupe1980/orchard/resource"
)

var (
	// ErrInvalidStart is returned when the start candidate is outside the index.
	ErrInvalidStart = errors.New("invalid start candidate")

	// ErrNilIndex is returned when no index is supplied.
	ErrNilIndex = errors.New("nil index")
)

// Nearest returns the candidate of idx closest to query using Orchard's
// algorithm.
//
// The search starts at a random candidate and repeatedly walks the current
// best candidate's neighbour list, jumping to any closer candidate it finds.
// It stops as soon as the distance to the best candidate is at most half the
// distance from that candidate to its own nearest neighbour. If the distance
// function satisfies the triangle inequality no other candidate can then be
// closer, so the result is exact and does not depend on the start.
// Otherwise the search still terminates once the best candidate's list is
// exhausted.
//
// Each candidate is evaluated against the query at most once. The start is
// marked tested before its neighbour list is walked, so it is never
// re-evaluated when it reappears there.
//
// Distances may be +Inf. The bound is never applied while the best distance
// is infinite, so such a search keeps walking until it finds a finite
// distance or exhausts the list.
func Nearest[P any](ctx context.Context, idx *index.DistanceIndex[P], query P, optFns ...func(o *Options)) (Result[P], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if idx == nil {
		return Result[P]{}, ErrNilIndex
	}

	n := idx.Len()
	start, err := pickStart(opts, n)
	if err != nil {
		return Result[P]{}, err
	}

	s := &search[P]{
		idx:   idx,
		query: query,
		rc:    opts.Resource,
		sc:    pool.Get(n),
	}
	defer pool.Put(s.sc)
	if s.rc == nil {
		s.rc = idx.Resource()
	}
	if opts.Trace {
		s.evaluated = roaring.New()
	}

	return s.run(ctx, start)
}

func pickStart(opts Options, n int) (int, error) {
	start := opts.Start
	if start == RandomStart {
		src := opts.Random
		if src == nil {
			src = DefaultSource()
		}
		start = src.IntN(n)
	}
	if start < 0 || start >= n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidStart, start, n)
	}
	return start, nil
}

// search is the state of one query. It never outlives the Nearest call.
type search[P any] struct {
	idx   *index.DistanceIndex[P]
	query P
	rc    *resource.Controller
	sc    *pool.SearchContext

	evaluations int
	evaluated   *roaring.Bitmap
}

func (s *search[P]) run(ctx context.Context, start int) (Result[P], error) {
	n := s.idx.Len()

	best := start
	s.sc.MarkTested(best)
	bestDistance, err := s.evaluate(ctx, best)
	if err != nil {
		return Result[P]{}, err
	}

	stats := Stats{Start: start}

	// A singleton has no neighbour to bound against.
	cursor := n
	if n > 1 {
		cursor = 0
	}

	for cursor < n {
		// An infinite best distance proves nothing, even against an
		// infinite neighbour distance.
		if !math.IsInf(bestDistance, 1) && bestDistance <= 0.5*s.idx.NearestNeighborDistance(best) {
			stats.Pruned = true
			break
		}

		node := s.idx.Neighbor(best, cursor)
		if s.sc.MarkTested(node) {
			cursor++
			continue
		}

		d, err := s.evaluate(ctx, node)
		if err != nil {
			return Result[P]{}, err
		}
		if d < bestDistance {
			// Restart on the new best's list. Tested marks are kept.
			best, bestDistance = node, d
			cursor = 0
			stats.Improvements++
			continue
		}
		cursor++
	}

	stats.Evaluations = s.evaluations
	stats.Evaluated = s.evaluated

	return Result[P]{
		Index:     best,
		Candidate: s.idx.Candidate(best),
		Distance:  bestDistance,
		Stats:     stats,
	}, nil
}

func (s *search[P]) evaluate(ctx context.Context, i int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.rc.AcquireEvaluation(ctx); err != nil {
		return 0, err
	}

	d, err := s.idx.QueryDistance(s.query, i)
	if err != nil {
		return 0, err
	}

	s.evaluations++
	if s.evaluated != nil {
		s.evaluated.Add(uint32(i))
	}
	return d, nil
}
