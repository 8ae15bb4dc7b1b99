package orchard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/orchard/distance"
	"github.com/hupe1980/orchard/index"
	"github.com/hupe1980/orchard/searcher"
)

// Index answers nearest-neighbour queries over a fixed candidate set.
//
// It is immutable after New returns and safe for concurrent queries.
type Index[P any] struct {
	idx      *index.DistanceIndex[P]
	metrics  MetricsCollector
	logger   *Logger
	observer Observer[P]
}

// New precomputes all pairwise distances between candidates and returns an
// Index ready for queries.
//
// Building costs len(candidates)² distance evaluations. If fn fails the
// error is returned and no index is produced.
func New[P any](ctx context.Context, candidates []P, fn distance.Func[P], opts ...Option) (*Index[P], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var observer Observer[P]
	if o.observer != nil {
		obs, ok := o.observer.(Observer[P])
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrObserverType, o.observer)
		}
		observer = obs
	}

	start := time.Now()
	idx, err := index.Build(ctx, candidates, fn, func(bo *index.Options) {
		bo.Workers = o.workers
		bo.Resource = o.resource
	})
	duration := time.Since(start)

	o.metricsCollector.RecordBuild(len(candidates), duration, err)
	o.logger.LogBuild(ctx, len(candidates), o.workers, duration, err)
	if err != nil {
		return nil, err
	}

	return &Index[P]{
		idx:      idx,
		metrics:  o.metricsCollector,
		logger:   o.logger,
		observer: observer,
	}, nil
}

// Nearest returns the candidate closest to query.
//
// The result is exact when the distance function is a metric. Otherwise a
// candidate is still returned, but it may not be the closest.
func (x *Index[P]) Nearest(ctx context.Context, query P, optFns ...func(o *SearchOptions)) (searcher.Result[P], error) {
	opts := SearchOptions{Start: RandomStart}
	for _, fn := range optFns {
		fn(&opts)
	}
	return x.nearest(ctx, query, opts)
}

func (x *Index[P]) nearest(ctx context.Context, query P, opts SearchOptions) (searcher.Result[P], error) {
	start := time.Now()
	res, err := searcher.Nearest(ctx, x.idx, query, func(so *searcher.Options) {
		so.Start = opts.Start
		so.Random = opts.Random
		so.Trace = opts.Trace
	})
	duration := time.Since(start)

	x.metrics.RecordSearch(res.Evaluations, res.Pruned, duration, err)
	x.logger.LogSearch(ctx, res.Start, res.Evaluations, res.Pruned, err)
	if err != nil {
		return searcher.Result[P]{}, err
	}

	if x.observer != nil {
		x.observer(ctx, query, res)
	}
	return res, nil
}

// NearestBatch runs one independent query per element of queries,
// concurrently, and returns the results in query order.
//
// Each query draws its start from its own seeded stream when
// BatchOptions.Seeded is set, and from the goroutine-safe default source
// otherwise. An observer is called from the worker goroutines and must be
// safe for concurrent use. The first failure cancels the remaining queries.
func (x *Index[P]) NearestBatch(ctx context.Context, queries []P, optFns ...func(o *BatchOptions)) ([]searcher.Result[P], error) {
	opts := defaultBatchOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	results := make([]searcher.Result[P], len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Concurrency))

	for i, q := range queries {
		g.Go(func() error {
			so := SearchOptions{Start: RandomStart, Trace: opts.Trace}
			if opts.Seeded {
				so.Random = searcher.NewSeededSource(opts.Seed + uint64(i))
			}
			res, err := x.nearest(gctx, q, so)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	duration := time.Since(start)
	x.metrics.RecordBatch(len(queries), duration, err)
	x.logger.LogBatch(ctx, len(queries), duration, err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Len returns the number of candidates.
func (x *Index[P]) Len() int { return x.idx.Len() }

// Candidate returns candidate i.
func (x *Index[P]) Candidate(i int) P { return x.idx.Candidate(i) }

// DistanceIndex returns the underlying precomputed index.
func (x *Index[P]) DistanceIndex() *index.DistanceIndex[P] { return x.idx }

// Close releases the index's memory reservation with its resource controller.
func (x *Index[P]) Close() error { return x.idx.Close() }
