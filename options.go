package orchard

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/orchard/resource"
	"github.com/hupe1980/orchard/searcher"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	observer         any // Observer[P], checked by New
	workers          int
	resource         *resource.Controller
}

// Option configures New.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &orchard.BasicMetricsCollector{}
//	idx, _ := orchard.New(ctx, points, distance.Euclidean, orchard.WithMetricsCollector(metrics))
//	// ... query ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg evaluations: %d\n", stats.SearchCount, stats.SearchAvgEvaluations)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := orchard.NewJSONLogger(slog.LevelInfo)
//	idx, _ := orchard.New(ctx, points, fn, orchard.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithObserver registers a hook called after every successful query.
// The observer's point type must match the index's, otherwise New fails.
//
//	idx, _ := orchard.New(ctx, words, fn, orchard.WithObserver(orchard.LogObserver[string](logger)))
func WithObserver[P any](fn Observer[P]) Option {
	return func(o *options) {
		if fn == nil {
			o.observer = nil
			return
		}
		o.observer = fn
	}
}

// WithWorkers sets the number of goroutines computing distance rows during
// the build. The built index is identical for every worker count.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithResourceController shares memory, worker and evaluation-rate limits
// with other indexes using the same controller. It applies to the build and
// to every query.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resource = rc
	}
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		workers:          1,
	}
}

// RandomStart lets the random source choose the start candidate.
const RandomStart = searcher.RandomStart

// SearchOptions configures a single Nearest call.
type SearchOptions struct {
	// Start is the candidate index the search begins at, or RandomStart.
	Start int

	// Random picks the start when Start is RandomStart.
	// If nil, a goroutine-safe default source is used.
	Random searcher.RandomSource

	// Trace records every evaluated candidate in Result.Evaluated.
	Trace bool
}

// BatchOptions configures NearestBatch.
type BatchOptions struct {
	// Concurrency bounds the queries running at once.
	// Defaults to runtime.GOMAXPROCS(0).
	Concurrency int

	// Seed, when Seeded is set, gives query i its own reproducible
	// random stream derived from Seed+i.
	Seed   uint64
	Seeded bool

	// Trace records every evaluated candidate in each Result.Evaluated.
	Trace bool
}

func defaultBatchOptions() BatchOptions {
	return BatchOptions{
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithStart starts the search at candidate i.
func WithStart(i int) func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Start = i
	}
}

// WithRandomSource picks the start candidate from src.
func WithRandomSource(src searcher.RandomSource) func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Random = src
	}
}

// WithSeed picks the start candidate from a fresh stream seeded with seed.
func WithSeed(seed uint64) func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Random = searcher.NewSeededSource(seed)
	}
}

// WithTrace records the evaluated candidates of a query.
func WithTrace() func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Trace = true
	}
}
