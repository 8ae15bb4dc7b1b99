package orchard

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searchCounter     prometheus.Counter
//	    evaluationsHisto  prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(evaluations int, pruned bool, duration time.Duration, err error) {
//	    p.searchCounter.Inc()
//	    p.evaluationsHisto.Observe(float64(evaluations))
//	}
type MetricsCollector interface {
	// RecordBuild is called after each index build.
	// candidates is the number of points, err is nil if successful.
	RecordBuild(candidates int, duration time.Duration, err error)

	// RecordSearch is called after each query.
	// evaluations is the number of distance evaluations against the query,
	// pruned reports whether Orchard's bound ended the search.
	RecordSearch(evaluations int, pruned bool, duration time.Duration, err error)

	// RecordBatch is called after each batch of queries.
	RecordBatch(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordSearch(int, bool, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildCandidates   atomic.Int64
	BuildTotalNanos   atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchPruned      atomic.Int64
	SearchEvaluations atomic.Int64
	SearchTotalNanos  atomic.Int64
	BatchCount        atomic.Int64
	BatchQueries      atomic.Int64
	BatchErrors       atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(candidates int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildCandidates.Add(int64(candidates))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(evaluations int, pruned bool, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.SearchEvaluations.Add(int64(evaluations))
	if err != nil {
		b.SearchErrors.Add(1)
	}
	if pruned {
		b.SearchPruned.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchQueries.Add(int64(count))
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:             b.BuildCount.Load(),
		BuildErrors:            b.BuildErrors.Load(),
		BuildCandidates:        b.BuildCandidates.Load(),
		BuildAvgNanos:          avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		SearchCount:            b.SearchCount.Load(),
		SearchErrors:           b.SearchErrors.Load(),
		SearchPruned:           b.SearchPruned.Load(),
		SearchAvgEvaluations:   avg(b.SearchEvaluations.Load(), b.SearchCount.Load()),
		SearchAvgNanos:         avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		BatchCount:             b.BatchCount.Load(),
		BatchQueries:           b.BatchQueries.Load(),
		BatchErrors:            b.BatchErrors.Load(),
		SearchTotalEvaluations: b.SearchEvaluations.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount             int64
	BuildErrors            int64
	BuildCandidates        int64
	BuildAvgNanos          int64
	SearchCount            int64
	SearchErrors           int64
	SearchPruned           int64
	SearchAvgEvaluations   int64
	SearchTotalEvaluations int64
	SearchAvgNanos         int64
	BatchCount             int64
	BatchQueries           int64
	BatchErrors            int64
}
