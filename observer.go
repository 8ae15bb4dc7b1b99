package orchard

import (
	"context"

	"github.com/hupe1980/orchard/searcher"
)

// Observer is called after every successful query with the query's context,
// the query point and its result. It runs on the querying goroutine and must
// not retain r.Evaluated.
type Observer[P any] func(ctx context.Context, query P, r searcher.Result[P])

// LogObserver reports every query result through logger at info level.
func LogObserver[P any](logger *Logger) Observer[P] {
	return func(ctx context.Context, query P, r searcher.Result[P]) {
		logger.InfoContext(ctx, "nearest neighbour found",
			"query", query,
			"index", r.Index,
			"candidate", r.Candidate,
			"distance", r.Distance,
		)
	}
}
