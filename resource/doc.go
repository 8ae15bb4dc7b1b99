// Package resource implements a Controller for shared limits on index builds
// and queries.
//
// The Controller manages three resource types:
//
//   - Memory: Track and limit the bytes held by distance indexes (non-blocking, fail-fast)
//   - Workers: Limit the goroutines computing distance rows during builds
//   - Evaluations: Rate-limit calls to the distance function
//
// # Memory Management
//
// AcquireMemory is non-blocking and returns ErrMemoryLimitExceeded if the
// limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
// # Evaluation Rate Limiting
//
// Distance functions backed by a remote service can be throttled with a
// token bucket:
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:        8,
//	    EvaluationsPerSec: 500,
//	})
//
//	if err := rc.AcquireEvaluation(ctx); err != nil {
//	    return err
//	}
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
