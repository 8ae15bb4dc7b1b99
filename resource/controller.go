package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for index memory (distance matrix
	// plus neighbour orderings). If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxWorkers is the maximum number of goroutines computing distance rows
	// at the same time, across all builds sharing this controller.
	// If 0, defaults to 1.
	MaxWorkers int64

	// EvaluationsPerSec caps the number of distance evaluations per second.
	// Useful when the distance function calls an external service.
	// If 0, unlimited.
	EvaluationsPerSec float64

	// EvaluationBurst is the token bucket size for EvaluationsPerSec.
	// If 0, defaults to max(1, EvaluationsPerSec).
	EvaluationBurst int
}

// Controller manages shared resources (memory, workers, evaluation rate).
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Concurrency
	workerSem *semaphore.Weighted

	// Distance evaluations
	evalLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:       cfg,
		workerSem: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.EvaluationsPerSec > 0 {
		burst := cfg.EvaluationBurst
		if burst <= 0 {
			burst = max(1, int(cfg.EvaluationsPerSec))
		}
		c.evalLimiter = rate.NewLimiter(rate.Limit(cfg.EvaluationsPerSec), burst)
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
// Non-blocking - callers control retry/backoff policy.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// MaxWorkers returns the configured worker limit.
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxWorkers
}

// AcquireWorker reserves a worker slot.
// Blocks if all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workerSem.TryAcquire(1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workerSem.Release(1)
}

// AcquireEvaluation waits until the evaluation limit allows one more
// distance evaluation.
func (c *Controller) AcquireEvaluation(ctx context.Context) error {
	if c == nil || c.evalLimiter == nil {
		return nil
	}
	return c.evalLimiter.Wait(ctx)
}

// TryAcquireEvaluation attempts to take an evaluation token without blocking.
func (c *Controller) TryAcquireEvaluation() bool {
	if c == nil || c.evalLimiter == nil {
		return true
	}
	return c.evalLimiter.AllowN(time.Now(), 1)
}

// RateLimited reports whether distance evaluations are rate limited.
func (c *Controller) RateLimited() bool {
	return c != nil && c.evalLimiter != nil
}
