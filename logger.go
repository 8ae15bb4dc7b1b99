package orchard

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with orchard-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCandidates adds a candidates field to the logger.
func (l *Logger) WithCandidates(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("candidates", n),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs an index build.
func (l *Logger) LogBuild(ctx context.Context, candidates, workers int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"candidates", candidates,
			"workers", workers,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"candidates", candidates,
			"workers", workers,
			"evaluations", candidates*candidates,
			"duration", duration,
		)
	}
}

// LogSearch logs a nearest-neighbour query.
func (l *Logger) LogSearch(ctx context.Context, start, evaluations int, pruned bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"start", start,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"start", start,
			"evaluations", evaluations,
			"pruned", pruned,
		)
	}
}

// LogBatch logs a batch of queries.
func (l *Logger) LogBatch(ctx context.Context, count int, duration time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch search failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch search completed",
			"count", count,
			"duration", duration,
		)
	}
}
