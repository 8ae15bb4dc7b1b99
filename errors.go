package orchard

import (
	"errors"

	"github.com/hupe1980/orchard/index"
	"github.com/hupe1980/orchard/resource"
	"github.com/hupe1980/orchard/searcher"
)

var (
	// ErrEmptyCandidateSet is returned when New is called with zero candidates.
	ErrEmptyCandidateSet = index.ErrEmptyCandidateSet

	// ErrNilDistanceFunc is returned when New is called without a distance function.
	ErrNilDistanceFunc = index.ErrNilDistanceFunc

	// ErrDistanceEvaluation matches every failure of the distance function,
	// during build or query.
	ErrDistanceEvaluation = index.ErrDistanceEvaluation

	// ErrInvalidDistance is returned when the distance function yields a negative or NaN value.
	ErrInvalidDistance = index.ErrInvalidDistance

	// ErrTooManyCandidates is returned when New is called with more than
	// index.MaxCandidates candidates.
	ErrTooManyCandidates = index.ErrTooManyCandidates

	// ErrInvalidStart is returned when a fixed start is outside the index.
	ErrInvalidStart = searcher.ErrInvalidStart

	// ErrMemoryLimitExceeded is returned when the resource controller cannot
	// hold another index.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// DistanceError reports the pair of points a distance evaluation failed on.
// Row is index.QueryRow for query-time failures.
type DistanceError = index.DistanceError

// ErrObserverType is returned by New when the observer's point type does not
// match the candidates'.
var ErrObserverType = errors.New("observer point type mismatch")
