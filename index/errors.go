package index

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCandidateSet is returned when an index is built from zero candidates.
	ErrEmptyCandidateSet = errors.New("empty candidate set")

	// ErrNilDistanceFunc is returned when no distance function is supplied.
	ErrNilDistanceFunc = errors.New("nil distance function")

	// ErrDistanceEvaluation matches every failure of the supplied distance function.
	ErrDistanceEvaluation = errors.New("distance evaluation failed")

	// ErrInvalidDistance is returned when the distance function yields a negative or NaN value.
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrTooManyCandidates is returned when the matrices of an index would not
	// be addressable.
	ErrTooManyCandidates = errors.New("too many candidates")
)

// QueryRow is the DistanceError.Row value used for the query point.
const QueryRow = -1

// DistanceError reports which pair of points the distance function failed on.
//
// It matches ErrDistanceEvaluation with errors.Is. errors.Is and errors.As
// also see the underlying cause in Err.
type DistanceError struct {
	Row int // candidate index, or QueryRow
	Col int // candidate index
	Err error
}

func (e *DistanceError) Error() string {
	if e.Row == QueryRow {
		return fmt.Sprintf("distance evaluation failed for (query, %d): %v", e.Col, e.Err)
	}
	return fmt.Sprintf("distance evaluation failed for (%d, %d): %v", e.Row, e.Col, e.Err)
}

func (e *DistanceError) Unwrap() []error { return []error{ErrDistanceEvaluation, e.Err} }
