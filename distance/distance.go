// Package distance defines the contract for caller-supplied distance functions
// and provides ready-made metrics over numbers, vectors and strings.
package distance

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when two operands of a coordinate-wise or
// position-wise distance have different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// Func computes the distance between two points.
//
// Implementations must be pure: the same pair always yields the same value.
// Results must be non-negative and not NaN. Pruning is exact only when Func
// satisfies the triangle inequality.
type Func[P any] func(a, b P) (float64, error)

// Infallible adapts a distance function that cannot fail.
func Infallible[P any](f func(a, b P) float64) Func[P] {
	return func(a, b P) (float64, error) {
		return f(a, b), nil
	}
}

// Absolute returns |a-b|.
func Absolute(a, b float64) float64 {
	return math.Abs(a - b)
}

// Euclidean calculates the L2 distance between two vectors.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Manhattan calculates the L1 distance between two vectors.
func Manhattan(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum, nil
}

// Chebyshev calculates the L∞ distance between two vectors.
func Chebyshev(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	var m float64
	for i := range a {
		m = max(m, math.Abs(a[i]-b[i]))
	}
	return m, nil
}

// Hamming counts the byte positions at which a and b differ.
func Hamming(a, b string) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return float64(n), nil
}

// Levenshtein returns the edit distance (insertions, deletions and
// substitutions of runes) between a and b.
func Levenshtein(a, b string) float64 {
	if a == b {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return float64(len(rb))
	}
	if len(rb) == 0 {
		return float64(len(ra))
	}

	// Two rows of the DP table, indexed by position in rb.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return float64(prev[len(rb)])
}

func lengthMismatch(a, b int) error {
	return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, a, b)
}

// Metric names a built-in distance over float64 vectors.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricManhattan
	MetricChebyshev
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func[[]float64], error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
