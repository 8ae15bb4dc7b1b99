package testutil

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/orchard/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// IntN is Intn under the name start selectors expect.
func (r *RNG) IntN(n int) int {
	return r.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Reals generates num values uniformly distributed in [minVal, maxVal).
func (r *RNG) Reals(num int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	out := make([]float64, num)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// UniformPoints generates random points with coordinates in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates random points with coordinates from a standard normal distribution.
func (r *RNG) GaussianPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates points scattered around random centroids.
// Clustered data makes Orchard's bound trigger early, uniform data less so.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float64) [][]float64 {
	centroids := r.UniformPoints(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, num)
	for i := range points {
		c := centroids[r.rand.Intn(clusters)]
		p := make([]float64, dim)
		for j := range p {
			p[j] = c[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
	}

	return points
}

// Words generates num random strings over alphabet with lengths in [1, maxLen].
func (r *RNG) Words(num int, alphabet string, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	letters := []rune(alphabet)
	words := make([]string, num)
	for i := range words {
		w := make([]rune, 1+r.rand.Intn(maxLen))
		for j := range w {
			w[j] = letters[r.rand.Intn(len(letters))]
		}
		words[i] = string(w)
	}
	return words
}

// BruteForce scans every candidate and returns the first index with the
// minimum distance to query.
func BruteForce[P any](candidates []P, query P, fn distance.Func[P]) (int, float64, error) {
	best := -1
	var bestDistance float64
	for i, c := range candidates {
		d, err := fn(query, c)
		if err != nil {
			return -1, 0, err
		}
		if best < 0 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return best, bestDistance, nil
}

// Counter wraps a distance function and counts its evaluations.
// It is safe for concurrent use.
type Counter[P any] struct {
	fn    distance.Func[P]
	calls atomic.Int64
}

// NewCounter creates a Counter around fn.
func NewCounter[P any](fn distance.Func[P]) *Counter[P] {
	return &Counter[P]{fn: fn}
}

// Func returns the counting distance function.
func (c *Counter[P]) Func() distance.Func[P] {
	return func(a, b P) (float64, error) {
		c.calls.Add(1)
		return c.fn(a, b)
	}
}

// Calls returns the number of evaluations so far.
func (c *Counter[P]) Calls() int64 {
	return c.calls.Load()
}

// Reset sets the evaluation count back to zero.
func (c *Counter[P]) Reset() {
	c.calls.Store(0)
}
