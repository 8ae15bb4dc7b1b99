package searcher

import "github.com/hupe1980/orchard/resource"

// RandomStart lets the RandomSource choose the start candidate.
const RandomStart = -1

// Options configures a single query.
type Options struct {
	// Start is the candidate index the search begins at, or RandomStart.
	Start int

	// Random picks the start when Start is RandomStart.
	// If nil, DefaultSource is used.
	Random RandomSource

	// Trace records every evaluated candidate in Result.Evaluated.
	Trace bool

	// Resource rate-limits query-time distance evaluations.
	// If nil, the index's own controller is used.
	Resource *resource.Controller
}

// DefaultOptions contains the default configuration for a query.
var DefaultOptions = Options{
	Start: RandomStart,
}
