package searcher

import "github.com/RoaringBitmap/roaring/v2"

// Result is the nearest candidate found for a query.
type Result[P any] struct {
	// Index is the position of the candidate in the index.
	Index int
	// Candidate is the nearest candidate.
	Candidate P
	// Distance is the distance from the query to Candidate.
	Distance float64

	Stats
}

// Stats describes how a query ran.
type Stats struct {
	// Start is the candidate the search began at.
	Start int
	// Evaluations counts distance evaluations against the query.
	Evaluations int
	// Improvements counts how often a closer candidate replaced the best one.
	Improvements int
	// Pruned is true when Orchard's bound proved the result and ended the
	// search early. It is false for singleton indexes and when the search
	// ran off the end of the best candidate's neighbour list.
	Pruned bool
	// Evaluated holds the indexes of all evaluated candidates.
	// Only set when tracing is enabled.
	Evaluated *roaring.Bitmap
}
