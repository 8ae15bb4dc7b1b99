// Package distance defines the caller-supplied distance contract and a set
// of metrics that satisfy the triangle inequality.
//
// Only pairwise distances are ever used, so points need no coordinate
// structure. Strings under Levenshtein distance work just as well as
// vectors under Euclidean distance.
//
// # Supported Metrics
//
//   - Absolute: |a-b| over float64
//   - Euclidean, Manhattan, Chebyshev: over []float64 of equal length
//   - Hamming: differing byte positions over equal-length strings
//   - Levenshtein: rune edit distance over strings
//
// # Usage
//
//	fn := distance.Infallible(distance.Absolute)
//	d, err := fn(3, 7) // 4, nil
//
//	words := distance.Infallible(distance.Levenshtein)
//	d, _ = words("kitten", "sitting") // 3
package distance
