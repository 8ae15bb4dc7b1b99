// Package testutil provides testing utilities for orchard.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points, computing exact
// nearest neighbours, and counting distance evaluations.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, 8) // uniform [0, 1)
//	words := rng.Words(200, "acgt", 12)
//
// # Exact Search (Ground Truth)
//
//	i, d, err := testutil.BruteForce(points, query, distance.Euclidean)
//
// # Evaluation Counting
//
//	c := testutil.NewCounter(distance.Euclidean)
//	idx, _ := index.Build(ctx, points, c.Func())
//	c.Calls() // len(points) * len(points)
package testutil
