package benchmark_test

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/hupe1980/orchard"
	"github.com/hupe1980/orchard/distance"
	"github.com/hupe1980/orchard/testutil"
)

var sizes = []int{100, 1000}

func BenchmarkBuild(b *testing.B) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)

	for _, n := range sizes {
		points := rng.UniformPoints(n, 16)

		for _, workers := range []int{1, runtime.GOMAXPROCS(0)} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				b.ReportAllocs()

				for b.Loop() {
					x, err := orchard.New(ctx, points, distance.Euclidean, orchard.WithWorkers(workers))
					if err != nil {
						b.Fatal(err)
					}
					_ = x.Close()
				}
			})
		}
	}
}

func BenchmarkNearest(b *testing.B) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)

	datasets := []struct {
		name   string
		points func(n int) [][]float64
	}{
		{"uniform", func(n int) [][]float64 { return rng.UniformPoints(n, 16) }},
		{"clustered", func(n int) [][]float64 { return rng.ClusteredPoints(n, 16, 10, 0.05) }},
	}

	for _, ds := range datasets {
		for _, n := range sizes {
			points := ds.points(n)
			queries := rng.UniformPoints(256, 16)

			x, err := orchard.New(ctx, points, distance.Euclidean, orchard.WithWorkers(runtime.GOMAXPROCS(0)))
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/n=%d", ds.name, n), func(b *testing.B) {
				b.ReportAllocs()

				var evaluations int
				i := 0
				for b.Loop() {
					res, err := x.Nearest(ctx, queries[i%len(queries)], orchard.WithSeed(uint64(i)))
					if err != nil {
						b.Fatal(err)
					}
					evaluations += res.Evaluations
					i++
				}

				b.ReportMetric(float64(evaluations)/float64(i), "evals/op")
			})

			_ = x.Close()
		}
	}
}

func BenchmarkBruteForce(b *testing.B) {
	rng := testutil.NewRNG(4711)

	for _, n := range sizes {
		points := rng.UniformPoints(n, 16)
		queries := rng.UniformPoints(256, 16)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()

			i := 0
			for b.Loop() {
				if _, _, err := testutil.BruteForce(points, queries[i%len(queries)], distance.Euclidean); err != nil {
					b.Fatal(err)
				}
				i++
			}
		})
	}
}

func BenchmarkNearestBatch(b *testing.B) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)

	points := rng.UniformPoints(1000, 16)
	queries := rng.UniformPoints(512, 16)

	x, err := orchard.New(ctx, points, distance.Euclidean, orchard.WithWorkers(runtime.GOMAXPROCS(0)))
	if err != nil {
		b.Fatal(err)
	}
	defer x.Close()

	b.ReportAllocs()

	for b.Loop() {
		if _, err := x.NearestBatch(ctx, queries); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(len(queries))*float64(b.N)/b.Elapsed().Seconds(), "qps")
}
