// Package tsp_test — benchmarks for the ringtsp engines.
//
// Policy:
//   - Fixed seeds (seedDet); inputs are built outside the timer.
//   - Sizes finish comfortably on CI.
package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ringtsp/tsp"
)

// BenchmarkTSPExact measures Held–Karp across the growth curve.
func BenchmarkTSPExact(b *testing.B) {
	for _, n := range []int{8, 12, 16} {
		d := mustDense(b, randomInts(n, seedDet, true, 0))
		opts := tsp.DefaultOptions()
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := tsp.TSPExact(d, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTSPNeuralRing measures the default 200-epoch schedule.
func BenchmarkTSPNeuralRing(b *testing.B) {
	for _, n := range []int{7, 20, 50} {
		d := mustDense(b, randomInts(n, seedDet, true, 0))
		opts := tsp.DefaultOptions()
		opts.Algo = tsp.Ring
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := tsp.TSPNeuralRing(d, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTourCost measures the evaluator on a 50-city identity tour.
func BenchmarkTourCost(b *testing.B) {
	const n = 50
	d := mustDense(b, randomInts(n, seedDet, true, 0))
	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TourCost(d, tour); err != nil {
			b.Fatal(err)
		}
	}
}
