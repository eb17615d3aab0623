// Package tsp — the tour evaluator shared by both solvers.
//
// TourCost is the single authority on what a tour costs. It is what the
// dispatcher uses to price a NeuralRing tour and what tests use to verify
// the exact solver's reported optimum.
//
// Design:
//   - Unreachable edges (+Inf) short-circuit with ErrInfeasible.
//   - Malformed input yields MalformedInput sentinels (see errors.go).
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import (
	"math"

	"github.com/katalvlaran/ringtsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums dist[tour[i]][tour[i+1]] for i in [0..len(tour)-2].
//
// Contract:
//   - tour has at least two entries; [0 0] is the n=1 self loop and costs 0.
//   - indices lie in [0..n-1]; the tour is not required to be a permutation.
//   - the first +Inf edge returns (+Inf, ErrInfeasible) without summing further.
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrNaN, ErrNegativeWeight, ErrInfeasible.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var (
		n   = dist.Rows()
		sum float64
		w   float64
		err error
		i   int
	)
	if n != dist.Cols() || n <= 0 {
		return 0, ErrNonSquare
	}

	for i = 0; i+1 < len(tour); i++ {
		w, err = edgeCost(dist, n, tour[i], tour[i+1])
		if err != nil {
			if err == ErrInfeasible {
				return math.Inf(1), err
			}
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// EdgeCosts returns the cost of every leg of tour, in order.
// Unlike TourCost it does not stop at unreachable legs: they are reported as
// +Inf so that a caller can show exactly which step breaks the tour.
//
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrNaN, ErrNegativeWeight.
//
// Complexity: O(len(tour)).
func EdgeCosts(dist matrix.Matrix, tour []int) ([]float64, error) {
	if dist == nil || len(tour) < 2 {
		return nil, ErrDimensionMismatch
	}
	var n = dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return nil, ErrNonSquare
	}

	legs := make([]float64, len(tour)-1)
	var (
		i   int
		w   float64
		err error
	)
	for i = range legs {
		w, err = edgeCost(dist, n, tour[i], tour[i+1])
		if err != nil && err != ErrInfeasible {
			return nil, err
		}
		legs[i] = w
	}

	return legs, nil
}

// edgeCost fetches the weight for a single directed edge u→v with strict validation.
// An unreachable edge is returned as (+Inf, ErrInfeasible).
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, n, u, v int) (float64, error) {
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}
	w, err := m.At(u, v)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	if math.IsNaN(w) {
		return 0, ErrNaN
	}
	if math.IsInf(w, 1) {
		return w, ErrInfeasible
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}

	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// +Inf passes through unchanged.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
