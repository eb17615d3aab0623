// Package tsp - unified dispatcher for TSP solvers.
//
// This file provides the canonical entry points to run a TSP engine:
//
//   - SolveWithMatrix: validate a distance matrix and route to the engine
//     selected by Options.Algo.
//   - SolveRows: the same over a [][]float64 literal.
//   - Solver / NewSolver: the engines behind one "solve(matrix) -> result"
//     contract, for callers that hold a strategy value instead of an Algo.
//
// Design principles:
//   - Deterministic: neither engine uses randomness.
//   - Strict sentinels: only errors from errors.go.
//   - Stable cost: all returned costs are rounded to 1e−9 to prevent FP drift.
package tsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/ringtsp/matrix"
)

// Solver is the common contract of the exact and heuristic engines.
// Implementations hold only configuration, so a Solver may be shared across
// goroutines; every Solve call allocates its own working storage.
type Solver interface {
	// Solve returns a closed tour from city 0 and its cost.
	Solve(dist matrix.Matrix) (TSResult, error)
}

// ExactSolver runs TSPExact.
type ExactSolver struct{ Opts Options }

// RingSolver runs TSPNeuralRing and prices the tour with TourCost.
type RingSolver struct{ Opts Options }

var (
	_ Solver = ExactSolver{}
	_ Solver = RingSolver{}
)

// Solve implements Solver.
func (s ExactSolver) Solve(dist matrix.Matrix) (TSResult, error) {
	return TSPExact(dist, s.Opts)
}

// Solve implements Solver. An infeasible ring tour is returned together with
// Cost=+Inf and ErrInfeasible so the caller can still inspect it.
func (s RingSolver) Solve(dist matrix.Matrix) (TSResult, error) {
	tour, err := TSPNeuralRing(dist, s.Opts)
	if err != nil {
		return TSResult{}, err
	}
	cost, err := TourCost(dist, tour)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			return TSResult{Tour: tour, Cost: math.Inf(1)}, err
		}
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}

// NewSolver returns the engine selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm.
func NewSolver(opts Options) (Solver, error) {
	switch opts.Algo {
	case ExactHeldKarp:
		return ExactSolver{Opts: opts}, nil
	case Ring:
		return RingSolver{Opts: opts}, nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// SolveWithMatrix validates inputs and routes to the chosen algorithm.
//
// Contracts:
//   - dist must be a square matrix with zero diagonal and non-negative or
//     +Inf entries; n ≥ 1.
//   - The returned tour starts and ends at city 0, 0-indexed.
//
// Errors: MalformedInput sentinels, ErrSizeLimitExceeded, ErrInfeasible,
// ErrInvalidOptions, ErrUnsupportedAlgorithm.
//
// Complexity: validation O(n²); the rest per algorithm:
//   - Held–Karp:   O(n²·2ⁿ).
//   - Ring:       O(iterations·n²).
func SolveWithMatrix(dist matrix.Matrix, opts Options) (TSResult, error) {
	s, err := NewSolver(opts)
	if err != nil {
		return TSResult{}, err
	}

	return s.Solve(dist)
}

// SolveRows copies rows into a *matrix.Dense and calls SolveWithMatrix.
// Shape errors from the matrix package are mapped onto tsp sentinels.
func SolveRows(rows [][]float64, opts Options) (TSResult, error) {
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		return TSResult{}, fromMatrixErr(err)
	}

	return SolveWithMatrix(d, opts)
}

// fromMatrixErr translates matrix construction failures into the tsp taxonomy.
func fromMatrixErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNonSquare), errors.Is(err, matrix.ErrInvalidDimensions):
		return ErrNonSquare
	case errors.Is(err, matrix.ErrNaN):
		return ErrNaN
	default:
		return ErrDimensionMismatch
	}
}
