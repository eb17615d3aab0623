// Package tsp - validation utilities shared by the exact and heuristic solvers.
//
// This file contains small, side-effect free helpers that:
//  1. Validate Options (numeric domains, known algorithm).
//  2. Validate distance matrices (shape, diagonal, negativity, NaN, symmetry).
//
// Design principles:
//   - Fail fast: every solver calls these before allocating working storage.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ringtsp/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// validateAll verifies Options + distance matrix and returns n on success.
//
// Contract:
//   - dist must be non-nil, square, n≥1.
//   - +Inf off-diagonal entries are legal (unreachable pairs).
//   - Symmetry is enforced only when opts.Symmetric is set.
//
// Complexity: O(n²).
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	return validateDistMatrix(dist, opts.Symmetric, symTol)
}

// validateOptions checks numeric domains of Options without touching a matrix.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Algo {
	case ExactHeldKarp, Ring:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}
	if opts.MaxExactCities < 0 || opts.MaxExactCities > MaxExactCitiesLimit {
		return fmt.Errorf("max exact cities %d: %w", opts.MaxExactCities, ErrInvalidOptions)
	}
	if opts.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", opts.Iterations, ErrInvalidOptions)
	}
	if !nonNegativeFinite(opts.LearningRate) {
		return fmt.Errorf("learning rate %v: %w", opts.LearningRate, ErrInvalidOptions)
	}
	if !nonNegativeFinite(opts.Neighborhood) {
		return fmt.Errorf("neighborhood %v: %w", opts.Neighborhood, ErrInvalidOptions)
	}
	// Influence lives in (0,1]; a threshold above 1 would prune every update.
	if !nonNegativeFinite(opts.PruneThreshold) || opts.PruneThreshold > 1 {
		return fmt.Errorf("prune threshold %v: %w", opts.PruneThreshold, ErrInvalidOptions)
	}

	return nil
}

func nonNegativeFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n>=1,
//   - diagonal ≈ 0 (|a_ii| ≤ tol),
//   - NaN anywhere is invalid,
//   - no negative off-diagonal distances (−Inf included),
//   - if symmetric==true: |a_ij − a_ji| ≤ tol, with +Inf only matching +Inf.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix, symmetric bool, tol float64) (int, error) {
	// Stage 1: shape checks (non-nil, square).
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	var n = nr

	var (
		i, j     int
		aij, aji float64
		err      error
	)

	// Stage 2: diagonal, a_ii ≈ 0 within tol.
	for i = 0; i < n; i++ {
		aij, err = dist.At(i, i)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(aij) {
			return 0, ErrNaN
		}
		if math.IsInf(aij, 0) || math.Abs(aij) > tol {
			return 0, fmt.Errorf("dist[%d][%d]=%v: %w", i, i, aij, ErrNonZeroDiagonal)
		}
	}

	// Stage 3: off-diagonal scan.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) {
				return 0, ErrNaN
			}
			if aij < 0 {
				return 0, fmt.Errorf("dist[%d][%d]=%v: %w", i, j, aij, ErrNegativeWeight)
			}
		}
	}

	// Stage 4: symmetry (if required).
	if symmetric {
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				aij, _ = dist.At(i, j)
				aji, _ = dist.At(j, i)
				if math.IsInf(aij, 1) || math.IsInf(aji, 1) {
					if aij != aji {
						return 0, ErrAsymmetry
					}
					continue
				}
				if math.Abs(aij-aji) > tol {
					return 0, ErrAsymmetry
				}
			}
		}
	}

	return n, nil
}
