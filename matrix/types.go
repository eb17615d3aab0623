// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface and the unreachable sentinel.
package matrix

import "math"

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Unreachable returns the cost that marks a directed pair with no edge (+Inf).
func Unreachable() float64 { return math.Inf(1) }

// IsUnreachable reports whether w is the unreachable sentinel.
func IsUnreachable(w float64) bool { return math.IsInf(w, 1) }
