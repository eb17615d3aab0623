// Package tsp — tour utilities shared by the exact and heuristic solvers.
//
// This file contains compact utilities that operate purely on tour structure
// (index sequences), without depending on distance matrices:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - MakeTourFromPermutation: build a closed tour from a permutation, rotated to a start.
//   - ValidateTour: enforce closed-tour invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given vertex.
//   - OneBased: shift labels to 1..n for presentation.
//   - DebugString: compact printable representation for logs and tests.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - O(n) time for every helper.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element or duplicate violates the bijection contract.
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation builds a closed tour from a vertex permutation:
//  1. Validate that perm is a permutation of {0..n-1} (start occurs exactly once).
//  2. Rotate so that start becomes position 0.
//  3. Return a new slice of length n+1 with the closing start at position n.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot int
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// ValidateTour enforces closed-tour invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// RotateTourToStart returns a fresh copy of the tour shifted so that
// out[0] == start and out[n] == start. The input may be either a closed tour
// (first == last) or a raw path with no closing vertex.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}
	var n = len(tour)
	if len(tour) > 1 && tour[0] == tour[len(tour)-1] {
		n = len(tour) - 1
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	return MakeTourFromPermutation(tour[:n], n, start)
}

// OneBased returns a copy of tour with every label shifted by +1, the
// numbering used in reports ("City 1 … City n").
//
// Complexity: O(n).
func OneBased(tour []int) []int {
	out := make([]int, len(tour))
	for i, v := range tour {
		out[i] = v + 1
	}

	return out
}

// DebugString returns a compact printable representation for logs and tests,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
//
// Complexity: O(n) time, O(n) space for formatting.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		n = len(tour) - 1
		b strings.Builder
		i int
	)
	b.WriteString("[")
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(tour[n]))
	b.WriteString("]")

	return b.String()
}
