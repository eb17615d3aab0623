// Package instance builds cost matrices for the tsp solvers from the outside
// world: YAML problem files, a compact matrix literal, the built-in reference
// instances and seeded pseudo-random instances.
//
// Nothing here solves anything; every constructor returns a *matrix.Dense
// (plus solver options for problem files) that is handed to package tsp.
//
// Matrix literal syntax:
//
//	# seven cities, "inf" (or "∞" or "-") marks an unreachable pair
//	[[0, 12, inf],
//	 [12, 0, 8],
//	 [inf, 8, 0]]
package instance
