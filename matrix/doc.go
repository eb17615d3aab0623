// Package matrix stores square tables of travel costs between cities.
//
// The matrix package provides:
//
//   - Matrix, a small read/write interface (Rows, Cols, At, Set, Clone)
//     that every solver in ringtsp consumes.
//   - Dense, a row-major implementation backed by one flat slice.
//   - NewFromRows, a constructor that copies a [][]float64 literal and
//     rejects ragged input.
//
// A value of math.Inf(1) (see Unreachable) marks a directed pair of cities
// with no direct edge. It is a legal value everywhere in this package; only
// NaN is refused on write.
//
// Matrices are small by construction: the exact TSP solver is exponential
// in the number of cities, so O(n²) storage is never the bottleneck.
package matrix
