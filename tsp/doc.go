// Package tsp provides Travelling Salesman Problem solvers over a square
// cost matrix (matrix.Matrix) with city 0 as the fixed start.
//
// It includes two interchangeable engines:
//
//   - TSPExact — the Held–Karp dynamic‐programming algorithm.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ)
//
//   - Guarded by Options.MaxExactCities (ErrSizeLimitExceeded).
//
//   - TSPNeuralRing — a self-organizing ring of 2n neurons trained toward
//     the cities with decaying learning rate and neighborhood width.
//
//   - Complexity: O(iterations·n²)
//
//   - Approximate; may return a tour that uses an unreachable edge.
//
// TourCost is the shared evaluator: it prices a closed tour and reports
// ErrInfeasible as soon as a leg is unreachable.
//
// All functions accept a complete or partially complete distance matrix:
//   - A distance of math.Inf(1) signals “no direct edge.”
//   - If no tour exists, TSPExact returns ErrInfeasible.
//
// Tours are 0-indexed, of length n+1, and start and end at city 0; use
// OneBased to present them as 1..n.
//
// Use this package when you need to solve or approximate the TSP
// on small instances (n≲20 for TSPExact).
package tsp
