// Package ringtsp solves small travelling salesman instances two ways and
// lets you compare them.
//
// 🚀 What is inside?
//
//	• Exact: Held–Karp dynamic programming over (visited-set, position),
//	  optimal tours with deterministic lowest-index tie-breaking.
//	• Heuristic: a neural ring (self-organizing map) of 2n neurons pulled
//	  toward n cities laid out on a circle; the ring order is the tour.
//	• Shared tour evaluator that reports unreachable legs as infeasible.
//
// Under the hood:
//
//	matrix/        — dense square cost matrix, +Inf marks "no road"
//	tsp/           — validation, Held–Karp, neural ring, tour utilities, dispatcher
//	instance/      — matrix literal grammar, YAML problem files, built-in and seeded instances
//	report/        — step-by-step leg table and ring plots
//	cmd/tspsolve/  — command-line driver
//
// Quick example:
//
//	res, err := tsp.SolveWithMatrix(instance.SevenCities(), tsp.DefaultOptions())
//	// res.Tour == [0 1 3 5 6 4 2 0], res.Cost == 63
//
// Both engines are deterministic: the same matrix and options always yield
// the same tour.
//
//	go install github.com/katalvlaran/ringtsp/cmd/tspsolve@latest
package ringtsp
