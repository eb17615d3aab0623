package tsp

import (
	"fmt"
	"strings"
)

// Algo selects the solving engine used by SolveWithMatrix and NewSolver.
type Algo int

const (
	// ExactHeldKarp is the bitmask dynamic program, O(n²·2ⁿ), globally optimal.
	ExactHeldKarp Algo = iota

	// Ring is the self-organizing ring heuristic; no optimality guarantee.
	Ring
)

// String returns the CLI/config spelling of the algorithm.
func (a Algo) String() string {
	switch a {
	case ExactHeldKarp:
		return "exact"
	case Ring:
		return "ring"
	default:
		return fmt.Sprintf("Algo(%d)", int(a))
	}
}

// ParseAlgo accepts "exact"/"held-karp"/"dp" and "ring"/"som"/"neural-ring",
// case-insensitively.
func ParseAlgo(s string) (Algo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "held-karp", "heldkarp", "dp":
		return ExactHeldKarp, nil
	case "ring", "som", "neural-ring", "neuralring":
		return Ring, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
	}
}

// Defaults. The ring values are those of the reference neural-ring driver.
const (
	// DefaultMaxExactCities bounds n for TSPExact when Options.MaxExactCities==0.
	DefaultMaxExactCities = 20

	// MaxExactCitiesLimit is the largest accepted Options.MaxExactCities.
	// Visited sets are int bitmasks, and the sparse memo packs (mask, pos)
	// into one uint64 with pos in the low 8 bits.
	MaxExactCitiesLimit = 56

	// DefaultIterations is the number of training epochs of the ring.
	DefaultIterations = 200

	// DefaultLearningRate is the initial step size toward a city.
	DefaultLearningRate = 0.6

	// DefaultNeighborhood is the initial Gaussian width on the ring.
	DefaultNeighborhood = 1.0

	// DefaultPruneThreshold skips neuron updates with smaller influence.
	DefaultPruneThreshold = 0.05
)

// Options configures both engines. Fields that do not apply to the selected
// engine are ignored. Use DefaultOptions() as the base and override.
type Options struct {
	// Algo selects the engine for SolveWithMatrix / NewSolver.
	Algo Algo

	// Symmetric, when true, rejects matrices with cost[i][j] != cost[j][i].
	Symmetric bool

	// MaxExactCities caps n for the exact solver; 0 ⇒ DefaultMaxExactCities.
	// Values above MaxExactCitiesLimit are rejected.
	MaxExactCities int

	// Iterations is the number of ring training epochs (0 ⇒ decode the initial ring).
	Iterations int

	// LearningRate is the initial learning rate of the ring.
	LearningRate float64

	// Neighborhood is the initial Gaussian neighborhood width on the ring.
	Neighborhood float64

	// PruneThreshold skips updates whose influence is below it; 0 disables pruning.
	PruneThreshold float64
}

// DefaultOptions returns the reference configuration: exact solver, n≤20,
// ring trained for 200 epochs with lr=0.6, width=1.0 and pruning at 0.05.
func DefaultOptions() Options {
	return Options{
		Algo:           ExactHeldKarp,
		MaxExactCities: DefaultMaxExactCities,
		Iterations:     DefaultIterations,
		LearningRate:   DefaultLearningRate,
		Neighborhood:   DefaultNeighborhood,
		PruneThreshold: DefaultPruneThreshold,
	}
}

// maxExact resolves the zero-value policy of MaxExactCities.
func (o Options) maxExact() int {
	if o.MaxExactCities == 0 {
		return DefaultMaxExactCities
	}

	return o.MaxExactCities
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at 0.
	// For n vertices, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total distance of the cycle; +Inf when the tour is infeasible.
	Cost float64
}
