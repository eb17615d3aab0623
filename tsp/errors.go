package tsp

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every public function returns one of these sentinels
// (possibly wrapped with context via %w); callers match with errors.Is.
//
// The MalformedInput family wraps ErrMalformedInput, so
// errors.Is(err, ErrMalformedInput) is true for any of its members.
var (
	// ErrMalformedInput is the parent of all shape/value violations detected
	// before a solve starts.
	ErrMalformedInput = errors.New("tsp: malformed input")

	// ErrDimensionMismatch signals a nil matrix, a tour of the wrong length or
	// an index outside [0..n-1].
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrMalformedInput)

	// ErrNonSquare signals rows != cols or an empty matrix.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrMalformedInput)

	// ErrNonZeroDiagonal signals cost[i][i] != 0.
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal must be zero", ErrMalformedInput)

	// ErrNegativeWeight signals a negative finite cost (or -Inf).
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrMalformedInput)

	// ErrNaN signals a NaN entry anywhere in the matrix.
	ErrNaN = fmt.Errorf("%w: NaN edge weight", ErrMalformedInput)

	// ErrAsymmetry signals cost[i][j] != cost[j][i] when Options.Symmetric is set.
	ErrAsymmetry = fmt.Errorf("%w: matrix is not symmetric", ErrMalformedInput)

	// ErrStartOutOfRange signals a start vertex outside [0..n-1].
	ErrStartOutOfRange = fmt.Errorf("%w: start vertex out of range", ErrMalformedInput)

	// ErrInfeasible reports that no closed tour exists under the reachability
	// constraints, or that a given tour uses an unreachable edge.
	ErrInfeasible = errors.New("tsp: infeasible, tour needs an unreachable edge")

	// ErrSizeLimitExceeded reports that the exact solver refused an instance
	// larger than Options.MaxExactCities.
	ErrSizeLimitExceeded = errors.New("tsp: instance exceeds exact solver size limit")

	// ErrInvalidOptions reports out-of-domain numeric options.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnsupportedAlgorithm reports an unknown Algo value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)
