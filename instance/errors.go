package instance

import "errors"

// Errors
var (
	ErrBadMatrix  = errors.New("bad cost matrix")
	ErrBadProblem = errors.New("bad problem file")
	ErrBadRandom  = errors.New("bad random instance parameters")
)
