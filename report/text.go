package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/ringtsp/matrix"
	"github.com/katalvlaran/ringtsp/tsp"
)

// Write prints a result in the form
//
//	== Optimal tour ==
//	Route: 1 2 4 6 7 5 3 1
//	Total distance: 63
//
//	Step-by-step distances:
//	City 1 to City 2: 12
//	...
//
// Unreachable legs print as "inf" and so does the total. oneBased relabels
// cities for display only.
func Write(w io.Writer, title string, dist matrix.Matrix, res tsp.TSResult, oneBased bool) error {
	legs, err := tsp.EdgeCosts(dist, res.Tour)
	if err != nil {
		return errors.Wrap(err, "report legs")
	}

	labels := res.Tour
	if oneBased {
		labels = tsp.OneBased(res.Tour)
	}

	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "== %s ==\n", title)
	}
	b.WriteString("Route:")
	for _, c := range labels {
		fmt.Fprintf(&b, " %d", c)
	}
	fmt.Fprintf(&b, "\nTotal distance: %s\n", matrix.FormatCost(res.Cost))

	b.WriteString("\nStep-by-step distances:\n")
	for i, leg := range legs {
		fmt.Fprintf(&b, "City %d to City %d: %s\n", labels[i], labels[i+1], matrix.FormatCost(leg))
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// Gap returns (heuristic-optimal)/optimal, or +Inf when either side is
// unreachable or optimal is zero with a positive heuristic.
func Gap(optimal, heuristic float64) float64 {
	switch {
	case math.IsInf(optimal, 1) || math.IsInf(heuristic, 1):
		return math.Inf(1)
	case optimal == 0 && heuristic == 0:
		return 0
	case optimal == 0:
		return math.Inf(1)
	}
	return (heuristic - optimal) / optimal
}
