// Command tspsolve solves a travelling salesman instance with the exact
// Held-Karp engine, the neural ring heuristic, or both.
//
//	tspsolve                               # built-in 7-city instance, exact
//	tspsolve -algo both -one-based
//	tspsolve -matrix '[[0,1,inf],[1,0,2],[inf,2,0]]' -algo ring -plot ring.svg
//	tspsolve -config problem.yaml -v 2
//
// Exit status: 0 on success, 1 on error, 2 when no feasible tour was found.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ringtsp/instance"
	"github.com/katalvlaran/ringtsp/matrix"
	"github.com/katalvlaran/ringtsp/report"
	"github.com/katalvlaran/ringtsp/tsp"
)

const (
	exitOK         = 0
	exitError      = 1
	exitInfeasible = 2
)

func main() {
	code := run(os.Args[1:], os.Stdout)
	klog.Flush()
	os.Exit(code)
}

type cliFlags struct {
	config   string
	matrix   string
	builtin  string
	algo     string
	iters    int
	lr       float64
	width    float64
	prune    float64
	maxExact int
	oneBased bool
	plot     string
}

func newFlagSet(f *cliFlags) *flag.FlagSet {
	fset := flag.NewFlagSet("tspsolve", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	def := tsp.DefaultOptions()
	fset.StringVar(&f.config, "config", "", "YAML problem file")
	fset.StringVar(&f.matrix, "matrix", "", "cost matrix literal, e.g. [[0,1],[1,0]]")
	fset.StringVar(&f.builtin, "builtin", "seven", "built-in instance when no matrix is given (seven, chain4)")
	fset.StringVar(&f.algo, "algo", "", "exact | ring | both (default exact, or the file's algo)")
	fset.IntVar(&f.iters, "iters", def.Iterations, "neural ring training epochs")
	fset.Float64Var(&f.lr, "lr", def.LearningRate, "neural ring initial learning rate")
	fset.Float64Var(&f.width, "width", def.Neighborhood, "neural ring initial neighborhood width")
	fset.Float64Var(&f.prune, "prune", def.PruneThreshold, "skip neuron updates below this influence")
	fset.IntVar(&f.maxExact, "max-exact", def.MaxExactCities, "largest instance the exact engine accepts")
	fset.BoolVar(&f.oneBased, "one-based", false, "print cities as 1..n")
	fset.StringVar(&f.plot, "plot", "", "write a plot of the trained ring (png, svg, pdf)")
	return fset
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout io.Writer) int {
	var f cliFlags
	fset := newFlagSet(&f)
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}
	set := map[string]bool{}
	fset.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	name, dist, opts, oneBased, err := loadInstance(&f, set)
	if err != nil {
		klog.Errorf("%v", err)
		return exitError
	}

	algos, err := selectAlgos(f.algo, opts.Algo)
	if err != nil {
		klog.Errorf("%v", err)
		return exitError
	}
	klog.V(2).Infof("instance %q: %d cities, engines %v", name, dist.Rows(), algos)

	feasible := false
	results := map[tsp.Algo]tsp.TSResult{}
	for _, algo := range algos {
		opts.Algo = algo
		res, err := tsp.SolveWithMatrix(dist, opts)
		switch {
		case err == nil:
			feasible = true
		case errors.Is(err, tsp.ErrInfeasible):
			klog.Warningf("%s: %v", algo, err)
		case errors.Is(err, tsp.ErrSizeLimitExceeded) && len(algos) > 1:
			klog.Warningf("%s skipped: %v", algo, err)
			continue
		default:
			klog.Errorf("%s: %v", algo, errors.Wrapf(err, "solve %q", name))
			return exitError
		}

		if res.Tour == nil {
			fmt.Fprintf(stdout, "== %s ==\nNo tour visits every city.\n\n", title(algo))
			continue
		}
		results[algo] = res
		if err = report.Write(stdout, title(algo), dist, res, oneBased); err != nil {
			klog.Errorf("%v", err)
			return exitError
		}
		fmt.Fprintln(stdout)
		klog.V(2).Infof("%s: cost %s tour %s", algo, matrix.FormatCost(res.Cost), tsp.DebugString(res.Tour))
	}

	exact, okE := results[tsp.ExactHeldKarp]
	ring, okR := results[tsp.Ring]
	if okE && okR {
		gap := report.Gap(exact.Cost, ring.Cost)
		if math.IsInf(gap, 1) {
			fmt.Fprintln(stdout, "Gap: inf")
		} else {
			fmt.Fprintf(stdout, "Gap: %.2f%%\n", 100*gap)
		}
	}

	if f.plot != "" {
		if err = plotRing(dist.Rows(), opts, f.plot); err != nil {
			klog.Errorf("%v", err)
			return exitError
		}
		klog.V(2).Infof("plot written to %s", f.plot)
	}

	if !feasible {
		return exitInfeasible
	}
	return exitOK
}

// loadInstance resolves the matrix source (file, literal or built-in) and
// applies explicitly set flags over the file's options.
func loadInstance(f *cliFlags, set map[string]bool) (string, *matrix.Dense, tsp.Options, bool, error) {
	var (
		name     string
		dist     *matrix.Dense
		opts     = tsp.DefaultOptions()
		oneBased = f.oneBased
		err      error
	)

	switch {
	case f.config != "" && f.matrix != "":
		return "", nil, opts, false, errors.New("-config and -matrix are mutually exclusive")

	case f.config != "":
		p, err := instance.LoadFile(f.config)
		if err != nil {
			return "", nil, opts, false, err
		}
		if opts, err = p.Options(); err != nil {
			return "", nil, opts, false, err
		}
		name, dist = p.Name, p.Matrix.Dense
		oneBased = p.OneBased || f.oneBased

	case f.matrix != "":
		if dist, err = instance.ParseMatrix(f.matrix); err != nil {
			return "", nil, opts, false, errors.Wrap(err, "-matrix")
		}
		name = "matrix"

	default:
		if dist = instance.Builtin(f.builtin); dist == nil {
			return "", nil, opts, false, errors.Errorf("unknown built-in instance %q", f.builtin)
		}
		name = f.builtin
	}

	if set["iters"] {
		opts.Iterations = f.iters
	}
	if set["lr"] {
		opts.LearningRate = f.lr
	}
	if set["width"] {
		opts.Neighborhood = f.width
	}
	if set["prune"] {
		opts.PruneThreshold = f.prune
	}
	if set["max-exact"] {
		opts.MaxExactCities = f.maxExact
	}

	return name, dist, opts, oneBased, nil
}

func selectAlgos(flagAlgo string, fileAlgo tsp.Algo) ([]tsp.Algo, error) {
	switch strings.ToLower(strings.TrimSpace(flagAlgo)) {
	case "":
		return []tsp.Algo{fileAlgo}, nil
	case "both", "all":
		return []tsp.Algo{tsp.ExactHeldKarp, tsp.Ring}, nil
	}
	algo, err := tsp.ParseAlgo(flagAlgo)
	if err != nil {
		return nil, errors.Wrap(err, "-algo")
	}
	return []tsp.Algo{algo}, nil
}

func title(algo tsp.Algo) string {
	if algo == tsp.ExactHeldKarp {
		return "Optimal tour (Held-Karp)"
	}
	return "Neural ring tour"
}

// plotRing retrains a ring with opts; training is deterministic, so the
// picture matches the tour reported above.
func plotRing(n int, opts tsp.Options, path string) error {
	ring, err := tsp.NewNeuralRing(n, opts)
	if err != nil {
		return errors.Wrap(err, "plot")
	}
	if err = ring.Train(opts.Iterations); err != nil {
		return errors.Wrap(err, "plot")
	}
	tour, err := ring.Decode()
	if err != nil {
		return errors.Wrap(err, "plot")
	}
	return report.PlotRing(ring, tour, path)
}
