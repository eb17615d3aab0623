package tsp_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/ringtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestSolveWithMatrix_Routes(t *testing.T) {
	d := mustDense(t, sevenCities())

	opts := tsp.DefaultOptions()
	exact, err := tsp.SolveWithMatrix(d, opts)
	require.NoError(t, err)
	require.Equal(t, 63.0, exact.Cost)

	opts.Algo = tsp.Ring
	ring, err := tsp.SolveWithMatrix(d, opts)
	require.NoError(t, err)
	require.Equal(t, 69.0, ring.Cost)
	mustEqualInts(t, ring.Tour, []int{0, 1, 2, 3, 4, 5, 6, 0})
}

func TestSolver_Polymorphic(t *testing.T) {
	d := mustDense(t, chain4())
	for _, algo := range []tsp.Algo{tsp.ExactHeldKarp, tsp.Ring} {
		opts := tsp.DefaultOptions()
		opts.Algo = algo
		s, err := tsp.NewSolver(opts)
		require.NoError(t, err)

		res, err := s.Solve(d)
		require.NoError(t, err, "algo=%s", algo)
		requireClosedTour(t, res.Tour, 4)
		require.Equal(t, 12.0, res.Cost, "algo=%s", algo)
	}

	_, err := tsp.NewSolver(tsp.Options{Algo: tsp.Algo(-1)})
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestRingSolver_InfeasibleKeepsTour(t *testing.T) {
	a := chain4()
	a[3][0] = inf
	res, err := tsp.RingSolver{Opts: tsp.DefaultOptions()}.Solve(mustDense(t, a))
	require.ErrorIs(t, err, tsp.ErrInfeasible)
	mustEqualInts(t, res.Tour, []int{0, 1, 2, 3, 0})
	require.True(t, math.IsInf(res.Cost, 1))
}

func TestSolveRows(t *testing.T) {
	res, err := tsp.SolveRows(chain4(), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 12.0, res.Cost)

	_, err = tsp.SolveRows([][]float64{{0, 1}, {1}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrMalformedInput)

	_, err = tsp.SolveRows([][]float64{{0, 1, 2}, {1, 0, 2}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	_, err = tsp.SolveRows([][]float64{{0, math.NaN()}, {1, 0}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNaN)

	_, err = tsp.SolveRows(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}

// TestExactNeverWorseThanRing checks optimality against the heuristic on
// random instances, feasible and not.
func TestExactNeverWorseThanRing(t *testing.T) {
	ringOpts := tsp.DefaultOptions()
	ringOpts.Algo = tsp.Ring

	for n := 2; n <= 12; n++ {
		for k, hole := range []float64{0, 0.2} {
			d := mustDense(t, randomInts(n, seedDet+int64(100*n+k), k == 0, hole))

			exact, exErr := tsp.SolveWithMatrix(d, tsp.DefaultOptions())
			ring, ringErr := tsp.SolveWithMatrix(d, ringOpts)
			requireClosedTour(t, ring.Tour, n)

			switch {
			case exErr == nil:
				requireClosedTour(t, exact.Tour, n)
				c, err := tsp.TourCost(d, exact.Tour)
				require.NoError(t, err)
				require.Equal(t, exact.Cost, c, "n=%d", n)
				require.LessOrEqual(t, exact.Cost, ring.Cost, "n=%d", n)
			case errors.Is(exErr, tsp.ErrInfeasible):
				// No Hamiltonian cycle ⇒ the ring cannot have found one either.
				require.ErrorIs(t, ringErr, tsp.ErrInfeasible, "n=%d", n)
			default:
				t.Fatalf("n=%d: unexpected error %v", n, exErr)
			}
		}
	}
}

// TestConcurrentSolves runs independent solves in parallel goroutines; each
// call owns its working storage, so results match the sequential ones.
func TestConcurrentSolves(t *testing.T) {
	const workers = 8
	want, err := tsp.SolveWithMatrix(mustDense(t, sevenCities()), tsp.DefaultOptions())
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		got  []tsp.TSResult
		errs []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := tsp.SolveRows(sevenCities(), tsp.DefaultOptions())
			mu.Lock()
			got = append(got, res)
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	for i := range got {
		require.NoError(t, errs[i])
		require.Equal(t, want, got[i])
	}
}
