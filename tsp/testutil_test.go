// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/ringtsp/matrix"
	"github.com/katalvlaran/ringtsp/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the fixed seed of every pseudo-random instance.
	seedDet = int64(42)

	// startV is the fixed start city of every tour.
	startV = 0
)

var inf = math.Inf(1)

// -----------------------------------------------------------------------------
// A second, independent matrix.Matrix implementation. Solvers take a fast path
// for *matrix.Dense; altDense forces the generic interface path.
// -----------------------------------------------------------------------------

type altDense struct{ a [][]float64 }

var _ matrix.Matrix = altDense{}

func (m altDense) Rows() int { return len(m.a) }
func (m altDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m altDense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrIndexOutOfBounds
	}

	return m.a[i][j], nil
}
func (m altDense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrIndexOutOfBounds
	}
	m.a[i][j] = v

	return nil
}
func (m altDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return altDense{a: cp}
}

// -----------------------------------------------------------------------------
// Instances
// -----------------------------------------------------------------------------

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return d
}

// sevenCities is the reference instance: 7 cities, several unreachable pairs.
func sevenCities() [][]float64 {
	return [][]float64{
		{0, 12, 10, inf, inf, inf, 12},
		{12, 0, 8, 12, inf, inf, inf},
		{10, 8, 0, 11, 3, inf, 9},
		{inf, 12, 11, 0, 11, 10, inf},
		{inf, inf, 3, 11, 0, 6, 7},
		{inf, inf, inf, 10, 6, 0, 9},
		{12, inf, 9, inf, 7, 9, 0},
	}
}

// chain4 is a path 0-1-2-3 with cheap neighbors; the optimum is 12.
func chain4() [][]float64 {
	return [][]float64{
		{0, 1, 9, 9},
		{1, 0, 1, 9},
		{9, 1, 0, 1},
		{9, 9, 1, 0},
	}
}

// makeCycleDist returns distances along a cycle: dist(i,j)=min(|i-j|, n-|i-j|).
func makeCycleDist(n int) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			d := math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}

	return dist
}

// randomInts returns an n×n matrix of integer costs in [1,100] with zero
// diagonal. With holeRate>0, that fraction of off-diagonal entries becomes +Inf.
// Integer costs keep every sum exact, so costs compare with ==.
func randomInts(n int, seed int64, symmetric bool, holeRate float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			w := float64(1 + rng.Intn(100))
			if holeRate > 0 && rng.Float64() < holeRate {
				w = inf
			}
			a[i][j] = w
			if symmetric {
				a[j][i] = w
			}
		}
	}

	return a
}

// bruteForce enumerates every tour from 0 and returns the optimum (+Inf if none).
func bruteForce(a [][]float64) float64 {
	n := len(a)
	if n == 1 {
		return 0
	}
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}
	best := inf
	var rec func(k int)
	rec = func(k int) {
		if k == len(rest) {
			c, prev := 0.0, 0
			for _, v := range rest {
				c += a[prev][v]
				prev = v
			}
			c += a[prev][0]
			if c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			rec(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	rec(0)

	return best
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("tour mismatch:\n got: %s\nwant: %s", tsp.DebugString(got), tsp.DebugString(want))
	}
}

// requireClosedTour asserts len==n+1, starts/ends at startV and is a permutation.
func requireClosedTour(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n, startV), "tour %s", tsp.DebugString(tour))
}
