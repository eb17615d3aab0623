package tsp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringtsp/matrix"
)

// holeyDense returns a random asymmetric n×n instance with integer costs in
// [1..50] and roughly holeRate of the off-diagonal pairs unreachable.
func holeyDense(t *testing.T, n int, seed int64, holeRate float64) *matrix.Dense {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	d, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w := float64(1 + r.Intn(50))
			if r.Float64() < holeRate {
				w = math.Inf(1)
			}
			require.NoError(t, d.Set(i, j, w))
		}
	}
	return d
}

// solveWith runs the Held–Karp search over the given memo.
// A nil tour means no Hamiltonian cycle exists.
func solveWith(dist *matrix.Dense, n int, m memo) (float64, []int) {
	hk := newHeldKarp(dist, n)
	hk.memo = m
	best := hk.value(1, 0)
	if math.IsInf(best, 1) {
		return best, nil
	}
	return round1e9(best), hk.tour()
}

func TestHeldKarp_MapMemoMatchesArena(t *testing.T) {
	var feasible, infeasible int
	for n := 1; n <= 11; n++ {
		for k := 0; k < 20; k++ {
			dist := holeyDense(t, n, int64(1000*n+k), 0.3)

			arenaCost, arenaTour := solveWith(dist, n, newArenaMemo(n))
			mapCost, mapTour := solveWith(dist, n, make(mapMemo))

			require.Equal(t, arenaCost, mapCost, "n=%d k=%d", n, k)
			require.Equal(t, arenaTour, mapTour, "n=%d k=%d", n, k)
			if arenaTour == nil {
				infeasible++
				continue
			}
			feasible++
			c, err := TourCost(dist, mapTour)
			require.NoError(t, err)
			require.Equal(t, mapCost, c, "n=%d k=%d", n, k)
		}
	}
	require.Positive(t, feasible)
	require.Positive(t, infeasible)
}

func TestNewHeldKarp_MemoSelection(t *testing.T) {
	small := holeyDense(t, 4, 1, 0)
	_, ok := newHeldKarp(small, 4).memo.(*arenaMemo)
	require.True(t, ok, "n<=%d uses the arena", denseMemoLimit)

	n := denseMemoLimit + 1
	large := holeyDense(t, n, 2, 0)
	_, ok = newHeldKarp(large, n).memo.(mapMemo)
	require.True(t, ok, "n>%d uses the sparse map", denseMemoLimit)
}

func TestMapMemo_KeysDoNotCollideAtLimit(t *testing.T) {
	m := make(mapMemo)
	full := 1<<MaxExactCitiesLimit - 1
	m.put(full, MaxExactCitiesLimit-1, memoEntry{cost: 1, next: 3})
	m.put(full>>1, MaxExactCitiesLimit-1, memoEntry{cost: 2, next: 4})
	m.put(full, 0, memoEntry{cost: 3, next: noNext})

	e, ok := m.get(full, MaxExactCitiesLimit-1)
	require.True(t, ok)
	require.Equal(t, memoEntry{cost: 1, next: 3}, e)
	e, ok = m.get(full>>1, MaxExactCitiesLimit-1)
	require.True(t, ok)
	require.Equal(t, 2.0, e.cost)
	e, ok = m.get(full, 0)
	require.True(t, ok)
	require.Equal(t, noNext, e.next)
	require.Len(t, m, 3)
}
