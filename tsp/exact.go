package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ringtsp/matrix"
)

// denseMemoLimit is the largest n for which the memo is a flat arena.
// Masks always contain the start city, so the arena holds 2ⁿ⁻¹·n entries
// (≈10M entries, ~94 MiB, at n=20). Above it a sparse map is used.
const denseMemoLimit = 20

// noNext marks a memo entry with no feasible continuation.
const noNext = -1

// TSPExact solves the Travelling Salesman Problem exactly on a given
// distance matrix using the Held–Karp dynamic‐programming algorithm.
//
// The input is an n×n matrix dist, where dist[i][j] is the cost to go
// from vertex i to j.  A value of math.Inf(1) represents “no edge.”
// The diagonal dist[i][i] must be zero. City 0 is the fixed start.
//
// value(mask, pos) is the cheapest way to visit every city outside mask,
// starting at pos, and return to 0:
//
//	value(full, pos) = dist[pos][0]
//	value(mask, pos) = min over c∉mask with dist[pos][c] < ∞ of
//	                   dist[pos][c] + value(mask|1<<c, c)
//
// Candidates are tried in ascending city order and only a strictly smaller
// value replaces the incumbent, so among equal-cost tours the one that is
// lexicographically first by its recorded choices wins.
//
// It returns a TSResult containing:
//   - Tour: a slice of length n+1 of vertex indices, starting and ending at 0.
//   - Cost: total cycle cost.
//
// Errors:
//   - MalformedInput sentinels from validation,
//   - ErrSizeLimitExceeded when n > opts.MaxExactCities,
//   - ErrInfeasible if no Hamiltonian cycle from 0 exists.
//
// The input matrix is only read; unreachable entries are handled as +Inf in
// a private copy.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func TSPExact(dist matrix.Matrix, opts Options) (TSResult, error) {
	// --- 1. Validate input matrix and size budget ---
	n, err := validateAll(dist, opts)
	if err != nil {
		return TSResult{}, err
	}
	if limit := opts.maxExact(); n > limit {
		return TSResult{}, fmt.Errorf("n=%d, limit %d: %w", n, limit, ErrSizeLimitExceeded)
	}

	// --- 2. Prepare per-call working storage ---
	hk := newHeldKarp(dist, n)

	// --- 3. Run the memoized search from (mask={0}, pos=0) ---
	best := hk.value(1, 0)
	if math.IsInf(best, 1) {
		return TSResult{}, ErrInfeasible
	}

	// --- 4. Reconstruct the tour by following recorded choices ---
	return TSResult{Tour: hk.tour(), Cost: round1e9(best)}, nil
}

// heldKarp is the working storage of one TSPExact call.
// Nothing in it outlives the call.
type heldKarp struct {
	n    int
	full int       // all n bits set
	w    []float64 // row-major copy of dist
	memo memo
}

func newHeldKarp(dist matrix.Matrix, n int) *heldKarp {
	hk := &heldKarp{
		n:    n,
		full: 1<<n - 1,
		w:    flatten(dist, n),
	}
	if n <= denseMemoLimit {
		hk.memo = newArenaMemo(n)
	} else {
		hk.memo = make(mapMemo)
	}

	return hk
}

// value returns the cheapest completion cost from state (mask, pos).
// Recursion depth is at most n.
func (hk *heldKarp) value(mask, pos int) float64 {
	// Base case: everything visited, close the cycle back to 0.
	if mask == hk.full {
		return hk.w[pos*hk.n]
	}
	if e, ok := hk.memo.get(mask, pos); ok {
		return e.cost
	}

	var (
		best = math.Inf(1)
		next = noNext
		row  = hk.w[pos*hk.n : (pos+1)*hk.n]
		c    int
		cand float64
	)
	for c = 0; c < hk.n; c++ {
		if mask&(1<<c) != 0 {
			continue // already visited
		}
		if math.IsInf(row[c], 1) {
			continue // no edge pos→c
		}
		cand = row[c] + hk.value(mask|1<<c, c)
		if cand < best {
			best = cand
			next = c
		}
	}
	hk.memo.put(mask, pos, memoEntry{cost: best, next: next})

	return best
}

// tour follows the argmin chain from (1, 0) to the full mask.
// Must only be called after value(1, 0) returned a finite cost.
func (hk *heldKarp) tour() []int {
	out := make([]int, hk.n+1)
	var (
		mask = 1
		pos  = 0
		i    int
		e    memoEntry
	)
	for i = 1; i < hk.n; i++ {
		e, _ = hk.memo.get(mask, pos)
		pos = e.next
		mask |= 1 << pos
		out[i] = pos
	}
	out[0], out[hk.n] = 0, 0

	return out
}

// flatten copies dist into a row-major slice, using the *matrix.Dense
// fast path when available.
func flatten(dist matrix.Matrix, n int) []float64 {
	if d, ok := dist.(*matrix.Dense); ok {
		return d.Flat()
	}
	w := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w[i*n+j], _ = dist.At(i, j) // shape validated upstream
		}
	}

	return w
}

// memoEntry is the (minimum remaining cost, first step of the remaining path)
// pair stored per state. The rest of the path is recovered by chaining.
type memoEntry struct {
	cost float64
	next int
}

// memo maps (mask, pos) states to their solved entry.
type memo interface {
	get(mask, pos int) (memoEntry, bool)
	put(mask, pos int, e memoEntry)
}

// arenaMemo is a flat 2ⁿ⁻¹×n table. Bit 0 is always set in reachable masks,
// so it is dropped from the index.
type arenaMemo struct {
	n    int
	cost []float64
	next []int8
	done []bool
}

func newArenaMemo(n int) *arenaMemo {
	size := (1 << (n - 1)) * n
	return &arenaMemo{
		n:    n,
		cost: make([]float64, size),
		next: make([]int8, size),
		done: make([]bool, size),
	}
}

func (m *arenaMemo) get(mask, pos int) (memoEntry, bool) {
	k := (mask>>1)*m.n + pos
	if !m.done[k] {
		return memoEntry{}, false
	}

	return memoEntry{cost: m.cost[k], next: int(m.next[k])}, true
}

func (m *arenaMemo) put(mask, pos int, e memoEntry) {
	k := (mask>>1)*m.n + pos
	m.cost[k] = e.cost
	m.next[k] = int8(e.next)
	m.done[k] = true
}

// mapMemo is the sparse fallback for instances past denseMemoLimit.
type mapMemo map[uint64]memoEntry

func (m mapMemo) get(mask, pos int) (memoEntry, bool) {
	e, ok := m[uint64(mask)<<8|uint64(pos)]
	return e, ok
}

func (m mapMemo) put(mask, pos int, e memoEntry) {
	m[uint64(mask)<<8|uint64(pos)] = e
}
