package instance

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/ringtsp/matrix"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// RandomSpec describes a pseudo-random instance.
type RandomSpec struct {
	N         int     // number of cities, ≥1
	Seed      int64   // 0 ⇒ defaultRNGSeed
	MaxCost   int     // costs are integers in [1..MaxCost]; 0 ⇒ 100
	Symmetric bool    // mirror the upper triangle
	HoleRate  float64 // fraction of off-diagonal pairs made unreachable, in [0,1)
}

// Random builds an instance from spec. The same spec always yields the same
// matrix. Each row draws from its own stream (deriveSeed), so growing N keeps
// the already generated prefix rows' streams independent of the new ones.
//
// Complexity: O(N²).
func Random(spec RandomSpec) (*matrix.Dense, error) {
	if spec.N < 1 {
		return nil, errors.Wrapf(ErrBadRandom, "n=%d", spec.N)
	}
	if spec.HoleRate < 0 || spec.HoleRate >= 1 || math.IsNaN(spec.HoleRate) {
		return nil, errors.Wrapf(ErrBadRandom, "hole rate %v", spec.HoleRate)
	}
	if spec.MaxCost < 0 {
		return nil, errors.Wrapf(ErrBadRandom, "max cost %d", spec.MaxCost)
	}
	maxCost := spec.MaxCost
	if maxCost == 0 {
		maxCost = 100
	}

	n := spec.N
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	base := rngFromSeed(spec.Seed)

	var (
		i, j int
		w    float64
		r    *rand.Rand
	)
	for i = 0; i < n; i++ {
		r = deriveRNG(base, uint64(i))
		for j = 0; j < n; j++ {
			if i == j || (spec.Symmetric && j < i) {
				continue
			}
			w = float64(1 + r.Intn(maxCost))
			if spec.HoleRate > 0 && r.Float64() < spec.HoleRate {
				w = math.Inf(1)
			}
			_ = d.Set(i, j, w)
			if spec.Symmetric {
				_ = d.Set(j, i, w)
			}
		}
	}

	return d, nil
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base and a stream id.
// base.Int63() is consumed once per call.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}
