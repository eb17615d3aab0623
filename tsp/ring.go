// Package tsp - neural ring (self-organizing map) heuristic.
//
// A ring of 2n movable neurons is pulled toward n fixed city points by
// competitive learning; after training, each city is assigned to its nearest
// neuron and the ring order of those neurons is the tour.
//
// Layout:
//   - city i sits at angle 2πi/n on a circle of radius CityRadius,
//   - neuron k starts at angle 2πk/(2n) on a circle of radius NeuronRadius.
//
// The layout depends only on n. Decoding uses neuron order, not geometry,
// so the heuristic never reads the cost matrix beyond validating it, and a
// decoded tour may use an unreachable edge. Pricing and feasibility are the
// job of TourCost.
//
// Determinism: cities are swept in index order every epoch and no RNG is used.
package tsp

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/ringtsp/matrix"
)

// Geometry of the initial embedding.
const (
	CityRadius     = 10.0
	NeuronRadius   = 15.0
	NeuronsPerCity = 2
)

// Point is a position in the 2D embedding.
type Point struct {
	X, Y float64
}

func (p Point) dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// NeuralRing holds the two point populations of one heuristic run.
// Cities never move; neurons are updated by Train. Neighbors on the ring are
// defined by neuron index only (k and k±1 mod len(neurons)).
//
// A NeuralRing is not safe for concurrent use; build one per goroutine.
type NeuralRing struct {
	cities  []Point
	neurons []Point

	learningRate   float64
	neighborhood   float64
	pruneThreshold float64
}

// NewNeuralRing lays out n cities and 2n neurons and captures the learning
// parameters of opts (LearningRate, Neighborhood, PruneThreshold).
//
// Errors: ErrDimensionMismatch for n<1, ErrInvalidOptions for bad parameters.
//
// Complexity: O(n).
func NewNeuralRing(n int, opts Options) (*NeuralRing, error) {
	if n < 1 {
		return nil, ErrDimensionMismatch
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &NeuralRing{
		cities:         circle(n, CityRadius),
		neurons:        circle(NeuronsPerCity*n, NeuronRadius),
		learningRate:   opts.LearningRate,
		neighborhood:   opts.Neighborhood,
		pruneThreshold: opts.PruneThreshold,
	}, nil
}

// circle places k points evenly on a circle of radius r, index order counterclockwise.
func circle(k int, r float64) []Point {
	pts := make([]Point, k)
	var (
		i     int
		angle float64
	)
	for i = 0; i < k; i++ {
		angle = 2 * math.Pi * float64(i) / float64(k)
		pts[i] = Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}

	return pts
}

// Train runs iterations epochs. In epoch t the learning rate and the
// neighborhood width are both scaled by d = 1 − t/iterations; every city, in
// index order, pulls its winner and the winner's ring neighbors toward itself
// with Gaussian influence exp(−dist²/(2·width²)).
//
// Errors: ErrInvalidOptions for iterations<0.
//
// Complexity: O(iterations · n · 2n).
func (r *NeuralRing) Train(iterations int) error {
	if iterations < 0 {
		return ErrInvalidOptions
	}

	var (
		t, c  int
		decay float64
	)
	for t = 0; t < iterations; t++ {
		decay = 1.0 - float64(t)/float64(iterations)
		for c = 0; c < len(r.cities); c++ {
			r.pull(r.cities[c], r.learningRate*decay, r.neighborhood*decay)
		}
	}

	return nil
}

// pull moves the winner for city and its ring neighborhood toward city.
func (r *NeuralRing) pull(city Point, lr, width float64) {
	var (
		m      = len(r.neurons)
		winner = r.winner(city)
		den    = 2 * (width * width)
		i      int
		d      int
		inf    float64
	)
	for i = 0; i < m; i++ {
		d = ringDistance(i, winner, m)
		if den == 0 {
			// Zero width: only the winner moves, with full influence.
			if d != 0 {
				continue
			}
			inf = 1
		} else {
			inf = math.Exp(-float64(d*d) / den)
		}
		if inf < r.pruneThreshold {
			continue
		}
		r.neurons[i].X += lr * inf * (city.X - r.neurons[i].X)
		r.neurons[i].Y += lr * inf * (city.Y - r.neurons[i].Y)
	}
}

// winner returns the index of the neuron nearest to p; ties go to the lowest index.
//
// Complexity: O(len(neurons)).
func (r *NeuralRing) winner(p Point) int {
	var (
		best  = 0
		bestD = p.dist(r.neurons[0])
		i     int
		d     float64
	)
	for i = 1; i < len(r.neurons); i++ {
		d = p.dist(r.neurons[i])
		if d < bestD {
			best, bestD = i, d
		}
	}

	return best
}

// ringDistance is the circular index distance between neurons i and j on a
// ring of m neurons.
func ringDistance(i, j, m int) int {
	d := i - j
	if d < 0 {
		d = -d
	}
	if m-d < d {
		return m - d
	}

	return d
}

// Winner returns the index of the neuron currently nearest to city.
// Errors: ErrDimensionMismatch when city is out of range.
func (r *NeuralRing) Winner(city int) (int, error) {
	if city < 0 || city >= len(r.cities) {
		return 0, ErrDimensionMismatch
	}

	return r.winner(r.cities[city]), nil
}

// Cities returns a copy of the fixed city positions.
func (r *NeuralRing) Cities() []Point { return append([]Point(nil), r.cities...) }

// Neurons returns a copy of the current neuron positions in ring order.
func (r *NeuralRing) Neurons() []Point { return append([]Point(nil), r.neurons...) }

// ringSlot orders cities by their winner's ring index, then by city index.
type ringSlot struct {
	winner int
	city   int
}

func ringSlotComparator(a, b interface{}) int {
	x, y := a.(ringSlot), b.(ringSlot)
	switch {
	case x.winner != y.winner:
		return x.winner - y.winner
	default:
		return x.city - y.city
	}
}

// Decode maps every city to its winner, orders cities by (winner, city),
// rotates the order to start at city 0 (RotateTourToStart) and closes it.
//
// The rotated order is checked to be a permutation containing city 0 exactly
// once; a violation returns ErrDimensionMismatch instead of a corrupt tour.
//
// Complexity: O(n·2n + n log n).
func (r *NeuralRing) Decode() ([]int, error) {
	var (
		n     = len(r.cities)
		slots = redblacktree.NewWith(ringSlotComparator)
		c     int
	)
	for c = 0; c < n; c++ {
		slots.Put(ringSlot{winner: r.winner(r.cities[c]), city: c}, c)
	}

	perm := make([]int, 0, n)
	for _, v := range slots.Values() {
		perm = append(perm, v.(int))
	}

	return RotateTourToStart(perm, 0)
}

// TSPNeuralRing validates dist, trains a NeuralRing for opts.Iterations
// epochs and decodes a closed tour starting and ending at city 0.
//
// It returns the tour only. The tour is not repaired: it may use an
// unreachable edge, which TourCost then reports as ErrInfeasible.
//
// Errors: MalformedInput sentinels, ErrInvalidOptions.
//
// Complexity: O(n² + iterations·n²).
func TSPNeuralRing(dist matrix.Matrix, opts Options) ([]int, error) {
	n, err := validateAll(dist, opts)
	if err != nil {
		return nil, err
	}
	ring, err := NewNeuralRing(n, opts)
	if err != nil {
		return nil, err
	}
	if err = ring.Train(opts.Iterations); err != nil {
		return nil, err
	}

	return ring.Decode()
}
