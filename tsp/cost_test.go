package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ringtsp/tsp"
	"github.com/stretchr/testify/require"
)

func TestTourCost(t *testing.T) {
	seven := mustDense(t, sevenCities())

	tests := []struct {
		name    string
		tour    []int
		want    float64
		wantErr error
	}{
		{name: "optimal seven", tour: []int{0, 1, 3, 5, 6, 4, 2, 0}, want: 63},
		{name: "reverse is equal on symmetric input", tour: []int{0, 2, 4, 6, 5, 3, 1, 0}, want: 63},
		{name: "ring order", tour: []int{0, 1, 2, 3, 4, 5, 6, 0}, want: 69},
		{name: "open path is summed as given", tour: []int{0, 1, 2}, want: 20},
		{name: "self loop", tour: []int{0, 0}, want: 0},
		{name: "unreachable leg", tour: []int{0, 3, 1, 2, 4, 5, 6, 0}, wantErr: tsp.ErrInfeasible},
		{name: "short", tour: []int{0}, wantErr: tsp.ErrDimensionMismatch},
		{name: "out of range", tour: []int{0, 7, 0}, wantErr: tsp.ErrDimensionMismatch},
		{name: "negative index", tour: []int{0, -1, 0}, wantErr: tsp.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tsp.TourCost(seven, tc.tour)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTourCost_SingleCity(t *testing.T) {
	c, err := tsp.TourCost(mustDense(t, [][]float64{{0}}), []int{0, 0})
	require.NoError(t, err)
	require.Equal(t, 0.0, c)
}

func TestTourCost_InfeasibleShortCircuits(t *testing.T) {
	// The NaN after the unreachable leg is never read.
	m := altDense{a: [][]float64{
		{0, inf, 1},
		{1, 0, math.NaN()},
		{1, 1, 0},
	}}
	c, err := tsp.TourCost(m, []int{0, 1, 2, 0})
	require.ErrorIs(t, err, tsp.ErrInfeasible)
	require.True(t, math.IsInf(c, 1))

	// Reading the NaN directly is a malformed-input error.
	_, err = tsp.TourCost(m, []int{1, 2})
	require.ErrorIs(t, err, tsp.ErrNaN)
}

func TestTourCost_MalformedMatrix(t *testing.T) {
	_, err := tsp.TourCost(nil, []int{0, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(altDense{a: [][]float64{{0, 1, 2}, {1, 0, 2}}}, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	_, err = tsp.TourCost(altDense{a: [][]float64{{0, -2}, {1, 0}}}, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}

func TestTourCost_RoundsFloatingNoise(t *testing.T) {
	m := mustDense(t, [][]float64{
		{0, 0.1, 0.2},
		{0.1, 0, 0.2},
		{0.2, 0.2, 0},
	})
	c, err := tsp.TourCost(m, []int{0, 1, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 0.5, c)
}

func TestEdgeCosts(t *testing.T) {
	seven := mustDense(t, sevenCities())
	legs, err := tsp.EdgeCosts(seven, []int{0, 3, 1, 0})
	require.NoError(t, err)
	require.Len(t, legs, 3)
	require.True(t, math.IsInf(legs[0], 1))
	require.Equal(t, []float64{12, 12}, legs[1:])

	_, err = tsp.EdgeCosts(seven, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
