package instance

import (
	"math"

	"github.com/katalvlaran/ringtsp/matrix"
)

// SevenCities returns the 7-city reference instance. City 1 (index 0) is
// the start; "inf" marks pairs with no direct road. Its optimal tour is
// 1-2-4-6-7-5-3-1 with cost 63.
func SevenCities() *matrix.Dense {
	return mustRows([][]float64{
		{0, 12, 10, inf, inf, inf, 12},
		{12, 0, 8, 12, inf, inf, inf},
		{10, 8, 0, 11, 3, inf, 9},
		{inf, 12, 11, 0, 11, 10, inf},
		{inf, inf, 3, 11, 0, 6, 7},
		{inf, inf, inf, 10, 6, 0, 9},
		{12, inf, 9, inf, 7, 9, 0},
	})
}

// Chain4 returns a 4-city chain where only neighbors are cheap; the optimum is 12.
func Chain4() *matrix.Dense {
	return mustRows([][]float64{
		{0, 1, 9, 9},
		{1, 0, 1, 9},
		{9, 1, 0, 1},
		{9, 9, 1, 0},
	})
}

// Builtin returns a named built-in instance, or nil.
func Builtin(name string) *matrix.Dense {
	switch name {
	case "seven", "seven-cities", "7":
		return SevenCities()
	case "chain4", "chain":
		return Chain4()
	}
	return nil
}

var inf = math.Inf(1)

func mustRows(rows [][]float64) *matrix.Dense {
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		panic(err) // literals above are square by construction
	}
	return d
}
