package util

import (
	"math/rand"

	"guard_patrol/internal/patrol"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// RandomLayout places a guard with a random heading on a rows x cols grid
// and blocks each other cell with probability density.
func RandomLayout(rng *rand.Rand, rows, cols int, density float64) (patrol.GridMap, patrol.Guard, error) {
	dim := patrol.Dimension{Rows: rows, Cols: cols}
	start := patrol.Guard{
		Pos: patrol.Position{Row: rng.Intn(rows), Col: rng.Intn(cols)},
		Dir: patrol.Directions[rng.Intn(len(patrol.Directions))],
	}
	var obstacles []patrol.Position
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := patrol.Position{Row: r, Col: c}
			if p != start.Pos && rng.Float64() < density {
				obstacles = append(obstacles, p)
			}
		}
	}
	m, err := patrol.NewGridMap(dim, start.Pos, obstacles)
	if err != nil {
		return patrol.GridMap{}, patrol.Guard{}, err
	}
	return m, start, nil
}
