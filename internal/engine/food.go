package engine

import "math/rand"

// FoodSpawner places food on free board cells using a seeded RNG.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner backed by the given RNG.
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// Place returns a uniformly random coordinate not occupied by any snake
// segment. Sampling is bounded: after one board's worth of rejected
// tries it falls back to scanning the free cells directly, so a nearly
// full board cannot stall the tick. The second return value is false
// when the board is completely occupied and no food can be placed.
func (f *FoodSpawner) Place(board Board, snake []Coord) (Coord, bool) {
	occupied := make(map[Coord]bool, len(snake))
	for _, seg := range snake {
		occupied[seg] = true
	}

	if len(occupied) >= board.Cells() {
		return Coord{X: -1, Y: -1}, false
	}

	for range board.Cells() {
		c := Coord{
			X: f.rng.Intn(board.Dimension),
			Y: f.rng.Intn(board.Dimension),
		}
		if !occupied[c] {
			return c, true
		}
	}

	// Dense board: pick uniformly among the remaining free cells.
	free := make([]Coord, 0, board.Cells()-len(occupied))
	for y := 0; y < board.Dimension; y++ {
		for x := 0; x < board.Dimension; x++ {
			c := Coord{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Coord{X: -1, Y: -1}, false
	}
	return free[f.rng.Intn(len(free))], true
}
