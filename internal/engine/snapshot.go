package engine

// Snapshot is the read-only view of engine state handed to hosts after
// every state-affecting tick or command. It is a value: the snake slice
// is a fresh copy, never aliased to engine-owned storage, so a renderer
// can hold it across ticks safely.
type Snapshot struct {
	Snake     []Coord // Head at index 0
	Food      Coord   // (-1,-1) when the board is full
	Direction Direction
	Score     int
	FoodEaten int
	SpeedMs   float64
	State     RunState
	Won       bool // Board fully occupied; State is Over
	Tick      uint64
}

// Head returns the head cell, or a zero Coord for an empty snake.
func (s Snapshot) Head() Coord {
	if len(s.Snake) == 0 {
		return Coord{}
	}
	return s.Snake[0]
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	snake := make([]Coord, len(e.snake))
	copy(snake, e.snake)

	return Snapshot{
		Snake:     snake,
		Food:      e.food,
		Direction: e.direction,
		Score:     e.score,
		FoodEaten: e.foodEaten,
		SpeedMs:   e.speed.CurrentMs(),
		State:     e.state,
		Won:       e.won,
		Tick:      e.tick,
	}
}
