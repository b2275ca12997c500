package engine

import (
	"math/rand"
	"time"
)

// Engine is the deterministic game state machine. It owns the snake,
// food, score, speed, and run state; all mutation happens through its
// command methods and Advance. The Loop (or a test) drives it from a
// single logical thread of control, so the engine itself takes no locks.
type Engine struct {
	cfg     Config
	board   Board
	rng     *rand.Rand
	spawner *FoodSpawner
	speed   *SpeedController

	snake         []Coord // Head at index 0
	direction     Direction
	pendingGrowth int
	food          Coord
	foodEaten     int
	score         int
	state         RunState
	won           bool
	tick          uint64
}

// New creates an engine for one game session. The seed fixes the food
// placement sequence, making runs reproducible.
func New(cfg Config, seed int64) *Engine {
	e := &Engine{cfg: cfg}
	e.Reset(seed)
	return e
}

// Config returns the validated session configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset re-seeds the session: fresh snake, food, score, and speed, with
// the run state back at Idle. No entity survives across a reset.
func (e *Engine) Reset(seed int64) {
	e.board = Board{Dimension: e.cfg.Dimension}
	e.rng = rand.New(rand.NewSource(seed))
	e.spawner = NewFoodSpawner(e.rng)
	e.speed = NewSpeedController(e.cfg)
	e.pendingGrowth = 0
	e.foodEaten = 0
	e.score = 0
	e.won = false
	e.tick = 0
	e.state = StateIdle

	// Initial snake: three segments in the middle column, moving up.
	mid := e.cfg.Dimension / 2
	e.snake = []Coord{
		{X: mid, Y: mid - 1}, // Head
		{X: mid, Y: mid},
		{X: mid, Y: mid + 1},
	}
	e.direction = DirUp

	e.food, _ = e.spawner.Place(e.board, e.snake)
}

// Start arms the session: Idle or Paused becomes Running. No-op in any
// other state.
func (e *Engine) Start() {
	if e.state == StateIdle || e.state == StatePaused {
		e.state = StateRunning
	}
}

// TogglePause flips Running and Paused. It is a no-op once the session
// is Over (until Reset) and before the first Start.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
	}
}

// SetDirection requests a direction change. The request is ignored
// when the session is not Running or when it would reverse the snake
// 180°; the current direction is preserved in that case. Reports
// whether the direction was accepted.
func (e *Engine) SetDirection(d Direction) bool {
	if e.state != StateRunning {
		return false
	}
	if !AllowedTurn(d, e.direction) {
		return false
	}
	e.direction = d
	return true
}

// Advance performs one simulation tick: move the head, detect
// collisions, shift the body, materialize pending growth, and handle
// eating. Collision reverts the head to its pre-move cell and ends the
// session; a fully-occupied board ends it as a win.
func (e *Engine) Advance() Snapshot {
	if e.state != StateRunning {
		return e.Snapshot()
	}
	e.tick++

	delta := e.direction.Delta()
	head := e.snake[0]
	newHead := Coord{X: head.X + delta.X, Y: head.Y + delta.Y}

	eating := newHead == e.food

	if e.collides(newHead) {
		// Head stays at its last valid cell; no food, no score.
		e.state = StateOver
		return e.Snapshot()
	}

	// Rebuild the body: every segment takes the cell its predecessor
	// held before the move. The old tail cell is freed.
	oldTail := e.snake[len(e.snake)-1]
	next := make([]Coord, 0, len(e.snake)+1)
	next = append(next, newHead)
	next = append(next, e.snake[:len(e.snake)-1]...)

	// One unit of growth owed from earlier ticks materializes now,
	// reoccupying the freed tail cell. Growth from food eaten this
	// tick starts materializing on the next tick.
	if e.pendingGrowth > 0 {
		e.pendingGrowth--
		next = append(next, oldTail)
	}
	e.snake = next

	if eating {
		e.pendingGrowth += e.cfg.CellGrowthPerFood
		e.foodEaten++
		e.score = e.foodEaten * e.cfg.ScorePerFood
		e.speed.OnFoodEaten()

		food, ok := e.spawner.Place(e.board, e.snake)
		if !ok {
			// The snake covers the whole board: nothing left to eat.
			e.won = true
			e.state = StateOver
		}
		e.food = food
	}

	return e.Snapshot()
}

// collides reports whether the prospective head cell ends the game:
// out of bounds, or on any pre-move body segment (index >= 1). The cell
// behind the old head counts even though the tail moves this tick.
func (e *Engine) collides(newHead Coord) bool {
	if !e.board.Contains(newHead) {
		return true
	}
	for _, seg := range e.snake[1:] {
		if seg == newHead {
			return true
		}
	}
	return false
}

// State returns the current run state.
func (e *Engine) State() RunState {
	return e.state
}

// Interval returns the current tick interval.
func (e *Engine) Interval() time.Duration {
	return e.speed.Interval()
}
