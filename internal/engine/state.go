package engine

// RunState is the game session lifecycle state.
type RunState int

const (
	// StateIdle is the state before the first start and after a reset.
	StateIdle RunState = iota
	// StateRunning means the tick loop is advancing the snake.
	StateRunning
	// StatePaused means the session is suspended; no ticks fire.
	StatePaused
	// StateOver is terminal: collision or a fully-occupied board.
	// Only a reset leaves it.
	StateOver
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
