package engine

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// opposites is the exhaustive opposite-direction lookup, indexed by Direction.
var opposites = [...]Direction{
	DirUp:    DirDown,
	DirDown:  DirUp,
	DirLeft:  DirRight,
	DirRight: DirLeft,
}

// deltas maps each direction to its per-tick cell offset.
var deltas = [...]Coord{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the cell offset one step in direction d.
func (d Direction) Delta() Coord {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// AllowedTurn reports whether the snake may switch from current to
// requested. Only an exact 180° reversal is rejected; the head would
// otherwise be commanded straight into the body segment behind it.
// Requesting the current direction again is allowed.
func AllowedTurn(requested, current Direction) bool {
	return requested != current.Opposite()
}
