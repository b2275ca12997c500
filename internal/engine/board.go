// Package engine implements the snake game simulation: board geometry,
// snake movement, food placement, speed progression, and the run-state
// machine. It contains no UI dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package engine

// Coord is a single grid cell position. It is a value type with no
// identity; snapshots and the snake body hold copies, never shared
// references.
type Coord struct {
	X, Y int
}

// Board describes the square playfield. Valid coordinates lie in
// [0, Dimension) on both axes.
type Board struct {
	Dimension int
}

// Contains reports whether c lies within the board bounds.
func (b Board) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.Dimension && c.Y >= 0 && c.Y < b.Dimension
}

// Cells returns the total number of cells on the board.
func (b Board) Cells() int {
	return b.Dimension * b.Dimension
}
