package model

import "fmt"

// Position represents a cell coordinate on a map grid.
// Value type, passed by value (immutable).
type Position struct {
	X int
	Y int
}

// NewPosition creates a Position with the given coordinates.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns a new Position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanDistance returns |dx| + |dy| to other.
// Matches the 4-directional movement model used by pathfinding.
func (p Position) ManhattanDistance(other Position) int {
	return absInt(p.X-other.X) + absInt(p.Y-other.Y)
}

// ChebyshevDistance returns max(|dx|, |dy|) to other.
// Used for footprint proximity checks.
func (p Position) ChebyshevDistance(other Position) int {
	dx := absInt(p.X - other.X)
	dy := absInt(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// String returns "(x,y)" for logs and test output.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
