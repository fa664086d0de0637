package grid

import "github.com/udisondev/gridnav/internal/model"

// CellType classifies the static terrain of a single grid cell.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellWall
	CellBuilding
	CellRoad
	CellBlocked
)

// String returns the terrain name, used as the key into terrain-effect tables.
func (t CellType) String() string {
	switch t {
	case CellWall:
		return "wall"
	case CellBuilding:
		return "building"
	case CellRoad:
		return "road"
	case CellBlocked:
		return "blocked"
	}
	return "empty"
}

// Walkable reports whether the terrain type permits traversal.
// Wall and Blocked are never walkable; Building cells are walkable by
// default (interiors are modeled as separate grids).
func (t CellType) Walkable() bool {
	return t != CellWall && t != CellBlocked
}

// Cell is one grid square: terrain plus occupancy.
// Occupancy and terrain are independently settable, but the owning Grid
// rejects occupying a non-walkable cell.
type Cell struct {
	Position   model.Position
	Type       CellType
	Walkable   bool
	IsOccupied bool
	OccupantID string
}
