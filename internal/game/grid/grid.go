package grid

import (
	"log/slog"

	"github.com/udisondev/gridnav/internal/model"
)

// MutationListener receives the position of every cell whose terrain or
// occupancy changed. Listeners must not mutate the grid re-entrantly.
type MutationListener func(pos model.Position)

// Grid is the authoritative store of static terrain and occupancy for one
// map instance. One Grid per map; not internally synchronized — callers in
// a multi-threaded host serialize access per map.
type Grid struct {
	width     int
	height    int
	cells     []Cell
	listeners []MutationListener
}

// New creates a width×height grid of empty, walkable, unoccupied cells.
// Returns nil for non-positive dimensions.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return nil
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[y*width+x]
			c.Position = model.Position{X: x, Y: y}
			c.Type = CellEmpty
			c.Walkable = true
		}
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether pos lies inside the grid.
func (g *Grid) InBounds(pos model.Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// Get returns the cell at (x, y), or nil if out of bounds.
// The returned pointer stays valid for the life of the grid; treat it as
// read-only and mutate through the Grid's setters so listeners fire.
func (g *Grid) Get(x, y int) *Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// GetAt is Get for a Position value.
func (g *Grid) GetAt(pos model.Position) *Cell {
	return g.Get(pos.X, pos.Y)
}

// OnMutation registers a listener invoked once per mutated cell.
func (g *Grid) OnMutation(fn MutationListener) {
	g.listeners = append(g.listeners, fn)
}

func (g *Grid) notify(pos model.Position) {
	for _, fn := range g.listeners {
		fn(pos)
	}
}

// SetCellType updates the terrain at pos, recomputes walkability and fires
// a mutation event. Returns false (no mutation) if pos is out of bounds.
func (g *Grid) SetCellType(pos model.Position, t CellType) bool {
	c := g.GetAt(pos)
	if c == nil {
		return false
	}
	c.Type = t
	c.Walkable = t.Walkable()
	g.notify(pos)
	return true
}

// IsAreaAvailable reports whether every cell of the dims.X×dims.Y rectangle
// anchored at pos is in bounds, walkable and unoccupied. Pure query.
func (g *Grid) IsAreaAvailable(pos, dims model.Position) bool {
	if dims.X <= 0 || dims.Y <= 0 {
		return false
	}
	for dy := 0; dy < dims.Y; dy++ {
		for dx := 0; dx < dims.X; dx++ {
			c := g.Get(pos.X+dx, pos.Y+dy)
			if c == nil || c.IsOccupied || !c.Walkable {
				return false
			}
		}
	}
	return true
}

// OccupyArea marks the rectangle at pos as occupied by occupantID, setting
// each cell to CellBuilding. All-or-nothing: if any cell is out of bounds,
// occupied or non-walkable, nothing changes and false is returned.
// Fires one mutation event per cell on success.
func (g *Grid) OccupyArea(pos, dims model.Position, occupantID string) bool {
	if !g.IsAreaAvailable(pos, dims) {
		slog.Debug("occupy area rejected",
			"pos", pos,
			"dims", dims,
			"occupant", occupantID)
		return false
	}
	for dy := 0; dy < dims.Y; dy++ {
		for dx := 0; dx < dims.X; dx++ {
			c := g.Get(pos.X+dx, pos.Y+dy)
			c.Type = CellBuilding
			c.Walkable = CellBuilding.Walkable()
			c.IsOccupied = true
			c.OccupantID = occupantID
			g.notify(c.Position)
		}
	}
	return true
}

// ClearArea resets the rectangle at pos to empty, unoccupied cells.
// All-or-nothing: returns false if any cell is out of bounds.
// Fires one mutation event per cell on success.
func (g *Grid) ClearArea(pos, dims model.Position) bool {
	if dims.X <= 0 || dims.Y <= 0 {
		return false
	}
	for dy := 0; dy < dims.Y; dy++ {
		for dx := 0; dx < dims.X; dx++ {
			if g.Get(pos.X+dx, pos.Y+dy) == nil {
				return false
			}
		}
	}
	for dy := 0; dy < dims.Y; dy++ {
		for dx := 0; dx < dims.X; dx++ {
			c := g.Get(pos.X+dx, pos.Y+dy)
			c.Type = CellEmpty
			c.Walkable = true
			c.IsOccupied = false
			c.OccupantID = ""
			g.notify(c.Position)
		}
	}
	return true
}

// AdjacentCells returns the 4-directional (N/E/S/W) neighbors of pos,
// clipped to bounds. Edge and corner cells return fewer than 4.
// Order is fixed: north, east, south, west.
func (g *Grid) AdjacentCells(pos model.Position) []*Cell {
	offsets := [4][2]int{
		{0, -1}, // north
		{1, 0},  // east
		{0, 1},  // south
		{-1, 0}, // west
	}
	cells := make([]*Cell, 0, 4)
	for _, o := range offsets {
		if c := g.Get(pos.X+o[0], pos.Y+o[1]); c != nil {
			cells = append(cells, c)
		}
	}
	return cells
}
