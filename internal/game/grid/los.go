package grid

import "github.com/udisondev/gridnav/internal/model"

// LineOfSight checks sight between two cells.
// Traces a Bresenham line and reports false if any intermediate cell is
// non-walkable. The endpoints themselves do not block: an agent standing
// against a wall can still see the wall cell.
func (g *Grid) LineOfSight(from, to model.Position) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}

	it := NewLineIterator(from, to)
	it.Next() // skip start point

	for it.Next() {
		pos := it.Pos()
		if pos == to {
			break
		}
		c := g.GetAt(pos)
		if c == nil || !c.Walkable {
			return false
		}
	}
	return true
}
