package model

// Direction is an 8-way facing on the grid.
type Direction uint8

const (
	DirNone Direction = iota
	DirNorth
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
)

// DirectionTo derives a facing from the sign of the delta between two
// positions. North is -Y, matching screen-space grid orientation.
func DirectionTo(from, to Position) Direction {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)

	switch {
	case dx == 0 && dy < 0:
		return DirNorth
	case dx > 0 && dy < 0:
		return DirNorthEast
	case dx > 0 && dy == 0:
		return DirEast
	case dx > 0 && dy > 0:
		return DirSouthEast
	case dx == 0 && dy > 0:
		return DirSouth
	case dx < 0 && dy > 0:
		return DirSouthWest
	case dx < 0 && dy == 0:
		return DirWest
	case dx < 0 && dy < 0:
		return DirNorthWest
	}
	return DirNone
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirNorthEast:
		return "northeast"
	case DirEast:
		return "east"
	case DirSouthEast:
		return "southeast"
	case DirSouth:
		return "south"
	case DirSouthWest:
		return "southwest"
	case DirWest:
		return "west"
	case DirNorthWest:
		return "northwest"
	}
	return "none"
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
