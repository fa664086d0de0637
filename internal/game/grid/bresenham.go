package grid

import "github.com/udisondev/gridnav/internal/model"

// LineIterator implements the 2D Bresenham line algorithm.
// Steps through grid cells along a line from start to end, start and end
// inclusive. Used for line-of-sight traces and direct-move interpolation.
type LineIterator struct {
	currentX, currentY int
	targetX, targetY   int
	deltaX, deltaY     int
	stepX, stepY       int
	errorAcc           int
	xDominant          bool
	started            bool
}

// NewLineIterator creates a line iterator from start to end.
func NewLineIterator(start, end model.Position) *LineIterator {
	it := &LineIterator{
		currentX: start.X, currentY: start.Y,
		targetX: end.X, targetY: end.Y,
	}

	it.deltaX = absInt(end.X - start.X)
	it.deltaY = absInt(end.Y - start.Y)

	if start.X < end.X {
		it.stepX = 1
	} else {
		it.stepX = -1
	}
	if start.Y < end.Y {
		it.stepY = 1
	} else {
		it.stepY = -1
	}

	it.xDominant = it.deltaX >= it.deltaY
	if it.xDominant {
		it.errorAcc = it.deltaX / 2
	} else {
		it.errorAcc = it.deltaY / 2
	}

	return it
}

// Next advances the iterator to the next cell.
// Returns false once the target has been yielded.
func (it *LineIterator) Next() bool {
	if !it.started {
		it.started = true
		return true // yield start point
	}

	if it.currentX == it.targetX && it.currentY == it.targetY {
		return false
	}

	if it.xDominant {
		it.currentX += it.stepX
		it.errorAcc += it.deltaY
		if it.errorAcc >= it.deltaX {
			it.currentY += it.stepY
			it.errorAcc -= it.deltaX
		}
	} else {
		it.currentY += it.stepY
		it.errorAcc += it.deltaX
		if it.errorAcc >= it.deltaY {
			it.currentX += it.stepX
			it.errorAcc -= it.deltaY
		}
	}

	return true
}

// Pos returns the current cell position.
func (it *LineIterator) Pos() model.Position {
	return model.Position{X: it.currentX, Y: it.currentY}
}

// LinePositions collects every cell on the line from start to end,
// endpoints included.
func LinePositions(start, end model.Position) []model.Position {
	out := make([]model.Position, 0, absInt(end.X-start.X)+absInt(end.Y-start.Y)+1)
	it := NewLineIterator(start, end)
	for it.Next() {
		out = append(out, it.Pos())
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
