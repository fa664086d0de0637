package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gridnav/internal/model"
)

func TestLineIteratorStraight(t *testing.T) {
	cells := LinePositions(model.NewPosition(0, 0), model.NewPosition(3, 0))
	require.Len(t, cells, 4)
	assert.Equal(t, model.NewPosition(0, 0), cells[0])
	assert.Equal(t, model.NewPosition(3, 0), cells[3])
}

func TestLineIteratorDiagonal(t *testing.T) {
	cells := LinePositions(model.NewPosition(0, 0), model.NewPosition(3, 3))
	require.Len(t, cells, 4)
	for i, pos := range cells {
		assert.Equal(t, model.NewPosition(i, i), pos)
	}
}

func TestLineIteratorSinglePoint(t *testing.T) {
	cells := LinePositions(model.NewPosition(2, 2), model.NewPosition(2, 2))
	require.Len(t, cells, 1)
	assert.Equal(t, model.NewPosition(2, 2), cells[0])
}

func TestLineIteratorNegativeDirection(t *testing.T) {
	cells := LinePositions(model.NewPosition(3, 3), model.NewPosition(0, 0))
	require.Len(t, cells, 4)
	assert.Equal(t, model.NewPosition(3, 3), cells[0])
	assert.Equal(t, model.NewPosition(0, 0), cells[3])
}

func TestLineIteratorEndpointsAlwaysIncluded(t *testing.T) {
	tests := []struct {
		name       string
		start, end model.Position
	}{
		{"shallow slope", model.NewPosition(0, 0), model.NewPosition(7, 2)},
		{"steep slope", model.NewPosition(0, 0), model.NewPosition(2, 7)},
		{"mixed signs", model.NewPosition(5, 1), model.NewPosition(-2, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := LinePositions(tt.start, tt.end)
			require.NotEmpty(t, cells)
			assert.Equal(t, tt.start, cells[0])
			assert.Equal(t, tt.end, cells[len(cells)-1])
		})
	}
}

func TestLineOfSightClear(t *testing.T) {
	g := New(10, 10)
	assert.True(t, g.LineOfSight(model.NewPosition(0, 0), model.NewPosition(9, 9)))
}

func TestLineOfSightBlockedByWall(t *testing.T) {
	g := New(10, 10)
	for y := 0; y < 10; y++ {
		g.SetCellType(model.NewPosition(5, y), CellWall)
	}
	assert.False(t, g.LineOfSight(model.NewPosition(0, 5), model.NewPosition(9, 5)))
}

func TestLineOfSightEndpointDoesNotBlock(t *testing.T) {
	g := New(10, 10)
	g.SetCellType(model.NewPosition(3, 0), CellWall)
	// Can see the wall cell itself from the adjacent cell.
	assert.True(t, g.LineOfSight(model.NewPosition(2, 0), model.NewPosition(3, 0)))
}

func TestLineOfSightOutOfBounds(t *testing.T) {
	g := New(5, 5)
	assert.False(t, g.LineOfSight(model.NewPosition(0, 0), model.NewPosition(10, 0)))
}
