package model

import "testing"

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"same cell", NewPosition(3, 3), NewPosition(3, 3), 0},
		{"axis aligned", NewPosition(0, 0), NewPosition(5, 0), 5},
		{"diagonal", NewPosition(0, 0), NewPosition(3, 4), 7},
		{"negative coords", NewPosition(-2, -2), NewPosition(1, 1), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ManhattanDistance(tt.b); got != tt.want {
				t.Errorf("ManhattanDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.ManhattanDistance(tt.a); got != tt.want {
				t.Errorf("distance must be symmetric: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChebyshevDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"same cell", NewPosition(0, 0), NewPosition(0, 0), 0},
		{"diagonal", NewPosition(0, 0), NewPosition(3, 3), 3},
		{"dominant axis", NewPosition(0, 0), NewPosition(5, 2), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ChebyshevDistance(tt.b); got != tt.want {
				t.Errorf("ChebyshevDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDirectionTo(t *testing.T) {
	from := NewPosition(5, 5)
	tests := []struct {
		name string
		to   Position
		want Direction
	}{
		{"north", NewPosition(5, 2), DirNorth},
		{"northeast", NewPosition(8, 2), DirNorthEast},
		{"east", NewPosition(9, 5), DirEast},
		{"southeast", NewPosition(6, 6), DirSouthEast},
		{"south", NewPosition(5, 9), DirSouth},
		{"southwest", NewPosition(4, 6), DirSouthWest},
		{"west", NewPosition(0, 5), DirWest},
		{"northwest", NewPosition(4, 4), DirNorthWest},
		{"same cell", NewPosition(5, 5), DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionTo(from, tt.to); got != tt.want {
				t.Errorf("DirectionTo(%v, %v) = %v, want %v", from, tt.to, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if DirNorth.String() != "north" {
		t.Errorf("DirNorth.String() = %q", DirNorth.String())
	}
	if DirNone.String() != "none" {
		t.Errorf("DirNone.String() = %q", DirNone.String())
	}
}
