package nav

import "github.com/udisondev/gridnav/internal/game/grid"

// Category biases edge costs toward or away from certain terrain.
// The set is closed: cost rules live in a fixed modifier table rather than
// dynamic dispatch.
type Category uint8

const (
	// CategoryDefault applies no terrain bias.
	CategoryDefault Category = iota
	// CategorySocial prefers roads (cost ×0.5 on road cells) — used for
	// town errands and social encounters.
	CategorySocial
	// CategoryDungeon avoids roads (cost ×3.0 on road cells) — used for
	// stealthy or hostile routing.
	CategoryDungeon
)

// String returns the category name for logs.
func (c Category) String() string {
	switch c {
	case CategorySocial:
		return "social"
	case CategoryDungeon:
		return "dungeon"
	}
	return "default"
}

// costModifier is a pure per-cell cost multiplier for one category.
type costModifier func(t grid.CellType) float64

var categoryModifiers = map[Category]costModifier{
	CategorySocial: func(t grid.CellType) float64 {
		if t == grid.CellRoad {
			return 0.5
		}
		return 1.0
	},
	CategoryDungeon: func(t grid.CellType) float64 {
		if t == grid.CellRoad {
			return 3.0
		}
		return 1.0
	},
}

// modifierFor returns the cost modifier for c.
// Unrecognized categories apply no modifier.
func modifierFor(c Category) costModifier {
	if m, ok := categoryModifiers[c]; ok {
		return m
	}
	return func(grid.CellType) float64 { return 1.0 }
}
