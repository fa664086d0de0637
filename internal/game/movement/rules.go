package movement

// TerrainEffect adjusts movement cost for one terrain id, or marks it as
// an outright obstacle. Supplied by game-balance configuration.
type TerrainEffect struct {
	ID                     string
	MovementCostMultiplier float64
	IsObstacle             bool
}

// Rules is the per-map movement configuration.
type Rules struct {
	// BaseMovementPoints is the per-turn budget agents reset to.
	BaseMovementPoints float64
	// DiagonalMovement selects the interpolation used for direct moves:
	// 8-connected Bresenham when true, 4-connected stepping when false.
	DiagonalMovement bool
	// MaxPathLength rejects direct moves longer than this many cells.
	MaxPathLength int
	// TerrainEffects maps terrain ids (CellType names) to their effects.
	// Terrain without an entry costs 1.0 per step.
	TerrainEffects map[string]TerrainEffect
}

// DefaultRules returns rules matching a typical tactical encounter:
// 30 movement points, no diagonals, paths capped at 25 cells.
func DefaultRules() Rules {
	return Rules{
		BaseMovementPoints: 30,
		DiagonalMovement:   false,
		MaxPathLength:      25,
		TerrainEffects:     map[string]TerrainEffect{},
	}
}

// effectFor returns the terrain effect for id, defaulting to a neutral
// multiplier of 1.0.
func (r Rules) effectFor(id string) TerrainEffect {
	if e, ok := r.TerrainEffects[id]; ok {
		return e
	}
	return TerrainEffect{ID: id, MovementCostMultiplier: 1.0}
}
