// Package movement validates per-turn agent moves against a movement-point
// budget, grid bounds, obstacles and terrain effects.
//
// This is the direct step/line validation layer: moves are interpolated
// along a straight line rather than routed with A*. Strategic routing
// around obstacles is the nav package's job.
package movement

import (
	"github.com/udisondev/gridnav/internal/game/grid"
	"github.com/udisondev/gridnav/internal/model"
)

// Rejection messages. Failures are data, never panics: callers (AI, UI)
// branch on Result.Error without exception machinery.
const (
	ErrOutOfBounds        = "Destination is out of bounds"
	ErrPathTooLong        = "Path exceeds maximum length"
	ErrPathBlocked        = "Path blocked by obstacle"
	ErrInsufficientPoints = "Insufficient movement points"
)

// Options tweaks a single validation call.
type Options struct {
	// IgnoreObstacles skips the obstacle check (flight, spectral movement).
	IgnoreObstacles bool
}

// Result is the outcome of one movement validation.
type Result struct {
	Success     bool
	NewPosition model.Position
	Cost        float64
	Path        []model.Position
	Error       string
}

func failure(msg string) Result {
	return Result{Error: msg}
}

// Validator decides whether moves are legal on one grid under one rule set.
type Validator struct {
	grid  *grid.Grid
	rules Rules
}

// NewValidator creates a validator for g under rules.
func NewValidator(g *grid.Grid, rules Rules) *Validator {
	return &Validator{grid: g, rules: rules}
}

// Rules returns the rule set the validator was built with.
func (v *Validator) Rules() Rules { return v.rules }

// ValidateMovement checks a direct move from from to to: bounds, interpolated
// path, length cap, obstacles (unless opts.IgnoreObstacles) and terrain
// cost. On success the result carries the path and its total cost.
func (v *Validator) ValidateMovement(from, to model.Position, opts Options) Result {
	if !v.grid.InBounds(to) {
		return failure(ErrOutOfBounds)
	}

	path := v.directPath(from, to)

	if v.rules.MaxPathLength > 0 && len(path) > v.rules.MaxPathLength {
		return failure(ErrPathTooLong)
	}

	if !opts.IgnoreObstacles {
		// path[0] is the agent's own cell; it does not block.
		for _, pos := range path[1:] {
			if v.isObstacle(pos) {
				return failure(ErrPathBlocked)
			}
		}
	}

	cost := 0.0
	for _, pos := range path[1:] {
		cost += v.stepCost(pos)
	}

	return Result{
		Success:     true,
		NewPosition: to,
		Cost:        cost,
		Path:        path,
	}
}

// MovePlayer validates a move and gates it on the agent's remaining
// budget. State is never mutated here; apply the result via
// UpdatePlayerState.
func (v *Validator) MovePlayer(state AgentState, target model.Position, opts Options) Result {
	res := v.ValidateMovement(state.Position, target, opts)
	if !res.Success {
		return res
	}
	if state.MovementPointsRemaining < res.Cost {
		return failure(ErrInsufficientPoints)
	}
	return res
}

// UpdatePlayerState re-validates the move and, on success, returns a new
// state with the position, facing, spent points and path applied. On any
// failure the original state is returned unchanged; the budget can never
// go negative because MovePlayer gates on it.
func (v *Validator) UpdatePlayerState(state AgentState, target model.Position) AgentState {
	res := v.MovePlayer(state, target, Options{})
	if !res.Success {
		return state
	}

	next := state
	next.Facing = model.DirectionTo(state.Position, target)
	next.Position = target
	next.MovementPointsRemaining = state.MovementPointsRemaining - res.Cost
	next.CurrentPath = res.Path
	next.IsMoving = true
	return next
}

// AvailableMoves enumerates the adjacent cells the agent could legally
// move to with the given budget. An agent that cannot afford any move
// gets an empty list, not an error.
func (v *Validator) AvailableMoves(pos model.Position, movementPoints float64) []model.Position {
	moves := make([]model.Position, 0, 4)
	for _, c := range v.grid.AdjacentCells(pos) {
		if v.isObstacle(c.Position) {
			continue
		}
		res := v.ValidateMovement(pos, c.Position, Options{})
		if !res.Success || res.Cost > movementPoints {
			continue
		}
		moves = append(moves, c.Position)
	}
	return moves
}

// IsValidPosition reports whether pos is in bounds and not an obstacle.
func (v *Validator) IsValidPosition(pos model.Position) bool {
	return v.grid.InBounds(pos) && !v.isObstacle(pos)
}

// isObstacle treats out-of-bounds, non-walkable and occupied cells as
// obstacles, plus any terrain the rule table marks IsObstacle.
func (v *Validator) isObstacle(pos model.Position) bool {
	c := v.grid.GetAt(pos)
	if c == nil || !c.Walkable || c.IsOccupied {
		return true
	}
	return v.rules.effectFor(c.Type.String()).IsObstacle
}

// stepCost prices one step onto pos from the terrain-effect table.
// Cells without an effect, or out of bounds during obstacle-ignoring
// moves, cost 1.0.
func (v *Validator) stepCost(pos model.Position) float64 {
	c := v.grid.GetAt(pos)
	if c == nil {
		return 1.0
	}
	return v.rules.effectFor(c.Type.String()).MovementCostMultiplier
}

// directPath interpolates the straight path from from to to, endpoints
// included: 8-connected Bresenham when diagonals are allowed, otherwise a
// 4-connected midpoint walk of exactly |dx|+|dy| steps.
func (v *Validator) directPath(from, to model.Position) []model.Position {
	if v.rules.DiagonalMovement {
		return grid.LinePositions(from, to)
	}
	return orthogonalLine(from, to)
}

// orthogonalLine builds a 4-connected line: one axis advances per step,
// chosen by midpoint comparison so the walk hugs the true segment.
func orthogonalLine(from, to model.Position) []model.Position {
	dx := absInt(to.X - from.X)
	dy := absInt(to.Y - from.Y)
	sx := signInt(to.X - from.X)
	sy := signInt(to.Y - from.Y)

	path := make([]model.Position, 0, dx+dy+1)
	path = append(path, from)

	x, y := from.X, from.Y
	ix, iy := 0, 0
	for ix < dx || iy < dy {
		if iy >= dy || (ix < dx && (2*ix+1)*dy < (2*iy+1)*dx) {
			x += sx
			ix++
		} else {
			y += sy
			iy++
		}
		path = append(path, model.Position{X: x, Y: y})
	}
	return path
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func signInt(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
