package movement

import "github.com/udisondev/gridnav/internal/model"

// AgentState is the per-agent movement state for the current turn.
// Value type: every successful move returns a new state, the old one is
// never mutated (immutable pattern).
type AgentState struct {
	Position                model.Position
	Facing                  model.Direction
	MovementPointsRemaining float64
	CurrentPath             []model.Position
	IsMoving                bool
}

// NewAgentState creates the state for an agent entering the map at pos
// with a full movement-point budget.
func NewAgentState(pos model.Position, rules Rules) AgentState {
	return AgentState{
		Position:                pos,
		MovementPointsRemaining: rules.BaseMovementPoints,
	}
}

// ResetMovementPoints returns a copy with the budget restored to base and
// movement stopped. Called by the turn system at the start of each round.
func (s AgentState) ResetMovementPoints(rules Rules) AgentState {
	s.MovementPointsRemaining = rules.BaseMovementPoints
	s.CurrentPath = nil
	s.IsMoving = false
	return s
}
