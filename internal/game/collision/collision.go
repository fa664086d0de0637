// Package collision tracks transient dynamic obstacles (crowds, moving
// entities) separately from grid occupancy. Obstacles raise traversal cost
// locally; they never block a cell outright, so paths can still be found
// through crowded areas when no alternative exists.
package collision

import (
	"github.com/google/uuid"

	"github.com/udisondev/gridnav/internal/model"
)

// densitySaturation is the obstacle count at which DensityNear reports 1.0.
const densitySaturation = 4

// Obstacle is a registered dynamic obstacle with a rectangular footprint.
type Obstacle struct {
	ID       string
	Position model.Position
	Width    int
	Height   int
}

// System is the dynamic-obstacle registry for one map instance.
// Callers add and remove obstacles each tick; the system holds no lifetime
// ownership beyond what callers register. Not internally synchronized.
type System struct {
	obstacles map[string]Obstacle
}

// NewSystem creates an empty obstacle registry.
func NewSystem() *System {
	return &System{obstacles: make(map[string]Obstacle)}
}

// AddObject registers an obstacle at pos with the given footprint.
// If id is empty a uuid is generated. Returns the effective id.
// Re-registering an existing id replaces its position and footprint.
func (s *System) AddObject(pos model.Position, width, height int, id string) string {
	if id == "" {
		id = uuid.NewString()
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.obstacles[id] = Obstacle{ID: id, Position: pos, Width: width, Height: height}
	return id
}

// RemoveObject deletes the obstacle with the given id.
// Returns false if no such obstacle is registered.
func (s *System) RemoveObject(id string) bool {
	if _, ok := s.obstacles[id]; !ok {
		return false
	}
	delete(s.obstacles, id)
	return true
}

// Get returns the registered obstacle with the given id.
func (s *System) Get(id string) (Obstacle, bool) {
	o, ok := s.obstacles[id]
	return o, ok
}

// Count returns the number of registered obstacles.
func (s *System) Count() int {
	return len(s.obstacles)
}

// ObstacleAt reports whether any registered obstacle's footprint covers pos.
func (s *System) ObstacleAt(pos model.Position) bool {
	for _, o := range s.obstacles {
		if o.covers(pos) {
			return true
		}
	}
	return false
}

// DensityNear returns a normalized congestion score in [0, 1] around pos.
// Each obstacle whose footprint comes within Chebyshev radius of pos
// contributes one count; the score saturates at densitySaturation
// obstacles. Used as a soft cost multiplier, never a hard block.
func (s *System) DensityNear(pos model.Position, radius int) float64 {
	if radius < 0 {
		radius = 0
	}
	count := 0
	for _, o := range s.obstacles {
		if o.withinRadius(pos, radius) {
			count++
			if count >= densitySaturation {
				return 1.0
			}
		}
	}
	return float64(count) / float64(densitySaturation)
}

func (o Obstacle) covers(pos model.Position) bool {
	return pos.X >= o.Position.X && pos.X < o.Position.X+o.Width &&
		pos.Y >= o.Position.Y && pos.Y < o.Position.Y+o.Height
}

// withinRadius reports whether the footprint rectangle comes within
// Chebyshev distance radius of pos.
func (o Obstacle) withinRadius(pos model.Position, radius int) bool {
	nearX := clampInt(pos.X, o.Position.X, o.Position.X+o.Width-1)
	nearY := clampInt(pos.Y, o.Position.Y, o.Position.Y+o.Height-1)
	return model.Position{X: nearX, Y: nearY}.ChebyshevDistance(pos) <= radius
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
