package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gridnav/internal/game/movement"
	"github.com/udisondev/gridnav/internal/game/nav"
)

// MapRules holds the game-balance configuration for one map: the movement
// rule set plus pathfinder search limits.
type MapRules struct {
	// Movement
	BaseMovementPoints float64 `yaml:"base_movement_points"`
	DiagonalMovement   bool    `yaml:"diagonal_movement"`
	MaxPathLength      int     `yaml:"max_path_length"`

	// Pathfinding
	MaxSearchExpansions int `yaml:"max_search_expansions"`
	CollisionRadius     int `yaml:"collision_radius"`

	// Terrain
	TerrainEffects []TerrainEffectEntry `yaml:"terrain_effects"`
}

// TerrainEffectEntry is one terrain-effect row in the config file.
type TerrainEffectEntry struct {
	ID                     string  `yaml:"id"`
	MovementCostMultiplier float64 `yaml:"movement_cost_multiplier"`
	IsObstacle             bool    `yaml:"is_obstacle"`
}

// DefaultMapRules returns MapRules with sensible defaults.
func DefaultMapRules() MapRules {
	return MapRules{
		BaseMovementPoints:  30,
		DiagonalMovement:    false,
		MaxPathLength:       25,
		MaxSearchExpansions: nav.DefaultMaxExpansions,
		CollisionRadius:     nav.DefaultCollisionRadius,
		TerrainEffects: []TerrainEffectEntry{
			{ID: "road", MovementCostMultiplier: 0.5},
			{ID: "building", MovementCostMultiplier: 1.0},
		},
	}
}

// LoadMapRules loads map rules from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadMapRules(path string) (MapRules, error) {
	cfg := DefaultMapRules()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// MovementRules converts the config into the movement package's rule set.
func (m MapRules) MovementRules() movement.Rules {
	effects := make(map[string]movement.TerrainEffect, len(m.TerrainEffects))
	for _, e := range m.TerrainEffects {
		effects[e.ID] = movement.TerrainEffect{
			ID:                     e.ID,
			MovementCostMultiplier: e.MovementCostMultiplier,
			IsObstacle:             e.IsObstacle,
		}
	}
	return movement.Rules{
		BaseMovementPoints: m.BaseMovementPoints,
		DiagonalMovement:   m.DiagonalMovement,
		MaxPathLength:      m.MaxPathLength,
		TerrainEffects:     effects,
	}
}
