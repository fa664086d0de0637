// Package nav computes walkable routes over a grid using A*, with
// category-aware cost shaping, collision-density penalties and an
// epoch-invalidated result cache.
package nav

import (
	"container/heap"
	"log/slog"
	"slices"

	"github.com/udisondev/gridnav/internal/game/collision"
	"github.com/udisondev/gridnav/internal/game/grid"
	"github.com/udisondev/gridnav/internal/model"
)

// Search limits.
const (
	// DefaultMaxExpansions bounds worst-case search cost deterministically
	// (no wall-clock timeout).
	DefaultMaxExpansions = 2000

	// DefaultCollisionRadius is the neighborhood, in cells, sampled for the
	// congestion cost multiplier.
	DefaultCollisionRadius = 1
)

// Pathfinder runs A* over one grid plus collision-derived costs.
// Pure request/response, no retained search state between calls: the node
// arena is reset wholesale at the start of every search. Not internally
// synchronized; callers serialize access per grid/cache pair.
type Pathfinder struct {
	grid            *grid.Grid
	obstacles       *collision.System
	cache           *Cache
	maxExpansions   int
	collisionRadius int
	arena           nodeArena
}

// New creates a pathfinder over g with default search limits.
// Grid mutations invalidate the path cache automatically.
func New(g *grid.Grid, obstacles *collision.System) *Pathfinder {
	return NewWithLimits(g, obstacles, DefaultMaxExpansions, DefaultCollisionRadius)
}

// NewWithLimits creates a pathfinder with explicit search limits.
func NewWithLimits(g *grid.Grid, obstacles *collision.System, maxExpansions, collisionRadius int) *Pathfinder {
	if maxExpansions <= 0 {
		maxExpansions = DefaultMaxExpansions
	}
	if collisionRadius < 0 {
		collisionRadius = DefaultCollisionRadius
	}
	p := &Pathfinder{
		grid:            g,
		obstacles:       obstacles,
		cache:           NewCache(),
		maxExpansions:   maxExpansions,
		collisionRadius: collisionRadius,
	}
	g.OnMutation(func(model.Position) {
		p.cache.Invalidate()
	})
	return p
}

// Cache exposes the path cache for stats inspection.
func (p *Pathfinder) Cache() *Cache { return p.cache }

// FindPath computes a walkable route from start to end, both endpoints
// included. Checks the cache first; on miss runs A* and stores the result,
// failed searches included, so repeated unreachable queries short-circuit.
// Out-of-bounds endpoints and exhausted searches yield an empty path — a
// normal outcome, never an error.
func (p *Pathfinder) FindPath(start, end model.Position, cat Category) []model.Position {
	if !p.grid.InBounds(start) || !p.grid.InBounds(end) {
		return nil
	}

	req := Request{Start: start, End: end, Category: cat}
	if path, ok := p.cache.Lookup(req); ok {
		return slices.Clone(path)
	}

	path := p.astar(start, end, cat)
	p.cache.Store(req, path)
	if path == nil {
		slog.Debug("no path found",
			"start", start,
			"end", end,
			"category", cat)
	}
	return slices.Clone(path)
}

// IsPathPossible reports whether any route exists from start to end.
func (p *Pathfinder) IsPathPossible(start, end model.Position) bool {
	return len(p.FindPath(start, end, CategoryDefault)) > 0
}

// UpdatePathSegment re-runs A* between path[startIdx] and path[endIdx] and
// splices the result into a copy of path. If the indices are degenerate or
// no alternate segment is found, the original path is returned unchanged —
// this never produces a worse or malformed path. The first valid alternate
// is accepted; no attempt is made to prove it shorter.
func (p *Pathfinder) UpdatePathSegment(path []model.Position, startIdx, endIdx int) []model.Position {
	if startIdx < 0 || endIdx >= len(path) || startIdx >= endIdx {
		return path
	}

	seg := p.FindPath(path[startIdx], path[endIdx], CategoryDefault)
	if len(seg) == 0 {
		return path
	}

	out := make([]model.Position, 0, startIdx+len(seg)+len(path)-endIdx-1)
	out = append(out, path[:startIdx]...)
	out = append(out, seg...)
	out = append(out, path[endIdx+1:]...)
	return out
}

// InvalidateCache forces path-cache invalidation. For callers that mutate
// the grid outside its own setters (bulk map edits). The mutated position
// is accepted for interface stability; the global-epoch policy discards
// every entry regardless of which cell changed.
func (p *Pathfinder) InvalidateCache(pos model.Position) {
	_ = pos
	p.cache.Invalidate()
}

// stepCost prices a move onto cell c for the given category modifier.
// Base cost 1.0, scaled by the category's terrain bias, then by local
// congestion: crowded-but-passable cells are deprioritized, never excluded.
func (p *Pathfinder) stepCost(c *grid.Cell, mod costModifier) float64 {
	cost := 1.0 * mod(c.Type)
	if p.obstacles != nil {
		cost *= 1.0 + p.obstacles.DensityNear(c.Position, p.collisionRadius)
	}
	return cost
}

// astar runs the search. Returns nil when no path exists or the expansion
// budget is exhausted.
func (p *Pathfinder) astar(start, end model.Position, cat Category) []model.Position {
	if start == end {
		return []model.Position{start}
	}

	// A goal that can never enter the open set is unreachable; fail fast.
	if goal := p.grid.GetAt(end); goal == nil || !goal.Walkable || goal.IsOccupied {
		return nil
	}

	mod := modifierFor(cat)

	p.arena.reset()
	startIdx := p.arena.alloc(start, noParent, 0, heuristic(start, end))

	open := &openHeap{arena: &p.arena}
	heap.Init(open)
	heap.Push(open, startIdx)

	closed := make(map[model.Position]struct{}, 64)

	for i := 0; i < p.maxExpansions; i++ {
		if open.Len() == 0 {
			return nil
		}

		curIdx := heap.Pop(open).(int32)
		// Copy out: alloc below may grow the arena and move nodes.
		curPos := p.arena.at(curIdx).pos
		curG := p.arena.at(curIdx).gCost

		if curPos == end {
			return p.reconstruct(curIdx)
		}

		if _, seen := closed[curPos]; seen {
			continue
		}
		closed[curPos] = struct{}{}

		for _, c := range p.grid.AdjacentCells(curPos) {
			if !c.Walkable || c.IsOccupied {
				continue // hard exclusion, independent of cost
			}
			if _, seen := closed[c.Position]; seen {
				continue
			}

			g := curG + p.stepCost(c, mod)
			idx := p.arena.alloc(c.Position, curIdx, g, heuristic(c.Position, end))
			heap.Push(open, idx)
		}
	}

	slog.Debug("search expansion budget exhausted",
		"start", start,
		"end", end,
		"maxExpansions", p.maxExpansions)
	return nil
}

// reconstruct walks parent indices back to the root and reverses.
func (p *Pathfinder) reconstruct(idx int32) []model.Position {
	path := make([]model.Position, 0, 32)
	for i := idx; i != noParent; i = p.arena.at(i).parent {
		path = append(path, p.arena.at(i).pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the Manhattan distance, admissible for 4-directional moves.
func heuristic(a, b model.Position) float64 {
	return float64(a.ManhattanDistance(b))
}
