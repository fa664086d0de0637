package integration

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gridnav/internal/config"
	"github.com/udisondev/gridnav/internal/game/grid"
	"github.com/udisondev/gridnav/internal/game/nav"
)

// TestIndependentMapsInParallel shards searches across independent map
// instances: with no shared state, no locking is needed and every shard
// must produce the same route for the same geometry.
func TestIndependentMapsInParallel(t *testing.T) {
	const shards = 8

	reference := buildMaze(t)
	want := reference.finder.FindPath(pos(0, 0), pos(14, 14), nav.CategoryDefault)
	require.NotEmpty(t, want)

	var eg errgroup.Group
	for i := 0; i < shards; i++ {
		eg.Go(func() error {
			m := buildMaze(t)
			got := m.finder.FindPath(pos(0, 0), pos(14, 14), nav.CategoryDefault)
			assert.Equal(t, want, got)
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

// TestSerializedSharedMap exercises the documented contract for
// multi-threaded hosts: one lock per map instance around every query and
// mutation of a shared grid/cache pair.
func TestSerializedSharedMap(t *testing.T) {
	m := buildMaze(t)

	var mu sync.Mutex // the per-map lock a host would hold
	var eg errgroup.Group

	for i := 0; i < 16; i++ {
		gy := 1 + (i % 7)
		eg.Go(func() error {
			mu.Lock()
			defer mu.Unlock()

			prev := m.grid.GetAt(pos(1, gy)).Type
			m.grid.SetCellType(pos(1, gy), grid.CellWall)

			route := m.finder.FindPath(pos(0, 0), pos(14, 14), nav.CategoryDefault)
			for _, c := range route {
				if !m.grid.GetAt(c).Walkable {
					t.Errorf("route crossed wall at %v", c)
				}
			}

			m.grid.SetCellType(pos(1, gy), prev)
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func buildMaze(t *testing.T) *tacticalMap {
	t.Helper()
	m := newTacticalMap(t, 15, 15, config.DefaultMapRules())
	for y := 2; y < 15; y += 4 {
		for x := 0; x < 12; x++ {
			m.grid.SetCellType(pos(x, y), grid.CellWall)
		}
	}
	return m
}
