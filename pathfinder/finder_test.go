package pathfinder

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/terrain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinder_SearchRunsEndToEnd(t *testing.T) {
	f := New(nil, DefaultPoolWidth, prometheus.NewRegistry())

	require.NoError(t, f.LoadTerrain([]terrain.Entry{{Room: coord.RoomLocation{Xx: 1, Yy: 1}}}))

	origin := coord.WorldPosition{Xx: 1*coord.RoomSize + 20, Yy: 1*coord.RoomSize + 20}
	goal := coord.WorldPosition{Xx: 1*coord.RoomSize + 25, Yy: 1*coord.RoomSize + 25}

	outcome, err := f.Search(context.Background(), origin, []search.Goal{{Pos: goal, Range: 0}})
	require.NoError(t, err)
	assert.Equal(t, search.StatusOK, outcome.Status)
	assert.NotEqual(t, [16]byte{}, outcome.ID)
	assert.Len(t, outcome.Path, 5)
}

func TestPool_AcquireReleaseReusesEngine(t *testing.T) {
	registry := terrain.NewRegistry()
	require.NoError(t, registry.LoadTerrain(nil))
	pool := NewPool(registry, nil, 1)

	e1, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	pool.Release(e1)

	e2, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, e1, e2, "the sole freed engine must be reused before allocating a new one")
}

func TestPool_AcquireBlocksUntilReleaseOrCancel(t *testing.T) {
	registry := terrain.NewRegistry()
	require.NoError(t, registry.LoadTerrain(nil))
	pool := NewPool(registry, nil, 1)

	_, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pool.Acquire(ctx)
	assert.Error(t, err, "an already-cancelled context must not block forever on a full pool")
}
