package search

import (
	"testing"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/roomtable"
	"github.com/katalvlaran/gridpath/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRoom is a single open room, centered well away from every room edge
// so the room-border crossing policy and border-tile JPS rules never
// activate; tests that want to exercise them build their own bits.
const testRoomXx, testRoomYy = 10, 10

func pos(x, y uint32) coord.WorldPosition {
	return coord.WorldPosition{Xx: testRoomXx*coord.RoomSize + x, Yy: testRoomYy*coord.RoomSize + y}
}

func setTile(bits *[terrain.BytesPerRoom]byte, x, y uint32, code terrain.TileCode) {
	index := x*50 + y
	shift := uint(index%4) * 2
	bits[index/4] &^= 0x3 << shift
	bits[index/4] |= byte(code&0x3) << shift
}

func newTestEngine(t *testing.T, bits [terrain.BytesPerRoom]byte) *Engine {
	t.Helper()
	reg := terrain.NewRegistry()
	require.NoError(t, reg.LoadTerrain([]terrain.Entry{{
		Room: coord.RoomLocation{Xx: testRoomXx, Yy: testRoomYy},
		Bits: bits,
	}}))

	return NewEngine(reg, nil)
}

func TestSearch_OriginAlreadySatisfiesGoal(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	e := newTestEngine(t, bits)

	origin := pos(25, 25)
	result, err := e.Search(origin, []Goal{{Pos: origin, Range: 0}})
	require.NoError(t, err)
	assert.Equal(t, StatusUndefined, result.Status)
	assert.Empty(t, result.Path)
}

func TestSearch_TrivialOpenPlain(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	e := newTestEngine(t, bits)

	origin := pos(20, 20)
	goal := pos(25, 25)
	result, err := e.Search(origin, []Goal{{Pos: goal, Range: 0}})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, result.Status)
	assert.False(t, result.Incomplete)
	assert.Len(t, result.Path, 5)
	assert.Equal(t, uint32(5), result.Cost)
	assert.Equal(t, goal, result.Path[0])
}

func TestSearch_ObstacleForcesDetourAroundWall(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	for y := uint32(15); y <= 30; y++ {
		setTile(&bits, 25, y, terrain.Wall)
	}
	e := newTestEngine(t, bits)

	origin := pos(10, 22)
	goal := pos(40, 22)
	result, err := e.Search(origin, []Goal{{Pos: goal, Range: 0}})
	require.NoError(t, err)
	assert.Equal(t, StatusOK, result.Status)
	assert.False(t, result.Incomplete)
	// The wall ends at y=15 and y=30, so a 30-step detour still advances one
	// column per step and costs exactly the Chebyshev distance.
	assert.Equal(t, origin.RangeTo(goal), result.Cost)
	for _, p := range result.Path {
		assert.NotEqual(t, terrain.Wall, wallCodeAt(bits, p), "path must not cross the wall")
	}
}

func wallCodeAt(bits [terrain.BytesPerRoom]byte, p coord.WorldPosition) terrain.TileCode {
	grid := terrain.RoomGrid{Bits: bits}

	return grid.At(p.InRoomX(), p.InRoomY())
}

func TestSearch_PrefersPlainDetourOverSwampShortcut(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	for y := uint32(26); y <= 35; y++ {
		setTile(&bits, 10, y, terrain.Swamp)
	}
	e := newTestEngine(t, bits)

	origin := pos(10, 25)
	goal := pos(10, 35)
	result, err := e.Search(origin, []Goal{{Pos: goal, Range: 0}}, WithSwampCost(5))
	require.NoError(t, err)
	assert.Equal(t, StatusOK, result.Status)
	assert.False(t, result.Incomplete)
	assert.Less(t, result.Cost, uint32(50), "must avoid paying swamp cost the whole way down")
}

func TestSearch_FleeMovesAwayFromGoal(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	e := newTestEngine(t, bits)

	origin := pos(25, 25)
	result, err := e.Search(origin, []Goal{{Pos: origin, Range: 3}}, WithFlee(true))
	require.NoError(t, err)
	assert.Equal(t, StatusOK, result.Status)
	assert.False(t, result.Incomplete)
	assert.Equal(t, uint32(3), result.Cost)
	require.NotEmpty(t, result.Path)
	assert.GreaterOrEqual(t, result.Path[0].RangeTo(origin), uint32(3))
}

func TestSearch_OpsBudgetExhaustionReportsIncomplete(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	e := newTestEngine(t, bits)

	origin := pos(2, 2)
	goal := pos(47, 47)
	result, err := e.Search(origin, []Goal{{Pos: goal, Range: 0}}, WithMaxOps(1))
	require.NoError(t, err)
	assert.Equal(t, StatusOK, result.Status)
	assert.True(t, result.Incomplete)
	assert.Equal(t, uint32(1), result.Ops)
}

func TestSearch_NoGoalsIsAnError(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	e := newTestEngine(t, bits)

	_, err := e.Search(pos(1, 1), nil)
	assert.ErrorIs(t, err, ErrNoGoals)
}

func TestSearch_OriginInaccessibleWhenRoomCallbackBlocksIt(t *testing.T) {
	reg := terrain.NewRegistry()
	require.NoError(t, reg.LoadTerrain([]terrain.Entry{{Room: coord.RoomLocation{Xx: testRoomXx, Yy: testRoomYy}}}))
	cb := func(coord.RoomLocation) (*roomtable.CostMatrix, bool, error) { return nil, true, nil }
	e := NewEngine(reg, cb)

	result, err := e.Search(pos(1, 1), []Goal{{Pos: pos(10, 10), Range: 0}})
	require.NoError(t, err)
	assert.Equal(t, StatusOriginInaccessible, result.Status)
}

func TestSearch_MissingTerrainIsFatal(t *testing.T) {
	reg := terrain.NewRegistry()
	require.NoError(t, reg.LoadTerrain(nil))
	e := NewEngine(reg, nil)

	_, err := e.Search(pos(1, 1), []Goal{{Pos: pos(10, 10), Range: 0}})
	assert.ErrorIs(t, err, roomtable.ErrTerrainMissing)
}

func TestHeuristic_SeekAndFlee(t *testing.T) {
	var bits [terrain.BytesPerRoom]byte
	e := newTestEngine(t, bits)
	e.goals = []Goal{{Pos: pos(25, 25), Range: 2}}

	e.flee = false
	assert.Equal(t, uint32(0), e.heuristic(pos(25, 25)))
	assert.Equal(t, uint32(0), e.heuristic(pos(26, 26)))
	assert.Equal(t, uint32(3), e.heuristic(pos(30, 25)))

	e.flee = true
	assert.Equal(t, uint32(2), e.heuristic(pos(25, 25)))
	assert.Equal(t, uint32(0), e.heuristic(pos(30, 25)))
}
