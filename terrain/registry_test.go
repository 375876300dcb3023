package terrain

import (
	"testing"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packEntry(loc coord.RoomLocation, fill func(x, y uint32) TileCode) Entry {
	var e Entry
	e.Room = loc
	for x := uint32(0); x < 50; x++ {
		for y := uint32(0); y < 50; y++ {
			code := fill(x, y)
			index := x*50 + y
			e.Bits[index/4] |= byte(code&0x3) << ((index % 4) * 2)
		}
	}

	return e
}

func TestLoadTerrain_AndLookup(t *testing.T) {
	loc := coord.RoomLocation{Xx: 1, Yy: 2}
	entry := packEntry(loc, func(x, y uint32) TileCode {
		if x == 10 && y == 10 {
			return Wall
		}

		return Plain
	})

	reg := NewRegistry()
	require.NoError(t, reg.LoadTerrain([]Entry{entry}))

	grid, ok := reg.Lookup(loc)
	require.True(t, ok)
	assert.Equal(t, Wall, grid.At(10, 10))
	assert.Equal(t, Plain, grid.At(0, 0))
}

func TestLoadTerrain_TwiceFails(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.LoadTerrain(nil))
	require.ErrorIs(t, reg.LoadTerrain(nil), ErrAlreadyLoaded)
}

func TestLookup_AbsentRoom(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.LoadTerrain(nil))
	_, ok := reg.Lookup(coord.RoomLocation{Xx: 5, Yy: 5})
	assert.False(t, ok)
}

func TestRoomGrid_AllFourCodes(t *testing.T) {
	var g RoomGrid
	codes := [4]TileCode{Plain, Wall, Swamp, Reserved}
	for i, c := range codes {
		x := uint32(i)
		index := x*50 + 0
		g.Bits[index/4] |= byte(c&0x3) << ((index % 4) * 2)
	}
	for i, c := range codes {
		assert.Equal(t, c, g.At(uint32(i), 0))
	}
}
