package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomLocationID_RoundTrip(t *testing.T) {
	for _, loc := range []RoomLocation{
		{Xx: 0, Yy: 0},
		{Xx: 129, Yy: 126},
		{Xx: 255, Yy: 255},
	} {
		got := RoomLocationFromID(loc.ID())
		assert.Equal(t, loc, got)
	}
}

func TestWorldPosition_RoomAndOffset(t *testing.T) {
	pos := WorldPosition{Xx: 6475, Yy: 25} // room (129, 0), offset (25, 25)
	require.Equal(t, RoomLocation{Xx: 129, Yy: 0}, pos.RoomLocation())
	require.Equal(t, uint32(25), pos.InRoomX())
	require.Equal(t, uint32(25), pos.InRoomY())
}

func TestPositionInDirection_AllEight(t *testing.T) {
	origin := WorldPosition{Xx: 10, Yy: 10}
	cases := map[Direction]WorldPosition{
		Top:         {10, 9},
		TopRight:    {11, 9},
		Right:       {11, 10},
		BottomRight: {11, 11},
		Bottom:      {10, 11},
		BottomLeft:  {9, 11},
		Left:        {9, 10},
		TopLeft:     {9, 9},
	}
	for dir, want := range cases {
		assert.Equal(t, want, origin.PositionInDirection(dir), "dir=%v", dir)
	}
}

func TestDirectionTo_MatchesInverseOfPositionInDirection(t *testing.T) {
	origin := WorldPosition{Xx: 10, Yy: 10}
	for dir := Top; dir <= TopLeft; dir++ {
		neighbor := origin.PositionInDirection(dir)
		got := origin.DirectionTo(neighbor)
		assert.True(t, got.IsValid())
		assert.Equal(t, dir, got)
	}
}

func TestDirectionTo_SamePositionIsInvalid(t *testing.T) {
	pos := WorldPosition{Xx: 5, Yy: 5}
	assert.False(t, pos.DirectionTo(pos).IsValid())
}

func TestRangeTo_Chebyshev(t *testing.T) {
	a := WorldPosition{Xx: 0, Yy: 0}
	b := WorldPosition{Xx: 3, Yy: 7}
	assert.Equal(t, uint32(7), a.RangeTo(b))
	assert.Equal(t, uint32(0), a.RangeTo(a))
}

func TestIsNull(t *testing.T) {
	assert.True(t, NullPosition.IsNull())
	assert.False(t, WorldPosition{Xx: 0, Yy: 1}.IsNull())
}
