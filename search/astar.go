package search

import (
	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/roomtable"
)

// astar is the one-time A* seed step run from the origin tile only: it
// pushes every reachable 8-way neighbor at unit hop, filtered by the
// room-border crossing policy below. Every tile JPS ever opens after this
// is reached indirectly, by jump, never by a second call to astar.
func (e *Engine) astar(index int, pos coord.WorldPosition, g uint32) error {
	for dir := coord.Top; dir <= coord.TopLeft; dir++ {
		neighbor := pos.PositionInDirection(dir)
		if !borderCrossingAllowed(pos, neighbor) {
			continue
		}

		cost, err := e.table.Look(neighbor)
		if err != nil {
			return err
		}
		if cost == roomtable.Obstacle {
			continue
		}

		if err := e.pushNode(index, neighbor, g+cost); err != nil {
			return err
		}
	}

	return nil
}

// borderCrossingAllowed implements the room-border crossing policy: a
// diagonal step is never allowed to cut a room corner, and a step that
// would leave a tile's row/column edge without actually crossing into the
// expected neighboring room is rejected. Exactly one of the four cases
// applies, since a tile cannot sit on two parallel room edges at once
// except at a corner, where the x-edge case takes precedence.
func borderCrossingAllowed(pos, neighbor coord.WorldPosition) bool {
	switch {
	case pos.InRoomX() == 0:
		if neighbor.InRoomX() == coord.RoomSize-1 && pos.Yy != neighbor.Yy {
			return false
		}
		if pos.Xx == neighbor.Xx {
			return false
		}
	case pos.InRoomX() == coord.RoomSize-1:
		if neighbor.InRoomX() == 0 && pos.Yy != neighbor.Yy {
			return false
		}
		if pos.Xx == neighbor.Xx {
			return false
		}
	case pos.InRoomY() == 0:
		if neighbor.InRoomY() == coord.RoomSize-1 && pos.Xx != neighbor.Xx {
			return false
		}
		if pos.Yy == neighbor.Yy {
			return false
		}
	case pos.InRoomY() == coord.RoomSize-1:
		if neighbor.InRoomY() == 0 && pos.Xx != neighbor.Xx {
			return false
		}
		if pos.Yy == neighbor.Yy {
			return false
		}
	}

	return true
}
