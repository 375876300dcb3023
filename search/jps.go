package search

import (
	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/roomtable"
)

// isBorderPos reports whether v is the first or last in-room offset (0 or
// RoomSize-1): a tile that sits directly on a room edge.
func isBorderPos(v uint32) bool {
	return (v+1)%coord.RoomSize < 2
}

// isNearBorderPos reports whether v is within one tile of a room edge.
func isNearBorderPos(v uint32) bool {
	return (v+2)%coord.RoomSize < 4
}

// sign3 returns -1, 0, or 1 for b relative to a, without risking unsigned
// underflow on the subtraction.
func sign3(a, b uint32) int {
	switch {
	case b > a:
		return 1
	case b < a:
		return -1
	default:
		return 0
	}
}

// shift returns pos offset by (dx, dy), each in {-1, 0, 1}.
func shift(pos coord.WorldPosition, dx, dy int) coord.WorldPosition {
	return coord.WorldPosition{Xx: shiftAxis(pos.Xx, dx), Yy: shiftAxis(pos.Yy, dy)}
}

func shiftAxis(v uint32, d int) uint32 {
	switch d {
	case 1:
		return v + 1
	case -1:
		return v - 1
	default:
		return v
	}
}

// jps expands one popped-and-closed tile: it recovers the direction of
// travel from the tile's parent, handles the reduced neighbor set for a
// tile sitting on a room border, and otherwise runs the standard JPS
// straight/diagonal/forced-neighbor rules, ultimately pushing every
// resulting jump point via jumpNeighbor.
func (e *Engine) jps(index int, pos coord.WorldPosition, g uint32) error {
	parent := e.posFromIndex(e.parents[index])
	dx := sign3(parent.Xx, pos.Xx)
	dy := sign3(parent.Yy, pos.Yy)

	if pushed, err := e.jpsBorderNeighbors(index, pos, g, dx, dy); err != nil {
		return err
	} else if pushed {
		return nil
	}

	borderDx := 0
	switch pos.InRoomX() {
	case 1:
		borderDx = -1
	case coord.RoomSize - 2:
		borderDx = 1
	}
	borderDy := 0
	switch pos.InRoomY() {
	case 1:
		borderDy = -1
	case coord.RoomSize - 2:
		borderDy = 1
	}

	cost, err := e.table.Look(pos)
	if err != nil {
		return err
	}

	if dx != 0 {
		neighbor := shift(pos, dx, 0)
		nCost, err := e.table.Look(neighbor)
		if err != nil {
			return err
		}
		if nCost != roomtable.Obstacle {
			if borderDy == 0 {
				if err := e.jumpNeighbor(pos, index, neighbor, g, cost, nCost); err != nil {
					return err
				}
			} else if err := e.pushNode(index, neighbor, g+nCost); err != nil {
				return err
			}
		}
	}
	if dy != 0 {
		neighbor := shift(pos, 0, dy)
		nCost, err := e.table.Look(neighbor)
		if err != nil {
			return err
		}
		if nCost != roomtable.Obstacle {
			if borderDx == 0 {
				if err := e.jumpNeighbor(pos, index, neighbor, g, cost, nCost); err != nil {
					return err
				}
			} else if err := e.pushNode(index, neighbor, g+nCost); err != nil {
				return err
			}
		}
	}

	switch {
	case dx != 0 && dy != 0:
		return e.jpsForcedDiagonal(index, pos, g, cost, dx, dy)
	case dx != 0:
		return e.jpsForcedHorizontal(index, pos, g, cost, dx, borderDy)
	default:
		return e.jpsForcedVertical(index, pos, g, cost, dy, borderDx)
	}
}

// jpsBorderNeighbors handles a tile sitting exactly on a room edge: the
// move set collapses to the 1-3 tiles the reference implementation allows
// when jumping to or from a border, pushed directly with no further
// jumping. Returns pushed=true when the restricted move set applied. It
// returns false for a non-border tile, and for a border tile whose step
// from its parent has no component across that edge (dx == 0 on an x edge,
// dy == 0 on a y edge); such a tile gets the normal expansion.
func (e *Engine) jpsBorderNeighbors(index int, pos coord.WorldPosition, g uint32, dx, dy int) (bool, error) {
	var neighbors []coord.WorldPosition

	switch {
	case pos.InRoomX() == 0:
		switch dx {
		case -1:
			neighbors = []coord.WorldPosition{shift(pos, -1, 0)}
		case 1:
			neighbors = []coord.WorldPosition{shift(pos, 1, -1), shift(pos, 1, 0), shift(pos, 1, 1)}
		default:
			return false, nil
		}
	case pos.InRoomX() == coord.RoomSize-1:
		switch dx {
		case 1:
			neighbors = []coord.WorldPosition{shift(pos, 1, 0)}
		case -1:
			neighbors = []coord.WorldPosition{shift(pos, -1, -1), shift(pos, -1, 0), shift(pos, -1, 1)}
		default:
			return false, nil
		}
	case pos.InRoomY() == 0:
		switch dy {
		case -1:
			neighbors = []coord.WorldPosition{shift(pos, 0, -1)}
		case 1:
			neighbors = []coord.WorldPosition{shift(pos, -1, 1), shift(pos, 0, 1), shift(pos, 1, 1)}
		default:
			return false, nil
		}
	case pos.InRoomY() == coord.RoomSize-1:
		switch dy {
		case 1:
			neighbors = []coord.WorldPosition{shift(pos, 0, 1)}
		case -1:
			neighbors = []coord.WorldPosition{shift(pos, -1, -1), shift(pos, 0, -1), shift(pos, 1, -1)}
		default:
			return false, nil
		}
	default:
		return false, nil
	}

	for _, n := range neighbors {
		nCost, err := e.table.Look(n)
		if err != nil {
			return false, err
		}
		if nCost == roomtable.Obstacle {
			continue
		}
		if err := e.pushNode(index, n, g+nCost); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (e *Engine) jpsForcedDiagonal(index int, pos coord.WorldPosition, g, cost uint32, dx, dy int) error {
	neighbor := shift(pos, dx, dy)
	nCost, err := e.table.Look(neighbor)
	if err != nil {
		return err
	}
	if nCost != roomtable.Obstacle {
		if err := e.jumpNeighbor(pos, index, neighbor, g, cost, nCost); err != nil {
			return err
		}
	}

	sideA, err := e.table.Look(shift(pos, -dx, 0))
	if err != nil {
		return err
	}
	if sideA != cost {
		n := shift(pos, -dx, dy)
		nCost, err := e.table.Look(n)
		if err != nil {
			return err
		}
		if err := e.jumpNeighbor(pos, index, n, g, cost, nCost); err != nil {
			return err
		}
	}

	sideB, err := e.table.Look(shift(pos, 0, -dy))
	if err != nil {
		return err
	}
	if sideB != cost {
		n := shift(pos, dx, -dy)
		nCost, err := e.table.Look(n)
		if err != nil {
			return err
		}
		if err := e.jumpNeighbor(pos, index, n, g, cost, nCost); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) jpsForcedHorizontal(index int, pos coord.WorldPosition, g, cost uint32, dx, borderDy int) error {
	up, err := e.table.Look(shift(pos, 0, 1))
	if err != nil {
		return err
	}
	if borderDy == 1 || up != cost {
		n := shift(pos, dx, 1)
		nCost, err := e.table.Look(n)
		if err != nil {
			return err
		}
		if err := e.jumpNeighbor(pos, index, n, g, cost, nCost); err != nil {
			return err
		}
	}

	down, err := e.table.Look(shift(pos, 0, -1))
	if err != nil {
		return err
	}
	if borderDy == -1 || down != cost {
		n := shift(pos, dx, -1)
		nCost, err := e.table.Look(n)
		if err != nil {
			return err
		}
		if err := e.jumpNeighbor(pos, index, n, g, cost, nCost); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) jpsForcedVertical(index int, pos coord.WorldPosition, g, cost uint32, dy, borderDx int) error {
	right, err := e.table.Look(shift(pos, 1, 0))
	if err != nil {
		return err
	}
	if borderDx == 1 || right != cost {
		n := shift(pos, 1, dy)
		nCost, err := e.table.Look(n)
		if err != nil {
			return err
		}
		if err := e.jumpNeighbor(pos, index, n, g, cost, nCost); err != nil {
			return err
		}
	}

	left, err := e.table.Look(shift(pos, -1, 0))
	if err != nil {
		return err
	}
	if borderDx == -1 || left != cost {
		n := shift(pos, -1, dy)
		nCost, err := e.table.Look(n)
		if err != nil {
			return err
		}
		if err := e.jumpNeighbor(pos, index, n, g, cost, nCost); err != nil {
			return err
		}
	}

	return nil
}

// jumpNeighbor resolves one candidate neighbor into either a direct push
// (when the move crosses a cost boundary or lands on a room border) or a
// full jump along the same direction, interpolating the skipped cost.
func (e *Engine) jumpNeighbor(pos coord.WorldPosition, index int, neighbor coord.WorldPosition, g, cost, nCost uint32) error {
	if nCost != cost || isBorderPos(neighbor.Xx) || isBorderPos(neighbor.Yy) {
		if nCost == roomtable.Obstacle {
			return nil
		}
		g += nCost

		return e.pushNode(index, neighbor, g)
	}

	dx := sign3(pos.Xx, neighbor.Xx)
	dy := sign3(pos.Yy, neighbor.Yy)
	jumped, err := e.jump(nCost, neighbor, dx, dy)
	if err != nil {
		return err
	}
	if jumped.IsNull() {
		return nil
	}

	endCost, err := e.table.Look(jumped)
	if err != nil {
		return err
	}
	g += nCost*(pos.RangeTo(jumped)-1) + endCost

	return e.pushNode(index, jumped, g)
}

// jump dispatches to the axis-appropriate jump primitive.
func (e *Engine) jump(cost uint32, pos coord.WorldPosition, dx, dy int) (coord.WorldPosition, error) {
	switch {
	case dx != 0 && dy != 0:
		return e.jumpXY(cost, pos, dx, dy)
	case dx != 0:
		return e.jumpX(cost, pos, dx)
	default:
		return e.jumpY(cost, pos, dy)
	}
}

// jumpX scans a straight horizontal run: it keeps sliding while every tile
// along the way shares cost and neither flank opens a new forced neighbor,
// returning the furthest tile reached (possibly pos itself), or the null
// position if the run ends in an obstacle.
func (e *Engine) jumpX(cost uint32, start coord.WorldPosition, dx int) (coord.WorldPosition, error) {
	pos := start
	prevUp, err := e.table.Look(shift(pos, 0, -1))
	if err != nil {
		return coord.NullPosition, err
	}
	prevDown, err := e.table.Look(shift(pos, 0, 1))
	if err != nil {
		return coord.NullPosition, err
	}

	for {
		if e.heuristic(pos) == 0 || isNearBorderPos(pos.Xx) {
			break
		}

		up, err := e.table.Look(shift(pos, dx, -1))
		if err != nil {
			return coord.NullPosition, err
		}
		down, err := e.table.Look(shift(pos, dx, 1))
		if err != nil {
			return coord.NullPosition, err
		}
		if (up != roomtable.Obstacle && prevUp != cost) || (down != roomtable.Obstacle && prevDown != cost) {
			break
		}
		prevUp, prevDown = up, down
		pos = shift(pos, dx, 0)

		jumpCost, err := e.table.Look(pos)
		if err != nil {
			return coord.NullPosition, err
		}
		if jumpCost == roomtable.Obstacle {
			return coord.NullPosition, nil
		}
		if jumpCost != cost {
			break
		}
	}

	return pos, nil
}

// jumpY is jumpX's vertical mirror.
func (e *Engine) jumpY(cost uint32, start coord.WorldPosition, dy int) (coord.WorldPosition, error) {
	pos := start
	prevLeft, err := e.table.Look(shift(pos, -1, 0))
	if err != nil {
		return coord.NullPosition, err
	}
	prevRight, err := e.table.Look(shift(pos, 1, 0))
	if err != nil {
		return coord.NullPosition, err
	}

	for {
		if e.heuristic(pos) == 0 || isNearBorderPos(pos.Yy) {
			break
		}

		left, err := e.table.Look(shift(pos, -1, dy))
		if err != nil {
			return coord.NullPosition, err
		}
		right, err := e.table.Look(shift(pos, 1, dy))
		if err != nil {
			return coord.NullPosition, err
		}
		if (left != roomtable.Obstacle && prevLeft != cost) || (right != roomtable.Obstacle && prevRight != cost) {
			break
		}
		prevLeft, prevRight = left, right
		pos = shift(pos, 0, dy)

		jumpCost, err := e.table.Look(pos)
		if err != nil {
			return coord.NullPosition, err
		}
		if jumpCost == roomtable.Obstacle {
			return coord.NullPosition, nil
		}
		if jumpCost != cost {
			break
		}
	}

	return pos, nil
}

// jumpXY scans a diagonal run, additionally bailing out the moment either
// axis-aligned sub-jump (jumpX/jumpY from the next diagonal step) would
// itself find a jump point, since that makes the current diagonal tile a
// forced neighbor in its own right.
func (e *Engine) jumpXY(cost uint32, start coord.WorldPosition, dx, dy int) (coord.WorldPosition, error) {
	pos := start
	prevX, err := e.table.Look(shift(pos, -dx, 0))
	if err != nil {
		return coord.NullPosition, err
	}
	prevY, err := e.table.Look(shift(pos, 0, -dy))
	if err != nil {
		return coord.NullPosition, err
	}

	for {
		if e.heuristic(pos) == 0 || isNearBorderPos(pos.Xx) || isNearBorderPos(pos.Yy) {
			break
		}

		lookA, err := e.table.Look(shift(pos, -dx, dy))
		if err != nil {
			return coord.NullPosition, err
		}
		lookB, err := e.table.Look(shift(pos, dx, -dy))
		if err != nil {
			return coord.NullPosition, err
		}
		if (lookA != roomtable.Obstacle && prevX != cost) || (lookB != roomtable.Obstacle && prevY != cost) {
			break
		}

		prevX, err = e.table.Look(shift(pos, 0, dy))
		if err != nil {
			return coord.NullPosition, err
		}
		prevY, err = e.table.Look(shift(pos, dx, 0))
		if err != nil {
			return coord.NullPosition, err
		}

		forced := false
		if prevY != roomtable.Obstacle {
			jx, err := e.jumpX(cost, shift(pos, dx, 0), dx)
			if err != nil {
				return coord.NullPosition, err
			}
			forced = !jx.IsNull()
		}
		if !forced && prevX != roomtable.Obstacle {
			jy, err := e.jumpY(cost, shift(pos, 0, dy), dy)
			if err != nil {
				return coord.NullPosition, err
			}
			forced = !jy.IsNull()
		}
		if forced {
			break
		}

		pos = shift(pos, dx, dy)

		jumpCost, err := e.table.Look(pos)
		if err != nil {
			return coord.NullPosition, err
		}
		if jumpCost == roomtable.Obstacle {
			return coord.NullPosition, nil
		}
		if jumpCost != cost {
			break
		}
	}

	return pos, nil
}
