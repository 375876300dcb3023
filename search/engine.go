package search

import (
	"math"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/heapidx"
	"github.com/katalvlaran/gridpath/openclosed"
	"github.com/katalvlaran/gridpath/roomtable"
	"github.com/katalvlaran/gridpath/terrain"
)

// tileCapacity is the dense index space: roomtable.MaxRooms rooms of 2500
// tiles each. Engine allocates its working arrays at this size once and
// reuses them across searches regardless of the MaxRooms a given call sets.
const tileCapacity = roomtable.MaxRooms * 2500

// Engine is a reusable A*/JPS search instance. Construct once per
// goroutine with NewEngine and call Search as many times as needed; each
// call resets all internal state (spec §3 invariant 4).
type Engine struct {
	table *roomtable.Table
	oc    *openclosed.List
	heap  *heapidx.Heap

	parents []int // tile index -> parent tile index, valid only while open/closed

	goals           []Goal
	flee            bool
	heuristicWeight float64
}

// NewEngine returns an Engine bound to registry for terrain and callback as
// the per-room dynamic-overlay collaborator (callback may be nil).
func NewEngine(registry *terrain.Registry, callback roomtable.Callback) *Engine {
	return &Engine{
		table:   roomtable.New(registry, callback, roomtable.MaxRooms),
		oc:      openclosed.New(tileCapacity),
		heap:    heapidx.New(tileCapacity, tileCapacity/8),
		parents: make([]int, tileCapacity),
	}
}

// indexFromPos returns the dense tile index for pos, registering pos's room
// if this is the first touch. Callers must only invoke this for positions
// already known reachable (a prior Table.Look returned a cost other than
// Obstacle): roomIndex == 0 here means the room bookkeeping and the earlier
// Look disagree, which is a bug, not a normal search outcome.
func (e *Engine) indexFromPos(pos coord.WorldPosition) (int, error) {
	roomIndex, err := e.table.RoomIndexFromPos(pos.RoomLocation())
	if err != nil {
		return 0, err
	}
	if roomIndex == 0 {
		return 0, ErrRoomUnavailable
	}

	return (roomIndex-1)*2500 + int(pos.InRoomX())*50 + int(pos.InRoomY()), nil
}

// posFromIndex inverts indexFromPos for an index previously produced by it.
func (e *Engine) posFromIndex(index int) coord.WorldPosition {
	roomIndex := index / 2500
	offset := index % 2500
	x := uint32(offset / 50)
	y := uint32(offset % 50)
	loc := e.table.RoomLocationAt(roomIndex)

	return coord.WorldPosition{Xx: uint32(loc.Xx)*coord.RoomSize + x, Yy: uint32(loc.Yy)*coord.RoomSize + y}
}

// heuristic returns the (unweighted) estimated remaining cost from pos: in
// seek mode the smallest shortfall against any goal's range, 0 if pos
// already satisfies one; in flee mode the largest excess still inside any
// goal's range, 0 if pos is clear of all of them.
func (e *Engine) heuristic(pos coord.WorldPosition) uint32 {
	if e.flee {
		var worst uint32
		for _, g := range e.goals {
			dist := pos.RangeTo(g.Pos)
			if dist < g.Range {
				if delta := g.Range - dist; delta > worst {
					worst = delta
				}
			}
		}

		return worst
	}

	best := uint32(math.MaxUint32)
	for _, g := range e.goals {
		dist := pos.RangeTo(g.Pos)
		if dist <= g.Range {
			return 0
		}
		if delta := dist - g.Range; delta < best {
			best = delta
		}
	}

	return best
}

// pushNode relaxes the edge (parent -> pos) with accumulated cost g: a
// closed tile is never reopened, an open tile is updated only on a strict
// improvement, and a fresh tile is inserted.
func (e *Engine) pushNode(parent int, pos coord.WorldPosition, g uint32) error {
	idx, err := e.indexFromPos(pos)
	if err != nil {
		return err
	}
	if e.oc.IsClosed(idx) {
		return nil
	}

	hCost := uint32(float64(e.heuristic(pos)) * e.heuristicWeight)
	f := g + hCost

	if e.oc.IsOpen(idx) {
		if e.heap.Priority(idx) > f {
			e.heap.Update(idx, f)
			e.parents[idx] = parent
		}

		return nil
	}

	if err := e.heap.Insert(idx, f); err != nil {
		return err
	}
	e.oc.Open(idx)
	e.parents[idx] = parent

	return nil
}
