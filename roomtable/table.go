package roomtable

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/terrain"
)

// mapPositionSpace is the number of distinct RoomLocation ids (2^16).
const mapPositionSpace = 1 << 16

// Table is the per-search list of active rooms. Construct once per search
// instance with New and reuse across many searches via Clear.
type Table struct {
	registry *terrain.Registry
	callback Callback
	maxRooms int

	rooms   []roomInfo    // dense, at most maxRooms entries
	reverse []uint8       // RoomLocation.ID() -> 1-based index into rooms, 0 = absent
	blocked *bitset.BitSet // RoomLocation.ID() membership: explicitly rejected rooms

	lookTable [4]uint32 // Plain, Wall(obstacle), Swamp, Reserved(obstacle)
}

// New returns a Table bound to registry for terrain lookups and callback
// for dynamic overlay resolution (callback may be nil: terrain-only).
func New(registry *terrain.Registry, callback Callback, maxRooms int) *Table {
	if maxRooms > MaxRooms {
		maxRooms = MaxRooms
	}

	return &Table{
		registry: registry,
		callback: callback,
		maxRooms: maxRooms,
		rooms:    make([]roomInfo, 0, maxRooms),
		reverse:  make([]uint8, mapPositionSpace),
		blocked:  bitset.New(mapPositionSpace),
	}
}

// SetMaxRooms bounds how many rooms this search may register, clamped to
// the package-wide MaxRooms ceiling. Call before the first RoomIndexFromPos
// of a search.
func (t *Table) SetMaxRooms(n int) {
	if n > MaxRooms {
		n = MaxRooms
	}
	if n < 0 {
		n = 0
	}
	t.maxRooms = n
}

// SetCosts seeds the terrain look table: plain tiles cost plainCost, swamp
// tiles cost swampCost, walls and reserved tiles are Obstacle.
func (t *Table) SetCosts(plainCost, swampCost uint32) {
	t.lookTable = [4]uint32{
		uint32(terrain.Plain):    plainCost,
		uint32(terrain.Wall):     Obstacle,
		uint32(terrain.Swamp):    swampCost,
		uint32(terrain.Reserved): Obstacle,
	}
}

// Clear resets the table to empty, ready for a new search. It clears only
// the reverse-table entries the previous search actually registered (spec
// §3 invariant 4), not the full 65536-entry array, and empties the blocked
// set.
func (t *Table) Clear() {
	for _, r := range t.rooms {
		t.reverse[r.loc.ID()] = 0
	}
	t.blocked.ClearAll()
	t.rooms = t.rooms[:0]
}

// Size returns the number of rooms currently registered in this search.
func (t *Table) Size() int {
	return len(t.rooms)
}

// RoomLocationAt returns the RoomLocation registered at the given 0-based
// room index. index must be < Size().
func (t *Table) RoomLocationAt(index int) coord.RoomLocation {
	return t.rooms[index].loc
}

// RoomIndexFromPos returns the 1-based room index for loc, allocating a new
// entry on first touch per spec §4.3:
//
//  1. Already registered → return its index.
//  2. At MaxRooms → return 0 (soft cap, search continues in known rooms).
//  3. Explicitly blocked → return 0.
//  4. Terrain missing → fatal ErrTerrainMissing.
//  5. Room callback invoked; false → block and return 0; 2500-byte buffer →
//     register with overlay; anything else → terrain-only.
//  6. Append and return stored_index+1.
func (t *Table) RoomIndexFromPos(loc coord.RoomLocation) (int, error) {
	id := loc.ID()
	if idx := t.reverse[id]; idx != 0 {
		return int(idx), nil
	}
	if len(t.rooms) >= t.maxRooms {
		return 0, nil
	}
	if t.blocked.Test(uint(id)) {
		return 0, nil
	}

	grid, ok := t.registry.Lookup(loc)
	if !ok {
		return 0, fmt.Errorf("%w: room (%d,%d)", ErrTerrainMissing, loc.Xx, loc.Yy)
	}

	var overlay *CostMatrix
	if t.callback != nil {
		cm, isBlocked, err := t.callback(loc)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrCallbackFailed, err)
		}
		if isBlocked {
			t.blocked.Set(uint(id))

			return 0, nil
		}
		overlay = cm
	}

	t.rooms = append(t.rooms, roomInfo{grid: grid, overlay: overlay, loc: loc})
	index := uint8(len(t.rooms))
	t.reverse[id] = index

	return int(index), nil
}

// Look returns the movement cost of pos in [1, Obstacle], allocating pos's
// room on demand. A room the search cannot access (soft cap, blocked, or
// callback rejection) looks like Obstacle, never an error.
func (t *Table) Look(pos coord.WorldPosition) (uint32, error) {
	index, err := t.RoomIndexFromPos(pos.RoomLocation())
	if err != nil {
		return 0, err
	}
	if index == 0 {
		return Obstacle, nil
	}

	room := &t.rooms[index-1]
	x, y := pos.InRoomX(), pos.InRoomY()
	if room.overlay != nil {
		if raw := room.overlay.At(x, y); raw != 0 {
			if raw == 0xFF {
				return Obstacle, nil
			}

			return uint32(raw), nil
		}
	}

	return t.lookTable[room.grid.At(x, y)], nil
}
