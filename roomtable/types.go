package roomtable

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/terrain"
)

// Sentinel errors for roomtable operations.
var (
	// ErrTerrainMissing indicates the search touched a room that is
	// reachable but whose terrain was never loaded into the registry.
	// Fatal: spec §7 error kind 1.
	ErrTerrainMissing = errors.New("roomtable: terrain not loaded for room")
	// ErrCallbackFailed wraps an error raised by the room-callback
	// collaborator. Fatal: spec §7 error kind 2.
	ErrCallbackFailed = errors.New("roomtable: room callback failed")
)

// Obstacle is the cost sentinel meaning "impassable": it is never summed
// into a path's g-cost and compares greater than every real cost.
const Obstacle uint32 = math.MaxUint32

// MaxRooms is the hard ceiling on the number of rooms a single search may
// touch, matching the reference implementation's k_max_rooms.
const MaxRooms = 64

// CostMatrix is an optional per-room 50×50 dynamic cost overlay, indexed
// x-major like terrain.RoomGrid: byte 0 means "use terrain cost", 0xFF
// means "obstacle", any other value is an absolute cost.
type CostMatrix struct {
	Bytes [2500]byte
}

// At returns the raw overlay byte for in-room offset (x, y).
func (m *CostMatrix) At(x, y uint32) byte {
	return m.Bytes[x*50+y]
}

// Callback is the room-callback collaborator invoked the first time a
// search touches a room. It returns exactly one of:
//
//   - blocked=true: the room is rejected outright (overlay is ignored).
//   - overlay != nil: the room is registered with this dynamic cost matrix.
//   - overlay == nil, blocked == false: the room is registered terrain-only.
//
// A non-nil error is fatal and aborts the search (spec §7 error kind 2).
type Callback func(loc coord.RoomLocation) (overlay *CostMatrix, blocked bool, err error)

// roomInfo is one allocated room's search-local state.
type roomInfo struct {
	grid    *terrain.RoomGrid
	overlay *CostMatrix
	loc     coord.RoomLocation
}
