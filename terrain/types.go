package terrain

import (
	"errors"

	"github.com/katalvlaran/gridpath/coord"
)

// Sentinel errors for terrain operations.
var (
	// ErrAlreadyLoaded indicates LoadTerrain was called more than once.
	// The reference implementation leaves a second call undefined; gridpath
	// fails loudly instead of silently corrupting the shared table.
	ErrAlreadyLoaded = errors.New("terrain: LoadTerrain has already been called")
	// ErrBadGridSize indicates a terrain entry's bit grid was not exactly
	// BytesPerRoom bytes long.
	ErrBadGridSize = errors.New("terrain: room grid must be exactly 625 bytes")
)

// BytesPerRoom is the size, in bytes, of one room's bit-packed terrain
// grid: 2500 tiles at 2 bits/tile.
const BytesPerRoom = 625

// TileCode is the 2-bit terrain code for a single tile.
type TileCode uint8

// The four possible 2-bit terrain codes.
const (
	Plain TileCode = iota
	Wall
	Swamp
	Reserved
)

// RoomGrid is one room's immutable, bit-packed terrain. Tile (x, y) is
// stored at bit offset 2*(x*50+y) within Bits, x-major, matching the
// reference implementation's room_info_t::look.
type RoomGrid struct {
	Bits [BytesPerRoom]byte
}

// At decodes the 2-bit terrain code for in-room offset (x, y).
// x and y must each be in [0, 50); behavior is otherwise undefined.
func (g *RoomGrid) At(x, y uint32) TileCode {
	index := x*50 + y
	b := g.Bits[index/4]

	return TileCode((b >> ((index % 4) * 2)) & 0x3)
}

// Entry is one room's terrain as supplied to LoadTerrain: the room it
// describes and its 625-byte packed bit grid.
type Entry struct {
	Room coord.RoomLocation
	Bits [BytesPerRoom]byte
}
