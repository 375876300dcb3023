package terrain

import (
	"sync"

	"github.com/katalvlaran/gridpath/coord"
)

// Registry is a process-wide, immutable table mapping room location to its
// static terrain grid. The zero Registry is ready to use. Populate it once
// with LoadTerrain; after that it is safe to share across goroutines.
type Registry struct {
	mu     sync.RWMutex
	loaded bool
	rooms  map[uint16]*RoomGrid
}

// NewRegistry returns an empty, unloaded Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// LoadTerrain performs the one-shot bulk population of r from entries.
// Calling LoadTerrain a second time returns ErrAlreadyLoaded; the reference
// implementation's behavior for a second load is undefined, so gridpath
// refuses rather than silently corrupting already-published terrain.
//
// Complexity: O(len(entries)).
func (r *Registry) LoadTerrain(entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return ErrAlreadyLoaded
	}

	rooms := make(map[uint16]*RoomGrid, len(entries))
	for _, e := range entries {
		grid := e.Bits // copy: Entry is caller-owned, RoomGrid is ours forever
		rooms[e.Room.ID()] = &RoomGrid{Bits: grid}
	}
	r.rooms = rooms
	r.loaded = true

	return nil
}

// Lookup returns the terrain grid for loc, or (nil, false) if loc's terrain
// was never loaded. The search engine treats a false result as "room data
// missing" and fails the search fatally (spec §4.2, §7.1).
//
// Complexity: O(1).
func (r *Registry) Lookup(loc coord.RoomLocation) (*RoomGrid, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grid, ok := r.rooms[loc.ID()]

	return grid, ok
}
