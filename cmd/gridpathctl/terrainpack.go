package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/terrain"
)

// terrainPackEntry is the on-disk JSON shape of one room in a terrain pack
// file: room coordinates plus its 625-byte bit-packed grid, base64-encoded.
type terrainPackEntry struct {
	Room struct {
		Xx uint8 `json:"xx"`
		Yy uint8 `json:"yy"`
	} `json:"room"`
	Bits string `json:"bits"`
}

// loadTerrainPack reads a JSON array of terrainPackEntry from path and
// decodes it into terrain.Entry values ready for Registry.LoadTerrain.
func loadTerrainPack(path string) ([]terrain.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridpathctl: reading terrain pack %s: %w", path, err)
	}

	var packed []terrainPackEntry
	if err := json.Unmarshal(raw, &packed); err != nil {
		return nil, fmt.Errorf("gridpathctl: parsing terrain pack %s: %w", path, err)
	}

	entries := make([]terrain.Entry, len(packed))
	for i, p := range packed {
		bits, err := base64.StdEncoding.DecodeString(p.Bits)
		if err != nil {
			return nil, fmt.Errorf("gridpathctl: decoding room (%d,%d) bits: %w", p.Room.Xx, p.Room.Yy, err)
		}
		if len(bits) != terrain.BytesPerRoom {
			return nil, fmt.Errorf("%w: room (%d,%d) has %d bytes", terrain.ErrBadGridSize, p.Room.Xx, p.Room.Yy, len(bits))
		}

		entry := terrain.Entry{Room: coord.RoomLocation{Xx: p.Room.Xx, Yy: p.Room.Yy}}
		copy(entry.Bits[:], bits)
		entries[i] = entry
	}

	return entries, nil
}
