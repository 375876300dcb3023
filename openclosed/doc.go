// Package openclosed implements a constant-time open/closed membership
// list for a fixed universe of tile indices, with O(1) amortized reset
// across searches via a generation marker.
//
// What:
//
//   - Backed by a flat []uint32 of per-index generation counters.
//   - Clear() advances the marker by 2 instead of zeroing the array.
//   - On marker overflow the backing array is zeroed once and the marker
//     resets to 1 (spec §3 invariant 5).
//
// Why:
//
//   - A search instance is reused across many calls; zeroing a
//     2500×MaxRooms array on every call would dominate small searches.
package openclosed
