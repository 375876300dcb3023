// Package coord defines the coordinate model shared by every other gridpath
// package: world positions on a torus of 50×50-tile rooms, room locations,
// the 8-way compass directions, and Chebyshev range.
//
// What:
//
//   - WorldPosition is a (Xx, Yy) pair on the global tile plane.
//   - RoomLocation is the 8-bit×8-bit room a WorldPosition falls in.
//   - Direction enumerates the 8 compass directions in a fixed numeric order.
//   - RangeTo computes Chebyshev distance, the grid metric for 8-way movement.
//
// Why:
//
//   - Every other package (terrain, roomtable, search) indexes off of these
//     two coordinate types; keeping them dependency-free avoids import
//     cycles and keeps the hot path allocation-free.
//
// Complexity: every operation in this package is O(1).
package coord
