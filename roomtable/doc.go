// Package roomtable maintains the per-search list of active rooms: a dense
// room index allocated the first time a reachable tile in a room is
// touched, the reverse lookup from room location to that index, the set of
// rooms the room-callback collaborator has rejected, and the Look
// operation that blends static terrain with an optional dynamic cost
// overlay.
//
// What:
//
//   - Table.RoomIndexFromPos implements the allocation policy of spec §4.3:
//     reuse an already-registered room, respect the MaxRooms soft cap,
//     skip blocked rooms, fail fatally on missing terrain, and consult the
//     room-callback collaborator to learn whether a room is blocked or has
//     a dynamic cost-matrix overlay.
//   - Table.Look returns the per-tile movement cost in [1, Obstacle],
//     consulting the overlay first and falling back to terrain.
//
// Why:
//
//   - Splitting "what rooms has this search touched" from the process-wide
//     terrain registry lets many concurrent searches share terrain while
//     keeping their own room-local bookkeeping, and lets the room-callback
//     collaborator run arbitrary host code without the core holding any
//     lock.
package roomtable
