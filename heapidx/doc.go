// Package heapidx implements an indexed binary min-heap keyed by tile
// index, supporting Insert, PopMin, and Update (decrease-key) — the
// priority queue at the center of the search engine's A*/JPS loop.
//
// What:
//
//   - Backed by two flat arrays: priorities[tileIndex] = priority, and a
//     1-indexed binary heap of tile indices for cheap parent/child
//     arithmetic (parent of k is k/2, children are 2k and 2k+1).
//   - Update locates the tile's heap slot by linear scan. This is the
//     simplest correct decrease-key and is fast enough for the working-set
//     sizes a single room-local search produces; a positional index would
//     only be worth the complexity if profiling showed Update dominating.
//
// Ordering:
//
//   - PopMin's sift-down compares with >=, matching the reference
//     implementation; this can perform a swap on an exact tie that a
//     strict > comparison would skip. It never changes the priority that
//     pops next, but among equal priorities it can change which tile index
//     pops first. Preserved deliberately rather than "fixed" — see DESIGN.md.
package heapidx
