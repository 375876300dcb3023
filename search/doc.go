// Package search implements the A*/Jump Point Search engine that walks the
// room graph built by roomtable, using openclosed for membership and heapidx
// for the open-list priority queue.
//
// What:
//
//   - Engine.Search runs one path search from an origin to a set of Goal
//     tiles (or away from them, in flee mode): a single-step A* seed from
//     the origin followed by JPS expansion of every subsequent pop, with an
//     ops budget and a cost budget, reporting the best tile found when
//     either budget is exhausted.
//   - Jump Point Search prunes the open list to forced neighbors and jump
//     points only, trading a constant-factor increase in per-step work
//     (straight/diagonal scans of runs of same-cost tiles) for an
//     asymptotic reduction in the number of nodes ever opened.
//
// Why:
//
//   - Plain A* over a grid opens every tile on the frontier; JPS collapses
//     long uniform-cost runs (open plains, corridors) into a single jump,
//     which matters at the scale of a multi-room search touching up to 64
//     rooms of 2500 tiles each.
//
// Engine is not safe for concurrent use by multiple goroutines; callers
// running searches concurrently should use one Engine per goroutine (see
// the pathfinder package's Pool).
package search
