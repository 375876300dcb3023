// Package pathfinder is the top-level facade: it wires terrain, roomtable
// and search into a single entry point, adds process-wide observability,
// and pools search.Engine instances so concurrent callers don't pay
// allocation cost per search.
//
// What:
//
//   - Finder owns one terrain.Registry (loaded once, read for the process
//     lifetime) and a Pool of search.Engine instances.
//   - Finder.Search runs one search, recording duration, ops spent, and
//     outcome to Prometheus and tagging the call with a UUID correlation
//     ID for structured logs.
//
// Why:
//
//   - The reference implementation keeps a small fixed-size array of
//     search instances per worker thread to avoid reinitializing the
//     (sizeable) open/closed and heap arrays on every call; Pool is the Go
//     equivalent, sized to expected concurrency rather than a hardcoded 2.
package pathfinder

// Version identifies the wire-compatible revision of the search semantics
// this package implements, mirroring the reference implementation's
// module-level version counter that callers pin against.
const Version = 11
