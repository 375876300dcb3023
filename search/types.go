package search

import (
	"math"

	"github.com/katalvlaran/gridpath/coord"
	"github.com/katalvlaran/gridpath/roomtable"
)

// Goal is one target tile and the Chebyshev range around it that counts as
// "arrived". Range 0 means the goal tile itself.
type Goal struct {
	Pos   coord.WorldPosition
	Range uint32
}

// Status classifies a search outcome that is not itself a Go error: these
// are the soft, documented non-errors a caller must branch on (spec §7).
type Status int

const (
	// StatusOK indicates the search ran to completion (possibly with
	// Incomplete set) and Path is meaningful.
	StatusOK Status = iota
	// StatusUndefined indicates the origin already satisfies a goal (in
	// seek mode) or already satisfies none (in flee mode), or the search
	// was cancelled mid-flight via WithCancel. Path is empty.
	StatusUndefined
	// StatusOriginInaccessible indicates the origin's room could not be
	// registered (soft cap, blocked, or callback rejection). Path is
	// empty.
	StatusOriginInaccessible
)

// Result is the outcome of one Engine.Search call.
type Result struct {
	Status Status
	// Path is destination-first: Path[0] is the destination tile and the
	// last element is one Chebyshev step from origin; origin itself is
	// never included. Empty when Status != StatusOK.
	Path []coord.WorldPosition
	// Ops is the number of JPS expansion steps actually spent.
	Ops uint32
	// Cost is the accumulated movement cost of Path.
	Cost uint32
	// Incomplete reports whether the search exhausted its ops or cost
	// budget before reaching a tile that satisfies a goal; Path is then
	// the best partial route found so far.
	Incomplete bool
}

// Options configures one Engine.Search call. Zero value is meaningless;
// build with DefaultOptions and the With* functional options.
type Options struct {
	PlainCost       uint32
	SwampCost       uint32
	MaxRooms        int
	MaxOps          uint32
	MaxCost         uint32
	Flee            bool
	HeuristicWeight float64
	Cancel          func() bool
}

// Option mutates an Options in place.
type Option func(*Options)

// WithPlainCost overrides the per-step cost of a plain tile (default 1).
func WithPlainCost(cost uint32) Option {
	return func(o *Options) { o.PlainCost = cost }
}

// WithSwampCost overrides the per-step cost of a swamp tile (default 5).
func WithSwampCost(cost uint32) Option {
	return func(o *Options) { o.SwampCost = cost }
}

// WithMaxRooms bounds how many rooms this search may touch, clamped to
// roomtable.MaxRooms (default roomtable.MaxRooms).
func WithMaxRooms(n int) Option {
	return func(o *Options) { o.MaxRooms = n }
}

// WithMaxOps bounds the number of JPS expansion steps (default 2000).
func WithMaxOps(n uint32) Option {
	return func(o *Options) { o.MaxOps = n }
}

// WithMaxCost bounds the accumulated path cost a search will accept before
// reporting an incomplete result (default: unbounded).
func WithMaxCost(cost uint32) Option {
	return func(o *Options) { o.MaxCost = cost }
}

// WithFlee switches the search from seeking the goals to fleeing them
// (default false).
func WithFlee(flee bool) Option {
	return func(o *Options) { o.Flee = flee }
}

// WithHeuristicWeight scales the heuristic term of the priority function.
// Values above 1.0 trade optimality for speed (default 1.0).
func WithHeuristicWeight(weight float64) Option {
	return func(o *Options) { o.HeuristicWeight = weight }
}

// WithCancel installs a poll hook consulted after every expansion step; a
// true return aborts the search with StatusUndefined (default: never
// cancels).
func WithCancel(fn func() bool) Option {
	return func(o *Options) { o.Cancel = fn }
}

// DefaultOptions returns the baseline configuration With* options mutate.
func DefaultOptions() Options {
	return Options{
		PlainCost:       1,
		SwampCost:       5,
		MaxRooms:        roomtable.MaxRooms,
		MaxOps:          2000,
		MaxCost:         math.MaxUint32,
		HeuristicWeight: 1.0,
	}
}
