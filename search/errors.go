package search

import "errors"

// Sentinel errors for search operations.
var (
	// ErrNoGoals indicates Search was called with an empty goal set, for
	// which neither seek nor flee mode has a defined heuristic.
	ErrNoGoals = errors.New("search: at least one goal is required")
	// ErrRoomUnavailable indicates a position already validated as
	// reachable by Table.Look turned out to have no registered room index
	// when indexed. This should be unreachable in a correctly driven
	// search and signals a bug upstream if it ever occurs.
	ErrRoomUnavailable = errors.New("search: room unavailable for an already-validated position")
)
