package search

import "github.com/katalvlaran/gridpath/coord"

// Search runs one path search from origin towards (or, in flee mode, away
// from) goals. See Status and Result for how to interpret the outcome; a
// non-nil error is always fatal (missing terrain, a failing room callback,
// or heap exhaustion past roomtable.MaxRooms*2500/8 simultaneously open
// tiles) and Result is then meaningless.
func (e *Engine) Search(origin coord.WorldPosition, goals []Goal, opts ...Option) (Result, error) {
	if len(goals) == 0 {
		return Result{}, ErrNoGoals
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e.table.Clear()
	e.oc.Clear()
	e.heap.Clear()
	e.table.SetMaxRooms(cfg.MaxRooms)
	e.table.SetCosts(cfg.PlainCost, cfg.SwampCost)
	e.goals = goals
	e.flee = cfg.Flee
	e.heuristicWeight = cfg.HeuristicWeight

	// Special-case searching to an already-satisfied node: otherwise the
	// loop below would search the entire reachable area, since the origin
	// tile closes on its first (and only) visit.
	if e.heuristic(origin) == 0 {
		return Result{Status: StatusUndefined}, nil
	}

	roomIndex, err := e.table.RoomIndexFromPos(origin.RoomLocation())
	if err != nil {
		return Result{}, err
	}
	if roomIndex == 0 {
		return Result{Status: StatusOriginInaccessible}, nil
	}

	minNode, err := e.indexFromPos(origin)
	if err != nil {
		return Result{}, err
	}
	if err := e.astar(minNode, origin, 0); err != nil {
		return Result{}, err
	}

	opsRemaining := cfg.MaxOps
	var minNodeH, minNodeG uint32 = maxCostValue, maxCostValue

	for !e.heap.Empty() && opsRemaining > 0 {
		idx, f := e.heap.PopMin()
		e.oc.Close(idx)

		pos := e.posFromIndex(idx)
		h := e.heuristic(pos)
		g := f - uint32(float64(h)*cfg.HeuristicWeight)

		if h == 0 {
			minNode, minNodeH, minNodeG = idx, 0, g
			break
		}
		if h < minNodeH {
			minNode, minNodeH, minNodeG = idx, h, g
		}
		if g+h > cfg.MaxCost {
			break
		}

		if err := e.jps(idx, pos, g); err != nil {
			return Result{}, err
		}
		opsRemaining--

		if cfg.Cancel != nil && cfg.Cancel() {
			return Result{Status: StatusUndefined}, nil
		}
	}

	return Result{
		Status:     StatusOK,
		Path:       e.reconstructPath(minNode, origin),
		Ops:        cfg.MaxOps - opsRemaining,
		Cost:       minNodeG,
		Incomplete: minNodeH != 0,
	}, nil
}

// maxCostValue mirrors the C++ reference's std::numeric_limits<cost_t>::max()
// used to seed min_node_h_cost/min_node_g_cost before the first pop.
const maxCostValue = ^uint32(0)
