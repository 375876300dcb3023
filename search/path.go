package search

import "github.com/katalvlaran/gridpath/coord"

// reconstructPath walks the parent chain from minNode back to origin,
// interpolating straight-line steps between jump points (JPS only records
// the endpoints of a jump, not the tiles it skipped over). The result is
// destination-first: path[0] is minNode itself and the last element is one
// Chebyshev step from origin; origin itself is never included.
func (e *Engine) reconstructPath(minNode int, origin coord.WorldPosition) []coord.WorldPosition {
	var path []coord.WorldPosition

	index := minNode
	pos := e.posFromIndex(index)
	for pos != origin {
		path = append(path, pos)
		index = e.parents[index]
		next := e.posFromIndex(index)
		if next.RangeTo(pos) > 1 {
			dir := pos.DirectionTo(next)
			for {
				pos = pos.PositionInDirection(dir)
				path = append(path, pos)
				if pos.RangeTo(next) <= 1 {
					break
				}
			}
		}
		pos = next
	}

	return path
}
