package flipsquare

import (
	"slices"

	"github.com/gammazero/deque"
)

// searchNode is one frontier entry of the solver: a board and the flips
// that produced it from the starting board.
type searchNode struct {
	grid  Grid
	flips []int
}

// Solve finds a shortest sequence of flip indices that turns g into the
// solved grid. Each index is the center passed to FlipNeighbors.
//
// The search is breadth-first, so the first solution found has the fewest
// flips. A board is never enqueued twice, and an index already used on a path
// is not used again on that path (flips are self-inverse, so repeating one
// only undoes it). Returns false if no solution exists under these rules.
func Solve(g Grid) ([]int, bool) {
	var queue deque.Deque[searchNode]
	queue.PushBack(searchNode{grid: g})

	visited := map[Grid]struct{}{g: {}}

	for queue.Len() > 0 {
		node := queue.PopFront()
		if node.grid.IsSolved() {
			return node.flips, true
		}

		for i := range CellCount {
			if slices.Contains(node.flips, i) {
				continue
			}
			next := FlipNeighbors(CoordinateFromIndex(i), node.grid)
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}

			flips := make([]int, len(node.flips), len(node.flips)+1)
			copy(flips, node.flips)
			queue.PushBack(searchNode{grid: next, flips: append(flips, i)})
		}
	}

	return nil, false
}
