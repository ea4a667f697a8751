package lumberjack

import "slices"

// logSearch is one direction to follow from a log segment, and the
// orientations a neighbor must have to continue the same run.
type logSearch struct {
	dir   Direction
	valid []Orientation
}

var (
	searchNorth = logSearch{dir: North, valid: []Orientation{OrientNS, OrientS}}
	searchSouth = logSearch{dir: South, valid: []Orientation{OrientNS, OrientN}}
	searchEast  = logSearch{dir: East, valid: []Orientation{OrientEW, OrientW}}
	searchWest  = logSearch{dir: West, valid: []Orientation{OrientEW, OrientE}}
)

// logSearches maps each orientation to the directions its run extends in.
// End segments look one way; middle segments look both ways.
var logSearches = map[Orientation][]logSearch{
	OrientN:  {searchNorth},
	OrientS:  {searchSouth},
	OrientE:  {searchEast},
	OrientW:  {searchWest},
	OrientNS: {searchNorth, searchSouth},
	OrientEW: {searchEast, searchWest},
}

// CalculateScore returns the total size of all log runs on the board.
// Cells are scanned from the last index to the first; each unvisited log
// segment starts a run that is followed along its axis. A segment belongs to
// at most one run.
func CalculateScore(g Game) int {
	visited := make([]bool, len(g.Grid))
	score := 0
	for i := len(g.Grid) - 1; i >= 0; i-- {
		if visited[i] {
			continue
		}
		score += len(findLog(g, i, visited))
	}
	return score
}

// findLog returns the indices of the log run starting at index and marks them
// visited. Returns nil if index does not hold a log.
func findLog(g Game, index int, visited []bool) []int {
	start, ok := g.Grid[index].(LogTile)
	if !ok {
		return nil
	}
	visited[index] = true
	run := []int{index}

	origin := PositionFromIndex(g.Width, index)
	for _, search := range logSearches[start.Orientation] {
		for pos := origin.Step(search.dir, 1); g.InBounds(pos); pos = pos.Step(search.dir, 1) {
			i := IndexFromPosition(g.Width, pos)
			segment, ok := g.Grid[i].(LogTile)
			if !ok || visited[i] || !slices.Contains(search.valid, segment.Orientation) {
				break
			}
			visited[i] = true
			run = append(run, i)
		}
	}
	return run
}

// Rescore returns g with its score recalculated from the grid.
func Rescore(g Game) Game {
	g.Score = CalculateScore(g)
	return g
}
