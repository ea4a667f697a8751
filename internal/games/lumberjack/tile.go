// Package lumberjack implements a tile-chopping puzzle. Chopping a tree lays
// a straight line of log segments in the chosen direction; aligned log runs
// score points. This package is UI-agnostic and deterministic.
package lumberjack

// Orientation is the role a log segment plays in its run.
type Orientation uint8

const (
	OrientN  Orientation = iota // Southern end of a north-running log
	OrientS                     // Northern end of a north-running log
	OrientE                     // Western end of an east-running log
	OrientW                     // Eastern end of an east-running log
	OrientNS                    // Middle of a vertical log
	OrientEW                    // Middle of a horizontal log
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientN:
		return "N"
	case OrientS:
		return "S"
	case OrientE:
		return "E"
	case OrientW:
		return "W"
	case OrientNS:
		return "NS"
	case OrientEW:
		return "EW"
	default:
		return "Unknown"
	}
}

// Glyph returns the character used to present a log with this orientation.
func (o Orientation) Glyph() byte {
	switch o {
	case OrientN:
		return 'v'
	case OrientS:
		return '^'
	case OrientE:
		return '<'
	case OrientW:
		return '>'
	case OrientNS:
		return '|'
	case OrientEW:
		return '-'
	default:
		return '?'
	}
}

// Tile is the content of one board cell: EmptyTile, TreeTile or LogTile.
// The set is closed; switch on the concrete type to dispatch.
type Tile interface {
	isTile()
}

// EmptyTile is bare ground.
type EmptyTile struct{}

// TreeTile is a standing tree. Chopping it lays Height log segments.
type TreeTile struct {
	Height int
}

// LogTile is one segment of a felled tree.
type LogTile struct {
	Orientation Orientation
}

func (EmptyTile) isTile() {}
func (TreeTile) isTile()  {}
func (LogTile) isTile()   {}

// Empty is the shared empty tile value.
var Empty Tile = EmptyTile{}

// Tree returns a tree tile of the given height.
func Tree(height int) Tile {
	return TreeTile{Height: height}
}

// Log returns a log tile with the given orientation.
func Log(o Orientation) Tile {
	return LogTile{Orientation: o}
}
