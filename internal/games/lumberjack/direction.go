package lumberjack

import (
	"fmt"
	"strings"
)

// Direction is the way a tree falls when chopped.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// String returns the single-letter direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North increases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// logOrientations returns the orientations of the first, middle and last
// segments of a log felled in this direction.
func (d Direction) logOrientations() (first, middle, last Orientation) {
	switch d {
	case North:
		return OrientN, OrientNS, OrientS
	case South:
		return OrientS, OrientNS, OrientN
	case East:
		return OrientE, OrientEW, OrientW
	default:
		return OrientW, OrientEW, OrientE
	}
}

// ParseDirection parses "N", "north", "s", ... into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "n", "north":
		return North, nil
	case "s", "south":
		return South, nil
	case "e", "east":
		return East, nil
	case "w", "west":
		return West, nil
	default:
		return 0, fmt.Errorf("lumberjack: unknown direction %q", s)
	}
}
