// Package core provides fundamental types and utilities shared by the puzzle
// engines. It has no external dependencies to keep game logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv divides a by b rounding toward negative infinity.
// Go's / truncates toward zero, which differs for negative operands.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// InBounds reports whether (x, y) lies inside a w by h board.
func InBounds(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
