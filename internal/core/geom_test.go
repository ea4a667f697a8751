package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		input, expected int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
	}

	for _, tc := range tests {
		result := Abs(tc.input)
		if result != tc.expected {
			t.Errorf("Abs(%d) = %d, expected %d", tc.input, result, tc.expected)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{6, 3, 2},
		{7, 3, 2},
		{0, 3, 0},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{-6, 3, -2},
		{1, -3, -1},
	}

	for _, tc := range tests {
		result := FloorDiv(tc.a, tc.b)
		if result != tc.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, result, tc.expected)
		}
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 2, 1, true},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x at width", 3, 0, false},
		{"y at height", 0, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBounds(tc.x, tc.y, 3, 2); got != tc.expected {
				t.Errorf("InBounds(%d, %d, 3, 2) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}
