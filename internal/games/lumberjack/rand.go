package lumberjack

import "unicode/utf16"

// The generator below is bit-compatible with the 32-bit xoroshiro128+ and
// uniform integer distribution of the pure-rand JavaScript library, so boards
// generated from a seed string match those of the browser version of the game.

// stringToSeed hashes a string to a 32-bit seed (h = h*31 + unit) over its
// UTF-16 code units, wrapping like a JavaScript 32-bit integer.
func stringToSeed(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	return h
}

// xoroshiro128plus holds the 128-bit state as four 32-bit halves.
type xoroshiro128plus struct {
	s01, s00, s11, s10 int32
}

func newXoroshiro128plus(seed int32) *xoroshiro128plus {
	return &xoroshiro128plus{s01: -1, s00: ^seed, s11: seed, s10: 0}
}

// next returns a value in [-2^31, 2^31-1] and advances the state.
func (r *xoroshiro128plus) next() int32 {
	out := r.s00 + r.s10

	a0 := r.s10 ^ r.s00
	a1 := r.s11 ^ r.s01
	s00, s01 := r.s00, r.s01

	// s0 = rotl(s0, 24) ^ a ^ (a << 16)
	r.s00 = (s00 << 24) ^ int32(uint32(s01)>>8) ^ a0 ^ (a0 << 16)
	r.s01 = (s01 << 24) ^ int32(uint32(s00)>>8) ^ a1 ^ ((a1 << 16) | int32(uint32(a0)>>16))
	// s1 = rotl(a, 37)
	r.s10 = (a1 << 5) ^ int32(uint32(a0)>>27)
	r.s11 = (a0 << 5) ^ int32(uint32(a1)>>27)

	return out
}

// uniformInt draws an integer in [from, to] by rejection sampling.
func (r *xoroshiro128plus) uniformInt(from, to int) int {
	const numValues = 1 << 32
	rangeSize := uint64(to - from + 1)
	maxAllowed := numValues - numValues%rangeSize

	for {
		delta := uint64(int64(r.next()) + 0x80000000)
		if delta < maxAllowed {
			return from + int(delta%rangeSize)
		}
	}
}

// chooseCount returns count distinct values from 0..n-1 using a Fisher-Yates
// shuffle of the whole range.
func (r *xoroshiro128plus) chooseCount(count, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.uniformInt(0, i)
		values[i], values[j] = values[j], values[i]
	}
	return values[:count]
}
