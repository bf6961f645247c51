// Package bitset provides small generic bit-twiddling helpers for packed
// boolean tables (candidate masks, parity tables).
package bitset

import "golang.org/x/exp/constraints"

// Test reports whether bit k of v is set.
func Test[T constraints.Unsigned, K constraints.Integer](v T, k K) bool {
	return v&(T(1)<<uint(k)) != 0
}

// Set returns v with bit k set.
func Set[T constraints.Unsigned, K constraints.Integer](v T, k K) T {
	return v | (T(1) << uint(k))
}

// Clear returns v with bit k cleared.
func Clear[T constraints.Unsigned, K constraints.Integer](v T, k K) T {
	return v &^ (T(1) << uint(k))
}

// Flip returns v with bit k inverted.
func Flip[T constraints.Unsigned, K constraints.Integer](v T, k K) T {
	return v ^ (T(1) << uint(k))
}

// PopCount counts the number of set bits in v, one per live candidate.
func PopCount[T constraints.Unsigned](v T) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// Single reports whether v has exactly one bit set, and if so returns its
// index.
func Single[T constraints.Unsigned](v T) (idx int, ok bool) {
	if PopCount(v) != 1 {
		return 0, false
	}
	for i := 0; i < 64; i++ {
		if v&(T(1)<<uint(i)) != 0 {
			return i, true
		}
	}
	return 0, false
}
