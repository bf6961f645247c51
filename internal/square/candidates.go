package square

import (
	"github.com/henkberendsen/PRINCE/internal/bitset"
	"github.com/henkberendsen/PRINCE/internal/prince"
)

// CandidateSet tracks, for each of the 16 nibble positions of a 64-bit key
// fragment, which of the 16 possible nibble values remain plausible. Each
// mask starts full (0xffff, bit v set means value v is still alive) and
// only shrinks.
type CandidateSet [16]uint16

// NewCandidateSet returns a set with every nibble position fully open.
func NewCandidateSet() CandidateSet {
	var c CandidateSet
	for i := range c {
		c[i] = 0xffff
	}
	return c
}

// Count returns the number of surviving candidates at nibble position n.
func (c CandidateSet) Count(n int) int { return bitset.PopCount(c[n]) }

// Done reports whether every nibble position has collapsed to one
// surviving candidate.
func (c CandidateSet) Done() bool {
	for n := 0; n < 16; n++ {
		if bitset.PopCount(c[n]) != 1 {
			return false
		}
	}
	return true
}

// Extract concatenates the surviving (singleton) candidates in nibble
// order 0..15 into a 64-bit value. Callers must check Done first; if a
// position still has more than one candidate, Extract uses the lowest
// surviving value for that position.
func (c CandidateSet) Extract() uint64 {
	var out uint64
	for n := 0; n < 16; n++ {
		v, ok := bitset.Single(c[n])
		if !ok {
			// Use the lowest surviving candidate; the caller is
			// responsible for having checked Done().
			for i := 0; i < 16; i++ {
				if bitset.Test(c[n], uint8(i)) {
					v = i
					break
				}
			}
		}
		out = out<<4 | uint64(v)
	}
	return out
}

// Eliminate runs one round of the candidate-elimination search (C10) at
// nibble position n: for every surviving guess k in c[n], it computes
// s = XOR_{v : p[n][v]=1} sbox(v ^ k ^ r) and removes k from c[n] if s != 0.
// r is the per-nibble round-constant offset (either RC[11][n] in Phase 1,
// or 0 in Phase 2). The true key nibble always yields s == 0 by the
// integral distinguisher; wrong guesses survive with probability ~1/16
// per call, so Eliminate is meant to be called again with a fresh parity
// table until Count(n) == 1.
func Eliminate(c *CandidateSet, p *ParityTable, n int, r uint8) {
	mask := c[n]
	for k := uint8(0); k < 16; k++ {
		if !bitset.Test(mask, k) {
			continue
		}
		var s uint8
		for v := uint8(0); v < 16; v++ {
			if bitset.Test(p[n], v) {
				s ^= prince.SBoxNibble(v ^ k ^ r)
			}
		}
		if s != 0 {
			c[n] = bitset.Clear(c[n], k)
		}
	}
}
