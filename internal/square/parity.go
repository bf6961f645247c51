// Package square implements integral ("Square") key-recovery attacks
// against round-reduced PRINCE: structured plaintext multisets are
// encrypted under a fixed unknown key, the resulting ciphertexts are
// folded into a parity table per nibble position, and a candidate-
// elimination search recovers the key nibble by nibble.
package square

import "github.com/henkberendsen/PRINCE/internal/bitset"

// ParityTable compresses a multiset of 64-bit ciphertexts into a 16x16
// bit table: ParityTable[n] has bit v set iff an odd number of ciphertexts
// in the multiset had value v at nibble position n. It occupies 32 bytes
// regardless of the size of the multiset it has absorbed.
type ParityTable [16]uint16

// Reset clears the table to represent the empty multiset.
func (p *ParityTable) Reset() {
	*p = ParityTable{}
}

// Flip folds one more 64-bit ciphertext into the table.
func (p *ParityTable) Flip(c uint64) {
	for n := 0; n < 16; n++ {
		v := (c >> (60 - 4*uint(n))) & 0xf
		p[n] = bitset.Flip(p[n], v)
	}
}

// FlipNibble folds a single nibble value directly into one position of the
// table, used by the peeled-ciphertext path (C8 then C9) where the caller
// has already decomposed a partially-decrypted block into nibbles.
func (p *ParityTable) FlipNibble(n int, v uint8) {
	p[n] = bitset.Flip(p[n], v)
}

// XORSum returns XOR_{v : P[n][v]=1} v, the reconstructed multiset-XOR of
// nibble n across every ciphertext absorbed into the table.
func (p *ParityTable) XORSum(n int) uint8 {
	var x uint8
	for v := uint8(0); v < 16; v++ {
		if bitset.Test(p[n], v) {
			x ^= v
		}
	}
	return x
}
