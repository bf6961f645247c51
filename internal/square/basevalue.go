package square

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/chacha20"
)

// BaseValueSource produces successive "base" values for the integral
// plaintext sets: the attack is agnostic to the distribution of base
// values as long as fresh ones keep arriving, so this is pluggable. Next
// returns a value in [0, 2^bits).
type BaseValueSource interface {
	Next(bits uint) uint64
}

// CounterSource is the simplest source: a counter seeded once and
// incremented on every call, wrapping to zero on overflow of the
// requested bit width.
type CounterSource struct {
	cur uint64
}

// NewCounterSource returns a CounterSource seeded with a value drawn from
// crypto/rand, so repeated attack runs against the same oracle do not
// retrace the same plaintexts.
func NewCounterSource() (*CounterSource, error) {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	return &CounterSource{cur: binary.BigEndian.Uint64(seed[:])}, nil
}

// Next implements BaseValueSource.
func (c *CounterSource) Next(bits uint) uint64 {
	mask := uint64(1)<<bits - 1
	c.cur = (c.cur + 1) & mask
	return c.cur
}

// SipHashSource draws base values from a keyed SipHash PRF applied to an
// incrementing counter, rather than using the counter directly.
type SipHashSource struct {
	k0, k1  uint64
	counter uint64
}

// NewSipHashSource returns a source keyed from crypto/rand.
func NewSipHashSource() (*SipHashSource, error) {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	return &SipHashSource{
		k0: binary.BigEndian.Uint64(seed[:8]),
		k1: binary.BigEndian.Uint64(seed[8:]),
	}, nil
}

// Next implements BaseValueSource.
func (s *SipHashSource) Next(bits uint) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], s.counter)
	s.counter++
	h := siphash.Hash(s.k0, s.k1, buf[:])
	return h & (uint64(1)<<bits - 1)
}

// ChaCha20Source draws base values from a ChaCha20 keystream seeded from
// crypto/rand, giving cryptographically strong (rather than merely
// distinct) base values.
type ChaCha20Source struct {
	stream *chacha20.Cipher
}

// NewChaCha20Source returns a source keyed and seeded from crypto/rand.
func NewChaCha20Source() (*ChaCha20Source, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, err
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &ChaCha20Source{stream: stream}, nil
}

// Next implements BaseValueSource.
func (s *ChaCha20Source) Next(bits uint) uint64 {
	var zero, out [8]byte
	s.stream.XORKeyStream(out[:], zero[:])
	return binary.BigEndian.Uint64(out[:]) & (uint64(1)<<bits - 1)
}
