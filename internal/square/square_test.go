package square

import (
	"math/rand"
	"testing"

	"github.com/henkberendsen/PRINCE/internal/prince"
)

func oracleFor(k prince.Key, rounds int) Oracle {
	return func(pt uint64) uint64 {
		ct, err := prince.Encrypt(k, pt, rounds)
		if err != nil {
			panic(err)
		}
		return ct
	}
}

func randomKey(r *rand.Rand) prince.Key {
	return prince.Key{K0: r.Uint64(), K1: r.Uint64()}
}

func TestRecoverKey4Round(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		secret := randomKey(r)
		got, _, err := RecoverKey(oracleFor(secret, 4), 4, Options{})
		if err != nil {
			t.Fatalf("trial %d: RecoverKey returned error: %v", trial, err)
		}
		if got != secret {
			t.Fatalf("trial %d: RecoverKey = %+v, want %+v", trial, got, secret)
		}
	}
}

func TestRecoverKey5Round(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 3; trial++ {
		secret := randomKey(r)
		got, _, err := RecoverKey(oracleFor(secret, 5), 5, Options{})
		if err != nil {
			t.Fatalf("trial %d: RecoverKey returned error: %v", trial, err)
		}
		if got != secret {
			t.Fatalf("trial %d: RecoverKey = %+v, want %+v", trial, got, secret)
		}
	}
}

func TestRecoverLastNibble(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for trial := 0; trial < 5; trial++ {
		secret := randomKey(r)
		k0Prime := secret.K0 // placeholder; unused below
		_ = k0Prime
		want := uint8(extendedKeyNibble(secret, 15))
		got, err := RecoverLastNibble(oracleFor(secret, 4), 4, nil, 0)
		if err != nil {
			t.Fatalf("trial %d: RecoverLastNibble returned error: %v", trial, err)
		}
		if got != want {
			t.Fatalf("trial %d: RecoverLastNibble = %#x, want %#x", trial, got, want)
		}
	}
}

// extendedKeyNibble returns nibble n of k0' ^ k1, the target of Phase 1.
func extendedKeyNibble(k prince.Key, n int) uint8 {
	kLast := prince.DeriveK0Prime(k.K0) ^ k.K1
	return uint8(kLast>>(60-4*uint(n))) & 0xf
}

func TestParityTableEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	var cts []uint64
	for i := 0; i < 64; i++ {
		cts = append(cts, r.Uint64())
	}
	var table ParityTable
	for _, c := range cts {
		table.Flip(c)
	}

	guess := uint8(9)
	offset := prince.RCNibble(11, 3)
	const n = 3

	var direct uint8
	for _, c := range cts {
		v := uint8(c>>(60-4*n)) & 0xf
		direct ^= prince.SBoxNibble(v ^ guess ^ offset)
	}

	var fromTable uint8
	for v := uint8(0); v < 16; v++ {
		if (table[n]>>v)&1 == 1 {
			fromTable ^= prince.SBoxNibble(v ^ guess ^ offset)
		}
	}

	if direct != fromTable {
		t.Fatalf("parity-table reconstruction = %#x, want %#x", fromTable, direct)
	}
}

func TestCandidateSetDoneAndExtract(t *testing.T) {
	c := NewCandidateSet()
	if c.Done() {
		t.Fatal("freshly initialized candidate set reports Done")
	}
	for n := range c {
		c[n] = 1 << uint(n%16)
	}
	if !c.Done() {
		t.Fatal("candidate set with all singleton masks should be Done")
	}
	got := c.Extract()
	var want uint64
	for n := 0; n < 16; n++ {
		want = want<<4 | uint64(n%16)
	}
	if got != want {
		t.Fatalf("Extract() = %#x, want %#x", got, want)
	}
}
