package prince

import (
	"math/rand"
	"testing"
)

func randomState(r *rand.Rand) State {
	var s State
	for i := range s {
		s[i] = uint8(r.Intn(16))
	}
	return s
}

func TestMPrimeInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		s := randomState(r)
		if got := mPrime(mPrime(s)); got != s {
			t.Fatalf("mPrime(mPrime(%v)) = %v, want %v", s, got, s)
		}
	}
}

func TestShiftRowsInverse(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		s := randomState(r)
		if got := invShiftRows(shiftRows(s)); got != s {
			t.Fatalf("invShiftRows(shiftRows(%v)) = %v, want %v", s, got, s)
		}
	}
}

func TestMLayerInverse(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		s := randomState(r)
		if got := invMLayer(mLayer(s)); got != s {
			t.Fatalf("invMLayer(mLayer(%v)) = %v, want %v", s, got, s)
		}
	}
}
