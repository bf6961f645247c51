package prince

import (
	"math/rand"
	"testing"
)

// TestAlphaReflection exercises the defining property used by Decrypt:
// core(k xor alpha, core(k, m, 12), 12) == m for all (k,m). It only holds
// at MaxRounds.
func TestAlphaReflection(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		k := r.Uint64()
		m := r.Uint64()
		got := core(k^alpha, core(k, m, MaxRounds), MaxRounds)
		if got != m {
			t.Fatalf("core(k^alpha, core(k,m,12), 12) = %#x, want %#x (k=%#x m=%#x)", got, m, k, m)
		}
	}
}

// TestBackwardRoundIndexing locks in the index mapping
// j = i + ceil((R-2)/2) + 12 - R for every supported R by checking that
// every backward-round index it yields lies in [1,10], and that core()
// under R=12 with a zero key reproduces the known test vector, which only holds
// if the full 10 backward+forward rounds use RC[1..10] in the documented
// order.
func TestBackwardRoundIndexing(t *testing.T) {
	for rounds := MinRounds; rounds <= MaxRounds; rounds++ {
		forward := ceilDiv(rounds-2, 2)
		backward := (rounds - 2) / 2
		for i := 1; i <= backward; i++ {
			j := i + forward + 12 - rounds
			if j < 1 || j > 10 {
				t.Fatalf("rounds=%d i=%d: backward round constant index j=%d out of [1,10]", rounds, i, j)
			}
		}
	}
	if got := core(0, 0, MaxRounds); got != 0x818665aa0d02dfda {
		t.Fatalf("core(0,0,12) = %#x, want 0x818665aa0d02dfda", got)
	}
}
