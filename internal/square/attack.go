package square

import (
	"errors"
	"fmt"

	"github.com/henkberendsen/PRINCE/internal/bitset"
	"github.com/henkberendsen/PRINCE/internal/prince"
)

// Oracle is the only contract the attack engine has with the outside
// world: a callable that encrypts a 64-bit block under a fixed, unknown
// 128-bit key and a fixed, known round count.
type Oracle func(plaintext uint64) uint64

// ErrDidNotConverge is returned when Options.MaxBaseValues is positive and
// a phase exhausts it without every candidate set collapsing to a single
// value.
var ErrDidNotConverge = errors.New("square: key recovery did not converge")

// ConvergenceError carries the residual candidate sets of the phase that
// failed to converge, for diagnosis.
type ConvergenceError struct {
	Phase      string
	Candidates CandidateSet
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("square: %s did not converge within the base-value budget", e.Phase)
}

func (e *ConvergenceError) Unwrap() error { return ErrDidNotConverge }

// Options configures a key-recovery run.
type Options struct {
	// Source supplies base values; if nil, a CounterSource seeded from
	// crypto/rand is used.
	Source BaseValueSource
	// MaxBaseValues bounds, per phase, how many base values may be drawn
	// before giving up. Zero means unbounded.
	MaxBaseValues int
}

// Diagnostics reports attack-engine bookkeeping that is outside the
// minimal key-recovery contract but cheap to carry and useful to a caller
// deciding whether an attack run behaved as expected.
type Diagnostics struct {
	// SBoxOperations counts every S-box evaluation performed while
	// recovering the key.
	SBoxOperations int64
	// BaseValuesTried[i] counts the base values consumed by phase i+1
	// (Phase 3 never draws base values, so BaseValuesTried[2] is always 0).
	BaseValuesTried [3]int
}

// RecoverKey runs the three-phase integral key-recovery attack against a
// round-reduced PRINCE oracle (rounds must be 4 or 5, the only variants
// the reference attack targets) and returns the full 128-bit key.
func RecoverKey(oracle Oracle, rounds int, opts Options) (prince.Key, Diagnostics, error) {
	if rounds != 4 && rounds != 5 {
		return prince.Key{}, Diagnostics{}, fmt.Errorf("square: unsupported round count %d (want 4 or 5)", rounds)
	}
	src := opts.Source
	if src == nil {
		s, err := NewCounterSource()
		if err != nil {
			return prince.Key{}, Diagnostics{}, err
		}
		src = s
	}

	var diag Diagnostics

	kLast, err := runPhase1(oracle, rounds, src, opts.MaxBaseValues, &diag)
	if err != nil {
		return prince.Key{}, diag, err
	}

	k1, err := runPhase2(oracle, rounds, src, opts.MaxBaseValues, kLast, &diag)
	if err != nil {
		return prince.Key{}, diag, err
	}

	k0Prime := kLast ^ k1
	k0 := prince.InvertK0Prime(k0Prime)

	return prince.Key{K0: k0, K1: k1}, diag, nil
}

// RecoverLastNibble runs only nibble 15 of Phase 1 and returns its
// recovered value. It exists as a minimal, independently testable way to
// exercise the candidate-elimination primitive (C10) end to end.
func RecoverLastNibble(oracle Oracle, rounds int, src BaseValueSource, maxBaseValues int) (uint8, error) {
	if src == nil {
		s, err := NewCounterSource()
		if err != nil {
			return 0, err
		}
		src = s
	}
	const nibble = 15
	bits, build := phase1SetBuilder(rounds)
	candidates := NewCandidateSet()
	tried := 0
	for candidates.Count(nibble) > 1 {
		if maxBaseValues > 0 && tried >= maxBaseValues {
			return 0, &ConvergenceError{Phase: "Phase1(single-nibble)", Candidates: candidates}
		}
		tried++
		base := src.Next(bits)
		var table ParityTable
		for _, pt := range build(base) {
			table.Flip(oracle(pt))
		}
		Eliminate(&candidates, &table, nibble, prince.RCNibble(11, nibble))
	}
	v, _ := bitset.Single(candidates[nibble])
	return uint8(v), nil
}

// phase1SetBuilder returns the base-value bit width and plaintext-set
// builder appropriate for the given round count's Phase 1.
func phase1SetBuilder(rounds int) (uint, func(uint64) []uint64) {
	if rounds == 5 {
		return twelveBitBaseBits, func(base uint64) []uint64 {
			set := twelveBitSet(base)
			return set[:]
		}
	}
	return singleNibbleBaseBits, func(base uint64) []uint64 {
		set := singleNibbleSet(base)
		return set[:]
	}
}

// phase2SetBuilder returns the base-value bit width and plaintext-set
// builder appropriate for the given round count's Phase 2.
func phase2SetBuilder(rounds int) (uint, func(uint64) []uint64) {
	if rounds == 5 {
		return singleNibbleBaseBits, func(base uint64) []uint64 {
			set := singleNibbleSet(base)
			return set[:]
		}
	}
	return diagonalBaseBits, func(base uint64) []uint64 {
		set := diagonalSet(base)
		return set[:]
	}
}

func runPhase1(oracle Oracle, rounds int, src BaseValueSource, maxBaseValues int, diag *Diagnostics) (uint64, error) {
	bits, build := phase1SetBuilder(rounds)
	candidates := NewCandidateSet()
	for !candidates.Done() {
		if maxBaseValues > 0 && diag.BaseValuesTried[0] >= maxBaseValues {
			return 0, &ConvergenceError{Phase: "Phase1", Candidates: candidates}
		}
		diag.BaseValuesTried[0]++
		base := src.Next(bits)
		plaintexts := build(base)

		var table ParityTable
		for _, pt := range plaintexts {
			diag.SBoxOperations += int64(16 * rounds)
			table.Flip(oracle(pt))
		}

		for n := 0; n < 16; n++ {
			if candidates.Count(n) <= 1 {
				continue
			}
			before := candidates.Count(n)
			Eliminate(&candidates, &table, n, prince.RCNibble(11, n))
			diag.SBoxOperations += int64(before * 16)
		}
	}
	return candidates.Extract(), nil
}

func runPhase2(oracle Oracle, rounds int, src BaseValueSource, maxBaseValues int, kLast uint64, diag *Diagnostics) (uint64, error) {
	bits, build := phase2SetBuilder(rounds)
	candidates := NewCandidateSet()
	for !candidates.Done() {
		if maxBaseValues > 0 && diag.BaseValuesTried[1] >= maxBaseValues {
			return 0, &ConvergenceError{Phase: "Phase2", Candidates: candidates}
		}
		diag.BaseValuesTried[1]++
		base := src.Next(bits)
		plaintexts := build(base)

		var table ParityTable
		for _, pt := range plaintexts {
			diag.SBoxOperations += int64(16*rounds + 16)
			c := oracle(pt)
			peeled := peelLastRound(c, kLast)
			for n := 0; n < 16; n++ {
				table.FlipNibble(n, peeled[n])
			}
		}

		for n := 0; n < 16; n++ {
			if candidates.Count(n) <= 1 {
				continue
			}
			before := candidates.Count(n)
			Eliminate(&candidates, &table, n, 0)
			diag.SBoxOperations += int64(before * 16)
		}
	}
	return candidates.Extract(), nil
}

