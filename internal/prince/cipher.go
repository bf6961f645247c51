package prince

import "errors"

// ErrInvalidRounds is returned when a caller asks for a round count outside
// the cipher's supported range [4,12]. A round count outside this range is
// a programmer error, not a runtime condition the cipher can recover from.
var ErrInvalidRounds = errors.New("prince: invalid round count")

// MinRounds and MaxRounds bound the round-reduced variants this package
// supports; Decrypt is only defined at MaxRounds.
const (
	MinRounds = 4
	MaxRounds = 12
)

// Key is a PRINCE 128-bit key, represented as the pair (K0, K1) from the
// original construction.
type Key struct {
	K0, K1 uint64
}

// Encrypt encrypts the 64-bit block m under key k using the rounds-round
// PRINCE construction. rounds must be in [MinRounds,MaxRounds].
func Encrypt(k Key, m uint64, rounds int) (uint64, error) {
	if rounds < MinRounds || rounds > MaxRounds {
		return 0, ErrInvalidRounds
	}
	return encryptUnchecked(k, m, rounds), nil
}

// encryptUnchecked performs the same computation as Encrypt without
// validating rounds; it is used internally by callers (such as the
// attack engine) that have already fixed rounds to a known-good value.
func encryptUnchecked(k Key, m uint64, rounds int) uint64 {
	k0Prime := deriveK0Prime(k.K0)
	x := k.K0 ^ m
	y := core(k.K1, x, rounds)
	return k0Prime ^ y
}

// Decrypt decrypts the 64-bit block c under key k using the full 12-round
// PRINCE construction, by way of the alpha-reflection property: decryption
// under (k0,k1) is encryption under (k0, k1^alpha) with the input/output
// whitening order reversed.
func Decrypt(k Key, c uint64) uint64 {
	k0Prime := deriveK0Prime(k.K0)
	x := k0Prime ^ c
	y := core(k.K1^alpha, x, MaxRounds)
	return k.K0 ^ y
}
