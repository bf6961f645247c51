package square

import "github.com/henkberendsen/PRINCE/internal/prince"

// peelLastRound inverts one outer round of the cipher — final whitening,
// the last round constant, the S-box, and the M layer — exposing the
// state that feeds the next-to-last S-box layer. khat is a candidate
// "outer key" k0' xor k1, typically the value recovered by Phase 1.
//
// Step 2 deliberately applies the forward M layer, not its inverse: this
// is the standard pre-inversion trick that lets guessing one output
// nibble of M correspond to guessing one input nibble of the next S-box,
// which is exactly what Phase 2's per-nibble candidate search targets.
func peelLastRound(c uint64, khat uint64) prince.State {
	s := prince.Unpack(c ^ khat)
	s = s.XOR(prince.RC(11))
	s = prince.SubSBox(s)
	s = prince.MLayerExported(s)
	s = s.XOR(prince.RC(10))
	return s
}
