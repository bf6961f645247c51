package prince

// sbox is PRINCE's 4-bit substitution table and invSBox its inverse.
var sbox = [16]uint8{0xb, 0xf, 0x3, 0x2, 0xa, 0xc, 0x9, 0x1, 0x6, 0x7, 0x8, 0x0, 0xe, 0x5, 0xd, 0x4}

var invSBox = [16]uint8{0xb, 0x7, 0x3, 0x2, 0xf, 0xd, 0x8, 0x9, 0xa, 0x6, 0x4, 0x0, 0x5, 0xe, 0xc, 0x1}

func subNibbles(s State, box [16]uint8) State {
	var out State
	for i, n := range s {
		out[i] = box[n]
	}
	return out
}

// SBoxNibble applies the forward S-box to a single nibble. It is exported
// for the integral attack engine (package square), which needs S-box
// lookups on isolated nibble guesses rather than whole states.
func SBoxNibble(x uint8) uint8 { return sbox[x&0xf] }

// RCNibble returns nibble n of round constant RC[i].
func RCNibble(i, n int) uint8 { return roundConstants[i][n] }

// roundConstants holds the 12 round constants RC[0..11], 16 nibbles each.
var roundConstants = [12]State{
	{0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0},
	{0x1, 0x3, 0x1, 0x9, 0x8, 0xa, 0x2, 0xe, 0x0, 0x3, 0x7, 0x0, 0x7, 0x3, 0x4, 0x4},
	{0xa, 0x4, 0x0, 0x9, 0x3, 0x8, 0x2, 0x2, 0x2, 0x9, 0x9, 0xf, 0x3, 0x1, 0xd, 0x0},
	{0x0, 0x8, 0x2, 0xe, 0xf, 0xa, 0x9, 0x8, 0xe, 0xc, 0x4, 0xe, 0x6, 0xc, 0x8, 0x9},
	{0x4, 0x5, 0x2, 0x8, 0x2, 0x1, 0xe, 0x6, 0x3, 0x8, 0xd, 0x0, 0x1, 0x3, 0x7, 0x7},
	{0xb, 0xe, 0x5, 0x4, 0x6, 0x6, 0xc, 0xf, 0x3, 0x4, 0xe, 0x9, 0x0, 0xc, 0x6, 0xc},
	{0x7, 0xe, 0xf, 0x8, 0x4, 0xf, 0x7, 0x8, 0xf, 0xd, 0x9, 0x5, 0x5, 0xc, 0xb, 0x1},
	{0x8, 0x5, 0x8, 0x4, 0x0, 0x8, 0x5, 0x1, 0xf, 0x1, 0xa, 0xc, 0x4, 0x3, 0xa, 0xa},
	{0xc, 0x8, 0x8, 0x2, 0xd, 0x3, 0x2, 0xf, 0x2, 0x5, 0x3, 0x2, 0x3, 0xc, 0x5, 0x4},
	{0x6, 0x4, 0xa, 0x5, 0x1, 0x1, 0x9, 0x5, 0xe, 0x0, 0xe, 0x3, 0x6, 0x1, 0x0, 0xd},
	{0xd, 0x3, 0xb, 0x5, 0xa, 0x3, 0x9, 0x9, 0xc, 0xa, 0x0, 0xc, 0x2, 0x3, 0x9, 0x9},
	{0xc, 0x0, 0xa, 0xc, 0x2, 0x9, 0xb, 0x7, 0xc, 0x9, 0x7, 0xc, 0x5, 0x0, 0xd, 0xd},
}

// RC returns the i-th round constant, i in [0,11].
func RC(i int) State { return roundConstants[i] }

// alpha is PRINCE's fixed reflection constant: RC[i] ^ RC[11-i] == alpha
// for every i, which is what makes Decrypt reducible to Encrypt.
const alpha uint64 = 0xc0ac29b7c97c50dd
