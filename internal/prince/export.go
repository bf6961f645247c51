package prince

// SubSBox applies the forward S-box to every nibble of s. It, along with
// MLayerExported, exists so that the integral attack engine (package
// square) can reproduce the last-round peeling transform (C8 in the
// design) without duplicating PRINCE's internals.
func SubSBox(s State) State { return subNibbles(s, sbox) }

// SubInvSBox applies the inverse S-box to every nibble of s.
func SubInvSBox(s State) State { return subNibbles(s, invSBox) }

// MLayerExported applies the composed linear layer M = ShiftRows . M'.
func MLayerExported(s State) State { return mLayer(s) }

// MPrimeExported applies the involutive mixing layer M' in isolation.
func MPrimeExported(s State) State { return mPrime(s) }

// InvertK0Prime recovers k0 from the derived whitening key k0' = k0'
// (Phase 3 of the attack engine: it knows k0'^k1 and k1, so it XORs them
// to get k0' and then needs this inverse to recover k0).
func InvertK0Prime(k0Prime uint64) uint64 { return invertK0Prime(k0Prime) }

// DeriveK0Prime computes k0' from k0. Exported so tests outside this
// package can independently compute the extended key k0'^k1 that Phase 1
// of the attack engine targets.
func DeriveK0Prime(k0 uint64) uint64 { return deriveK0Prime(k0) }
