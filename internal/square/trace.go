package square

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// TraceEntry records one oracle call made during an attack run.
type TraceEntry struct {
	Plaintext  uint64
	Ciphertext uint64
}

// Trace accumulates oracle calls for offline diagnosis of a run that
// failed to converge (see ConvergenceError). It is entirely optional:
// RecoverKey never allocates one unless a caller wires an oracle wrapper
// that records into it.
type Trace struct {
	entries []TraceEntry
}

// Record appends one oracle call to the trace.
func (t *Trace) Record(plaintext, ciphertext uint64) {
	t.entries = append(t.entries, TraceEntry{Plaintext: plaintext, Ciphertext: ciphertext})
}

// Wrap returns an Oracle that forwards to oracle and records every call.
func (t *Trace) Wrap(oracle Oracle) Oracle {
	return func(pt uint64) uint64 {
		ct := oracle(pt)
		t.Record(pt, ct)
		return ct
	}
}

func (t *Trace) serialize() []byte {
	buf := make([]byte, 16*len(t.entries))
	for i, e := range t.entries {
		binary.BigEndian.PutUint64(buf[16*i:], e.Plaintext)
		binary.BigEndian.PutUint64(buf[16*i+8:], e.Ciphertext)
	}
	return buf
}

// Fingerprint returns a blake2b-256 digest of the recorded entries, so two
// trace dumps can be compared for equality without diffing their full
// contents.
func (t *Trace) Fingerprint() [32]byte {
	return blake2b.Sum256(t.serialize())
}

// WriteCompressed zstd-compresses the trace and writes it to w.
func (t *Trace) WriteCompressed(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := enc.Write(t.serialize()); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
