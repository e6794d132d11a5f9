// Package fuzzseed expands a small integer seed into a reproducible byte
// stream for property-based tests. Using crypto/rand here would make a
// failing property test impossible to reproduce on the next run; this
// package trades cryptographic unpredictability (which these tests never
// need) for exact repeatability across runs and machines.
package fuzzseed

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"
)

// Stream is a counter-mode SHA-256 expansion of a seed: block i of output is
// sha256(seed || i). It is deterministic and has no relation to any secret
// material — it exists purely to hand test code a long run of "random-looking"
// bytes derived from a small integer.
type Stream struct {
	seed    uint64
	counter uint64
	buf     []byte
}

// New returns a Stream seeded with the given value.
func New(seed uint64) *Stream {
	return &Stream{seed: seed}
}

// Bytes returns the next n bytes of the stream.
func (s *Stream) Bytes(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		if len(s.buf) == 0 {
			s.buf = s.nextBlock()
		}
		take := n - len(out)
		if take > len(s.buf) {
			take = len(s.buf)
		}
		out = append(out, s.buf[:take]...)
		s.buf = s.buf[take:]
	}
	return out
}

// Uint64 returns the next 8 bytes of the stream as a big-endian uint64.
func (s *Stream) Uint64() uint64 {
	return binary.BigEndian.Uint64(s.Bytes(8))
}

func (s *Stream) nextBlock() []byte {
	var in [16]byte
	binary.BigEndian.PutUint64(in[0:8], s.seed)
	binary.BigEndian.PutUint64(in[8:16], s.counter)
	s.counter++
	h := sha256simd.New()
	h.Write(in[:])
	return h.Sum(nil)
}
