package postwire

import "github.com/dchest/siphash"

// SipHash is a keyed-MAC alternative to Checksum, for links that need
// tamper evidence rather than plain bit-error detection. It follows the
// exact same middleware shape as Checksum (update digest, forward bytes,
// append trailer on Finalize) but the digest only verifies if both ends
// share the key — SnellerInc/sneller uses this same library, as a keyed
// hash for partitioning rather than a general CRC.
type SipHash struct {
	down SerializeFlavor
	h    *siphash.Hash64
}

// NewSipHash wraps down, MACing every byte pushed through with the 128-bit
// key (k0, k1). Finalize appends the 8-byte little-endian MAC.
func NewSipHash(down SerializeFlavor, k0, k1 uint64) *SipHash {
	return &SipHash{down: down, h: siphash.New64(k0, k1)}
}

func (s *SipHash) Push(b byte) error {
	_, _ = s.h.Write([]byte{b})
	return s.down.Push(b)
}

func (s *SipHash) Extend(b []byte) error {
	_, _ = s.h.Write(b)
	return s.down.Extend(b)
}

func (s *SipHash) Finalize() ([]byte, error) {
	sum := s.h.Sum64()
	trailer := make([]byte, 8)
	for i := 0; i < 8; i++ {
		trailer[i] = byte(sum >> (8 * i))
	}
	if err := s.down.Extend(trailer); err != nil {
		return nil, err
	}
	return s.down.Finalize()
}
