package postwire

import "github.com/dchest/siphash"

// SipHashVerifier mirrors SipHash on the read side, same shape as
// ChecksumVerifier.
type SipHashVerifier struct {
	down DeserializeFlavor
	h    *siphash.Hash64
}

// NewSipHashVerifier wraps down, verifying the trailing 8-byte MAC against
// the 128-bit key (k0, k1) on Finalize.
func NewSipHashVerifier(down DeserializeFlavor, k0, k1 uint64) *SipHashVerifier {
	return &SipHashVerifier{down: down, h: siphash.New64(k0, k1)}
}

func (s *SipHashVerifier) Pop() (byte, error) {
	b, err := s.down.Pop()
	if err != nil {
		return 0, err
	}
	_, _ = s.h.Write([]byte{b})
	return b, nil
}

func (s *SipHashVerifier) TakeN(ct int) ([]byte, error) {
	b, err := s.down.TakeN(ct)
	if err != nil {
		return nil, err
	}
	_, _ = s.h.Write(b)
	return b, nil
}

func (s *SipHashVerifier) TakeNTemp(ct int) ([]byte, error) {
	b, err := s.down.TakeNTemp(ct)
	if err != nil {
		return nil, err
	}
	_, _ = s.h.Write(b)
	return b, nil
}

func (s *SipHashVerifier) SizeHint() (int, bool) { return s.down.SizeHint() }

func (s *SipHashVerifier) Finalize() ([]byte, error) {
	trailer, err := s.down.TakeNTemp(8)
	if err != nil {
		return nil, err
	}
	var got uint64
	for i := 0; i < 8; i++ {
		got |= uint64(trailer[i]) << (8 * i)
	}
	if got != s.h.Sum64() {
		return nil, newErr("siphash_verifier.finalize", ErrBadCRC)
	}
	return s.down.Finalize()
}
