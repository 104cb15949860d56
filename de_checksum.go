package postwire

// ChecksumVerifier mirrors Checksum on the read side: every Pop/TakeN
// updates the running digest with the bytes observed, and Finalize reads
// the trailing WidthBits()/8 little-endian digest bytes off the downstream
// source, compares them against what was computed, and fails with
// ErrBadCRC on mismatch before finalizing downstream.
type ChecksumVerifier struct {
	down DeserializeFlavor
	crc  CRC
}

// NewChecksumVerifier wraps down, verifying against the named algorithm
// crc on Finalize.
func NewChecksumVerifier(down DeserializeFlavor, crc CRC) *ChecksumVerifier {
	return &ChecksumVerifier{down: down, crc: crc}
}

func (c *ChecksumVerifier) Pop() (byte, error) {
	b, err := c.down.Pop()
	if err != nil {
		return 0, err
	}
	c.crc.Update([]byte{b})
	return b, nil
}

func (c *ChecksumVerifier) TakeN(ct int) ([]byte, error) {
	b, err := c.down.TakeN(ct)
	if err != nil {
		return nil, err
	}
	c.crc.Update(b)
	return b, nil
}

func (c *ChecksumVerifier) TakeNTemp(ct int) ([]byte, error) {
	b, err := c.down.TakeNTemp(ct)
	if err != nil {
		return nil, err
	}
	c.crc.Update(b)
	return b, nil
}

func (c *ChecksumVerifier) SizeHint() (int, bool) { return c.down.SizeHint() }

func (c *ChecksumVerifier) Finalize() ([]byte, error) {
	n := c.crc.WidthBits() / 8
	trailer, err := c.down.TakeNTemp(n)
	if err != nil {
		return nil, err
	}
	var got uint64
	for i := 0; i < n; i++ {
		got |= uint64(trailer[i]) << (8 * i)
	}
	if got != c.crc.Sum() {
		return nil, newErr("checksum_verifier.finalize", ErrBadCRC)
	}
	return c.down.Finalize()
}
