package postwire

// Checksum is the write-side running-checksum middleware from spec.md
// §4.3: every push/extend updates the digest and forwards the bytes
// downstream unchanged; Finalize appends the digest as WidthBits()/8
// little-endian bytes before finalizing downstream. It does not require an
// indexable downstream (unlike Cobs) since it never rewrites a byte it
// already pushed.
type Checksum struct {
	down SerializeFlavor
	crc  CRC
}

// NewChecksum wraps down with a running checksum using the named algorithm
// crc.
func NewChecksum(down SerializeFlavor, crc CRC) *Checksum {
	return &Checksum{down: down, crc: crc}
}

func (c *Checksum) Push(b byte) error {
	c.crc.Update([]byte{b})
	return c.down.Push(b)
}

func (c *Checksum) Extend(b []byte) error {
	c.crc.Update(b)
	return c.down.Extend(b)
}

func (c *Checksum) Finalize() ([]byte, error) {
	sum := c.crc.Sum()
	n := c.crc.WidthBits() / 8
	trailer := make([]byte, n)
	for i := 0; i < n; i++ {
		trailer[i] = byte(sum >> (8 * i))
	}
	if err := c.down.Extend(trailer); err != nil {
		return nil, err
	}
	return c.down.Finalize()
}
