package postwire

// Cobs is the write-side Consistent-Overhead Byte Stuffing middleware from
// spec.md §4.3. It guarantees the framed stream contains no 0x00 byte
// except the single sentinel Finalize appends, by keeping a running "code"
// (the distance to the next zero, or to the next forced run break at 254
// bytes) and an index into the downstream flavor pointing at the
// placeholder byte that gets overwritten once the run it opens closes.
//
// Downstream must support overwriting a previously pushed byte by index
// (IndexableSerializeFlavor) — that requirement is enforced at compile
// time by NewCobs's parameter type: a sink without SetAt/Len does not
// type-check as its argument.
type Cobs struct {
	down        IndexableSerializeFlavor
	placeholder int
	code        byte
}

// NewCobs wraps down in a COBS framer. It pushes the leading placeholder
// byte immediately, so an error here means down was already full.
func NewCobs(down IndexableSerializeFlavor) (*Cobs, error) {
	c := &Cobs{down: down, code: 1}
	if err := down.Push(0); err != nil {
		return nil, err
	}
	c.placeholder = down.Len() - 1
	return c, nil
}

func (c *Cobs) openRun() error {
	if err := c.down.Push(0); err != nil {
		return err
	}
	c.placeholder = c.down.Len() - 1
	c.code = 1
	return nil
}

func (c *Cobs) closeRun() error {
	c.down.SetAt(c.placeholder, c.code)
	return c.openRun()
}

func (c *Cobs) Push(b byte) error {
	if b != 0 {
		if err := c.down.Push(b); err != nil {
			return err
		}
		c.code++
		if c.code == 0xFF {
			return c.closeRun()
		}
		return nil
	}
	return c.closeRun()
}

func (c *Cobs) Extend(b []byte) error {
	for _, x := range b {
		if err := c.Push(x); err != nil {
			return err
		}
	}
	return nil
}

// Finalize writes the final run's code into its placeholder, appends the
// 0x00 terminator, and finalizes the downstream flavor.
func (c *Cobs) Finalize() ([]byte, error) {
	c.down.SetAt(c.placeholder, c.code)
	if err := c.down.Push(0); err != nil {
		return nil, err
	}
	return c.down.Finalize()
}

// cobsMaxOverhead returns the maximum number of extra bytes Cobs adds over
// an n-byte payload: floor(n/254)+1 run-length bytes (a payload of 0 bytes,
// or a run of 254 non-zero bytes at the end, still opens one more run) plus
// the trailing sentinel.
func cobsMaxOverhead(n int) int {
	return n/254 + 2
}

// EncodeCobs is a convenience one-shot: COBS-frame payload into a fresh
// Growable sink and return the framed bytes (including the trailing 0x00).
func EncodeCobs(payload []byte) ([]byte, error) {
	down := NewGrowable()
	c, err := NewCobs(down)
	if err != nil {
		return nil, err
	}
	if err := c.Extend(payload); err != nil {
		return nil, err
	}
	return c.Finalize()
}
