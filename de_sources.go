package postwire

import "io"

// SliceSource is the simple deserialize Flavor wrapping a byte slice with an
// internal cursor. TakeN and TakeNTemp both return sub-slices of the
// original input, so either is safe to call — this source can always
// provide the long-lived borrow.
type SliceSource struct {
	buf    []byte
	cursor int
}

// NewSliceSource wraps buf for sequential reads.
func NewSliceSource(buf []byte) *SliceSource {
	return &SliceSource{buf: buf}
}

func (s *SliceSource) Pop() (byte, error) {
	if s.cursor >= len(s.buf) {
		return 0, newErr("slice_source.pop", ErrUnexpectedEnd)
	}
	b := s.buf[s.cursor]
	s.cursor++
	return b, nil
}

func (s *SliceSource) TakeN(ct int) ([]byte, error) {
	if ct < 0 || s.cursor+ct > len(s.buf) {
		return nil, newErr("slice_source.take_n", ErrUnexpectedEnd)
	}
	out := s.buf[s.cursor : s.cursor+ct]
	s.cursor += ct
	return out, nil
}

func (s *SliceSource) TakeNTemp(ct int) ([]byte, error) {
	return s.TakeN(ct)
}

func (s *SliceSource) SizeHint() (int, bool) {
	return len(s.buf) - s.cursor, true
}

func (s *SliceSource) Finalize() ([]byte, error) {
	return s.buf[s.cursor:], nil
}

// Remaining reports the unread tail without consuming the source, useful
// for callers inspecting progress mid-decode.
func (s *SliceSource) Remaining() []byte {
	return s.buf[s.cursor:]
}

// Reader is the blocking byte-source contract from spec.md §6.5:
// read-exact semantics (a short read without an error is not permitted).
type Reader interface {
	// ReadFull fills buf completely or returns an error, never a short
	// read without one — the same contract io.ReadFull enforces over an
	// io.Reader.
	ReadFull(buf []byte) error
}

// ioReader adapts a plain io.Reader to the Reader contract using
// io.ReadFull, the idiomatic stdlib way to get read-exact semantics.
type ioReader struct{ r io.Reader }

// NewIOReader adapts an io.Reader into the Reader contract this package's
// sources expect.
func NewIOReader(r io.Reader) Reader { return ioReader{r: r} }

func (r ioReader) ReadFull(buf []byte) error {
	_, err := io.ReadFull(r.r, buf)
	return err
}

// ReaderSource wraps a blocking Reader plus a caller-supplied scratch
// buffer. TakeN reads directly into the unused suffix of scratch and
// reserves that region, so the returned bytes stay valid for as long as
// scratch does. TakeNTemp reads into the same unused suffix without
// reserving it, so its result is overwritten by the next TakeN or
// TakeNTemp call.
type ReaderSource struct {
	r       Reader
	scratch []byte
	used    int
}

// NewReaderSource wraps r, using scratch as the backing store TakeN/TakeNTemp
// read into. scratch must be at least as large as all TakeN calls combined
// plus the biggest single TakeNTemp call the caller intends to make.
func NewReaderSource(r Reader, scratch []byte) *ReaderSource {
	return &ReaderSource{r: r, scratch: scratch}
}

func (s *ReaderSource) Pop() (byte, error) {
	var b [1]byte
	if err := s.r.ReadFull(b[:]); err != nil {
		return 0, wrapErr("reader_source.pop", ErrIOPop, err)
	}
	return b[0], nil
}

func (s *ReaderSource) take(ct int, reserve bool) ([]byte, error) {
	if ct < 0 || ct > len(s.scratch)-s.used {
		return nil, newErr("reader_source.take_n", ErrBufferFull)
	}
	region := s.scratch[s.used : s.used+ct]
	if err := s.r.ReadFull(region); err != nil {
		return nil, wrapErr("reader_source.take_n", ErrIOPop, err)
	}
	if reserve {
		s.used += ct
	}
	return region, nil
}

func (s *ReaderSource) TakeN(ct int) ([]byte, error)     { return s.take(ct, true) }
func (s *ReaderSource) TakeNTemp(ct int) ([]byte, error) { return s.take(ct, false) }

func (s *ReaderSource) SizeHint() (int, bool) { return 0, false }

func (s *ReaderSource) Finalize() ([]byte, error) { return nil, nil }
