package postwire

import (
	"io"
	"sync"
)

// SliceSink wraps a caller-owned []byte and writes at a cursor, refusing to
// grow past its end — the storage flavor to reach for when the destination
// buffer is fixed (a DMA ring, a stack buffer) and running out of room is a
// real failure mode rather than something to paper over with allocation.
type SliceSink struct {
	buf    []byte
	cursor int
}

// NewSliceSink builds a SliceSink over buf. The sink never reallocates buf;
// Finalize returns the written prefix.
func NewSliceSink(buf []byte) *SliceSink {
	return &SliceSink{buf: buf}
}

func (s *SliceSink) Push(b byte) error {
	if s.cursor == len(s.buf) {
		return newErr("slice_sink.push", ErrBufferFull)
	}
	s.buf[s.cursor] = b
	s.cursor++
	return nil
}

func (s *SliceSink) Extend(b []byte) error {
	if len(b) > len(s.buf)-s.cursor {
		return newErr("slice_sink.extend", ErrBufferFull)
	}
	copy(s.buf[s.cursor:], b)
	s.cursor += len(b)
	return nil
}

func (s *SliceSink) Finalize() ([]byte, error) {
	return s.buf[:s.cursor], nil
}

// SetAt overwrites an already-written byte, satisfying IndexableSerializeFlavor.
func (s *SliceSink) SetAt(idx int, b byte) { s.buf[idx] = b }

func (s *SliceSink) Len() int { return s.cursor }

// growablePool recycles Growable sinks the way glint's Buffer pool recycles
// encode buffers, so repeated small encodes don't each pay a fresh alloc.
var growablePool = sync.Pool{
	New: func() any { return &Growable{} },
}

// Growable is the storage flavor backed by an owned, growing []byte — the
// flavor to reach for when the final size isn't known up front.
type Growable struct {
	Bytes []byte
}

// NewGrowable returns an empty Growable sink.
func NewGrowable() *Growable { return &Growable{} }

// NewGrowableFromPool acquires a reset Growable from a shared pool. Call
// ReturnToPool once Finalize's result is no longer needed.
func NewGrowableFromPool() *Growable {
	g := growablePool.Get().(*Growable)
	g.Bytes = g.Bytes[:0]
	return g
}

// ReturnToPool releases the sink back to the pool. Using it afterwards is
// undefined.
func (g *Growable) ReturnToPool() {
	growablePool.Put(g)
}

func (g *Growable) Push(b byte) error {
	g.Bytes = append(g.Bytes, b)
	return nil
}

func (g *Growable) Extend(b []byte) error {
	g.Bytes = append(g.Bytes, b...)
	return nil
}

func (g *Growable) Finalize() ([]byte, error) {
	return g.Bytes, nil
}

func (g *Growable) SetAt(idx int, b byte) { g.Bytes[idx] = b }

func (g *Growable) Len() int { return len(g.Bytes) }

// ExtendSink adapts any byte-accepting collection with an Append-shaped
// method into a SerializeFlavor, mirroring postcard's generic
// `ExtendFlavor<T: Extend<u8>>`. appendFn is called once per Push/Extend.
type ExtendSink struct {
	appendFn func([]byte)
	n        int
}

// NewExtendSink builds an ExtendSink that forwards pushed bytes to appendFn.
func NewExtendSink(appendFn func([]byte)) *ExtendSink {
	return &ExtendSink{appendFn: appendFn}
}

func (e *ExtendSink) Push(b byte) error {
	e.appendFn([]byte{b})
	e.n++
	return nil
}

func (e *ExtendSink) Extend(b []byte) error {
	e.appendFn(b)
	e.n += len(b)
	return nil
}

func (e *ExtendSink) Finalize() ([]byte, error) { return nil, nil }

// Writer is the blocking byte-sink contract from spec.md §6.5: write-all
// semantics (a partial write without an error is not permitted) plus Flush.
type Writer interface {
	io.Writer
	Flush() error
}

// WriterSink wraps an external blocking Writer. Extend performs a single
// write call; Finalize flushes.
type WriterSink struct {
	w Writer
}

// NewWriterSink builds a WriterSink over w.
func NewWriterSink(w Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Push(b byte) error {
	return s.Extend([]byte{b})
}

func (s *WriterSink) Extend(b []byte) error {
	n, err := s.w.Write(b)
	if err != nil {
		return wrapErr("writer_sink.extend", ErrIOPush, err)
	}
	if n != len(b) {
		return wrapErr("writer_sink.extend", ErrIOPush, io.ErrShortWrite)
	}
	return nil
}

func (s *WriterSink) Finalize() ([]byte, error) {
	if err := s.w.Flush(); err != nil {
		return nil, wrapErr("writer_sink.finalize", ErrIOPush, err)
	}
	return nil, nil
}

// SizeMeasurer is a degenerate sink that discards every byte and only
// counts them, used to compute an encoded value's length (collect-str's
// first pass, or a caller that wants to size-check before allocating).
type SizeMeasurer struct {
	n int
}

func (m *SizeMeasurer) Push(b byte) error {
	m.n++
	return nil
}

func (m *SizeMeasurer) Extend(b []byte) error {
	m.n += len(b)
	return nil
}

func (m *SizeMeasurer) Finalize() ([]byte, error) { return nil, nil }

// Len reports the number of bytes observed so far.
func (m *SizeMeasurer) Len() int { return m.n }
