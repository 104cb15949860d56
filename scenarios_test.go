package postwire

import (
	"bytes"
	"testing"
)

// TestPrimitiveRoundTrip is concrete end-to-end scenario 1: the tuple
// (false, -1_i32, 300_u32, "hi") encodes to an exact byte sequence and
// decodes back to the original values.
func TestPrimitiveRoundTrip(t *testing.T) {
	buf := NewGrowable()
	s := NewSerializer(buf)
	if err := s.Bool(false); err != nil {
		t.Fatal(err)
	}
	if err := s.I32(-1); err != nil {
		t.Fatal(err)
	}
	if err := s.U32(300); err != nil {
		t.Fatal(err)
	}
	if err := s.Str("hi"); err != nil {
		t.Fatal(err)
	}
	out, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x00, 0x01, 0xAC, 0x02, 0x02, 0x68, 0x69}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % X want % X", out, want)
	}

	d := NewDeserializer(NewSliceSource(out))
	b, err := d.Bool()
	if err != nil || b != false {
		t.Fatalf("bool: %v %v", b, err)
	}
	i, err := d.I32()
	if err != nil || i != -1 {
		t.Fatalf("i32: %v %v", i, err)
	}
	u, err := d.U32()
	if err != nil || u != 300 {
		t.Fatalf("u32: %v %v", u, err)
	}
	str, err := d.StrTemp()
	if err != nil || str != "hi" {
		t.Fatalf("str: %q %v", str, err)
	}
}

// TestEnumWithPayload is concrete end-to-end scenario 2.
func TestEnumWithPayload(t *testing.T) {
	buf := NewGrowable()
	s := NewSerializer(buf)
	if err := s.VariantIndex(3); err != nil {
		t.Fatal(err)
	}
	if err := s.U16(128); err != nil {
		t.Fatal(err)
	}
	out, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x03, 0x80, 0x01}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % X want % X", out, want)
	}

	d := NewDeserializer(NewSliceSource(out))
	idx, err := d.VariantIndex(8)
	if err != nil || idx != 3 {
		t.Fatalf("variant index: %v %v", idx, err)
	}
	u, err := d.U16()
	if err != nil || u != 128 {
		t.Fatalf("u16: %v %v", u, err)
	}
}

// TestVarintBoundary is concrete end-to-end scenario 3.
func TestVarintBoundary(t *testing.T) {
	buf := NewGrowable()
	s := NewSerializer(buf)
	if err := s.U32(0xFFFFFFFF); err != nil {
		t.Fatal(err)
	}
	out, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % X want % X", out, want)
	}

	d := NewDeserializer(NewSliceSource(out))
	u, err := d.U32()
	if err != nil || u != 0xFFFFFFFF {
		t.Fatalf("u32: %v %v", u, err)
	}

	bad := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x1F}
	_, err = NewDeserializer(NewSliceSource(bad)).U32()
	if err == nil {
		t.Fatal("expected bad-varint error for non-canonical encoding")
	}
	var perr *Error
	if !asPostwireError(err, &perr) || perr.Kind != ErrBadVarint {
		t.Fatalf("expected ErrBadVarint, got %v", err)
	}
}

// TestCobsRoundTripContainingZeros is concrete end-to-end scenario 4.
func TestCobsRoundTripContainingZeros(t *testing.T) {
	buf := NewGrowable()
	s := NewSerializer(buf)
	if err := s.I32(4); err != nil {
		t.Fatal(err)
	}
	if err := s.U8(0); err != nil {
		t.Fatal(err)
	}
	if err := s.U64(4); err != nil {
		t.Fatal(err)
	}
	raw, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x08, 0x00, 0x04}
	if !bytes.Equal(raw, want) {
		t.Fatalf("raw bytes: got % X want % X", raw, want)
	}

	framed, err := EncodeCobs(raw)
	if err != nil {
		t.Fatal(err)
	}
	if framed[len(framed)-1] != 0x00 {
		t.Fatalf("frame must end with 0x00, got % X", framed)
	}
	for i, b := range framed[:len(framed)-1] {
		if b == 0x00 {
			t.Fatalf("unexpected interior zero at index %d in % X", i, framed)
		}
	}

	decoded, err := DecodeCobs(framed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Fatalf("decoded: got % X want % X", decoded, raw)
	}
}

// TestAccumulatorReassembly is concrete end-to-end scenario 5: splitting a
// framed value at every possible index must still yield exactly one
// Success outcome whose frame matches the original.
func TestAccumulatorReassembly(t *testing.T) {
	type pair struct {
		A uint32 `postwire:"a"`
		B uint8  `postwire:"b"`
	}
	enc := NewEncoder[pair]()
	v := pair{A: 10, B: 20}
	raw, err := enc.Encode(&v, NewGrowable())
	if err != nil {
		t.Fatal(err)
	}
	framed, err := EncodeCobs(raw)
	if err != nil {
		t.Fatal(err)
	}

	feedAll := func(acc *Accumulator, chunk []byte) ([][]byte, []error) {
		var frames [][]byte
		var errs []error
		for {
			r := acc.Feed(chunk)
			if r.Outcome == Success {
				frames = append(frames, r.Frame)
			}
			if r.Outcome == DecodeError {
				errs = append(errs, r.Err)
			}
			if r.Outcome == Consumed {
				return frames, errs
			}
			chunk = r.Remaining
			if len(chunk) == 0 {
				return frames, errs
			}
		}
	}

	for split := 0; split <= len(framed); split++ {
		acc := NewAccumulator(len(framed) + 8)
		first, second := framed[:split], framed[split:]

		f1, e1 := feedAll(acc, first)
		f2, e2 := feedAll(acc, second)
		frames := append(f1, f2...)
		errs := append(e1, e2...)

		if len(errs) != 0 {
			t.Fatalf("split %d: unexpected decode errors: %v", split, errs)
		}
		if len(frames) != 1 {
			t.Fatalf("split %d: expected exactly one success, got %d", split, len(frames))
		}
		if !bytes.Equal(frames[0], raw) {
			t.Fatalf("split %d: got % X want % X", split, frames[0], raw)
		}
	}
}

// asPostwireError is a small errors.As helper local to this package's
// tests, since Error's Is method compares against ErrorKind rather than
// *Error directly.
func asPostwireError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
