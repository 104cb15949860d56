package postwire

import (
	"math/rand"
	"testing"
)

func TestVarintRoundTripU32(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		v := r.Uint32()
		buf := NewGrowable()
		s := NewSerializer(buf)
		if err := s.U32(v); err != nil {
			t.Fatal(err)
		}
		out, err := s.Finalize()
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != varintLen(uint64(v)) {
			t.Fatalf("encode length %d != varintLen %d for %d", len(out), varintLen(uint64(v)), v)
		}
		got, err := NewDeserializer(NewSliceSource(out)).U32()
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("got %d want %d", got, v)
		}
	}
}

func TestVarintRoundTripI32(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		v := int32(r.Uint32())
		buf := NewGrowable()
		s := NewSerializer(buf)
		if err := s.I32(v); err != nil {
			t.Fatal(err)
		}
		out, err := s.Finalize()
		if err != nil {
			t.Fatal(err)
		}
		got, err := NewDeserializer(NewSliceSource(out)).I32()
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Fatalf("got %d want %d", got, v)
		}
	}
}

func TestVarintU16BoundaryCanonicality(t *testing.T) {
	buf := NewGrowable()
	s := NewSerializer(buf)
	if err := s.U16(0xFFFF); err != nil {
		t.Fatal(err)
	}
	out, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0xFF, 0x03}
	if len(out) != len(want) {
		t.Fatalf("got % X want % X", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got % X want % X", out, want)
		}
	}

	bad := []byte{0xFF, 0xFF, 0x07}
	if _, err := NewDeserializer(NewSliceSource(bad)).U16(); err == nil {
		t.Fatal("expected bad-varint for u16 final byte carrying bits above bit 1")
	}
}
