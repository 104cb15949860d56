package postwire

import (
	"bytes"
	"testing"
)

func TestChecksumRoundTrip(t *testing.T) {
	down := NewGrowable()
	c := NewChecksum(down, NewCRC32IEEE())
	s := NewSerializer(c)
	if err := s.Str("hello checksum"); err != nil {
		t.Fatal(err)
	}
	framed, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewChecksumVerifier(NewSliceSource(framed), NewCRC32IEEE())
	d := NewDeserializer(verifier)
	got, err := d.StrTemp()
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello checksum" {
		t.Fatalf("got %q", got)
	}
	if _, err := d.Remainder(); err != nil {
		t.Fatalf("checksum should verify on finalize: %v", err)
	}
}

func TestChecksumDetectsCorruption(t *testing.T) {
	down := NewGrowable()
	c := NewChecksum(down, NewCRC32IEEE())
	s := NewSerializer(c)
	if err := s.U32(123456); err != nil {
		t.Fatal(err)
	}
	framed, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	corrupted := bytes.Clone(framed)
	corrupted[0] ^= 0xFF

	verifier := NewChecksumVerifier(NewSliceSource(corrupted), NewCRC32IEEE())
	d := NewDeserializer(verifier)
	if _, err := d.U32(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Remainder(); err == nil {
		t.Fatal("expected bad-crc error on corrupted payload")
	} else {
		var perr *Error
		if !asPostwireError(err, &perr) || perr.Kind != ErrBadCRC {
			t.Fatalf("expected ErrBadCRC, got %v", err)
		}
	}
}

func TestSipHashDetectsTamperingWithWrongKey(t *testing.T) {
	down := NewGrowable()
	mac := NewSipHash(down, 1, 2)
	s := NewSerializer(mac)
	if err := s.Bool(true); err != nil {
		t.Fatal(err)
	}
	framed, err := s.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewSipHashVerifier(NewSliceSource(framed), 3, 4)
	d := NewDeserializer(verifier)
	if _, err := d.Bool(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Remainder(); err == nil {
		t.Fatal("expected siphash verification to fail under a mismatched key")
	}
}

func TestCRC8And16And64RoundTrip(t *testing.T) {
	for _, crcPair := range []struct {
		name string
		mk   func() CRC
	}{
		{"crc8", func() CRC { return NewCRC8() }},
		{"crc16", func() CRC { return NewCRC16() }},
		{"crc64", func() CRC { return NewCRC64ISO() }},
	} {
		down := NewGrowable()
		c := NewChecksum(down, crcPair.mk())
		s := NewSerializer(c)
		if err := s.Str(crcPair.name); err != nil {
			t.Fatal(err)
		}
		framed, err := s.Finalize()
		if err != nil {
			t.Fatal(err)
		}
		verifier := NewChecksumVerifier(NewSliceSource(framed), crcPair.mk())
		d := NewDeserializer(verifier)
		got, err := d.StrTemp()
		if err != nil {
			t.Fatalf("%s: %v", crcPair.name, err)
		}
		if got != crcPair.name {
			t.Fatalf("%s: got %q", crcPair.name, got)
		}
		if _, err := d.Remainder(); err != nil {
			t.Fatalf("%s: verify: %v", crcPair.name, err)
		}
	}
}
