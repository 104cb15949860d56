package postwire

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestCobsNoInteriorZerosAndOverheadBound is the property test from
// spec.md §8: for any payload of length n, the framed output contains no
// 0x00 byte except the trailing terminator, and its length is at most
// n + ceil(n/254) + 2.
func TestCobsNoInteriorZerosAndOverheadBound(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 2, 10, 253, 254, 255, 508, 509, 700} {
		payload := make([]byte, n)
		r.Read(payload)
		// force some zero bytes into the payload so the framer's
		// zero-handling path is actually exercised
		for i := 0; i < len(payload); i += 17 {
			payload[i] = 0
		}

		framed, err := EncodeCobs(payload)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(framed) == 0 || framed[len(framed)-1] != 0x00 {
			t.Fatalf("n=%d: frame must end with 0x00, got % X", n, framed)
		}
		for i, b := range framed[:len(framed)-1] {
			if b == 0x00 {
				t.Fatalf("n=%d: unexpected interior zero at %d in % X", n, i, framed)
			}
		}
		maxLen := n + (n+253)/254 + 2
		if len(framed) > maxLen {
			t.Fatalf("n=%d: frame length %d exceeds bound %d", n, len(framed), maxLen)
		}

		decoded, err := DecodeCobs(framed)
		if err != nil {
			t.Fatalf("n=%d: decode: %v", n, err)
		}
		if !bytes.Equal(decoded, payload) {
			t.Fatalf("n=%d: got % X want % X", n, decoded, payload)
		}
	}
}

func TestDecodeCobsRejectsTruncatedRun(t *testing.T) {
	// A code byte claiming a run longer than the remaining bytes.
	bad := []byte{0x05, 0x01, 0x02, 0x00}
	if _, err := DecodeCobs(bad); err == nil {
		t.Fatal("expected bad-encoding error for a run claiming past the end")
	}
}
