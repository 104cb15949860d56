package postwire

// SerializeFlavor is the write-side middleware contract from spec.md §4.3.
// Implementations either store bytes (Slice, Growable, Writer sinks) or
// transform and forward them to a wrapped SerializeFlavor (Cobs, Checksum).
//
// A Flavor is constructed with its resources, owns them exclusively for the
// duration of serialization, and Finalize is the single release point.
// Dropping a Flavor without calling Finalize is allowed and leaves the sink
// in an unspecified-but-valid state; there is no finalizer magic here, by
// design, so callers must call Finalize themselves to observe output.
type SerializeFlavor interface {
	// Push writes a single byte downstream.
	Push(b byte) error

	// Extend writes a run of bytes downstream. There is no shared default:
	// each Flavor implements it, some by looping over Push (Cobs), and
	// sinks that can do better (Slice, Growable) by writing the run at once.
	Extend(b []byte) error

	// Finalize consumes the Flavor and returns whatever it resolves to:
	// a sub-slice, an owned buffer, or nothing for a pure Writer sink.
	Finalize() ([]byte, error)
}

// IndexableSerializeFlavor is a SerializeFlavor that additionally allows a
// middleware layer to overwrite a byte it pushed earlier by index. The COBS
// framer requires this (it rewrites a run-length placeholder once the run
// closes); sinks that can't offer random-access mutation — a pure streaming
// Writer sink, for instance — must not be wrapped by it. Spec.md §5 calls
// this out explicitly: refuse at construction time to compose COBS with a
// non-indexable sink.
type IndexableSerializeFlavor interface {
	SerializeFlavor
	// SetAt overwrites the byte at downstream index idx. idx must refer to
	// a byte already pushed (or reserved) by this flavor.
	SetAt(idx int, b byte)
	// Len reports how many bytes have been pushed/reserved so far, i.e.
	// the next index SetAt can validly target after one more Push.
	Len() int
}

// DeserializeFlavor is the read-side middleware contract from spec.md §4.4.
type DeserializeFlavor interface {
	// Pop reads one byte from the source.
	Pop() (byte, error)

	// TakeN returns ct bytes borrowed from the underlying input for as long
	// as that input is valid. Decoders for borrowed types (string, []byte)
	// must use TakeN.
	TakeN(ct int) ([]byte, error)

	// TakeNTemp is like TakeN but the returned slice's validity is only
	// guaranteed for the duration of the current decode call — sources
	// that read into a caller-owned scratch buffer (ReaderSource) reuse
	// that scratch across calls. Decoders for owned types should prefer
	// this to avoid holding a long-lived borrow on the source.
	TakeNTemp(ct int) ([]byte, error)

	// SizeHint advisedly reports how many bytes remain, when known. It
	// must never be relied on for safety — only as a pre-allocation hint.
	SizeHint() (int, bool)

	// Finalize consumes the Flavor and returns whatever remains unread.
	Finalize() ([]byte, error)
}
