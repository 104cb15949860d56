package postwire

import (
	"math/big"
)

// Serializer is the write-side visitor driver from spec.md §4.5: it offers
// one method per wire kind for an external reflective framework (here,
// Encoder[T] in encoder.go) to call as it walks a value. It is
// deliberately not format-flexible: every method implements exactly the
// mapping in §3, nothing more.
type Serializer struct {
	f SerializeFlavor
}

// NewSerializer wraps a SerializeFlavor as a Serializer.
func NewSerializer(f SerializeFlavor) *Serializer { return &Serializer{f: f} }

// Finalize releases the underlying Flavor, returning the resolved output.
func (s *Serializer) Finalize() ([]byte, error) { return s.f.Finalize() }

func (s *Serializer) Bool(v bool) error   { return pushBool(s.f, v) }
func (s *Serializer) I8(v int8) error     { return pushI8(s.f, v) }
func (s *Serializer) U8(v uint8) error    { return pushU8(s.f, v) }
func (s *Serializer) I16(v int16) error   { return pushI16(s.f, v) }
func (s *Serializer) U16(v uint16) error  { return pushU16(s.f, v) }
func (s *Serializer) I32(v int32) error   { return pushI32(s.f, v) }
func (s *Serializer) U32(v uint32) error  { return pushU32(s.f, v) }
func (s *Serializer) I64(v int64) error   { return pushI64(s.f, v) }
func (s *Serializer) U64(v uint64) error  { return pushU64(s.f, v) }
func (s *Serializer) I128(v *big.Int) error { return pushI128(s.f, v) }
func (s *Serializer) U128(v *big.Int) error { return pushU128(s.f, v) }
func (s *Serializer) Isize(v int64) error { return pushIsize(s.f, v) }
func (s *Serializer) Usize(v uint64) error { return pushUsize(s.f, v) }
func (s *Serializer) F32(v float32) error { return pushF32(s.f, v) }
func (s *Serializer) F64(v float64) error { return pushF64(s.f, v) }
func (s *Serializer) Char(v rune) error   { return pushChar(s.f, v) }
func (s *Serializer) Str(v string) error  { return pushStr(s.f, v) }
func (s *Serializer) Bytes(v []byte) error { return pushBytes(s.f, v) }

// Unit/UnitStruct/NewtypeStruct/Tuple/TupleStruct/Struct all contribute no
// header of their own (spec.md §3): Unit and UnitStruct write nothing at
// all, and the rest are simply the concatenation of their fields, which
// callers (Encoder[T]) produce by calling the field methods in order. There
// is no method here for them beyond this documentation because there is
// nothing to emit.

// OptionNone writes the option tag for an absent value.
func (s *Serializer) OptionNone() error { return pushOptionNone(s.f) }

// OptionSome writes the option tag for a present value; the caller writes
// the inner value immediately afterward.
func (s *Serializer) OptionSome() error { return pushOptionSomeTag(s.f) }

// SeqLen writes a sequence's item count. Per spec.md §6.3, an un-sized seq
// or map cannot be represented — callers that don't know their length up
// front must buffer first or fail with ErrSeqLengthUnknown themselves.
func (s *Serializer) SeqLen(n int) error { return pushLen(s.f, n) }

// MapLen writes a map's entry count; entries follow as (key, value) pairs.
func (s *Serializer) MapLen(n int) error { return pushLen(s.f, n) }

// VariantIndex writes an enum discriminant as a 32-bit varint; the
// variant's payload (if any) follows per its own kind.
func (s *Serializer) VariantIndex(idx uint32) error { return pushVariantIndex(s.f, idx) }

// stringer is the minimal Stringer contract CollectStr accepts, matching
// fmt.Stringer so callers can pass any formattable value without this
// package importing fmt's wider Formatter machinery.
type stringer interface {
	String() string
}

// CollectStr implements spec.md §4.5's two-pass collect-str: a size-only
// pass through a SizeMeasurer to learn the byte length, then the real
// write directly into the downstream flavor. The two passes must observe
// identical bytes in identical order (spec.md §5); a Stringer whose output
// is nondeterministic between calls produces an unspecified (but
// memory-safe) result, surfaced here as ErrCollectStr if the lengths
// disagree.
func (s *Serializer) CollectStr(v stringer) error {
	text := v.String()
	var measure SizeMeasurer
	measure.Extend([]byte(text))
	if err := s.Str(text); err != nil {
		return err
	}
	// String() is called a second time after the write, and its length is
	// compared with the measured length of the first call; the bytes
	// already written come from the first call only.
	text2 := v.String()
	if len(text2) != measure.Len() {
		return newErr("collect_str", ErrCollectStr)
	}
	return nil
}

// Deserializer is the read-side visitor driver dual to Serializer: rather
// than pushing a visitor's callbacks (as serde's Deserializer trait does in
// the Rust original), it exposes pull methods the framework calls directly
// — the more idiomatic shape for Go, and the one Encoder[T]/Decoder[T]
// already uses in the teacher (glint's Reader).
type Deserializer struct {
	f DeserializeFlavor
}

// NewDeserializer wraps a DeserializeFlavor as a Deserializer.
func NewDeserializer(f DeserializeFlavor) *Deserializer { return &Deserializer{f: f} }

// Remainder consumes the Flavor and returns whatever bytes were left
// unread, mirroring postcard's Deserializer::finalize.
func (d *Deserializer) Remainder() ([]byte, error) { return d.f.Finalize() }

func (d *Deserializer) Bool() (bool, error)  { return takeBool(d.f) }
func (d *Deserializer) I8() (int8, error)    { return takeI8(d.f) }
func (d *Deserializer) U8() (uint8, error)   { return takeU8(d.f) }
func (d *Deserializer) I16() (int16, error)  { return takeI16(d.f) }
func (d *Deserializer) U16() (uint16, error) { return takeU16(d.f) }
func (d *Deserializer) I32() (int32, error)  { return takeI32(d.f) }
func (d *Deserializer) U32() (uint32, error) { return takeU32(d.f) }
func (d *Deserializer) I64() (int64, error)  { return takeI64(d.f) }
func (d *Deserializer) U64() (uint64, error) { return takeU64(d.f) }
func (d *Deserializer) I128() (*big.Int, error) { return takeI128(d.f) }
func (d *Deserializer) U128() (*big.Int, error) { return takeU128(d.f) }
func (d *Deserializer) Isize() (int64, error)  { return takeIsize(d.f) }
func (d *Deserializer) Usize() (uint64, error) { return takeUsize(d.f) }
func (d *Deserializer) F32() (float32, error) { return takeF32(d.f) }
func (d *Deserializer) F64() (float64, error) { return takeF64(d.f) }
func (d *Deserializer) Char() (rune, error)   { return takeChar(d.f) }

// Str decodes a string, reading its bytes with the source's TakeN. The
// returned Go string is a copy and stays valid after the input changes.
func (d *Deserializer) Str() (string, error) { return takeStr(d.f) }

// StrTemp decodes a string, reading its bytes with the source's TakeNTemp.
// The returned Go string is a copy, like Str's.
func (d *Deserializer) StrTemp() (string, error) { return takeStrTemp(d.f) }

// Bytes decodes a byte slice borrowed from the underlying input.
func (d *Deserializer) Bytes() ([]byte, error) { return takeBytes(d.f) }

// BytesTemp decodes a byte slice valid only for the duration of the
// current call.
func (d *Deserializer) BytesTemp() ([]byte, error) { return takeBytesTemp(d.f) }

// OptionTag reads the option discriminant, reporting whether an inner
// value follows.
func (d *Deserializer) OptionTag() (bool, error) { return takeOptionTag(d.f) }

// SeqLen reads a sequence's item count.
func (d *Deserializer) SeqLen() (int, error) { return takeLen(d.f) }

// MapLen reads a map's entry count.
func (d *Deserializer) MapLen() (int, error) { return takeLen(d.f) }

// VariantIndex reads an enum discriminant, rejecting any value >=
// numVariants as ErrBadEnumDiscriminant. Pass a negative numVariants to
// skip the range check (used when the caller validates separately).
func (d *Deserializer) VariantIndex(numVariants int) (uint32, error) {
	return takeVariantIndex(d.f, numVariants)
}

// Any refuses: the codec has no self-description to dispatch on, per
// spec.md §6.4.
func (d *Deserializer) Any() error {
	return newErr("deserialize_any", ErrUnsupported)
}

// Identifier refuses: field names are not on the wire.
func (d *Deserializer) Identifier() error {
	return newErr("deserialize_identifier", ErrUnsupported)
}

// IgnoredAny refuses: an unknown field's type isn't known, so it can't be
// skipped.
func (d *Deserializer) IgnoredAny() error {
	return newErr("deserialize_ignored_any", ErrUnsupported)
}
