package dynamic

import "math/big"

// Sink is the arbitrary external serializer Reserialize drives — the role
// spec.md assigns to "a serializer outside this codec", e.g. something
// producing JSON, CBOR, a UI tree, or a different wire format entirely.
// This package never implements one concretely for production use (that
// target format is exactly the kind of external collaborator spec.md
// treats as out of scope); AnySink in any_sink.go exists only as a
// reference implementation and test fixture, built from a Go `any` tree.
//
// Reserialize calls these methods in exactly the order a value's bytes
// appear on the wire — the same single-pass, no-lookahead discipline the
// rest of this codec follows. Container methods are paired Begin/End calls
// bracketing the calls for their contents, so a Sink can push/pop its own
// nesting state.
type Sink interface {
	Bool(v bool) error
	I8(v int8) error
	U8(v uint8) error
	I16(v int16) error
	U16(v uint16) error
	I32(v int32) error
	U32(v uint32) error
	I64(v int64) error
	U64(v uint64) error
	I128(v *big.Int) error
	U128(v *big.Int) error
	Usize(v uint64) error
	Isize(v int64) error
	F32(v float32) error
	F64(v float64) error
	Char(v rune) error
	Str(v string) error
	Bytes(v []byte) error
	Unit() error

	// BeginOption is called with some=false for an absent value (nothing
	// further follows) or some=true immediately before the inner value's
	// own Sink calls.
	BeginOption(some bool) error
	EndOption() error

	BeginSeq(n int) error
	EndSeq() error

	BeginTuple(n int) error
	EndTuple() error

	BeginMap(n int) error
	// MapKey is called immediately before each key's Sink calls, MapValue
	// immediately before the matching value's.
	MapKey() error
	MapValue() error
	EndMap() error

	// BeginStruct/EndStruct bracket a named-field struct's n fields;
	// StructField is called immediately before each field's Sink calls,
	// named per the active Strategy.
	BeginStruct(name string, n int) error
	StructField(name string) error
	EndStruct() error

	// BeginEnum/EndEnum bracket a variant's payload for every variant
	// shape except unit. variantIndex is the wire discriminant;
	// variantName is resolved per the active Strategy.
	BeginEnum(name string, variantIndex uint32, variantName string) error
	EndEnum() error

	// UnitEnum is called in place of BeginEnum/EndEnum for a payload-less
	// variant — a unit variant reserializes as its bare name string, not
	// a one-entry map, per the lossy-strategy rule.
	UnitEnum(name string, variantIndex uint32, variantName string) error
}
