// Package schema models a value's shape independent of any wire bytes: the
// static, compile-time-built type tree a Go package can declare for its own
// types, the owned (heap-copied) tree the dynamic reserializer builds at
// runtime from those static trees or from another process entirely, a
// pretty-printer for both, and a stable structural hash used to recognize
// when two parties agree on a shape without exchanging the schema itself.
//
// This mirrors postcard-schema-ng's DataModelType/Data split: a
// self-describing shape (Kind) carries its own recursive payload (an inner
// type for Option/Seq/Array, a list for Tuple, a key/value pair for Map, or
// a Data body for Struct/Enum).
package schema

// Kind enumerates the Serde-style data model shapes a schema node can take.
type Kind uint8

const (
	Bool Kind = iota
	I8
	U8
	I16
	I32
	I64
	I128
	U16
	U32
	U64
	U128
	Usize
	Isize
	F32
	F64
	Char
	String
	ByteArray
	Option
	Unit
	Seq
	Tuple
	Map
	Struct
	Enum
	KindSchema
	Array
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case I8:
		return "i8"
	case U8:
		return "u8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case Usize:
		return "usize"
	case Isize:
		return "isize"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Char:
		return "char"
	case String:
		return "string"
	case ByteArray:
		return "byte_array"
	case Option:
		return "option"
	case Unit:
		return "unit"
	case Seq:
		return "seq"
	case Tuple:
		return "tuple"
	case Map:
		return "map"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	case KindSchema:
		return "schema"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// DataKind distinguishes the shape of a Struct's or Variant's payload.
type DataKind uint8

const (
	// DataUnit carries no fields at all.
	DataUnit DataKind = iota
	// DataNewtype wraps exactly one inner type.
	DataNewtype
	// DataTuple holds an ordered, unnamed list of inner types.
	DataTuple
	// DataStruct holds an ordered list of named fields.
	DataStruct
)
