package postwire

// Kind enumerates the closed data model from spec.md §3, naming "which wire
// kind" without reflecting on a Go type. The schema package declares its
// own schema.Kind for its type nodes and does not use this one.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindI8
	KindU8
	KindI16
	KindU16
	KindI32
	KindU32
	KindI64
	KindU64
	KindI128
	KindU128
	KindIsize
	KindUsize
	KindF32
	KindF64
	KindChar
	KindString
	KindByteArray
	KindOption
	KindUnit
	KindUnitStruct
	KindNewtypeStruct
	KindSeq
	KindTuple
	KindTupleStruct
	KindMap
	KindStruct
	KindEnum
	KindArray
	KindSchema
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindI8:
		return "i8"
	case KindU8:
		return "u8"
	case KindI16:
		return "i16"
	case KindU16:
		return "u16"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindI128:
		return "i128"
	case KindU128:
		return "u128"
	case KindIsize:
		return "isize"
	case KindUsize:
		return "usize"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindByteArray:
		return "bytes"
	case KindOption:
		return "option"
	case KindUnit:
		return "unit"
	case KindUnitStruct:
		return "unit_struct"
	case KindNewtypeStruct:
		return "newtype_struct"
	case KindSeq:
		return "seq"
	case KindTuple:
		return "tuple"
	case KindTupleStruct:
		return "tuple_struct"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}
