package schema

// Hash implements the FNV-1a64 structural hash from the original's
// key/hash.rs: a stable fingerprint of a type's shape, namespaced by an
// arbitrary path string, that two processes can compare without ever
// exchanging the schema itself.
//
// Per hash.rs, struct and enum *type* names are deliberately excluded from
// the hash (so e.g. a `Vec<u8>` and a `&[u8]` on two different platforms
// still agree), while field names and variant names are included. Each
// Kind contributes one fixed "chosen prime" byte, picked from the single
// byte values that are prime, so distinct kinds can never collide on a
// single update step.

const (
	fnvBasis uint64 = 0xcbf29ce484222325
	fnvPrime uint64 = 0x100000001b3
)

// primes, one per Kind, copied verbatim from the original implementation so
// a postwire hash and a postcard-schema-ng hash of the same shape agree
// byte for byte.
var kindPrime = map[Kind]byte{
	Bool:       0x11,
	I8:         0xC5,
	U8:         0x3D,
	I16:        0x1D,
	I32:        0x0D,
	I64:        0x0B,
	I128:       0x02,
	U16:        0x83,
	U32:        0xD3,
	U64:        0x13,
	U128:       0x8B,
	Usize:      0x6B,
	Isize:      0xAD,
	F32:        0xEF,
	F64:        0x71,
	Char:       0xC1,
	String:     0x25,
	ByteArray:  0x65,
	Option:     0x6D,
	Unit:       0x47,
	Seq:        0x03,
	Tuple:      0xA7,
	Map:        0x4F,
	Enum:       0xE9,
	KindSchema: 0xE5,
	Array:      0x2B,
}

const (
	dataUnitPrime    byte = 0xBF
	dataNewtypePrime byte = 0x9D
	dataTuplePrime   byte = 0x05
	dataStructPrime  byte = 0x7F

	variantUnitPrime    byte = 0xB5
	variantNewtypePrime byte = 0xDF
	variantTuplePrime   byte = 0xC7
	variantStructPrime  byte = 0x67
)

func fnvUpdate(state uint64, data []byte) uint64 {
	for _, b := range data {
		state ^= uint64(b)
		state *= fnvPrime
	}
	return state
}

// Hash computes the 8-byte little-endian structural hash of nt, namespaced
// by path. An empty path reproduces the unnamespaced hash.
func Hash(path string, nt *OwnedNamedType) [8]byte {
	state := fnvUpdate(fnvBasis, []byte(path))
	state = hashType(state, nt.Type)
	var out [8]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(state >> (8 * i))
	}
	return out
}

// HashStatic is Hash for a static NamedType tree, converting to owned form
// first.
func HashStatic(path string, nt *NamedType) [8]byte {
	return Hash(path, FromStatic(nt))
}

func hashType(state uint64, t *OwnedType) uint64 {
	switch t.Kind {
	case Option:
		state = fnvUpdate(state, []byte{kindPrime[Option]})
		return hashType(state, t.Inner.Type)
	case Seq:
		state = fnvUpdate(state, []byte{kindPrime[Seq]})
		return hashType(state, t.Inner.Type)
	case Tuple:
		state = fnvUpdate(state, []byte{kindPrime[Tuple]})
		for _, e := range t.Elems {
			state = hashType(state, e.Type)
		}
		return state
	case Map:
		state = fnvUpdate(state, []byte{kindPrime[Map]})
		state = hashType(state, t.Key.Type)
		return hashType(state, t.Val.Type)
	case Struct:
		return hashData(state, t.Data)
	case Enum:
		state = fnvUpdate(state, []byte{kindPrime[Enum]})
		for _, v := range t.Variants {
			state = hashVariant(state, v)
		}
		return state
	case Array:
		state = fnvUpdate(state, []byte{kindPrime[Array]})
		for i := 0; i < t.Count; i++ {
			state = hashType(state, t.Item.Type)
		}
		return state
	default:
		// Every remaining Kind (Bool..ByteArray, Unit, KindSchema) is a
		// leaf: one prime byte and nothing else.
		return fnvUpdate(state, []byte{kindPrime[t.Kind]})
	}
}

// hashData hashes a struct's payload shape. The struct's own type name is
// never hashed, matching hash_struct's explicit omission.
func hashData(state uint64, d *OwnedData) uint64 {
	switch d.Kind {
	case DataUnit:
		return fnvUpdate(state, []byte{dataUnitPrime})
	case DataNewtype:
		state = fnvUpdate(state, []byte{dataNewtypePrime})
		return hashType(state, d.Inner.Type)
	case DataTuple:
		state = fnvUpdate(state, []byte{dataTuplePrime})
		for _, e := range d.Elems {
			state = hashType(state, e.Type)
		}
		return state
	case DataStruct:
		state = fnvUpdate(state, []byte{dataStructPrime})
		for _, f := range d.Fields {
			state = fnvUpdate(state, []byte(f.Name))
			state = hashType(state, f.Type.Type)
		}
		return state
	default:
		return state
	}
}

// hashVariant hashes one enum arm: its name always participates, then its
// payload shape exactly like hashData but with the variant-specific prime
// bytes (distinct from the struct ones, so a newtype struct and a newtype
// variant can never collide).
func hashVariant(state uint64, v *OwnedVariant) uint64 {
	state = fnvUpdate(state, []byte(v.Name))
	d := v.Data
	switch d.Kind {
	case DataUnit:
		return fnvUpdate(state, []byte{variantUnitPrime})
	case DataNewtype:
		state = fnvUpdate(state, []byte{variantNewtypePrime})
		return hashType(state, d.Inner.Type)
	case DataTuple:
		state = fnvUpdate(state, []byte{variantTuplePrime})
		for _, e := range d.Elems {
			state = hashType(state, e.Type)
		}
		return state
	case DataStruct:
		state = fnvUpdate(state, []byte{variantStructPrime})
		for _, f := range d.Fields {
			state = fnvUpdate(state, []byte(f.Name))
			state = hashType(state, f.Type.Type)
		}
		return state
	default:
		return state
	}
}
