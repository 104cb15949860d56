package postwire

import (
	"math"
	"math/big"
	"unicode/utf8"
)

// This file is the primitive codec from spec.md §4.2: one push/take pair
// per wire kind, each parameterized only by the Flavor it's given. Every
// operation here is single-pass — no seeking, no patching — matching the
// constraint in spec.md §5.

// ---- bool ----

func pushBool(f SerializeFlavor, v bool) error {
	if v {
		return f.Push(1)
	}
	return f.Push(0)
}

func takeBool(f DeserializeFlavor) (bool, error) {
	b, err := f.Pop()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newErr("take_bool", ErrBadBool)
	}
}

// ---- u8 / i8 : raw single byte ----

func pushU8(f SerializeFlavor, v uint8) error { return f.Push(v) }

func takeU8(f DeserializeFlavor) (uint8, error) { return f.Pop() }

func pushI8(f SerializeFlavor, v int8) error { return f.Push(byte(v)) }

func takeI8(f DeserializeFlavor) (int8, error) {
	b, err := f.Pop()
	return int8(b), err
}

// ---- u16/u32/u64/usize : unsigned varint ----

func pushU16(f SerializeFlavor, v uint16) error {
	return f.Extend(appendVarint(nil, uint64(v)))
}

func takeU16(f DeserializeFlavor) (uint16, error) {
	v, err := decodeVarint(f.Pop, maxVarintBytesU16, 16)
	return uint16(v), err
}

func pushU32(f SerializeFlavor, v uint32) error {
	return f.Extend(appendVarint(nil, uint64(v)))
}

func takeU32(f DeserializeFlavor) (uint32, error) {
	v, err := decodeVarint(f.Pop, maxVarintBytesU32, 32)
	return uint32(v), err
}

func pushU64(f SerializeFlavor, v uint64) error {
	return f.Extend(appendVarint(nil, v))
}

func takeU64(f DeserializeFlavor) (uint64, error) {
	return decodeVarint(f.Pop, maxVarintBytesU64, 64)
}

// usize/isize are modelled as 64-bit on every host this codec targets; a
// 32-bit embedded target would narrow these, but the wire width is a
// property of the encoding platform, not of Go's int (which is at least
// 32 bits by spec and 64 on every realistic deployment target here).
func pushUsize(f SerializeFlavor, v uint64) error { return pushU64(f, v) }

func takeUsize(f DeserializeFlavor) (uint64, error) {
	v, err := takeU64(f)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, newErr("take_usize", ErrBadVarint)
	}
	return v, nil
}

// ---- i16/i32/i64/isize : zig-zag then varint ----

func pushI16(f SerializeFlavor, v int16) error {
	return pushU16(f, zigzagEncode16(v))
}

func takeI16(f DeserializeFlavor) (int16, error) {
	u, err := takeU16(f)
	if err != nil {
		return 0, err
	}
	return zigzagDecode16(u), nil
}

func pushI32(f SerializeFlavor, v int32) error {
	return pushU32(f, zigzagEncode32(v))
}

func takeI32(f DeserializeFlavor) (int32, error) {
	u, err := takeU32(f)
	if err != nil {
		return 0, err
	}
	return zigzagDecode32(u), nil
}

func pushI64(f SerializeFlavor, v int64) error {
	return pushU64(f, zigzagEncode64(v))
}

func takeI64(f DeserializeFlavor) (int64, error) {
	u, err := takeU64(f)
	if err != nil {
		return 0, err
	}
	return zigzagDecode64(u), nil
}

func pushIsize(f SerializeFlavor, v int64) error { return pushI64(f, v) }

func takeIsize(f DeserializeFlavor) (int64, error) { return takeI64(f) }

// ---- u128/i128 ----

func pushU128(f SerializeFlavor, v *big.Int) error {
	return f.Extend(appendVarintBig(nil, v))
}

func takeU128(f DeserializeFlavor) (*big.Int, error) {
	return decodeVarintBig(f.Pop, maxVarintBytesU128, 128)
}

func pushI128(f SerializeFlavor, v *big.Int) error {
	return pushU128(f, zigzagEncode128(v))
}

func takeI128(f DeserializeFlavor) (*big.Int, error) {
	u, err := takeU128(f)
	if err != nil {
		return nil, err
	}
	return zigzagDecode128(u), nil
}

// ---- f32/f64 : IEEE-754, fixed little-endian width, no varint ----

func pushF32(f SerializeFlavor, v float32) error {
	bits := math.Float32bits(v)
	return f.Extend([]byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)})
}

func takeF32(f DeserializeFlavor) (float32, error) {
	b, err := f.TakeNTemp(4)
	if err != nil {
		return 0, err
	}
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits), nil
}

func pushF64(f SerializeFlavor, v float64) error {
	bits := math.Float64bits(v)
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(bits >> (8 * i))
	}
	return f.Extend(out)
}

func takeF64(f DeserializeFlavor) (float64, error) {
	b, err := f.TakeNTemp(8)
	if err != nil {
		return 0, err
	}
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(b[i]) << (8 * i)
	}
	return math.Float64frombits(bits), nil
}

// ---- char : varint length (<=4) then UTF-8 bytes ----

func pushChar(f SerializeFlavor, r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if err := f.Extend(appendVarint(nil, uint64(n))); err != nil {
		return err
	}
	return f.Extend(buf[:n])
}

func takeChar(f DeserializeFlavor) (rune, error) {
	n, err := decodeVarint(f.Pop, maxVarintBytesU32, 32)
	if err != nil {
		return 0, err
	}
	if n == 0 || n > utf8.UTFMax {
		return 0, newErr("take_char", ErrBadChar)
	}
	b, err := f.TakeNTemp(int(n))
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError || size != len(b) {
		return 0, newErr("take_char", ErrBadChar)
	}
	return r, nil
}

// ---- string : varint byte-length then UTF-8 bytes ----

func pushStr(f SerializeFlavor, s string) error {
	if err := f.Extend(appendVarint(nil, uint64(len(s)))); err != nil {
		return err
	}
	return f.Extend([]byte(s))
}

// takeStr reads the string's bytes via TakeN; takeStrTemp via TakeNTemp.
// Both return a Go string, which copies those bytes.
func takeStr(f DeserializeFlavor) (string, error) {
	b, err := takeBytesWith(f, f.TakeN)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newErr("take_str", ErrBadUTF8)
	}
	return string(b), nil
}

func takeStrTemp(f DeserializeFlavor) (string, error) {
	b, err := takeBytesWith(f, f.TakeNTemp)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newErr("take_str", ErrBadUTF8)
	}
	return string(b), nil
}

// ---- byte-array : varint byte-length then raw bytes ----

func pushBytes(f SerializeFlavor, b []byte) error {
	if err := f.Extend(appendVarint(nil, uint64(len(b)))); err != nil {
		return err
	}
	return f.Extend(b)
}

func takeBytes(f DeserializeFlavor) ([]byte, error) {
	return takeBytesWith(f, f.TakeN)
}

func takeBytesTemp(f DeserializeFlavor) ([]byte, error) {
	return takeBytesWith(f, f.TakeNTemp)
}

func takeBytesWith(f DeserializeFlavor, take func(int) ([]byte, error)) ([]byte, error) {
	n, err := decodeVarint(f.Pop, maxVarintBytesU64, 64)
	if err != nil {
		return nil, err
	}
	if n > uint64(math.MaxInt32) {
		return nil, newErr("take_bytes", ErrBadVarint)
	}
	return take(int(n))
}

// ---- option : 1-byte tag, then inner if some ----

func pushOptionNone(f SerializeFlavor) error { return f.Push(0) }

func pushOptionSomeTag(f SerializeFlavor) error { return f.Push(1) }

// takeOptionTag reads the option tag and reports whether a value follows.
func takeOptionTag(f DeserializeFlavor) (some bool, err error) {
	b, err := f.Pop()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newErr("take_option", ErrBadOption)
	}
}

// ---- bare discriminants : seq/map counts and enum variant indices ----

// pushLen writes a container's item count as a varint, used for seq and
// map counts.
func pushLen(f SerializeFlavor, n int) error {
	return f.Extend(appendVarint(nil, uint64(n)))
}

func takeLen(f DeserializeFlavor) (int, error) {
	n, err := decodeVarint(f.Pop, maxVarintBytesU64, 64)
	if err != nil {
		return 0, err
	}
	if n > uint64(math.MaxInt32) {
		return 0, newErr("take_len", ErrBadVarint)
	}
	return int(n), nil
}

// pushVariantIndex writes an enum discriminant as a 32-bit varint, per
// spec.md §3/§4.5.
func pushVariantIndex(f SerializeFlavor, idx uint32) error {
	return pushU32(f, idx)
}

func takeVariantIndex(f DeserializeFlavor, numVariants int) (uint32, error) {
	idx, err := takeU32(f)
	if err != nil {
		return 0, err
	}
	if numVariants >= 0 && int(idx) >= numVariants {
		return 0, newErr("take_variant_index", ErrBadEnumDiscriminant)
	}
	return idx, nil
}
