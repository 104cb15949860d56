package postwire

import "math/big"

// I128 and U128 back the data model's 128-bit integer kinds. Go has no
// native 128-bit integer, and none of the retrieved pack's dependencies
// supply one either (the closest candidates — klauspost/compress,
// dchest/siphash, google/uuid — are all unrelated to arbitrary-width
// arithmetic), so these widths are represented with math/big.Int:
// stdlib, but the narrowest stdlib surface that can hold and shift a
// 128-bit value without hand-rolled two-word arithmetic.

// appendVarintBig LEB128-encodes a non-negative v, mirroring appendVarint
// but over an arbitrary-precision magnitude.
func appendVarintBig(buf []byte, v *big.Int) []byte {
	v = new(big.Int).Set(v)
	mask := big.NewInt(0x7f)
	tmp := new(big.Int)
	for {
		tmp.And(v, mask)
		b := byte(tmp.Uint64())
		v.Rsh(v, 7)
		if v.Sign() == 0 {
			return append(buf, b)
		}
		buf = append(buf, b|0x80)
	}
}

// decodeVarintBig mirrors decodeVarint for a width-bit unsigned value,
// enforcing the same canonicality rule on the final byte.
func decodeVarintBig(pop func() (byte, error), maxBytes, width int) (*big.Int, error) {
	v := new(big.Int)
	mask := lastByteMask(width)
	for i := 0; i < maxBytes; i++ {
		b, err := pop()
		if err != nil {
			return nil, err
		}
		last := i == maxBytes-1
		if last {
			if b&0x80 != 0 || b&^mask != 0 {
				return nil, newErr("decode_varint128", ErrBadVarint)
			}
			v.Or(v, new(big.Int).Lsh(big.NewInt(int64(b)), uint(7*i)))
			return v, nil
		}
		v.Or(v, new(big.Int).Lsh(big.NewInt(int64(b&0x7F)), uint(7*i)))
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return nil, newErr("decode_varint128", ErrBadVarint)
}

// zigzagEncode128 maps a signed 128-bit value (two's complement, width 128)
// to an unsigned one: (n << 1) ^ (n >> 127).
func zigzagEncode128(n *big.Int) *big.Int {
	left := new(big.Int).Lsh(n, 1)
	right := new(big.Int).Rsh(n, 127)
	return left.Xor(left, right)
}

// zigzagDecode128 inverts zigzagEncode128: (u >> 1) ^ -(u & 1).
func zigzagDecode128(u *big.Int) *big.Int {
	half := new(big.Int).Rsh(u, 1)
	bit := new(big.Int).And(u, big.NewInt(1))
	if bit.Sign() != 0 {
		return half.Xor(half, big.NewInt(-1))
	}
	return half
}

const maxVarintBytesU128 = 19 // ceil(128/7)
