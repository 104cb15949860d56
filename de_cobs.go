package postwire

// DecodeCobs reverses Consistent-Overhead Byte Stuffing. frame is the full
// framed byte run produced by Cobs.Finalize, including the trailing 0x00
// sentinel (it is trimmed internally if present). Returns ErrBadEncoding if
// the frame is malformed (a code byte pointing past the end of the input).
func DecodeCobs(frame []byte) ([]byte, error) {
	if len(frame) > 0 && frame[len(frame)-1] == 0 {
		frame = frame[:len(frame)-1]
	}

	out := make([]byte, 0, len(frame))
	i := 0
	for i < len(frame) {
		code := frame[i]
		if code == 0 {
			return nil, newErr("decode_cobs", ErrBadEncoding)
		}
		i++
		run := int(code) - 1
		if i+run > len(frame) {
			return nil, newErr("decode_cobs", ErrBadEncoding)
		}
		out = append(out, frame[i:i+run]...)
		i += run
		if code != 0xFF && i < len(frame) {
			out = append(out, 0)
		}
	}
	return out, nil
}
