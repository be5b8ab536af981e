package typedstream

import "encoding/binary"

// readSignedInt reads a signed integer: tagI16/tagI32 introduce a wide
// little-endian form, otherwise the byte itself is a signed int8, with one
// deliberate wrinkle — a byte above referenceTag that is followed by another
// byte other than tagEnd is treated as noise to skip rather than a value, and
// the reader recurses onto the next byte. Such a byte at the end of the
// buffer is read as a plain int8. This quirk shows up in dictionary-like
// contexts and is regression-anchored by
// TestSignedIntegerSkipAndRecurseHeuristic.
func (r *reader) readSignedInt() (int64, error) {
	b, err := r.current()
	if err != nil {
		return 0, err
	}
	switch b {
	case tagI16:
		if err := r.advance(1); err != nil {
			return 0, err
		}
		raw, err := r.readExact(2)
		if err != nil {
			return 0, err
		}
		return int64(int16(binary.LittleEndian.Uint16(raw))), nil
	case tagI32:
		if err := r.advance(1); err != nil {
			return 0, err
		}
		raw, err := r.readExact(4)
		if err != nil {
			return 0, err
		}
		return int64(int32(binary.LittleEndian.Uint32(raw))), nil
	}
	if b > referenceTag {
		if nb, err := r.next(); err == nil && nb != tagEnd {
			if err := r.advance(1); err != nil {
				return 0, err
			}
			return r.readSignedInt()
		}
	}
	if err := r.advance(1); err != nil {
		return 0, err
	}
	return int64(int8(b)), nil
}

// readUnsignedInt mirrors readSignedInt without the skip-and-recurse
// wrinkle or int8 sign extension.
func (r *reader) readUnsignedInt() (uint64, error) {
	b, err := r.current()
	if err != nil {
		return 0, err
	}
	switch b {
	case tagI16:
		if err := r.advance(1); err != nil {
			return 0, err
		}
		raw, err := r.readExact(2)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(raw)), nil
	case tagI32:
		if err := r.advance(1); err != nil {
			return 0, err
		}
		raw, err := r.readExact(4)
		if err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(raw)), nil
	}
	if err := r.advance(1); err != nil {
		return 0, err
	}
	return uint64(b), nil
}

// readFloat reads a float: a DECIMAL tag reads four raw IEEE 754 bytes; any
// other prefix falls back to the signed-integer reader and converts, a
// deliberate interoperation quirk of the format.
func (r *reader) readFloat() (float32, error) {
	b, err := r.current()
	if err != nil {
		return 0, err
	}
	if b == tagDecimal {
		if err := r.advance(1); err != nil {
			return 0, err
		}
		raw, err := r.readExact(4)
		if err != nil {
			return 0, err
		}
		return float32FromBits(binary.LittleEndian.Uint32(raw)), nil
	}
	n, err := r.readSignedInt()
	if err != nil {
		return 0, err
	}
	return float32(n), nil
}

// readDouble mirrors readFloat for the 8-byte double form.
func (r *reader) readDouble() (float64, error) {
	b, err := r.current()
	if err != nil {
		return 0, err
	}
	if b == tagDecimal {
		if err := r.advance(1); err != nil {
			return 0, err
		}
		raw, err := r.readExact(8)
		if err != nil {
			return 0, err
		}
		return float64FromBits(binary.LittleEndian.Uint64(raw)), nil
	}
	n, err := r.readSignedInt()
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}
