// Package leb128 implements the variable-length integer encoding used
// by the WebAssembly binary format, plus the fixed-width little-endian
// encoding of IEEE 754 floats.
//
// Every integer has exactly one canonical encoding: signed values
// terminate as soon as the remaining bits are pure sign extension,
// unsigned values as soon as the remaining bits are zero. Zero encodes
// as a single 0x00 byte in both forms.
package leb128

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

const continuation = 0x80

// ErrOverflow is returned when a decoded value exceeds 64 bits.
var ErrOverflow = errors.New("leb128: overflow")

// AppendSigned appends the signed LEB128 encoding of v to dst.
func AppendSigned(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(dst, b)
		}
		dst = append(dst, b|continuation)
	}
}

// AppendUnsigned appends the unsigned LEB128 encoding of v to dst.
func AppendUnsigned(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|continuation)
	}
}

// WriteSigned writes the signed LEB128 encoding of v and returns the
// number of bytes written.
func WriteSigned(w io.Writer, v int64) (int, error) {
	var buf [10]byte
	return w.Write(AppendSigned(buf[:0], v))
}

// WriteUnsigned writes the unsigned LEB128 encoding of v and returns
// the number of bytes written.
func WriteUnsigned(w io.Writer, v uint64) (int, error) {
	var buf [10]byte
	return w.Write(AppendUnsigned(buf[:0], v))
}

// ReadSigned decodes a signed LEB128 value.
func ReadSigned(r io.ByteReader) (int64, error) {
	var result int64
	var shift uint
	var b byte
	for {
		var err error
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&continuation == 0 {
			break
		}
		if shift >= 70 {
			return 0, ErrOverflow
		}
	}
	// Sign extend
	if shift < 64 && b&0x40 != 0 {
		result |= ^int64(0) << shift
	}
	return result, nil
}

// ReadUnsigned decodes an unsigned LEB128 value.
func ReadUnsigned(r io.ByteReader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&continuation == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 70 {
			return 0, ErrOverflow
		}
	}
}

// AppendFloat32 appends the little-endian bit pattern of f (4 bytes).
func AppendFloat32(dst []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
}

// AppendFloat64 appends the little-endian bit pattern of f (8 bytes).
func AppendFloat64(dst []byte, f float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, math.Float64bits(f))
}

// WriteFloat32 writes the little-endian bit pattern of f and returns
// the number of bytes written, always 4 on success.
func WriteFloat32(w io.Writer, f float32) (int, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
	return w.Write(buf[:])
}

// WriteFloat64 writes the little-endian bit pattern of f and returns
// the number of bytes written, always 8 on success.
func WriteFloat64(w io.Writer, f float64) (int, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	return w.Write(buf[:])
}
