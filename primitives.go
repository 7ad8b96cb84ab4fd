package kaitaistream

import (
	"encoding/binary"
	"math"
)

// ReadU1 reads an unsigned 8-bit integer.
func (s *Stream) ReadU1() (uint8, error) {
	b, err := s.readRaw(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadS1 reads a signed 8-bit integer.
func (s *Stream) ReadS1() (int8, error) {
	v, err := s.ReadU1()
	return int8(v), err
}

// WriteU1 writes an unsigned 8-bit integer.
func (s *Stream) WriteU1(v uint8) error {
	return s.writeRaw([]byte{v})
}

// WriteS1 writes a signed 8-bit integer.
func (s *Stream) WriteS1(v int8) error {
	return s.WriteU1(uint8(v))
}

// ReadU2be reads an unsigned 16-bit big-endian integer.
func (s *Stream) ReadU2be() (uint16, error) {
	b, err := s.readRaw(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU2le reads an unsigned 16-bit little-endian integer.
func (s *Stream) ReadU2le() (uint16, error) {
	b, err := s.readRaw(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadS2be reads a signed 16-bit big-endian integer.
func (s *Stream) ReadS2be() (int16, error) {
	v, err := s.ReadU2be()
	return int16(v), err
}

// ReadS2le reads a signed 16-bit little-endian integer.
func (s *Stream) ReadS2le() (int16, error) {
	v, err := s.ReadU2le()
	return int16(v), err
}

// WriteU2be writes an unsigned 16-bit big-endian integer.
func (s *Stream) WriteU2be(v uint16) error {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return s.writeRaw(b)
}

// WriteU2le writes an unsigned 16-bit little-endian integer.
func (s *Stream) WriteU2le(v uint16) error {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return s.writeRaw(b)
}

// WriteS2be writes a signed 16-bit big-endian integer.
func (s *Stream) WriteS2be(v int16) error { return s.WriteU2be(uint16(v)) }

// WriteS2le writes a signed 16-bit little-endian integer.
func (s *Stream) WriteS2le(v int16) error { return s.WriteU2le(uint16(v)) }

// ReadU4be reads an unsigned 32-bit big-endian integer.
func (s *Stream) ReadU4be() (uint32, error) {
	b, err := s.readRaw(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU4le reads an unsigned 32-bit little-endian integer.
func (s *Stream) ReadU4le() (uint32, error) {
	b, err := s.readRaw(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadS4be reads a signed 32-bit big-endian integer.
func (s *Stream) ReadS4be() (int32, error) {
	v, err := s.ReadU4be()
	return int32(v), err
}

// ReadS4le reads a signed 32-bit little-endian integer.
func (s *Stream) ReadS4le() (int32, error) {
	v, err := s.ReadU4le()
	return int32(v), err
}

// WriteU4be writes an unsigned 32-bit big-endian integer.
func (s *Stream) WriteU4be(v uint32) error {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return s.writeRaw(b)
}

// WriteU4le writes an unsigned 32-bit little-endian integer.
func (s *Stream) WriteU4le(v uint32) error {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return s.writeRaw(b)
}

// WriteS4be writes a signed 32-bit big-endian integer.
func (s *Stream) WriteS4be(v int32) error { return s.WriteU4be(uint32(v)) }

// WriteS4le writes a signed 32-bit little-endian integer.
func (s *Stream) WriteS4le(v int32) error { return s.WriteU4le(uint32(v)) }

// ReadU8be reads an unsigned 64-bit big-endian integer.
func (s *Stream) ReadU8be() (uint64, error) {
	b, err := s.readRaw(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadU8le reads an unsigned 64-bit little-endian integer.
func (s *Stream) ReadU8le() (uint64, error) {
	b, err := s.readRaw(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadS8be reads a signed 64-bit big-endian integer; the unsigned 8-byte
// path carries the bit pattern, and this just reinterprets it.
func (s *Stream) ReadS8be() (int64, error) {
	v, err := s.ReadU8be()
	return int64(v), err
}

// ReadS8le reads a signed 64-bit little-endian integer.
func (s *Stream) ReadS8le() (int64, error) {
	v, err := s.ReadU8le()
	return int64(v), err
}

// WriteU8be writes an unsigned 64-bit big-endian integer.
func (s *Stream) WriteU8be(v uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return s.writeRaw(b)
}

// WriteU8le writes an unsigned 64-bit little-endian integer.
func (s *Stream) WriteU8le(v uint64) error {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return s.writeRaw(b)
}

// WriteS8be writes a signed 64-bit big-endian integer.
func (s *Stream) WriteS8be(v int64) error { return s.WriteU8be(uint64(v)) }

// WriteS8le writes a signed 64-bit little-endian integer.
func (s *Stream) WriteS8le(v int64) error { return s.WriteU8le(uint64(v)) }

// ReadF4be reads an IEEE 754 binary32 big-endian float.
func (s *Stream) ReadF4be() (float32, error) {
	v, err := s.ReadU4be()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF4le reads an IEEE 754 binary32 little-endian float.
func (s *Stream) ReadF4le() (float32, error) {
	v, err := s.ReadU4le()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// WriteF4be writes an IEEE 754 binary32 big-endian float.
func (s *Stream) WriteF4be(v float32) error {
	return s.WriteU4be(math.Float32bits(v))
}

// WriteF4le writes an IEEE 754 binary32 little-endian float.
func (s *Stream) WriteF4le(v float32) error {
	return s.WriteU4le(math.Float32bits(v))
}

// ReadF8be reads an IEEE 754 binary64 big-endian float.
func (s *Stream) ReadF8be() (float64, error) {
	v, err := s.ReadU8be()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadF8le reads an IEEE 754 binary64 little-endian float.
func (s *Stream) ReadF8le() (float64, error) {
	v, err := s.ReadU8le()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// WriteF8be writes an IEEE 754 binary64 big-endian float.
func (s *Stream) WriteF8be(v float64) error {
	return s.WriteU8be(math.Float64bits(v))
}

// WriteF8le writes an IEEE 754 binary64 little-endian float.
func (s *Stream) WriteF8le(v float64) error {
	return s.WriteU8le(math.Float64bits(v))
}
