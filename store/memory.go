package store

import (
	"io"

	"github.com/xaionaro-go/bytesextra"
)

// Memory is a fixed-capacity, in-memory backing store over a byte slice.
// It wraps bytesextra.ReadWriteSeeker for the actual cursor-relative I/O.
type Memory struct {
	data []byte
	rws  io.ReadWriteSeeker
	pos  int64
}

// NewMemory wraps data as a fixed-capacity backing store. Writes mutate
// data in place; reads never copy beyond what's requested.
func NewMemory(data []byte) *Memory {
	return &Memory{
		data: data,
		rws:  bytesextra.NewReadWriteSeeker(data),
	}
}

func (m *Memory) Pos() int64 { return m.pos }

func (m *Memory) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(m.data)) {
		return io.EOF
	}
	if _, err := m.rws.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	m.pos = pos
	return nil
}

func (m *Memory) Size() int64 { return int64(len(m.data)) }

func (m *Memory) IsEOF() bool { return m.pos >= int64(len(m.data)) }

func (m *Memory) ReadN(n int64) ([]byte, error) {
	if n < 0 || m.pos+n > int64(len(m.data)) {
		return nil, io.EOF
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(m.rws, buf); err != nil {
			return nil, err
		}
	}
	m.pos += n
	return buf, nil
}

func (m *Memory) WriteN(data []byte) error {
	if m.pos+int64(len(data)) > int64(len(m.data)) {
		return io.EOF
	}
	if len(data) > 0 {
		if _, err := m.rws.Write(data); err != nil {
			return err
		}
	}
	m.pos += int64(len(data))
	return nil
}

func (m *Memory) Close() error { return nil }

// Bytes returns the full underlying slice, satisfying ByteProvider.
func (m *Memory) Bytes() []byte { return m.data }

// Window carves out a bounded sub-view that shares the same underlying
// array as m, so writes through the child are visible to the parent and
// vice versa without any write-back registration.
func (m *Memory) Window(base, length int64) (BackingStore, error) {
	if base < 0 || length < 0 || base+length > int64(len(m.data)) {
		return nil, io.EOF
	}
	return NewMemory(m.data[base : base+length : base+length]), nil
}
