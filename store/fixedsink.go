package store

import (
	"io"

	"github.com/noxer/bytewriter"
)

// FixedSink is a write-only backing store over a pre-sized []byte, for
// serializers that know the final size upfront (e.g. a substream carved
// from a parent that can't share memory, where the child's length n is
// already known even though its content is filled in later). Sequential
// writes go through bytewriter to drive the fixed-capacity []byte as an
// io.Writer; a Seek re-anchors it at the new cursor.
type FixedSink struct {
	buf  []byte
	w    io.Writer
	pos  int64
	size int64
}

// NewFixedSink allocates a zero-filled sink of the given capacity.
func NewFixedSink(capacity int64) *FixedSink {
	buf := make([]byte, capacity)
	return &FixedSink{
		buf:  buf,
		w:    bytewriter.New(buf),
		size: capacity,
	}
}

func (s *FixedSink) Pos() int64 { return s.pos }

func (s *FixedSink) Size() int64 { return s.size }

func (s *FixedSink) IsEOF() bool { return s.pos >= s.size }

func (s *FixedSink) Seek(pos int64) error {
	if pos < 0 || pos > s.size {
		return io.EOF
	}
	s.pos = pos
	s.w = bytewriter.New(s.buf[pos:])
	return nil
}

func (s *FixedSink) ReadN(n int64) ([]byte, error) {
	return nil, ErrUnsupported
}

func (s *FixedSink) WriteN(data []byte) error {
	if s.pos+int64(len(data)) > s.size {
		return io.EOF
	}
	if len(data) > 0 {
		if _, err := s.w.Write(data); err != nil {
			return err
		}
	}
	s.pos += int64(len(data))
	return nil
}

func (s *FixedSink) Close() error { return nil }

// Bytes returns the full fixed-capacity buffer, satisfying ByteProvider.
func (s *FixedSink) Bytes() []byte { return s.buf }
