package kaitaistream

import (
	"bytes"
	"errors"
	"io"
)

// ReadBytes returns exactly n bytes, or ErrEndOfStream if that would read
// past the end of the backing store.
func (s *Stream) ReadBytes(n int64) ([]byte, error) {
	return s.readRaw(n)
}

// WriteBytes writes data verbatim at the current cursor.
func (s *Stream) WriteBytes(data []byte) error {
	return s.writeRaw(data)
}

// ReadBytesFull returns every byte from the current position to the end
// of the backing store.
func (s *Stream) ReadBytesFull() ([]byte, error) {
	remaining := s.Size() - s.Pos()
	if remaining < 0 {
		remaining = 0
	}
	return s.readRaw(remaining)
}

// ReadBytesTerm scans forward for a single terminator byte.
// The returned slice includes term iff includeTerm. The cursor is left
// immediately after term iff consumeTerm, otherwise immediately before it.
// Reaching EOF without finding term raises ErrEndOfStream iff eosError,
// otherwise it returns whatever was read.
//
// term is typed byte, not int as in the reference runtime, so the
// "never matches" out-of-range case that a wider terminator type would
// need to account for can't occur here by construction.
func (s *Stream) ReadBytesTerm(term byte, includeTerm, consumeTerm, eosError bool) ([]byte, error) {
	if err := s.ensureAligned(); err != nil {
		return nil, err
	}
	var result []byte
	for {
		b, err := s.store.ReadN(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if eosError {
					return nil, mapStoreErr(err, s.Pos())
				}
				return result, nil
			}
			return nil, mapStoreErr(err, s.Pos())
		}
		if b[0] == term {
			if includeTerm {
				result = append(result, b[0])
			}
			if !consumeTerm {
				if err := s.store.Seek(s.store.Pos() - 1); err != nil {
					return nil, mapStoreErr(err, s.Pos())
				}
			}
			return result, nil
		}
		result = append(result, b[0])
	}
}

// ReadBytesTermMulti is ReadBytesTerm generalized to a multi-byte
// terminator sequence. The scan advances one byte at a time; a
// match requires the upcoming len(term) bytes to equal term in order.
//
// If EOF occurs mid-pattern and eosError is false, the trailing bytes of
// the partial match are included in the returned array along with
// everything read before them, the same way ReadBytesTerm returns all
// bytes read before EOF.
func (s *Stream) ReadBytesTermMulti(term []byte, includeTerm, consumeTerm, eosError bool) ([]byte, error) {
	if len(term) == 0 {
		return []byte{}, nil
	}
	if err := s.ensureAligned(); err != nil {
		return nil, err
	}
	var result []byte
	for {
		b, err := s.store.ReadN(1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if eosError {
					return nil, mapStoreErr(err, s.Pos())
				}
				return result, nil
			}
			return nil, mapStoreErr(err, s.Pos())
		}
		result = append(result, b[0])
		if len(result) >= len(term) && bytes.Equal(result[len(result)-len(term):], term) {
			if !consumeTerm {
				if err := s.store.Seek(s.store.Pos() - int64(len(term))); err != nil {
					return nil, mapStoreErr(err, s.Pos())
				}
			}
			if !includeTerm {
				result = result[:len(result)-len(term)]
			}
			return result, nil
		}
	}
}

// EnsureFixedContents reads len(expected) bytes and raises
// UnexpectedFixedContentError if they don't match expected exactly.
func (s *Stream) EnsureFixedContents(expected []byte) ([]byte, error) {
	actual, err := s.ReadBytes(int64(len(expected)))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(actual, expected) {
		return actual, &UnexpectedFixedContentError{Actual: actual, Expected: expected, Pos: s.Pos()}
	}
	return actual, nil
}
