package kaitaistream

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/kaitai-io/runtime-go/store"
)

// ByteOrder selects big- or little-endian interpretation for a multi-byte
// primitive or a bit-level read/write.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

type bitMode int

const (
	bitModeNone bitMode = iota
	bitModeRead
	bitModeWrite
)

// bitAccumulator is the per-stream residue of up to 7 unconsumed bits,
// tagged by the order and mode they were last used with.
type bitAccumulator struct {
	bits  uint64
	left  uint8
	order ByteOrder
	mode  bitMode
}

// WriteBackHandler remembers a parent position to re-seek to once a
// child's content is finalized, and the callback to invoke there.
type WriteBackHandler struct {
	Pos   int64
	Write func(parent *Stream) error
}

// Stream is the central entity of this runtime: a backing store, a byte
// position, a bit accumulator, an optional write-back handler, and the
// children registered against it.
type Stream struct {
	store     store.BackingStore
	bits      bitAccumulator
	writeBack *WriteBackHandler
	children  []*Stream
	closed    bool
}

// FromFile opens path as a random-access backing store.
func FromFile(path string) (*Stream, error) {
	s, err := store.NewFile(path)
	if err != nil {
		return nil, ErrIO.wrap(err)
	}
	return &Stream{store: s}, nil
}

// FromBytes wraps an existing byte slice as a fixed-capacity, in-memory
// backing store. Writes mutate data in place.
func FromBytes(data []byte) *Stream {
	return &Stream{store: store.NewMemory(data)}
}

// FromBuffer is an alias of FromBytes for callers that already hold a
// pre-built buffer rather than a freshly allocated slice.
func FromBuffer(buf []byte) *Stream {
	return FromBytes(buf)
}

// WithCapacity allocates a fixed-capacity, write-only sink of n bytes, for
// serializers that know the final size upfront.
func WithCapacity(n int64) *Stream {
	return &Stream{store: store.NewFixedSink(n)}
}

// FromByteList creates a growable, write-only sink backed by an expanding
// byte slice, for serializers that don't know the final size upfront.
func FromByteList() *Stream {
	return &Stream{store: store.NewGrowableSink()}
}

// Pos returns the current cursor position.
func (s *Stream) Pos() int64 { return s.store.Pos() }

// Seek moves the cursor to an absolute position.
func (s *Stream) Seek(n int64) error {
	if err := s.store.Seek(n); err != nil {
		return mapStoreErr(err, s.Pos())
	}
	return nil
}

// Size returns the total number of bytes currently held by the backing
// store.
func (s *Stream) Size() int64 { return s.store.Size() }

// IsEOF reports whether the cursor sits at or past Size().
func (s *Stream) IsEOF() bool { return s.store.IsEOF() }

// ToByteArray returns the full contents of the stream's backing store,
// independent of the current cursor position.
func (s *Stream) ToByteArray() ([]byte, error) {
	if bp, ok := s.store.(store.ByteProvider); ok {
		return bp.Bytes(), nil
	}
	savedPos := s.Pos()
	defer s.store.Seek(savedPos)
	if err := s.store.Seek(0); err != nil {
		return nil, mapStoreErr(err, 0)
	}
	data, err := s.store.ReadN(s.Size())
	if err != nil {
		return nil, mapStoreErr(err, 0)
	}
	return data, nil
}

// AsReadOnlyView returns a new Stream over an independent copy of this
// stream's current contents. Unlike Substream, the result shares no memory
// with the original — it's meant for debugging/visualization consumers
// that want a stable snapshot.
func (s *Stream) AsReadOnlyView() (*Stream, error) {
	data, err := s.ToByteArray()
	if err != nil {
		return nil, err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return FromBytes(cp), nil
}

// Close flushes any unwritten bit residue and releases the backing store.
// If both the flush and the close fail, the close error is reported
// primary with the flush error attached as suppressed context via
// go-multierror.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.flushBits()
	closeErr := s.store.Close()
	if closeErr != nil {
		return multierror.Append(closeErr, flushErr).ErrorOrNil()
	}
	return flushErr
}

// ensureAligned discards or flushes any bit residue before a byte-aligned
// operation executes: any call that finds a nonzero bit count must first
// perform alignment.
func (s *Stream) ensureAligned() error {
	if s.bits.left == 0 {
		s.bits = bitAccumulator{}
		return nil
	}
	if s.bits.mode == bitModeWrite {
		return s.flushBits()
	}
	s.bits = bitAccumulator{}
	return nil
}

// flushBits emits the partial byte padded with zeros on the unused low
// (BE) or high (LE) side.
func (s *Stream) flushBits() error {
	if s.bits.mode != bitModeWrite || s.bits.left == 0 {
		s.bits = bitAccumulator{}
		return nil
	}
	var b byte
	if s.bits.order == BigEndian {
		b = byte((s.bits.bits << (8 - s.bits.left)) & 0xFF)
	} else {
		b = byte(s.bits.bits & 0xFF)
	}
	err := s.store.WriteN([]byte{b})
	s.bits = bitAccumulator{}
	if err != nil {
		return mapStoreErr(err, s.Pos())
	}
	return nil
}

// AlignToByte discards any unconsumed read-mode bit residue.
func (s *Stream) AlignToByte() {
	s.bits = bitAccumulator{}
}

// WriteAlignToByte flushes any unwritten bit residue as a zero-padded
// partial byte.
func (s *Stream) WriteAlignToByte() error {
	return s.flushBits()
}

// readRaw performs a byte-aligned read of n bytes at the cursor.
func (s *Stream) readRaw(n int64) ([]byte, error) {
	if err := s.ensureAligned(); err != nil {
		return nil, err
	}
	data, err := s.store.ReadN(n)
	if err != nil {
		return nil, mapStoreErr(err, s.Pos())
	}
	return data, nil
}

// writeRaw performs a byte-aligned write of data at the cursor.
func (s *Stream) writeRaw(data []byte) error {
	if err := s.ensureAligned(); err != nil {
		return err
	}
	if err := s.store.WriteN(data); err != nil {
		return mapStoreErr(err, s.Pos())
	}
	return nil
}

// mapStoreErr translates a backing-store failure into the public error
// taxonomy, attaching the stream position at the point of failure.
func mapStoreErr(err error, pos int64) error {
	switch {
	case errors.Is(err, io.EOF):
		return ErrEndOfStream.withMessage(fmt.Sprintf("at position %d", pos))
	case errors.Is(err, store.ErrUnsupported):
		return ErrUnsupportedOperation.wrap(err)
	default:
		return ErrIO.wrap(err)
	}
}
