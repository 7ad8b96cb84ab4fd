package kaitaistream

import (
	"fmt"
	"io"

	"github.com/kaitai-io/runtime-go/store"
)

// Substream carves a bounded, n-byte view out of the stream starting at
// the current position, advancing the parent's cursor by exactly n. The
// child's cursor starts at 0 with an empty bit accumulator.
//
// When the parent's backing store can share memory for the window (Memory
// and File both can), the child is wired directly to it: writes through
// either stream are visible to the other with no further action needed.
// When it can't (the parent is a write-only sink), the child gets its own
// independent fixed-capacity buffer and a WriteBackHandler is registered
// automatically so that WriteBackChildStreams later re-seeks into the
// parent and copies the finished child bytes into place.
func (s *Stream) Substream(n int64) (*Stream, error) {
	if n < 0 {
		return nil, ErrUnsupportedOperation.withMessage("substream length must be non-negative")
	}
	if err := s.ensureAligned(); err != nil {
		return nil, err
	}
	if s.Pos()+n > s.Size() {
		return nil, mapStoreErr(io.EOF, s.Pos())
	}

	if w, ok := s.store.(store.Windower); ok {
		parentPos := s.Pos()
		child, err := w.Window(parentPos, n)
		if err != nil {
			return nil, mapStoreErr(err, parentPos)
		}
		if err := s.store.Seek(parentPos + n); err != nil {
			return nil, mapStoreErr(err, parentPos)
		}
		cs := &Stream{store: child}
		s.children = append(s.children, cs)
		return cs, nil
	}

	parentPos := s.Pos()
	if err := s.store.Seek(parentPos + n); err != nil {
		return nil, mapStoreErr(err, parentPos)
	}
	cs := &Stream{store: store.NewFixedSink(n)}
	cs.SetWriteBackHandler(&WriteBackHandler{
		Pos: parentPos,
		Write: func(parent *Stream) error {
			data, err := cs.ToByteArray()
			if err != nil {
				return err
			}
			if int64(len(data)) != n {
				return ErrUnsupportedOperation.withMessage(
					fmt.Sprintf("write-back size mismatch: expected %d got %d", n, len(data)),
				)
			}
			if err := parent.Seek(parentPos); err != nil {
				return err
			}
			return parent.writeRaw(data)
		},
	})
	s.children = append(s.children, cs)
	return cs, nil
}

// Span is positional metadata attached by generated code to parsed fields
// for debugging or visualization. Offset is the absolute
// position of the stream's origin within its root; Start/End are relative
// to that origin. A negative End means the field's extent wasn't parsed.
type Span struct {
	Offset int64
	Start  int64
	End    int64
}

// AbsoluteStart returns Offset + Start.
func (sp Span) AbsoluteStart() int64 { return sp.Offset + sp.Start }

// AbsoluteEnd returns Offset + End and true, or (0, false) if End is
// negative ("unparsed").
func (sp Span) AbsoluteEnd() (int64, bool) {
	if sp.End < 0 {
		return 0, false
	}
	return sp.Offset + sp.End, true
}

// ArraySpan extends Span with the ordered per-item spans of a repeated
// field.
type ArraySpan struct {
	Span
	Items []Span
}
