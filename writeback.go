package kaitaistream

// SetWriteBackHandler registers the callback that WriteBackChildStreams
// invokes, on this stream's immediate parent, once this stream's own
// children (if any) have finished writing back.
func (s *Stream) SetWriteBackHandler(h *WriteBackHandler) {
	s.writeBack = h
}

// AddChildStream registers child as one of this stream's children, to be
// walked by a later WriteBackChildStreams call. Substream already does
// this automatically; this is exposed for generated code that builds
// child streams some other way.
func (s *Stream) AddChildStream(child *Stream) {
	s.children = append(s.children, child)
}

// WriteBackChildStreams walks this stream's registered children in
// registration order, recursing into each one first, then invokes this
// stream's own write-back handler against parent:
//
//  1. Remember the current position P.
//  2. For each child, in registration order, recursively call the
//     child's WriteBackChildStreams with this stream as its parent.
//  3. Clear the child list and seek back to P.
//  4. If parent is non-nil and a handler is registered, invoke it.
//
// parent is nil for the top-level call; pass the stream that owns the
// substream being finalized otherwise. Each handler is invoked exactly
// once; errors propagate immediately and stop the walk.
func (s *Stream) WriteBackChildStreams(parent *Stream) error {
	savedPos := s.Pos()

	for _, child := range s.children {
		if err := child.WriteBackChildStreams(s); err != nil {
			return err
		}
	}
	s.children = nil

	if err := s.Seek(savedPos); err != nil {
		return err
	}

	if parent != nil && s.writeBack != nil {
		handler := s.writeBack
		s.writeBack = nil
		return handler.Write(parent)
	}
	return nil
}
