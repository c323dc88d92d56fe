package frame

import (
	"github.com/wippyai/cql-codec/errors"
)

// SharedBytes is an owned view of cell contents that shares storage with
// the receive buffer it was taken from. Obtaining one is O(1); the cost is
// that it keeps the whole buffer reachable. Treat it as read-only.
type SharedBytes []byte

// Slice is a borrowed, bounds-checked window into a frame buffer. It is
// valid only while the underlying buffer is; decoded values that must
// outlive the buffer go through ToOwned or copy the bytes.
type Slice struct {
	buf []byte
	off int
	n   int
}

// NewSlice creates a window of n bytes starting at off. Construction fails
// if the window would exceed the buffer bound.
func NewSlice(buf []byte, off, n int) (*Slice, error) {
	if off < 0 || n < 0 || off+n > len(buf) {
		return nil, errors.New(errors.PhaseParse, errors.KindUnexpectedEOF).
			Detail("slice [%d:%d] exceeds buffer of %d bytes", off, off+n, len(buf)).
			Build()
	}
	return &Slice{buf: buf, off: off, n: n}, nil
}

// Bytes returns the windowed bytes without copying
func (s *Slice) Bytes() []byte {
	return s.buf[s.off : s.off+s.n]
}

// Len returns the window length in bytes
func (s *Slice) Len() int {
	return s.n
}

// ToOwned escapes the cursor's framing by returning a view that shares the
// backing storage. The three-index slice prevents appends from clobbering
// neighboring cells.
func (s *Slice) ToOwned() SharedBytes {
	return SharedBytes(s.buf[s.off : s.off+s.n : s.off+s.n])
}
