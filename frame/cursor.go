package frame

import (
	"encoding/binary"
	"math/bits"

	"github.com/wippyai/cql-codec/errors"
)

// Cursor walks a frame payload from left to right. It does not own the
// buffer and never copies from it; every read either advances the position
// or fails without side effects.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor over an externally-owned buffer
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current byte offset
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) take(n int) ([]byte, error) {
	if c.Remaining() < n {
		return nil, errors.UnexpectedEOF(n, c.Remaining())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadCell consumes a 4-byte signed big-endian length prefix followed by
// that many bytes. A negative length is the protocol's null sentinel and
// yields (nil, nil); zero length yields a present, empty slice.
func (c *Cursor) ReadCell() (*Slice, error) {
	n, err := c.ReadInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}
	off := c.pos
	if _, err := c.take(int(n)); err != nil {
		return nil, err
	}
	return &Slice{buf: c.buf, off: off, n: int(n)}, nil
}

// ReadInt reads a 4-byte signed big-endian integer
func (c *Cursor) ReadInt() (int32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// ReadShort reads a 2-byte unsigned big-endian integer
func (c *Cursor) ReadShort() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadString reads a short-length-prefixed UTF-8 string
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadShort()
	if err != nil {
		return "", err
	}
	b, err := c.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadUnsignedVint reads one protocol varint: the count of leading one bits
// in the first byte gives the number of extension bytes.
func (c *Cursor) ReadUnsignedVint() (uint64, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	first := b[0]
	extra := bits.LeadingZeros8(^first)
	u := uint64(first & byte(0xff>>extra))
	if extra == 0 {
		return u, nil
	}
	rest, err := c.take(extra)
	if err != nil {
		return 0, err
	}
	for _, by := range rest {
		u = u<<8 | uint64(by)
	}
	return u, nil
}

// ReadVint reads one zigzag-encoded signed varint
func (c *Cursor) ReadVint() (int64, error) {
	u, err := c.ReadUnsignedVint()
	if err != nil {
		return 0, err
	}
	return zigzagDecode(u), nil
}
