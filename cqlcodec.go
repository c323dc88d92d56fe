package cqlcodec

import (
	"fmt"

	"github.com/wippyai/cql-codec/codec"
	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

// DecodeCell type-checks typ against the codec, then decodes one framed
// cell (4-byte length prefix included) from raw. For row loops, type-check
// once and use the codec directly instead.
func DecodeCell[T any](c codec.Codec[T], typ *cqltype.Type, raw []byte) (T, error) {
	var zero T
	if err := c.TypeCheck(typ); err != nil {
		return zero, err
	}
	cur := frame.NewCursor(raw)
	cell, err := cur.ReadCell()
	if err != nil {
		return zero, errors.NewDecodeError(
			errors.ParseFailed(errors.PhaseDecode, fmt.Sprintf("%T", zero), typ.String(), err))
	}
	return c.Decode(typ, cell)
}

// EncodeCell type-checks typ against the codec, then encodes v as one
// framed cell and returns its bytes
func EncodeCell[T any](c codec.Codec[T], typ *cqltype.Type, v T) ([]byte, error) {
	if err := c.TypeCheck(typ); err != nil {
		return nil, err
	}
	w := frame.NewCellWriter()
	if _, err := c.Encode(typ, v, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
