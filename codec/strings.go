package codec

import (
	"unicode/utf8"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

var (
	Text       TextCodec
	Blob       BlobCodec
	SharedBlob SharedBlobCodec
)

// TextCodec converts ascii, text and varchar columns to string. For ascii
// columns the bytes are additionally validated to be 7-bit; text and
// varchar require valid UTF-8.
type TextCodec struct{}

func (TextCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "string", cqltype.KindAscii, cqltype.KindText, cqltype.KindVarchar)
}

func (TextCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (string, error) {
	if err := ensureNotNull(cell, "string", typ); err != nil {
		return "", err
	}
	b := cell.Bytes()
	if typ.Kind() == cqltype.KindAscii {
		if err := checkAscii(b); err != nil {
			return "", errors.NewDecodeError(err)
		}
	} else if !utf8.Valid(b) {
		return "", errors.NewDecodeError(errors.InvalidUTF8(errors.PhaseDecode, "string", b))
	}
	return string(b), nil
}

func (TextCodec) Encode(typ *cqltype.Type, v string, w *frame.CellWriter) (frame.WrittenCell, error) {
	if typ.Kind() == cqltype.KindAscii {
		if err := checkAscii([]byte(v)); err != nil {
			return frame.WrittenCell{}, errors.NewEncodeError(err)
		}
	}
	return w.WriteCell([]byte(v)), nil
}

func checkAscii(b []byte) error {
	for _, c := range b {
		if c >= 0x80 {
			return errors.ExpectedAscii("string", b)
		}
	}
	return nil
}

// BlobCodec converts blob columns to a fresh []byte. The result owns its
// storage and stays valid after the frame buffer is recycled.
type BlobCodec struct{}

func (BlobCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "[]byte", cqltype.KindBlob)
}

func (BlobCodec) Decode(typ *cqltype.Type, cell *frame.Slice) ([]byte, error) {
	if err := ensureNotNull(cell, "[]byte", typ); err != nil {
		return nil, err
	}
	return append([]byte(nil), cell.Bytes()...), nil
}

func (BlobCodec) Encode(typ *cqltype.Type, v []byte, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(v), nil
}

// SharedBlobCodec converts blob columns to frame.SharedBytes without
// copying. The decoded value aliases the frame buffer; use it when the
// buffer outlives the value, BlobCodec otherwise.
type SharedBlobCodec struct{}

func (SharedBlobCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "frame.SharedBytes", cqltype.KindBlob)
}

func (SharedBlobCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (frame.SharedBytes, error) {
	if err := ensureNotNull(cell, "frame.SharedBytes", typ); err != nil {
		return nil, err
	}
	return cell.ToOwned(), nil
}

func (SharedBlobCodec) Encode(typ *cqltype.Type, v frame.SharedBytes, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(v), nil
}
