package codec

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

// cellOf wraps raw cell contents in a frame slice
func cellOf(t *testing.T, b []byte) *frame.Slice {
	t.Helper()
	s, err := frame.NewSlice(b, 0, len(b))
	if err != nil {
		t.Fatalf("NewSlice failed: %v", err)
	}
	return s
}

// decode runs the full read path: type check, then decode
func decode[T any](t *testing.T, c Codec[T], typ *cqltype.Type, contents []byte) (T, error) {
	t.Helper()
	if err := c.TypeCheck(typ); err != nil {
		t.Fatalf("TypeCheck(%v) failed: %v", typ, err)
	}
	return c.Decode(typ, cellOf(t, contents))
}

// encodeBytes runs Encode and returns the cell contents without the prefix
func encodeBytes[T any](t *testing.T, c Codec[T], typ *cqltype.Type, v T) []byte {
	t.Helper()
	w := frame.NewCellWriter()
	if _, err := c.Encode(typ, v, w); err != nil {
		t.Fatalf("Encode(%v) failed: %v", v, err)
	}
	cur := frame.NewCursor(w.Bytes())
	cell, err := cur.ReadCell()
	if err != nil {
		t.Fatalf("reading back encoded cell: %v", err)
	}
	if cell == nil {
		t.Fatal("encoded cell is null")
	}
	return cell.Bytes()
}

// roundTrip encodes v and decodes it back
func roundTrip[T any](t *testing.T, c Codec[T], typ *cqltype.Type, v T) T {
	t.Helper()
	got, err := decode(t, c, typ, encodeBytes(t, c, typ, v))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return got
}

// wantKind asserts that err unwraps to a structured error of the kind
func wantKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	var inner *errors.Error
	if !stderrors.As(err, &inner) {
		t.Fatalf("error %v does not unwrap to *errors.Error", err)
	}
	if inner.Kind != kind {
		t.Errorf("error kind = %s, want %s", inner.Kind, kind)
	}
}
