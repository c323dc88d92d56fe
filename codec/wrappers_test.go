package codec

import (
	"testing"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

func TestNullable_NullToNil(t *testing.T) {
	c := Nullable[int32](Int)
	if err := c.TypeCheck(cqltype.TypeInt); err != nil {
		t.Fatal(err)
	}

	got, err := c.Decode(cqltype.TypeInt, nil)
	if err != nil {
		t.Fatalf("Decode(null) failed: %v", err)
	}
	if got != nil {
		t.Errorf("null decodes to %v, want nil", got)
	}

	got, err = c.Decode(cqltype.TypeInt, cellOf(t, []byte{0, 0, 0, 7}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got == nil || *got != 7 {
		t.Errorf("decode = %v, want 7", got)
	}
}

func TestNullable_EncodesNilAsNull(t *testing.T) {
	c := Nullable[int32](Int)
	w := frame.NewCellWriter()
	if _, err := c.Encode(cqltype.TypeInt, nil, w); err != nil {
		t.Fatalf("Encode(nil) failed: %v", err)
	}

	cur := frame.NewCursor(w.Bytes())
	cell, err := cur.ReadCell()
	if err != nil {
		t.Fatal(err)
	}
	if cell != nil {
		t.Errorf("nil should encode to the null sentinel, got %d bytes", cell.Len())
	}
}

func TestMaybeEmpty_EmptyCell(t *testing.T) {
	c := AsMaybeEmpty[int32](Int)
	if err := c.TypeCheck(cqltype.TypeInt); err != nil {
		t.Fatal(err)
	}

	got, err := c.Decode(cqltype.TypeInt, cellOf(t, nil))
	if err != nil {
		t.Fatalf("Decode(empty) failed: %v", err)
	}
	if !got.IsEmpty() {
		t.Error("zero-length cell should decode to the empty state")
	}
	if _, ok := got.Get(); ok {
		t.Error("Get on empty should report no value")
	}

	// the bare codec rejects the same cell
	_, err = Int.Decode(cqltype.TypeInt, cellOf(t, nil))
	wantKind(t, err, errors.KindByteLengthMismatch)
}

func TestMaybeEmpty_OrdinaryValue(t *testing.T) {
	c := AsMaybeEmpty[int32](Int)
	got, err := c.Decode(cqltype.TypeInt, cellOf(t, []byte{0, 0, 0, 9}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	v, ok := got.Get()
	if !ok || v != 9 {
		t.Errorf("Get() = %d, %v, want 9", v, ok)
	}
}

func TestMaybeEmpty_EncodesEmpty(t *testing.T) {
	c := AsMaybeEmpty[int32](Int)
	w := frame.NewCellWriter()
	if _, err := c.Encode(cqltype.TypeInt, Empty[int32](), w); err != nil {
		t.Fatalf("Encode(empty) failed: %v", err)
	}

	cur := frame.NewCursor(w.Bytes())
	cell, err := cur.ReadCell()
	if err != nil {
		t.Fatal(err)
	}
	if cell == nil || cell.Len() != 0 {
		t.Error("empty state should encode to a present zero-length cell")
	}
}

func TestNullableMaybeEmpty_Composition(t *testing.T) {
	c := Nullable[MaybeEmpty[int32]](AsMaybeEmpty[int32](Int))

	got, err := c.Decode(cqltype.TypeInt, nil)
	if err != nil || got != nil {
		t.Errorf("null decode = %v, %v", got, err)
	}

	got, err = c.Decode(cqltype.TypeInt, cellOf(t, nil))
	if err != nil {
		t.Fatalf("Decode(empty) failed: %v", err)
	}
	if got == nil || !got.IsEmpty() {
		t.Errorf("empty decode = %v", got)
	}

	got, err = c.Decode(cqltype.TypeInt, cellOf(t, []byte{0, 0, 0, 5}))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v, ok := got.Get(); !ok || v != 5 {
		t.Errorf("Get() = %d, %v, want 5", v, ok)
	}
}
