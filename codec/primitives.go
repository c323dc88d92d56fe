package codec

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/frame"
)

// Built-in fixed-width codecs. All are stateless; use the package variables.
var (
	Boolean  BooleanCodec
	TinyInt  TinyIntCodec
	SmallInt SmallIntCodec
	Int      IntCodec
	BigInt   BigIntCodec
	Counter  CounterCodec
	Float    FloatCodec
	Double   DoubleCodec
)

// BooleanCodec converts boolean columns to bool. The wire format is a
// single byte; any non-zero value decodes to true.
type BooleanCodec struct{}

func (BooleanCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "bool", cqltype.KindBoolean)
}

func (BooleanCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (bool, error) {
	if err := ensureNotNull(cell, "bool", typ); err != nil {
		return false, err
	}
	if err := exactLength(cell, 1, "bool", typ); err != nil {
		return false, err
	}
	return cell.Bytes()[0] != 0, nil
}

func (BooleanCodec) Encode(typ *cqltype.Type, v bool, w *frame.CellWriter) (frame.WrittenCell, error) {
	b := byte(0)
	if v {
		b = 1
	}
	return w.WriteCell([]byte{b}), nil
}

func (BooleanCodec) emptiable() {}

// TinyIntCodec converts tinyint columns to int8
type TinyIntCodec struct{}

func (TinyIntCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "int8", cqltype.KindTinyInt)
}

func (TinyIntCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (int8, error) {
	if err := ensureNotNull(cell, "int8", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 1, "int8", typ); err != nil {
		return 0, err
	}
	return int8(cell.Bytes()[0]), nil
}

func (TinyIntCodec) Encode(typ *cqltype.Type, v int8, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell([]byte{byte(v)}), nil
}

func (TinyIntCodec) emptiable() {}

// SmallIntCodec converts smallint columns to int16
type SmallIntCodec struct{}

func (SmallIntCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "int16", cqltype.KindSmallInt)
}

func (SmallIntCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (int16, error) {
	if err := ensureNotNull(cell, "int16", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 2, "int16", typ); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(cell.Bytes())), nil
}

func (SmallIntCodec) Encode(typ *cqltype.Type, v int16, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint16(nil, uint16(v))), nil
}

func (SmallIntCodec) emptiable() {}

// IntCodec converts int columns to int32
type IntCodec struct{}

func (IntCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "int32", cqltype.KindInt)
}

func (IntCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (int32, error) {
	if err := ensureNotNull(cell, "int32", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 4, "int32", typ); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(cell.Bytes())), nil
}

func (IntCodec) Encode(typ *cqltype.Type, v int32, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint32(nil, uint32(v))), nil
}

func (IntCodec) emptiable() {}

// BigIntCodec converts bigint and counter columns to int64. Counter values
// are 8-byte signed integers on the wire, same as bigint.
type BigIntCodec struct{}

func (BigIntCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "int64", cqltype.KindBigInt, cqltype.KindCounter)
}

func (BigIntCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (int64, error) {
	if err := ensureNotNull(cell, "int64", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 8, "int64", typ); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(cell.Bytes())), nil
}

func (BigIntCodec) Encode(typ *cqltype.Type, v int64, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint64(nil, uint64(v))), nil
}

func (BigIntCodec) emptiable() {}

// CounterCodec converts counter columns to cqltype.Counter, keeping counter
// state distinct from ordinary bigints in the Go type system
type CounterCodec struct{}

func (CounterCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "cqltype.Counter", cqltype.KindCounter)
}

func (CounterCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (cqltype.Counter, error) {
	if err := ensureNotNull(cell, "cqltype.Counter", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 8, "cqltype.Counter", typ); err != nil {
		return 0, err
	}
	return cqltype.Counter(binary.BigEndian.Uint64(cell.Bytes())), nil
}

func (CounterCodec) Encode(typ *cqltype.Type, v cqltype.Counter, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint64(nil, uint64(v))), nil
}

// FloatCodec converts float columns to float32
type FloatCodec struct{}

func (FloatCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "float32", cqltype.KindFloat)
}

func (FloatCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (float32, error) {
	if err := ensureNotNull(cell, "float32", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 4, "float32", typ); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(cell.Bytes())), nil
}

func (FloatCodec) Encode(typ *cqltype.Type, v float32, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint32(nil, math.Float32bits(v))), nil
}

func (FloatCodec) emptiable() {}

// DoubleCodec converts double columns to float64
type DoubleCodec struct{}

func (DoubleCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "float64", cqltype.KindDouble)
}

func (DoubleCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (float64, error) {
	if err := ensureNotNull(cell, "float64", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 8, "float64", typ); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(cell.Bytes())), nil
}

func (DoubleCodec) Encode(typ *cqltype.Type, v float64, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint64(nil, math.Float64bits(v))), nil
}

func (DoubleCodec) emptiable() {}
