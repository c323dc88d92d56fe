package codec

import (
	"math/big"
	"net"

	inf "gopkg.in/inf.v0"
	"go.uber.org/zap"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

// Dynamic decodes and encodes any column type as a cqltype.Value tree
var Dynamic DynamicCodec

// DynamicCodec converts between cells of any column type and
// cqltype.Value, for callers that only learn the schema at runtime.
// Collections, tuples and UDTs are decoded recursively; zero-length cells
// of types that cannot be natively empty become the empty value, even for
// kinds whose typed codecs stay strict (counter, duration).
type DynamicCodec struct{}

// TypeCheck accepts every column type
func (DynamicCodec) TypeCheck(typ *cqltype.Type) error {
	return nil
}

func (d DynamicCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (cqltype.Value, error) {
	if cell == nil {
		return cqltype.NullValue(typ), nil
	}
	if cell.Len() == 0 && !nativelyEmpty(typ.Kind()) {
		return cqltype.EmptyValue(typ), nil
	}

	switch typ.Kind() {
	case cqltype.KindBoolean:
		return decodeScalar[bool](typ, cell, Boolean)
	case cqltype.KindTinyInt:
		return decodeScalar[int8](typ, cell, TinyInt)
	case cqltype.KindSmallInt:
		return decodeScalar[int16](typ, cell, SmallInt)
	case cqltype.KindInt:
		return decodeScalar[int32](typ, cell, Int)
	case cqltype.KindBigInt:
		return decodeScalar[int64](typ, cell, BigInt)
	case cqltype.KindCounter:
		return decodeScalar[cqltype.Counter](typ, cell, Counter)
	case cqltype.KindFloat:
		return decodeScalar[float32](typ, cell, Float)
	case cqltype.KindDouble:
		return decodeScalar[float64](typ, cell, Double)
	case cqltype.KindAscii, cqltype.KindText, cqltype.KindVarchar:
		return decodeScalar[string](typ, cell, Text)
	case cqltype.KindBlob, cqltype.KindCustom:
		return cqltype.NewValue(typ, append([]byte(nil), cell.Bytes()...)), nil
	case cqltype.KindVarint:
		return decodeScalar[*big.Int](typ, cell, Varint)
	case cqltype.KindDecimal:
		return decodeScalar[*inf.Dec](typ, cell, Decimal)
	case cqltype.KindDate:
		return decodeScalar[cqltype.Date](typ, cell, Date)
	case cqltype.KindTime:
		return decodeScalar[cqltype.Time](typ, cell, Time)
	case cqltype.KindTimestamp:
		return decodeScalar[cqltype.Timestamp](typ, cell, Timestamp)
	case cqltype.KindDuration:
		return decodeScalar[cqltype.Duration](typ, cell, Duration)
	case cqltype.KindUUID, cqltype.KindTimeUUID:
		return decodeScalar[cqltype.UUID](typ, cell, UUID)
	case cqltype.KindInet:
		return decodeScalar[net.IP](typ, cell, Inet)
	case cqltype.KindList, cqltype.KindSet:
		return d.decodeList(typ, cell)
	case cqltype.KindMap:
		return d.decodeMap(typ, cell)
	case cqltype.KindTuple:
		return d.decodeTuple(typ, cell)
	case cqltype.KindUDT:
		return d.decodeUDT(typ, cell)
	default:
		Logger().Debug("unsupported column type", zap.String("type", typ.String()))
		return cqltype.Value{}, errors.NewDecodeError(
			errors.Unsupported(errors.PhaseDecode, "cannot decode CQL type "+typ.String()))
	}
}

func decodeScalar[T any](typ *cqltype.Type, cell *frame.Slice, dec Decoder[T]) (cqltype.Value, error) {
	v, err := dec.Decode(typ, cell)
	if err != nil {
		return cqltype.Value{}, err
	}
	return cqltype.NewValue(typ, v), nil
}

// nativelyEmpty reports whether zero-length cell contents are an ordinary
// value of the kind rather than the legacy empty state
func nativelyEmpty(k cqltype.Kind) bool {
	switch k {
	case cqltype.KindAscii, cqltype.KindText, cqltype.KindVarchar,
		cqltype.KindBlob, cqltype.KindCustom:
		return true
	}
	return false
}

func (d DynamicCodec) decodeList(typ *cqltype.Type, cell *frame.Slice) (cqltype.Value, error) {
	cur := frame.NewCursor(cell.Bytes())
	n, err := cur.ReadInt()
	if err != nil {
		return cqltype.Value{}, errors.NewDecodeError(
			errors.ParseFailed(errors.PhaseDecode, "[]cqltype.Value", typ.String(), err))
	}
	if n < 0 {
		return cqltype.Value{}, errors.NewDecodeError(
			errors.InvalidData(errors.PhaseDecode, "negative collection length"))
	}

	elems := make([]cqltype.Value, 0, n)
	for i := int32(0); i < n; i++ {
		elemCell, err := cur.ReadCell()
		if err != nil {
			return cqltype.Value{}, errors.NewDecodeError(
				errors.ParseFailed(errors.PhaseDecode, "[]cqltype.Value", typ.String(), err))
		}
		elem, err := d.Decode(typ.Elem(), elemCell)
		if err != nil {
			return cqltype.Value{}, err
		}
		elems = append(elems, elem)
	}
	return cqltype.NewValue(typ, elems), nil
}

func (d DynamicCodec) decodeMap(typ *cqltype.Type, cell *frame.Slice) (cqltype.Value, error) {
	cur := frame.NewCursor(cell.Bytes())
	n, err := cur.ReadInt()
	if err != nil {
		return cqltype.Value{}, errors.NewDecodeError(
			errors.ParseFailed(errors.PhaseDecode, "[]cqltype.MapEntry", typ.String(), err))
	}
	if n < 0 {
		return cqltype.Value{}, errors.NewDecodeError(
			errors.InvalidData(errors.PhaseDecode, "negative collection length"))
	}

	entries := make([]cqltype.MapEntry, 0, n)
	for i := int32(0); i < n; i++ {
		keyCell, err := cur.ReadCell()
		if err != nil {
			return cqltype.Value{}, errors.NewDecodeError(
				errors.ParseFailed(errors.PhaseDecode, "[]cqltype.MapEntry", typ.String(), err))
		}
		key, err := d.Decode(typ.Key(), keyCell)
		if err != nil {
			return cqltype.Value{}, err
		}
		valCell, err := cur.ReadCell()
		if err != nil {
			return cqltype.Value{}, errors.NewDecodeError(
				errors.ParseFailed(errors.PhaseDecode, "[]cqltype.MapEntry", typ.String(), err))
		}
		val, err := d.Decode(typ.Elem(), valCell)
		if err != nil {
			return cqltype.Value{}, err
		}
		entries = append(entries, cqltype.MapEntry{Key: key, Value: val})
	}
	return cqltype.NewValue(typ, entries), nil
}

func (d DynamicCodec) decodeTuple(typ *cqltype.Type, cell *frame.Slice) (cqltype.Value, error) {
	cur := frame.NewCursor(cell.Bytes())
	elems := make([]cqltype.Value, 0, len(typ.Elems()))
	for _, elemType := range typ.Elems() {
		elemCell, err := cur.ReadCell()
		if err != nil {
			return cqltype.Value{}, errors.NewDecodeError(
				errors.ParseFailed(errors.PhaseDecode, "[]cqltype.Value", typ.String(), err))
		}
		elem, err := d.Decode(elemType, elemCell)
		if err != nil {
			return cqltype.Value{}, err
		}
		elems = append(elems, elem)
	}
	return cqltype.NewValue(typ, elems), nil
}

// decodeUDT reads one cell per declared field. Fields added to the type
// after the row was written are absent from the wire and decode to null.
func (d DynamicCodec) decodeUDT(typ *cqltype.Type, cell *frame.Slice) (cqltype.Value, error) {
	cur := frame.NewCursor(cell.Bytes())
	fields := make([]cqltype.FieldValue, 0, len(typ.Fields()))
	for _, f := range typ.Fields() {
		if cur.Remaining() == 0 {
			fields = append(fields, cqltype.FieldValue{Name: f.Name, Value: cqltype.NullValue(f.Type)})
			continue
		}
		fieldCell, err := cur.ReadCell()
		if err != nil {
			return cqltype.Value{}, errors.NewDecodeError(
				errors.ParseFailed(errors.PhaseDecode, "[]cqltype.FieldValue", typ.String(), err))
		}
		val, err := d.Decode(f.Type, fieldCell)
		if err != nil {
			return cqltype.Value{}, err
		}
		fields = append(fields, cqltype.FieldValue{Name: f.Name, Value: val})
	}
	return cqltype.NewValue(typ, fields), nil
}

func (d DynamicCodec) Encode(typ *cqltype.Type, v cqltype.Value, w *frame.CellWriter) (frame.WrittenCell, error) {
	if v.IsNull() {
		return w.WriteNull(), nil
	}
	if v.IsEmpty() {
		return w.WriteEmpty(), nil
	}

	switch typ.Kind() {
	case cqltype.KindBoolean:
		return encodeScalar(typ, v, w, Boolean, cqltype.Value.AsBool)
	case cqltype.KindTinyInt:
		return encodeScalar(typ, v, w, TinyInt, cqltype.Value.AsInt8)
	case cqltype.KindSmallInt:
		return encodeScalar(typ, v, w, SmallInt, cqltype.Value.AsInt16)
	case cqltype.KindInt:
		return encodeScalar(typ, v, w, Int, cqltype.Value.AsInt32)
	case cqltype.KindBigInt:
		return encodeScalar(typ, v, w, BigInt, cqltype.Value.AsInt64)
	case cqltype.KindCounter:
		return encodeScalar(typ, v, w, Counter, cqltype.Value.AsCounter)
	case cqltype.KindFloat:
		return encodeScalar(typ, v, w, Float, cqltype.Value.AsFloat32)
	case cqltype.KindDouble:
		return encodeScalar(typ, v, w, Double, cqltype.Value.AsFloat64)
	case cqltype.KindAscii, cqltype.KindText, cqltype.KindVarchar:
		return encodeScalar(typ, v, w, Text, cqltype.Value.AsText)
	case cqltype.KindBlob, cqltype.KindCustom:
		b, ok := v.AsBytes()
		if !ok {
			return frame.WrittenCell{}, dynamicMismatch(typ, v)
		}
		return w.WriteCell(b), nil
	case cqltype.KindVarint:
		return encodeScalar(typ, v, w, Varint, cqltype.Value.AsVarint)
	case cqltype.KindDecimal:
		return encodeScalar(typ, v, w, Decimal, cqltype.Value.AsDecimal)
	case cqltype.KindDate:
		return encodeScalar(typ, v, w, Date, cqltype.Value.AsDate)
	case cqltype.KindTime:
		return encodeScalar(typ, v, w, Time, cqltype.Value.AsTime)
	case cqltype.KindTimestamp:
		return encodeScalar(typ, v, w, Timestamp, cqltype.Value.AsTimestamp)
	case cqltype.KindDuration:
		return encodeScalar(typ, v, w, Duration, cqltype.Value.AsDuration)
	case cqltype.KindUUID, cqltype.KindTimeUUID:
		return encodeScalar(typ, v, w, UUID, cqltype.Value.AsUUID)
	case cqltype.KindInet:
		return encodeScalar(typ, v, w, Inet, cqltype.Value.AsInet)
	case cqltype.KindList, cqltype.KindSet:
		return d.encodeList(typ, v, w)
	case cqltype.KindMap:
		return d.encodeMap(typ, v, w)
	case cqltype.KindTuple:
		return d.encodeTuple(typ, v, w)
	case cqltype.KindUDT:
		return d.encodeUDT(typ, v, w)
	default:
		Logger().Debug("unsupported column type", zap.String("type", typ.String()))
		return frame.WrittenCell{}, errors.NewEncodeError(
			errors.Unsupported(errors.PhaseEncode, "cannot encode CQL type "+typ.String()))
	}
}

func encodeScalar[T any](typ *cqltype.Type, v cqltype.Value, w *frame.CellWriter, enc Encoder[T], get func(cqltype.Value) (T, bool)) (frame.WrittenCell, error) {
	inner, ok := get(v)
	if !ok {
		return frame.WrittenCell{}, dynamicMismatch(typ, v)
	}
	return enc.Encode(typ, inner, w)
}

func dynamicMismatch(typ *cqltype.Type, v cqltype.Value) error {
	return errors.NewEncodeError(errors.New(errors.PhaseEncode, errors.KindMismatchedType).
		GoType("cqltype.Value").
		CqlType(typ.String()).
		Value(v.Raw()).
		Detail("value variant does not match column type").
		Build())
}

func (d DynamicCodec) encodeList(typ *cqltype.Type, v cqltype.Value, w *frame.CellWriter) (frame.WrittenCell, error) {
	elems, ok := v.AsList()
	if !ok {
		return frame.WrittenCell{}, dynamicMismatch(typ, v)
	}
	inner := frame.NewCellWriter()
	for _, e := range elems {
		if _, err := d.Encode(typ.Elem(), e, inner); err != nil {
			return frame.WrittenCell{}, err
		}
	}
	b := w.Cell()
	b.AppendInt(int32(len(elems)))
	b.Write(inner.Bytes())
	return b.Finish(), nil
}

func (d DynamicCodec) encodeMap(typ *cqltype.Type, v cqltype.Value, w *frame.CellWriter) (frame.WrittenCell, error) {
	entries, ok := v.AsMap()
	if !ok {
		return frame.WrittenCell{}, dynamicMismatch(typ, v)
	}
	inner := frame.NewCellWriter()
	for _, e := range entries {
		if _, err := d.Encode(typ.Key(), e.Key, inner); err != nil {
			return frame.WrittenCell{}, err
		}
		if _, err := d.Encode(typ.Elem(), e.Value, inner); err != nil {
			return frame.WrittenCell{}, err
		}
	}
	b := w.Cell()
	b.AppendInt(int32(len(entries)))
	b.Write(inner.Bytes())
	return b.Finish(), nil
}

func (d DynamicCodec) encodeTuple(typ *cqltype.Type, v cqltype.Value, w *frame.CellWriter) (frame.WrittenCell, error) {
	elems, ok := v.AsList()
	if !ok {
		return frame.WrittenCell{}, dynamicMismatch(typ, v)
	}
	if len(elems) != len(typ.Elems()) {
		return frame.WrittenCell{}, errors.NewEncodeError(
			errors.ColumnCountMismatch(len(elems), len(typ.Elems())))
	}
	inner := frame.NewCellWriter()
	for i, e := range elems {
		if _, err := d.Encode(typ.Elems()[i], e, inner); err != nil {
			return frame.WrittenCell{}, err
		}
	}
	b := w.Cell()
	b.Write(inner.Bytes())
	return b.Finish(), nil
}

func (d DynamicCodec) encodeUDT(typ *cqltype.Type, v cqltype.Value, w *frame.CellWriter) (frame.WrittenCell, error) {
	fields, ok := v.AsUDT()
	if !ok {
		return frame.WrittenCell{}, dynamicMismatch(typ, v)
	}
	byName := make(map[string]cqltype.Value, len(fields))
	for _, f := range fields {
		byName[f.Name] = f.Value
	}

	inner := frame.NewCellWriter()
	for _, f := range typ.Fields() {
		val, ok := byName[f.Name]
		if !ok {
			return frame.WrittenCell{}, errors.NewEncodeError(errors.FieldMissing(f.Name))
		}
		if _, err := d.Encode(f.Type, val, inner); err != nil {
			return frame.WrittenCell{}, err
		}
		delete(byName, f.Name)
	}
	for name := range byName {
		return frame.WrittenCell{}, errors.NewEncodeError(errors.FieldUnknown(name))
	}

	b := w.Cell()
	b.Write(inner.Bytes())
	return b.Finish(), nil
}
