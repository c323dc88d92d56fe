package codec

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

var (
	Date      DateCodec
	Time      TimeCodec
	Timestamp TimestampCodec
	Duration  DurationCodec
)

// DateCodec converts date columns to cqltype.Date. The wire format is an
// unsigned 4-byte day count biased so that 2^31 is the Unix epoch.
type DateCodec struct{}

func (DateCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "cqltype.Date", cqltype.KindDate)
}

func (DateCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (cqltype.Date, error) {
	if err := ensureNotNull(cell, "cqltype.Date", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 4, "cqltype.Date", typ); err != nil {
		return 0, err
	}
	return cqltype.Date(binary.BigEndian.Uint32(cell.Bytes())), nil
}

func (DateCodec) Encode(typ *cqltype.Type, v cqltype.Date, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint32(nil, uint32(v))), nil
}

func (DateCodec) emptiable() {}

// TimeCodec converts time columns to cqltype.Time. The wire format is an
// 8-byte signed nanosecond count since midnight; the protocol restricts
// valid values to one day, so out-of-range cells are rejected even though
// they fit the integer.
type TimeCodec struct{}

func (TimeCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "cqltype.Time", cqltype.KindTime)
}

func (TimeCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (cqltype.Time, error) {
	if err := ensureNotNull(cell, "cqltype.Time", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 8, "cqltype.Time", typ); err != nil {
		return 0, err
	}
	t := cqltype.Time(binary.BigEndian.Uint64(cell.Bytes()))
	if !t.Valid() {
		return 0, errors.NewDecodeError(errors.Overflow(errors.PhaseDecode, "cqltype.Time", typ.String(), int64(t)))
	}
	return t, nil
}

func (TimeCodec) Encode(typ *cqltype.Type, v cqltype.Time, w *frame.CellWriter) (frame.WrittenCell, error) {
	if !v.Valid() {
		return frame.WrittenCell{}, errors.NewEncodeError(errors.Overflow(errors.PhaseEncode, "cqltype.Time", typ.String(), int64(v)))
	}
	return w.WriteCell(binary.BigEndian.AppendUint64(nil, uint64(v))), nil
}

func (TimeCodec) emptiable() {}

// TimestampCodec converts timestamp columns to cqltype.Timestamp, an
// 8-byte signed millisecond count since the Unix epoch
type TimestampCodec struct{}

func (TimestampCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "cqltype.Timestamp", cqltype.KindTimestamp)
}

func (TimestampCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (cqltype.Timestamp, error) {
	if err := ensureNotNull(cell, "cqltype.Timestamp", typ); err != nil {
		return 0, err
	}
	if err := exactLength(cell, 8, "cqltype.Timestamp", typ); err != nil {
		return 0, err
	}
	return cqltype.Timestamp(binary.BigEndian.Uint64(cell.Bytes())), nil
}

func (TimestampCodec) Encode(typ *cqltype.Type, v cqltype.Timestamp, w *frame.CellWriter) (frame.WrittenCell, error) {
	return w.WriteCell(binary.BigEndian.AppendUint64(nil, uint64(v))), nil
}

func (TimestampCodec) emptiable() {}

// DurationCodec converts duration columns to cqltype.Duration. The wire
// format is three signed varints: months, days, nanoseconds. Months and
// days must fit int32.
type DurationCodec struct{}

func (DurationCodec) TypeCheck(typ *cqltype.Type) error {
	return checkKind(typ, "cqltype.Duration", cqltype.KindDuration)
}

func (DurationCodec) Decode(typ *cqltype.Type, cell *frame.Slice) (cqltype.Duration, error) {
	var d cqltype.Duration
	if err := ensureNotNull(cell, "cqltype.Duration", typ); err != nil {
		return d, err
	}

	cur := frame.NewCursor(cell.Bytes())
	months, err := cur.ReadVint()
	if err != nil {
		return d, errors.NewDecodeError(errors.ParseFailed(errors.PhaseDecode, "cqltype.Duration", typ.String(), err))
	}
	days, err := cur.ReadVint()
	if err != nil {
		return d, errors.NewDecodeError(errors.ParseFailed(errors.PhaseDecode, "cqltype.Duration", typ.String(), err))
	}
	nanos, err := cur.ReadVint()
	if err != nil {
		return d, errors.NewDecodeError(errors.ParseFailed(errors.PhaseDecode, "cqltype.Duration", typ.String(), err))
	}
	if cur.Remaining() != 0 {
		return d, errors.NewDecodeError(errors.InvalidData(errors.PhaseDecode, "trailing bytes after duration"))
	}
	if months < math.MinInt32 || months > math.MaxInt32 {
		return d, errors.NewDecodeError(errors.Overflow(errors.PhaseDecode, "cqltype.Duration", typ.String(), months))
	}
	if days < math.MinInt32 || days > math.MaxInt32 {
		return d, errors.NewDecodeError(errors.Overflow(errors.PhaseDecode, "cqltype.Duration", typ.String(), days))
	}

	d.Months = int32(months)
	d.Days = int32(days)
	d.Nanoseconds = nanos
	return d, nil
}

func (DurationCodec) Encode(typ *cqltype.Type, v cqltype.Duration, w *frame.CellWriter) (frame.WrittenCell, error) {
	b := w.Cell()
	b.AppendVint(int64(v.Months))
	b.AppendVint(int64(v.Days))
	b.AppendVint(v.Nanoseconds)
	return b.Finish(), nil
}
