package cqltype

import (
	"fmt"
	"time"

	"github.com/wippyai/cql-codec/errors"
)

// Calendar conversions reject results outside this year range rather than
// producing a time.Time nothing downstream can format or compare sanely.
const (
	minYear = -262142
	maxYear = 262143
)

// dateEpochBias is the stored day count of 1970-01-01: the wire format
// biases the signed day offset by 2^31
const dateEpochBias = int64(1) << 31

// Date is a CQL date: an unsigned day count whose zero point is offset by
// 2^31 from the Unix epoch
type Date uint32

// DateOf converts a civil instant to its day count, ignoring the time of
// day. Fails if the date is outside the biased 32-bit range.
func DateOf(t time.Time) (Date, error) {
	days := t.Unix() / 86400
	if t.Unix() < 0 && t.Unix()%86400 != 0 {
		days--
	}
	biased := days + dateEpochBias
	if biased < 0 || biased > int64(^uint32(0)) {
		return 0, errors.Overflow(errors.PhaseEncode, "cqltype.Date", "date", t)
	}
	return Date(biased), nil
}

// Days returns the signed number of days since the Unix epoch
func (d Date) Days() int64 {
	return int64(d) - dateEpochBias
}

// AsTime converts the day count to midnight UTC of that day. Fails with an
// overflow error when the result leaves the supported calendar range.
func (d Date) AsTime() (time.Time, error) {
	t := time.Unix(d.Days()*86400, 0).UTC()
	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, errors.Overflow(errors.PhaseDecode, "cqltype.Date", "date", d.Days())
	}
	return t, nil
}

func (d Date) String() string {
	if t, err := d.AsTime(); err == nil {
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("date(%+d days)", d.Days())
}

// MaxTime is the last representable instant of a CQL time value
const MaxTime = Time(86_399_999_999_999)

// Time is a CQL time: nanoseconds since midnight. The protocol restricts
// the valid range to [0, MaxTime] even though the integer type is wider.
type Time int64

// TimeOf converts a duration since midnight, failing if it falls outside
// the protocol's valid range
func TimeOf(d time.Duration) (Time, error) {
	t := Time(d.Nanoseconds())
	if !t.Valid() {
		return 0, errors.Overflow(errors.PhaseEncode, "cqltype.Time", "time", d.Nanoseconds())
	}
	return t, nil
}

// Valid reports whether the value is within the protocol's range
func (t Time) Valid() bool {
	return t >= 0 && t <= MaxTime
}

// AsDuration returns the offset since midnight
func (t Time) AsDuration() time.Duration {
	return time.Duration(t)
}

func (t Time) String() string {
	return t.AsDuration().String()
}

// Timestamp is a CQL timestamp: signed milliseconds since the Unix epoch
type Timestamp int64

// TimestampOf converts an instant to its millisecond offset, truncating
// sub-millisecond precision
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// AsTime converts to a UTC instant. Fails with an overflow error when the
// result leaves the supported calendar range.
func (ts Timestamp) AsTime() (time.Time, error) {
	t := time.UnixMilli(int64(ts)).UTC()
	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, errors.Overflow(errors.PhaseDecode, "cqltype.Timestamp", "timestamp", int64(ts))
	}
	return t, nil
}

func (ts Timestamp) String() string {
	if t, err := ts.AsTime(); err == nil {
		return t.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("timestamp(%dms)", int64(ts))
}

// Duration is a CQL duration: a months/days/nanoseconds triple. The three
// components do not reduce to one another (a month is not a fixed number
// of days), so they are kept separate exactly as the wire carries them.
type Duration struct {
	Months      int32
	Days        int32
	Nanoseconds int64
}

func (d Duration) String() string {
	return fmt.Sprintf("%dmo%dd%dns", d.Months, d.Days, d.Nanoseconds)
}

// Counter is a CQL counter column value
type Counter int64
