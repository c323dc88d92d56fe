package codec

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
)

func TestBoolean(t *testing.T) {
	got, err := decode[bool](t, Boolean, cqltype.TypeBoolean, []byte{0x01})
	if err != nil || got != true {
		t.Errorf("decode 0x01 = %v, %v", got, err)
	}
	got, err = decode[bool](t, Boolean, cqltype.TypeBoolean, []byte{0x00})
	if err != nil || got != false {
		t.Errorf("decode 0x00 = %v, %v", got, err)
	}
	// any non-zero byte is true
	got, err = decode[bool](t, Boolean, cqltype.TypeBoolean, []byte{0x2a})
	if err != nil || got != true {
		t.Errorf("decode 0x2a = %v, %v", got, err)
	}

	if !roundTrip(t, Boolean, cqltype.TypeBoolean, true) {
		t.Error("round trip true = false")
	}
}

func TestInts(t *testing.T) {
	for _, v := range []int8{0, 1, -1, math.MinInt8, math.MaxInt8} {
		if got := roundTrip(t, TinyInt, cqltype.TypeTinyInt, v); got != v {
			t.Errorf("tinyint round trip %d = %d", v, got)
		}
	}
	for _, v := range []int16{0, 1, -1, math.MinInt16, math.MaxInt16} {
		if got := roundTrip(t, SmallInt, cqltype.TypeSmallInt, v); got != v {
			t.Errorf("smallint round trip %d = %d", v, got)
		}
	}
	for _, v := range []int32{0, 1, -1, math.MinInt32, math.MaxInt32} {
		if got := roundTrip(t, Int, cqltype.TypeInt, v); got != v {
			t.Errorf("int round trip %d = %d", v, got)
		}
	}
	for _, v := range []int64{0, 1, -1, math.MinInt64, math.MaxInt64} {
		if got := roundTrip(t, BigInt, cqltype.TypeBigInt, v); got != v {
			t.Errorf("bigint round trip %d = %d", v, got)
		}
	}
}

func TestInt_KnownEncoding(t *testing.T) {
	got, err := decode[int32](t, Int, cqltype.TypeInt, []byte{0x00, 0x00, 0x00, 0x10})
	if err != nil || got != 16 {
		t.Errorf("decode = %d, %v, want 16", got, err)
	}
	got, err = decode[int32](t, Int, cqltype.TypeInt, []byte{0xff, 0xff, 0xff, 0xfe})
	if err != nil || got != -2 {
		t.Errorf("decode = %d, %v, want -2", got, err)
	}
}

func TestInt_WrongLength(t *testing.T) {
	_, err := decode[int32](t, Int, cqltype.TypeInt, []byte{0x01, 0x02, 0x03})
	wantKind(t, err, errors.KindByteLengthMismatch)

	var env errors.DecodeError
	if !stderrors.As(err, &env) {
		t.Errorf("error %v is not enveloped as DecodeError", err)
	}
}

func TestInt_Null(t *testing.T) {
	if err := Int.TypeCheck(cqltype.TypeInt); err != nil {
		t.Fatal(err)
	}
	_, err := Int.Decode(cqltype.TypeInt, nil)
	wantKind(t, err, errors.KindExpectedNonNull)
}

func TestInt_TypeCheckRejectsOtherTypes(t *testing.T) {
	err := Int.TypeCheck(cqltype.TypeDate)
	wantKind(t, err, errors.KindMismatchedType)

	var env errors.TypeCheckError
	if !stderrors.As(err, &env) {
		t.Errorf("error %v is not enveloped as TypeCheckError", err)
	}
}

func TestBigInt_AcceptsCounter(t *testing.T) {
	if err := BigInt.TypeCheck(cqltype.TypeCounter); err != nil {
		t.Errorf("int64 should accept counter columns: %v", err)
	}
	if err := Counter.TypeCheck(cqltype.TypeBigInt); err == nil {
		t.Error("Counter codec should reject bigint columns")
	}

	v := roundTrip(t, Counter, cqltype.TypeCounter, cqltype.Counter(1_000_000))
	if v != 1_000_000 {
		t.Errorf("counter round trip = %d", v)
	}
}

func TestCounter_EmptyCellRejected(t *testing.T) {
	// counter columns never carry the legacy empty cell state
	_, err := decode[cqltype.Counter](t, Counter, cqltype.TypeCounter, []byte{})
	wantKind(t, err, errors.KindByteLengthMismatch)
}

func TestFloats(t *testing.T) {
	for _, v := range []float32{0, 1.5, -2.25, math.MaxFloat32, float32(math.Inf(1))} {
		if got := roundTrip(t, Float, cqltype.TypeFloat, v); got != v {
			t.Errorf("float round trip %v = %v", v, got)
		}
	}
	for _, v := range []float64{0, 1.5, -2.25, math.MaxFloat64, math.Inf(-1)} {
		if got := roundTrip(t, Double, cqltype.TypeDouble, v); got != v {
			t.Errorf("double round trip %v = %v", v, got)
		}
	}

	nan := roundTrip(t, Double, cqltype.TypeDouble, math.NaN())
	if !math.IsNaN(nan) {
		t.Errorf("NaN round trip = %v", nan)
	}
}
