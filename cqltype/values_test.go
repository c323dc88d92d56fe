package cqltype

import (
	"testing"
	"time"
)

func TestDate_EpochBias(t *testing.T) {
	epoch := Date(1 << 31)
	if epoch.Days() != 0 {
		t.Fatalf("Days() = %d, want 0", epoch.Days())
	}
	got, err := epoch.AsTime()
	if err != nil {
		t.Fatalf("AsTime failed: %v", err)
	}
	want := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AsTime() = %v, want %v", got, want)
	}
}

func TestDate_RoundTrip(t *testing.T) {
	for _, day := range []string{"1969-12-31", "1970-01-02", "2026-08-30", "1582-10-15"} {
		instant, err := time.Parse("2006-01-02", day)
		if err != nil {
			t.Fatal(err)
		}
		d, err := DateOf(instant)
		if err != nil {
			t.Fatalf("DateOf(%s) failed: %v", day, err)
		}
		back, err := d.AsTime()
		if err != nil {
			t.Fatalf("AsTime failed: %v", err)
		}
		if got := back.Format("2006-01-02"); got != day {
			t.Errorf("round trip %s -> %s", day, got)
		}
	}
}

func TestDate_ExtremeOutOfCalendarRange(t *testing.T) {
	if _, err := Date(0).AsTime(); err == nil {
		t.Error("Date(0).AsTime() should overflow")
	}
	if _, err := Date(^uint32(0)).AsTime(); err == nil {
		t.Error("max Date AsTime() should overflow")
	}
}

func TestTime_Range(t *testing.T) {
	if !Time(0).Valid() {
		t.Error("Time(0) should be valid")
	}
	if !MaxTime.Valid() {
		t.Error("MaxTime should be valid")
	}
	if (MaxTime + 1).Valid() {
		t.Error("MaxTime+1 should be invalid")
	}
	if Time(-1).Valid() {
		t.Error("negative Time should be invalid")
	}

	if _, err := TimeOf(24 * time.Hour); err == nil {
		t.Error("TimeOf(24h) should fail")
	}
	got, err := TimeOf(12*time.Hour + 34*time.Minute)
	if err != nil {
		t.Fatalf("TimeOf failed: %v", err)
	}
	if got.AsDuration() != 12*time.Hour+34*time.Minute {
		t.Errorf("AsDuration() = %v", got.AsDuration())
	}
}

func TestTimestamp_RoundTrip(t *testing.T) {
	instant := time.Date(2026, 8, 30, 12, 0, 0, 500_000_000, time.UTC)
	ts := TimestampOf(instant)
	back, err := ts.AsTime()
	if err != nil {
		t.Fatalf("AsTime failed: %v", err)
	}
	if !back.Equal(instant) {
		t.Errorf("round trip %v -> %v", instant, back)
	}
}

func TestUUID_String(t *testing.T) {
	raw := []byte{
		0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
		0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
	}
	u, err := UUIDFromBytes(raw)
	if err != nil {
		t.Fatalf("UUIDFromBytes failed: %v", err)
	}
	if got, want := u.String(), "550e8400-e29b-41d4-a716-446655440000"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
	if u.Version() != 4 {
		t.Errorf("Version() = %d, want 4", u.Version())
	}

	if _, err := UUIDFromBytes(raw[:15]); err == nil {
		t.Error("15 bytes should be rejected")
	}
}

func TestValue_NullAndEmpty(t *testing.T) {
	null := NullValue(TypeInt)
	if !null.IsNull() || null.IsEmpty() {
		t.Error("NullValue should be null and not empty")
	}
	empty := EmptyValue(TypeInt)
	if empty.IsNull() || !empty.IsEmpty() {
		t.Error("EmptyValue should be empty and not null")
	}
	if empty.Raw() != nil {
		t.Error("empty Raw() should be nil")
	}

	v := NewValue(TypeInt, int32(42))
	if v.IsNull() || v.IsEmpty() {
		t.Error("NewValue should be neither null nor empty")
	}
	if i, ok := v.AsInt32(); !ok || i != 42 {
		t.Errorf("AsInt32() = %d, %v", i, ok)
	}
	if _, ok := v.AsInt64(); ok {
		t.Error("AsInt64 should not match an int32 variant")
	}
}

func TestValue_String(t *testing.T) {
	list := NewValue(ListOf(TypeInt), []Value{
		NewValue(TypeInt, int32(1)),
		NullValue(TypeInt),
	})
	if got, want := list.String(), "[1, null]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	m := NewValue(MapOf(TypeText, TypeInt), []MapEntry{
		{Key: NewValue(TypeText, "a"), Value: NewValue(TypeInt, int32(1))},
	})
	if got, want := m.String(), `{"a": 1}`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
