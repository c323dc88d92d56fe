package cqltype

import (
	"fmt"
	"math/big"
	"net"
	"strings"

	inf "gopkg.in/inf.v0"
)

// Value is the dynamic representation of a decoded CQL value: a tagged
// union able to hold any column type, used when the schema is not known at
// compile time. A Value owns its contents once built; big-number and
// temporal variants materialize owned storage, while blob and text
// variants may share storage with the receive buffer.
type Value struct {
	typ *Type
	v   any
}

type emptyMarker struct{}

// NullValue represents an absent cell of the given type
func NullValue(typ *Type) Value {
	return Value{typ: typ}
}

// EmptyValue represents the zero-length "empty" quirk of the given type,
// distinct from both null and any ordinary value
func EmptyValue(typ *Type) Value {
	return Value{typ: typ, v: emptyMarker{}}
}

// NewValue wraps a decoded native value with its column type
func NewValue(typ *Type, v any) Value {
	return Value{typ: typ, v: v}
}

// MapEntry is one key/value pair of a decoded map, in wire order
type MapEntry struct {
	Key   Value
	Value Value
}

// FieldValue is one decoded UDT field
type FieldValue struct {
	Name  string
	Value Value
}

// Type returns the column type the value was decoded against
func (v Value) Type() *Type {
	return v.typ
}

// IsNull reports whether the cell was absent
func (v Value) IsNull() bool {
	return v.v == nil
}

// IsEmpty reports whether the cell was present but zero-length on a type
// that cannot represent that state natively
func (v Value) IsEmpty() bool {
	_, ok := v.v.(emptyMarker)
	return ok
}

// Raw returns the underlying native value, nil for null
func (v Value) Raw() any {
	if v.IsEmpty() {
		return nil
	}
	return v.v
}

// AsBool returns the boolean variant
func (v Value) AsBool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

// AsInt8 returns the tinyint variant
func (v Value) AsInt8() (int8, bool) {
	i, ok := v.v.(int8)
	return i, ok
}

// AsInt16 returns the smallint variant
func (v Value) AsInt16() (int16, bool) {
	i, ok := v.v.(int16)
	return i, ok
}

// AsInt32 returns the int variant
func (v Value) AsInt32() (int32, bool) {
	i, ok := v.v.(int32)
	return i, ok
}

// AsInt64 returns the bigint variant
func (v Value) AsInt64() (int64, bool) {
	i, ok := v.v.(int64)
	return i, ok
}

// AsCounter returns the counter variant
func (v Value) AsCounter() (Counter, bool) {
	c, ok := v.v.(Counter)
	return c, ok
}

// AsFloat32 returns the float variant
func (v Value) AsFloat32() (float32, bool) {
	f, ok := v.v.(float32)
	return f, ok
}

// AsFloat64 returns the double variant
func (v Value) AsFloat64() (float64, bool) {
	f, ok := v.v.(float64)
	return f, ok
}

// AsBytes returns the blob variant
func (v Value) AsBytes() ([]byte, bool) {
	b, ok := v.v.([]byte)
	return b, ok
}

// AsText returns the ascii/text variant
func (v Value) AsText() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

// AsVarint returns the varint variant
func (v Value) AsVarint() (*big.Int, bool) {
	i, ok := v.v.(*big.Int)
	return i, ok
}

// AsDecimal returns the decimal variant
func (v Value) AsDecimal() (*inf.Dec, bool) {
	d, ok := v.v.(*inf.Dec)
	return d, ok
}

// AsDate returns the date variant
func (v Value) AsDate() (Date, bool) {
	d, ok := v.v.(Date)
	return d, ok
}

// AsTime returns the time variant
func (v Value) AsTime() (Time, bool) {
	t, ok := v.v.(Time)
	return t, ok
}

// AsTimestamp returns the timestamp variant
func (v Value) AsTimestamp() (Timestamp, bool) {
	t, ok := v.v.(Timestamp)
	return t, ok
}

// AsDuration returns the duration variant
func (v Value) AsDuration() (Duration, bool) {
	d, ok := v.v.(Duration)
	return d, ok
}

// AsUUID returns the uuid/timeuuid variant
func (v Value) AsUUID() (UUID, bool) {
	u, ok := v.v.(UUID)
	return u, ok
}

// AsInet returns the inet variant
func (v Value) AsInet() (net.IP, bool) {
	ip, ok := v.v.(net.IP)
	return ip, ok
}

// AsList returns the elements of a list or set variant
func (v Value) AsList() ([]Value, bool) {
	l, ok := v.v.([]Value)
	return l, ok
}

// AsMap returns the entries of a map variant in wire order
func (v Value) AsMap() ([]MapEntry, bool) {
	m, ok := v.v.([]MapEntry)
	return m, ok
}

// AsUDT returns the fields of a UDT variant in wire order
func (v Value) AsUDT() ([]FieldValue, bool) {
	f, ok := v.v.([]FieldValue)
	return f, ok
}

// String renders the value for diagnostics
func (v Value) String() string {
	switch {
	case v.IsNull():
		return "null"
	case v.IsEmpty():
		return "empty"
	}
	switch inner := v.v.(type) {
	case []byte:
		return fmt.Sprintf("0x%x", inner)
	case string:
		return fmt.Sprintf("%q", inner)
	case []Value:
		parts := make([]string, len(inner))
		for i, e := range inner {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []MapEntry:
		parts := make([]string, len(inner))
		for i, e := range inner {
			parts[i] = e.Key.String() + ": " + e.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []FieldValue:
		parts := make([]string, len(inner))
		for i, f := range inner {
			parts[i] = f.Name + ": " + f.Value.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", inner)
	}
}
