package cqltype

import (
	"strings"

	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

// Type is a parsed, immutable CQL column type. Simple kinds carry no
// parameters; collections, tuples and UDTs carry their element types.
type Type struct {
	kind     Kind
	custom   string
	elem     *Type
	key      *Type
	value    *Type
	elems    []*Type
	keyspace string
	name     string
	fields   []UDTField
}

// UDTField is one named field of a user-defined type, in wire order
type UDTField struct {
	Name string
	Type *Type
}

// Singletons for the simple kinds
var (
	TypeAscii     = &Type{kind: KindAscii}
	TypeBigInt    = &Type{kind: KindBigInt}
	TypeBlob      = &Type{kind: KindBlob}
	TypeBoolean   = &Type{kind: KindBoolean}
	TypeCounter   = &Type{kind: KindCounter}
	TypeDecimal   = &Type{kind: KindDecimal}
	TypeDouble    = &Type{kind: KindDouble}
	TypeFloat     = &Type{kind: KindFloat}
	TypeInt       = &Type{kind: KindInt}
	TypeText      = &Type{kind: KindText}
	TypeTimestamp = &Type{kind: KindTimestamp}
	TypeUUID      = &Type{kind: KindUUID}
	TypeVarchar   = &Type{kind: KindVarchar}
	TypeVarint    = &Type{kind: KindVarint}
	TypeTimeUUID  = &Type{kind: KindTimeUUID}
	TypeInet      = &Type{kind: KindInet}
	TypeDate      = &Type{kind: KindDate}
	TypeTime      = &Type{kind: KindTime}
	TypeSmallInt  = &Type{kind: KindSmallInt}
	TypeTinyInt   = &Type{kind: KindTinyInt}
	TypeDuration  = &Type{kind: KindDuration}
)

// CustomType creates a type for a custom marshaller class
func CustomType(class string) *Type {
	return &Type{kind: KindCustom, custom: class}
}

// ListOf creates a list type with the given element type
func ListOf(elem *Type) *Type {
	return &Type{kind: KindList, elem: elem}
}

// SetOf creates a set type with the given element type
func SetOf(elem *Type) *Type {
	return &Type{kind: KindSet, elem: elem}
}

// MapOf creates a map type with the given key and value types
func MapOf(key, value *Type) *Type {
	return &Type{kind: KindMap, key: key, value: value}
}

// TupleOf creates a tuple type with the given element types
func TupleOf(elems ...*Type) *Type {
	return &Type{kind: KindTuple, elems: elems}
}

// NewUDT creates a user-defined type with fields in wire order
func NewUDT(keyspace, name string, fields ...UDTField) *Type {
	return &Type{kind: KindUDT, keyspace: keyspace, name: name, fields: fields}
}

// Kind returns the wire option ID
func (t *Type) Kind() Kind {
	return t.kind
}

// Custom returns the marshaller class of a custom type
func (t *Type) Custom() string {
	return t.custom
}

// Elem returns the element type of a list or set, or the value type of a map
func (t *Type) Elem() *Type {
	if t.kind == KindMap {
		return t.value
	}
	return t.elem
}

// Key returns the key type of a map
func (t *Type) Key() *Type {
	return t.key
}

// Elems returns the element types of a tuple
func (t *Type) Elems() []*Type {
	return t.elems
}

// Keyspace returns the keyspace of a UDT
func (t *Type) Keyspace() string {
	return t.keyspace
}

// Name returns the name of a UDT
func (t *Type) Name() string {
	return t.name
}

// Fields returns the fields of a UDT in wire order
func (t *Type) Fields() []UDTField {
	return t.fields
}

// String returns the CQL name notation of the type
func (t *Type) String() string {
	switch t.kind {
	case KindCustom:
		return "custom(" + t.custom + ")"
	case KindList:
		return "list<" + t.elem.String() + ">"
	case KindSet:
		return "set<" + t.elem.String() + ">"
	case KindMap:
		return "map<" + t.key.String() + ", " + t.value.String() + ">"
	case KindTuple:
		names := make([]string, len(t.elems))
		for i, e := range t.elems {
			names[i] = e.String()
		}
		return "tuple<" + strings.Join(names, ", ") + ">"
	case KindUDT:
		if t.keyspace != "" {
			return t.keyspace + "." + t.name
		}
		return t.name
	default:
		return t.kind.String()
	}
}

// ParseType reads one [option] type descriptor from result metadata
func ParseType(cur *frame.Cursor) (*Type, error) {
	id, err := cur.ReadShort()
	if err != nil {
		return nil, err
	}

	switch Kind(id) {
	case KindCustom:
		class, err := cur.ReadString()
		if err != nil {
			return nil, err
		}
		return CustomType(class), nil

	case KindList, KindSet:
		elem, err := ParseType(cur)
		if err != nil {
			return nil, err
		}
		if Kind(id) == KindList {
			return ListOf(elem), nil
		}
		return SetOf(elem), nil

	case KindMap:
		key, err := ParseType(cur)
		if err != nil {
			return nil, err
		}
		value, err := ParseType(cur)
		if err != nil {
			return nil, err
		}
		return MapOf(key, value), nil

	case KindTuple:
		n, err := cur.ReadShort()
		if err != nil {
			return nil, err
		}
		elems := make([]*Type, n)
		for i := range elems {
			if elems[i], err = ParseType(cur); err != nil {
				return nil, err
			}
		}
		return TupleOf(elems...), nil

	case KindUDT:
		keyspace, err := cur.ReadString()
		if err != nil {
			return nil, err
		}
		name, err := cur.ReadString()
		if err != nil {
			return nil, err
		}
		n, err := cur.ReadShort()
		if err != nil {
			return nil, err
		}
		fields := make([]UDTField, n)
		for i := range fields {
			if fields[i].Name, err = cur.ReadString(); err != nil {
				return nil, err
			}
			if fields[i].Type, err = ParseType(cur); err != nil {
				return nil, err
			}
		}
		return NewUDT(keyspace, name, fields...), nil

	case KindAscii, KindBigInt, KindBlob, KindBoolean, KindCounter,
		KindDecimal, KindDouble, KindFloat, KindInt, KindText,
		KindTimestamp, KindUUID, KindVarchar, KindVarint, KindTimeUUID,
		KindInet, KindDate, KindTime, KindSmallInt, KindTinyInt,
		KindDuration:
		return simpleType(Kind(id)), nil

	default:
		return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
			Detail("unknown type option id 0x%04x", id).
			Build()
	}
}

func simpleType(k Kind) *Type {
	switch k {
	case KindAscii:
		return TypeAscii
	case KindBigInt:
		return TypeBigInt
	case KindBlob:
		return TypeBlob
	case KindBoolean:
		return TypeBoolean
	case KindCounter:
		return TypeCounter
	case KindDecimal:
		return TypeDecimal
	case KindDouble:
		return TypeDouble
	case KindFloat:
		return TypeFloat
	case KindInt:
		return TypeInt
	case KindText:
		return TypeText
	case KindTimestamp:
		return TypeTimestamp
	case KindUUID:
		return TypeUUID
	case KindVarchar:
		return TypeVarchar
	case KindVarint:
		return TypeVarint
	case KindTimeUUID:
		return TypeTimeUUID
	case KindInet:
		return TypeInet
	case KindDate:
		return TypeDate
	case KindTime:
		return TypeTime
	case KindSmallInt:
		return TypeSmallInt
	case KindTinyInt:
		return TypeTinyInt
	case KindDuration:
		return TypeDuration
	default:
		return &Type{kind: k}
	}
}

// Column is one result column: its identifiers and parsed type
type Column struct {
	Keyspace string
	Table    string
	Name     string
	Type     *Type
}
