package cqltype

import "fmt"

// Kind is the wire option ID of a CQL type, as carried in result metadata
type Kind uint16

const (
	KindCustom    Kind = 0x0000
	KindAscii     Kind = 0x0001
	KindBigInt    Kind = 0x0002
	KindBlob      Kind = 0x0003
	KindBoolean   Kind = 0x0004
	KindCounter   Kind = 0x0005
	KindDecimal   Kind = 0x0006
	KindDouble    Kind = 0x0007
	KindFloat     Kind = 0x0008
	KindInt       Kind = 0x0009
	KindText      Kind = 0x000A
	KindTimestamp Kind = 0x000B
	KindUUID      Kind = 0x000C
	KindVarchar   Kind = 0x000D
	KindVarint    Kind = 0x000E
	KindTimeUUID  Kind = 0x000F
	KindInet      Kind = 0x0010
	KindDate      Kind = 0x0011
	KindTime      Kind = 0x0012
	KindSmallInt  Kind = 0x0013
	KindTinyInt   Kind = 0x0014
	KindDuration  Kind = 0x0015
	KindList      Kind = 0x0020
	KindMap       Kind = 0x0021
	KindSet       Kind = 0x0022
	KindUDT       Kind = 0x0030
	KindTuple     Kind = 0x0031
)

// String returns the CQL name of the kind
func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindAscii:
		return "ascii"
	case KindBigInt:
		return "bigint"
	case KindBlob:
		return "blob"
	case KindBoolean:
		return "boolean"
	case KindCounter:
		return "counter"
	case KindDecimal:
		return "decimal"
	case KindDouble:
		return "double"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindTimestamp:
		return "timestamp"
	case KindUUID:
		return "uuid"
	case KindVarchar:
		return "varchar"
	case KindVarint:
		return "varint"
	case KindTimeUUID:
		return "timeuuid"
	case KindInet:
		return "inet"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindSmallInt:
		return "smallint"
	case KindTinyInt:
		return "tinyint"
	case KindDuration:
		return "duration"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindUDT:
		return "udt"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("unknown_type_0x%04x", uint16(k))
	}
}
