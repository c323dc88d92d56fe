// Package cqltype describes the CQL column type system and the native Go
// representations of its values.
//
// A Type identifies how a column's values are encoded on the wire. Simple
// kinds are exposed as shared singletons (cqltype.TypeInt, cqltype.TypeText,
// ...); parametrized kinds are built with ListOf, SetOf, MapOf, TupleOf and
// NewUDT. Types are immutable once constructed: the query/result context
// owns them and codecs only borrow them for the duration of a call.
//
// ParseType reads a Type from result metadata; ParseTypeName parses the
// CQL name notation ("int", "list<text>", "map<uuid, bigint>").
//
// The package also defines value types for CQL encodings that have no
// exact counterpart in the standard library: Date (biased day count), Time
// (nanoseconds since midnight), Timestamp (milliseconds since epoch),
// Duration (months/days/nanoseconds triple), Counter and UUID. Calendar
// conversions on these types fail on overflow instead of wrapping.
//
// Value is the dynamic fallback representation: a tagged union that can
// hold any decoded CQL value together with its Type, including the
// protocol's distinct null and empty states.
package cqltype
