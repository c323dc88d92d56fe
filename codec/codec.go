package codec

import (
	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

// Decoder converts cell bytes of a checked column type into T
type Decoder[T any] interface {
	// TypeCheck validates that T can represent columns of typ. It is pure
	// and is meant to run once per column, ahead of any row.
	TypeCheck(typ *cqltype.Type) error

	// Decode converts one cell into T. A nil cell is the null sentinel.
	// Decode may assume TypeCheck(typ) passed.
	Decode(typ *cqltype.Type, cell *frame.Slice) (T, error)
}

// Encoder converts T into cell bytes of a checked column type
type Encoder[T any] interface {
	// TypeCheck validates that T can be serialized into columns of typ
	TypeCheck(typ *cqltype.Type) error

	// Encode writes v as one length-prefixed cell and returns the proof.
	// Encode may assume TypeCheck(typ) passed.
	Encode(typ *cqltype.Type, v T, w *frame.CellWriter) (frame.WrittenCell, error)
}

// Codec converts in both directions
type Codec[T any] interface {
	Decoder[T]
	Encoder[T]
}

// Emptiable marks codecs eligible for AsMaybeEmpty: their column types may
// legitimately arrive as a legacy zero-length "empty" cell. Counter and
// duration columns never carry empty cells, so those codecs stay strict.
// Only codecs in this package implement it.
type Emptiable interface {
	emptiable()
}

// checkKind rejects column types outside the accepted set
func checkKind(typ *cqltype.Type, goType string, accepted ...cqltype.Kind) error {
	for _, k := range accepted {
		if typ.Kind() == k {
			return nil
		}
	}
	names := make([]string, len(accepted))
	for i, k := range accepted {
		names[i] = k.String()
	}
	return errors.NewTypeCheckError(errors.MismatchedType(goType, typ.String(), names...))
}

// ensureNotNull rejects the null sentinel for non-nullable targets
func ensureNotNull(cell *frame.Slice, goType string, typ *cqltype.Type) error {
	if cell == nil {
		return errors.NewDecodeError(errors.ExpectedNonNull(goType, typ.String()))
	}
	return nil
}

// exactLength rejects cells whose byte count does not match a fixed-width
// wire format
func exactLength(cell *frame.Slice, want int, goType string, typ *cqltype.Type) error {
	if cell.Len() != want {
		return errors.NewDecodeError(errors.ByteLengthMismatch(goType, typ.String(), want, cell.Len()))
	}
	return nil
}
