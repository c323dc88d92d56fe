package codec

import (
	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/frame"
)

// NullableCodec adapts an inner codec to *T, representing the null cell as
// a nil pointer instead of an error
type NullableCodec[T any] struct {
	inner Codec[T]
}

// Nullable wraps inner so that null cells decode to nil and nil encodes to
// the null sentinel. The type parameter is explicit at the call site:
//
//	codec.Nullable[int32](codec.Int)
func Nullable[T any](inner Codec[T]) NullableCodec[T] {
	return NullableCodec[T]{inner: inner}
}

func (c NullableCodec[T]) TypeCheck(typ *cqltype.Type) error {
	return c.inner.TypeCheck(typ)
}

func (c NullableCodec[T]) Decode(typ *cqltype.Type, cell *frame.Slice) (*T, error) {
	if cell == nil {
		return nil, nil
	}
	v, err := c.inner.Decode(typ, cell)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c NullableCodec[T]) Encode(typ *cqltype.Type, v *T, w *frame.CellWriter) (frame.WrittenCell, error) {
	if v == nil {
		return w.WriteNull(), nil
	}
	return c.inner.Encode(typ, *v, w)
}

// MaybeEmpty holds either a value or the legacy zero-length "empty" cell
// state, for column types that cannot represent emptiness natively. Empty
// is distinct from null: an empty cell is present with zero bytes.
type MaybeEmpty[T any] struct {
	val   T
	empty bool
}

// Empty returns the empty state
func Empty[T any]() MaybeEmpty[T] {
	return MaybeEmpty[T]{empty: true}
}

// NonEmpty wraps an ordinary value
func NonEmpty[T any](v T) MaybeEmpty[T] {
	return MaybeEmpty[T]{val: v}
}

// IsEmpty reports whether the cell was present but zero-length
func (m MaybeEmpty[T]) IsEmpty() bool {
	return m.empty
}

// Get returns the value and whether one is present
func (m MaybeEmpty[T]) Get() (T, bool) {
	return m.val, !m.empty
}

// MaybeEmptyCodec adapts an inner codec to MaybeEmpty[T], mapping
// zero-length cells to the empty state before the inner codec sees them
type MaybeEmptyCodec[T any] struct {
	inner Codec[T]
}

// AsMaybeEmpty wraps inner so that zero-length cells decode to the empty
// state instead of a byte length error. Only emptiable codecs qualify:
// types whose wire format can be legitimately zero-length, like text or
// blob, represent emptiness natively and are excluded at compile time.
// The type parameters are explicit at the call site:
//
//	codec.AsMaybeEmpty[int32](codec.Int)
func AsMaybeEmpty[T any, C interface {
	Codec[T]
	Emptiable
}](inner C) MaybeEmptyCodec[T] {
	return MaybeEmptyCodec[T]{inner: inner}
}

func (c MaybeEmptyCodec[T]) TypeCheck(typ *cqltype.Type) error {
	return c.inner.TypeCheck(typ)
}

func (c MaybeEmptyCodec[T]) Decode(typ *cqltype.Type, cell *frame.Slice) (MaybeEmpty[T], error) {
	if cell != nil && cell.Len() == 0 {
		return Empty[T](), nil
	}
	v, err := c.inner.Decode(typ, cell)
	if err != nil {
		return MaybeEmpty[T]{}, err
	}
	return NonEmpty(v), nil
}

func (c MaybeEmptyCodec[T]) Encode(typ *cqltype.Type, v MaybeEmpty[T], w *frame.CellWriter) (frame.WrittenCell, error) {
	if v.empty {
		return w.WriteEmpty(), nil
	}
	return c.inner.Encode(typ, v.val, w)
}
