// Package frame provides bounds-checked access to CQL frame payloads.
//
// A response frame arrives as one contiguous, already-length-framed byte
// buffer owned by the transport layer. This package never copies that
// buffer: a Cursor walks it, handing out Slice windows that borrow from it,
// and a Slice can escape the buffer's lifetime via ToOwned, which shares the
// backing storage instead of deep-copying.
//
// # Reading
//
//	cur := frame.NewCursor(payload)
//	cell, err := cur.ReadCell() // nil cell means CQL null
//	if cell != nil {
//	    raw := cell.Bytes() // zero-copy borrow
//	}
//
// The cursor position advances monotonically and there is no backtracking;
// composite decoders that need to know how many bytes a sub-decode consumed
// compare Pos before and after.
//
// # Writing
//
// CellWriter writes length-prefixed cells and returns a WrittenCell proof
// per cell. The proof cannot be produced by anything except the writer, so
// an encoder that must emit exactly one cell per field can demand one proof
// per field and cannot silently skip a column.
//
// # Varints
//
// ReadVint/AppendVint implement the protocol's variable-length integer
// encoding: the count of leading one bits in the first byte gives the number
// of extension bytes, and signed values are zigzag encoded.
//
// # Aliasing
//
// The underlying buffer must not be mutated while any Slice borrowed from
// it is alive. Upholding that is the transport layer's responsibility.
package frame
