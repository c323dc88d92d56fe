// Package cqlcodec converts between CQL wire values and native Go values.
//
// The library implements the value layer of the CQL native protocol: the
// length-prefixed cells carried in query results and bound parameters,
// covering every column type from tinyint to nested user-defined types.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	cqlcodec/            Root package with whole-cell convenience functions
//	├── frame/           Cell framing: cursors, slices, writers, varints
//	├── cqltype/         Column type metadata and native value types
//	├── codec/           Per-type codecs, wrappers and row iteration
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Decode one framed cell:
//
//	v, err := cqlcodec.DecodeCell[int32](codec.Int, cqltype.TypeInt, raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // 42
//
// Encode a value back to cell bytes:
//
//	raw, err := cqlcodec.EncodeCell(codec.Text, cqltype.TypeText, "hello")
//
// # Two-Phase Decoding
//
// Every codec separates type checking from byte conversion. TypeCheck runs
// once per column and validates that the Go type can represent it; Decode
// runs once per cell and assumes the check passed. Callers processing many
// rows should call TypeCheck themselves ahead of the row loop and use the
// codec's Decode directly; DecodeCell bundles both phases for one-shot use.
//
// # Null and Empty
//
// The protocol distinguishes a null cell (negative length prefix) from a
// present zero-length cell. For types like text and blob a zero-length cell
// is an ordinary empty value; for fixed-width types it is a legacy state
// that codec.AsMaybeEmpty surfaces explicitly. Nullability is opt-in via
// codec.Nullable, which decodes null to a nil pointer.
//
// # Memory Model
//
// Decoded strings and blobs copy out of the frame buffer by default, so
// results stay valid after the buffer is recycled. codec.SharedBlob skips
// the copy and aliases the buffer instead; use it only when the buffer
// provably outlives the decoded value.
package cqlcodec
