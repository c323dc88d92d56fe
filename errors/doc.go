// Package errors provides structured error types for the cql-codec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the Go target type, the
// CQL column type, expected/actual byte counts, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindByteLengthMismatch).
//		GoType("int32").
//		CqlType("int").
//		Lengths(4, 3).
//		Detail("the CQL type requires 4 bytes, but got 3").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MismatchedType("int32", "date", "int")
//	err := errors.ByteLengthMismatch("int32", "int", 4, 3)
//
// Failures additionally carry an outer envelope identifying the failure
// moment: TypeCheckError for schema/application mismatches found before any
// bytes are read, DecodeError and EncodeError for per-value conversion
// failures. The envelopes unwrap to the inner *Error so programmatic callers
// can branch on Kind.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
