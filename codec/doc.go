// Package codec converts between CQL column values and native Go values.
//
// Every codec splits its work into two phases. TypeCheck runs once per
// column type and validates that the Go shape can represent it; Decode and
// Encode run once per cell and may assume the type already passed. Keeping
// the phases apart means a million-row result pays the type compatibility
// cost once, not a million times.
//
// Built-in codecs are stateless zero-size values exported as package
// variables (Boolean, Int, Text, ...). Wrap them to change nullability:
// Nullable yields *T with nil for absent cells, and AsMaybeEmpty surfaces
// the legacy zero-length "empty" cell state for the types that cannot
// represent it natively. Dynamic decodes any column, collections and UDTs
// included, into a cqltype.Value tree when the schema is only known at
// runtime.
//
// Failures are enveloped by phase: TypeCheck returns errors.TypeCheckError,
// Decode returns errors.DecodeError, Encode returns errors.EncodeError.
// Each envelope unwraps to a *errors.Error carrying the structured detail.
package codec
