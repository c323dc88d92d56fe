package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which codec phase the error occurred in
type Phase string

const (
	PhaseTypeCheck Phase = "typecheck" // type compatibility validation
	PhaseDecode    Phase = "decode"    // wire bytes to Go
	PhaseEncode    Phase = "encode"    // Go to wire bytes
	PhaseParse     Phase = "parse"     // low-level frame reading
)

// Kind categorizes the error.
//
// The set of kinds is open: new kinds may be added without a breaking
// change, so callers switching on Kind must keep a default arm.
type Kind string

const (
	KindMismatchedType      Kind = "mismatched_type"
	KindExpectedNonNull     Kind = "expected_non_null"
	KindByteLengthMismatch  Kind = "byte_length_mismatch"
	KindExpectedAscii       Kind = "expected_ascii"
	KindInvalidUTF8         Kind = "invalid_utf8"
	KindOverflow            Kind = "overflow"
	KindParse               Kind = "parse"
	KindUnexpectedEOF       Kind = "unexpected_eof"
	KindFieldMissing        Kind = "field_missing"
	KindFieldUnknown        Kind = "field_unknown"
	KindColumnCountMismatch Kind = "column_count_mismatch"
	KindInvalidData         Kind = "invalid_data"
	KindUnsupported         Kind = "unsupported"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	CqlType  string
	Detail   string
	Path     []string
	Expected int
	Got      int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.CqlType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.CqlType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", CQL type ")
			b.WriteString(e.CqlType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("CQL type ")
			b.WriteString(e.CqlType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.CqlType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// CqlType sets the CQL type name
func (b *Builder) CqlType(t string) *Builder {
	b.err.CqlType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Lengths sets the expected and actual byte counts
func (b *Builder) Lengths(expected, got int) *Builder {
	b.err.Expected = expected
	b.err.Got = got
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MismatchedType creates a type-check mismatch error listing the CQL types
// the Go type can represent
func MismatchedType(goType, cqlType string, expected ...string) *Error {
	return &Error{
		Phase:   PhaseTypeCheck,
		Kind:    KindMismatchedType,
		GoType:  goType,
		CqlType: cqlType,
		Detail:  fmt.Sprintf("expected one of the CQL types: %s", strings.Join(expected, ", ")),
	}
}

// ExpectedNonNull creates an error for a null cell decoded into a
// non-nullable Go type
func ExpectedNonNull(goType, cqlType string) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindExpectedNonNull,
		GoType:  goType,
		CqlType: cqlType,
		Detail:  "expected a non-null value, got null",
	}
}

// ByteLengthMismatch creates an error for a cell whose byte length does not
// match the fixed width of the target type
func ByteLengthMismatch(goType, cqlType string, expected, got int) *Error {
	return &Error{
		Phase:    PhaseDecode,
		Kind:     KindByteLengthMismatch,
		GoType:   goType,
		CqlType:  cqlType,
		Expected: expected,
		Got:      got,
		Detail:   fmt.Sprintf("the CQL type requires %d bytes, but got %d", expected, got),
	}
}

// ExpectedAscii creates an error for non-ASCII bytes in an ascii column
func ExpectedAscii(goType string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindExpectedAscii,
		GoType: goType,
		Detail: fmt.Sprintf("expected a valid ASCII string, got %x", preview),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, goType string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		GoType: goType,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// Overflow creates an error for a decoded value outside the representable
// or protocol-valid range of the target type
func Overflow(phase Phase, goType, cqlType string, value any) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindOverflow,
		GoType:  goType,
		CqlType: cqlType,
		Detail:  fmt.Sprintf("value %v is out of representable range", value),
		Value:   value,
	}
}

// ParseFailed wraps a lower-level frame parse error
func ParseFailed(phase Phase, goType, cqlType string, cause error) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindParse,
		GoType:  goType,
		CqlType: cqlType,
		Cause:   cause,
	}
}

// UnexpectedEOF creates an error for a frame that ended before the
// requested number of bytes
func UnexpectedEOF(want, have int) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindUnexpectedEOF,
		Expected: want,
		Got:      have,
		Detail:   fmt.Sprintf("need %d more bytes, have %d", want, have),
	}
}

// FieldMissing creates an error for a wire column with no matching field
func FieldMissing(name string) *Error {
	return &Error{
		Phase:  PhaseTypeCheck,
		Kind:   KindFieldMissing,
		Detail: fmt.Sprintf("no field provided for column %q", name),
	}
}

// FieldUnknown creates an error for a field with no matching wire column
func FieldUnknown(name string) *Error {
	return &Error{
		Phase:  PhaseTypeCheck,
		Kind:   KindFieldUnknown,
		Detail: fmt.Sprintf("field %q does not match any column", name),
	}
}

// ColumnCountMismatch creates an error for a row whose column count differs
// from the declared field count
func ColumnCountMismatch(fields, columns int) *Error {
	return &Error{
		Phase:    PhaseTypeCheck,
		Kind:     KindColumnCountMismatch,
		Expected: fields,
		Got:      columns,
		Detail:   fmt.Sprintf("%d fields declared, %d columns on the wire", fields, columns),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Outer envelopes. Callers that do not care which built-in produced a
// failure can handle these uniformly; programmatic callers unwrap to the
// inner *Error and branch on Kind.

// TypeCheckError wraps any failure of the type-check phase
type TypeCheckError struct {
	Err error
}

func (e TypeCheckError) Error() string {
	return "type check failed: " + e.Err.Error()
}

func (e TypeCheckError) Unwrap() error {
	return e.Err
}

// NewTypeCheckError wraps err in a TypeCheckError envelope
func NewTypeCheckError(err error) TypeCheckError {
	return TypeCheckError{Err: err}
}

// DecodeError wraps any failure of the per-value decode phase
type DecodeError struct {
	Err error
}

func (e DecodeError) Error() string {
	return "decode failed: " + e.Err.Error()
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError wraps err in a DecodeError envelope
func NewDecodeError(err error) DecodeError {
	return DecodeError{Err: err}
}

// EncodeError wraps any failure of the per-value encode phase
type EncodeError struct {
	Err error
}

func (e EncodeError) Error() string {
	return "encode failed: " + e.Err.Error()
}

func (e EncodeError) Unwrap() error {
	return e.Err
}

// NewEncodeError wraps err in an EncodeError envelope
func NewEncodeError(err error) EncodeError {
	return EncodeError{Err: err}
}
