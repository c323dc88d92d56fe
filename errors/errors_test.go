package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseDecode,
				Kind:    KindByteLengthMismatch,
				Path:    []string{"row", "user_id"},
				GoType:  "int32",
				CqlType: "int",
				Detail:  "the CQL type requires 4 bytes, but got 3",
			},
			contains: []string{"[decode]", "byte_length_mismatch", "row.user_id", "int32", "int", "4 bytes"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseTypeCheck,
				Kind:  KindMismatchedType,
			},
			contains: []string{"[typecheck]", "mismatched_type"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindParse,
				Detail: "cell prefix",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[decode]", "parse", "cell prefix", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindParse,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverflow,
		GoType: "cqltype.Time",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindOverflow}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindOverflow}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindExpectedNonNull}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseDecode, Kind: KindOverflow}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindByteLengthMismatch).
		Path("row", "balance").
		GoType("int64").
		CqlType("bigint").
		Lengths(8, 5).
		Value(int64(42)).
		Cause(cause).
		Detail("expected %d bytes, got %d", 8, 5).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindByteLengthMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindByteLengthMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "row" || err.Path[1] != "balance" {
		t.Errorf("Path = %v, want [row balance]", err.Path)
	}
	if err.GoType != "int64" {
		t.Errorf("GoType = %v, want 'int64'", err.GoType)
	}
	if err.CqlType != "bigint" {
		t.Errorf("CqlType = %v, want 'bigint'", err.CqlType)
	}
	if err.Expected != 8 || err.Got != 5 {
		t.Errorf("Expected/Got = %d/%d, want 8/5", err.Expected, err.Got)
	}
	if err.Value != int64(42) {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 8 bytes, got 5" {
		t.Errorf("Detail = %v, want 'expected 8 bytes, got 5'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MismatchedType", func(t *testing.T) {
		err := MismatchedType("int32", "date", "int")
		if err.Kind != KindMismatchedType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMismatchedType)
		}
		if err.Phase != PhaseTypeCheck {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseTypeCheck)
		}
		if err.GoType != "int32" || err.CqlType != "date" {
			t.Errorf("GoType=%v CqlType=%v", err.GoType, err.CqlType)
		}
		if !strings.Contains(err.Detail, "int") {
			t.Errorf("Detail = %v, should list expected types", err.Detail)
		}
	})

	t.Run("ExpectedNonNull", func(t *testing.T) {
		err := ExpectedNonNull("bool", "boolean")
		if err.Kind != KindExpectedNonNull {
			t.Errorf("Kind = %v, want %v", err.Kind, KindExpectedNonNull)
		}
	})

	t.Run("ByteLengthMismatch", func(t *testing.T) {
		err := ByteLengthMismatch("int32", "int", 4, 0)
		if err.Kind != KindByteLengthMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindByteLengthMismatch)
		}
		if err.Expected != 4 || err.Got != 0 {
			t.Errorf("Expected/Got = %d/%d, want 4/0", err.Expected, err.Got)
		}
	})

	t.Run("ExpectedAscii", func(t *testing.T) {
		err := ExpectedAscii("string", []byte("Zażółć"))
		if err.Kind != KindExpectedAscii {
			t.Errorf("Kind = %v, want %v", err.Kind, KindExpectedAscii)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		err := InvalidUTF8(PhaseDecode, "string", []byte{0xff, 0xfe})
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseDecode, "cqltype.Time", "time", int64(86400000000000))
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != int64(86400000000000) {
			t.Errorf("Value = %v, want the offending value", err.Value)
		}
	})

	t.Run("UnexpectedEOF", func(t *testing.T) {
		err := UnexpectedEOF(4, 2)
		if err.Kind != KindUnexpectedEOF {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnexpectedEOF)
		}
		if !strings.Contains(err.Detail, "4") || !strings.Contains(err.Detail, "2") {
			t.Errorf("Detail = %v, should contain byte counts", err.Detail)
		}
	})

	t.Run("FieldMissing", func(t *testing.T) {
		err := FieldMissing("age")
		if err.Kind != KindFieldMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldMissing)
		}
		if !strings.Contains(err.Detail, "age") {
			t.Errorf("Detail = %v, should name the column", err.Detail)
		}
	})

	t.Run("FieldUnknown", func(t *testing.T) {
		err := FieldUnknown("extra")
		if err.Kind != KindFieldUnknown {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldUnknown)
		}
	})

	t.Run("ColumnCountMismatch", func(t *testing.T) {
		err := ColumnCountMismatch(3, 2)
		if err.Kind != KindColumnCountMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindColumnCountMismatch)
		}
		if err.Expected != 3 || err.Got != 2 {
			t.Errorf("Expected/Got = %d/%d, want 3/2", err.Expected, err.Got)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("short read")
		err := ParseFailed(PhaseDecode, "cqltype.Duration", "duration", cause)
		if err.Kind != KindParse {
			t.Errorf("Kind = %v, want %v", err.Kind, KindParse)
		}
		if !errors.Is(err, cause) {
			t.Error("ParseFailed should wrap the cause")
		}
	})
}

func TestEnvelopes(t *testing.T) {
	inner := MismatchedType("int32", "date", "int")

	t.Run("TypeCheckError", func(t *testing.T) {
		env := NewTypeCheckError(inner)
		var got *Error
		if !errors.As(env, &got) {
			t.Fatal("errors.As should reach the inner *Error")
		}
		if got.Kind != KindMismatchedType {
			t.Errorf("Kind = %v, want %v", got.Kind, KindMismatchedType)
		}
		if !strings.Contains(env.Error(), "type check failed") {
			t.Errorf("Error() = %q, should identify the phase", env.Error())
		}
	})

	t.Run("DecodeError", func(t *testing.T) {
		env := NewDecodeError(ExpectedNonNull("bool", "boolean"))
		var got *Error
		if !errors.As(env, &got) {
			t.Fatal("errors.As should reach the inner *Error")
		}
		if got.Kind != KindExpectedNonNull {
			t.Errorf("Kind = %v, want %v", got.Kind, KindExpectedNonNull)
		}
	})

	t.Run("EncodeError", func(t *testing.T) {
		env := NewEncodeError(Overflow(PhaseEncode, "int", "tinyint", 300))
		var got *Error
		if !errors.As(env, &got) {
			t.Fatal("errors.As should reach the inner *Error")
		}
		if got.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", got.Kind, KindOverflow)
		}
	})

	t.Run("envelopes are distinct", func(t *testing.T) {
		var tc TypeCheckError
		env := NewDecodeError(inner)
		if errors.As(env, &tc) {
			t.Error("a DecodeError must not match TypeCheckError")
		}
	})
}
