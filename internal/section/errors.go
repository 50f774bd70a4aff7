package section

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors, one per decode failure class. Every [*DecodeError]
// unwraps to exactly one of them.
var (
	ErrEmptyDocument    = errors.New("empty document")
	ErrUnknownSection   = errors.New("unknown section")
	ErrMissingField     = errors.New("missing field")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrUnknownColor     = errors.New("unknown color")
	ErrDuplicateSection = errors.New("duplicate section")
)

// Code classifies a DecodeError.
type Code int

const (
	CodeEmptyDocument Code = iota + 1
	CodeUnknownSection
	CodeMissingField
	CodeTypeMismatch
	CodeUnknownColor
	CodeDuplicateSection
)

// String returns the name of the failure class.
func (c Code) String() string {
	switch c {
	case CodeEmptyDocument:
		return "EmptyDocument"
	case CodeUnknownSection:
		return "UnknownSection"
	case CodeMissingField:
		return "MissingField"
	case CodeTypeMismatch:
		return "TypeMismatch"
	case CodeUnknownColor:
		return "UnknownColor"
	case CodeDuplicateSection:
		return "DuplicateSection"
	default:
		return "Unknown"
	}
}

func (c Code) sentinel() error {
	switch c {
	case CodeEmptyDocument:
		return ErrEmptyDocument
	case CodeUnknownSection:
		return ErrUnknownSection
	case CodeMissingField:
		return ErrMissingField
	case CodeTypeMismatch:
		return ErrTypeMismatch
	case CodeUnknownColor:
		return ErrUnknownColor
	case CodeDuplicateSection:
		return ErrDuplicateSection
	default:
		return nil
	}
}

// DecodeError describes why a document or one of its sections failed to decode.
type DecodeError struct {
	Code Code

	// Kind is the section being decoded, or KindInvalid for
	// document-level failures.
	Kind Kind

	// Key is the document key as written. Set by the ordered decoder.
	Key string

	// Position is the zero-based key index, or -1 when not applicable.
	Position int

	// Field names the offending record field or mapping entry.
	Field string

	// Expected and Actual describe the shape mismatch, or the rejected
	// value for UnknownColor.
	Expected string
	Actual   string
}

func (e *DecodeError) Error() string {
	var b strings.Builder

	if e.Key != "" || e.Kind != KindInvalid {
		key := e.Key
		if key == "" {
			key = e.Kind.String()
		}
		fmt.Fprintf(&b, "section %q", key)
		if e.Position >= 0 {
			fmt.Fprintf(&b, " (position %d)", e.Position)
		}
		b.WriteString(": ")
	}

	switch e.Code {
	case CodeEmptyDocument:
		b.WriteString("document has no sections; configure at least one or omit the dashboard")
	case CodeUnknownSection:
		b.WriteString("unknown section")
	case CodeDuplicateSection:
		fmt.Fprintf(&b, "duplicate %s section", e.Kind)
	case CodeMissingField:
		fmt.Fprintf(&b, "missing required field %q", e.Field)
	case CodeUnknownColor:
		fmt.Fprintf(&b, "unknown color %q", e.Actual)
	case CodeTypeMismatch:
		if e.Field != "" {
			fmt.Fprintf(&b, "field %q: ", e.Field)
		}
		fmt.Fprintf(&b, "expected %s, got %s", e.Expected, e.Actual)
	default:
		b.WriteString("decode failed")
	}
	return b.String()
}

// Unwrap returns the sentinel for the error's Code.
func (e *DecodeError) Unwrap() error {
	return e.Code.sentinel()
}

func missingField(kind Kind, field string) *DecodeError {
	return &DecodeError{Code: CodeMissingField, Kind: kind, Field: field, Position: -1}
}

func typeMismatch(kind Kind, field, expected string, actual any) *DecodeError {
	return &DecodeError{
		Code:     CodeTypeMismatch,
		Kind:     kind,
		Field:    field,
		Expected: expected,
		Actual:   describe(actual),
		Position: -1,
	}
}

// describe renders a generic node for error messages.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", x)
	case bool:
		return fmt.Sprintf("boolean %t", x)
	case float32, float64:
		return fmt.Sprintf("float %v", x)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("integer %v", x)
	case map[string]any:
		return "table"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
