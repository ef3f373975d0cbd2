package fields

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failure kinds. Every error returned by Descriptor.Validate wraps
// exactly one of these.
var (
	ErrNullValue         = errors.New("null value not allowed")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrValueTooLarge     = errors.New("value too large")
	ErrValueTooSmall     = errors.New("value too small")
	ErrNotEnumMember     = errors.New("not an enum member")
	ErrNotASequence      = errors.New("not a sequence")
	ErrNoMatchingVariant = errors.New("no matching variant")
	ErrUnexpectedKey     = errors.New("unexpected key")
	ErrUnsafeMarkup      = errors.New("markup not allowed")
)

// ErrInvalidDescriptor is returned by constructors when the declaration itself
// is malformed (missing children, duplicate keys, empty enum).
var ErrInvalidDescriptor = errors.New("fields: invalid descriptor")

// FieldError describes a single validation failure at Field, the dotted path
// of the offending value. Expected lists accepted kinds or enum members and
// Limit holds the violated bound, when relevant.
type FieldError struct {
	Field    string
	Value    any
	Expected []string
	Limit    any
	Err      error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fields: '%v' invalid for field '%s': %v", e.Value, e.Field, e.Err)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, " (expected %s)", strings.Join(e.Expected, ", "))
	}
	if e.Limit != nil {
		fmt.Fprintf(&b, " (limit %v)", e.Limit)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// AsFieldError extracts the *FieldError carried by err, if any.
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}

func invalidDescriptor(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDescriptor, fmt.Sprintf(format, args...))
}

func mismatch(value any, path string, expected ...Kind) error {
	names := make([]string, 0, len(expected))
	for _, kind := range expected {
		names = append(names, kind.String())
	}
	return &FieldError{Field: path, Value: value, Expected: names, Err: ErrTypeMismatch}
}
