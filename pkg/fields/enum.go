package fields

import "fmt"

// Enum accepts only members of a fixed, ordered candidate list. It has no
// generic schema type and emits a fragment only when hints are supplied.
type Enum struct {
	base
	def    any
	values []any
}

// NewEnum constructs an Enum over values. At least one value is required.
func NewEnum(values []any, options ...Option) (*Enum, error) {
	if len(values) == 0 {
		return nil, invalidDescriptor("enum requires at least one value")
	}
	cfg := newConfig(options)
	return &Enum{
		base:   newBase(KindEnum, cfg),
		def:    cfg.def.Resolve(),
		values: append([]any(nil), values...),
	}, nil
}

// MustEnum is like NewEnum but panics on error. Intended for static
// declarations.
func MustEnum(values []any, options ...Option) *Enum {
	enum, err := NewEnum(values, options...)
	if err != nil {
		panic(err)
	}
	return enum
}

// Default returns the default resolved at construction.
func (e *Enum) Default() any {
	return e.def
}

// Values returns a copy of the candidate list.
func (e *Enum) Values() []any {
	return append([]any(nil), e.values...)
}

// Contains reports whether value is a member.
func (e *Enum) Contains(value any) bool {
	for _, candidate := range e.values {
		if sameValue(candidate, value) {
			return true
		}
	}
	return false
}

// Validate implements Descriptor.
func (e *Enum) Validate(value any, path string) error {
	if done, err := e.checkNull(value, path); done {
		return err
	}
	if e.Contains(value) {
		return nil
	}
	expected := make([]string, 0, len(e.values))
	for _, candidate := range e.values {
		expected = append(expected, fmt.Sprint(candidate))
	}
	return &FieldError{Field: path, Value: value, Expected: expected, Err: ErrNotEnumMember}
}

// Schema implements Descriptor.
func (e *Enum) Schema() Fragment {
	return e.fragment()
}
