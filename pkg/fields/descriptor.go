package fields

// Descriptor is implemented by every field kind. Validate is a pure function
// of the descriptor and the value; path names the value in returned errors.
// Schema returns nil when the descriptor emits no fragment.
type Descriptor interface {
	Kind() Kind
	AllowsNull() bool
	Default() any
	Validate(value any, path string) error
	Schema() Fragment
}

var (
	_ Descriptor = (*Text)(nil)
	_ Descriptor = (*Boolean)(nil)
	_ Descriptor = (*Number)(nil)
	_ Descriptor = (*Timestamp)(nil)
	_ Descriptor = (*Enum)(nil)
	_ Descriptor = (*List)(nil)
	_ Descriptor = (*Dict)(nil)
)

// base holds the state every kind shares.
type base struct {
	kind      Kind
	allowNull bool
	hints     Fragment
}

func newBase(kind Kind, cfg config) base {
	return base{kind: kind, allowNull: cfg.allowNull, hints: cfg.hints.Clone()}
}

// Kind reports the descriptor kind.
func (b base) Kind() Kind {
	return b.kind
}

// AllowsNull reports whether null/unset values are accepted.
func (b base) AllowsNull() bool {
	return b.allowNull
}

// Hints returns a copy of the schema overrides.
func (b base) Hints() Fragment {
	return b.hints.Clone()
}

// checkNull settles validation for null values: done is true when value is
// null, and err is set when null is not allowed.
func (b base) checkNull(value any, path string) (done bool, err error) {
	if !IsNull(value) {
		return false, nil
	}
	if b.allowNull {
		return true, nil
	}
	return true, &FieldError{Field: path, Value: value, Err: ErrNullValue}
}

// fragment copies the hints and fills "type" from the kind when the hints do
// not set one. Returns nil when nothing would be emitted.
func (b base) fragment() Fragment {
	out := b.hints.Clone()
	if _, ok := out["type"]; !ok {
		if typ := b.kind.SchemaType(); typ != "" {
			out["type"] = typ
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
