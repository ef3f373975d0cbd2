package fields

import "unicode/utf8"

// Text accepts strings. Length bounds count runes and apply to non-empty
// values only.
type Text struct {
	base
	def       any
	maxLength *int
	minLength *int
	plain     bool
}

// NewText constructs a Text descriptor.
func NewText(options ...Option) *Text {
	cfg := newConfig(options)
	return &Text{
		base:      newBase(KindText, cfg),
		def:       cfg.def.Resolve(),
		maxLength: cfg.maxLength,
		minLength: cfg.minLength,
		plain:     cfg.plain,
	}
}

// Default returns the default resolved at construction.
func (t *Text) Default() any {
	return t.def
}

// MaxLength returns the upper length bound, if any.
func (t *Text) MaxLength() (int, bool) {
	if t.maxLength == nil {
		return 0, false
	}
	return *t.maxLength, true
}

// MinLength returns the lower length bound, if any.
func (t *Text) MinLength() (int, bool) {
	if t.minLength == nil {
		return 0, false
	}
	return *t.minLength, true
}

// Plain reports whether markup is rejected.
func (t *Text) Plain() bool {
	return t.plain
}

// Validate implements Descriptor.
func (t *Text) Validate(value any, path string) error {
	if done, err := t.checkNull(value, path); done {
		return err
	}
	s, ok := textValue(value)
	if !ok {
		return mismatch(value, path, KindText)
	}
	if s == "" {
		return nil
	}

	length := utf8.RuneCountInString(s)
	if t.maxLength != nil && length > *t.maxLength {
		return &FieldError{Field: path, Value: value, Limit: *t.maxLength, Err: ErrValueTooLarge}
	}
	if t.minLength != nil && length < *t.minLength {
		return &FieldError{Field: path, Value: value, Limit: *t.minLength, Err: ErrValueTooSmall}
	}
	if t.plain && !isPlainText(s) {
		return &FieldError{Field: path, Value: value, Err: ErrUnsafeMarkup}
	}
	return nil
}

// Schema implements Descriptor.
func (t *Text) Schema() Fragment {
	return t.fragment()
}
