package fields

// Number accepts integers, floats and json.Number. Booleans are rejected.
// Bounds apply to non-zero values only.
type Number struct {
	base
	def any
	max *float64
	min *float64
}

// NewNumber constructs a Number descriptor.
func NewNumber(options ...Option) *Number {
	cfg := newConfig(options)
	return &Number{
		base: newBase(KindNumber, cfg),
		def:  cfg.def.Resolve(),
		max:  cfg.max,
		min:  cfg.min,
	}
}

// Default returns the default resolved at construction.
func (n *Number) Default() any {
	return n.def
}

// Max returns the upper bound, if any.
func (n *Number) Max() (float64, bool) {
	if n.max == nil {
		return 0, false
	}
	return *n.max, true
}

// Min returns the lower bound, if any.
func (n *Number) Min() (float64, bool) {
	if n.min == nil {
		return 0, false
	}
	return *n.min, true
}

// Validate implements Descriptor.
func (n *Number) Validate(value any, path string) error {
	if done, err := n.checkNull(value, path); done {
		return err
	}
	num, ok := numberValue(value)
	if !ok {
		return mismatch(value, path, KindNumber)
	}
	if num.isZero() {
		return nil
	}
	if n.max != nil {
		if c, ok := num.cmp(floatNumeric(*n.max)); ok && c > 0 {
			return &FieldError{Field: path, Value: value, Limit: *n.max, Err: ErrValueTooLarge}
		}
	}
	if n.min == nil {
		return nil
	}
	if c, ok := num.cmp(floatNumeric(*n.min)); ok && c < 0 {
		return &FieldError{Field: path, Value: value, Limit: *n.min, Err: ErrValueTooSmall}
	}
	return nil
}

// Schema implements Descriptor.
func (n *Number) Schema() Fragment {
	return n.fragment()
}
