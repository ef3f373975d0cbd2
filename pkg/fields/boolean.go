package fields

// Boolean accepts true and false.
type Boolean struct {
	base
	def any
}

// NewBoolean constructs a Boolean descriptor.
func NewBoolean(options ...Option) *Boolean {
	cfg := newConfig(options)
	return &Boolean{base: newBase(KindBoolean, cfg), def: cfg.def.Resolve()}
}

// Default returns the default resolved at construction.
func (b *Boolean) Default() any {
	return b.def
}

// Validate implements Descriptor.
func (b *Boolean) Validate(value any, path string) error {
	if done, err := b.checkNull(value, path); done {
		return err
	}
	if _, ok := boolValue(value); !ok {
		return mismatch(value, path, KindBoolean)
	}
	return nil
}

// Schema implements Descriptor.
func (b *Boolean) Schema() Fragment {
	return b.fragment()
}
