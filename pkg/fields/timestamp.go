package fields

import "time"

// Timestamp accepts time.Time values. Bounds compare chronologically and
// apply to non-zero instants only.
type Timestamp struct {
	base
	def      any
	latest   *time.Time
	earliest *time.Time
}

// NewTimestamp constructs a Timestamp descriptor.
func NewTimestamp(options ...Option) *Timestamp {
	cfg := newConfig(options)
	return &Timestamp{
		base:     newBase(KindTimestamp, cfg),
		def:      cfg.def.Resolve(),
		latest:   cfg.latest,
		earliest: cfg.earliest,
	}
}

// Default returns the default resolved at construction.
func (t *Timestamp) Default() any {
	return t.def
}

// Latest returns the upper bound, if any.
func (t *Timestamp) Latest() (time.Time, bool) {
	if t.latest == nil {
		return time.Time{}, false
	}
	return *t.latest, true
}

// Earliest returns the lower bound, if any.
func (t *Timestamp) Earliest() (time.Time, bool) {
	if t.earliest == nil {
		return time.Time{}, false
	}
	return *t.earliest, true
}

// Validate implements Descriptor.
func (t *Timestamp) Validate(value any, path string) error {
	if done, err := t.checkNull(value, path); done {
		return err
	}
	ts, ok := timeValue(value)
	if !ok {
		return mismatch(value, path, KindTimestamp)
	}
	if ts.IsZero() {
		return nil
	}
	if t.latest != nil && ts.After(*t.latest) {
		return &FieldError{Field: path, Value: value, Limit: t.latest.Format(time.RFC3339Nano), Err: ErrValueTooLarge}
	}
	if t.earliest != nil && ts.Before(*t.earliest) {
		return &FieldError{Field: path, Value: value, Limit: t.earliest.Format(time.RFC3339Nano), Err: ErrValueTooSmall}
	}
	return nil
}

// Schema implements Descriptor.
func (t *Timestamp) Schema() Fragment {
	return t.fragment()
}
