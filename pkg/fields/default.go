package fields

import "github.com/mohae/deepcopy"

// Default is either a concrete value or a zero-argument producer. The zero
// Default is unset.
type Default struct {
	value    any
	producer func() any
	set      bool
}

// Value wraps a concrete default value.
func Value(v any) Default {
	return Default{value: v, set: true}
}

// Producer wraps a deferred default. A nil fn yields an unset Default.
func Producer(fn func() any) Default {
	if fn == nil {
		return Default{}
	}
	return Default{producer: fn, set: true}
}

// IsSet reports whether a default was declared.
func (d Default) IsSet() bool {
	return d.set
}

// IsDeferred reports whether the default is produced by a function.
func (d Default) IsDeferred() bool {
	return d.producer != nil
}

// Resolve invokes the producer when present, otherwise returns the stored value
// as is.
func (d Default) Resolve() any {
	if d.producer != nil {
		return d.producer()
	}
	return d.value
}

// fresh resolves the default so the caller owns the result: producers run
// again and stored values are deep-copied.
func (d Default) fresh() any {
	if d.producer != nil {
		return d.producer()
	}
	if d.value == nil {
		return nil
	}
	return deepcopy.Copy(d.value)
}
