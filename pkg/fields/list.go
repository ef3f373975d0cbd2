package fields

import "reflect"

// List accepts slices and arrays. A homogeneous list validates every element
// against one item descriptor; an any-of list accepts an element when at least
// one candidate accepts it.
type List struct {
	base
	items []Descriptor
	anyOf bool
	def   Default
}

// NewList constructs a homogeneous list of item.
func NewList(item Descriptor, options ...Option) (*List, error) {
	if item == nil {
		return nil, invalidDescriptor("list item descriptor is required")
	}
	cfg := newConfig(options)
	return &List{base: newBase(KindList, cfg), items: []Descriptor{item}, def: cfg.def}, nil
}

// NewAnyOf constructs a heterogeneous list whose elements may match any of
// candidates, tried in order.
func NewAnyOf(candidates []Descriptor, options ...Option) (*List, error) {
	if len(candidates) == 0 {
		return nil, invalidDescriptor("any-of list requires at least one candidate")
	}
	for idx, candidate := range candidates {
		if candidate == nil {
			return nil, invalidDescriptor("any-of candidate %d is nil", idx)
		}
	}
	cfg := newConfig(options)
	return &List{
		base:  newBase(KindList, cfg),
		items: append([]Descriptor(nil), candidates...),
		anyOf: true,
		def:   cfg.def,
	}, nil
}

// MustList is like NewList but panics on error.
func MustList(item Descriptor, options ...Option) *List {
	list, err := NewList(item, options...)
	if err != nil {
		panic(err)
	}
	return list
}

// MustAnyOf is like NewAnyOf but panics on error.
func MustAnyOf(candidates []Descriptor, options ...Option) *List {
	list, err := NewAnyOf(candidates, options...)
	if err != nil {
		panic(err)
	}
	return list
}

// IsAnyOf reports whether the list is heterogeneous.
func (l *List) IsAnyOf() bool {
	return l.anyOf
}

// Item returns the element descriptor of a homogeneous list, or the first
// candidate of an any-of list.
func (l *List) Item() Descriptor {
	return l.items[0]
}

// Candidates returns the element descriptors in declaration order.
func (l *List) Candidates() []Descriptor {
	return append([]Descriptor(nil), l.items...)
}

// Default returns a new empty slice unless a default was declared, in which
// case it is produced or deep-copied on every call.
func (l *List) Default() any {
	if !l.def.IsSet() {
		return []any{}
	}
	return l.def.fresh()
}

// Validate implements Descriptor.
func (l *List) Validate(value any, path string) error {
	if done, err := l.checkNull(value, path); done {
		return err
	}
	rv := indirect(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return &FieldError{Field: path, Value: value, Expected: []string{KindList.String()}, Err: ErrNotASequence}
	}

	for idx := 0; idx < rv.Len(); idx++ {
		elem := rv.Index(idx).Interface()
		elemPath := indexPath(path, idx)
		if !l.anyOf {
			if err := l.items[0].Validate(elem, elemPath); err != nil {
				return err
			}
			continue
		}
		if !l.matchesAny(elem, elemPath) {
			return &FieldError{Field: elemPath, Value: elem, Expected: l.candidateKinds(), Err: ErrNoMatchingVariant}
		}
	}
	return nil
}

func (l *List) matchesAny(elem any, path string) bool {
	for _, candidate := range l.items {
		if candidate.Validate(elem, path) == nil {
			return true
		}
	}
	return false
}

func (l *List) candidateKinds() []string {
	kinds := make([]string, 0, len(l.items))
	for _, candidate := range l.items {
		kinds = append(kinds, candidate.Kind().String())
	}
	return kinds
}

// Schema returns the element fragment (the first candidate that emits one for
// any-of lists) with the list's own hints merged on top. Index mappings type
// arrays by their elements.
func (l *List) Schema() Fragment {
	var out Fragment
	for _, candidate := range l.items {
		if fragment := candidate.Schema(); fragment != nil {
			out = fragment
			break
		}
	}
	if out == nil && len(l.hints) == 0 {
		return nil
	}
	return out.merge(l.hints)
}
