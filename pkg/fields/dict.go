package fields

import (
	"reflect"
	"sort"
	"strings"
)

// Component binds a key of a Dict to its descriptor.
type Component struct {
	Name string
	Type Descriptor
}

// Dict accepts string-keyed maps. Each declared component validates the value
// stored under its key; absent keys validate as null. Undeclared keys are
// ignored unless the Dict is strict.
type Dict struct {
	base
	components []Component
	index      map[string]int
	strict     bool
	def        Default
}

// NewDict constructs a Dict over components, preserving their order.
func NewDict(components []Component, options ...Option) (*Dict, error) {
	index := make(map[string]int, len(components))
	declared := make([]Component, 0, len(components))
	for idx, component := range components {
		name := strings.TrimSpace(component.Name)
		if name == "" {
			return nil, invalidDescriptor("dict component %d has an empty name", idx)
		}
		if component.Type == nil {
			return nil, invalidDescriptor("dict component %q has no descriptor", name)
		}
		if _, exists := index[name]; exists {
			return nil, invalidDescriptor("duplicate dict component %q", name)
		}
		index[name] = idx
		declared = append(declared, Component{Name: name, Type: component.Type})
	}

	cfg := newConfig(options)
	return &Dict{
		base:       newBase(KindDict, cfg),
		components: declared,
		index:      index,
		strict:     cfg.strict,
		def:        cfg.def,
	}, nil
}

// MustDict is like NewDict but panics on error.
func MustDict(components []Component, options ...Option) *Dict {
	dict, err := NewDict(components, options...)
	if err != nil {
		panic(err)
	}
	return dict
}

// Components returns the component map in declaration order.
func (d *Dict) Components() []Component {
	return append([]Component(nil), d.components...)
}

// Component looks up the descriptor declared for name.
func (d *Dict) Component(name string) (Descriptor, bool) {
	idx, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.components[idx].Type, true
}

// IsStrict reports whether undeclared keys are rejected.
func (d *Dict) IsStrict() bool {
	return d.strict
}

// Default builds a new map from the components' own defaults on every call.
// A Dict that allows null defaults to nil; a declared default is produced or
// deep-copied per call.
func (d *Dict) Default() any {
	if d.def.IsSet() {
		return d.def.fresh()
	}
	if d.allowNull {
		return nil
	}
	out := make(map[string]any, len(d.components))
	for _, component := range d.components {
		out[component.Name] = component.Type.Default()
	}
	return out
}

// Validate implements Descriptor.
func (d *Dict) Validate(value any, path string) error {
	if done, err := d.checkNull(value, path); done {
		return err
	}
	rv := indirect(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return mismatch(value, path, KindDict)
	}

	if d.strict {
		if key, ok := d.firstUndeclared(rv); ok {
			return &FieldError{Field: joinPath(path, key), Value: key, Err: ErrUnexpectedKey}
		}
	}

	keyType := rv.Type().Key()
	for _, component := range d.components {
		var item any
		if entry := rv.MapIndex(reflect.ValueOf(component.Name).Convert(keyType)); entry.IsValid() {
			item = entry.Interface()
		}
		if err := component.Type.Validate(item, joinPath(path, component.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dict) firstUndeclared(rv reflect.Value) (string, bool) {
	var extra []string
	for _, key := range rv.MapKeys() {
		name := key.String()
		if _, declared := d.index[name]; !declared {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return "", false
	}
	sort.Strings(extra)
	return extra[0], true
}

// Schema emits an object fragment. Hints override computed keys except
// "properties", which is always rebuilt from the components; components that
// emit no fragment are left out.
func (d *Dict) Schema() Fragment {
	out := d.fragment()
	if out == nil {
		out = Fragment{}
	}
	if len(d.components) == 0 {
		return out
	}
	properties := make(Fragment, len(d.components))
	for _, component := range d.components {
		if fragment := component.Type.Schema(); fragment != nil {
			properties[component.Name] = fragment
		}
	}
	out["properties"] = properties
	return out
}
