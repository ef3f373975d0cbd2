package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldkit/pkg/fields"
)

var (
	// ErrUnknownField is returned when an instance is given a name the model
	// does not declare.
	ErrUnknownField = errors.New("model: unknown field")

	errModelNameMissing = errors.New("model: name is required")
)

// Field is a named descriptor declared on a model.
type Field struct {
	Name       string
	Descriptor fields.Descriptor
}

// Option configures a Definition.
type Option func(*Definition)

// WithField appends a field declaration. Declaration order is preserved.
func WithField(name string, descriptor fields.Descriptor) Option {
	return func(d *Definition) {
		d.declare(name, descriptor)
	}
}

// WithFields appends several field declarations in order.
func WithFields(declared ...Field) Option {
	return func(d *Definition) {
		for _, field := range declared {
			d.declare(field.Name, field.Descriptor)
		}
	}
}

// WithMapping sets model-level mapping entries. They are merged into the
// mapping document next to the derived "properties", which always win.
func WithMapping(mapping fields.Fragment) Option {
	return func(d *Definition) {
		d.mapping = mapping.Clone()
	}
}

// Definition is an immutable, ordered set of field declarations.
type Definition struct {
	name          string
	fields        []Field
	index         map[string]int
	mapping       fields.Fragment
	initialiseErr error
}

// New builds a Definition named name from the supplied options. Empty or
// duplicate field names and nil descriptors are rejected.
func New(name string, options ...Option) (*Definition, error) {
	d := &Definition{
		name:  strings.TrimSpace(name),
		index: make(map[string]int),
	}
	if d.name == "" {
		return nil, errModelNameMissing
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.initialiseErr != nil {
		return nil, d.initialiseErr
	}
	return d, nil
}

// MustNew is like New but panics on error. Useful for package-level model
// declarations and tests.
func MustNew(name string, options ...Option) *Definition {
	d, err := New(name, options...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Definition) declare(name string, descriptor fields.Descriptor) {
	if d.initialiseErr != nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		d.initialiseErr = fmt.Errorf("model %q: field %d has an empty name", d.name, len(d.fields))
	case descriptor == nil:
		d.initialiseErr = fmt.Errorf("model %q: field %q has no descriptor", d.name, trimmed)
	default:
		if _, exists := d.index[trimmed]; exists {
			d.initialiseErr = fmt.Errorf("model %q: duplicate field %q", d.name, trimmed)
			return
		}
		d.index[trimmed] = len(d.fields)
		d.fields = append(d.fields, Field{Name: trimmed, Descriptor: descriptor})
	}
}

// Name returns the model name.
func (d *Definition) Name() string {
	return d.name
}

// Fields returns the declarations in order.
func (d *Definition) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// Names returns the declared field names in order.
func (d *Definition) Names() []string {
	names := make([]string, 0, len(d.fields))
	for _, field := range d.fields {
		names = append(names, field.Name)
	}
	return names
}

// Field looks up the descriptor declared for name.
func (d *Definition) Field(name string) (fields.Descriptor, bool) {
	idx, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.fields[idx].Descriptor, true
}

// Defaults returns a new map holding every field's default. Composite
// defaults are fresh for each call.
func (d *Definition) Defaults() map[string]any {
	out := make(map[string]any, len(d.fields))
	for _, field := range d.fields {
		out[field.Name] = field.Descriptor.Default()
	}
	return out
}

// Validate checks values against every declared field in order and returns
// the first failure. Absent entries validate as null; undeclared entries are
// ignored.
func (d *Definition) Validate(values map[string]any) error {
	for _, field := range d.fields {
		if err := field.Descriptor.Validate(values[field.Name], field.Name); err != nil {
			return err
		}
	}
	return nil
}

// Schema returns {field name: fragment} for every field that emits one.
func (d *Definition) Schema() fields.Fragment {
	out := make(fields.Fragment, len(d.fields))
	for _, field := range d.fields {
		if fragment := field.Descriptor.Schema(); fragment != nil {
			out[field.Name] = fragment
		}
	}
	return out
}

// Mapping returns the index mapping document keyed by the model name: the
// model-level entries with "properties" set to Schema.
func (d *Definition) Mapping() fields.Fragment {
	body := d.mapping.Clone()
	body["properties"] = d.Schema()
	return fields.Fragment{d.name: body}
}
