package model

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// Instance holds the field values of one record built from a Definition.
type Instance struct {
	def    *Definition
	values map[string]any
}

// NewInstance materializes every field default and then applies values.
// Names the model does not declare are rejected with ErrUnknownField.
func (d *Definition) NewInstance(values map[string]any) (*Instance, error) {
	inst := &Instance{def: d, values: d.Defaults()}
	for name, value := range values {
		if err := inst.Set(name, value); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// Definition returns the model the instance was built from.
func (i *Instance) Definition() *Definition {
	return i.def
}

// Get returns the current value of a declared field.
func (i *Instance) Get(name string) (any, bool) {
	if _, ok := i.def.index[name]; !ok {
		return nil, false
	}
	return i.values[name], true
}

// Set assigns a declared field. Values are not validated until Validate.
func (i *Instance) Set(name string, value any) error {
	if _, ok := i.def.index[name]; !ok {
		return fmt.Errorf("%w: %q on model %q", ErrUnknownField, name, i.def.name)
	}
	i.values[name] = value
	return nil
}

// Values returns a deep copy of the current field values.
func (i *Instance) Values() map[string]any {
	out, _ := deepcopy.Copy(i.values).(map[string]any)
	if out == nil {
		out = make(map[string]any, len(i.values))
	}
	return out
}

// Validate checks the current values against the model.
func (i *Instance) Validate() error {
	return i.def.Validate(i.values)
}
