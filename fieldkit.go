// Package fieldkit re-exports the common types of the field engine and offers
// one-call entry points over declarative model definitions.
package fieldkit

import (
	"fmt"
	"io/fs"

	"github.com/goliatone/go-fieldkit/pkg/definition"
	"github.com/goliatone/go-fieldkit/pkg/fields"
	"github.com/goliatone/go-fieldkit/pkg/model"
	"github.com/goliatone/go-fieldkit/pkg/validation"
)

// Descriptor aliases fields.Descriptor.
type Descriptor = fields.Descriptor

// Fragment aliases fields.Fragment, the JSON-like mapping fragment.
type Fragment = fields.Fragment

// Definition aliases model.Definition.
type Definition = model.Definition

// Store aliases definition.Store.
type Store = definition.Store

// Result aliases validation.Result.
type Result = validation.Result

// LoadModels loads every JSON/YAML definition document in fsys.
func LoadModels(fsys fs.FS, options ...definition.Option) (*Store, error) {
	return definition.LoadFS(fsys, options...)
}

// MappingFor returns the index mapping document of the named model.
func MappingFor(store *Store, name string) (Fragment, error) {
	def, err := lookup(store, name)
	if err != nil {
		return nil, err
	}
	return def.Mapping(), nil
}

// Check validates values against the named model, reporting one issue per
// failing field.
func Check(store *Store, name string, values map[string]any) (Result, error) {
	def, err := lookup(store, name)
	if err != nil {
		return Result{}, err
	}
	return validation.Check(def, values), nil
}

func lookup(store *Store, name string) (*Definition, error) {
	def, ok := store.Model(name)
	if !ok {
		return nil, fmt.Errorf("fieldkit: model %q not found", name)
	}
	return def, nil
}
