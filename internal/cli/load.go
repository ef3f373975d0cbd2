package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldkit/pkg/definition"
	"github.com/goliatone/go-fieldkit/pkg/model"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func (a *app) loadStore() (*definition.Store, error) {
	path := a.v.GetString(keyFile)
	if path == "" {
		return nil, errors.New("--file is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	var store *definition.Store
	if info.IsDir() {
		store, err = definition.LoadFS(os.DirFS(path))
	} else {
		store, err = definition.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("definitions loaded", "path", path, "models", store.Names())
	return store, nil
}

func (a *app) selectModels(store *definition.Store) ([]*model.Definition, error) {
	name := a.v.GetString(keyModel)
	if name == "" {
		if store.Empty() {
			return nil, errors.New("no models defined")
		}
		return store.Models(), nil
	}
	def, ok := store.Model(name)
	if !ok {
		return nil, fmt.Errorf("model %q not found (have %v)", name, store.Names())
	}
	return []*model.Definition{def}, nil
}

func (a *app) requireModel(store *definition.Store) (*model.Definition, error) {
	if a.v.GetString(keyModel) == "" {
		return nil, errors.New("--model is required")
	}
	defs, err := a.selectModels(store)
	if err != nil {
		return nil, err
	}
	return defs[0], nil
}

func write(w io.Writer, format string, value any) error {
	switch format {
	case "", formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML:
		generic, err := toGeneric(value)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

// toGeneric round-trips value through encoding/json so types with custom JSON
// marshalers render the same way in YAML.
func toGeneric(value any) (any, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
