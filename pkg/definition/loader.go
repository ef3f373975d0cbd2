package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldkit/pkg/fields"
	"github.com/goliatone/go-fieldkit/pkg/model"
)

// Option customises loading.
type Option func(*loader)

type loader struct {
	registry *Registry
}

// WithRegistry builds descriptors through reg instead of a fresh default
// registry. Use it to expose custom kinds or producers to documents.
func WithRegistry(reg *Registry) Option {
	return func(l *loader) {
		if reg != nil {
			l.registry = reg
		}
	}
}

func newLoader(options []Option) *loader {
	l := &loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	if l.registry == nil {
		l.registry = NewRegistry()
	}
	return l
}

// Store holds loaded model definitions keyed by name.
type Store struct {
	models  map[string]*model.Definition
	sources map[string]string
}

func newStore() *Store {
	return &Store{
		models:  make(map[string]*model.Definition),
		sources: make(map[string]string),
	}
}

// LoadFS walks fsys and loads every JSON/YAML document it contains. A nil fsys
// or one without documents yields an empty store. Model names must be unique
// across all files.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}
	l := newLoader(options)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		return l.load(store, data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile loads a single document from disk.
func LoadFile(path string, options ...Option) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(data, path, options...)
}

// Parse loads a single JSON or YAML document. source names the document in
// error messages.
func Parse(data []byte, source string, options ...Option) (*Store, error) {
	store := newStore()
	if err := newLoader(options).load(store, data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// BuildModel builds a model definition from its declarative form.
func BuildModel(name string, spec ModelSpec, reg *Registry) (*model.Definition, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	opts := make([]model.Option, 0, len(spec.Fields)+1)
	if len(spec.Mapping) > 0 {
		opts = append(opts, model.WithMapping(fields.Fragment(spec.Mapping)))
	}
	for _, field := range spec.Fields {
		descriptor, err := reg.Build(field)
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithField(field.Name, descriptor))
	}
	return model.New(name, opts...)
}

func (l *loader) load(store *Store, data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(doc.Models))
	for name := range doc.Models {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return fmt.Errorf("definition: file %s defines an empty model name", source)
		}
		if prev, exists := store.sources[name]; exists {
			return fmt.Errorf("definition: duplicate model %q (file %s, first defined in %s)", name, source, prev)
		}
		def, err := BuildModel(name, doc.Models[raw], l.registry)
		if err != nil {
			return fmt.Errorf("definition: model %q (file %s): %w", name, source, err)
		}
		store.models[name] = def
		store.sources[name] = source
	}
	return nil
}

// Model returns the named definition.
func (s *Store) Model(name string) (*model.Definition, bool) {
	if s == nil {
		return nil, false
	}
	def, ok := s.models[strings.TrimSpace(name)]
	return def, ok
}

// Source reports which document declared the named model.
func (s *Store) Source(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	src, ok := s.sources[strings.TrimSpace(name)]
	return src, ok
}

// Names returns the loaded model names, sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Models returns the loaded definitions ordered by name.
func (s *Store) Models() []*model.Definition {
	names := s.Names()
	out := make([]*model.Definition, 0, len(names))
	for _, name := range names {
		out = append(out, s.models[name])
	}
	return out
}

// Empty reports whether the store holds any models.
func (s *Store) Empty() bool {
	return s == nil || len(s.models) == 0
}

func parseDocument(data []byte, source string) (documentFile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return documentFile{}, fmt.Errorf("definition: file %s is empty", source)
	}

	var doc documentFile
	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return documentFile{}, fmt.Errorf("definition: parse %s: %w", source, err)
		}
		return doc, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(trimmed))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return documentFile{}, fmt.Errorf("definition: parse %s: %w", source, err)
	}
	return doc, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
