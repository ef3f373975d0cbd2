package definition

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-fieldkit/pkg/fields"
)

// Builder constructs a descriptor from its declarative spec. reg is passed so
// composite builders can build their children.
type Builder func(spec FieldSpec, reg *Registry) (fields.Descriptor, error)

// Built-in producer names usable from defaultFunc.
const (
	ProducerNow = "now"
)

// Registry maps kind names to builders and producer names to deferred
// defaults. Names are case-insensitive. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	builders  map[string]Builder
	producers map[string]func() any
}

// NewRegistry constructs a registry with the built-in kinds and producers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{
		builders:  make(map[string]Builder),
		producers: make(map[string]func() any),
	}
	reg.registerBuiltins()
	return reg
}

func (r *Registry) registerBuiltins() {
	r.Register(string(fields.KindText), buildText)
	r.Register("string", buildText)
	r.Register(string(fields.KindBoolean), buildBoolean)
	r.Register("bool", buildBoolean)
	r.Register(string(fields.KindNumber), buildNumber)
	r.Register("num", buildNumber)
	r.Register("integer", buildNumber)
	r.Register(string(fields.KindTimestamp), buildTimestamp)
	r.Register("datetime", buildTimestamp)
	r.Register("date", buildTimestamp)
	r.Register(string(fields.KindEnum), buildEnum)
	r.Register(string(fields.KindList), buildList)
	r.Register(string(fields.KindDict), buildDict)
	r.Register("object", buildDict)

	r.RegisterProducer(ProducerNow, func() any {
		return time.Now().UTC()
	})
}

// Register adds or replaces the builder for kind. Empty names and nil builders
// are ignored.
func (r *Registry) Register(kind string, builder Builder) {
	if r == nil || builder == nil {
		return
	}
	name := normaliseName(kind)
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = builder
}

// RegisterProducer adds or replaces a named deferred default.
func (r *Registry) RegisterProducer(name string, fn func() any) {
	if r == nil || fn == nil {
		return
	}
	key := normaliseName(name)
	if key == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.producers[key] = fn
}

// Producer looks up a named deferred default.
func (r *Registry) Producer(name string) (func() any, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.producers[normaliseName(name)]
	return fn, ok
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.builders))
	for name := range r.builders {
		kinds = append(kinds, name)
	}
	sort.Strings(kinds)
	return kinds
}

// Build constructs the descriptor declared by spec.
func (r *Registry) Build(spec FieldSpec) (fields.Descriptor, error) {
	if r == nil {
		return nil, fmt.Errorf("definition: registry is nil")
	}
	kind := normaliseName(spec.Type)
	if kind == "" {
		return nil, fmt.Errorf("definition: field %q: type is required", spec.Name)
	}
	r.mu.RLock()
	builder, ok := r.builders[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("definition: field %q: unknown type %q", spec.Name, spec.Type)
	}
	descriptor, err := builder(spec, r)
	if err != nil {
		return nil, fmt.Errorf("definition: field %q: %w", spec.Name, err)
	}
	return descriptor, nil
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
