package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-fieldkit/pkg/fields"
)

// DecodeJSON decodes a JSON object into values for d. Numbers are kept as
// json.Number and RFC 3339 strings held by timestamp fields (including dict
// components and list items, any-of lists included) become time.Time. Values that do not convert are
// left as decoded so Validate can report them.
func (d *Definition) DecodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("model: decode %s: %w", d.name, err)
	}
	for _, field := range d.fields {
		if value, ok := values[field.Name]; ok {
			values[field.Name] = coerce(field.Descriptor, value)
		}
	}
	return values, nil
}

// coerce returns value converted for d. Lists and dicts are copied, never
// modified in place. Any-of list items take the conversion of the first
// candidate that accepts the result.
func coerce(d fields.Descriptor, value any) any {
	switch typed := d.(type) {
	case *fields.Timestamp:
		if raw, ok := value.(string); ok {
			if t, err := time.Parse(time.RFC3339, raw); err == nil {
				return t
			}
		}
	case *fields.List:
		items, ok := value.([]any)
		if !ok {
			return value
		}
		out := make([]any, len(items))
		for idx, item := range items {
			if typed.IsAnyOf() {
				out[idx] = coerceVariant(typed.Candidates(), item)
				continue
			}
			out[idx] = coerce(typed.Item(), item)
		}
		return out
	case *fields.Dict:
		entries, ok := value.(map[string]any)
		if !ok {
			return value
		}
		out := make(map[string]any, len(entries))
		for key, entry := range entries {
			out[key] = entry
		}
		for _, component := range typed.Components() {
			if entry, ok := entries[component.Name]; ok {
				out[component.Name] = coerce(component.Type, entry)
			}
		}
		return out
	}
	return value
}

func coerceVariant(candidates []fields.Descriptor, item any) any {
	for _, candidate := range candidates {
		converted := coerce(candidate, item)
		if candidate.Validate(converted, "") == nil {
			return converted
		}
	}
	return item
}
