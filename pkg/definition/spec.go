package definition

// FieldSpec is the declarative form of a field descriptor. Max and Min are
// interpreted per kind: rune length for text, numeric value for number and an
// RFC 3339 instant (or YYYY-MM-DD date) for timestamp.
type FieldSpec struct {
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string         `json:"type" yaml:"type"`
	Null        bool           `json:"null,omitempty" yaml:"null,omitempty"`
	Default     any            `json:"default,omitempty" yaml:"default,omitempty"`
	DefaultFunc string         `json:"defaultFunc,omitempty" yaml:"defaultFunc,omitempty"`
	Max         any            `json:"max,omitempty" yaml:"max,omitempty"`
	Min         any            `json:"min,omitempty" yaml:"min,omitempty"`
	Mapping     map[string]any `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Values      []any          `json:"values,omitempty" yaml:"values,omitempty"`
	Items       *FieldSpec     `json:"items,omitempty" yaml:"items,omitempty"`
	AnyOf       []FieldSpec    `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	Components  []FieldSpec    `json:"components,omitempty" yaml:"components,omitempty"`
	Strict      bool           `json:"strict,omitempty" yaml:"strict,omitempty"`
	Plain       bool           `json:"plain,omitempty" yaml:"plain,omitempty"`
}

// ModelSpec declares one model: optional model-level mapping entries and the
// ordered field list.
type ModelSpec struct {
	Mapping map[string]any `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Fields  []FieldSpec    `json:"fields" yaml:"fields"`
}

type documentFile struct {
	Models map[string]ModelSpec `json:"models" yaml:"models"`
}
