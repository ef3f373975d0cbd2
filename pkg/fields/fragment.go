package fields

import "github.com/mohae/deepcopy"

// Fragment is the JSON-like schema description derived from a descriptor. It
// holds at least a "type" key unless the descriptor has no generic type.
type Fragment map[string]any

// Clone returns a deep copy of f. A nil or empty fragment clones to an empty,
// non-nil fragment.
func (f Fragment) Clone() Fragment {
	if len(f) == 0 {
		return Fragment{}
	}
	cloned, ok := deepcopy.Copy(f).(Fragment)
	if !ok || cloned == nil {
		return Fragment{}
	}
	return cloned
}

// Type returns the "type" entry when it is a string.
func (f Fragment) Type() string {
	if f == nil {
		return ""
	}
	typ, _ := f["type"].(string)
	return typ
}

// Properties returns the nested "properties" fragment of an object schema.
func (f Fragment) Properties() Fragment {
	if f == nil {
		return nil
	}
	switch props := f["properties"].(type) {
	case Fragment:
		return props
	case map[string]any:
		return Fragment(props)
	default:
		return nil
	}
}

// merge copies every key of overrides onto f.
func (f Fragment) merge(overrides Fragment) Fragment {
	if f == nil {
		f = Fragment{}
	}
	for key, value := range overrides.Clone() {
		f[key] = value
	}
	return f
}
