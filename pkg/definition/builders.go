package definition

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-fieldkit/pkg/fields"
)

const dateLayout = "2006-01-02"

func commonOptions(spec FieldSpec, reg *Registry) ([]fields.Option, error) {
	var options []fields.Option
	if spec.Null {
		options = append(options, fields.AllowNull())
	}
	if len(spec.Mapping) > 0 {
		options = append(options, fields.Hints(fields.Fragment(spec.Mapping)))
	}
	name := strings.TrimSpace(spec.DefaultFunc)
	if name != "" {
		if spec.Default != nil {
			return nil, errors.New("default and defaultFunc are mutually exclusive")
		}
		producer, ok := reg.Producer(name)
		if !ok {
			return nil, fmt.Errorf("unknown defaultFunc %q", spec.DefaultFunc)
		}
		options = append(options, fields.WithDefaultFunc(producer))
	} else if spec.Default != nil {
		options = append(options, fields.WithDefault(spec.Default))
	}
	return options, nil
}

func buildText(spec FieldSpec, reg *Registry) (fields.Descriptor, error) {
	options, err := commonOptions(spec, reg)
	if err != nil {
		return nil, err
	}
	if spec.Max != nil {
		n, err := toInt(spec.Max)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		options = append(options, fields.MaxLength(n))
	}
	if spec.Min != nil {
		n, err := toInt(spec.Min)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		options = append(options, fields.MinLength(n))
	}
	if spec.Plain {
		options = append(options, fields.PlainText())
	}
	return fields.NewText(options...), nil
}

func buildBoolean(spec FieldSpec, reg *Registry) (fields.Descriptor, error) {
	options, err := commonOptions(spec, reg)
	if err != nil {
		return nil, err
	}
	return fields.NewBoolean(options...), nil
}

func buildNumber(spec FieldSpec, reg *Registry) (fields.Descriptor, error) {
	options, err := commonOptions(spec, reg)
	if err != nil {
		return nil, err
	}
	if spec.Max != nil {
		n, err := toFloat(spec.Max)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		options = append(options, fields.Max(n))
	}
	if spec.Min != nil {
		n, err := toFloat(spec.Min)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		options = append(options, fields.Min(n))
	}
	return fields.NewNumber(options...), nil
}

func buildTimestamp(spec FieldSpec, reg *Registry) (fields.Descriptor, error) {
	if raw, ok := spec.Default.(string); ok {
		t, err := toTime(raw)
		if err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		spec.Default = t
	}
	options, err := commonOptions(spec, reg)
	if err != nil {
		return nil, err
	}
	if spec.Max != nil {
		t, err := toTime(spec.Max)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		options = append(options, fields.Latest(t))
	}
	if spec.Min != nil {
		t, err := toTime(spec.Min)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		options = append(options, fields.Earliest(t))
	}
	return fields.NewTimestamp(options...), nil
}

func buildEnum(spec FieldSpec, reg *Registry) (fields.Descriptor, error) {
	options, err := commonOptions(spec, reg)
	if err != nil {
		return nil, err
	}
	return fields.NewEnum(spec.Values, options...)
}

func buildList(spec FieldSpec, reg *Registry) (fields.Descriptor, error) {
	options, err := commonOptions(spec, reg)
	if err != nil {
		return nil, err
	}
	switch {
	case spec.Items != nil && len(spec.AnyOf) > 0:
		return nil, errors.New("items and anyOf are mutually exclusive")
	case spec.Items != nil:
		item, err := reg.Build(*spec.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return fields.NewList(item, options...)
	case len(spec.AnyOf) > 0:
		candidates := make([]fields.Descriptor, 0, len(spec.AnyOf))
		for idx, candidate := range spec.AnyOf {
			built, err := reg.Build(candidate)
			if err != nil {
				return nil, fmt.Errorf("anyOf[%d]: %w", idx, err)
			}
			candidates = append(candidates, built)
		}
		return fields.NewAnyOf(candidates, options...)
	default:
		return nil, errors.New("list requires items or anyOf")
	}
}

func buildDict(spec FieldSpec, reg *Registry) (fields.Descriptor, error) {
	options, err := commonOptions(spec, reg)
	if err != nil {
		return nil, err
	}
	if spec.Strict {
		options = append(options, fields.Strict())
	}
	components := make([]fields.Component, 0, len(spec.Components))
	for _, child := range spec.Components {
		built, err := reg.Build(child)
		if err != nil {
			return nil, err
		}
		components = append(components, fields.Component{Name: child.Name, Type: built})
	}
	return fields.NewDict(components, options...)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}

func toInt(value any) (int, error) {
	f, err := toFloat(value)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < 0 {
		return 0, fmt.Errorf("expected a non-negative integer, got %v", value)
	}
	return int(f), nil
}

func toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		raw := strings.TrimSpace(v)
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		if t, err := time.Parse(dateLayout, raw); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("expected an RFC 3339 timestamp or date, got %q", v)
	default:
		return time.Time{}, fmt.Errorf("expected a timestamp, got %T", value)
	}
}
