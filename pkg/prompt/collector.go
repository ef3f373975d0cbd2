package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-fieldkit/pkg/fields"
	"github.com/goliatone/go-fieldkit/pkg/model"
)

const (
	noneOption = "(none)"
	dateLayout = "2006-01-02"
)

// Option configures a Collector.
type Option func(*Collector)

// WithDriver overrides the prompt driver. Nil drivers are ignored.
func WithDriver(driver Driver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithPageSize limits how many enum options are shown at once.
func WithPageSize(size int) Option {
	return func(c *Collector) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// Collector prompts for model values.
type Collector struct {
	driver   Driver
	pageSize int
}

// New constructs a Collector. Without WithDriver it prompts through survey.
func New(options ...Option) *Collector {
	c := &Collector{driver: SurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Collect prompts for every field of def and returns the answers. The result
// is validated against def before it is returned.
func (c *Collector) Collect(ctx context.Context, def *model.Definition) (map[string]any, error) {
	if def == nil {
		return nil, errors.New("prompt: model definition is required")
	}
	values := make(map[string]any, len(def.Fields()))
	for _, field := range def.Fields() {
		value, err := c.ask(ctx, field.Descriptor, field.Name)
		if err != nil {
			return nil, err
		}
		values[field.Name] = value
	}
	if err := def.Validate(values); err != nil {
		return nil, err
	}
	return values, nil
}

func (c *Collector) ask(ctx context.Context, d fields.Descriptor, path string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch typed := d.(type) {
	case *fields.Boolean:
		return c.askBoolean(ctx, typed, path)
	case *fields.Enum:
		return c.askEnum(ctx, typed, path)
	case *fields.List:
		return c.askList(ctx, typed, path)
	case *fields.Dict:
		return c.askDict(ctx, typed, path)
	default:
		return c.askScalar(ctx, d, path)
	}
}

func (c *Collector) askScalar(ctx context.Context, d fields.Descriptor, path string) (any, error) {
	cfg := InputConfig{
		Message: path,
		Default: formatDefault(d.Default()),
		Help:    help(d),
		Validator: func(raw string) error {
			_, err := parseAnswer(d, raw, path)
			return err
		},
	}
	answer, err := c.driver.Input(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return parseAnswer(d, answer, path)
}

func (c *Collector) askBoolean(ctx context.Context, d *fields.Boolean, path string) (any, error) {
	def, _ := d.Default().(bool)
	answer, err := c.driver.Confirm(ctx, ConfirmConfig{
		Message: path,
		Default: def,
		Help:    help(d),
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (c *Collector) askEnum(ctx context.Context, d *fields.Enum, path string) (any, error) {
	values := d.Values()
	options := make([]string, 0, len(values))
	defaultIndex := -1
	for idx, value := range values {
		options = append(options, fmt.Sprint(value))
		if d.Default() != nil && fmt.Sprint(d.Default()) == options[idx] {
			defaultIndex = idx
		}
	}
	none := ""
	if d.AllowsNull() {
		none = noneOption
	}
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:      path,
		Options:      options,
		NoneOption:   none,
		DefaultIndex: defaultIndex,
		Help:         help(d),
		PageSize:     c.pageSize,
	})
	if err != nil {
		return nil, err
	}
	if idx == NoneIndex && none != "" {
		return nil, nil
	}
	if idx < 0 || idx >= len(values) {
		return nil, fmt.Errorf("prompt: %s: selection %d out of range", path, idx)
	}
	return values[idx], nil
}

func (c *Collector) askList(ctx context.Context, d *fields.List, path string) (any, error) {
	for _, candidate := range listCandidates(d) {
		switch candidate.Kind() {
		case fields.KindList, fields.KindDict:
			return nil, fmt.Errorf("%w: %s holds %s items", ErrUnsupported, path, candidate.Kind())
		}
	}
	cfg := InputConfig{
		Message: path,
		Default: formatList(d.Default()),
		Help:    "comma separated; " + help(d),
		Validator: func(raw string) error {
			_, err := parseList(d, raw, path)
			return err
		},
	}
	answer, err := c.driver.Input(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return parseList(d, answer, path)
}

func (c *Collector) askDict(ctx context.Context, d *fields.Dict, path string) (any, error) {
	if d.AllowsNull() {
		provide, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Provide " + path + "?"})
		if err != nil {
			return nil, err
		}
		if !provide {
			return nil, nil
		}
	}
	out := make(map[string]any, len(d.Components()))
	for _, component := range d.Components() {
		value, err := c.ask(ctx, component.Type, path+"."+component.Name)
		if err != nil {
			return nil, err
		}
		out[component.Name] = value
	}
	return out, nil
}

// parseAnswer converts a raw answer into a value of d's kind and validates it.
// Empty answers are nil for null-allowing fields.
func parseAnswer(d fields.Descriptor, raw, path string) (any, error) {
	value, err := convert(d.Kind(), raw, d.AllowsNull())
	if err != nil {
		return nil, fmt.Errorf("prompt: %s: %w", path, err)
	}
	if err := d.Validate(value, path); err != nil {
		return nil, err
	}
	return value, nil
}

func convert(kind fields.Kind, raw string, allowNull bool) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" && allowNull {
		return nil, nil
	}
	switch kind {
	case fields.KindText:
		return raw, nil
	case fields.KindNumber:
		if trimmed == "" {
			return nil, errors.New("a number is required")
		}
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n, nil
		}
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return n, nil
	case fields.KindTimestamp:
		if trimmed == "" {
			return nil, errors.New("a timestamp is required")
		}
		if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return t, nil
		}
		t, err := time.Parse(dateLayout, trimmed)
		if err != nil {
			return nil, fmt.Errorf("%q is not an RFC 3339 timestamp or date", raw)
		}
		return t, nil
	case fields.KindBoolean:
		b, err := strconv.ParseBool(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean", raw)
		}
		return b, nil
	default:
		return raw, nil
	}
}

func parseList(d *fields.List, raw, path string) (any, error) {
	if strings.TrimSpace(raw) == "" && d.AllowsNull() {
		return nil, nil
	}
	out := []any{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		item, err := parseItem(d, part, fmt.Sprintf("%s[%d]", path, len(out)))
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := d.Validate(out, path); err != nil {
		return nil, err
	}
	return out, nil
}

func parseItem(d *fields.List, raw, path string) (any, error) {
	var firstErr error
	for _, candidate := range listCandidates(d) {
		if enum, ok := candidate.(*fields.Enum); ok {
			if value, found := enumValue(enum, raw); found {
				return value, nil
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("prompt: %s: %q is not an allowed value", path, raw)
			}
			continue
		}
		value, err := parseAnswer(candidate, raw, path)
		if err == nil {
			return value, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func listCandidates(d *fields.List) []fields.Descriptor {
	if d.IsAnyOf() {
		return d.Candidates()
	}
	return []fields.Descriptor{d.Item()}
}

func enumValue(d *fields.Enum, raw string) (any, bool) {
	for _, value := range d.Values() {
		if fmt.Sprint(value) == raw {
			return value, true
		}
	}
	return nil, false
}

func formatDefault(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func formatList(value any) string {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, formatDefault(item))
	}
	return strings.Join(parts, ", ")
}

func help(d fields.Descriptor) string {
	if d.AllowsNull() {
		return string(d.Kind()) + " (optional)"
	}
	return string(d.Kind())
}
