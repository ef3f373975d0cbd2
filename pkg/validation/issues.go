package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldkit/pkg/fields"
	"github.com/goliatone/go-fieldkit/pkg/model"
)

// Issue codes, one per validation failure kind.
const (
	CodeNullValue         = "null_value"
	CodeTypeMismatch      = "type_mismatch"
	CodeValueTooLarge     = "value_too_large"
	CodeValueTooSmall     = "value_too_small"
	CodeNotEnumMember     = "not_enum_member"
	CodeNotASequence      = "not_a_sequence"
	CodeNoMatchingVariant = "no_matching_variant"
	CodeUnexpectedKey     = "unexpected_key"
	CodeUnsafeMarkup      = "unsafe_markup"
	CodeInvalid           = "invalid"
)

var codes = []struct {
	err  error
	code string
}{
	{fields.ErrNullValue, CodeNullValue},
	{fields.ErrTypeMismatch, CodeTypeMismatch},
	{fields.ErrValueTooLarge, CodeValueTooLarge},
	{fields.ErrValueTooSmall, CodeValueTooSmall},
	{fields.ErrNotEnumMember, CodeNotEnumMember},
	{fields.ErrNotASequence, CodeNotASequence},
	{fields.ErrNoMatchingVariant, CodeNoMatchingVariant},
	{fields.ErrUnexpectedKey, CodeUnexpectedKey},
	{fields.ErrUnsafeMarkup, CodeUnsafeMarkup},
}

// Issue represents a validation error with location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result captures the outcome of validating a set of field values.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err returns nil for a valid result and an error joining every issue
// otherwise.
func (r Result) Err() error {
	if r.Valid || len(r.Issues) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Issues))
	for _, issue := range r.Issues {
		errs = append(errs, errors.New(issue.Field+": "+issue.Message))
	}
	return errors.Join(errs...)
}

// Check validates values against every field of def. Unlike
// Definition.Validate it does not stop at the first failing field; within a
// field the first failure wins.
func Check(def *model.Definition, values map[string]any) Result {
	result := Result{Valid: true}
	if def == nil {
		return result
	}
	for _, field := range def.Fields() {
		if err := field.Descriptor.Validate(values[field.Name], field.Name); err != nil {
			result.Valid = false
			result.Issues = append(result.Issues, IssueFromError(err))
		}
	}
	return result
}

// CheckInstance validates the current values of inst.
func CheckInstance(inst *model.Instance) Result {
	if inst == nil {
		return Result{Valid: true}
	}
	return Check(inst.Definition(), inst.Values())
}

// IssueFromError converts err into an Issue. Errors that are not field errors
// become issues with CodeInvalid and no location.
func IssueFromError(err error) Issue {
	if err == nil {
		return Issue{Code: CodeInvalid, Message: "unknown error"}
	}
	fieldErr, ok := fields.AsFieldError(err)
	if !ok {
		return Issue{Code: CodeInvalid, Message: strings.TrimSpace(err.Error())}
	}
	return Issue{
		Path:    PointerFromField(fieldErr.Field),
		Field:   fieldErr.Field,
		Code:    Code(err),
		Message: message(fieldErr),
	}
}

// Code returns the issue code matching the failure kind wrapped by err.
func Code(err error) string {
	for _, entry := range codes {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return CodeInvalid
}

func message(fieldErr *fields.FieldError) string {
	msg := strings.TrimPrefix(fieldErr.Error(), "fields: ")
	return strings.TrimSpace(msg)
}

// PointerFromField converts a dotted field path such as "address.tags[1]" into
// a JSON pointer ("/address/tags/1").
func PointerFromField(field string) string {
	segments := fieldSegments(field)
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, segment := range segments {
		segment = strings.ReplaceAll(segment, "~", "~0")
		segment = strings.ReplaceAll(segment, "/", "~1")
		b.WriteByte('/')
		b.WriteString(segment)
	}
	return b.String()
}

// FieldFromPointer converts a JSON pointer back into a dotted field path,
// rendering numeric segments as indexes.
func FieldFromPointer(pointer string) string {
	trimmed := strings.TrimSpace(pointer)
	trimmed = strings.TrimPrefix(trimmed, "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}
	return FieldFromSegments(strings.Split(trimmed, "/"))
}

// FieldFromSegments joins unescaped pointer segments into a dotted field path.
func FieldFromSegments(segments []string) string {
	var b strings.Builder
	for _, raw := range segments {
		segment := strings.ReplaceAll(raw, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		if segment == "" {
			continue
		}
		if isNumeric(segment) && b.Len() > 0 {
			b.WriteString("[" + segment + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(segment)
	}
	return b.String()
}

func fieldSegments(field string) []string {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(trimmed, ".") {
		for part != "" {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				out = append(out, part)
				break
			}
			if open > 0 {
				out = append(out, part[:open])
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				out = append(out, part[open:])
				break
			}
			out = append(out, part[open+1:open+end])
			part = part[open+end+1:]
		}
	}
	return out
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	_, err := strconv.Atoi(value)
	return err == nil && !strings.HasPrefix(value, "+") && !strings.HasPrefix(value, "-")
}
