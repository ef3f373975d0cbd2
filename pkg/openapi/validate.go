package openapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldkit/pkg/model"
	"github.com/goliatone/go-fieldkit/pkg/validation"
)

var schemaFieldCodes = map[string]string{
	"type":                 validation.CodeTypeMismatch,
	"nullable":             validation.CodeNullValue,
	"required":             validation.CodeNullValue,
	"maxLength":            validation.CodeValueTooLarge,
	"maximum":              validation.CodeValueTooLarge,
	"minLength":            validation.CodeValueTooSmall,
	"minimum":              validation.CodeValueTooSmall,
	"enum":                 validation.CodeNotEnumMember,
	"anyOf":                validation.CodeNoMatchingVariant,
	"additionalProperties": validation.CodeUnexpectedKey,
}

// ValidateValue checks value against the model's OpenAPI schema and returns
// every violation kin-openapi reports. value may hold Go values; it is
// normalised through encoding/json first.
func ValidateValue(def *model.Definition, value any) error {
	if def == nil {
		return errors.New("openapi: model definition is required")
	}
	normalised, err := normalise(value)
	if err != nil {
		return err
	}
	return ModelSchema(def).VisitJSON(normalised, openapi3.MultiErrors())
}

// Issues converts the error returned by ValidateValue into validation issues
// addressed with dotted field paths.
func Issues(err error) []validation.Issue {
	if err == nil {
		return nil
	}
	var out []validation.Issue
	collect(err, &out)
	return out
}

func collect(err error, out *[]validation.Issue) {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, inner := range multi {
			collect(inner, out)
		}
		return
	}
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		*out = append(*out, validation.Issue{Code: validation.CodeInvalid, Message: err.Error()})
		return
	}
	segments := schemaErr.JSONPointer()
	field := validation.FieldFromSegments(segments)
	code, ok := schemaFieldCodes[schemaErr.SchemaField]
	if !ok {
		code = validation.CodeInvalid
	}
	*out = append(*out, validation.Issue{
		Path:    validation.PointerFromField(field),
		Field:   field,
		Code:    code,
		Message: schemaErr.Reason,
	})
}

func normalise(value any) (any, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal value: %w", err)
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("openapi: unmarshal value: %w", err)
	}
	return out, nil
}
