package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldkit/pkg/model"
)

// Version is the OpenAPI version emitted by Document.
const Version = "3.0.3"

// Document builds a components-only OpenAPI document holding one schema per
// model definition, keyed by model name. The result is loaded and validated
// with kin-openapi before it is returned.
func Document(ctx context.Context, title, version string, defs ...*model.Definition) (*openapi3.T, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("openapi: title is required")
	}
	if strings.TrimSpace(version) == "" {
		return nil, errors.New("openapi: version is required")
	}

	schemas := make(map[string]*openapi3.Schema, len(defs))
	for _, def := range defs {
		if def == nil {
			continue
		}
		if _, exists := schemas[def.Name()]; exists {
			return nil, fmt.Errorf("openapi: duplicate model %q", def.Name())
		}
		schemas[def.Name()] = ModelSchema(def)
	}

	payload, err := json.Marshal(map[string]any{
		"openapi": Version,
		"info": map[string]any{
			"title":   title,
			"version": version,
		},
		"paths": map[string]any{},
		"components": map[string]any{
			"schemas": schemas,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal document: %w", err)
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(payload)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableSchemaDefaultsValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	return doc, nil
}
