package openapi

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldkit/pkg/fields"
	"github.com/goliatone/go-fieldkit/pkg/model"
)

// Schema converts a descriptor into an OpenAPI schema. Unknown descriptor
// implementations yield an empty schema that accepts any value.
func Schema(d fields.Descriptor) *openapi3.Schema {
	if d == nil {
		return &openapi3.Schema{}
	}

	var schema *openapi3.Schema
	switch typed := d.(type) {
	case *fields.Text:
		schema = openapi3.NewStringSchema()
		if n, ok := typed.MaxLength(); ok {
			schema.WithMaxLength(int64(n))
		}
		if n, ok := typed.MinLength(); ok {
			schema.WithMinLength(int64(n))
		}
	case *fields.Boolean:
		schema = openapi3.NewBoolSchema()
	case *fields.Number:
		schema = openapi3.NewFloat64Schema()
		if n, ok := typed.Max(); ok {
			schema.WithMax(n)
		}
		if n, ok := typed.Min(); ok {
			schema.WithMin(n)
		}
	case *fields.Timestamp:
		schema = openapi3.NewDateTimeSchema()
	case *fields.Enum:
		schema = &openapi3.Schema{}
		schema.WithEnum(typed.Values()...)
	case *fields.List:
		schema = listSchema(typed)
	case *fields.Dict:
		schema = dictSchema(typed)
	default:
		schema = &openapi3.Schema{}
	}

	if d.AllowsNull() {
		schema.WithNullable()
	}
	if def := scalarDefault(d); def != nil {
		schema.WithDefault(def)
	}
	return schema
}

// ModelSchema converts a model definition into an object schema. Fields that
// do not allow null are required.
func ModelSchema(def *model.Definition) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	if def == nil {
		return schema
	}
	for _, field := range def.Fields() {
		schema.WithProperty(field.Name, Schema(field.Descriptor))
		if !field.Descriptor.AllowsNull() {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

func listSchema(list *fields.List) *openapi3.Schema {
	schema := openapi3.NewArraySchema()
	if !list.IsAnyOf() {
		return schema.WithItems(Schema(list.Item()))
	}
	candidates := list.Candidates()
	variants := make([]*openapi3.Schema, 0, len(candidates))
	for _, candidate := range candidates {
		variants = append(variants, Schema(candidate))
	}
	return schema.WithItems(openapi3.NewAnyOfSchema(variants...))
}

func dictSchema(dict *fields.Dict) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for _, component := range dict.Components() {
		schema.WithProperty(component.Name, Schema(component.Type))
		if !component.Type.AllowsNull() {
			schema.Required = append(schema.Required, component.Name)
		}
	}
	if dict.IsStrict() {
		schema.WithoutAdditionalProperties()
	}
	return schema
}

// scalarDefault returns the declared default of scalar descriptors in JSON
// form. Composite and deferred defaults are not emitted.
func scalarDefault(d fields.Descriptor) any {
	switch d.Kind() {
	case fields.KindList, fields.KindDict:
		return nil
	}
	switch value := d.Default().(type) {
	case nil:
		return nil
	case time.Time:
		return nil
	default:
		return value
	}
}
