// Package openapi exports model definitions as OpenAPI 3 component schemas
// using kin-openapi, and validates JSON-shaped instances against them.
//
// The exported schemas describe the value shape only. Bounds are emitted as
// plain minimum/minLength constraints, so a zero value that passes descriptor
// validation (lower bounds apply to truthy values only) can still fail
// ValidateValue when a lower bound is declared.
package openapi
