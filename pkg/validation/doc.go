// Package validation turns field validation failures into serialisable
// issues. Check validates every top-level field of a model independently, so a
// single pass reports one issue per failing field, each with a JSON pointer,
// a dotted field path and a stable code.
package validation
