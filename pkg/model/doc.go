// Package model collects named field descriptors into an ordered model
// definition. A Definition builds instances with materialized defaults,
// validates field values against the declared descriptors and derives the
// model's mapping document, a JSON-like description intended for a document
// index:
//
//	user, err := model.New("user",
//		model.WithField("username", fields.NewText(fields.Hints(fields.Fragment{"index": "not_analyzed"}))),
//		model.WithField("active", fields.NewBoolean(fields.WithDefault(true))),
//	)
//
// Validation walks fields in declaration order and stops at the first failure;
// errors carry the field-qualified path of the offending value. Use the
// validation package to collect one issue per failing field instead.
package model
