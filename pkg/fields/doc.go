// Package fields implements the field type descriptors used to declare the
// shape of a record. A descriptor carries a default value, a null policy,
// kind-specific bounds and optional schema hints, and exposes Validate and
// Schema.
//
// The set of kinds is closed: Text, Boolean, Number, Timestamp and Enum are
// leaves, List and Dict are composites that own their children and delegate
// validation and schema derivation recursively. Validation short-circuits on
// the first failure and reports the deepest failing path, e.g. "address.street"
// or "tags[2]". Failures are *FieldError values wrapping one of the Err*
// sentinels so callers can branch with errors.Is.
//
// Descriptors are immutable once constructed and safe for concurrent use.
// Scalar defaults (including deferred ones set with WithDefaultFunc) are
// resolved once at construction; composite defaults are rebuilt on every
// Default call so two instances never share a mutable container.
package fields
