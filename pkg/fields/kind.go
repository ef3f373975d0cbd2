package fields

// Kind tags a descriptor with its place in the closed set of field kinds.
type Kind string

const (
	KindText      Kind = "text"
	KindBoolean   Kind = "boolean"
	KindNumber    Kind = "number"
	KindTimestamp Kind = "timestamp"
	KindEnum      Kind = "enum"
	KindList      Kind = "list"
	KindDict      Kind = "dict"
)

// Schema type identifiers written to the "type" key of a fragment.
const (
	SchemaTypeString  = "string"
	SchemaTypeBoolean = "boolean"
	SchemaTypeInteger = "integer"
	SchemaTypeDate    = "date"
	SchemaTypeObject  = "object"
)

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindText, KindBoolean, KindNumber, KindTimestamp, KindEnum, KindList, KindDict}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindBoolean, KindNumber, KindTimestamp, KindEnum, KindList, KindDict:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// SchemaType returns the mapping type emitted for the kind. Enum and List have
// no type of their own and return an empty string.
func (k Kind) SchemaType() string {
	switch k {
	case KindText:
		return SchemaTypeString
	case KindBoolean:
		return SchemaTypeBoolean
	case KindNumber:
		return SchemaTypeInteger
	case KindTimestamp:
		return SchemaTypeDate
	case KindDict:
		return SchemaTypeObject
	default:
		return ""
	}
}
