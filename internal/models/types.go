package models

// Kind is the resolved semantic type of a field.
type Kind int

const (
	Invalid Kind = iota
	Int
	Float
	Bool
	String
	Date
	Enum
	Object
	Array
	UntypedArray
	Mixed
	Null
)

var kindNames = map[Kind]string{
	Invalid:      "invalid",
	Int:          "int",
	Float:        "float",
	Bool:         "bool",
	String:       "string",
	Date:         "date",
	Enum:         "enum",
	Object:       "object",
	Array:        "array",
	UntypedArray: "array",
	Mixed:        "mixed",
	Null:         "null",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsScalar reports whether the kind converts through plain scalar coercion.
func (k Kind) IsScalar() bool {
	switch k {
	case Int, Float, Bool, String:
		return true
	}
	return false
}

// TypeInfo describes the resolved type of one field.
// Name carries the enum or object type name for Enum and Object kinds.
// Elem is set only for Array.
type TypeInfo struct {
	Kind Kind
	Name string
	Elem *TypeInfo
}

// ArrayOf wraps elem in a typed array descriptor.
func ArrayOf(elem TypeInfo) TypeInfo {
	return TypeInfo{Kind: Array, Elem: &elem}
}

// String renders the descriptor the way the CLI prints it, e.g. "array<Url>"
// or "enum<ComicFormat>".
func (t TypeInfo) String() string {
	switch t.Kind {
	case Array:
		if t.Elem == nil {
			return "array<?>"
		}
		return "array<" + t.Elem.String() + ">"
	case Enum:
		return "enum<" + t.Name + ">"
	case Object:
		return t.Name
	default:
		return t.Kind.String()
	}
}

// Equal compares two descriptors, following Elem for arrays.
func (t TypeInfo) Equal(other TypeInfo) bool {
	if t.Kind != other.Kind || t.Name != other.Name {
		return false
	}
	if t.Kind != Array {
		return true
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equal(*other.Elem)
}
