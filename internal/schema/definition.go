package schema

import (
	"slices"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
)

// Definition describes a typed object: its ordered fields, a constructor and
// the static side tables consulted while resolving field types.
//
// A nil Fields slice means the type declares no constructor parameters and
// cannot be deserialized.
type Definition struct {
	Name   string
	Fields []Field
	New    func() Object

	// AttributeMap maps internal field names to wire names.
	AttributeMap map[string]string
	// ComplexArrayTypes maps "array" fields to their element type.
	ComplexArrayTypes map[string]string
	// EnumTypes maps "string" fields to an enumeration name.
	EnumTypes map[string]string
}

// WireName returns the name a field is serialized under.
func (d Definition) WireName(field string) string {
	if wire, ok := d.AttributeMap[field]; ok {
		return wire
	}
	return field
}

// Enum is a closed set of string values.
type Enum struct {
	Name   string
	Values []string
}

// Has reports whether value is one of the enumeration's cases.
func (e Enum) Has(value string) bool {
	return slices.Contains(e.Values, value)
}

// Resolve computes the semantic type of every declared field of def, in
// declaration order. It only consults def's static metadata; object type
// names are checked against a registry when values are coerced.
func Resolve(def Definition) ([]models.TypeInfo, error) {
	if def.Fields == nil {
		return nil, errors.NewMissingConstructorError(def.Name)
	}

	types := make([]models.TypeInfo, len(def.Fields))
	for i, f := range def.Fields {
		types[i] = resolveField(def, f)
	}
	return types, nil
}

func resolveField(def Definition, f Field) models.TypeInfo {
	switch f.Type {
	case "array":
		elem := f.elem
		if mapped, ok := def.ComplexArrayTypes[f.Name]; ok {
			elem = mapped
		}
		if elem == "" {
			return models.TypeInfo{Kind: models.UntypedArray}
		}
		return models.ArrayOf(ResolveToken(elem))
	case "string":
		enum := f.enum
		if mapped, ok := def.EnumTypes[f.Name]; ok {
			enum = mapped
		}
		if enum == "" {
			return models.TypeInfo{Kind: models.String}
		}
		return models.TypeInfo{Kind: models.Enum, Name: enum}
	default:
		return ResolveToken(f.Type)
	}
}

// ResolveToken maps a nominal type token with no side-table context to its
// descriptor. Unknown tokens become named object references.
func ResolveToken(token string) models.TypeInfo {
	switch token {
	case "int":
		return models.TypeInfo{Kind: models.Int}
	case "float":
		return models.TypeInfo{Kind: models.Float}
	case "bool":
		return models.TypeInfo{Kind: models.Bool}
	case "string":
		return models.TypeInfo{Kind: models.String}
	case "date", "datetime":
		return models.TypeInfo{Kind: models.Date}
	case "array":
		return models.TypeInfo{Kind: models.UntypedArray}
	case "mixed":
		return models.TypeInfo{Kind: models.Mixed}
	case "null":
		return models.TypeInfo{Kind: models.Null}
	default:
		return models.TypeInfo{Kind: models.Object, Name: token}
	}
}
