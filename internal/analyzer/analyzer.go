// Package analyzer infers type definitions from sample JSON payloads so that
// new response shapes can be registered without writing Go code.
package analyzer

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/chronoarc/marvel-go/internal/codec"
	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
	"github.com/chronoarc/marvel-go/internal/schema"
)

// DefaultRootName is the name of the root type if none is given.
const DefaultRootName = "Root"

// Analyzer walks a decoded payload and collects one TypeSpec per distinct
// object shape. An Analyzer is single use.
type Analyzer struct {
	// typeNames counts how often a base name was handed out
	typeNames map[string]int
	types     []schema.TypeSpec
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		typeNames: make(map[string]int),
	}
}

// Analyze infers the definitions of the root object and every nested object.
// The root must be an object or an array of objects; in the latter case the
// element shapes are merged into the root type. The root type comes first,
// nested types follow in discovery order.
func (a *Analyzer) Analyze(ir models.IntermediateRepresentation, rootName string) (*schema.DefinitionFile, error) {
	if rootName == "" {
		rootName = DefaultRootName
	}
	rootName = strcase.ToCamel(rootName)

	var root map[string]models.JSONValue
	if obj, ok := models.AsObject(ir.Root); ok {
		root = obj
	} else if arr, ok := models.AsArray(ir.Root); ok {
		objs, ok := objectsOf(arr)
		if !ok || len(objs) == 0 {
			return nil, errors.NewInputError("a root array must hold at least one object and nothing else", nil)
		}
		root = mergeObjects(objs)
	} else {
		return nil, errors.NewInputError(fmt.Sprintf("cannot infer types from a %T root, expected an object", ir.Root), nil)
	}

	// The root keeps its exact name.
	a.typeNames[rootName]++
	spec, err := a.analyzeObject(root, rootName)
	if err != nil {
		return nil, err
	}

	return &schema.DefinitionFile{
		Types: append([]schema.TypeSpec{spec}, a.types...),
	}, nil
}

// analyzeObject builds the spec of one object shape without registering it.
func (a *Analyzer) analyzeObject(obj map[string]models.JSONValue, typeName string) (schema.TypeSpec, error) {
	spec := schema.TypeSpec{
		Name:   typeName,
		Fields: make([]schema.FieldSpec, 0, len(obj)),
	}

	keys := slices.Sorted(maps.Keys(obj))
	used := make(map[string]bool, len(keys))
	for _, key := range keys {
		name := fieldName(key, used)

		token, elem, err := a.fieldType(obj[key], typeName+strcase.ToCamel(key))
		if err != nil {
			return schema.TypeSpec{}, fmt.Errorf("field '%s' of '%s': %w", key, typeName, err)
		}

		spec.Fields = append(spec.Fields, schema.FieldSpec{Name: name, Type: token})
		if name != key {
			if spec.AttributeMap == nil {
				spec.AttributeMap = make(map[string]string)
			}
			spec.AttributeMap[name] = key
		}
		if elem != "" {
			if spec.ComplexArrayTypes == nil {
				spec.ComplexArrayTypes = make(map[string]string)
			}
			spec.ComplexArrayTypes[name] = elem
		}
	}
	return spec, nil
}

// fieldType returns the type token of a value and, for arrays with a known
// element type, the element token.
func (a *Analyzer) fieldType(v models.JSONValue, suggested string) (string, string, error) {
	switch val := v.(type) {
	case nil:
		return "mixed", "", nil
	case bool:
		return "bool", "", nil
	case string:
		if _, err := codec.ParseDate(val); err == nil {
			return "datetime", "", nil
		}
		return "string", "", nil
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return "int", "", nil
		}
		return "float", "", nil
	}

	if obj, ok := models.AsObject(v); ok {
		name, err := a.objectType(obj, suggested)
		return name, "", err
	}

	if arr, ok := models.AsArray(v); ok {
		elem, err := a.elementType(arr, suggested)
		return "array", elem, err
	}

	return "", "", fmt.Errorf("unexpected json value type: %T", v)
}

// elementType infers the element token of an array. Empty, null-only and
// heterogeneous arrays stay untyped.
func (a *Analyzer) elementType(arr []models.JSONValue, suggested string) (string, error) {
	if len(arr) == 0 {
		return "", nil
	}

	name := singularize(suggested)
	if objs, ok := objectsOf(arr); ok {
		return a.objectType(mergeObjects(objs), name)
	}

	var elem string
	for _, item := range arr {
		if item == nil {
			continue
		}
		if _, ok := models.AsArray(item); ok {
			return "", nil
		}
		if _, ok := models.AsObject(item); ok {
			return "", nil
		}
		token, _, err := a.fieldType(item, name)
		if err != nil {
			return "", err
		}
		if elem != "" && elem != token {
			return "", nil
		}
		elem = token
	}
	return elem, nil
}

// objectType analyzes a nested object and returns the name of an equivalent
// known type, or registers a new one under a unique name.
func (a *Analyzer) objectType(obj map[string]models.JSONValue, suggested string) (string, error) {
	spec, err := a.analyzeObject(obj, suggested)
	if err != nil {
		return "", err
	}

	for _, existing := range a.types {
		if equivalent(spec, existing) {
			return existing.Name, nil
		}
	}

	spec.Name = a.uniqueName(suggested)
	a.types = append(a.types, spec)
	return spec.Name, nil
}

// uniqueName appends a counter to names that were already handed out.
func (a *Analyzer) uniqueName(base string) string {
	count := a.typeNames[base]
	a.typeNames[base] = count + 1
	if count == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, count)
}

// fieldName turns a wire key into an internal field name, the lower camel
// case form of the key, made unique within the object.
func fieldName(key string, used map[string]bool) string {
	name := strcase.ToLowerCamel(key)
	if name == "" {
		name = "field"
	}
	base := name
	for i := 2; used[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	used[name] = true
	return name
}

func equivalent(x, y schema.TypeSpec) bool {
	return slices.Equal(x.Fields, y.Fields) &&
		maps.Equal(x.AttributeMap, y.AttributeMap) &&
		maps.Equal(x.ComplexArrayTypes, y.ComplexArrayTypes)
}

func objectsOf(arr []models.JSONValue) ([]map[string]models.JSONValue, bool) {
	objs := make([]map[string]models.JSONValue, 0, len(arr))
	for _, item := range arr {
		obj, ok := models.AsObject(item)
		if !ok {
			return nil, false
		}
		objs = append(objs, obj)
	}
	return objs, len(objs) > 0
}

// mergeObjects unions the keys of several sample objects. For each key the
// first non-null sample wins, except that nested objects are merged in turn
// and arrays of objects are concatenated.
func mergeObjects(objs []map[string]models.JSONValue) map[string]models.JSONValue {
	merged := make(map[string]models.JSONValue)
	samples := make(map[string][]models.JSONValue)
	for _, obj := range objs {
		for k, v := range obj {
			if _, ok := samples[k]; !ok {
				samples[k] = nil
			}
			if v != nil {
				samples[k] = append(samples[k], v)
			}
		}
	}

	for key, values := range samples {
		if len(values) == 0 {
			merged[key] = nil
			continue
		}
		if nested, ok := objectsOf(values); ok {
			merged[key] = models.JSONObject(mergeObjects(nested))
			continue
		}
		var items models.JSONArray
		allArrays := true
		for _, v := range values {
			arr, ok := models.AsArray(v)
			if !ok {
				allArrays = false
				break
			}
			items = append(items, arr...)
		}
		if allArrays {
			merged[key] = items
			continue
		}
		merged[key] = values[0]
	}
	return merged
}

var knownSingulars = map[string]string{
	"series":    "series",
	"status":    "status",
	"species":   "species",
	"news":      "news",
	"children":  "child",
	"people":    "person",
	"data":      "data",
	"media":     "media",
	"addresses": "address",
}

// singularize turns the trailing word of a PascalCase name into its
// singular form, e.g. ComicPrices -> ComicPrice, ComicSeries -> ComicSeries.
func singularize(name string) string {
	start := strings.LastIndexFunc(name, func(r rune) bool { return r >= 'A' && r <= 'Z' })
	if start < 0 {
		start = 0
	}
	prefix, word := name[:start], name[start:]
	lower := strings.ToLower(word)

	if singular, ok := knownSingulars[lower]; ok {
		return prefix + strcase.ToCamel(singular)
	}

	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 3:
		return prefix + word[:len(word)-3] + "y"
	case strings.HasSuffix(lower, "ss"), strings.HasSuffix(lower, "us"), strings.HasSuffix(lower, "is"):
		return name
	case strings.HasSuffix(lower, "s") && len(lower) > 1:
		return prefix + word[:len(word)-1]
	}
	return name
}
