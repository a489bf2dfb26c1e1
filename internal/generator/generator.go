// Package generator renders YAML type definitions as Go source: one struct per
// type, one string type per enumeration, and the definitions that register
// them with a marvel.Registry.
package generator

import (
	"bytes"
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/schema"
)

const marvelImport = "github.com/chronoarc/marvel-go/marvel"

var initialisms = map[string]bool{
	"API": true, "EAN": true, "HTML": true, "ID": true, "ISBN": true, "ISSN": true,
	"JSON": true, "UPC": true, "URI": true, "URL": true,
}

// Generator is responsible for generating Go source from type definitions
type Generator struct{}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// goField is one struct field together with the schema builder that binds it.
type goField struct {
	wire    string
	name    string
	goType  string
	builder string
	rawTok  string
}

type goType struct {
	spec   schema.TypeSpec
	name   string
	fields []goField
	// complex array entries kept for untyped array fields
	arrays map[string]string
}

type goEnum struct {
	spec   schema.EnumSpec
	name   string
	consts []string
}

// Generate renders file as the source of package packageName. The result is
// not gofmt'ed. Every object token and enum reference must be declared in
// file itself.
func (g *Generator) Generate(file *schema.DefinitionFile, packageName string) (string, error) {
	if file == nil || len(file.Types)+len(file.Enums) == 0 {
		return "", errors.NewInputError("definition file declares no types", nil)
	}
	if !token.IsIdentifier(packageName) || packageName == "marvel" {
		return "", errors.NewInputError(fmt.Sprintf("invalid package name %q", packageName), nil)
	}

	taken := make(map[string]bool)
	typeNames := make(map[string]string, len(file.Types))
	for _, spec := range file.Types {
		if _, dup := typeNames[spec.Name]; dup || spec.Name == "" {
			return "", errors.NewInputError(fmt.Sprintf("type %q is declared twice or has no name", spec.Name), nil)
		}
		typeNames[spec.Name] = uniqueIdent(goName(spec.Name), taken)
	}

	enums := make([]goEnum, 0, len(file.Enums))
	enumNames := make(map[string]string, len(file.Enums))
	for _, spec := range file.Enums {
		if _, dup := enumNames[spec.Name]; dup || spec.Name == "" {
			return "", errors.NewInputError(fmt.Sprintf("enum %q is declared twice or has no name", spec.Name), nil)
		}
		e := goEnum{spec: spec, name: uniqueIdent(goName(spec.Name), taken)}
		enumNames[spec.Name] = e.name
		enums = append(enums, e)
	}
	for i := range enums {
		used := make(map[string]bool)
		for _, v := range enums[i].spec.Values {
			enums[i].consts = append(enums[i].consts, uniqueIdent(enums[i].name+constName(v), used))
		}
	}

	types := make([]goType, 0, len(file.Types))
	needsTime := false
	for _, spec := range file.Types {
		t, err := buildType(spec, typeNames, enumNames)
		if err != nil {
			return "", err
		}
		for _, f := range t.fields {
			if f.goType == "*time.Time" {
				needsTime = true
			}
		}
		types = append(types, t)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by marvel-go generate. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)
	buf.WriteString("import (\n")
	if needsTime {
		buf.WriteString("\t\"time\"\n\n")
	}
	fmt.Fprintf(&buf, "\t%q\n)\n", marvelImport)

	for _, e := range enums {
		writeEnum(&buf, e)
	}
	for _, t := range types {
		writeStruct(&buf, t)
	}
	writeDefinitions(&buf, types)
	writeEnumList(&buf, enums)

	return buf.String(), nil
}

func buildType(spec schema.TypeSpec, typeNames, enumNames map[string]string) (goType, error) {
	t := goType{spec: spec, name: typeNames[spec.Name]}
	used := make(map[string]bool, len(spec.Fields))
	for _, fs := range spec.Fields {
		f := goField{wire: fs.Name, name: uniqueIdent(goName(fs.Name), used)}

		switch fs.Type {
		case "int":
			f.goType, f.builder = "*int", "Int"
		case "float":
			f.goType, f.builder = "*float64", "Float"
		case "bool":
			f.goType, f.builder = "*bool", "Bool"
		case "date", "datetime":
			f.goType, f.builder = "*time.Time", "Date"
		case "string":
			f.goType, f.builder = "*string", "String"
			if enum, ok := spec.EnumTypes[fs.Name]; ok {
				enumIdent, known := enumNames[enum]
				if !known {
					return goType{}, undeclared(spec.Name, fs.Name, enum)
				}
				f.goType, f.builder = "*"+enumIdent, "EnumOf"
				f.rawTok = enum
			}
		case "array":
			elem, ok := spec.ComplexArrayTypes[fs.Name]
			if goElem, known := typeNames[elem]; ok && known {
				f.goType, f.builder = "[]*"+goElem, "ObjectsOf"
				break
			}
			f.goType, f.builder, f.rawTok = "any", "Raw", "array"
			if ok {
				if t.arrays == nil {
					t.arrays = make(map[string]string)
				}
				t.arrays[fs.Name] = elem
			}
		case "mixed", "null":
			f.goType, f.builder, f.rawTok = "any", "Raw", fs.Type
		default:
			goObj, known := typeNames[fs.Type]
			if !known {
				return goType{}, undeclared(spec.Name, fs.Name, fs.Type)
			}
			f.goType, f.builder = "*"+goObj, "ObjectOf"
		}
		t.fields = append(t.fields, f)
	}
	return t, nil
}

func undeclared(typeName, field, ref string) error {
	return errors.NewInputError(
		fmt.Sprintf("field `%s` of `%s` refers to `%s`, which is not declared in the definition file", field, typeName, ref), nil)
}

func writeEnum(buf *bytes.Buffer, e goEnum) {
	fmt.Fprintf(buf, "\n// %s is the %s enumeration.\ntype %s string\n", e.name, e.spec.Name, e.name)
	if len(e.consts) == 0 {
		return
	}
	buf.WriteString("\nconst (\n")
	for i, v := range e.spec.Values {
		fmt.Fprintf(buf, "\t%s %s = %q\n", e.consts[i], e.name, v)
	}
	buf.WriteString(")\n")
}

func writeStruct(buf *bytes.Buffer, t goType) {
	fmt.Fprintf(buf, "\ntype %s struct {\n", t.name)
	for _, f := range t.fields {
		fmt.Fprintf(buf, "\t%s %s\n", f.name, f.goType)
	}
	buf.WriteString("}\n")
	fmt.Fprintf(buf, "\nfunc (*%s) TypeName() string { return %q }\n", t.name, t.spec.Name)
}

func writeDefinitions(buf *bytes.Buffer, types []goType) {
	buf.WriteString("\n// Definitions returns the definitions of the generated types.\n")
	buf.WriteString("func Definitions() []marvel.Definition {\n\treturn []marvel.Definition{\n")
	for _, t := range types {
		buf.WriteString("\t\t{\n")
		fmt.Fprintf(buf, "\t\t\tName: %q,\n", t.spec.Name)
		fmt.Fprintf(buf, "\t\t\tNew: func() marvel.Object { return new(%s) },\n", t.name)
		buf.WriteString("\t\t\tFields: []marvel.Field{\n")
		for _, f := range t.fields {
			fmt.Fprintf(buf, "\t\t\t\t%s,\n", fieldBuilder(t.name, f))
		}
		buf.WriteString("\t\t\t},\n")
		writeTable(buf, "AttributeMap", t.spec.AttributeMap)
		writeTable(buf, "ComplexArrayTypes", t.arrays)
		buf.WriteString("\t\t},\n")
	}
	buf.WriteString("\t}\n}\n")
}

func fieldBuilder(typeName string, f goField) string {
	ref := fmt.Sprintf("func(o *%s) *%s { return &o.%s }", typeName, f.goType, f.name)
	switch f.builder {
	case "EnumOf":
		return fmt.Sprintf("marvel.EnumOf(%q, %q, %s)", f.wire, f.rawTok, ref)
	case "Raw":
		return fmt.Sprintf("marvel.Raw(%q, %q, %s)", f.wire, f.rawTok, ref)
	default:
		return fmt.Sprintf("marvel.%s(%q, %s)", f.builder, f.wire, ref)
	}
}

func writeTable(buf *bytes.Buffer, name string, table map[string]string) {
	if len(table) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: map[string]string{\n", name)
	for _, k := range slices.Sorted(maps.Keys(table)) {
		fmt.Fprintf(buf, "\t\t\t\t%q: %q,\n", k, table[k])
	}
	buf.WriteString("\t\t\t},\n")
}

func writeEnumList(buf *bytes.Buffer, enums []goEnum) {
	buf.WriteString("\n// Enums returns the generated enumerations.\n")
	buf.WriteString("func Enums() []marvel.Enum {\n\treturn []marvel.Enum{\n")
	for _, e := range enums {
		fmt.Fprintf(buf, "\t\t{Name: %q, Values: []string{", e.spec.Name)
		for i, v := range e.spec.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%q", v)
		}
		buf.WriteString("}},\n")
	}
	buf.WriteString("\t}\n}\n")
}

// goName converts a field or type name to an exported Go identifier with
// common initialisms upper cased, e.g. resourceUri -> ResourceURI and
// urls -> URLs.
func goName(name string) string {
	words := splitWords(strcase.ToCamel(sanitize(name)))
	for i, w := range words {
		upper := strings.ToUpper(w)
		switch {
		case initialisms[upper]:
			words[i] = upper
		case len(w) > 1 && strings.HasSuffix(w, "s") && initialisms[strings.ToUpper(w[:len(w)-1])]:
			words[i] = strings.ToUpper(w[:len(w)-1]) + "s"
		}
	}
	ident := strings.Join(words, "")
	if ident == "" || !unicode.IsLetter(rune(ident[0])) {
		ident = "X" + ident
	}
	return ident
}

// constName turns an enumeration value into the suffix of its constant.
func constName(value string) string {
	name := strcase.ToCamel(sanitize(value))
	if name == "" {
		return "Empty"
	}
	if !unicode.IsLetter(rune(name[0])) {
		return "Value" + name
	}
	return name
}

// sanitize replaces every character that cannot appear in an identifier
// with a word separator.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return ' '
	}, s)
}

// splitWords splits a PascalCase identifier into its words. A run of upper
// case letters is one word that ends before the start of the next lower case
// word, e.g. HTMLText -> HTML, Text.
func splitWords(s string) []string {
	var words []string
	runes := []rune(s)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev) ||
			(unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])))
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}

func uniqueIdent(base string, used map[string]bool) string {
	name := base
	for i := 2; used[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	used[name] = true
	return name
}
