package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chronoarc/marvel-go/internal/errors"
)

// DefinitionFile is the YAML layout of a type definition file.
//
//	enums:
//	  - name: SeriesType
//	    values: [collection, one shot, limited, ongoing]
//	types:
//	  - name: Series
//	    fields:
//	      - {name: id, type: int}
//	      - {name: seriesType, type: string}
//	    enum_types:
//	      seriesType: SeriesType
type DefinitionFile struct {
	Enums []EnumSpec `yaml:"enums,omitempty"`
	Types []TypeSpec `yaml:"types"`
}

// EnumSpec declares an enumeration.
type EnumSpec struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// TypeSpec declares a Record-backed object type.
type TypeSpec struct {
	Name              string            `yaml:"name"`
	Fields            []FieldSpec       `yaml:"fields"`
	AttributeMap      map[string]string `yaml:"attribute_map,omitempty"`
	ComplexArrayTypes map[string]string `yaml:"complex_array_types,omitempty"`
	EnumTypes         map[string]string `yaml:"enum_types,omitempty"`
}

// FieldSpec declares one field with its nominal type token.
type FieldSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Definition converts the spec into a Record-backed Definition. A type
// without a fields key keeps a nil field list.
func (s TypeSpec) Definition() Definition {
	var fields []Field
	if s.Fields != nil {
		fields = make([]Field, 0, len(s.Fields))
		for _, f := range s.Fields {
			fields = append(fields, RecordField(f.Name, f.Type))
		}
	}
	def := RecordDefinition(s.Name, fields)
	def.AttributeMap = s.AttributeMap
	def.ComplexArrayTypes = s.ComplexArrayTypes
	def.EnumTypes = s.EnumTypes
	return def
}

// ParseDefinitions decodes a definition file held in memory.
func ParseDefinitions(data []byte) (*DefinitionFile, error) {
	var file DefinitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewConfigError("failed to parse type definitions", err)
	}
	for i, t := range file.Types {
		if t.Name == "" {
			return nil, errors.NewConfigError(fmt.Sprintf("type #%d has no name", i+1), nil)
		}
		for _, f := range t.Fields {
			if f.Name == "" || f.Type == "" {
				return nil, errors.NewConfigError(fmt.Sprintf("type `%s` has a field without name or type", t.Name), nil)
			}
		}
	}
	for i, e := range file.Enums {
		if e.Name == "" {
			return nil, errors.NewConfigError(fmt.Sprintf("enum #%d has no name", i+1), nil)
		}
	}
	return &file, nil
}

// LoadDefinitions reads a YAML definition file from disk.
func LoadDefinitions(path string) (*DefinitionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read type definitions '%s'", path), err)
	}
	return ParseDefinitions(data)
}

// RegisterInto registers every enum, then every type, of the file into reg.
func (f *DefinitionFile) RegisterInto(reg *Registry) error {
	for _, e := range f.Enums {
		if err := reg.RegisterEnum(Enum{Name: e.Name, Values: e.Values}); err != nil {
			return err
		}
	}
	for _, t := range f.Types {
		if err := reg.Register(t.Definition()); err != nil {
			return err
		}
	}
	return nil
}
