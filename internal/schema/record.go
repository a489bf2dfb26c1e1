package schema

import (
	"maps"
)

// Record is a typed object whose shape is only known at runtime, such as a
// type loaded from a YAML definition file. Values are stored under their
// internal field names.
type Record struct {
	typeName string
	values   map[string]any
}

// NewRecord creates an empty record of the named type.
func NewRecord(typeName string) *Record {
	return &Record{typeName: typeName, values: make(map[string]any)}
}

// TypeName returns the record's type name.
func (r *Record) TypeName() string {
	if r == nil {
		return ""
	}
	return r.typeName
}

// Get returns the value stored for field, or nil.
func (r *Record) Get(field string) any {
	return r.values[field]
}

// Set stores a value for field. A nil value clears it.
func (r *Record) Set(field string, v any) {
	if v == nil {
		delete(r.values, field)
		return
	}
	r.values[field] = v
}

// Values returns a copy of the stored values.
func (r *Record) Values() map[string]any {
	return maps.Clone(r.values)
}

// RecordField declares a field of a Record-backed type.
func RecordField(name, token string) Field {
	return Field{
		Name: name,
		Type: token,
		set: func(obj Object, v any) error {
			r, err := owner[Record](obj, name)
			if err != nil {
				return err
			}
			r.Set(name, v)
			return nil
		},
		get: func(obj Object) any {
			r, ok := obj.(*Record)
			if !ok || r == nil {
				return nil
			}
			return r.Get(name)
		},
	}
}

// RecordDefinition builds a Definition whose instances are Records.
func RecordDefinition(name string, fields []Field) Definition {
	return Definition{
		Name:   name,
		Fields: fields,
		New:    func() Object { return NewRecord(name) },
	}
}
