// Package schema holds typed object definitions and resolves their declared
// field types into the descriptors the codec works from.
package schema

import (
	"fmt"
	"time"

	"github.com/chronoarc/marvel-go/internal/errors"
)

// Object is implemented by every value the codec can build or serialize.
// TypeName must not dereference its receiver.
type Object interface {
	TypeName() string
}

type ptrObject[T any] interface {
	*T
	Object
}

// Field declares one attribute of a typed object: its internal name, its
// nominal type token and the accessors used to read and write its slot.
type Field struct {
	Name string
	Type string

	elem string
	enum string

	set func(Object, any) error
	get func(Object) any
}

// Set assigns an already coerced value to the field slot of obj.
func (f Field) Set(obj Object, v any) error {
	if f.set == nil {
		return errors.NewInvalidAttributeTypeError(fmt.Sprintf("field `%s` cannot be assigned", f.Name), nil)
	}
	return f.set(obj, v)
}

// Get reads the field slot of obj. Unset fields yield nil.
func (f Field) Get(obj Object) any {
	if f.get == nil {
		return nil
	}
	return f.get(obj)
}

// Int declares a nullable integer field.
func Int[T any, PT ptrObject[T]](name string, ref func(PT) **int) Field {
	return scalar[T, PT, int](name, "int", ref)
}

// Float declares a nullable float field.
func Float[T any, PT ptrObject[T]](name string, ref func(PT) **float64) Field {
	return scalar[T, PT, float64](name, "float", ref)
}

// Bool declares a nullable boolean field.
func Bool[T any, PT ptrObject[T]](name string, ref func(PT) **bool) Field {
	return scalar[T, PT, bool](name, "bool", ref)
}

// String declares a nullable string field.
func String[T any, PT ptrObject[T]](name string, ref func(PT) **string) Field {
	return scalar[T, PT, string](name, "string", ref)
}

// Date declares a nullable date-time field.
func Date[T any, PT ptrObject[T]](name string, ref func(PT) **time.Time) Field {
	return scalar[T, PT, time.Time](name, "datetime", ref)
}

func scalar[T any, PT ptrObject[T], V any](name, token string, ref func(PT) **V) Field {
	return Field{
		Name: name,
		Type: token,
		set: func(obj Object, v any) error {
			o, err := owner[T, PT](obj, name)
			if err != nil {
				return err
			}
			slot := ref(o)
			if v == nil {
				*slot = nil
				return nil
			}
			val, ok := v.(V)
			if !ok {
				return mismatch(name, token, v)
			}
			*slot = &val
			return nil
		},
		get: func(obj Object) any {
			o, ok := obj.(PT)
			if !ok || o == nil {
				return nil
			}
			slot := ref(o)
			if *slot == nil {
				return nil
			}
			return **slot
		},
	}
}

// EnumOf declares a string field backed by the enumeration enumName. On the
// wire the value is the case's underlying string.
func EnumOf[T any, PT ptrObject[T], E ~string](name, enumName string, ref func(PT) **E) Field {
	return Field{
		Name: name,
		Type: "string",
		enum: enumName,
		set: func(obj Object, v any) error {
			o, err := owner[T, PT](obj, name)
			if err != nil {
				return err
			}
			slot := ref(o)
			switch val := v.(type) {
			case nil:
				*slot = nil
			case E:
				*slot = &val
			case string:
				e := E(val)
				*slot = &e
			default:
				return mismatch(name, enumName, v)
			}
			return nil
		},
		get: func(obj Object) any {
			o, ok := obj.(PT)
			if !ok || o == nil {
				return nil
			}
			slot := ref(o)
			if *slot == nil {
				return nil
			}
			return string(**slot)
		},
	}
}

// ObjectOf declares a field holding a nested typed object.
func ObjectOf[T any, PT ptrObject[T], O any, PO ptrObject[O]](name string, ref func(PT) *PO) Field {
	typeName := PO(new(O)).TypeName()
	return Field{
		Name: name,
		Type: typeName,
		set: func(obj Object, v any) error {
			o, err := owner[T, PT](obj, name)
			if err != nil {
				return err
			}
			slot := ref(o)
			if v == nil {
				*slot = nil
				return nil
			}
			val, ok := v.(PO)
			if !ok {
				return mismatch(name, typeName, v)
			}
			*slot = val
			return nil
		},
		get: func(obj Object) any {
			o, ok := obj.(PT)
			if !ok || o == nil {
				return nil
			}
			slot := ref(o)
			if *slot == nil {
				return nil
			}
			return *slot
		},
	}
}

// ObjectsOf declares an array field whose elements are typed objects. The
// element type is recorded in the definition's complex array table when the
// field is registered.
func ObjectsOf[T any, PT ptrObject[T], O any, PO ptrObject[O]](name string, ref func(PT) *[]PO) Field {
	elemName := PO(new(O)).TypeName()
	return Field{
		Name: name,
		Type: "array",
		elem: elemName,
		set: func(obj Object, v any) error {
			o, err := owner[T, PT](obj, name)
			if err != nil {
				return err
			}
			slot := ref(o)
			if v == nil {
				*slot = nil
				return nil
			}
			items, ok := v.([]any)
			if !ok {
				return mismatch(name, "array<"+elemName+">", v)
			}
			out := make([]PO, len(items))
			for i, item := range items {
				if item == nil {
					continue
				}
				val, ok := item.(PO)
				if !ok {
					return mismatch(fmt.Sprintf("%s[%d]", name, i), elemName, item)
				}
				out[i] = val
			}
			*slot = out
			return nil
		},
		get: func(obj Object) any {
			o, ok := obj.(PT)
			if !ok || o == nil {
				return nil
			}
			items := *ref(o)
			if items == nil {
				return nil
			}
			out := make([]any, len(items))
			for i, item := range items {
				if item != nil {
					out[i] = item
				}
			}
			return out
		},
	}
}

// Raw declares a field whose value is kept as decoded. token is usually
// "array" (an untyped array) or "mixed".
func Raw[T any, PT ptrObject[T]](name, token string, ref func(PT) *any) Field {
	return Field{
		Name: name,
		Type: token,
		set: func(obj Object, v any) error {
			o, err := owner[T, PT](obj, name)
			if err != nil {
				return err
			}
			*ref(o) = v
			return nil
		},
		get: func(obj Object) any {
			o, ok := obj.(PT)
			if !ok || o == nil {
				return nil
			}
			return *ref(o)
		},
	}
}

func owner[T any, PT ptrObject[T]](obj Object, field string) (PT, error) {
	o, ok := obj.(PT)
	if !ok || o == nil {
		return nil, errors.NewInvalidAttributeTypeError(
			fmt.Sprintf("field `%s` does not belong to %T", field, obj), nil)
	}
	return o, nil
}

func mismatch(field, want string, got any) error {
	return errors.NewInvalidAttributeTypeError(
		fmt.Sprintf("cannot assign %T to field `%s` of type %s", got, field, want), nil)
}
