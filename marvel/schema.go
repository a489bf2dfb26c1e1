package marvel

import (
	"time"

	"github.com/chronoarc/marvel-go/internal/schema"
)

// Field builders for declaring types outside this package, such as the
// output of marvel-go generate. Register the resulting definitions with
// Registry.Register.
type (
	Definition = schema.Definition
	Field      = schema.Field
	Enum       = schema.Enum
)

func Int[T any, PT ptrObject[T]](name string, ref func(PT) **int) Field {
	return schema.Int[T, PT](name, ref)
}

func Float[T any, PT ptrObject[T]](name string, ref func(PT) **float64) Field {
	return schema.Float[T, PT](name, ref)
}

func Bool[T any, PT ptrObject[T]](name string, ref func(PT) **bool) Field {
	return schema.Bool[T, PT](name, ref)
}

func String[T any, PT ptrObject[T]](name string, ref func(PT) **string) Field {
	return schema.String[T, PT](name, ref)
}

func Date[T any, PT ptrObject[T]](name string, ref func(PT) **time.Time) Field {
	return schema.Date[T, PT](name, ref)
}

// EnumOf declares a field holding a case of the registered enum enumName.
func EnumOf[T any, PT ptrObject[T], E ~string](name, enumName string, ref func(PT) **E) Field {
	return schema.EnumOf[T, PT, E](name, enumName, ref)
}

func ObjectOf[T any, PT ptrObject[T], O any, PO ptrObject[O]](name string, ref func(PT) *PO) Field {
	return schema.ObjectOf[T, PT, O, PO](name, ref)
}

func ObjectsOf[T any, PT ptrObject[T], O any, PO ptrObject[O]](name string, ref func(PT) *[]PO) Field {
	return schema.ObjectsOf[T, PT, O, PO](name, ref)
}

// Raw declares a field that keeps the decoded JSON value as is. token is the
// declared type token, e.g. "array" or "mixed".
func Raw[T any, PT ptrObject[T]](name, token string, ref func(PT) *any) Field {
	return schema.Raw[T, PT](name, token, ref)
}
