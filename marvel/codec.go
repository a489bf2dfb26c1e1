// Package marvel is a typed client for the Marvel Comics catalog API.
//
// Responses are decoded by a type-directed mapper: every data object in this
// package is registered with a schema registry that describes its fields, and
// the codec builds typed values from decoded JSON and serializes them back.
package marvel

import (
	"github.com/chronoarc/marvel-go/internal/codec"
	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
	"github.com/chronoarc/marvel-go/internal/schema"
)

type (
	// Error is the error type returned by every operation of the package.
	Error = errors.AppError
	// Object is implemented by every typed value the codec handles.
	Object = schema.Object
	// Registry holds the type and enum definitions known to a Codec.
	Registry = schema.Registry
	// Codec converts between decoded JSON and registered objects.
	Codec = codec.Codec
	// OrderedObject is the insertion-ordered mapping ToArray produces.
	OrderedObject = models.OrderedObject
)

// Sentinels for errors.Is.
var (
	ErrMissingConstructor   = errors.ErrMissingConstructor
	ErrInvalidAttributeType = errors.ErrInvalidAttributeType
	ErrUnknownEnumValue     = errors.ErrUnknownEnumValue
)

var defaultCodec = codec.New(NewRegistry())

// NewRegistry returns a registry holding every type and enum of the package.
// Callers may register further definitions into it.
func NewRegistry() *Registry {
	reg := schema.NewRegistry()
	reg.MustRegisterEnum(enums()...)
	reg.MustRegister(definitions()...)
	return reg
}

// NewCodec returns a codec over reg, typically a NewRegistry extended with
// further definitions.
func NewCodec(reg *Registry) *Codec {
	return codec.New(reg)
}

// DefaultCodec returns the codec over the package's built-in types.
func DefaultCodec() *Codec {
	return defaultCodec
}

// FromJSON builds an instance of the registered type typeName from decoded
// JSON. A nil data value yields a nil object.
func FromJSON(data any, typeName string) (Object, error) {
	return defaultCodec.FromJSON(data, typeName)
}

// Decode builds a *T from decoded JSON.
func Decode[T any, PT ptrObject[T]](data any) (PT, error) {
	return codec.Decode[T, PT](defaultCodec, data)
}

// Unmarshal parses a JSON document into a *T.
func Unmarshal[T any, PT ptrObject[T]](data []byte) (PT, error) {
	return codec.DecodeBytes[T, PT](defaultCodec, data)
}

// ToArray serializes obj into an ordered mapping keyed by wire names.
// Unset fields are omitted.
func ToArray(obj Object) (*OrderedObject, error) {
	return defaultCodec.ToArray(obj)
}

// Marshal serializes obj to JSON.
func Marshal(obj Object) ([]byte, error) {
	return defaultCodec.Marshal(obj)
}
