// Package codec maps decoded JSON onto typed objects and back.
package codec

import (
	"fmt"
	"slices"

	jsoniter "github.com/json-iterator/go"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
	"github.com/chronoarc/marvel-go/internal/parser"
	"github.com/chronoarc/marvel-go/internal/schema"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec converts between decoded JSON values and the typed objects
// registered in its registry. A Codec holds no mutable state.
type Codec struct {
	registry *schema.Registry
}

// New creates a Codec over reg.
func New(reg *schema.Registry) *Codec {
	return &Codec{registry: reg}
}

// Registry returns the registry the codec resolves types from.
func (c *Codec) Registry() *schema.Registry {
	return c.registry
}

// FromJSON builds an instance of typeName from a decoded JSON mapping.
// A nil data value yields a nil object. Keys that are not declared fields
// are ignored and declared fields missing from data stay nil.
func (c *Codec) FromJSON(data any, typeName string) (schema.Object, error) {
	if data == nil {
		return nil, nil
	}

	desc, ok := c.registry.Lookup(typeName)
	if !ok {
		return nil, errors.NewMissingConstructorError(typeName)
	}

	values, ok := models.AsObject(data)
	if !ok {
		return nil, errors.NewInvalidAttributeTypeError(
			fmt.Sprintf("cannot deserialize %T into `%s`, expected a JSON object", data, typeName), nil)
	}

	obj := desc.New()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		field, ok := desc.Lookup(key)
		if !ok {
			continue
		}
		v, err := c.Coerce(values[key], field.Kind)
		if err != nil {
			return nil, errors.WithField(err, typeName, field.Name)
		}
		if err := field.Set(obj, v); err != nil {
			return nil, errors.WithField(err, typeName, field.Name)
		}
	}

	return obj, nil
}

// Unmarshal parses a JSON document and deserializes it into typeName.
func (c *Codec) Unmarshal(data []byte, typeName string) (schema.Object, error) {
	ir, err := parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return c.FromJSON(ir.Root, typeName)
}

type ptrObject[T any] interface {
	*T
	schema.Object
}

// Decode deserializes data into a new *T, taking the type name from T.
func Decode[T any, PT ptrObject[T]](c *Codec, data any) (PT, error) {
	typeName := PT(new(T)).TypeName()
	obj, err := c.FromJSON(data, typeName)
	if err != nil || obj == nil {
		return nil, err
	}
	typed, ok := obj.(PT)
	if !ok {
		return nil, errors.NewInvalidAttributeTypeError(
			fmt.Sprintf("type `%s` is registered with constructor for %T", typeName, obj), nil)
	}
	return typed, nil
}

// DecodeBytes parses a JSON document and deserializes it into a new *T.
func DecodeBytes[T any, PT ptrObject[T]](c *Codec, data []byte) (PT, error) {
	ir, err := parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return Decode[T, PT](c, ir.Root)
}

// Marshal serializes obj with ToArray and encodes the result as JSON.
func (c *Codec) Marshal(obj schema.Object) ([]byte, error) {
	out, err := c.ToArray(obj)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []byte("null"), nil
	}
	data, err := jsonAPI.Marshal(out)
	if err != nil {
		return nil, errors.NewOutputError("failed to encode JSON", err)
	}
	return data, nil
}
