package codec

import (
	"fmt"
	"slices"
	"time"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
	"github.com/chronoarc/marvel-go/internal/schema"
)

// AdditionalProperties is the field whose mapping value is merged into the
// serialized object instead of being nested under its own key.
const AdditionalProperties = "additionalProperties"

// ToArray serializes obj into an ordered mapping keyed by wire names.
// Fields are emitted in declaration order and null values are left out.
func (c *Codec) ToArray(obj schema.Object) (*models.OrderedObject, error) {
	if obj == nil {
		return nil, nil
	}

	typeName := obj.TypeName()
	fields, err := c.registry.Resolve(typeName)
	if err != nil {
		return nil, err
	}

	out := models.NewOrderedObject()
	for _, field := range fields {
		v, err := c.ValueToArray(field.Get(obj), field.Kind)
		if err != nil {
			return nil, errors.WithField(err, typeName, field.Name)
		}
		if v == nil {
			continue
		}
		if field.Name == AdditionalProperties {
			if err := mergeFlat(out, v); err != nil {
				return nil, errors.WithField(err, typeName, field.Name)
			}
			continue
		}
		out.Set(field.WireName, v)
	}
	return out, nil
}

// ValueToArray converts one field value into its JSON-compatible form.
func (c *Codec) ValueToArray(v any, t models.TypeInfo) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t.Kind {
	case models.Int, models.Float, models.Bool, models.String, models.Enum,
		models.UntypedArray, models.Mixed:
		return v, nil

	case models.Null:
		return nil, nil

	case models.Date:
		switch tv := v.(type) {
		case time.Time:
			return FormatDate(tv), nil
		case *time.Time:
			if tv == nil {
				return nil, nil
			}
			return FormatDate(*tv), nil
		}
		return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("expected a date, got %T", v), nil)

	case models.Object:
		if obj, ok := v.(schema.Object); ok {
			out, err := c.ToArray(obj)
			if err != nil || out == nil {
				return nil, err
			}
			return out, nil
		}
		// Enumerations referenced by name hold their case value.
		if _, ok := c.registry.LookupEnum(t.Name); ok {
			return v, nil
		}
		return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("expected a `%s` object, got %T", t.Name, v), nil)

	case models.Array:
		items, ok := models.AsArray(v)
		if !ok {
			return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("expected an array, got %T", v), nil)
		}
		if t.Elem == nil {
			return nil, errors.NewInvalidAttributeTypeError("array type has no element type", nil)
		}
		out := make([]any, len(items))
		for i, item := range items {
			converted, err := c.ValueToArray(item, *t.Elem)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	}

	return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("unsupported attribute type %s", t), nil)
}

func mergeFlat(out *models.OrderedObject, v any) error {
	if ordered, ok := v.(*models.OrderedObject); ok {
		for _, k := range ordered.Keys() {
			if val, _ := ordered.Get(k); val != nil {
				out.Set(k, val)
			}
		}
		return nil
	}

	values, ok := models.AsObject(v)
	if !ok {
		return errors.NewInvalidAttributeTypeError(fmt.Sprintf("expected a mapping, got %T", v), nil)
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if values[k] != nil {
			out.Set(k, values[k])
		}
	}
	return nil
}
