package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/chronoarc/marvel-go/internal/errors"
	"github.com/chronoarc/marvel-go/internal/models"
)

// DateLayout is the wire format of date-time values, e.g.
// 2013-01-01T00:00:00+00:00. A "Z" suffix is not accepted.
const DateLayout = "2006-01-02T15:04:05-07:00"

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout string. Fractional seconds are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err == nil && len(s) != len(DateLayout) {
		err = fmt.Errorf("unexpected length %d", len(s))
	}
	if err != nil {
		return time.Time{}, errors.NewInvalidAttributeTypeError(fmt.Sprintf("could not parse date %q", s), err)
	}
	return t, nil
}

// Coerce converts one decoded JSON value to the resolved type t. Nested
// objects are built through FromJSON. A JSON null yields nil for every kind.
func (c *Codec) Coerce(v any, t models.TypeInfo) (any, error) {
	if v == nil {
		return nil, nil
	}
	if n, ok := v.(json.Number); ok {
		switch t.Kind {
		case models.Int, models.Float, models.Bool:
			v = numberValue(n)
		case models.String, models.Enum, models.Object:
			v = n.String()
		}
	}

	switch t.Kind {
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
			coerced, err := c.Coerce(item, *t.Elem)
			if err != nil {
				return nil, err
			}
			out[i] = coerced
		}
		return out, nil

	case models.Int:
		if s, ok := v.(string); ok {
			n, err := parseDecimalInt(s)
			if err != nil {
				return nil, conversionError(v, t, err)
			}
			return n, nil
		}
		n, err := cast.ToIntE(v)
		if err != nil {
			return nil, conversionError(v, t, err)
		}
		return n, nil

	case models.Float:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, conversionError(v, t, err)
		}
		return f, nil

	case models.Bool:
		b, err := cast.ToBoolE(v)
		if err != nil {
			return nil, conversionError(v, t, err)
		}
		return b, nil

	case models.String:
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, conversionError(v, t, err)
		}
		return s, nil

	case models.Date:
		s, ok := v.(string)
		if !ok {
			return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("expected a date string, got %T", v), nil)
		}
		return ParseDate(s)

	case models.UntypedArray, models.Mixed:
		return v, nil

	case models.Null:
		return nil, nil

	case models.Enum:
		return c.enumCase(t.Name, v)

	case models.Object:
		if _, ok := c.registry.LookupEnum(t.Name); ok {
			return c.enumCase(t.Name, v)
		}
		if _, ok := c.registry.Lookup(t.Name); ok {
			return c.FromJSON(v, t.Name)
		}
		return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("type `%s` does not exist", t.Name), nil)
	}

	return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("unsupported attribute type %s", t), nil)
}

// enumCase returns the case of enumName whose value equals v.
func (c *Codec) enumCase(enumName string, v any) (any, error) {
	e, ok := c.registry.LookupEnum(enumName)
	if !ok {
		return nil, errors.NewInvalidAttributeTypeError(fmt.Sprintf("enum `%s` does not exist", enumName), nil)
	}
	s, ok := v.(string)
	if !ok || !e.Has(s) {
		return nil, errors.NewUnknownEnumValueError(enumName, v)
	}
	return s, nil
}

// numberValue unwraps a json.Number into an int64 when it is integral and a
// float64 otherwise.
func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func conversionError(v any, t models.TypeInfo, err error) error {
	return errors.NewInvalidAttributeTypeError(fmt.Sprintf("cannot convert %T to %s", v, t), err)
}

// parseDecimalInt reads s in base 10, truncating a fractional part.
// Leading zeros do not switch the base.
func parseDecimalInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return int(f), nil
}

