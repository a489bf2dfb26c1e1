package models

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OrderedObject is a JSON object that remembers key insertion order.
// Serialized typed objects are emitted as OrderedObjects so the wire output
// follows field declaration order.
type OrderedObject struct {
	keys   []string
	values map[string]JSONValue
}

// NewOrderedObject creates an empty OrderedObject.
func NewOrderedObject() *OrderedObject {
	return &OrderedObject{values: make(map[string]JSONValue)}
}

// Set stores value under key. Overwriting an existing key keeps its position.
func (o *OrderedObject) Set(key string, value JSONValue) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *OrderedObject) Get(key string) (JSONValue, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Delete removes key, preserving the order of the remaining keys.
func (o *OrderedObject) Delete(key string) {
	if _, exists := o.values[key]; !exists {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (o *OrderedObject) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of entries.
func (o *OrderedObject) Len() int {
	return len(o.keys)
}

// ToMap converts the object, and every nested OrderedObject, into plain
// JSONObject/JSONArray values.
func (o *OrderedObject) ToMap() JSONObject {
	out := make(JSONObject, len(o.keys))
	for _, k := range o.keys {
		out[k] = plain(o.values[k])
	}
	return out
}

func plain(v JSONValue) JSONValue {
	switch t := v.(type) {
	case *OrderedObject:
		if t == nil {
			return nil
		}
		return t.ToMap()
	case []interface{}:
		arr := make(JSONArray, len(t))
		for i, e := range t {
			arr[i] = plain(e)
		}
		return arr
	case JSONArray:
		arr := make(JSONArray, len(t))
		for i, e := range t {
			arr[i] = plain(e)
		}
		return arr
	default:
		return v
	}
}

// MarshalJSON writes the entries in insertion order.
func (o *OrderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
