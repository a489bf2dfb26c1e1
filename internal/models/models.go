package models

// JSONValue is a generic type to represent any decoded JSON value.
// This can be a string, json.Number, boolean, nil, JSONObject, or JSONArray.
type JSONValue = interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// IntermediateRepresentation holds a parsed JSON document before it is
// mapped onto a typed object.
type IntermediateRepresentation struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
}

// AsObject reports whether v is one of the decoded mapping shapes and, if so,
// returns a view over it. OrderedObjects keep their key order; plain maps are
// returned as-is.
func AsObject(v JSONValue) (map[string]JSONValue, bool) {
	switch o := v.(type) {
	case JSONObject:
		return o, true
	case map[string]interface{}:
		return o, true
	case *OrderedObject:
		if o == nil {
			return nil, false
		}
		return o.values, true
	default:
		return nil, false
	}
}

// AsArray reports whether v is a decoded JSON sequence.
func AsArray(v JSONValue) ([]JSONValue, bool) {
	switch a := v.(type) {
	case JSONArray:
		return a, true
	case []interface{}:
		return a, true
	default:
		return nil, false
	}
}
