package models

import (
	"encoding/json"
	"strconv"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue = any

// JSONObject represents a JSON object, a map of strings to JSONValues.
type JSONObject = map[string]JSONValue

// JSONArray represents a JSON array, a slice of JSONValues.
type JSONArray = []JSONValue

// ValueKind discriminates the payload a FlatNode row carries.
type ValueKind uint8

const (
	// KindEmpty marks a row with no payload of its own, typically a
	// container whose children follow on deeper rows.
	KindEmpty ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindNull
)

// Value is the typed leaf payload of an outline row. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Str  string
	Num  json.Number
	Bool bool
}

// EmptyValue returns the payload-less value used for container rows.
func EmptyValue() Value {
	return Value{Kind: KindEmpty}
}

// StringValue wraps a string payload.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue wraps a numeric payload without losing precision.
func NumberValue(n json.Number) Value {
	return Value{Kind: KindNumber, Num: n}
}

// BoolValue wraps a boolean payload.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NullValue represents an explicit JSON null payload.
func NullValue() Value {
	return Value{Kind: KindNull}
}

// ValueOf converts a scalar JSONValue into a typed Value. Objects and arrays
// carry no direct payload and map to the empty value.
func ValueOf(v JSONValue) Value {
	switch t := v.(type) {
	case nil:
		return NullValue()
	case string:
		return StringValue(t)
	case json.Number:
		return NumberValue(t)
	case float64:
		// Decoders that skip UseNumber() hand us float64s.
		return NumberValue(json.Number(strconv.FormatFloat(t, 'g', -1, 64)))
	case bool:
		return BoolValue(t)
	default:
		return EmptyValue()
	}
}

// String renders the payload the way it appears in an editable outline row.
// Empty payloads render as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num.String()
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// ToJSON converts the payload back into a JSON-representable value. Rows
// without a payload nest as an empty string, matching how a trailing
// childless container row reads back.
func (v Value) ToJSON() JSONValue {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindNull:
		return nil
	default:
		return ""
	}
}

// FlatNode is one row of the linearized outline representation of a JSON
// value. Depth is the 0-based indentation level; IsMatch is nil until the
// row has been checked against a source text.
type FlatNode struct {
	ID      string
	Key     string
	Value   Value
	Depth   int
	IsMatch *bool
}
