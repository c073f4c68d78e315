package extract

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a decoded JSON tree. Exactly one variant is populated, selected
// by Kind. Numbers keep their decimal literal so money can be rounded
// without binary float error. Object keys keep their source order.
type Value struct {
	kind   Kind
	b      bool
	num    json.Number
	str    string
	items  []Value
	keys   []string
	fields map[string]Value
}

// Null returns the null value. The zero Value is also null.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a decimal literal such as "12.50".
func Number(lit string) Value { return Value{kind: KindNumber, num: json.Number(lit)} }

// Float wraps a float using its shortest decimal representation.
func Float(f float64) Value {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a list of values.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: slices.Clone(items)}
}

// Field is a key/value pair used to build objects in source order.
type Field struct {
	Key   string
	Value Value
}

// Object builds an object from fields. A repeated key keeps its first
// position and its last value.
func Object(fields ...Field) Value {
	v := Value{kind: KindObject, fields: make(map[string]Value, len(fields))}
	for _, f := range fields {
		v.set(f.Key, f.Value)
	}
	return v
}

// EmptyObject is the effective input used when nothing could be decoded.
func EmptyObject() Value { return Object() }

func (v *Value) set(key string, val Value) {
	if _, exists := v.fields[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = val
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsObject reports whether v is an object.
func (v Value) IsObject() bool { return v.kind == KindObject }

// Get looks up a key on an object. Non-objects have no keys.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	f, ok := v.fields[key]
	return f, ok
}

// Keys returns object keys in source order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return slices.Clone(v.keys)
}

// Items returns array elements.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return slices.Clone(v.items)
}

// Len is the number of array elements or object keys.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.keys)
	default:
		return 0
	}
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the decimal literal payload.
func (v Value) AsNumber() (json.Number, bool) {
	return v.num, v.kind == KindNumber
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Interface converts the tree to plain Go values (map[string]any, []any,
// string, json.Number, bool, nil).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = it.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.fields[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the tree with object keys in source order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(v.num.String())
	case KindString:
		b, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, it := range v.items {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := it.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				buf.WriteString(", ")
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteString(": ")
			if err := v.fields[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// Text returns the JSON encoding of v, or "" if it cannot be encoded.
func (v Value) Text() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}
