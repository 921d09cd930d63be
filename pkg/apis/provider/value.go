// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Kind is the type tag of a Value.
type Kind int

const (
	// KindNull is the kind of an absent or JSON null value.
	KindNull Kind = iota
	// KindBool is the kind of a boolean value.
	KindBool
	// KindInt is the kind of an integral value.
	KindInt
	// KindFloat is the kind of a floating point value.
	KindFloat
	// KindString is the kind of a string value.
	KindString
	// KindList is the kind of an ordered list of values.
	KindList
	// KindMap is the kind of a nested attribute map.
	KindMap
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
	KindMap:    "map",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single attribute value as reported by the cloud backend. Exactly one of its
// payload fields is meaningful, selected by its Kind. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	l    []Value
	m    Attributes
}

// NullValue returns the null Value.
func NullValue() Value { return Value{} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ListValue wraps a list of values.
func ListValue(values ...Value) Value {
	l := make([]Value, len(values))
	copy(l, values)
	return Value{kind: KindList, l: l}
}

// MapValue wraps nested attributes.
func MapValue(m Attributes) Value {
	if m == nil {
		m = Attributes{}
	}
	return Value{kind: KindMap, m: m}
}

// Kind returns the type tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload of v.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the integral payload of v.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the numeric payload of v. Integral values are widened.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// Str returns the string payload of v.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// List returns the list payload of v.
func (v Value) List() ([]Value, bool) { return v.l, v.kind == KindList }

// Map returns the nested attributes of v.
func (v Value) Map() (Attributes, bool) { return v.m, v.kind == KindMap }

// Interface converts v back into plain Go data (nil, bool, int64, float64, string, []any, map[string]any).
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindList:
		out := make([]any, 0, len(v.l))
		for _, e := range v.l {
			out = append(out, e.Interface())
		}
		return out
	case KindMap:
		return v.m.Interface()
	}
	return nil
}

// String renders v for human consumption. Strings are rendered without quotes.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, 0, len(v.l))
		for _, e := range v.l {
			parts = append(parts, e.String())
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindMap:
		keys := v.m.Keys()
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+":"+v.m[k].String())
		}
		return "map[" + strings.Join(parts, " ") + "]"
	}
	return ""
}

// Equal reports whether v and o carry the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindList:
		if len(v.l) != len(o.l) {
			return false
		}
		for i := range v.l {
			if !v.l[i].Equal(o.l[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(o.m)
	}
	return v.b == o.b && v.i == o.i && v.f == o.f && v.s == o.s
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	val, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// ValueOf converts plain Go data into a Value. It accepts the types produced by JSON decoding and
// unstructured conversion as well as any integer, float, slice or string-keyed map type.
func ValueOf(in any) (Value, error) {
	switch t := in.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return t, nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case int64:
		return IntValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case float64:
		return FloatValue(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", t, err)
		}
		return FloatValue(f), nil
	case fmt.Stringer:
		// ids of some backends are UUID types
		if reflect.TypeOf(t).Kind() == reflect.Array {
			return StringValue(t.String()), nil
		}
	}

	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NullValue(), nil
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Bool:
		return BoolValue(rv.Bool()), nil
	case reflect.String:
		return StringValue(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer %d overflows int64", u)
		}
		return IntValue(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FloatValue(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NullValue(), nil
		}
		l := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			e, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			l = append(l, e)
		}
		return Value{kind: KindList, l: l}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		if rv.IsNil() {
			return NullValue(), nil
		}
		m := make(Attributes, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			e, err := ValueOf(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", iter.Key().String(), err)
			}
			m[iter.Key().String()] = e
		}
		return MapValue(m), nil
	}

	return Value{}, fmt.Errorf("unsupported value type %T", in)
}

// Attributes is the open-ended attribute bag of a cloud resource, keyed by the backend's field names.
type Attributes map[string]Value

// AttributesFromMap converts unstructured data into Attributes.
func AttributesFromMap(in map[string]any) (Attributes, error) {
	out := make(Attributes, len(in))
	for k, raw := range in {
		v, err := ValueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Get returns the attribute with the given name.
func (a Attributes) Get(name string) (Value, bool) {
	v, ok := a[name]
	return v, ok
}

// GetString returns the string attribute with the given name, or "" if it is absent or not a string.
func (a Attributes) GetString(name string) string {
	s, _ := a[name].Str()
	return s
}

// Keys returns the attribute names in lexical order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Interface converts a into a plain map.
func (a Attributes) Interface() map[string]any {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = v.Interface()
	}
	return out
}

// Equal reports whether a and o hold equal values under the same names.
func (a Attributes) Equal(o Attributes) bool {
	if len(a) != len(o) {
		return false
	}
	for k, v := range a {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
