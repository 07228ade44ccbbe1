package validator

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Type identifies which variant a Value holds.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeString
	TypeOther
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "boolean"
	case TypeInt:
		return "integer"
	case TypeString:
		return "string"
	default:
		return "other"
	}
}

// Value is a dynamically typed scalar: null, boolean, integer, string or any
// other value. The zero Value is null.
type Value struct {
	typ   Type
	b     bool
	i     int64
	s     string
	other any
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{typ: TypeBool, b: b} }

func Int(i int64) Value { return Value{typ: TypeInt, i: i} }

func String(s string) Value { return Value{typ: TypeString, s: s} }

// Other wraps a value that is none of the supported scalar types.
func Other(v any) Value { return Value{typ: TypeOther, other: v} }

// Of converts a decoded Go value into a Value.
//
// Signed integers, unsigned integers that fit into int64 and json.Number
// values holding an integer literal become Int. Floats are never integers,
// even when integral. Pointers are dereferenced and a nil pointer is null;
// chains deeper than a few levels, including cycles, are Other.
// Numeric strings stay strings.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return fromUint(uint64(x), v)
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return fromUint(x, v)
	case json.Number:
		if i, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return Int(i)
		}
		return Other(x)
	}

	return fromPointer(v)
}

// maxPointerDepth bounds dereferencing so pointer cycles end as Other.
const maxPointerDepth = 8

func fromPointer(v any) Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return Other(v)
	}
	for range maxPointerDepth {
		if rv.IsNil() {
			return Null()
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Pointer {
			return Of(rv.Interface())
		}
	}
	return Other(v)
}

func fromUint(u uint64, raw any) Value {
	if u > math.MaxInt64 {
		return Other(raw)
	}
	return Int(int64(u))
}

func (v Value) Type() Type { return v.typ }

func (v Value) IsNull() bool { return v.typ == TypeNull }

// Interface returns the underlying Go value: nil, bool, int64, string or the
// wrapped other value.
func (v Value) Interface() any {
	switch v.typ {
	case TypeBool:
		return v.b
	case TypeInt:
		return v.i
	case TypeString:
		return v.s
	case TypeOther:
		return v.other
	default:
		return nil
	}
}
