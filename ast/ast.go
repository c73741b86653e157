// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines generic JSON values, and a Builder that assembles them
// from the events of a pjson scan.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/pjson/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string
}

// An Object is an ordered collection of key-value members. Members are kept
// in the order their keys first appeared in the input.
type Object []*Member

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Set sets the value of the member of o with the given key, adding a new
// member at the end if there is none.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	*o = append(*o, &Member{Key: key, Value: v})
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value is converted as by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// JSON satisfies the Value interface.
func (m *Member) JSON() string {
	return string(escape.Quote(mem.S(m.Key))) + ":" + m.Value.JSON()
}

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A String is a string value, held in escaped form without its enclosing
// quotation marks. Strings built from scanner events hold the text of the
// input exactly. ToValue and Field escape Go strings to this form.
type String string

// JSON satisfies the Value interface. Escape sequences are decoded and the
// result re-encoded, so equivalent strings render the same way.
func (s String) JSON() string {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		dec = []byte(s) // incomplete escape at the end; quote the text as-is
	}
	return string(escape.Quote(mem.B(dec)))
}

// Text returns a String holding the escaped form of the Go string s.
func Text(s string) String {
	q := escape.Quote(mem.S(s))
	return String(q[1 : len(q)-1])
}

// Unescape decodes the escape sequences in s.
// It panics if s ends in an incomplete escape sequence.
func (s String) Unescape() string {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		panic(err)
	}
	return string(dec)
}

// An Int32 is an integer converted from a token shorter than the narrow width.
type Int32 int32

// JSON satisfies the Value interface.
func (z Int32) JSON() string { return strconv.FormatInt(int64(z), 10) }

// An Int64 is an integer converted from a token at least as long as the
// narrow width.
type Int64 int64

// JSON satisfies the Value interface.
func (z Int64) JSON() string { return strconv.FormatInt(int64(z), 10) }

// ToValue converts a Go value into a Value. Strings are escaped into String,
// integers
// become Int32 if they fit in 32 bits and Int64 otherwise, slices become
// Array, and members become an Object. A Value is returned unchanged.
// ToValue panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return Text(t)
	case int:
		return intValue(int64(t))
	case int32:
		return Int32(t)
	case int64:
		return intValue(t)
	case []any:
		arr := make(Array, len(t))
		for i, e := range t {
			arr[i] = ToValue(e)
		}
		return arr
	case []*Member:
		return Object(t)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

func intValue(v int64) Value {
	if int64(int32(v)) == v {
		return Int32(v)
	}
	return Int64(v)
}
