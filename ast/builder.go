// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"github.com/creachadair/mds/stack"
	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/internal/escape"
	"go4.org/mem"
)

// ErrNoValue is reported by Builder.Result when no value was built.
var ErrNoValue = errors.New("no value in input")

// A Builder implements the pjson.Listener interface to construct a Value from
// the events of a scan. A Builder is good for one scan; construct a new one
// for each input. It is not safe for concurrent use.
//
// Objects do not enforce unique keys: if a key repeats, the later value
// replaces the earlier one in its original position.
type Builder struct {
	stk  stack.Stack[*frame]
	root Value
}

// A frame is an open container. For objects, key holds a key whose value has
// not been seen yet.
type frame struct {
	obj    Object
	arr    Array
	isObj  bool
	key    string
	hasKey bool
	index  map[string]int // object member offsets by key
}

// Value returns the completed root value. It is only meaningful once the scan
// has returned; while any container is open it reports nil.
func (b *Builder) Value() Value {
	if !b.stk.IsEmpty() {
		return nil
	}
	return b.root
}

// Result returns the completed root value, or an error if the input was
// incomplete or empty.
func (b *Builder) Result() (Value, error) {
	if n := b.stk.Len(); n != 0 {
		return nil, fmt.Errorf("incomplete value (%d unclosed)", n)
	} else if b.root == nil {
		return nil, ErrNoValue
	}
	return b.root, nil
}

// wantKey reports whether the next scalar is an object key.
func (b *Builder) wantKey() bool {
	f := b.stk.Top()
	return f != nil && f.isObj && !f.hasKey
}

func (b *Builder) setKey(key string) {
	f := b.stk.Top()
	f.key, f.hasKey = key, true
}

// reduce inserts v into the open container atop the stack, or makes it the
// root if there is none.
func (b *Builder) reduce(v Value) error {
	f := b.stk.Top()
	if f == nil {
		if b.root != nil {
			return errors.New("multiple root values")
		}
		b.root = v
		return nil
	}
	if !f.isObj {
		f.arr = append(f.arr, v)
		return nil
	} else if !f.hasKey {
		return fmt.Errorf("object key must be a string, not %T", v)
	}
	if i, ok := f.index[f.key]; ok {
		f.obj[i].Value = v
	} else {
		f.index[f.key] = len(f.obj)
		f.obj = append(f.obj, &Member{Key: f.key, Value: v})
	}
	f.key, f.hasKey = "", false
	return nil
}

// ObjectStart implements part of the pjson.Listener interface.
func (b *Builder) ObjectStart() error {
	b.stk.Push(&frame{obj: Object{}, isObj: true, index: make(map[string]int)})
	return nil
}

// ObjectEnd implements part of the pjson.Listener interface.
func (b *Builder) ObjectEnd() error {
	f := b.stk.Top()
	if f == nil || !f.isObj {
		return errors.New("unexpected end of object")
	}
	b.stk.Pop()
	if f.hasKey {
		return fmt.Errorf("missing value for key %q", f.key)
	}
	return b.reduce(f.obj)
}

// ArrayStart implements part of the pjson.Listener interface.
func (b *Builder) ArrayStart() error {
	b.stk.Push(&frame{arr: Array{}})
	return nil
}

// ArrayEnd implements part of the pjson.Listener interface.
func (b *Builder) ArrayEnd() error {
	f := b.stk.Top()
	if f == nil || f.isObj {
		return errors.New("unexpected end of array")
	}
	b.stk.Pop()
	return b.reduce(f.arr)
}

// String implements part of the pjson.Listener interface. Object keys are
// unescaped; string values keep the text of the input.
func (b *Builder) String(text pjson.Text) error {
	if b.wantKey() {
		key, err := escape.Unquote(mem.S(text.String()))
		if err != nil {
			return fmt.Errorf("object key at %v: %w", text.Span(), err)
		}
		b.setKey(string(key))
		return nil
	}
	return b.reduce(String(text.String()))
}

// Number implements part of the pjson.Listener interface. A number in key
// position is keyed by its decimal text.
func (b *Builder) Number(n pjson.Number) error {
	if b.wantKey() {
		b.setKey(n.String())
		return nil
	} else if n.Wide() {
		return b.reduce(Int64(n.Int64()))
	}
	return b.reduce(Int32(n.Int32()))
}
