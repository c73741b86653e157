// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over values built by the ast package.
package cursor

import (
	"fmt"

	"github.com/creachadair/pjson/ast"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method. This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of an ast.Value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value. If the path cannot be completely consumed, traversal stops
// at the last value reached and an error is recorded; use Err to recover it.
//
// A string element selects the member of an object with that key. If it is
// the last element of the path, the *ast.Member is the result; otherwise
// traversal continues from the member's value. A nil element steps from a
// member to its value.
//
// An int element selects an element of an array or a member of an object by
// offset. Negative offsets count backward from the end (-1 is last).
//
// A function element with signature
//
//	func(ast.Value) (ast.Value, error)
//
// is called with the current value and its result becomes the next value.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		if m, ok := cur.(*ast.Member); ok {
			cur = c.push(m.Value)
		}

		switch t := elt.(type) {
		case string:
			obj, ok := cur.(ast.Object)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, t)
			}
			m := obj.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(m)

		case int:
			var n int
			var get func(int) ast.Value
			switch e := cur.(type) {
			case ast.Array:
				n, get = len(e), func(i int) ast.Value { return e[i] }
			case ast.Object:
				n, get = len(e), func(i int) ast.Value { return e[i] }
			default:
				return c.setErrorf("cannot traverse %T with %d", cur, t)
			}
			i, ok := fixBound(n, t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", t, n)
			}
			cur = c.push(get(i))

		case func(ast.Value) (ast.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Nothing to do; a trailing member was already resolved above.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
