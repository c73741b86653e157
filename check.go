// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import (
	"fmt"

	"github.com/creachadair/mds/stack"
)

// A Checker is a Listener that verifies that objects and arrays are correctly
// nested before forwarding events to another Listener. The scanner itself
// does not track nesting; wrap a listener in a Checker to reject unbalanced
// input at the first offending bracket.
type Checker struct {
	next  Listener           // may be nil
	stk   stack.Stack[Token] // open containers
	index int                // count of events seen
}

// NewChecker constructs a Checker that forwards events to l. If l == nil,
// events are checked and then discarded.
func NewChecker(l Listener) *Checker { return &Checker{next: l} }

// Depth reports the number of containers currently open.
func (c *Checker) Depth() int { return c.stk.Len() }

// Done reports an error if any containers remain open. Call it after the scan
// has returned.
func (c *Checker) Done() error {
	if n := c.stk.Len(); n != 0 {
		return c.errorf("%d unclosed %s", n, c.stk.Top())
	}
	return nil
}

func (c *Checker) open(tok Token, f func() error) error {
	c.index++
	c.stk.Push(tok)
	if c.next == nil {
		return nil
	}
	return f()
}

func (c *Checker) close(want Token, f func() error) error {
	c.index++
	got, ok := c.stk.Peek(0)
	if !ok {
		return c.errorf("unexpected %s at top level", closerOf(want))
	} else if got != want {
		return c.errorf("unexpected %s closing %s", closerOf(want), got)
	}
	c.stk.Pop()
	if c.next == nil {
		return nil
	}
	return f()
}

func (c *Checker) value(f func() error) error {
	c.index++
	if c.next == nil {
		return nil
	}
	return f()
}

// ObjectStart implements part of the Listener interface.
func (c *Checker) ObjectStart() error {
	return c.open(ObjectStart, func() error { return c.next.ObjectStart() })
}

// ObjectEnd implements part of the Listener interface.
func (c *Checker) ObjectEnd() error {
	return c.close(ObjectStart, func() error { return c.next.ObjectEnd() })
}

// ArrayStart implements part of the Listener interface.
func (c *Checker) ArrayStart() error {
	return c.open(ArrayStart, func() error { return c.next.ArrayStart() })
}

// ArrayEnd implements part of the Listener interface.
func (c *Checker) ArrayEnd() error {
	return c.close(ArrayStart, func() error { return c.next.ArrayEnd() })
}

// String implements part of the Listener interface.
func (c *Checker) String(text Text) error {
	return c.value(func() error { return c.next.String(text) })
}

// Number implements part of the Listener interface.
func (c *Checker) Number(n Number) error {
	return c.value(func() error { return c.next.Number(n) })
}

func (c *Checker) errorf(msg string, args ...any) error {
	return &BalanceError{Index: c.index, Message: fmt.Sprintf(msg, args...)}
}

func closerOf(open Token) Token {
	if open == ObjectStart {
		return ObjectEnd
	}
	return ArrayEnd
}

// BalanceError is the concrete type of errors reported by a Checker.
type BalanceError struct {
	Index   int // 1-based index of the offending event
	Message string
}

// Error satisfies the error interface.
func (b *BalanceError) Error() string {
	return fmt.Sprintf("at event %d: %s", b.Index, b.Message)
}
