// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import (
	"fmt"
	"strconv"
)

// Token is the type of an event reported by the scanner.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid     Token = iota // invalid token
	ObjectStart              // left brace "{"
	ObjectEnd                // right brace "}"
	ArrayStart               // left square bracket "["
	ArrayEnd                 // right square bracket "]"
	StringValue              // quoted string or uninterpreted bare token
	NumberValue              // integer converted from a bare token
)

var tokenStr = [...]string{
	Invalid:     "invalid token",
	ObjectStart: "ObjectStart",
	ObjectEnd:   "ObjectEnd",
	ArrayStart:  "ArrayStart",
	ArrayEnd:    "ArrayEnd",
	StringValue: "String",
	NumberValue: "Number",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Listener receives events from a scan. If a method reports an error,
// scanning stops and that error is returned to the caller of Scan.
//
// The scanner does not check that objects and arrays are balanced; a
// Listener that cares must track nesting itself (see Checker).
type Listener interface {
	// Begin a new object.
	ObjectStart() error

	// End the most-recently-opened object.
	ObjectEnd() error

	// Begin a new array.
	ArrayStart() error

	// End the most-recently-opened array.
	ArrayEnd() error

	// Report a string value. The text of a quoted string excludes the quotes
	// and is not unescaped. The Text is only valid for the duration of the
	// call; the listener must copy anything it needs to retain.
	String(text Text) error

	// Report an integer converted from a bare token.
	Number(n Number) error
}

// An Event is a single recorded listener call.
type Event struct {
	Token  Token
	Span   Span
	Text   string // for StringValue
	Number Number // for NumberValue
}

func (e Event) String() string {
	switch e.Token {
	case StringValue:
		return fmt.Sprintf("String %s", strconv.Quote(e.Text))
	case NumberValue:
		return fmt.Sprintf("Number %s int%d", e.Number, e.Number.Bits())
	default:
		return e.Token.String()
	}
}

// A Recorder is a Listener that records the events it receives.
// A zero Recorder is ready for use.
type Recorder struct {
	Events []Event
}

func (r *Recorder) add(e Event) error { r.Events = append(r.Events, e); return nil }

// ObjectStart implements part of the Listener interface.
func (r *Recorder) ObjectStart() error { return r.add(Event{Token: ObjectStart}) }

// ObjectEnd implements part of the Listener interface.
func (r *Recorder) ObjectEnd() error { return r.add(Event{Token: ObjectEnd}) }

// ArrayStart implements part of the Listener interface.
func (r *Recorder) ArrayStart() error { return r.add(Event{Token: ArrayStart}) }

// ArrayEnd implements part of the Listener interface.
func (r *Recorder) ArrayEnd() error { return r.add(Event{Token: ArrayEnd}) }

// String implements part of the Listener interface.
func (r *Recorder) String(text Text) error {
	return r.add(Event{Token: StringValue, Span: text.Span(), Text: text.String()})
}

// Number implements part of the Listener interface.
func (r *Recorder) Number(n Number) error {
	return r.add(Event{Token: NumberValue, Span: n.Span(), Number: n})
}

// Count reports how many recorded events have the given token.
func (r *Recorder) Count(tok Token) int {
	var n int
	for _, e := range r.Events {
		if e.Token == tok {
			n++
		}
	}
	return n
}
