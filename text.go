// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"go4.org/mem"
	"golang.org/x/text/encoding/charmap"
)

// Text is a read-only view of a span of the input buffer. A Text passed to a
// Listener is only valid for the duration of that call; use String or Copy to
// retain its contents.
type Text struct {
	ro   mem.RO
	span Span
}

func newText(data []byte, pos, end int) Text {
	return Text{ro: mem.B(data[pos:end]), span: Span{Pos: pos, End: end}}
}

// Span returns the location of t in the input.
func (t Text) Span() Span { return t.span }

// Len reports the length of t in bytes.
func (t Text) Len() int { return t.ro.Len() }

// Mem returns a read-only view of the undecoded bytes of t. The view aliases
// the input buffer.
func (t Text) Mem() mem.RO { return t.ro }

// Copy returns a copy of the undecoded bytes of t.
func (t Text) Copy() []byte {
	buf := make([]byte, t.ro.Len())
	t.ro.Copy(buf)
	return buf
}

// Equal reports whether the bytes of t are exactly s.
func (t Text) Equal(s string) bool { return t.ro.EqualString(s) }

// String decodes t into a new string, treating each byte as a single
// character in the range 0-255 (ISO 8859-1). Multi-byte encodings such as
// UTF-8 are not decoded.
func (t Text) String() string { return latin1(t.ro) }

func latin1(m mem.RO) string {
	s := m.StringCopy()
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return decodeLatin1(s)
		}
	}
	return s
}

func decodeLatin1(s string) string {
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		panic(fmt.Sprintf("decode ISO 8859-1: %v", err)) // every byte is mapped
	}
	return out
}

// A Number is an integer converted from a bare token. Tokens shorter than the
// configured narrow width become 32-bit values, others 64-bit values.
type Number struct {
	v    int64
	wide bool
	span Span
}

// Int64 returns the value of n.
func (n Number) Int64() int64 { return n.v }

// Int32 returns the value of n truncated to 32 bits.
func (n Number) Int32() int32 { return int32(n.v) }

// Wide reports whether n was converted as a 64-bit integer.
func (n Number) Wide() bool { return n.wide }

// Bits reports the width of n in bits, either 32 or 64.
func (n Number) Bits() int {
	if n.wide {
		return 64
	}
	return 32
}

// Span returns the location of the token n was converted from.
func (n Number) Span() Span { return n.span }

func (n Number) String() string { return strconv.FormatInt(n.v, 10) }

// Config carries settings for a scan. A zero Config is ready for use, and
// reports every bare token as a string, trimmed of surrounding whitespace.
// A Config is a plain value and may be shared by concurrent scans.
type Config struct {
	// Convert bare tokens to integers and report them via Number. The bare
	// literal null is still reported as the string "null".
	Numbers bool

	// Report bare tokens byte-exact, without trimming whitespace.
	Verbatim bool

	// Treat a quote as escaped only if it follows an odd number of
	// backslashes. By default only the immediately preceding byte is checked,
	// so a string ending in an escaped backslash ("a\\") is not closed.
	EscapeRuns bool

	// Tokens shorter than this many bytes convert to 32-bit integers, longer
	// ones to 64-bit integers. If zero, 10 is used.
	NarrowDigits int
}

const defaultNarrowDigits = 10

func (c Config) narrowDigits() int {
	if c.NarrowDigits > 0 {
		return c.NarrowDigits
	}
	return defaultNarrowDigits
}

var nullText = mem.S("null")

// flush reports the bare token spanning data[pos:end] to l. A span that is
// empty or all whitespace is not a token, and is discarded.
func (c Config) flush(data []byte, pos, end int, l Listener) error {
	tpos, tend := trimSpace(data, pos, end)
	if tpos == tend {
		return nil
	}
	if !c.Verbatim {
		pos, end = tpos, tend
	}
	text := newText(data, pos, end)
	if !c.Numbers || text.ro.Equal(nullText) {
		return l.String(text)
	}
	n, err := c.number(text)
	if err != nil {
		return err
	}
	return l.Number(n)
}

func (c Config) number(t Text) (Number, error) {
	bits := 64
	if t.Len() < c.narrowDigits() {
		bits = 32
	}
	v, err := mem.ParseInt(t.ro, 10, bits)
	if err != nil {
		return Number{}, &SyntaxError{
			Pos:     t.span.Pos,
			Message: fmt.Sprintf("invalid %d-bit integer %q", bits, t.String()),
			err:     err,
		}
	}
	return Number{v: v, wide: bits == 64, span: t.span}, nil
}

func trimSpace(data []byte, pos, end int) (int, int) {
	for pos < end && isSpace[data[pos]] {
		pos++
	}
	for end > pos && isSpace[data[end-1]] {
		end--
	}
	return pos, end
}

var isSpace = [256]bool{' ': true, '\t': true, '\r': true, '\n': true}
