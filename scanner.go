// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import "fmt"

// Scan scans length bytes of data beginning at offset start, and reports the
// strings, numbers, and brackets it finds to l. It is shorthand for calling
// Scan on a zero Config, so bare tokens are reported as strings.
func Scan(data []byte, start, length int, l Listener) error {
	return Config{}.Scan(data, start, length, l)
}

// ScanAll scans all of data with the settings from c.
func (c Config) ScanAll(data []byte, l Listener) error {
	return c.Scan(data, 0, len(data), l)
}

// Scan scans length bytes of data beginning at offset start, and reports the
// strings, numbers, and brackets it finds to l using the settings from c.
// Events are delivered synchronously, in input order, before Scan returns.
//
// Scan makes a single pass over the input and does not validate the JSON
// grammar. In particular it does not check that brackets are balanced; that
// is left to the listener. A bare token still open at the end of the range,
// or an unterminated string, is not reported.
//
// If a method of l reports an error, scanning stops and Scan returns that
// error unmodified. A bare token that cannot be converted to an integer is
// reported as a *SyntaxError.
func (c Config) Scan(data []byte, start, length int, l Listener) error {
	if start < 0 || length < 0 || start > len(data) || length > len(data)-start {
		return &SyntaxError{
			Pos:     start,
			Message: fmt.Sprintf("range %d+%d is outside input of length %d", start, length, len(data)),
		}
	}

	var (
		inString bool // inside a quoted string
		bare     bool // a bare token may be pending from pos
		pos      int  // start offset of the current token
		run      int  // length of the run of backslashes before the current byte
	)
	end := start + length
	for i := start; i < end; i++ {
		b := data[i]
		if b == '\\' {
			run++
			continue
		}
		esc := run > 0
		if c.EscapeRuns {
			esc = run%2 == 1
		}
		run = 0

		if inString {
			if b == '"' && !esc {
				if err := l.String(newText(data, pos, i)); err != nil {
					return err
				}
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			if !esc {
				inString = true
				pos = i + 1
			}
			bare = false

		case ':':
			pos, bare = i+1, true

		case ',':
			if bare {
				if err := c.flush(data, pos, i, l); err != nil {
					return err
				}
			}
			pos, bare = i+1, true

		case '{':
			if err := l.ObjectStart(); err != nil {
				return err
			}
			bare = false

		case '[':
			if err := l.ArrayStart(); err != nil {
				return err
			}
			pos, bare = i+1, true

		case '}', ']':
			if bare {
				if err := c.flush(data, pos, i, l); err != nil {
					return err
				}
				bare = false
			}
			var err error
			if b == '}' {
				err = l.ObjectEnd()
			} else {
				err = l.ArrayEnd()
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// SyntaxError is the concrete type of errors reported by the scanner.
type SyntaxError struct {
	Pos     int // offset in the input, 0-based
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Pos, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
