// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package pjson implements a minimal single-pass scanner for JSON text held
// in memory.
//
// # Scanning
//
// The scanner makes one forward pass over a byte buffer and reports what it
// finds to a Listener, rather than building a value itself:
//
//	cfg := pjson.Config{Numbers: true}
//	if err := cfg.Scan(data, 0, len(data), listener); err != nil {
//	   log.Fatalf("Scan failed: %v", err)
//	}
//
// Scan returns nil once the range is exhausted. It does not validate the
// grammar of its input: malformed JSON is not guaranteed to be rejected.
//
// # Listeners
//
// The methods of a Listener correspond to the events of the scan:
//
//	Event      | Method                   | Reported for
//	---------- | ------------------------ | ---------------------------------
//	object     | ObjectStart, ObjectEnd   | { ... }
//	array      | ArrayStart, ArrayEnd     | [ ... ]
//	string     | String                   | "text", or a bare token
//	number     | Number                   | a bare token, if Config.Numbers
//
// Strings are reported without their quotation marks, and escape sequences
// are not decoded (see Unescape). A bare token is an unquoted value such as
// 123 or null, ending at a comma or a closing bracket. With Config.Numbers
// set, bare tokens shorter than ten bytes are converted to 32-bit integers
// and longer tokens to 64-bit integers; the literal null is reported as the
// string "null".
//
// The Text passed to Listener.String is a view of the input buffer, and is
// only valid for the duration of the call.
//
// The scanner does not track nesting, so it does not notice unbalanced
// brackets. Listeners that need nesting keep their own stack. A Checker wraps
// another Listener and rejects unbalanced input. The ast package provides a
// Builder that assembles a generic value from the events.
//
// # Limitations
//
// A quote is treated as escaped if the byte before it is a backslash, so a
// string whose last character is an escaped backslash is not closed. Set
// Config.EscapeRuns to count the whole run of backslashes instead.
//
// Each byte of input is decoded as one character (ISO 8859-1). Numbers with
// fractions or exponents cannot be converted.
package pjson
