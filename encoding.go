// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import (
	"github.com/creachadair/pjson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unescape decodes the escape sequences in the text of a string value. The
// scanner reports strings without their quotation marks but otherwise
// undecoded, so listeners that need the plain string call Unescape.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unescape
// reports an error for an incomplete escape sequence.
func Unescape(text Text) ([]byte, error) { return escape.Unquote(text.Mem()) }
