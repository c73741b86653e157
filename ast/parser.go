// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/pjson"

// numeric is the configuration used by Parse and ParseRange.
var numeric = pjson.Config{Numbers: true}

// Parse scans all of data and returns the value it contains, with bare tokens
// converted to integers.
func Parse(data []byte) (Value, error) {
	return ParseConfig(numeric, data, 0, len(data))
}

// ParseRange scans length bytes of data beginning at offset start, and
// returns the value they contain, with bare tokens converted to integers.
func ParseRange(data []byte, start, length int) (Value, error) {
	return ParseConfig(numeric, data, start, length)
}

// ParseConfig scans length bytes of data beginning at offset start using the
// settings from cfg, and returns the value they contain. If the scan fails,
// any partial value is discarded.
func ParseConfig(cfg pjson.Config, data []byte, start, length int) (Value, error) {
	var b Builder
	if err := cfg.Scan(data, start, length, &b); err != nil {
		return nil, err
	}
	return b.Result()
}
