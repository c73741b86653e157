// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jwcc scans JSON With Commas and Comments (JWCC) as defined by
// https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// The input is first reduced to standard JSON by replacing comments and
// trailing commas with spaces, so byte offsets reported by the scanner are
// valid offsets into the original input.
package jwcc

import (
	"bytes"
	"fmt"

	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/ast"
	"github.com/tailscale/hujson"
)

// Standardize returns a copy of data with comments and trailing commas
// replaced by whitespace. Unlike the scanner, Standardize checks the syntax
// of its input and reports an error if data is not valid JWCC.
// The contents of data are not modified.
func Standardize(data []byte) ([]byte, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, fmt.Errorf("standardize: %w", err)
	}
	return std, nil
}

// Scan standardizes data and scans the result with the settings from cfg,
// reporting events to l.
func Scan(cfg pjson.Config, data []byte, l pjson.Listener) error {
	std, err := Standardize(data)
	if err != nil {
		return err
	}
	return cfg.ScanAll(std, l)
}

// Parse standardizes data and returns the value it contains, with bare tokens
// converted to integers as by ast.Parse.
func Parse(data []byte) (ast.Value, error) {
	std, err := Standardize(data)
	if err != nil {
		return nil, err
	}
	return ast.Parse(std)
}
