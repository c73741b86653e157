// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/ast"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		{`{}`, ast.Object{}},
		{`[]`, ast.Array{}},
		{`"solo"`, ast.String("solo")},
		{`{"a":123}`, ast.Object{ast.Field("a", ast.Int32(123))}},
		{`[1,2,3]`, ast.Array{ast.Int32(1), ast.Int32(2), ast.Int32(3)}},
		{`{"small":123456789,"big":12345678901}`, ast.Object{
			ast.Field("small", ast.Int32(123456789)),
			ast.Field("big", ast.Int64(12345678901)),
		}},
		{`{"n":null}`, ast.Object{ast.Field("n", ast.String("null"))}},
		{`{"a":[{"b":"c"},[]],"d":{}}`, ast.Object{
			ast.Field("a", ast.Array{
				ast.Object{ast.Field("b", ast.String("c"))},
				ast.Array{},
			}),
			ast.Field("d", ast.Object{}),
		}},
		{`{ "a" : 1 , "b" : [ 2 , 3 ] }`, ast.Object{
			ast.Field("a", ast.Int32(1)),
			ast.Field("b", ast.Array{ast.Int32(2), ast.Int32(3)}),
		}},

		// A repeated key replaces the earlier value in place.
		{`{"k":1,"j":2,"k":3}`, ast.Object{
			ast.Field("k", ast.Int32(3)),
			ast.Field("j", ast.Int32(2)),
		}},

		// Strings are kept byte-exact, escapes and all.
		{`["a\"b"]`, ast.Array{ast.String(`a\"b`)}},

		// Keys are unescaped; values keep their escapes.
		{`{"a\"b":"x\ny"}`, ast.Object{ast.Field("a\"b", "x\ny")}},
	}
	for _, test := range tests {
		got, err := ast.Parse([]byte(test.input))
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse %#q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, "no value in input"},
		{`{"a":1`, "incomplete value (1 unclosed)"},
		{`[[]`, "incomplete value (1 unclosed)"},
		{`}`, "unexpected end of object"},
		{`[}`, "unexpected end of object"},
		{`{]`, "unexpected end of array"},
		{`{"a"}`, `missing value for key "a"`},
		{`{{}:1}`, "object key must be a string, not ast.Object"},
		{`{}[]`, "multiple root values"},
		{`{"a":true}`, `at offset 5: invalid 32-bit integer "true"`},
		{`{"a":1.5}`, `at offset 5: invalid 32-bit integer "1.5"`},
	}
	for _, test := range tests {
		v, err := ast.Parse([]byte(test.input))
		if err == nil {
			t.Errorf("Parse %#q: got %s, wanted error", test.input, v.JSON())
			continue
		}
		if diff := cmp.Diff(test.want, err.Error()); diff != "" {
			t.Errorf("Parse %#q: error (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseNoValue(t *testing.T) {
	_, err := ast.Parse([]byte("   "))
	if !errors.Is(err, ast.ErrNoValue) {
		t.Errorf("Parse blank: got %v, want %v", err, ast.ErrNoValue)
	}
}

func TestParseRange(t *testing.T) {
	const input = `xxx{"a":[1,2]}yyy`
	v, err := ast.ParseRange([]byte(input), 3, 11)
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if got, want := v.JSON(), `{"a":[1,2]}`; got != want {
		t.Errorf("ParseRange: got %s, want %s", got, want)
	}

	_, err = ast.ParseRange([]byte(input), 10, 20)
	var serr *pjson.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("ParseRange out of bounds: got %v, want *SyntaxError", err)
	}
}

func TestParseConfig(t *testing.T) {
	const input = `{"a":123,"b":[45]}`
	v, err := ast.ParseConfig(pjson.Config{}, []byte(input), 0, len(input))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := ast.Object{
		ast.Field("a", ast.String("123")),
		ast.Field("b", ast.Array{ast.String("45")}),
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("ParseConfig: (-want, +got)\n%s", diff)
	}
}

// Well-formed documents with only objects, arrays, strings, and integers
// render back to their compacted input.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`{}`,
		`[]`,
		`{"a":1}`,
		`[-1, 0, 2147483647, -99999999999]`,
		`{
  "name": "pjson",
  "tags": ["scan", "parse"],
  "nested": {"deep": [[1], [2, [3]], {}]},
  "ids": [12345678901, 42]
}`,
		`[{"x":1,"y":"two"},{"x":3,"y":"four"}]`,

		// Escaped strings render with the same meaning they were read with.
		`["a\"b"]`,
		`{"k":"x\ny"}`,
		`["a\\b"]`,
		`{"tab\there":"\"quoted\"", "q\"k": ["x\\y", "\r\n"]}`,
	}
	for _, input := range inputs {
		v, err := ast.Parse([]byte(input))
		if err != nil {
			t.Errorf("Parse %#q: %v", input, err)
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, []byte(input)); err != nil {
			t.Fatalf("Compact %#q: %v", input, err)
		}
		if diff := cmp.Diff(buf.String(), v.JSON()); diff != "" {
			t.Errorf("Round trip %#q: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestBuilderValue(t *testing.T) {
	var b ast.Builder
	if b.Value() != nil {
		t.Errorf("Value before scan: got %v, want nil", b.Value())
	}
	if err := b.ObjectStart(); err != nil {
		t.Fatalf("ObjectStart: %v", err)
	}
	if b.Value() != nil {
		t.Errorf("Value with open object: got %v, want nil", b.Value())
	}
	if err := b.ObjectEnd(); err != nil {
		t.Fatalf("ObjectEnd: %v", err)
	}
	if diff := cmp.Diff(ast.Value(ast.Object{}), b.Value()); diff != "" {
		t.Errorf("Value: (-want, +got)\n%s", diff)
	}
}
