// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jwcc_test

import (
	"testing"

	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/jwcc"
	"github.com/google/go-cmp/cmp"

	_ "embed"
)

//go:embed testdata/basic.jwcc
var basicInput []byte

func TestParse(t *testing.T) {
	v, err := jwcc.Parse(basicInput)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	const want = `{"name":"basic","sizes":[1,2,3],"limits":{"max":12345678901,"min":-5},"tags":["x","y"]}`
	if diff := cmp.Diff(want, v.JSON()); diff != "" {
		t.Errorf("Parse: (-want, +got)\n%s", diff)
	}
}

func TestStandardize(t *testing.T) {
	const input = `[1, /* two */ 2, // done
]`
	orig := []byte(input)
	std, err := jwcc.Standardize(orig)
	if err != nil {
		t.Fatalf("Standardize: %v", err)
	}
	if len(std) != len(orig) {
		t.Errorf("Standardize: length changed from %d to %d", len(orig), len(std))
	}
	if string(orig) != input {
		t.Errorf("Standardize modified its input: %q", orig)
	}

	var rec pjson.Recorder
	if err := jwcc.Scan(pjson.Config{Numbers: true}, orig, &rec); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := rec.Count(pjson.NumberValue); got != 2 {
		t.Errorf("Scan: got %d numbers, want 2", got)
	}

	// Spans index the original input.
	last := rec.Events[2]
	if got := input[last.Span.Pos:last.Span.End]; got != "2" {
		t.Errorf("Span of last number: got %q, want %q", got, "2")
	}
}

func TestErrors(t *testing.T) {
	for _, input := range []string{
		`{"a":`,
		`[1 2]`,
		`/* unterminated`,
	} {
		if v, err := jwcc.Parse([]byte(input)); err == nil {
			t.Errorf("Parse %#q: got %s, wanted error", input, v.JSON())
		}
	}
}
