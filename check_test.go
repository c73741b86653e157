// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson_test

import (
	"errors"
	"testing"

	"github.com/creachadair/pjson"
	"github.com/google/go-cmp/cmp"
)

func TestChecker(t *testing.T) {
	tests := []struct {
		input string
		want  string // trace of forwarded events
		estr  string // error from Scan or Done, or "" for success
	}{
		{`{}`, "ObjectStart\nObjectEnd", ""},
		{`[{"a":[]}]`, `
ArrayStart
ObjectStart
String "a"
ArrayStart
ArrayEnd
ObjectEnd
ArrayEnd`, ""},

		{`]`, ``, `at event 1: unexpected ArrayEnd at top level`},
		{`[}`, `ArrayStart`, `at event 2: unexpected ObjectEnd closing ArrayStart`},
		{`{"a":[1}`, `
ObjectStart
String "a"
ArrayStart
String "1"`, `at event 5: unexpected ObjectEnd closing ArrayStart`},
		{`{[`, "ObjectStart\nArrayStart", `at event 2: 2 unclosed ArrayStart`},
	}
	for _, test := range tests {
		var rec pjson.Recorder
		c := pjson.NewChecker(&rec)
		err := pjson.Scan([]byte(test.input), 0, len(test.input), c)
		if err == nil {
			err = c.Done()
		}
		if test.estr == "" {
			if err != nil {
				t.Errorf("Input %#q: unexpected error: %v", test.input, err)
			}
		} else {
			var berr *pjson.BalanceError
			if !errors.As(err, &berr) {
				t.Errorf("Input %#q: got error %v, want *BalanceError", test.input, err)
			} else if diff := cmp.Diff(test.estr, err.Error()); diff != "" {
				t.Errorf("Input %#q: error (-want, +got)\n%s", test.input, diff)
			}
		}
		if diff := diffStrings(test.want, trace(rec.Events)); diff != "" {
			t.Errorf("Input %#q: output (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestCheckerNil(t *testing.T) {
	c := pjson.NewChecker(nil)
	const input = `{"a":[1,2,{"b":3}]}`
	if err := numeric.ScanAll([]byte(input), c); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if err := c.Done(); err != nil {
		t.Errorf("Done: unexpected error: %v", err)
	}
	if c.Depth() != 0 {
		t.Errorf("Depth: got %d, want 0", c.Depth())
	}
}

func TestQuoteUnescape(t *testing.T) {
	if got, want := pjson.Quote("a\"b\\c\n\x01"), `"a\"b\\c\n\u0001"`; got != want {
		t.Errorf("Quote: got %s, want %s", got, want)
	}

	var rec pjson.Recorder
	var got []string
	l := &unescaper{rec: &rec, out: &got}
	const input = `["tab\there", "A\/x", "plain"]`
	if err := pjson.Scan([]byte(input), 0, len(input), l); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if diff := cmp.Diff([]string{"tab\there", "A/x", "plain"}, got); diff != "" {
		t.Errorf("Unescape: (-want, +got)\n%s", diff)
	}
}

// unescaper records the unescaped text of each string.
type unescaper struct {
	rec *pjson.Recorder
	out *[]string
}

func (u *unescaper) ObjectStart() error { return u.rec.ObjectStart() }
func (u *unescaper) ObjectEnd() error   { return u.rec.ObjectEnd() }
func (u *unescaper) ArrayStart() error  { return u.rec.ArrayStart() }
func (u *unescaper) ArrayEnd() error    { return u.rec.ArrayEnd() }
func (u *unescaper) Number(n pjson.Number) error {
	return u.rec.Number(n)
}

func (u *unescaper) String(text pjson.Text) error {
	dec, err := pjson.Unescape(text)
	if err != nil {
		return err
	}
	*u.out = append(*u.out, string(dec))
	return nil
}
