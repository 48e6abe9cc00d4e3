// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson_test

import (
	"errors"
	"testing"

	"github.com/creachadair/cjson"
	"github.com/google/go-cmp/cmp"
)

func sym(r rune) cjson.Token { return cjson.Token{Kind: cjson.Symbol, Value: r} }
func str(s string) cjson.Token { return cjson.Token{Kind: cjson.String, Value: s} }
func num(v any) cjson.Token { return cjson.Token{Kind: cjson.Number, Value: v} }
func boolean(v bool) cjson.Token { return cjson.Token{Kind: cjson.Boolean, Value: v} }

var null = cjson.Token{Kind: cjson.Null}

// customSyntax describes a syntax unlike JSON: arrays use angle brackets,
// objects use parentheses, strings use single quotes, and only space and
// newline are whitespace.
var customSyntax = map[string]any{
	"symbols": map[string]any{
		"comma": ";", "colon": "=",
		"left_bracket": "<", "right_bracket": ">",
		"left_brace": "(", "right_brace": ")",
		"quote": "single",
	},
	"whitespace": []any{`\u0020`, `\n`},
	"boolean":    map[string]any{"true": "yes", "false": "no"},
	"null":       "void",
}

func TestLex(t *testing.T) {
	tests := []struct {
		input string
		want  []cjson.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []cjson.Token{boolean(true), boolean(false), null}},

		// Punctuation
		{"{ [ ] } , :", []cjson.Token{
			sym('{'), sym('['), sym(']'), sym('}'), sym(','), sym(':'),
		}},

		// Strings keep their quotation marks and are not unescaped.
		{`"" "a b c" "a\tb"`, []cjson.Token{str(`""`), str(`"a b c"`), str(`"a\tb"`)}},
		{`"{[,:]}"`, []cjson.Token{str(`"{[,:]}"`)}},

		// Numbers
		{`0 -1 5139 2.5 1e5 -0.25`, []cjson.Token{
			num(int64(0)), num(int64(-1)), num(int64(5139)),
			num(2.5), num(1e5), num(-0.25),
		}},
		{`-4.20e69`, []cjson.Token{num(-4.20e69)}},

		// Mixed types
		{`{"a": true, "b":[null, 1, 0.5]}`, []cjson.Token{
			sym('{'),
			str(`"a"`), sym(':'), boolean(true), sym(','),
			str(`"b"`), sym(':'),
			sym('['), null, sym(','), num(int64(1)), sym(','), num(0.5), sym(']'),
			sym('}'),
		}},
		{`"a",1,true
       false["b"]
       `, []cjson.Token{
			str(`"a"`), sym(','), num(int64(1)), sym(','), boolean(true),
			boolean(false), sym('['), str(`"b"`), sym(']'),
		}},

		// A run of literal characters that is not a literal is discarded.
		{"[tru, false]", []cjson.Token{sym('['), sym(','), boolean(false), sym(']')}},
		{"nul", nil},
		{"truefalse", nil},
	}

	for _, test := range tests {
		got, err := cjson.Lex(test.input, nil)
		if err != nil {
			t.Errorf("Lex %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestLex_positions(t *testing.T) {
	const input = "{\"a\": 1,\n \"bc\": true}"
	toks, err := cjson.Lex(input, nil)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Pos.String()+" "+tok.String())
	}
	want := []string{
		`0:0 '{'`,
		`0:3 "a"`,
		`0:4 ':'`,
		`0:6 1`,
		`0:7 ','`,
		`1:4 "bc"`,
		`1:5 ':'`,
		`1:10 true`,
		`1:11 '}'`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Positions: (-want, +got)\n%s", diff)
	}
}

func TestLex_errors(t *testing.T) {
	tests := []struct {
		input string
		kind  cjson.ErrorKind
		pos   cjson.Pos
		text  string
	}{
		{`"abc`, cjson.ErrUnterminatedString, cjson.Pos{Line: 0, Column: 0}, ""},
		{"[1,\n  \"x", cjson.ErrUnterminatedString, cjson.Pos{Line: 1, Column: 2}, ""},
		{`[1, @]`, cjson.ErrUnknownToken, cjson.Pos{Line: 0, Column: 4}, "@"},
		{`{"a" = 1}`, cjson.ErrUnknownToken, cjson.Pos{Line: 0, Column: 5}, "="},
		{`'a'`, cjson.ErrUnknownToken, cjson.Pos{Line: 0, Column: 0}, "'"},
		{`1-2`, cjson.ErrBadNumber, cjson.Pos{Line: 0, Column: 2}, "1-2"},
		{`[1.2.3]`, cjson.ErrBadNumber, cjson.Pos{Line: 0, Column: 5}, "1.2.3"},
		{`-`, cjson.ErrBadNumber, cjson.Pos{Line: 0, Column: 0}, "-"},
		{`99999999999999999999`, cjson.ErrBadNumber, cjson.Pos{Line: 0, Column: 19}, "99999999999999999999"},
	}
	for _, test := range tests {
		toks, err := cjson.Lex(test.input, nil)
		if err == nil {
			t.Errorf("Lex %#q: got %v, want error", test.input, toks)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("Lex %#q: got %v, want %v", test.input, err, test.kind)
		}
		var lerr *cjson.LexError
		if !errors.As(err, &lerr) {
			t.Errorf("Lex %#q: got error %T, want *LexError", test.input, err)
			continue
		}
		if lerr.Pos != test.pos {
			t.Errorf("Lex %#q: error at %v, want %v", test.input, lerr.Pos, test.pos)
		}
		if lerr.Text != test.text {
			t.Errorf("Lex %#q: error text %q, want %q", test.input, lerr.Text, test.text)
		}
	}
}

func TestLex_custom(t *testing.T) {
	cfg := cjson.MustResolve(customSyntax, "")

	t.Run("Tokens", func(t *testing.T) {
		got, err := cjson.Lex("('a' = <1; yes>;\n 'b'= void)", cfg)
		if err != nil {
			t.Fatalf("Lex failed: %v", err)
		}
		want := []cjson.Token{
			sym('('),
			str(`'a'`), sym('='), sym('<'), num(int64(1)), sym(';'), boolean(true), sym('>'), sym(';'),
			str(`'b'`), sym('='), null,
			sym(')'),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Tokens: (-want, +got)\n%s", diff)
		}
	})

	t.Run("Whitespace", func(t *testing.T) {
		toks, err := cjson.Lex("(\t)", cfg)
		if !errors.Is(err, cjson.ErrUnknownToken) {
			t.Errorf("Lex: got %v, %v; want %v", toks, err, cjson.ErrUnknownToken)
		}
	})

	t.Run("Quotes", func(t *testing.T) {
		// The default quotation mark is not special in this syntax.
		toks, err := cjson.Lex(`"a"`, cfg)
		if !errors.Is(err, cjson.ErrUnknownToken) {
			t.Errorf("Lex: got %v, %v; want %v", toks, err, cjson.ErrUnknownToken)
		}
	})
}

func TestToken(t *testing.T) {
	tests := []struct {
		tok     cjson.Token
		want    any
		wantStr string
	}{
		{sym('{'), "{", `'{'`},
		{str(`"abc"`), "abc", `"abc"`},
		{str(`''`), "", `''`},
		{str(`"ü"`), "ü", `"ü"`},
		{num(int64(25)), int64(25), "25"},
		{num(0.5), 0.5, "0.5"},
		{boolean(false), false, "false"},
		{null, nil, "null"},
	}
	for _, test := range tests {
		if got := test.tok.Unwrap(); got != test.want {
			t.Errorf("Unwrap %v: got %#v, want %#v", test.tok, got, test.want)
		}
		if got := test.tok.String(); got != test.wantStr {
			t.Errorf("String: got %q, want %q", got, test.wantStr)
		}
	}

	if tok := sym(','); !tok.Is(',') || tok.Is(':') || !tok.IsSymbol(',') {
		t.Errorf("Token %v: symbol comparisons failed", tok)
	}
	if tok := str(`","`); tok.IsSymbol(',') {
		t.Errorf("Token %v should not be a symbol", tok)
	}
	if k := cjson.Kind(100); k.String() != "invalid token" {
		t.Errorf("Kind(100): got %q, want invalid token", k)
	}
}
