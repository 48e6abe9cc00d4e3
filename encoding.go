// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package cjson

import (
	"fmt"
	"strings"

	"github.com/creachadair/cjson/internal/escape"

	"go4.org/mem"
)

// QuoteLiteral encodes src as a double-quoted literal. Whitespace and
// non-printing characters are escaped, so the result is always a single word.
func QuoteLiteral(src string) string { return string(escape.Quote(mem.S(src), '"')) }

// UnquoteLiteral decodes a quoted literal. If src is enclosed in matching
// single or double quotation marks they are removed, then escape sequences
// are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune.
// UnquoteLiteral reports an error for an incomplete escape sequence.
func UnquoteLiteral(src string) (string, error) { return unquoteLiteral(src) }

func unquoteLiteral(src string) (string, error) {
	if len(src) >= 2 && (src[0] == '"' || src[0] == '\'') && src[len(src)-1] == src[0] {
		src = src[1 : len(src)-1]
	}
	dec, err := escape.Unquote(mem.S(src))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Document renders c as a configuration document in standard JSON syntax.
// Resolving the document yields a configuration equal to c, provided none of
// the configured characters is a quotation mark or backslash.
func (c *Config) Document() string {
	if c == nil {
		c = defaultConfig
	}
	quote := "double"
	if c.Symbols.Quote == '\'' {
		quote = "single"
	}
	var sb strings.Builder
	sb.WriteString("{\n  \"symbols\": {\n")
	for i, sym := range []struct {
		key string
		val string
	}{
		{"comma", string(c.Symbols.Comma)},
		{"colon", string(c.Symbols.Colon)},
		{"left_bracket", string(c.Symbols.LBracket)},
		{"right_bracket", string(c.Symbols.RBracket)},
		{"left_brace", string(c.Symbols.LBrace)},
		{"right_brace", string(c.Symbols.RBrace)},
		{"quote", quote},
	} {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, "    %q: \"%s\"", sym.key, sym.val)
	}
	sb.WriteString("\n  },\n  \"whitespace\": [")
	for i, ws := range c.Whitespace {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(QuoteLiteral(ws))
	}
	fmt.Fprintf(&sb, "],\n  \"boolean\": {\"true\": \"%s\", \"false\": \"%s\"},\n", c.True, c.False)
	fmt.Fprintf(&sb, "  \"null\": \"%s\",\n", c.Null)
	fmt.Fprintf(&sb, "  \"key_type\": \"%s\"\n}\n", c.KeyType)
	return sb.String()
}
