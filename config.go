// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tailscale/hujson"
)

// KeyType selects the type of the keys of parsed objects.
type KeyType int

// Constants defining the valid KeyType values.
const (
	StringKeys KeyType = iota // keys are of type string
	AtomKeys                  // keys are of type Atom
)

func (k KeyType) String() string {
	if k == AtomKeys {
		return "symbol"
	}
	return "string"
}

// Symbols is the set of structural characters recognized by the lexer.
type Symbols struct {
	Comma    rune
	Colon    rune
	LBracket rune // opens an array
	RBracket rune // closes an array
	LBrace   rune // opens an object
	RBrace   rune // closes an object
	Quote    rune // delimits strings
}

// A Config describes the lexical conventions of the input. A Config must not
// be modified once it is in use; a resolved Config is safe for concurrent use
// by multiple goroutines.
type Config struct {
	Symbols    Symbols
	Whitespace []string // characters skipped between tokens
	True       string   // the literal for true
	False      string   // the literal for false
	Null       string   // the literal for null
	KeyType    KeyType
}

// Default returns a new copy of the default configuration, which describes
// standard JSON syntax with string keys.
func Default() *Config {
	return &Config{
		Symbols: Symbols{
			Comma:    ',',
			Colon:    ':',
			LBracket: '[',
			RBracket: ']',
			LBrace:   '{',
			RBrace:   '}',
			Quote:    '"',
		},
		Whitespace: []string{" ", "\t", "\n", "\r"},
		True:       "true",
		False:      "false",
		Null:       "null",
		KeyType:    StringKeys,
	}
}

var defaultConfig = Default()

// Equal reports whether c and d describe the same configuration.
func (c *Config) Equal(d *Config) bool {
	if c == nil || d == nil {
		return c == d
	}
	return c.Symbols == d.Symbols &&
		slices.Equal(c.Whitespace, d.Whitespace) &&
		c.True == d.True && c.False == d.False && c.Null == d.Null &&
		c.KeyType == d.KeyType
}

// Names of configuration settings, in canonical form.
var (
	topKeys     = []string{"symbols", "whitespace", "boolean", "null", "key_type"}
	symbolKeys  = []string{"comma", "colon", "left_bracket", "right_bracket", "left_brace", "right_brace", "quote"}
	booleanKeys = []string{"true", "false"}
)

// Resolve constructs a configuration from an explicit mapping of overrides, a
// configuration document, both, or neither. If neither is given, Resolve
// returns the default configuration.
//
// The overrides mapping has the shape:
//
//	{
//	  "symbols": {
//	    "comma": ",", "colon": ":",
//	    "left_bracket": "[", "right_bracket": "]",
//	    "left_brace": "{", "right_brace": "}",
//	    "quote": "double"
//	  },
//	  "whitespace": ["\u0020", "\t", "\n", "\r"],
//	  "boolean": {"true": "true", "false": "false"},
//	  "null": "null",
//	  "key_type": "string"
//	}
//
// The symbols and boolean settings are required and must have exactly the
// keys shown. Each symbol is a single character, distinct from the others,
// that does not occur in a number, a literal, or the whitespace. The quote
// must be "single" or "double". Whitespace entries are
// quoted literals whose escapes are decoded, and they must not contain
// unescaped whitespace. The key type must be "string" or "symbol". Null and
// key_type may be omitted. Whitespace may be omitted only when doc is given.
//
// The configuration document doc has the same shape, written in standard
// JSON syntax regardless of the syntax it describes. It may contain comments
// and trailing commas. Settings in overrides replace those of doc.
//
// Any problem with the configuration is reported as a *ConfigError.
func Resolve(overrides map[string]any, doc string) (*Config, error) {
	if overrides == nil && doc == "" {
		return Default(), nil
	}
	if doc == "" {
		if len(overrides) == 0 {
			return nil, configErrorf("", "empty configuration")
		}
		return resolveMap(canonicalMap(overrides), true)
	}
	m, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}
	for key, val := range overrides {
		m[canonicalKey(key)] = canonicalValue(val)
	}
	return resolveMap(m, false)
}

// MustResolve is as Resolve, but panics if the configuration is invalid.
func MustResolve(overrides map[string]any, doc string) *Config {
	cfg, err := Resolve(overrides, doc)
	if err != nil {
		panic(err)
	}
	return cfg
}

// parseDocument parses a configuration document into a canonical mapping.
func parseDocument(doc string) (map[string]any, error) {
	std, err := hujson.Standardize([]byte(doc))
	if err != nil {
		return nil, &ConfigError{Message: "invalid document", err: err}
	}
	v, err := defaultConfig.parse(string(std), true)
	if err != nil {
		return nil, &ConfigError{Message: "invalid document", err: err}
	}
	return canonicalValue(v).(map[string]any), nil
}

func resolveMap(m map[string]any, needSpace bool) (*Config, error) {
	if extra := unexpectedKeys(m, topKeys); len(extra) != 0 {
		return nil, &ConfigError{Unexpected: extra, Message: "unknown settings"}
	}
	if err := checkWords("", m); err != nil {
		return nil, err
	}
	cfg := Default()

	sm, err := requireMap(m, "symbols", symbolKeys)
	if err != nil {
		return nil, err
	}
	if err := resolveSymbols(&cfg.Symbols, sm); err != nil {
		return nil, err
	}

	bm, err := requireMap(m, "boolean", booleanKeys)
	if err != nil {
		return nil, err
	}
	if cfg.True, err = requireWord(bm, "boolean.true"); err != nil {
		return nil, err
	}
	if cfg.False, err = requireWord(bm, "boolean.false"); err != nil {
		return nil, err
	}
	if cfg.True == cfg.False {
		return nil, configErrorf("boolean", "true and false literals are both %q", cfg.True)
	}

	if v, ok := m["null"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, configErrorf("null", "got %T, want string", v)
		} else if s != "" {
			cfg.Null = s
		}
	}

	if v, ok := m["key_type"]; ok && v != nil {
		switch v {
		case "string", "":
			cfg.KeyType = StringKeys
		case "symbol":
			cfg.KeyType = AtomKeys
		default:
			return nil, configErrorf("key_type", "got %v, want string or symbol", v)
		}
	}

	if v, ok := m["whitespace"]; ok {
		ws, err := resolveWhitespace(v)
		if err != nil {
			return nil, err
		}
		cfg.Whitespace = ws
	} else if needSpace {
		return nil, &ConfigError{Missing: []string{"whitespace"}, Message: "required setting not found"}
	}
	if err := checkSymbols(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveSymbols(sym *Symbols, m map[string]any) error {
	dst := map[string]*rune{
		"comma":         &sym.Comma,
		"colon":         &sym.Colon,
		"left_bracket":  &sym.LBracket,
		"right_bracket": &sym.RBracket,
		"left_brace":    &sym.LBrace,
		"right_brace":   &sym.RBrace,
	}
	seen := make(map[rune]string)
	for _, key := range symbolKeys {
		path := "symbols." + key
		s, err := requireWord(m, path)
		if err != nil {
			return err
		}
		var r rune
		if key == "quote" {
			switch s {
			case "single":
				r = '\''
			case "double":
				r = '"'
			default:
				return configErrorf(path, "got %q, want single or double", s)
			}
			sym.Quote = r
		} else {
			if utf8.RuneCountInString(s) != 1 {
				return configErrorf(path, "got %q, want a single character", s)
			}
			r, _ = utf8.DecodeRuneInString(s)
			*dst[key] = r
		}
		if prev, ok := seen[r]; ok {
			return configErrorf(path, "character %q is already used for %s", r, prev)
		}
		seen[r] = key
	}
	return nil
}

// checkSymbols reports an error if a symbol of cfg could never be lexed as a
// symbol, because the lexer claims its character for an earlier rule.
func checkSymbols(cfg *Config) error {
	for _, sym := range []struct {
		key string
		r   rune
	}{
		{"comma", cfg.Symbols.Comma},
		{"colon", cfg.Symbols.Colon},
		{"left_bracket", cfg.Symbols.LBracket},
		{"right_bracket", cfg.Symbols.RBracket},
		{"left_brace", cfg.Symbols.LBrace},
		{"right_brace", cfg.Symbols.RBrace},
	} {
		path := "symbols." + sym.key
		switch {
		case sym.r < utf8.RuneSelf && isNumByte(byte(sym.r)):
			return configErrorf(path, "character %q may begin a number", sym.r)
		case strings.ContainsRune(cfg.True+cfg.False, sym.r):
			return configErrorf(path, "character %q occurs in a boolean literal", sym.r)
		case strings.ContainsRune(cfg.Null, sym.r):
			return configErrorf(path, "character %q occurs in the null literal", sym.r)
		case slices.Contains(cfg.Whitespace, string(sym.r)):
			return configErrorf(path, "character %q is whitespace", sym.r)
		}
	}
	return nil
}

func resolveWhitespace(v any) ([]string, error) {
	var raw []string
	switch t := v.(type) {
	case []string:
		raw = t
	case []any:
		for i, elt := range t {
			s, ok := elt.(string)
			if !ok {
				return nil, configErrorf(fmt.Sprintf("whitespace[%d]", i), "got %T, want string", elt)
			}
			raw = append(raw, s)
		}
	default:
		return nil, configErrorf("whitespace", "got %T, want a list of strings", v)
	}
	out := make([]string, 0, len(raw))
	for i, s := range raw {
		dec, err := unquoteLiteral(s)
		if err != nil {
			return nil, &ConfigError{Key: fmt.Sprintf("whitespace[%d]", i), Message: "invalid quoted literal", err: err}
		} else if dec == "" {
			return nil, configErrorf(fmt.Sprintf("whitespace[%d]", i), "empty whitespace entry")
		}
		out = append(out, dec)
	}
	return out, nil
}

// requireMap returns the mapping stored under key in m, which must have
// exactly the specified keys.
func requireMap(m map[string]any, key string, keys []string) (map[string]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, &ConfigError{Missing: []string{key}, Message: "required setting not found"}
	}
	sm, ok := v.(map[string]any)
	if !ok {
		return nil, configErrorf(key, "got %T, want a mapping", v)
	}
	var missing []string
	for _, k := range keys {
		if _, ok := sm[k]; !ok {
			missing = append(missing, k)
		}
	}
	extra := unexpectedKeys(sm, keys)
	if len(missing) != 0 || len(extra) != 0 {
		return nil, &ConfigError{Key: key, Missing: missing, Unexpected: extra}
	}
	return sm, nil
}

// requireWord returns the non-empty string stored under the last component
// of path in m.
func requireWord(m map[string]any, path string) (string, error) {
	key := path[strings.LastIndexByte(path, '.')+1:]
	s, ok := m[key].(string)
	if !ok {
		return "", configErrorf(path, "got %T, want string", m[key])
	} else if s == "" {
		return "", configErrorf(path, "empty value")
	}
	return s, nil
}

// checkWords reports an error if any string in v contains whitespace.
func checkWords(path string, v any) error {
	switch t := v.(type) {
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(t)) {
			if err := checkWords(joinPath(path, key), t[key]); err != nil {
				return err
			}
		}
	case []any:
		for i, elt := range t {
			if err := checkWords(fmt.Sprintf("%s[%d]", path, i), elt); err != nil {
				return err
			}
		}
	case []string:
		for i, elt := range t {
			if err := checkWords(fmt.Sprintf("%s[%d]", path, i), elt); err != nil {
				return err
			}
		}
	case string:
		if strings.IndexFunc(t, unicode.IsSpace) >= 0 {
			return configErrorf(path, "value %q is not a single word", t)
		}
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func unexpectedKeys(m map[string]any, keys []string) []string {
	var extra []string
	for key := range m {
		if !slices.Contains(keys, key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	return extra
}

// canonicalKey returns the canonical form of a setting name: lower case, with
// hyphens and spaces replaced by underscores.
func canonicalKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return '_'
		}
		return unicode.ToLower(r)
	}, strings.TrimSpace(key))
}

func canonicalMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, val := range m {
		out[canonicalKey(key)] = canonicalValue(val)
	}
	return out
}

// canonicalValue converts parsed objects and nested mappings into mappings
// with canonical keys. The result shares no structure with v.
func canonicalValue(v any) any {
	switch t := v.(type) {
	case Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			out[canonicalKey(m.Name())] = canonicalValue(m.Value)
		}
		return out
	case map[string]any:
		return canonicalMap(t)
	case []any:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = canonicalValue(elt)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}
