// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package cjson implements a parser for JSON-shaped text whose lexical
// conventions are configurable.
//
// The data model is that of JSON: objects, arrays, strings, numbers, Booleans,
// and null. The symbols that delimit objects and arrays, the comma and colon,
// the quotation mark, the Boolean and null literals, the set of whitespace
// characters, and the type of object keys are all described by a Config.
//
// # Parsing
//
// To parse standard JSON, call Parse with nil options:
//
//	v, err := cjson.Parse(`{"a": 1, "b": [true, null]}`, nil)
//
// The concrete type of the result is one of:
//
//	JSON type | Go type
//	--------- | ---------------------------------------------
//	object    | cjson.Object, with string or cjson.Atom keys
//	array     | []any
//	string    | string
//	number    | int64, or float64 if written with "." or "e"
//	Boolean   | bool
//	null      | nil
//
// # Configuration
//
// A configuration is resolved from an explicit mapping, from a configuration
// document, or both (see Resolve). A configuration document is itself written
// in standard JSON syntax, and may contain comments:
//
//	opts := &cjson.Options{ConfigText: `{
//	  // Arrays use braces, objects use brackets.
//	  "symbols": {
//	    "comma": ",", "colon": "=",
//	    "left_bracket": "{", "right_bracket": "}",
//	    "left_brace": "[", "right_brace": "]",
//	    "quote": "single"
//	  },
//	  "boolean": {"true": "yes", "false": "no"},
//	  "null": "void"
//	}`}
//	v, err := cjson.Parse(`['a' = {1, 2, yes}, 'b' = void]`, opts)
//
// Parse caches the most recently resolved configuration. Use a Session to
// keep a separate cache, or resolve a Config once and call its Parse method.
//
// # Lexing
//
// Lex converts text into a sequence of tokens. Each Token records its Kind,
// its decoded value, and the position at which it ended. Lex is exposed for
// tools that want to inspect the token stream; Parse calls it internally.
//
// # Errors
//
// Lexical errors are reported as *LexError, syntax errors as *ParseError, and
// configuration errors as *ConfigError. Lexical and syntax errors carry an
// ErrorKind that can be tested with errors.Is.
package cjson
