// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the lexical and syntax errors reported by Lex and
// Parse. An ErrorKind is itself an error, so a caller can test for a specific
// class of failure with errors.Is:
//
//	if errors.Is(err, cjson.ErrUnclosedObject) { ... }
type ErrorKind int

// Constants defining the valid ErrorKind values.
const (
	// Lexical errors, reported as *LexError.
	ErrUnterminatedString ErrorKind = iota + 1
	ErrUnknownToken
	ErrBadNumber

	// Syntax errors, reported as *ParseError.
	ErrRoot
	ErrKey
	ErrColon
	ErrMissingComma
	ErrImproperlyClosedArray
	ErrUnclosedObject
	ErrUnclosedArray
	ErrEmptyInput
	ErrExtraInput
)

var errorKindStr = [...]string{
	ErrUnterminatedString:    "unterminated string",
	ErrUnknownToken:          "unknown token",
	ErrBadNumber:             "invalid number",
	ErrRoot:                  "root is not an object",
	ErrKey:                   "invalid object key",
	ErrColon:                 "missing colon",
	ErrMissingComma:          "missing comma",
	ErrImproperlyClosedArray: "improperly closed array",
	ErrUnclosedObject:        "unclosed object",
	ErrUnclosedArray:         "unclosed array",
	ErrEmptyInput:            "empty input",
	ErrExtraInput:            "extra input after value",
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string {
	if k <= 0 || int(k) >= len(errorKindStr) {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return errorKindStr[k]
}

// LexError is the concrete type of errors reported by the lexer.
type LexError struct {
	Kind ErrorKind
	Pos  Pos
	Text string // the offending character or number text

	err error
}

// Error satisfies the error interface.
func (e *LexError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("at %s: %v", e.Pos, e.Kind)
	}
	return fmt.Sprintf("at %s: %v %q", e.Pos, e.Kind, e.Text)
}

// Is reports whether target is the ErrorKind of e.
func (e *LexError) Is(target error) bool { return target == e.Kind }

// Unwrap supports error wrapping.
func (e *LexError) Unwrap() error { return e.err }

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Kind    ErrorKind
	Pos     Pos    // the position of the offending token, if any
	Message string // a description of what was expected and found
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("at %s: %v", e.Pos, e.Kind)
	}
	return fmt.Sprintf("at %s: %v: %s", e.Pos, e.Kind, e.Message)
}

// Is reports whether target is the ErrorKind of e.
func (e *ParseError) Is(target error) bool { return target == e.Kind }

// ConfigError is the concrete type of errors reported when a configuration is
// malformed or incomplete.
type ConfigError struct {
	Key        string   // the configuration key at fault, if known
	Missing    []string // required keys that were not given
	Unexpected []string // keys that are not permitted
	Message    string

	err error
}

// Error satisfies the error interface.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid configuration")
	if e.Key != "" {
		fmt.Fprintf(&sb, " %q", e.Key)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if len(e.Missing) != 0 {
		fmt.Fprintf(&sb, "; missing keys: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) != 0 {
		fmt.Fprintf(&sb, "; unexpected keys: %s", strings.Join(e.Unexpected, ", "))
	}
	if e.err != nil {
		fmt.Fprintf(&sb, ": %v", e.err)
	}
	return sb.String()
}

// Unwrap supports error wrapping.
func (e *ConfigError) Unwrap() error { return e.err }

func configErrorf(key, msg string, args ...any) *ConfigError {
	return &ConfigError{Key: key, Message: fmt.Sprintf(msg, args...)}
}
