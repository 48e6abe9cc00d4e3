// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

import (
	"fmt"
	"unicode/utf8"
)

// Kind is the type of a lexical token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	Symbol              // structural punctuation: comma, colon, bracket, brace
	Boolean             // constant: the true or false literal
	Null                // constant: the null literal
	Number              // number: integer or floating-point
	String              // quoted string
)

var kindStr = [...]string{
	Invalid: "invalid token",
	Symbol:  "symbol",
	Boolean: "boolean",
	Null:    "null",
	Number:  "number",
	String:  "string",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input, with its decoded value and
// the position at which it was completed.
//
// The concrete type of Value depends on Kind:
//
//	Kind    | Value
//	------- | -----------------------------------------------
//	Symbol  | rune, the structural character
//	Boolean | bool
//	Null    | nil
//	Number  | int64, or float64 if the text has "." or "e"
//	String  | string, including both quotation marks
type Token struct {
	Kind  Kind
	Value any
	Pos   Pos
}

// Equal reports whether t and u have the same kind and value. Positions are
// not compared.
func (t Token) Equal(u Token) bool { return t.Kind == u.Kind && t.Value == u.Value }

// Is reports whether the value of t is equal to v. This is used to compare a
// token to a raw symbol or literal value.
func (t Token) Is(v any) bool {
	if u, ok := v.(Token); ok {
		return t.Equal(u)
	}
	return t.Value == v
}

// IsSymbol reports whether t is a Symbol token for the character r.
func (t Token) IsSymbol(r rune) bool { return t.Kind == Symbol && t.Value == r }

// Unwrap returns the plain value of t. The quotation marks of a String token
// are removed, and a Symbol token unwraps to a string of its character.
func (t Token) Unwrap() any {
	switch t.Kind {
	case String:
		s := t.Value.(string)
		_, n := utf8.DecodeRuneInString(s)
		return s[n : len(s)-n]
	case Symbol:
		return string(t.Value.(rune))
	case Null:
		return nil
	default:
		return t.Value
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Symbol:
		return fmt.Sprintf("%q", t.Value)
	case String:
		return t.Value.(string)
	case Null:
		return "null"
	default:
		return fmt.Sprint(t.Value)
	}
}
