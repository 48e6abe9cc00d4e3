// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of quoted literals.
//
// The escape syntax is that of JSON strings, extended with \' so that
// literals may be delimited by either single or double quotation marks.
package escape

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// unescape maps the character following a backslash to its decoding, for
// escapes other than \u.
var unescape = [...]byte{
	'"':  '"',
	'\'': '\'',
	'/':  '/',
	'\\': '\\',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unquote decodes the contents of a quoted literal. The input must have the
// enclosing quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune. Unquote reports an
// error for an incomplete escape sequence. A surrogate pair of escapes
// decodes as a single rune.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(max(n, 1))
		switch {
		case r == 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, ok := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if !ok {
				v = utf8.RuneError
			} else if utf16.IsSurrogate(v) {
				v, src = pairSurrogate(v, src)
			}
			dec = utf8.AppendRune(dec, v)
		case r < rune(len(unescape)) && unescape[r] != 0:
			dec = append(dec, unescape[r])
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
}

// pairSurrogate combines the surrogate hi with the escape for its low half at
// the front of src. An unpaired surrogate decodes as the replacement rune.
func pairSurrogate(hi rune, src mem.RO) (rune, mem.RO) {
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if lo, ok := parseHex(src.Slice(2, 6)); ok {
			if r := utf16.DecodeRune(hi, lo); r != utf8.RuneError {
				return r, src.SliceFrom(6)
			}
		}
	}
	return utf8.RuneError, src
}

// parseHex decodes data as a hexadecimal rune value.
func parseHex(data mem.RO) (rune, bool) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
