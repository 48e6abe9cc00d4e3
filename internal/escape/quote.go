// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"fmt"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a quoted literal delimited by q. Backslashes and the
// delimiter are escaped, as are all whitespace and non-printing characters,
// so the result never contains unescaped whitespace. Runes outside the Basic
// Multilingual Plane are escaped as surrogate pairs.
func Quote(src mem.RO, q byte) []byte {
	buf := make([]byte, 0, src.Len()+2)
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putHex := func(r rune) {
		putByte('\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
	}
	putRune := func(r rune) {
		if hi, lo := utf16.EncodeRune(r); hi != utf8.RuneError {
			buf = fmt.Appendf(buf, `\u%04x\u%04x`, hi, lo)
		} else {
			buf = fmt.Appendf(buf, `\u%04x`, r)
		}
	}

	putByte(q)
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		if r < utf8.RuneSelf {
			switch {
			case r == ' ':
				putHex(r)
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putHex(r)
				}
			case r == '\\' || r == rune(q):
				putByte('\\', byte(r))
			default:
				putByte(byte(r))
			}
			continue
		}

		if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			putRune(r)
		} else {
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, q)
}
