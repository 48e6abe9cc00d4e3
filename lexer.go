// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

import (
	"unicode/utf8"

	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

// Lex scans text into a sequence of tokens using the conventions of cfg. If
// cfg == nil, the default configuration is used. Whitespace is discarded, and
// the sequence ends when the input is exhausted.
//
// At each position the lexer tries, in order: a string, a number, a boolean
// literal, a null literal, whitespace, and a symbol. A boolean or null
// literal is recognized by consuming the longest run of characters that occur
// in the literals; if the run does not exactly match a literal, it is
// discarded without producing a token.
//
// In case of error, the concrete type of the error is *LexError.
func Lex(text string, cfg *Config) ([]Token, error) {
	if cfg == nil {
		cfg = defaultConfig
	}
	return newLexer(text, cfg).lex()
}

// A lexer is a single-use scanner over its input text.
type lexer struct {
	cfg *Config
	src string
	pos int // byte offset of the current character

	// Apparent line and column offsets (0-based) of the current character.
	line, col int

	space   mapset.Set[rune] // whitespace characters
	symbols mapset.Set[rune] // structural characters
	boolSet mapset.Set[rune] // characters of the boolean literals
	nullSet mapset.Set[rune] // characters of the null literal

	toks []Token
}

func newLexer(text string, cfg *Config) *lexer {
	l := &lexer{
		cfg: cfg,
		src: text,
		symbols: mapset.New(
			cfg.Symbols.Comma, cfg.Symbols.Colon,
			cfg.Symbols.LBracket, cfg.Symbols.RBracket,
			cfg.Symbols.LBrace, cfg.Symbols.RBrace,
		),
		boolSet: mapset.New([]rune(cfg.True + cfg.False)...),
		nullSet: mapset.New([]rune(cfg.Null)...),
	}
	var space []rune
	for _, ws := range cfg.Whitespace {
		// Only single characters can match a single input position.
		if r, n := utf8.DecodeRuneInString(ws); n == len(ws) && n > 0 {
			space = append(space, r)
		}
	}
	l.space = mapset.New(space...)
	return l
}

func (l *lexer) lex() ([]Token, error) {
	for {
		// Strings and numbers leave the cursor on their final character, so
		// the cursor must be advanced once more after emitting them.
		if tok, ok, err := l.lexString(); err != nil {
			return nil, err
		} else if ok {
			l.emit(tok)
			l.advance()
			continue
		}
		if tok, ok, err := l.lexNumber(); err != nil {
			return nil, err
		} else if ok {
			l.emit(tok)
			l.advance()
			continue
		}

		// Literal runs consume input whether or not they produce a token.
		if text, end, ok := l.lexRun(l.boolSet); ok {
			switch w := mem.S(text); {
			case w.EqualString(l.cfg.True):
				l.emit(Token{Kind: Boolean, Value: true, Pos: end})
			case w.EqualString(l.cfg.False):
				l.emit(Token{Kind: Boolean, Value: false, Pos: end})
			}
			continue
		}
		if text, end, ok := l.lexRun(l.nullSet); ok {
			if mem.S(text).EqualString(l.cfg.Null) {
				l.emit(Token{Kind: Null, Pos: end})
			}
			continue
		}

		ch, ok := l.cur()
		if !ok {
			return l.toks, nil // end of input
		} else if l.space.Has(ch) {
			l.advance()
		} else if l.symbols.Has(ch) {
			l.emit(Token{Kind: Symbol, Value: ch, Pos: l.here()})
			l.advance()
		} else {
			return nil, &LexError{Kind: ErrUnknownToken, Pos: l.here(), Text: string(ch)}
		}
	}
}

// lexString scans a string delimited by the configured quotation mark. On
// success the cursor is left on the closing quotation mark.
func (l *lexer) lexString() (Token, bool, error) {
	q := l.cfg.Symbols.Quote
	if ch, ok := l.cur(); !ok || ch != q {
		return Token{}, false, nil
	}
	start, open := l.pos, l.here()
	for {
		l.advance()
		ch, ok := l.cur()
		if !ok {
			return Token{}, false, &LexError{Kind: ErrUnterminatedString, Pos: open}
		} else if ch == q {
			break
		}
	}
	end := l.pos + utf8.RuneLen(q)
	return Token{Kind: String, Value: l.src[start:end], Pos: l.here()}, true, nil
}

// lexNumber scans the longest run of number characters. On success the
// cursor is left on the final character of the run.
func (l *lexer) lexNumber() (Token, bool, error) {
	end := l.pos
	for end < len(l.src) && isNumByte(l.src[end]) {
		end++
	}
	if end == l.pos {
		return Token{}, false, nil
	}
	text := mem.S(l.src[l.pos:end])
	for l.pos < end-1 {
		l.advance()
	}

	tok := Token{Kind: Number, Pos: l.here()}
	if mem.IndexByte(text, '.') >= 0 || mem.IndexByte(text, 'e') >= 0 {
		v, err := mem.ParseFloat(text, 64)
		if err != nil {
			return tok, false, l.badNumber(text, err)
		}
		tok.Value = v
	} else {
		v, err := mem.ParseInt(text, 10, 64)
		if err != nil {
			return tok, false, l.badNumber(text, err)
		}
		tok.Value = v
	}
	return tok, true, nil
}

func (l *lexer) badNumber(text mem.RO, err error) error {
	return &LexError{Kind: ErrBadNumber, Pos: l.here(), Text: text.StringCopy(), err: err}
}

// lexRun consumes the longest run of characters belonging to set, and
// reports the text of the run, the position of its last character, and
// whether it was non-empty. Unlike strings and numbers, the cursor is left
// after the end of the run.
func (l *lexer) lexRun(set mapset.Set[rune]) (string, Pos, bool) {
	start, last := l.pos, l.here()
	for {
		ch, ok := l.cur()
		if !ok || !set.Has(ch) {
			break
		}
		last = l.here()
		l.advance()
	}
	return l.src[start:l.pos], last, l.pos > start
}

// cur returns the character at the cursor, and reports whether there is one.
func (l *lexer) cur() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return ch, true
}

// advance moves the cursor to the next character, if any.
func (l *lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	ch, n := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += n
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func (l *lexer) here() Pos { return Pos{Line: l.line, Column: l.col} }

func (l *lexer) emit(tok Token) { l.toks = append(l.toks, tok) }

func isNumByte(b byte) bool { return b >= '0' && b <= '9' || b == '-' || b == '.' || b == 'e' }
