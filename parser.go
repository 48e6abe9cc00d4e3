// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cjson

import "fmt"

// A parser is a recursive-descent parser over a sequence of tokens. All the
// nested calls of a parse share a single cursor, so a parser is not safe for
// concurrent use and is discarded after one parse.
type parser struct {
	cfg  *Config
	toks []Token
	pos  int // offset of the current token
}

// parseTokens parses a single value from toks. If root is true, the value
// must be an object. In case of error, the concrete type of the error is
// *ParseError.
func parseTokens(toks []Token, cfg *Config, root bool) (_ any, err error) {
	p := &parser{cfg: cfg, toks: toks}
	defer p.recoverParseError(&err)

	if len(toks) == 0 {
		p.fail(ErrEmptyInput, "")
	}
	v := unwrap(p.parse(root, 0))
	if p.pos < len(p.toks) {
		p.failf(ErrExtraInput, "got %v", p.toks[p.pos])
	}
	return v, nil
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*ParseError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// parse parses a single value beginning at offset, and leaves the cursor
// after the end of the value. If the value is a scalar, parse returns its
// token; otherwise it returns a []any or an Object.
func (p *parser) parse(root bool, offset int) any {
	p.pos = offset
	head, ok := p.cur()
	if !ok {
		p.fail(ErrEmptyInput, "")
	}
	if root && !head.IsSymbol(p.cfg.Symbols.LBrace) {
		p.failf(ErrRoot, "expected %q, got %v", p.cfg.Symbols.LBrace, head)
	}
	p.advance()

	switch {
	case head.IsSymbol(p.cfg.Symbols.LBracket):
		return p.parseArray()
	case head.IsSymbol(p.cfg.Symbols.LBrace):
		return p.parseObject()
	default:
		return head
	}
}

// parseObject parses the members of an object.
// Precondition: the opening brace has been consumed.
// Postcondition: the closing brace has been consumed.
func (p *parser) parseObject() Object {
	obj := Object{}
	index := make(map[string]int) // offset of each member in obj, by name
	if p.at(p.cfg.Symbols.RBrace) {
		p.advance()
		return obj
	}
	for p.pos < len(p.toks) {
		// Expect a key, or the end of the object.
		key := p.toks[p.pos]
		if key.Kind != String {
			if key.IsSymbol(p.cfg.Symbols.RBrace) {
				p.advance()
				return obj
			}
			p.failf(ErrKey, "expected string, got %v", key)
		}
		p.advance()

		// Expect a colon.
		if tok, ok := p.cur(); !ok {
			p.failf(ErrUnclosedObject, "expected %q after key %v", p.cfg.Symbols.Colon, key)
		} else if !tok.IsSymbol(p.cfg.Symbols.Colon) {
			p.failf(ErrColon, "expected %q, got %v", p.cfg.Symbols.Colon, tok)
		}
		p.advance()

		// Expect a value.
		if p.pos >= len(p.toks) {
			p.failf(ErrUnclosedObject, "missing value for key %v", key)
		}
		val := p.parse(false, p.pos)
		obj.set(index, p.objectKey(key), unwrap(val))

		// Expect a comma, or the end of the object.
		tok, ok := p.cur()
		switch {
		case !ok:
			p.failf(ErrUnclosedObject, "expected %q or %q, got end of input",
				p.cfg.Symbols.Comma, p.cfg.Symbols.RBrace)
		case tok.IsSymbol(p.cfg.Symbols.RBrace):
			p.advance()
			return obj
		case tok.IsSymbol(p.cfg.Symbols.Comma):
			p.advance()
		case p.missingCommaRecovery():
			// Continue with the next key.
		default:
			p.failf(ErrMissingComma, "expected %q or %q, got %v",
				p.cfg.Symbols.Comma, p.cfg.Symbols.RBrace, tok)
		}
	}
	panic(p.errorf(ErrUnclosedObject, "expected string or %q, got end of input", p.cfg.Symbols.RBrace))
}

// missingCommaRecovery reports whether the parser may continue an object
// without a comma between members. This is permitted when the current token
// is a string that directly follows a symbol, as in {"a":[1]"b":2}.
func (p *parser) missingCommaRecovery() bool {
	if p.pos == 0 || p.pos >= len(p.toks) {
		return false
	}
	return p.toks[p.pos].Kind == String && p.toks[p.pos-1].Kind == Symbol
}

// parseArray parses the elements of an array.
// Precondition: the opening bracket has been consumed.
// Postcondition: the closing bracket has been consumed.
func (p *parser) parseArray() []any {
	arr := []any{}
	if p.at(p.cfg.Symbols.RBracket) {
		p.advance()
		return arr
	}
	for p.pos < len(p.toks) {
		val := p.parse(false, p.pos)
		arr = append(arr, unwrap(val))

		tok, ok := p.cur()
		switch {
		case !ok:
			p.failf(ErrUnclosedArray, "expected %q or %q, got end of input",
				p.cfg.Symbols.Comma, p.cfg.Symbols.RBracket)
		case tok.IsSymbol(p.cfg.Symbols.RBracket):
			p.advance()
			return arr
		case tok.IsSymbol(p.cfg.Symbols.RBrace):
			p.failf(ErrImproperlyClosedArray, "expected %q, got %v", p.cfg.Symbols.RBracket, tok)
		case !tok.IsSymbol(p.cfg.Symbols.Comma):
			p.failf(ErrMissingComma, "expected %q or %q, got %v",
				p.cfg.Symbols.Comma, p.cfg.Symbols.RBracket, tok)
		}
		p.advance()
	}
	panic(p.errorf(ErrUnclosedArray, "expected value, got end of input"))
}

// objectKey converts a string token into a key of the configured type.
func (p *parser) objectKey(tok Token) any {
	name := tok.Unwrap().(string)
	if p.cfg.KeyType == AtomKeys {
		return Atom(name)
	}
	return name
}

func (p *parser) cur() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

// at reports whether the current token is the symbol r.
func (p *parser) at(r rune) bool {
	tok, ok := p.cur()
	return ok && tok.IsSymbol(r)
}

func (p *parser) advance() { p.pos++ }

// where returns the position of the current token, or of the last token if
// the input is exhausted.
func (p *parser) where() Pos {
	if p.pos < len(p.toks) {
		return p.toks[p.pos].Pos
	} else if len(p.toks) != 0 {
		return p.toks[len(p.toks)-1].Pos
	}
	return Pos{}
}

func (p *parser) errorf(kind ErrorKind, msg string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Pos: p.where(), Message: fmt.Sprintf(msg, args...)}
}

func (p *parser) fail(kind ErrorKind, msg string) {
	panic(&ParseError{Kind: kind, Pos: p.where(), Message: msg})
}

func (p *parser) failf(kind ErrorKind, msg string, args ...any) { panic(p.errorf(kind, msg, args...)) }
