package lexer

import (
	"joy/internal/diag"
	"joy/internal/source"
	"joy/internal/token"
)

type escapeResult uint8

const (
	escapeOK escapeResult = iota
	escapeBad
	escapeEOF
)

// scanEscape consumes one escape sequence; the cursor sits on the backslash.
// Accepted: \b \t \n \v \f \r \" \' \\ and \ followed by 1-3 octal digits.
func (lx *Lexer) scanEscape() escapeResult {
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return escapeEOF
	}
	b := lx.cursor.Peek()
	switch {
	case isSimpleEscape(b):
		lx.cursor.Bump()
		return escapeOK
	case isOctal(b):
		for i := 0; i < 3 && isOctal(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}
		return escapeOK
	default:
		if !lx.bumpRune() {
			lx.cursor.Bump()
		}
		return escapeBad
	}
}

// scanString scans "..." literals. Strings may span lines. A bad escape
// turns the whole literal into an Invalid token.
func (lx *Lexer) scanString() (token.Token, bool) {
	if lx.cursor.Peek() != '"' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()

	var badEscape *source.Span
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			if badEscape != nil {
				tok := lx.makeToken(token.Invalid, start)
				lx.errLex(diag.LexBadEscape, *badEscape, "invalid escape sequence in string literal")
				return tok, true
			}
			return lx.makeToken(token.StringLit, start), true
		}
		if b == '\\' {
			escStart := lx.cursor.Mark()
			if lx.scanEscape() == escapeBad && badEscape == nil {
				sp := lx.cursor.SpanFrom(escStart)
				badEscape = &sp
			}
			continue
		}
		lx.cursor.Bump()
	}

	tok := lx.makeToken(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok, true
}

// scanChar scans a character literal: a quote, one plain character or
// escape, and an optional closing quote.
func (lx *Lexer) scanChar() (token.Token, bool) {
	if lx.cursor.Peek() != '\'' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()

	if lx.cursor.EOF() {
		tok := lx.makeToken(token.Invalid, start)
		lx.errLex(diag.LexBadChar, tok.Span, "unterminated character literal")
		return tok, true
	}

	switch lx.cursor.Peek() {
	case '\'':
		lx.cursor.Bump()
		tok := lx.makeToken(token.Invalid, start)
		lx.errLex(diag.LexBadChar, tok.Span, "empty character literal")
		return tok, true
	case '\\':
		escStart := lx.cursor.Mark()
		switch lx.scanEscape() {
		case escapeEOF:
			tok := lx.makeToken(token.Invalid, start)
			lx.errLex(diag.LexBadChar, tok.Span, "unterminated character literal")
			return tok, true
		case escapeBad:
			escSpan := lx.cursor.SpanFrom(escStart)
			lx.cursor.Eat('\'')
			tok := lx.makeToken(token.Invalid, start)
			lx.errLex(diag.LexBadEscape, escSpan, "invalid escape sequence in character literal")
			return tok, true
		}
	default:
		if !lx.bumpRune() {
			lx.cursor.Bump()
		}
	}
	lx.cursor.Eat('\'')
	return lx.makeToken(token.CharLit, start), true
}
