package lexer

import (
	"joy/internal/diag"
	"joy/internal/extscan"
	"joy/internal/token"
)

// rule is one row of the token priority table. match must leave the cursor
// untouched when it reports ok == false.
type rule struct {
	name  string
	match func(lx *Lexer) (token.Token, bool)
}

// priority is the fixed order in which token rules are tried at an offset;
// the first rule that matches wins. Rules lower in the table only see input
// that every rule above declined.
//
//  1. stateful      sub-scanner constructs (interpolated strings, unterminated
//     block comment openers)
//  2. shell-escape  '$' through end of line
//  3. string, character
//  4. reserved      whole-word reserved spellings
//  5. multi-punct   '==', 'v[', 'm['
//  6. longest       longest of operator, symbol and number; on a tie the
//     operator wins over the symbol
//  7. punct         single-byte punctuation
var priority = [...]rule{
	{"stateful", (*Lexer).scanStateful},
	{"shell-escape", (*Lexer).scanShellEscape},
	{"string", (*Lexer).scanString},
	{"character", (*Lexer).scanChar},
	{"reserved", (*Lexer).scanReserved},
	{"multi-punct", (*Lexer).scanMultiPunct},
	{"longest", (*Lexer).scanLongest},
	{"punct", (*Lexer).scanPunct},
}

// RuleNames lists the priority table in order.
func RuleNames() []string {
	out := make([]string, len(priority))
	for i := range priority {
		out[i] = priority[i].name
	}
	return out
}

func (lx *Lexer) scanToken() token.Token {
	for i := range priority {
		if tok, ok := priority[i].match(lx); ok {
			return tok
		}
	}
	return lx.scanUnknown()
}

func (lx *Lexer) scanStateful() (token.Token, bool) {
	res := lx.scanners.Scan(lx.cursor.Rest(), 0)
	switch res.Status {
	case extscan.Matched:
		if res.Kind != extscan.KindInterpolatedString {
			// matched block comments are consumed as trivia
			return token.Token{}, false
		}
		start := lx.cursor.Mark()
		lx.cursor.Advance(res.Len)
		return lx.makeToken(token.InterpStringLit, start), true

	case extscan.Unterminated:
		start := lx.cursor.Mark()
		lx.cursor.Advance(res.Open)
		tok := lx.makeToken(token.Invalid, start)
		switch res.Kind {
		case extscan.KindBlockComment:
			lx.errLex(diag.LexUnterminatedBlockComment, tok.Span, "unterminated block comment")
		default:
			lx.errLex(diag.LexUnterminatedInterpolation, tok.Span, "unterminated interpolated string")
		}
		return tok, true
	}
	return token.Token{}, false
}

func (lx *Lexer) scanShellEscape() (token.Token, bool) {
	if lx.cursor.Peek() != '$' {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.makeToken(token.ShellEscape, start), true
}

func (lx *Lexer) scanReserved() (token.Token, bool) {
	n := lx.symbolLen()
	if n == 0 {
		return token.Token{}, false
	}
	off := lx.cursor.Off
	k, ok := token.LookupKeyword(string(lx.file.Content[off : off+uint32(n)]))
	if !ok {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Advance(n)
	return lx.makeToken(k, start), true
}

func (lx *Lexer) scanMultiPunct() (token.Token, bool) {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok {
		return token.Token{}, false
	}
	var k token.Kind
	switch {
	case b0 == '=' && b1 == '=':
		k = token.EqEq
	case b0 == 'v' && b1 == '[':
		k = token.VecOpen
	case b0 == 'm' && b1 == '[':
		k = token.MatOpen
	default:
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	return lx.makeToken(k, start), true
}

func (lx *Lexer) scanLongest() (token.Token, bool) {
	numLen, numKind := lx.numberLen()
	opLen, opKind := lx.operatorLen()
	symLen := lx.symbolLen()

	var (
		kind token.Kind
		n    int
	)
	switch {
	case numLen > 0 && lx.cursor.Peek() == '-':
		// a '-' glued to a digit always starts a number
		kind, n = numKind, numLen
	case numLen >= opLen && numLen >= symLen && numLen > 0:
		kind, n = numKind, numLen
	case opLen >= symLen && opLen > 0:
		kind, n = opKind, opLen
	case symLen > 0:
		kind, n = token.Symbol, symLen
	default:
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	lx.cursor.Advance(n)
	if n > maxTokenLength {
		tok := lx.makeToken(token.Invalid, start)
		lx.errLex(diag.LexTokenTooLong, tok.Span, "token exceeds maximum length")
		return tok, true
	}
	return lx.makeToken(kind, start), true
}

func (lx *Lexer) scanPunct() (token.Token, bool) {
	var k token.Kind
	switch lx.cursor.Peek() {
	case '[':
		k = token.LBracket
	case ']':
		k = token.RBracket
	case '{':
		k = token.LBrace
	case '}':
		k = token.RBrace
	case ':':
		k = token.Colon
	case '.':
		k = token.Dot
	case ';':
		k = token.Semicolon
	default:
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.makeToken(k, start), true
}

func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	if !lx.bumpRune() {
		lx.cursor.Bump()
	}
	tok := lx.makeToken(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character "+quoteRune(tok.Text))
	return tok
}
