// Package literal decodes the text of literal tokens into Go values.
//
// Escapes follow the Joy scanner: \b \t \n \v \f \r \" \' \\ and a
// backslash followed by one to three digits in 0-7. The digits end where the
// lexer ends the escape, but their value is read as a decimal character
// code, so \101 is 'e' and "\18" is code 1 followed by '8'.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"joy/internal/token"
)

var (
	ErrNotLiteral = errors.New("token is not a decodable literal")
	ErrMalformed  = errors.New("malformed literal")
	ErrBadEscape  = errors.New("invalid escape sequence")
)

// Value is a decoded literal. Exactly one payload field is meaningful,
// selected by Kind.
type Value struct {
	Kind  token.Kind
	Int   int64
	Float float64
	Char  rune
	Str   string
	Bool  bool
	Parts []Part // interpolated strings only
}

// Part is a piece of an interpolated string: either decoded text or the raw
// source of a ${...} splice.
type Part struct {
	Text   string `json:"text" msgpack:"text"`
	Splice bool   `json:"splice,omitempty" msgpack:"splice,omitempty"`
}

// Decode converts a literal token into its value. Invalid tokens and
// non-literal kinds return ErrNotLiteral.
func Decode(tok token.Token) (Value, error) {
	v := Value{Kind: tok.Kind}
	var err error
	switch tok.Kind {
	case token.IntLit:
		v.Int, err = Int(tok.Text)
	case token.FloatLit:
		v.Float, err = Float(tok.Text)
	case token.CharLit:
		v.Char, err = Char(tok.Text)
	case token.StringLit:
		v.Str, err = String(tok.Text)
	case token.InterpStringLit:
		v.Parts, err = Interpolated(tok.Text)
	case token.KwTrue:
		v.Bool = true
	case token.KwFalse:
	case token.KwNull:
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrNotLiteral, tok.Kind)
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// Int parses an integer literal such as "42" or "-7".
func Int(text string) (int64, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q: %w", ErrMalformed, text, err)
	}
	return n, nil
}

// Float parses a float literal such as "2.5" or "-0.25".
func Float(text string) (float64, error) {
	if !strings.Contains(text, ".") {
		return 0, fmt.Errorf("%w: float %q", ErrMalformed, text)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: float %q: %w", ErrMalformed, text, err)
	}
	return f, nil
}

// Char decodes a character literal. The closing quote is optional.
func Char(text string) (rune, error) {
	if len(text) < 2 || text[0] != '\'' {
		return 0, fmt.Errorf("%w: character %q", ErrMalformed, text)
	}
	body := text[1:]
	r, n, err := decodeOne(body)
	if err != nil {
		return 0, err
	}
	rest := body[n:]
	if rest != "" && rest != "'" {
		return 0, fmt.Errorf("%w: character %q", ErrMalformed, text)
	}
	return r, nil
}

// String decodes a double-quoted string literal.
func String(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("%w: string %q", ErrMalformed, text)
	}
	return unescape(text[1 : len(text)-1])
}

// Interpolated splits $"..." into decoded text parts and raw splice sources.
func Interpolated(text string) ([]Part, error) {
	if len(text) < 3 || !strings.HasPrefix(text, `$"`) || text[len(text)-1] != '"' {
		return nil, fmt.Errorf("%w: interpolated string %q", ErrMalformed, text)
	}
	body := text[2 : len(text)-1]

	var parts []Part
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, Part{Text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(body); {
		switch {
		case body[i] == '\\':
			r, n, err := decodeOne(body[i:])
			if err != nil {
				return nil, err
			}
			lit.WriteRune(r)
			i += n
		case body[i] == '$' && i+1 < len(body) && body[i+1] == '{':
			end, ok := spliceEnd(body, i+2)
			if !ok {
				return nil, fmt.Errorf("%w: unterminated splice in %q", ErrMalformed, text)
			}
			flush()
			parts = append(parts, Part{Text: body[i+2 : end], Splice: true})
			i = end + 1
		default:
			lit.WriteByte(body[i])
			i++
		}
	}
	flush()
	return parts, nil
}

// spliceEnd returns the index of the '}' closing a splice that starts at off.
func spliceEnd(s string, off int) (int, bool) {
	depth := 1
	inString := false
	for i := off; i < len(s); i++ {
		c := s[i]
		switch {
		case inString && c == '\\':
			i++
		case inString:
			inString = c != '"'
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, n, err := decodeOne(s[i:])
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
		i += n
	}
	return b.String(), nil
}

// decodeOne decodes the character or escape at the start of s.
func decodeOne(s string) (rune, int, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("%w: empty", ErrMalformed)
	}
	if s[0] != '\\' {
		r, n := utf8.DecodeRuneInString(s)
		return r, n, nil
	}
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("%w: trailing backslash", ErrBadEscape)
	}
	switch s[1] {
	case 'b':
		return '\b', 2, nil
	case 't':
		return '\t', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'v':
		return '\v', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'r':
		return '\r', 2, nil
	case '"', '\'', '\\':
		return rune(s[1]), 2, nil
	}
	n := 1
	code := 0
	for n < len(s) && n <= 3 && s[n] >= '0' && s[n] <= '7' {
		code = code*10 + int(s[n]-'0')
		n++
	}
	if n == 1 {
		return 0, 0, fmt.Errorf("%w: \\%c", ErrBadEscape, s[1])
	}
	return rune(code), n, nil
}
