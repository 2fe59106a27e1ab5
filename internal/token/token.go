package token

import (
	"joy/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal, including true/false/null.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsNumber reports whether the token is an integer or float literal.
func (t Token) IsNumber() bool { return t.Kind.IsNumber() }

// IsOperator reports whether the token is one of the fixed operators.
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

// IsLibraryKeyword reports whether the token is an upper-case library keyword.
func (t Token) IsLibraryKeyword() bool { return t.Kind.IsLibraryKeyword() }

// IsSymbol reports whether the token is a user symbol.
func (t Token) IsSymbol() bool { return t.Kind == Symbol }

// FullSpan returns the span including leading trivia.
func (t Token) FullSpan() source.Span {
	if len(t.Leading) == 0 {
		return t.Span
	}
	return t.Leading[0].Span.Cover(t.Span)
}
