package lexer

import (
	"joy/internal/extscan"
	"joy/internal/token"
)

// collectLeadingTrivia gathers the extras in front of the next token:
//   - runs of ' ', '\t', '\r', '\f', '\v' become one TriviaSpace
//   - runs of '\n' become one TriviaNewline
//   - '#' to end of line becomes TriviaLineComment
//   - a complete (* ... *) becomes TriviaBlockComment
//
// An unterminated block comment is left in place for scanToken, which turns
// its opener into an Invalid token.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case b == '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start)

		case b == '(' && lx.cursor.PeekAt(1) == '*':
			res := lx.scanners.Scan(lx.cursor.Rest(), 0)
			if res.Status != extscan.Matched || res.Kind != extscan.KindBlockComment {
				return
			}
			lx.cursor.Advance(res.Len)
			lx.pushTrivia(token.TriviaBlockComment, start)

		default:
			return
		}
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
