package lexer

import (
	"joy/internal/extscan"
	"joy/internal/source"
	"joy/internal/token"
)

type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	scanners extscan.Set
	look     []token.Token  // lookahead queue filled by Peek/PeekN
	hold     []token.Trivia // leading trivia for the token being built
	done     bool           // EOF already produced
}

func New(file *source.File, opts Options) *Lexer {
	scanners := opts.Scanners
	if scanners == nil {
		scanners = extscan.Default
	}
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		scanners: scanners,
	}
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File { return lx.file }

// Next returns the next significant token with its Leading trivia attached.
// The EOF token carries any trailing trivia; after it Next keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[1:]
		return tok
	}
	return lx.scan()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	return lx.PeekN(0)
}

// PeekN returns the token n positions ahead (0 is the next token) without
// consuming anything.
func (lx *Lexer) PeekN(n int) token.Token {
	for len(lx.look) <= n {
		lx.look = append(lx.look, lx.scan())
	}
	return lx.look[n]
}

func (lx *Lexer) scan() token.Token {
	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
		if !lx.done {
			tok.Leading = lx.takeHold()
			lx.done = true
		}
		return tok
	}

	tok := lx.scanToken()
	tok.Leading = lx.takeHold()
	return tok
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	out := lx.hold
	lx.hold = nil
	return out
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) makeToken(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
