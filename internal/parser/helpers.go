package parser

import (
	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/source"
	"joy/internal/token"
)

// advance consumes the next token, stores it in the tree and returns its ID.
func (p *Parser) advance() ast.TokenID {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return p.b.AddToken(tok)
}

// leaf consumes the next token as a single-token node.
func (p *Parser) leaf(kind ast.NodeKind) ast.NodeID {
	return p.b.Leaf(kind, p.advance())
}

// errorLeaf consumes the next token into an ERROR node.
func (p *Parser) errorLeaf() ast.NodeID {
	return p.b.Leaf(ast.KindError, p.advance())
}

// wrapError puts an already built node under an ERROR node.
func (p *Parser) wrapError(id ast.NodeID) ast.NodeID {
	return p.b.NewNode(ast.KindError, ast.NodeChild(id))
}

// afterLast is the empty span right after the last consumed token.
func (p *Parser) afterLast() source.Span {
	return p.lastSpan.At()
}

// spanOf returns the span of a child.
func (p *Parser) spanOf(c ast.Child) source.Span {
	if c.IsNode() {
		return p.b.Node(c.Node).Span
	}
	return p.b.Token(c.Token).Span
}

// errorAt starts an error diagnostic, or returns nil once MaxErrors is hit.
// The returned builder is nil-safe.
func (p *Parser) errorAt(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	if p.opts.Reporter == nil {
		return nil
	}
	if p.opts.Enough() {
		return nil
	}
	p.opts.CurrentErrors++
	return diag.ReportError(p.opts.Reporter, code, sp, msg)
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.errorAt(code, sp, msg).Emit()
}

// atLineStart reports whether tok is the first token on its line.
func atLineStart(tok token.Token) bool {
	if tok.FullSpan().Start == 0 {
		return true
	}
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

// isItemBoundary reports whether tok ends the current item without being
// part of it.
func isItemBoundary(tok token.Token) bool {
	switch {
	case tok.Kind == token.EOF, tok.Kind.IsLibraryKeyword():
		return true
	case tok.Kind == token.ShellEscape:
		return atLineStart(tok)
	}
	return false
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.ShellEscape:
		return "shell escape"
	}
	return "'" + tok.Text + "'"
}
