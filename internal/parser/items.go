package parser

import (
	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/token"
)

// parseItem parses one top-level item. It always consumes at least one token.
func (p *Parser) parseItem() ast.NodeID {
	tok := p.peek()
	switch {
	case tok.Kind == token.Dot:
		return p.leaf(ast.KindPeriod)
	case tok.Kind == token.Semicolon:
		return p.leaf(ast.KindSemicolon)
	case tok.Kind.IsLibraryKeyword():
		return p.leaf(ast.KindLibraryKeyword)
	case tok.Kind == token.ShellEscape:
		return p.leaf(ast.KindShellEscape)
	case tok.Kind == token.Symbol && p.lx.PeekN(1).Kind == token.EqEq:
		return p.parseDefinition()
	case tok.Kind == token.EqEq:
		return p.parseBadDefinition(nil)
	}
	return p.parseStatement()
}

// parseStatement parses expr+ '.'.
func (p *Parser) parseStatement() ast.NodeID {
	children, ok := p.parseExprs(nil)
	if !ok {
		return p.recoverItem(children)
	}

	switch tok := p.peek(); tok.Kind {
	case token.Dot:
		children = append(children, ast.TokenChild(p.advance()))
		return p.b.NewNode(ast.KindStatement, children...)
	case token.Semicolon:
		p.errorAt(diag.SynMissingTerminator, tok.Span, "statement must end with '.', not ';'").
			WithFix("replace ';' with '.'", diag.FixEdit{Span: tok.Span, NewText: "."}).
			Emit()
		children = append(children, ast.TokenChild(p.advance()))
		return p.b.NewNode(ast.KindError, children...)
	case token.EqEq:
		return p.parseBadDefinition(children)
	default:
		p.missingTerminator(tok, "statement")
		return p.b.NewNode(ast.KindError, children...)
	}
}

// parseDefinition parses symbol '==' body? ('.' | ';').
func (p *Parser) parseDefinition() ast.NodeID {
	children := make([]ast.Child, 0, 8)
	children = append(children, ast.NodeChild(p.leaf(ast.KindSymbol)))
	children = append(children, ast.TokenChild(p.advance())) // ==

	children, ok := p.parseExprs(children)
	if !ok {
		return p.recoverItem(children)
	}

	switch tok := p.peek(); tok.Kind {
	case token.Dot, token.Semicolon:
		children = append(children, ast.TokenChild(p.advance()))
		return p.b.NewNode(ast.KindDefinition, children...)
	case token.EqEq:
		p.err(diag.SynUnexpectedToken, tok.Span, "unexpected '==' in definition body")
		return p.recoverItem(children)
	default:
		p.missingTerminator(tok, "definition")
		return p.b.NewNode(ast.KindError, children...)
	}
}

// parseBadDefinition handles '==' that does not follow a lone symbol.
// prefix holds the already parsed expressions before it.
func (p *Parser) parseBadDefinition(prefix []ast.Child) ast.NodeID {
	eq := p.peek()
	if len(prefix) == 1 {
		p.errorAt(diag.SynDefinitionName, p.spanOf(prefix[0]), "definition name must be a symbol").
			WithNote(eq.Span, "definition operator here").
			Emit()
	} else {
		p.err(diag.SynUnexpectedToken, eq.Span, "unexpected '=='")
	}

	children := append(prefix, ast.TokenChild(p.advance()))
	return p.recoverItem(children)
}

// missingTerminator reports a statement or definition that ran into tok
// without a terminator. The offending token is left for the next item.
func (p *Parser) missingTerminator(tok token.Token, what string) {
	at := p.afterLast()
	p.errorAt(diag.SynMissingTerminator, at, what+" must end with '.' before "+describe(tok)).
		WithFix("insert '.'", diag.FixEdit{Span: at, NewText: "."}).
		Emit()
}
