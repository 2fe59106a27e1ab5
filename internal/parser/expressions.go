package parser

import (
	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/token"
)

// literalKinds maps literal and word tokens to their leaf node kinds.
var literalKinds = map[token.Kind]ast.NodeKind{
	token.IntLit:          ast.KindInteger,
	token.FloatLit:        ast.KindFloat,
	token.CharLit:         ast.KindCharacter,
	token.StringLit:       ast.KindString,
	token.InterpStringLit: ast.KindInterpolatedString,
	token.KwTrue:          ast.KindBoolean,
	token.KwFalse:         ast.KindBoolean,
	token.KwNull:          ast.KindNull,
	token.Symbol:          ast.KindSymbol,
}

func isExprStart(k token.Kind) bool {
	if _, ok := literalKinds[k]; ok {
		return true
	}
	switch k {
	case token.LBracket, token.LBrace, token.VecOpen, token.MatOpen:
		return true
	}
	return k.IsOperator()
}

// parseExprs appends expressions to children until a token that cannot
// continue the current item. Stray tokens become ERROR children. ok is false
// when a compound was left unclosed; the caller must resynchronize.
func (p *Parser) parseExprs(children []ast.Child) ([]ast.Child, bool) {
	for {
		tok := p.peek()
		switch {
		case isExprStart(tok.Kind):
			id, ok := p.parseExpr()
			children = append(children, ast.NodeChild(id))
			if !ok {
				return children, false
			}
		case tok.Kind == token.Colon:
			children = append(children, ast.NodeChild(p.consOutsideQuotation()))
		case tok.Kind == token.Invalid:
			// already reported by the lexer
			children = append(children, ast.NodeChild(p.errorLeaf()))
		case tok.Kind == token.RBracket, tok.Kind == token.RBrace:
			p.err(diag.SynMismatchedCloser, tok.Span, "unmatched "+describe(tok))
			children = append(children, ast.NodeChild(p.errorLeaf()))
		case tok.Kind == token.ShellEscape && !atLineStart(tok):
			p.err(diag.SynShellEscapeInItem, tok.Span, "shell escape must start a line")
			children = append(children, ast.NodeChild(p.errorLeaf()))
		default:
			return children, true
		}
	}
}

// parseExpr parses one expression. ok is false for an unclosed compound.
func (p *Parser) parseExpr() (ast.NodeID, bool) {
	tok := p.peek()
	if kind, ok := literalKinds[tok.Kind]; ok {
		return p.leaf(kind), true
	}
	switch tok.Kind {
	case token.LBracket:
		return p.parseQuotation()
	case token.LBrace:
		return p.parseSet()
	case token.VecOpen:
		return p.parseVector()
	case token.MatOpen:
		return p.parseMatrix()
	}
	return p.leaf(ast.KindOperator), true
}

func (p *Parser) consOutsideQuotation() ast.NodeID {
	if p.opts.ConsOutsideQuotation == ConsAsOperator {
		return p.leaf(ast.KindOperator)
	}
	p.err(diag.SynConsOutsideQuote, p.peek().Span, "':' is only allowed inside a quotation")
	return p.errorLeaf()
}
