package parser

import (
	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/token"
)

// compound describes one bracketed construct.
type compound struct {
	kind   ast.NodeKind
	name   string
	closer token.Kind
}

var (
	quotationShape = compound{kind: ast.KindQuotation, name: "quotation", closer: token.RBracket}
	setShape       = compound{kind: ast.KindSetLiteral, name: "set", closer: token.RBrace}
	vectorShape    = compound{kind: ast.KindNativeVector, name: "native vector", closer: token.RBracket}
	matrixShape    = compound{kind: ast.KindNativeMatrix, name: "native matrix", closer: token.RBracket}
	rowShape       = compound{kind: ast.KindMatrixRow, name: "matrix row", closer: token.RBracket}
)

// element parses one element of c starting at tok. handled is false when tok
// cannot start an element; ok is false for an unclosed nested compound.
func (p *Parser) element(c *compound, tok token.Token) (id ast.NodeID, handled, ok bool) {
	switch c.kind {
	case ast.KindQuotation:
		return quotationElement(p, tok)
	case ast.KindSetLiteral:
		return setElement(p, tok)
	case ast.KindNativeMatrix:
		return rowElement(p, tok)
	default:
		return numericElement(p, tok)
	}
}

func (p *Parser) parseQuotation() (ast.NodeID, bool) { return p.parseCompound(&quotationShape) }
func (p *Parser) parseSet() (ast.NodeID, bool)       { return p.parseCompound(&setShape) }
func (p *Parser) parseVector() (ast.NodeID, bool)    { return p.parseCompound(&vectorShape) }
func (p *Parser) parseMatrix() (ast.NodeID, bool)    { return p.parseCompound(&matrixShape) }

// parseCompound consumes the opener, the elements and the closer. A wrong
// closer becomes an ERROR child. Reaching an item terminator or boundary
// before the closer reports SYN2004 and returns ok=false with the partial
// node.
func (p *Parser) parseCompound(c *compound) (ast.NodeID, bool) {
	open := p.peek()
	children := make([]ast.Child, 0, 8)
	children = append(children, ast.TokenChild(p.advance()))

	for {
		tok := p.peek()
		switch {
		case tok.Kind == c.closer:
			children = append(children, ast.TokenChild(p.advance()))
			return p.b.NewNode(c.kind, children...), true
		case tok.Kind == token.RBracket, tok.Kind == token.RBrace:
			p.errorAt(diag.SynMismatchedCloser, tok.Span, "mismatched "+describe(tok)+" in "+c.name).
				WithNote(open.Span, c.name+" opened here").
				Emit()
			children = append(children, ast.NodeChild(p.errorLeaf()))
		case tok.Kind == token.EqEq:
			p.err(diag.SynUnexpectedToken, tok.Span, "unexpected '==' in "+c.name)
			children = append(children, ast.NodeChild(p.errorLeaf()))
		case isCompoundStop(tok):
			p.unclosed(c, open, tok)
			return p.b.NewNode(c.kind, children...), false
		default:
			id, handled, ok := p.element(c, tok)
			if !handled {
				id = p.errorLeaf()
			}
			children = append(children, ast.NodeChild(id))
			if !ok {
				return p.b.NewNode(c.kind, children...), false
			}
		}
	}
}

// isCompoundStop reports tokens that end an item and so cannot appear
// inside brackets.
func isCompoundStop(tok token.Token) bool {
	switch tok.Kind {
	case token.EOF, token.Dot, token.Semicolon, token.ShellEscape:
		return true
	}
	return tok.Kind.IsLibraryKeyword()
}

func (p *Parser) unclosed(c *compound, open, at token.Token) {
	closer := "]"
	if c.closer == token.RBrace {
		closer = "}"
	}
	p.errorAt(diag.SynUnclosedBracket, open.Span, "unclosed "+c.name).
		WithNote(at.Span, "expected '"+closer+"' before "+describe(at)).
		WithFix("insert '"+closer+"'", diag.FixEdit{Span: p.afterLast(), NewText: closer}).
		Emit()
}

func quotationElement(p *Parser, tok token.Token) (ast.NodeID, bool, bool) {
	switch {
	case isExprStart(tok.Kind):
		id, ok := p.parseExpr()
		return id, true, ok
	case tok.Kind == token.Colon:
		return p.leaf(ast.KindConsOperator), true, true
	}
	// Invalid tokens were reported by the lexer.
	return ast.NoNodeID, false, true
}

func setElement(p *Parser, tok token.Token) (ast.NodeID, bool, bool) {
	switch {
	case isExprStart(tok.Kind):
		id, ok := p.parseExpr()
		return id, true, ok
	case tok.Kind == token.Colon:
		return p.consOutsideQuotation(), true, true
	}
	return ast.NoNodeID, false, true
}

// numericElement accepts integers and floats. Anything else is parsed as
// usual and wrapped in an ERROR node.
func numericElement(p *Parser, tok token.Token) (ast.NodeID, bool, bool) {
	if tok.Kind.IsNumber() {
		id, _ := p.parseExpr()
		return id, true, true
	}
	if tok.Kind == token.Invalid {
		return ast.NoNodeID, false, true
	}
	return p.nonNumeric(tok, "native vector elements must be numbers")
}

// rowElement accepts '[' number* ']' rows.
func rowElement(p *Parser, tok token.Token) (ast.NodeID, bool, bool) {
	if tok.Kind == token.LBracket {
		id, ok := p.parseCompound(&rowShape)
		return id, true, ok
	}
	if tok.Kind == token.Invalid {
		return ast.NoNodeID, false, true
	}
	return p.nonNumeric(tok, "native matrix elements must be rows of numbers")
}

func (p *Parser) nonNumeric(tok token.Token, msg string) (ast.NodeID, bool, bool) {
	p.err(diag.SynNonNumericElement, tok.Span, msg)
	if !isExprStart(tok.Kind) {
		return p.errorLeaf(), true, true
	}
	id, ok := p.parseExpr()
	return p.wrapError(id), true, ok
}
