package parser

import (
	"joy/internal/ast"
	"joy/internal/token"
)

// recoverItem turns a failed item into an ERROR node. It keeps consuming
// tokens up to and including the next '.' or ';', and stops without
// consuming at EOF, a library keyword or a shell escape that starts a line.
func (p *Parser) recoverItem(children []ast.Child) ast.NodeID {
	for {
		tok := p.peek()
		if isItemBoundary(tok) {
			break
		}
		children = append(children, ast.TokenChild(p.advance()))
		if tok.Kind == token.Dot || tok.Kind == token.Semicolon {
			break
		}
	}
	return p.b.NewNode(ast.KindError, children...)
}
