package parser

import (
	"context"
	"strconv"

	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/lexer"
	"joy/internal/source"
	"joy/internal/token"
	"joy/internal/trace"
)

// ConsPolicy decides what ':' means outside a quotation.
type ConsPolicy uint8

const (
	// ConsError reports SYN2005 and keeps the colon as an ERROR child.
	ConsError ConsPolicy = iota
	// ConsAsOperator accepts the colon as an ordinary operator.
	ConsAsOperator
)

// ParseConsPolicy maps the configuration spelling to a policy.
func ParseConsPolicy(s string) (ConsPolicy, bool) {
	switch s {
	case "", "error":
		return ConsError, true
	case "operator":
		return ConsAsOperator, true
	}
	return ConsError, false
}

func (c ConsPolicy) String() string {
	if c == ConsAsOperator {
		return "operator"
	}
	return "error"
}

type Options struct {
	// Trace emits one trace point per item at trace.ScopeNode.
	Trace         bool
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	// ConsOutsideQuotation is the policy for ':' outside '[ ]'.
	ConsOutsideQuotation ConsPolicy
}

// Enough reports whether MaxErrors diagnostics were already emitted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *ast.Tree
	Bag  *diag.Bag
}

// Parser holds the state for one file.
type Parser struct {
	lx       *lexer.Lexer
	b        *ast.Builder
	opts     Options
	lastSpan source.Span // span of the last consumed token
}

// ParseFile parses every item of the lexer's file and always returns a tree.
// Syntax errors become ERROR nodes and diagnostics; nothing aborts the parse.
func ParseFile(
	ctx context.Context,
	lx *lexer.Lexer,
	builder *ast.Builder,
	opts Options,
) Result {
	span, _ := trace.Start(ctx, trace.ScopePass, "parse")

	p := Parser{
		lx:   lx,
		b:    builder,
		opts: opts,
	}
	p.lastSpan = source.Span{File: lx.File().ID}

	children := make([]ast.Child, 0, 16)
	for !p.at(token.EOF) {
		item := p.parseItem()
		children = append(children, ast.NodeChild(item))
		if p.opts.Trace {
			span.Point(trace.ScopeNode, "item", p.b.Node(item).Kind.String())
		}
	}
	eof := p.b.AddToken(p.lx.Next())
	children = append(children, ast.TokenChild(eof))
	root := p.b.NewNode(ast.KindSourceFile, children...)
	tree := p.b.Finish(root)

	span.WithExtra("items", strconv.Itoa(len(children)-1)).
		WithExtra("errors", strconv.FormatUint(uint64(p.opts.CurrentErrors), 10)).
		End("")

	return Result{Tree: tree, Bag: bagOf(opts.Reporter)}
}

// bagOf finds the bag behind r, looking through wrapping reporters.
func bagOf(r diag.Reporter) *diag.Bag {
	for r != nil {
		switch v := r.(type) {
		case *diag.BagReporter:
			return v.Bag
		case diag.BagReporter:
			return v.Bag
		case interface{ Unwrap() diag.Reporter }:
			r = v.Unwrap()
		default:
			return nil
		}
	}
	return nil
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}
