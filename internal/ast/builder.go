package ast

import (
	"joy/internal/source"
	"joy/internal/token"
)

type Hints struct{ Nodes, Tokens uint }

// Builder allocates nodes and tokens for a single Tree.
type Builder struct {
	file   source.FileID
	Nodes  *Arena[Node]
	Tokens *Arena[token.Token]
}

func NewBuilder(file source.FileID, hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	if hints.Tokens == 0 {
		hints.Tokens = 1 << 8
	}
	return &Builder{
		file:   file,
		Nodes:  NewArena[Node](hints.Nodes),
		Tokens: NewArena[token.Token](hints.Tokens),
	}
}

// AddToken stores a consumed token. Each token must be added exactly once.
func (b *Builder) AddToken(tok token.Token) TokenID {
	return TokenID(b.Tokens.Allocate(tok))
}

// Token returns a previously added token.
func (b *Builder) Token(id TokenID) *token.Token {
	return b.Tokens.Get(uint32(id))
}

// Node returns a previously built node.
func (b *Builder) Node(id NodeID) *Node {
	return b.Nodes.Get(uint32(id))
}

// NewNode builds a node whose span covers its children. ERROR nodes and
// nodes with an erroneous child get FlagHasError. A node without children
// gets an empty span at offset 0.
func (b *Builder) NewNode(kind NodeKind, children ...Child) NodeID {
	n := Node{
		Kind:     kind,
		Span:     source.Span{File: b.file},
		Children: children,
	}
	if kind == KindError {
		n.Flags |= FlagHasError
	}
	for i, c := range children {
		var sp source.Span
		if c.IsNode() {
			child := b.Node(c.Node)
			sp = child.Span
			if child.HasError() {
				n.Flags |= FlagHasError
			}
		} else {
			sp = b.Token(c.Token).Span
		}
		if i == 0 {
			n.Span = sp
		} else {
			n.Span = n.Span.Cover(sp)
		}
	}
	return NodeID(b.Nodes.Allocate(n))
}

// Leaf wraps a single token in a node of the given kind.
func (b *Builder) Leaf(kind NodeKind, tok TokenID) NodeID {
	return b.NewNode(kind, TokenChild(tok))
}

// Finish seals the builder into a Tree rooted at root.
func (b *Builder) Finish(root NodeID) *Tree {
	return &Tree{
		File:   b.file,
		Nodes:  b.Nodes,
		Tokens: b.Tokens,
		root:   root,
	}
}
