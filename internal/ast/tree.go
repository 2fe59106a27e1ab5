package ast

import (
	"strings"

	"joy/internal/source"
	"joy/internal/token"
)

// Tree is the immutable result of one parse. Nodes and tokens live in
// arenas and are addressed by ID.
type Tree struct {
	File   source.FileID
	Nodes  *Arena[Node]
	Tokens *Arena[token.Token]
	root   NodeID
}

// Root returns the source_file node.
func (t *Tree) Root() NodeID { return t.root }

// Node returns the node for id, or nil.
func (t *Tree) Node(id NodeID) *Node { return t.Nodes.Get(uint32(id)) }

// Token returns the token for id, or nil.
func (t *Tree) Token(id TokenID) *token.Token { return t.Tokens.Get(uint32(id)) }

// Items returns the item nodes of the root in source order.
func (t *Tree) Items() []NodeID {
	root := t.Node(t.root)
	if root == nil {
		return nil
	}
	out := make([]NodeID, 0, len(root.Children))
	for _, c := range root.Children {
		if c.IsNode() {
			out = append(out, c.Node)
		}
	}
	return out
}

// HasErrors reports whether any ERROR node exists in the tree.
func (t *Tree) HasErrors() bool {
	root := t.Node(t.root)
	return root != nil && root.HasError()
}

// Walk visits nodes depth-first in document order. Returning false from fn
// skips the node's children.
func (t *Tree) Walk(fn func(id NodeID, depth int) bool) {
	t.walk(t.root, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	n := t.Node(id)
	if n == nil || !fn(id, depth) {
		return
	}
	for _, c := range n.Children {
		if c.IsNode() {
			t.walk(c.Node, depth+1, fn)
		}
	}
}

// Leaves calls fn for every terminal token in document order.
func (t *Tree) Leaves(fn func(id TokenID)) {
	t.leaves(t.root, fn)
}

func (t *Tree) leaves(id NodeID, fn func(TokenID)) {
	n := t.Node(id)
	if n == nil {
		return
	}
	for _, c := range n.Children {
		if c.IsNode() {
			t.leaves(c.Node, fn)
		} else {
			fn(c.Token)
		}
	}
}

// Text concatenates every leaf token with its leading trivia. For a tree
// built from a whole file the result equals the file content.
func (t *Tree) Text() string {
	var b strings.Builder
	t.Leaves(func(id TokenID) {
		tok := t.Token(id)
		for _, tr := range tok.Leading {
			b.WriteString(tr.Text)
		}
		b.WriteString(tok.Text)
	})
	return b.String()
}

// Errors returns the ERROR nodes in document order, outermost first.
func (t *Tree) Errors() []NodeID {
	var out []NodeID
	t.Walk(func(id NodeID, _ int) bool {
		n := t.Node(id)
		if !n.HasError() {
			return false
		}
		if n.Kind == KindError {
			out = append(out, id)
		}
		return true
	})
	return out
}

// FirstToken returns the first leaf token under id.
func (t *Tree) FirstToken(id NodeID) *token.Token {
	n := t.Node(id)
	for n != nil && len(n.Children) > 0 {
		c := n.Children[0]
		if c.IsToken() {
			return t.Token(c.Token)
		}
		n = t.Node(c.Node)
	}
	return nil
}

// DefinitionName returns the name token of a definition node.
func (t *Tree) DefinitionName(id NodeID) (*token.Token, bool) {
	n := t.Node(id)
	if n == nil || n.Kind != KindDefinition || len(n.Children) == 0 || !n.Children[0].IsNode() {
		return nil, false
	}
	name := t.Node(n.Children[0].Node)
	if name.Kind != KindSymbol {
		return nil, false
	}
	return t.FirstToken(n.Children[0].Node), true
}

// DefinitionBody returns the expression nodes between '==' and the terminator.
func (t *Tree) DefinitionBody(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil || n.Kind != KindDefinition || len(n.Children) < 2 {
		return nil
	}
	var out []NodeID
	for _, c := range n.Children[1:] {
		if c.IsNode() {
			out = append(out, c.Node)
		}
	}
	return out
}

// Expressions returns the child nodes of a statement, quotation, set, vector,
// matrix or row, skipping delimiter tokens.
func (t *Tree) Expressions(id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	for _, c := range n.Children {
		if c.IsNode() {
			out = append(out, c.Node)
		}
	}
	return out
}
