package ast

import (
	"joy/internal/source"
)

type NodeFlags uint8

const (
	// FlagHasError is set on a node that is, or contains, an ERROR node.
	// A compound with the flag but a non-error kind was parsed but is invalid.
	FlagHasError NodeFlags = 1 << iota
)

// Child is one ordered child of a node: either a nested node or a terminal
// token. Exactly one of the two IDs is valid.
type Child struct {
	Node  NodeID
	Token TokenID
}

func NodeChild(id NodeID) Child   { return Child{Node: id} }
func TokenChild(id TokenID) Child { return Child{Token: id} }

func (c Child) IsNode() bool  { return c.Node.IsValid() }
func (c Child) IsToken() bool { return c.Token.IsValid() }

type Node struct {
	Kind     NodeKind
	Span     source.Span
	Children []Child
	Flags    NodeFlags
}

func (n *Node) HasError() bool {
	return n.Flags&FlagHasError != 0
}
