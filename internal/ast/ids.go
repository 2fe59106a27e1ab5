package ast

type (
	NodeID  uint32
	TokenID uint32
)

const (
	NoNodeID  NodeID  = 0
	NoTokenID TokenID = 0
)

func (id NodeID) IsValid() bool  { return id != NoNodeID }
func (id TokenID) IsValid() bool { return id != NoTokenID }
