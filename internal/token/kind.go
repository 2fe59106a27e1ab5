package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Symbol represents a user identifier such as dup or swap-top?.
	Symbol

	// IntLit represents an integer literal, optionally signed.
	IntLit
	// FloatLit represents a float literal with digits on both sides of the dot.
	FloatLit
	// CharLit represents a character literal ('a, 'a' or '\n).
	CharLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// InterpStringLit represents an interpolated string ($"...${x}...").
	InterpStringLit
	// KwTrue represents the 'true' literal.
	KwTrue // true
	// KwFalse represents the 'false' literal.
	KwFalse // false
	// KwNull represents the 'null' literal.
	KwNull // null

	// KwLibra represents the 'LIBRA' keyword.
	KwLibra // LIBRA
	// KwDefine represents the 'DEFINE' keyword.
	KwDefine // DEFINE
	// KwHide represents the 'HIDE' keyword.
	KwHide // HIDE
	// KwIn represents the 'IN' keyword.
	KwIn // IN
	// KwEnd represents the 'END' keyword.
	KwEnd // END
	// KwModule represents the 'MODULE' keyword.
	KwModule // MODULE
	// KwPrivate represents the 'PRIVATE' keyword.
	KwPrivate // PRIVATE
	// KwPublic represents the 'PUBLIC' keyword.
	KwPublic // PUBLIC
	// KwConst represents the 'CONST' keyword.
	KwConst // CONST
	// KwInline represents the 'INLINE' keyword.
	KwInline // INLINE

	// ShellEscape represents a '$' line passed verbatim to the shell.
	ShellEscape

	// LBracket opens a quotation or a matrix row.
	LBracket // [
	// RBracket closes a quotation, vector, matrix or row.
	RBracket // ]
	// LBrace opens a set literal.
	LBrace // {
	// RBrace closes a set literal.
	RBrace // }
	// VecOpen opens a native vector.
	VecOpen // v[
	// MatOpen opens a native matrix.
	MatOpen // m[
	// Colon is the cons operator.
	Colon // :
	// Dot terminates a statement or definition.
	Dot // .
	// Semicolon terminates a definition.
	Semicolon // ;
	// EqEq separates a definition name from its body.
	EqEq // ==

	// GtEq represents the '>=' operator.
	GtEq // >=
	// LtEq represents the '<=' operator.
	LtEq // <=
	// BangEq represents the '!=' operator.
	BangEq // !=
	// Gt represents the '>' operator.
	Gt // >
	// Lt represents the '<' operator.
	Lt // <
	// Assign represents the '=' operator.
	Assign // =
	// Plus represents the '+' operator.
	Plus // +
	// Minus represents the '-' operator.
	Minus // -
	// Star represents the '*' operator.
	Star // *
	// Slash represents the '/' operator.
	Slash // /

	// ToSet represents the '>set' conversion.
	ToSet // >set
	// ToDict represents the '>dict' conversion.
	ToDict // >dict
	// ToVec represents the '>vec' conversion.
	ToVec // >vec
	// ToMat represents the '>mat' conversion.
	ToMat // >mat
	// ToList represents the '>list' conversion.
	ToList // >list
	// ToJSON represents the '>json' conversion.
	ToJSON // >json
	// FromJSON represents the 'json>' conversion.
	FromJSON // json>

	// VecPlus represents the 'v+' operator.
	VecPlus // v+
	// VecMinus represents the 'v-' operator.
	VecMinus // v-
	// VecStar represents the 'v*' operator.
	VecStar // v*
	// VecSlash represents the 'v/' operator.
	VecSlash // v/
	// MatPlus represents the 'm+' operator.
	MatPlus // m+
	// MatMinus represents the 'm-' operator.
	MatMinus // m-
	// MatStar represents the 'm*' operator.
	MatStar // m*
	// MatSlash represents the 'm/' operator.
	MatSlash // m/

	kindCount
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Symbol:          "Symbol",
	IntLit:          "IntLit",
	FloatLit:        "FloatLit",
	CharLit:         "CharLit",
	StringLit:       "StringLit",
	InterpStringLit: "InterpStringLit",
	KwTrue:          "KwTrue",
	KwFalse:         "KwFalse",
	KwNull:          "KwNull",
	KwLibra:         "KwLibra",
	KwDefine:        "KwDefine",
	KwHide:          "KwHide",
	KwIn:            "KwIn",
	KwEnd:           "KwEnd",
	KwModule:        "KwModule",
	KwPrivate:       "KwPrivate",
	KwPublic:        "KwPublic",
	KwConst:         "KwConst",
	KwInline:        "KwInline",
	ShellEscape:     "ShellEscape",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	VecOpen:         "VecOpen",
	MatOpen:         "MatOpen",
	Colon:           "Colon",
	Dot:             "Dot",
	Semicolon:       "Semicolon",
	EqEq:            "EqEq",
	GtEq:            "GtEq",
	LtEq:            "LtEq",
	BangEq:          "BangEq",
	Gt:              "Gt",
	Lt:              "Lt",
	Assign:          "Assign",
	Plus:            "Plus",
	Minus:           "Minus",
	Star:            "Star",
	Slash:           "Slash",
	ToSet:           "ToSet",
	ToDict:          "ToDict",
	ToVec:           "ToVec",
	ToMat:           "ToMat",
	ToList:          "ToList",
	ToJSON:          "ToJSON",
	FromJSON:        "FromJSON",
	VecPlus:         "VecPlus",
	VecMinus:        "VecMinus",
	VecStar:         "VecStar",
	VecSlash:        "VecSlash",
	MatPlus:         "MatPlus",
	MatMinus:        "MatMinus",
	MatStar:         "MatStar",
	MatSlash:        "MatSlash",
}

// String returns the stable name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsLibraryKeyword reports whether k is one of the upper-case library keywords.
func (k Kind) IsLibraryKeyword() bool {
	return k >= KwLibra && k <= KwInline
}

// IsOperator reports whether k belongs to the closed operator set.
func (k Kind) IsOperator() bool {
	return k >= GtEq && k <= MatSlash
}

// IsNumber reports whether k is an integer or float literal.
func (k Kind) IsNumber() bool {
	return k == IntLit || k == FloatLit
}

// IsLiteral reports whether k is any literal kind, including true/false/null.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= KwNull
}

// IsTerminator reports whether k ends a statement or definition.
func (k Kind) IsTerminator() bool {
	return k == Dot || k == Semicolon
}

// IsCloser reports whether k closes a compound expression.
func (k Kind) IsCloser() bool {
	return k == RBracket || k == RBrace
}
