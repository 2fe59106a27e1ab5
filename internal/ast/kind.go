package ast

// NodeKind tags a parse tree node. The names returned by String are the
// stable vocabulary downstream tools match on.
type NodeKind uint8

const (
	KindError NodeKind = iota
	KindSourceFile
	KindDefinition
	KindStatement
	KindLibraryKeyword
	KindShellEscape
	KindSemicolon
	KindPeriod
	KindQuotation
	KindConsOperator
	KindSetLiteral
	KindNativeVector
	KindNativeMatrix
	KindMatrixRow
	KindInteger
	KindFloat
	KindCharacter
	KindString
	KindInterpolatedString
	KindBoolean
	KindNull
	KindSymbol
	KindOperator

	nodeKindCount
)

var nodeKindNames = [...]string{
	KindError:              "ERROR",
	KindSourceFile:         "source_file",
	KindDefinition:         "definition",
	KindStatement:          "statement",
	KindLibraryKeyword:     "library_keyword",
	KindShellEscape:        "shell_escape",
	KindSemicolon:          "semicolon",
	KindPeriod:             "period",
	KindQuotation:          "quotation",
	KindConsOperator:       "cons_operator",
	KindSetLiteral:         "set_literal",
	KindNativeVector:       "native_vector",
	KindNativeMatrix:       "native_matrix",
	KindMatrixRow:          "matrix_row",
	KindInteger:            "integer",
	KindFloat:              "float",
	KindCharacter:          "character",
	KindString:             "string",
	KindInterpolatedString: "interpolated_string",
	KindBoolean:            "boolean",
	KindNull:               "null",
	KindSymbol:             "symbol",
	KindOperator:           "operator",
}

func (k NodeKind) String() string {
	if k < nodeKindCount {
		return nodeKindNames[k]
	}
	return "unknown"
}

// ParseNodeKind maps a vocabulary name back to its kind.
func ParseNodeKind(name string) (NodeKind, bool) {
	for k := NodeKind(0); k < nodeKindCount; k++ {
		if nodeKindNames[k] == name {
			return k, true
		}
	}
	return KindError, false
}

// IsItem reports whether k may appear directly under source_file.
func (k NodeKind) IsItem() bool {
	switch k {
	case KindDefinition, KindStatement, KindLibraryKeyword, KindShellEscape,
		KindSemicolon, KindPeriod, KindError:
		return true
	}
	return false
}

// IsLiteral reports whether k is a literal leaf.
func (k NodeKind) IsLiteral() bool {
	return k >= KindInteger && k <= KindNull
}

// IsCompound reports whether k is a bracketed expression.
func (k NodeKind) IsCompound() bool {
	return k >= KindQuotation && k <= KindMatrixRow && k != KindConsOperator
}
