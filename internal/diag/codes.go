package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                      Code = 1000
	LexUnknownChar               Code = 1001
	LexUnterminatedString        Code = 1002
	LexUnterminatedBlockComment  Code = 1003
	LexBadEscape                 Code = 1004
	LexTokenTooLong              Code = 1005
	LexBadChar                   Code = 1006
	LexUnterminatedInterpolation Code = 1007

	// Syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynMissingTerminator Code = 2002
	SynMismatchedCloser  Code = 2003
	SynUnclosedBracket   Code = 2004
	SynConsOutsideQuote  Code = 2005
	SynNonNumericElement Code = 2006
	SynDefinitionName    Code = 2007
	SynShellEscapeInItem Code = 2008

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Project
	ProjInfo          Code = 5000
	ProjInvalidConfig Code = 5001
	ProjNoSources     Code = 5002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                  "Unknown error",
		LexInfo:                      "Lexical information",
		LexUnknownChar:               "Unknown character",
		LexUnterminatedString:        "Unterminated string literal",
		LexUnterminatedBlockComment:  "Unterminated block comment",
		LexBadEscape:                 "Invalid escape sequence",
		LexTokenTooLong:              "Token too long",
		LexBadChar:                   "Invalid character literal",
		LexUnterminatedInterpolation: "Unterminated interpolated string",
		SynInfo:                      "Syntax information",
		SynUnexpectedToken:           "Unexpected token",
		SynMissingTerminator:         "Missing terminator",
		SynMismatchedCloser:          "Mismatched closing bracket",
		SynUnclosedBracket:           "Unclosed bracket",
		SynConsOutsideQuote:          "Cons operator outside quotation",
		SynNonNumericElement:         "Non-numeric element in native vector or matrix",
		SynDefinitionName:            "Definition name must be a symbol",
		SynShellEscapeInItem:         "Shell escape not at item boundary",
		IOInfo:                       "I/O information",
		IOLoadFileError:              "I/O load file error",
		IOCacheError:                 "Parse cache error",
		ProjInfo:                     "Project information",
		ProjInvalidConfig:            "Invalid project configuration",
		ProjNoSources:                "No Joy sources found",
		ObsInfo:                      "Observability information",
		ObsTimings:                   "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// ParseCode resolves an ID such as "SYN2001" back to its Code.
func ParseCode(id string) (Code, bool) {
	for c := range codeDescription {
		if c != UnknownCode && c.ID() == id {
			return c, true
		}
	}
	return UnknownCode, false
}
