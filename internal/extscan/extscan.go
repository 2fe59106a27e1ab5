// Package extscan holds the stateful scanners the lexer consults before its
// fixed patterns: nested block comments and interpolated strings. Neither
// can be expressed as a regular pattern, so each is a small explicit state
// machine over the raw bytes.
package extscan

// Kind identifies which construct a Strategy recognized.
type Kind uint8

const (
	KindNone Kind = iota
	KindBlockComment
	KindInterpolatedString
)

func (k Kind) String() string {
	switch k {
	case KindBlockComment:
		return "block_comment"
	case KindInterpolatedString:
		return "interpolated_string"
	default:
		return "none"
	}
}

// Status is the outcome of a single scan attempt.
type Status uint8

const (
	// NoMatch means the opening delimiter is not present at the offset.
	NoMatch Status = iota
	// Matched means Len bytes form a complete construct.
	Matched
	// Unterminated means the opening delimiter was found but input ended
	// before the construct closed. Len is zero; the caller decides how to
	// recover.
	Unterminated
)

func (s Status) String() string {
	switch s {
	case Matched:
		return "matched"
	case Unterminated:
		return "unterminated"
	default:
		return "no-match"
	}
}

// Result describes what a Strategy found at an offset.
// Len is non-zero only when Status == Matched.
type Result struct {
	Kind   Kind
	Status Status
	Len    int
	// Open is the length of the opening delimiter, set for Matched and
	// Unterminated results.
	Open int
}

// Strategy recognizes one stateful construct starting at src[off].
// Implementations must not retain src and must be safe for concurrent use.
type Strategy interface {
	Kind() Kind
	Scan(src []byte, off int) Result
}

// Set is an ordered list of strategies; the first one that does not report
// NoMatch wins.
type Set []Strategy

// Default is the ordered set used by the lexer.
var Default = Set{BlockComment{}, InterpolatedString{}}

// Scan runs each strategy in order.
func (s Set) Scan(src []byte, off int) Result {
	for _, st := range s {
		if res := st.Scan(src, off); res.Status != NoMatch {
			return res
		}
	}
	return Result{}
}
