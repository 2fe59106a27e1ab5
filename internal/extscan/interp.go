package extscan

// InterpolatedString scans $"..." literals. Inside the literal part a
// backslash escapes the next byte. "${" opens a splice that runs to its
// balanced "}"; a splice may contain further braces, brackets and complete
// string literals, so a quote or brace inside a nested string does not end
// the splice.
type InterpolatedString struct{}

func (InterpolatedString) Kind() Kind { return KindInterpolatedString }

type interpState uint8

const (
	stText interpState = iota
	stTextEscape
	stSplice
	stSpliceString
	stSpliceStringEscape
)

func (InterpolatedString) Scan(src []byte, off int) Result {
	if off+1 >= len(src) || src[off] != '$' || src[off+1] != '"' {
		return Result{}
	}
	state := stText
	depth := 0
	for i := off + 2; i < len(src); i++ {
		c := src[i]
		switch state {
		case stText:
			switch {
			case c == '"':
				return Result{Kind: KindInterpolatedString, Status: Matched, Len: i + 1 - off, Open: 2}
			case c == '\\':
				state = stTextEscape
			case c == '$' && i+1 < len(src) && src[i+1] == '{':
				i++
				depth = 1
				state = stSplice
			}
		case stTextEscape:
			state = stText
		case stSplice:
			switch c {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					state = stText
				}
			case '"':
				state = stSpliceString
			}
		case stSpliceString:
			switch c {
			case '\\':
				state = stSpliceStringEscape
			case '"':
				state = stSplice
			}
		case stSpliceStringEscape:
			state = stSpliceString
		}
	}
	return Result{Kind: KindInterpolatedString, Status: Unterminated, Open: 2}
}
