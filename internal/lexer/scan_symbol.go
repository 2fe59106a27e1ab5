package lexer

import (
	"unicode/utf8"
)

// symbolLen measures the maximal symbol at the cursor without consuming it:
// a letter or '_' followed by letters, digits, '_', '-', '?' or '!'.
func (lx *Lexer) symbolLen() int {
	rest := lx.cursor.Rest()
	r, sz := decodeRune(rest)
	if sz == 0 || !isSymbolStartRune(r) {
		return 0
	}
	i := sz
	for i < len(rest) {
		r, sz = decodeRune(rest[i:])
		if !isSymbolContinueRune(r) {
			break
		}
		i += sz
	}
	return i
}

func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return utf8.RuneError, 0
	}
	if b[0] < utf8.RuneSelf {
		return rune(b[0]), 1
	}
	r, sz := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return r, 0
	}
	return r, sz
}
