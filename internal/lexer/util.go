package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// peekRune decodes the rune at the cursor. size is 0 at EOF or on invalid UTF-8.
func (lx *Lexer) peekRune() (r rune, size int) {
	return decodeRune(lx.cursor.Rest())
}

// bumpRune advances past one rune; it reports false when nothing valid was
// decoded and the cursor did not move.
func (lx *Lexer) bumpRune() bool {
	_, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
	return true
}

func isSymbolStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		b := byte(r)
		return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
	}
	return unicode.IsLetter(r)
}

func isSymbolContinueRune(r rune) bool {
	switch r {
	case '_', '-', '?', '!':
		return true
	}
	if r < utf8.RuneSelf {
		return isSymbolStartRune(r) || isDec(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool   { return b >= '0' && b <= '9' }
func isOctal(b byte) bool { return b >= '0' && b <= '7' }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

func isSimpleEscape(b byte) bool {
	switch b {
	case 'b', 't', 'n', 'v', 'f', 'r', '"', '\'', '\\':
		return true
	}
	return false
}

func quoteRune(text string) string {
	if r, _ := utf8.DecodeRuneInString(text); r != utf8.RuneError {
		return strconv.QuoteRune(r)
	}
	return strconv.Quote(text)
}
