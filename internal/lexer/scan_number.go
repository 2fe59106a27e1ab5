package lexer

import "joy/internal/token"

// numberLen measures an integer or float at the cursor without consuming it.
// A float needs digits on both sides of the dot, so "1." is an integer
// followed by a period.
func (lx *Lexer) numberLen() (int, token.Kind) {
	rest := lx.cursor.Rest()
	i := 0
	if i < len(rest) && rest[i] == '-' {
		i++
	}
	digits := 0
	for i < len(rest) && isDec(rest[i]) {
		i++
		digits++
	}
	if digits == 0 {
		return 0, token.Invalid
	}
	if i+1 < len(rest) && rest[i] == '.' && isDec(rest[i+1]) {
		i++
		for i < len(rest) && isDec(rest[i]) {
			i++
		}
		return i, token.FloatLit
	}
	return i, token.IntLit
}
