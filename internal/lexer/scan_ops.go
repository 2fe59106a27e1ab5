package lexer

import (
	"bytes"
	"sort"

	"joy/internal/token"
)

type opEntry struct {
	text []byte
	kind token.Kind
}

// operatorTable holds every operator spelling, longest first.
var operatorTable = buildOperatorTable()

func buildOperatorTable() []opEntry {
	spellings := token.Operators()
	out := make([]opEntry, 0, len(spellings))
	for _, s := range spellings {
		k, _ := token.LookupOperator(s)
		out = append(out, opEntry{text: []byte(s), kind: k})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].text) != len(out[j].text) {
			return len(out[i].text) > len(out[j].text)
		}
		return bytes.Compare(out[i].text, out[j].text) < 0
	})
	return out
}

// operatorLen returns the longest operator that prefixes the unread input.
func (lx *Lexer) operatorLen() (int, token.Kind) {
	rest := lx.cursor.Rest()
	for _, op := range operatorTable {
		if bytes.HasPrefix(rest, op.text) {
			return len(op.text), op.kind
		}
	}
	return 0, token.Invalid
}
