package lexer

import (
	"joy/internal/diag"
	"joy/internal/extscan"
	"joy/internal/source"
)

// maxTokenLength bounds symbols, numbers and operators. Longer runs are
// returned as a single Invalid token.
const maxTokenLength = 4096

type Options struct {
	Reporter diag.Reporter // may be nil; lexing continues regardless
	// Scanners overrides the stateful sub-scanners; nil means extscan.Default.
	Scanners extscan.Set
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
