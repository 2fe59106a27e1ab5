package diag

import "joy/internal/source"

// New returns a diagnostic without notes or fixes. Use ReportError when a
// Reporter is at hand; New is for diagnostics assembled outside the lexer
// and parser, such as cache restores.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

// FileError is an error that concerns a whole file rather than a byte range,
// e.g. a file that could not be read. Its primary span is empty at offset 0.
func FileError(code Code, file source.FileID, msg string) Diagnostic {
	return New(SevError, code, source.Span{File: file}, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix appends a fix. Edits must not overlap.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
