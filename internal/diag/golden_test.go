package diag

import (
	"testing"

	"joy/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.joy", []byte("a\nb\n"), 0)
	otherFile := fs.Add("/workspace/lib/other.joy", []byte("x\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     LexBadEscape,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     LexUnknownChar,
			Message:  "unknown character '~'",
			Primary:  source.Span{File: otherFile, Start: 0, End: 1},
		},
	}

	expected := "error LEX1001 lib/other.joy:1:1 unknown character '~'\n" +
		"error SYN2001 testdata/golden/sample.joy:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.joy:2:1 note line\n" +
		"warning LEX1004 testdata/golden/sample.joy:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatGoldenDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
