package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"joy/internal/diag"
	"joy/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("DEFINE\n  x == \"unterminated\n")
	fileID := fs.AddVirtual("test.joy", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 14, End: 28},
		"Unterminated string literal",
	))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected exactly one diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" {
		t.Errorf("severity/code = %s/%s", d.Severity, d.Code)
	}
	if d.Location.File != "test.joy" {
		t.Errorf("Expected file=test.joy, got %s", d.Location.File)
	}
	if d.Location.StartByte != 14 || d.Location.EndByte != 28 {
		t.Errorf("byte range = %d-%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 8 {
		t.Errorf("start = %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONFixesAndMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fix.joy", []byte("1 2; 3 4"))

	bag := diag.NewBag(0)
	semi := source.Span{File: fileID, Start: 3, End: 4}
	bag.Add(diag.New(diag.SevError, diag.SynMissingTerminator, semi, "statement must end with '.', not ';'").
		WithFix("replace ';' with '.'", diag.FixEdit{Span: semi, NewText: "."}))
	bag.Add(diag.New(diag.SevError, diag.SynMissingTerminator, source.Span{File: fileID, Start: 8, End: 8}, "missing '.'"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: PathModeBasename, IncludeFixes: true, IncludePreviews: true, Max: 1})
	if out.Count != 1 {
		t.Fatalf("Max must truncate output, got %d", out.Count)
	}
	fixes := out.Diagnostics[0].Fixes
	if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
		t.Fatalf("fixes = %+v", fixes)
	}
	edit := fixes[0].Edits[0]
	if edit.OldText != ";" || edit.NewText != "." {
		t.Errorf("edit = %+v", edit)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "1 2. 3 4" {
		t.Errorf("after lines = %q", edit.AfterLines)
	}
}

func TestShort(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("s.joy", []byte("]"))

	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.SynMismatchedCloser, source.Span{File: fileID, Start: 0, End: 1}, "unmatched ']'"))

	var buf bytes.Buffer
	if err := Short(&buf, bag, fs, PathModeBasename, false); err != nil {
		t.Fatalf("Short: %v", err)
	}
	if got, want := buf.String(), "error SYN2003 s.joy:1:1 unmatched ']'\n"; got != want {
		t.Errorf("Short = %q, want %q", got, want)
	}
}
