package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"joy/internal/ast"
	"joy/internal/lexer"
	"joy/internal/parser"
	"joy/internal/source"
)

func parseForTest(t *testing.T, input string) (*ast.Tree, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("tree.joy", []byte(input))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	res := parser.ParseFile(context.Background(), lx, ast.NewBuilder(fileID, ast.Hints{}), parser.Options{})
	return res.Tree, fs
}

func TestFormatTreeSexp(t *testing.T) {
	tree, fs := parseForTest(t, "sq == dup *.\n3 sq.")
	var buf bytes.Buffer
	if err := FormatTreeSexp(&buf, tree, fs, TreeOpts{}); err != nil {
		t.Fatalf("FormatTreeSexp: %v", err)
	}
	want := strings.Join([]string{
		"(source_file",
		"  (definition",
		"    (symbol)",
		"    (symbol)",
		"    (operator))",
		"  (statement",
		"    (integer)",
		"    (symbol)))",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("sexp mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatTreeSexpPositions(t *testing.T) {
	tree, fs := parseForTest(t, "1.")
	var buf bytes.Buffer
	if err := FormatTreeSexp(&buf, tree, fs, TreeOpts{Positions: true}); err != nil {
		t.Fatalf("FormatTreeSexp: %v", err)
	}
	if !strings.Contains(buf.String(), "(integer [0, 0] - [0, 1])") {
		t.Errorf("missing positions:\n%s", buf.String())
	}
}

func TestFormatTreePretty(t *testing.T) {
	tree, fs := parseForTest(t, "[1].")
	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, tree, fs, TreeOpts{Tokens: true}); err != nil {
		t.Fatalf("FormatTreePretty: %v", err)
	}
	want := strings.Join([]string{
		"tree.joy (span: 1:1-1:5)",
		"└─ statement (span: 1:1-1:5)",
		"   ├─ quotation (span: 1:1-1:4)",
		"   │  ├─ LBracket \"[\"",
		"   │  ├─ integer \"1\" (span: 1:2-1:3)",
		"   │  └─ RBracket \"]\"",
		"   └─ Dot \".\"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("pretty mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeEncodings(t *testing.T) {
	tree, _ := parseForTest(t, "v[1 x].")
	want := BuildTreeOutput(tree, TreeOpts{})
	if !want.Error {
		t.Fatalf("root must be marked as containing an error")
	}

	var jsonBuf bytes.Buffer
	if err := FormatTreeJSON(&jsonBuf, tree, TreeOpts{}); err != nil {
		t.Fatalf("FormatTreeJSON: %v", err)
	}
	var fromJSON NodeOutput
	if err := json.Unmarshal(jsonBuf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if diff := cmp.Diff(want, fromJSON); diff != "" {
		t.Errorf("json round-trip mismatch (-want +got):\n%s", diff)
	}

	var mpBuf bytes.Buffer
	if err := FormatTreeMsgpack(&mpBuf, tree, TreeOpts{}); err != nil {
		t.Fatalf("FormatTreeMsgpack: %v", err)
	}
	var fromMsgpack NodeOutput
	if err := msgpack.Unmarshal(mpBuf.Bytes(), &fromMsgpack); err != nil {
		t.Fatalf("decode msgpack: %v", err)
	}
	if diff := cmp.Diff(want, fromMsgpack); diff != "" {
		t.Errorf("msgpack round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTokensJSONCarriesValues(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("tok.joy", []byte("-4 \"a\\tb\" sym"))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	var toks = lexAll(lx)

	out := BuildTokensOutput(toks, fs)
	if len(out) != 4 {
		t.Fatalf("expected 4 tokens with EOF, got %d", len(out))
	}
	if out[0].Value != int64(-4) {
		t.Errorf("int value = %#v", out[0].Value)
	}
	if out[1].Value != "a\tb" {
		t.Errorf("string value = %#v", out[1].Value)
	}
	if out[2].Value != nil {
		t.Errorf("symbol must carry no value, got %#v", out[2].Value)
	}
	if out[2].Col != 11 || len(out[2].Leading) != 1 {
		t.Errorf("symbol position/leading = %d %+v", out[2].Col, out[2].Leading)
	}
}
