package parser_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/lexer"
	"joy/internal/parser"
	"joy/internal/source"
	"joy/internal/trace"
)

type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func parseWith(t *testing.T, input string, opts parser.Options) (*ast.Tree, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.joy", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	opts.Reporter = reporter
	builder := ast.NewBuilder(fileID, ast.Hints{})
	res := parser.ParseFile(context.Background(), lx, builder, opts)
	if res.Tree == nil {
		t.Fatalf("ParseFile returned nil tree for %q", input)
	}
	return res.Tree, reporter
}

func parseSource(t *testing.T, input string) (*ast.Tree, *testReporter) {
	t.Helper()
	return parseWith(t, input, parser.Options{})
}

func sexp(tree *ast.Tree, id ast.NodeID) string {
	n := tree.Node(id)
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.Kind.String())
	for _, c := range n.Children {
		b.WriteByte(' ')
		if c.IsNode() {
			b.WriteString(sexp(tree, c.Node))
		} else {
			b.WriteString(tree.Token(c.Token).Text)
		}
	}
	b.WriteString(")")
	return b.String()
}

func items(tree *ast.Tree) []string {
	ids := tree.Items()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, sexp(tree, id))
	}
	return out
}

func expectItems(t *testing.T, input string, want ...string) *testReporter {
	t.Helper()
	tree, rep := parseSource(t, input)
	if diff := cmp.Diff(want, items(tree)); diff != "" {
		t.Errorf("items for %q mismatch (-want +got):\n%s", input, diff)
	}
	if got := tree.Text(); got != input {
		t.Errorf("round-trip for %q = %q", input, got)
	}
	return rep
}

func expectCodes(t *testing.T, rep *testReporter, want ...diag.Code) {
	t.Helper()
	if want == nil {
		want = []diag.Code{}
	}
	if diff := cmp.Diff(want, rep.codes()); diff != "" {
		t.Errorf("diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

func TestStatements(t *testing.T) {
	rep := expectItems(t, "3-4.", "(statement (integer 3) (integer -4) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "3 - 4.", "(statement (integer 3) (operator -) (integer 4) .)")
	expectCodes(t, rep)

	rep = expectItems(t, `"hi" 'a 2.5 true null putchars.`,
		`(statement (string "hi") (character 'a) (float 2.5) (boolean true) (null null) (symbol putchars) .)`)
	expectCodes(t, rep)
}

func TestDefinitions(t *testing.T) {
	rep := expectItems(t, "abc == [1 2 3].",
		"(definition (symbol abc) == (quotation [ (integer 1) (integer 2) (integer 3) ]) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "DEFINE sq == dup *; cube == dup dup * *. .",
		"(library_keyword DEFINE)",
		"(definition (symbol sq) == (symbol dup) (operator *) ;)",
		"(definition (symbol cube) == (symbol dup) (symbol dup) (operator *) (operator *) .)",
		"(period .)",
	)
	expectCodes(t, rep)

	rep = expectItems(t, "nop == .", "(definition (symbol nop) == .)")
	expectCodes(t, rep)
}

func TestDefinitionNameMustBeSymbol(t *testing.T) {
	rep := expectItems(t, `"abc" == [1 2 3].`, `(ERROR (string "abc") == [ 1 2 3 ] .)`)
	expectCodes(t, rep, diag.SynDefinitionName)

	rep = expectItems(t, "== 1.", "(ERROR == 1 .)")
	expectCodes(t, rep, diag.SynUnexpectedToken)

	rep = expectItems(t, "a b == c. d.", "(ERROR (symbol a) (symbol b) == c .)", "(statement (symbol d) .)")
	expectCodes(t, rep, diag.SynUnexpectedToken)
}

func TestCompounds(t *testing.T) {
	rep := expectItems(t, "v[1 2.5 3].",
		"(statement (native_vector v[ (integer 1) (float 2.5) (integer 3) ]) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "m[[1 2] [3 4]].",
		"(statement (native_matrix m[ (matrix_row [ (integer 1) (integer 2) ]) (matrix_row [ (integer 3) (integer 4) ]) ]) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "{1 2 'a}.",
		"(statement (set_literal { (integer 1) (integer 2) (character 'a) }) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "[[] {}].",
		"(statement (quotation [ (quotation [ ]) (set_literal { }) ]) .)")
	expectCodes(t, rep)
}

func TestNestedCompounds(t *testing.T) {
	rep := expectItems(t, "[{1} v[2] m[[3]]].",
		"(statement (quotation [ (set_literal { (integer 1) }) (native_vector v[ (integer 2) ]) (native_matrix m[ (matrix_row [ (integer 3) ]) ]) ]) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "{[x : y]}.",
		"(statement (set_literal { (quotation [ (symbol x) (cons_operator :) (symbol y) ]) }) .)")
	expectCodes(t, rep)
}

func TestItemTracePoints(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("tr.joy", []byte("DEFINE a == 1. [2].")))
	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	parser.ParseFile(ctx, lx, ast.NewBuilder(file.ID, ast.Hints{}), parser.Options{Trace: true, Reporter: reporter})

	var got []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindPoint && ev.Name == "item" {
			got = append(got, ev.Detail)
		}
	}
	if diff := cmp.Diff([]string{"library_keyword", "definition", "statement"}, got); diff != "" {
		t.Errorf("item points mismatch (-want +got):\n%s", diff)
	}
}

func TestResultBagThroughDedup(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("d.joy", []byte("1 ] .")))
	bag := diag.NewBag(0)
	reporter := diag.NewDedupReporter(&diag.BagReporter{Bag: bag})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(context.Background(), lx, ast.NewBuilder(file.ID, ast.Hints{}), parser.Options{Reporter: reporter})
	if res.Bag != bag {
		t.Fatalf("Result.Bag must be the bag behind the dedup reporter")
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected SYN2003 in bag")
	}
}

func TestConsOperator(t *testing.T) {
	rep := expectItems(t, "[1 : x].",
		"(statement (quotation [ (integer 1) (cons_operator :) (symbol x) ]) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "1 : x.", "(statement (integer 1) (ERROR :) (symbol x) .)")
	expectCodes(t, rep, diag.SynConsOutsideQuote)

	tree, rep := parseWith(t, "1 : x.", parser.Options{ConsOutsideQuotation: parser.ConsAsOperator})
	if diff := cmp.Diff([]string{"(statement (integer 1) (operator :) (symbol x) .)"}, items(tree)); diff != "" {
		t.Errorf("lenient cons mismatch (-want +got):\n%s", diff)
	}
	expectCodes(t, rep)
}

func TestParseConsPolicy(t *testing.T) {
	for in, want := range map[string]parser.ConsPolicy{"": parser.ConsError, "error": parser.ConsError, "operator": parser.ConsAsOperator} {
		got, ok := parser.ParseConsPolicy(in)
		if !ok || got != want {
			t.Errorf("ParseConsPolicy(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := parser.ParseConsPolicy("strict"); ok {
		t.Errorf("unknown policy must be rejected")
	}
}

func TestMissingTerminator(t *testing.T) {
	tree, rep := parseSource(t, "1 2")
	if diff := cmp.Diff([]string{"(ERROR (integer 1) (integer 2))"}, items(tree)); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	expectCodes(t, rep, diag.SynMissingTerminator)
	fixes := rep.diagnostics[0].Fixes
	if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
		t.Fatalf("expected one fix with one edit, got %+v", fixes)
	}
	edit := fixes[0].Edits[0]
	if edit.NewText != "." || edit.Span.Start != 3 || edit.Span.End != 3 {
		t.Errorf("fix edit = %+v", edit)
	}

	rep = expectItems(t, "1 2; 3.", "(ERROR (integer 1) (integer 2) ;)", "(statement (integer 3) .)")
	expectCodes(t, rep, diag.SynMissingTerminator)

	rep = expectItems(t, "1 2 LIBRA", "(ERROR (integer 1) (integer 2))", "(library_keyword LIBRA)")
	expectCodes(t, rep, diag.SynMissingTerminator)

	rep = expectItems(t, "f == g", "(ERROR (symbol f) == (symbol g))")
	expectCodes(t, rep, diag.SynMissingTerminator)
}

func TestBracketErrors(t *testing.T) {
	rep := expectItems(t, "[1 2. 3.",
		"(ERROR (quotation [ (integer 1) (integer 2)) .)",
		"(statement (integer 3) .)")
	expectCodes(t, rep, diag.SynUnclosedBracket)

	rep = expectItems(t, "[1 }].", "(statement (quotation [ (integer 1) (ERROR }) ]) .)")
	expectCodes(t, rep, diag.SynMismatchedCloser)

	rep = expectItems(t, "1 ].", "(statement (integer 1) (ERROR ]) .)")
	expectCodes(t, rep, diag.SynMismatchedCloser)

	rep = expectItems(t, "v[1 x].", "(statement (native_vector v[ (integer 1) (ERROR (symbol x)) ]) .)")
	expectCodes(t, rep, diag.SynNonNumericElement)

	rep = expectItems(t, "m[1].", "(statement (native_matrix m[ (ERROR (integer 1)) ]) .)")
	expectCodes(t, rep, diag.SynNonNumericElement)
}

func TestShellEscape(t *testing.T) {
	rep := expectItems(t, "$ ls -l\n1.", "(shell_escape $ ls -l)", "(statement (integer 1) .)")
	expectCodes(t, rep)

	rep = expectItems(t, "1 $ ls\n.", "(statement (integer 1) (ERROR $ ls) .)")
	expectCodes(t, rep, diag.SynShellEscapeInItem)

	rep = expectItems(t, "1 2\n$ ls", "(ERROR (integer 1) (integer 2))", "(shell_escape $ ls)")
	expectCodes(t, rep, diag.SynMissingTerminator)
}

func TestLexErrorsStillYieldTree(t *testing.T) {
	tree, rep := parseSource(t, `"abc`)
	root := tree.Node(tree.Root())
	if root == nil || root.Kind != ast.KindSourceFile {
		t.Fatalf("expected source_file root, got %+v", root)
	}
	if !tree.HasErrors() {
		t.Errorf("expected tree to carry errors")
	}
	codes := rep.codes()
	if len(codes) == 0 || codes[0] != diag.LexUnterminatedString {
		t.Errorf("expected LEX1002 first, got %v", codes)
	}
	if tree.Text() != `"abc` {
		t.Errorf("round-trip = %q", tree.Text())
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	rep := expectItems(t, "(* a (* b *) c *) 1. # tail\n", "(statement (integer 1) .)")
	expectCodes(t, rep)
}

func TestMaxErrors(t *testing.T) {
	_, rep := parseWith(t, "1 ] ] ] .", parser.Options{MaxErrors: 2})
	expectCodes(t, rep, diag.SynMismatchedCloser, diag.SynMismatchedCloser)
}

func TestDeterministic(t *testing.T) {
	input := "DEFINE f == [1 : 2] {3} v[4] m[[5]]; \"x\" == y. ] $ z\n1 2"
	tree1, rep1 := parseSource(t, input)
	tree2, rep2 := parseSource(t, input)
	if diff := cmp.Diff(items(tree1), items(tree2)); diff != "" {
		t.Errorf("trees differ:\n%s", diff)
	}
	if diff := cmp.Diff(rep1.diagnostics, rep2.diagnostics); diff != "" {
		t.Errorf("diagnostics differ:\n%s", diff)
	}
}

func TestMalformedInputTerminates(t *testing.T) {
	inputs := []string{
		"", " ", "]]]", "[[[", "}{", "m[v[", "== == ==", ":::", "$", "\"", "'",
		"(*", "$\"a${", "v[ ] ] m[ [ ] 1 ]", "a == b == c.", "'\\q", "DEFINE ==",
		"[1 ; 2] . ; .", "m[[1 x] [", "''", "END END .",
	}
	for _, in := range inputs {
		tree, _ := parseSource(t, in)
		if got := tree.Text(); got != in {
			t.Errorf("round-trip for %q = %q", in, got)
		}
		for _, id := range tree.Items() {
			if k := tree.Node(id).Kind; !k.IsItem() {
				t.Errorf("%q: non-item %s under root", in, k)
			}
		}
	}
}
