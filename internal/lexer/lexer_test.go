package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"joy/internal/diag"
	"joy/internal/lexer"
	"joy/internal/source"
	"joy/internal/token"
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

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.joy", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

type tk struct {
	kind token.Kind
	text string
}

func expectTokens(t *testing.T, input string, expected []tk) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1] // drop EOF

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.messages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i].kind || tok.Text != expected[i].text {
			t.Errorf("token %d: expected %v(%q), got %v(%q)",
				i, expected[i].kind, expected[i].text, tok.Kind, tok.Text)
		}
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TestSignRule(t *testing.T) {
	expectTokens(t, "3-4.", []tk{
		{token.IntLit, "3"}, {token.IntLit, "-4"}, {token.Dot, "."},
	})
	expectTokens(t, "3 - 4.", []tk{
		{token.IntLit, "3"}, {token.Minus, "-"}, {token.IntLit, "4"}, {token.Dot, "."},
	})
	expectTokens(t, "- 4", []tk{
		{token.Minus, "-"}, {token.IntLit, "4"},
	})
	expectTokens(t, "-(* c *)4", []tk{
		{token.Minus, "-"}, {token.IntLit, "4"},
	})
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "42 -7 2.5 -0.25 1. 1.x", []tk{
		{token.IntLit, "42"},
		{token.IntLit, "-7"},
		{token.FloatLit, "2.5"},
		{token.FloatLit, "-0.25"},
		{token.IntLit, "1"}, {token.Dot, "."},
		{token.IntLit, "1"}, {token.Dot, "."}, {token.Symbol, "x"},
	})
}

func TestReservedWords(t *testing.T) {
	expectTokens(t, "LIBRA DEFINE HIDE IN END MODULE PRIVATE PUBLIC CONST INLINE true false null", []tk{
		{token.KwLibra, "LIBRA"}, {token.KwDefine, "DEFINE"}, {token.KwHide, "HIDE"},
		{token.KwIn, "IN"}, {token.KwEnd, "END"}, {token.KwModule, "MODULE"},
		{token.KwPrivate, "PRIVATE"}, {token.KwPublic, "PUBLIC"}, {token.KwConst, "CONST"},
		{token.KwInline, "INLINE"}, {token.KwTrue, "true"}, {token.KwFalse, "false"},
		{token.KwNull, "null"},
	})
	// whole-word only
	expectTokens(t, "DEFINEx true? null-p define", []tk{
		{token.Symbol, "DEFINEx"}, {token.Symbol, "true?"}, {token.Symbol, "null-p"}, {token.Symbol, "define"},
	})
}

func TestSymbols(t *testing.T) {
	expectTokens(t, "dup swap-top null? set! _x a1-b2 größe", []tk{
		{token.Symbol, "dup"}, {token.Symbol, "swap-top"}, {token.Symbol, "null?"},
		{token.Symbol, "set!"}, {token.Symbol, "_x"}, {token.Symbol, "a1-b2"},
		{token.Symbol, "größe"},
	})
}

func TestOperatorsLongestMatch(t *testing.T) {
	expectTokens(t, ">= <= != > < = + - * /", []tk{
		{token.GtEq, ">="}, {token.LtEq, "<="}, {token.BangEq, "!="}, {token.Gt, ">"},
		{token.Lt, "<"}, {token.Assign, "="}, {token.Plus, "+"}, {token.Minus, "-"},
		{token.Star, "*"}, {token.Slash, "/"},
	})
	expectTokens(t, ">set >dict >vec >mat >list >json json>", []tk{
		{token.ToSet, ">set"}, {token.ToDict, ">dict"}, {token.ToVec, ">vec"},
		{token.ToMat, ">mat"}, {token.ToList, ">list"}, {token.ToJSON, ">json"},
		{token.FromJSON, "json>"},
	})
	expectTokens(t, "v+ v- v* v/ m+ m- m* m/", []tk{
		{token.VecPlus, "v+"}, {token.VecMinus, "v-"}, {token.VecStar, "v*"}, {token.VecSlash, "v/"},
		{token.MatPlus, "m+"}, {token.MatMinus, "m-"}, {token.MatStar, "m*"}, {token.MatSlash, "m/"},
	})
	// symbol longer than operator prefix wins
	expectTokens(t, "v-1 json vm", []tk{
		{token.Symbol, "v-1"}, {token.Symbol, "json"}, {token.Symbol, "vm"},
	})
	expectTokens(t, ">settle", []tk{
		{token.ToSet, ">set"}, {token.Symbol, "tle"},
	})
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "[1 : x] {} v[1] m[[1]] ; == .", []tk{
		{token.LBracket, "["}, {token.IntLit, "1"}, {token.Colon, ":"}, {token.Symbol, "x"}, {token.RBracket, "]"},
		{token.LBrace, "{"}, {token.RBrace, "}"},
		{token.VecOpen, "v["}, {token.IntLit, "1"}, {token.RBracket, "]"},
		{token.MatOpen, "m["}, {token.LBracket, "["}, {token.IntLit, "1"}, {token.RBracket, "]"}, {token.RBracket, "]"},
		{token.Semicolon, ";"}, {token.EqEq, "=="}, {token.Dot, "."},
	})
	expectTokens(t, "===", []tk{
		{token.EqEq, "=="}, {token.Assign, "="},
	})
}

func TestStringsAndChars(t *testing.T) {
	expectTokens(t, `"hello" "a\"b" "line1
line2" "\101\n"`, []tk{
		{token.StringLit, `"hello"`},
		{token.StringLit, `"a\"b"`},
		{token.StringLit, "\"line1\nline2\""},
		{token.StringLit, `"\101\n"`},
	})
	expectTokens(t, `'a 'b' '\n '\'' 'ä`, []tk{
		{token.CharLit, "'a"},
		{token.CharLit, "'b'"},
		{token.CharLit, `'\n`},
		{token.CharLit, `'\''`},
		{token.CharLit, "'ä"},
	})
}

func TestInterpolatedAndShell(t *testing.T) {
	expectTokens(t, `$"n=${n 1 +}" put.`, []tk{
		{token.InterpStringLit, `$"n=${n 1 +}"`}, {token.Symbol, "put"}, {token.Dot, "."},
	})
	expectTokens(t, "$ ls -la\n1.", []tk{
		{token.ShellEscape, "$ ls -la"}, {token.IntLit, "1"}, {token.Dot, "."},
	})
}

func TestTriviaAttachedAsLeading(t *testing.T) {
	input := "# head\n  (* a (* b *) c *)\tdup\n"
	lx, rep := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != token.Symbol || tok.Text != "dup" {
		t.Fatalf("expected dup, got %v(%q)", tok.Kind, tok.Text)
	}
	kinds := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline, token.TriviaSpace, token.TriviaBlockComment, token.TriviaSpace}
	if len(tok.Leading) != len(kinds) {
		t.Fatalf("leading = %+v", tok.Leading)
	}
	for i, k := range kinds {
		if tok.Leading[i].Kind != k {
			t.Errorf("leading[%d] = %v, want %v", i, tok.Leading[i].Kind, k)
		}
	}
	if tok.Leading[3].Text != "(* a (* b *) c *)" {
		t.Errorf("block comment text = %q", tok.Leading[3].Text)
	}
	eof := lx.Next()
	if eof.Kind != token.EOF || len(eof.Leading) != 1 || eof.Leading[0].Text != "\n" {
		t.Fatalf("EOF must carry trailing trivia, got %+v", eof)
	}
	if again := lx.Next(); again.Kind != token.EOF || len(again.Leading) != 0 {
		t.Fatalf("repeated EOF must be bare, got %+v", again)
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.messages())
	}
}

func TestNestedBlockCommentClosesAtOwnMatch(t *testing.T) {
	expectTokens(t, "(* outer (* inner *) still comment *) swap", []tk{
		{token.Symbol, "swap"},
	})
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []tk
		codes  []diag.Code
	}{
		{
			name:   "unterminated string",
			input:  `"abc`,
			tokens: []tk{{token.Invalid, `"abc`}},
			codes:  []diag.Code{diag.LexUnterminatedString},
		},
		{
			name:   "unknown character",
			input:  "1 ~ 2",
			tokens: []tk{{token.IntLit, "1"}, {token.Invalid, "~"}, {token.IntLit, "2"}},
			codes:  []diag.Code{diag.LexUnknownChar},
		},
		{
			name:   "unterminated block comment",
			input:  "(* never closed dup",
			tokens: []tk{{token.Invalid, "(*"}, {token.Symbol, "never"}, {token.Symbol, "closed"}, {token.Symbol, "dup"}},
			codes:  []diag.Code{diag.LexUnterminatedBlockComment},
		},
		{
			name:   "unterminated interpolated string",
			input:  `$"abc`,
			tokens: []tk{{token.Invalid, `$"`}, {token.Symbol, "abc"}},
			codes:  []diag.Code{diag.LexUnterminatedInterpolation},
		},
		{
			name:   "empty character",
			input:  "'' x",
			tokens: []tk{{token.Invalid, "''"}, {token.Symbol, "x"}},
			codes:  []diag.Code{diag.LexBadChar},
		},
		{
			name:   "dangling character",
			input:  "'",
			tokens: []tk{{token.Invalid, "'"}},
			codes:  []diag.Code{diag.LexBadChar},
		},
		{
			name:   "bad escape in string",
			input:  `"a\qb"`,
			tokens: []tk{{token.Invalid, `"a\qb"`}},
			codes:  []diag.Code{diag.LexBadEscape},
		},
		{
			name:   "bad escape in character",
			input:  `'\q'`,
			tokens: []tk{{token.Invalid, `'\q'`}},
			codes:  []diag.Code{diag.LexBadEscape},
		},
		{
			name:   "lone paren",
			input:  "(1)",
			tokens: []tk{{token.Invalid, "("}, {token.IntLit, "1"}, {token.Invalid, ")"}},
			codes:  []diag.Code{diag.LexUnknownChar, diag.LexUnknownChar},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, tt.tokens)
			lx, rep := makeTestLexer(tt.input)
			collectAllTokens(lx)
			got := rep.codes()
			if len(got) != len(tt.codes) {
				t.Fatalf("codes = %v, want %v", rep.messages(), tt.codes)
			}
			for i := range got {
				if got[i] != tt.codes[i] {
					t.Fatalf("code %d = %s, want %s", i, got[i].ID(), tt.codes[i].ID())
				}
			}
		})
	}
}

func TestTokenTooLong(t *testing.T) {
	content := strings.Repeat("a", 5000) + " b"
	lx, rep := makeTestLexer(content)
	tok := lx.Next()
	if tok.Kind != token.Invalid || len(tok.Text) != 5000 {
		t.Fatalf("expected one long invalid token, got %v len=%d", tok.Kind, len(tok.Text))
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexTokenTooLong {
		t.Fatalf("unexpected diagnostics: %v", rep.messages())
	}
	if next := lx.Next(); next.Kind != token.Symbol || next.Text != "b" {
		t.Fatalf("lexing must continue after long token, got %v", next.Kind)
	}
}

func TestPeekN(t *testing.T) {
	lx, _ := makeTestLexer("sq == dup * .")
	if p := lx.PeekN(1); p.Kind != token.EqEq {
		t.Fatalf("PeekN(1) = %v", p.Kind)
	}
	if p := lx.Peek(); p.Kind != token.Symbol || p.Text != "sq" {
		t.Fatalf("Peek() = %v", p.Kind)
	}
	want := []token.Kind{token.Symbol, token.EqEq, token.Symbol, token.Star, token.Dot, token.EOF, token.EOF}
	for i, k := range want {
		if got := lx.Next(); got.Kind != k {
			t.Fatalf("Next() #%d = %v, want %v", i, got.Kind, k)
		}
	}
}

// Every byte belongs to exactly one token or trivia, in order.
func TestRoundTripCoverage(t *testing.T) {
	inputs := []string{
		"DEFINE sq == dup * ; cube == dup sq * .\n",
		"# c\n(* (* *) *) 3-4. \"abc",
		"v[1 2.5 3]. m[[1 2][3 4]] ~ 'x $\"${x}\"\r\n$ echo hi",
		"",
		"(*",
	}
	for _, in := range inputs {
		lx, _ := makeTestLexer(in)
		var b strings.Builder
		var off uint32
		for _, tok := range collectAllTokens(lx) {
			for _, tr := range tok.Leading {
				if tr.Span.Start != off {
					t.Fatalf("%q: gap before trivia at %d (expected %d)", in, tr.Span.Start, off)
				}
				b.WriteString(tr.Text)
				off = tr.Span.End
			}
			if tok.Span.Start != off {
				t.Fatalf("%q: gap before token %v at %d (expected %d)", in, tok.Kind, tok.Span.Start, off)
			}
			b.WriteString(tok.Text)
			off = tok.Span.End
		}
		if b.String() != in {
			t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", in, b.String())
		}
	}
}
