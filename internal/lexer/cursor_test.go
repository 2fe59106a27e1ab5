package lexer

import (
	"testing"

	"joy/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.joy", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatalf("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatalf("reads past EOF must return 0")
	}
}

func TestCursorMarkResetAndSpan(t *testing.T) {
	cursor := NewCursor(createFile("dup swap"))
	m := cursor.Mark()
	cursor.Advance(3)
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("Reset did not restore offset")
	}
	if !cursor.Eat('d') || cursor.Eat('x') {
		t.Fatalf("Eat misbehaved")
	}
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'u' || b1 != 'p' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if cursor.PeekAt(3) != 's' || cursor.PeekAt(100) != 0 {
		t.Fatalf("PeekAt misbehaved")
	}
	cursor.Advance(100)
	if !cursor.EOF() || cursor.Off != 8 {
		t.Fatalf("Advance must clamp to the limit, got %d", cursor.Off)
	}
	if len(cursor.Rest()) != 0 {
		t.Fatalf("Rest() at EOF must be empty")
	}
}

func TestPriorityTableOrder(t *testing.T) {
	want := []string{"stateful", "shell-escape", "string", "character", "reserved", "multi-punct", "longest", "punct"}
	got := RuleNames()
	if len(got) != len(want) {
		t.Fatalf("RuleNames() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rule %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOperatorTableLongestFirst(t *testing.T) {
	for i := 1; i < len(operatorTable); i++ {
		if len(operatorTable[i-1].text) < len(operatorTable[i].text) {
			t.Fatalf("operator table not sorted by length at %d", i)
		}
	}
}
