package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestStreamTracerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	root := Begin(tr, ScopeDriver, "check", 0)
	pass := Begin(tr, ScopePass, "parse", root.ID())
	file := Begin(tr, ScopeFile, "file:a.joy", pass.ID())
	file.End("")
	pass.WithExtra("items", "3").WithExtra("errors", "0").End("ok")
	root.End("")

	out := buf.String()
	if strings.Contains(out, "file:a.joy") {
		t.Fatalf("file scope must be filtered at phase level:\n%s", out)
	}
	if !strings.Contains(out, "→ check") || !strings.Contains(out, "← parse (ok) {errors=0, items=3}") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if file.ID() != 0 {
		t.Fatalf("filtered span must have zero id")
	}
}

func TestNDJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDebug, Mode: ModeStream, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Point(tr, ScopeNode, "item", "definition", 0)
	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["scope"] != "node" || ev["detail"] != "definition" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestRingTracerWraps(t *testing.T) {
	tr := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(tr, ScopeNode, name, "", 0)
	}
	snap := tr.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 2 {
		t.Fatalf("dump = %q", buf.String())
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("missing tracer must resolve to Nop")
	}
	tr := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Fatalf("tracer not propagated")
	}
	sp := Begin(tr, ScopeDriver, "root", 0)
	ctx = WithSpan(ctx, sp)
	if CurrentSpan(ctx) != sp.ID() {
		t.Fatalf("span id not propagated")
	}
}

func TestParseHelpers(t *testing.T) {
	if l, err := ParseLevel("DETAIL"); err != nil || l != LevelDetail {
		t.Fatalf("ParseLevel = %v, %v", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
	if m, err := ParseMode("ring"); err != nil || m != ModeRing {
		t.Fatalf("ParseMode = %v, %v", m, err)
	}
	if f, err := ParseFormat("ndjson"); err != nil || f != FormatNDJSON {
		t.Fatalf("ParseFormat = %v, %v", f, err)
	}
	if tr, err := New(Config{Level: LevelOff}); err != nil || tr.Enabled() {
		t.Fatalf("LevelOff must yield a disabled tracer")
	}
}

func TestStartNestsUnderContextSpan(t *testing.T) {
	tr := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), tr)

	dir, ctx := Start(ctx, ScopeDriver, "parse_dir")
	file, _ := Start(ctx, ScopeFile, "parse_file")
	file.Point(ScopeNode, "item", "statement")
	file.End("")
	dir.End("")

	snap := tr.Snapshot()
	if len(snap) != 5 {
		t.Fatalf("expected 5 events, got %+v", snap)
	}
	if snap[1].ParentID != dir.ID() || snap[2].ParentID != file.ID() || snap[2].Kind != KindPoint {
		t.Fatalf("unexpected parents: %+v", snap)
	}
}

func TestInertSpan(t *testing.T) {
	tr := NewRingTracer(4, LevelPhase)
	sp := Begin(tr, ScopeFile, "file:a.joy", 0)
	sp.WithExtra("k", "v").Point(ScopeNode, "item", "x")
	if d := sp.End(""); d != 0 || sp.ID() != 0 {
		t.Fatalf("filtered span must be inert, got id=%d dur=%v", sp.ID(), d)
	}
	if n := len(tr.Snapshot()); n != 0 {
		t.Fatalf("inert span emitted %d events", n)
	}
}
