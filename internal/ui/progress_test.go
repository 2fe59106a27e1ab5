package ui

import (
	"strings"
	"testing"

	"joy/internal/driver"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.joy", 20, "short.joy"},
		{"very/long/path/to/file.joy", 12, "very/long..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestApplyEventUpdatesStatus(t *testing.T) {
	files := []string{"a.joy", "b.joy"}
	m := NewProgressModel("check", files, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.joy", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Fatalf("status = %q, want parsing", got)
	}
	m.applyEvent(driver.Event{File: "a.joy", Stage: driver.StageParse, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.joy", Stage: driver.StageCache, Status: driver.StatusDone})
	if got := m.items[1].status; got != "cached" {
		t.Fatalf("status = %q, want cached", got)
	}
	if got := m.fraction(); got != 1.0 {
		t.Fatalf("fraction = %v, want 1", got)
	}

	// Unknown files are ignored.
	if cmd := m.applyEvent(driver.Event{File: "zzz.joy", Status: driver.StatusDone}); cmd != nil {
		t.Fatalf("expected nil cmd for unknown file")
	}
}

func TestApplyEventRunLabel(t *testing.T) {
	m := NewProgressModel("check", []string{"a.joy"}, nil).(*progressModel)
	m.applyEvent(driver.Event{Stage: driver.StageLoad, Status: driver.StatusWorking})
	if m.stageLabel != "loading" {
		t.Fatalf("stageLabel = %q, want loading", m.stageLabel)
	}
	if view := m.View(); !strings.Contains(view, "a.joy") || !strings.Contains(view, "loading") {
		t.Fatalf("view missing file or stage:\n%s", view)
	}
}
