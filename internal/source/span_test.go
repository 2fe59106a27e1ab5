package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{File: 1, Start: 2, End: 4},
			b:        Span{File: 1, Start: 8, End: 10},
			expected: Span{File: 1, Start: 2, End: 10},
		},
		{
			name:     "other before receiver",
			a:        Span{File: 1, Start: 8, End: 10},
			b:        Span{File: 1, Start: 0, End: 3},
			expected: Span{File: 1, Start: 0, End: 10},
		},
		{
			name:     "nested span",
			a:        Span{File: 1, Start: 0, End: 10},
			b:        Span{File: 1, Start: 3, End: 4},
			expected: Span{File: 1, Start: 0, End: 10},
		},
		{
			name:     "different files keep receiver",
			a:        Span{File: 1, Start: 0, End: 1},
			b:        Span{File: 2, Start: 5, End: 9},
			expected: Span{File: 1, Start: 0, End: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Basics(t *testing.T) {
	sp := Span{File: 3, Start: 4, End: 9}
	if sp.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", sp.Len())
	}
	if sp.Empty() {
		t.Fatalf("span should not be empty")
	}
	if got := sp.String(); got != "3:4-9" {
		t.Fatalf("String() = %q", got)
	}
	at := sp.At()
	if !at.Empty() || at.Start != 9 {
		t.Fatalf("At() = %v", at)
	}
	if !sp.Contains(Span{File: 3, Start: 5, End: 9}) {
		t.Fatalf("expected containment")
	}
	if sp.Contains(Span{File: 3, Start: 3, End: 9}) {
		t.Fatalf("unexpected containment")
	}
}
