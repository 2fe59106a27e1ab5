// Package testkit holds structural checks shared by parser, driver and fuzz
// tests.
package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"joy/internal/ast"
	"joy/internal/source"
	"joy/internal/token"
)

var ErrNilInput = errors.New("nil tree or file")

// CheckSpanInvariants verifies the layout of a tree built from sf:
//  1. every leaf token lies inside the file and its Text is exactly the bytes
//     under its span
//  2. leaves tile the file: each token's full span (trivia included) starts
//     where the previous token ended, starting at 0 and ending at EOF
//  3. every node span covers its children, which appear in source order
func CheckSpanInvariants(tree *ast.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return ErrNilInput
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := tree.Node(tree.Root())
	if root == nil || root.Kind != ast.KindSourceFile {
		return fmt.Errorf("root is not a source_file node")
	}

	var (
		offset  uint32
		lastTok *token.Token
		leafErr error
	)
	tree.Leaves(func(id ast.TokenID) {
		if leafErr != nil {
			return
		}
		tok := tree.Token(id)
		leafErr = checkToken(tok, sf, lenContent, offset)
		if leafErr == nil {
			offset = tok.Span.End
			lastTok = tok
		}
	})
	if leafErr != nil {
		return leafErr
	}
	if lastTok == nil || lastTok.Kind != token.EOF {
		return fmt.Errorf("tree does not end with an EOF leaf")
	}
	if offset != lenContent {
		return fmt.Errorf("leaves end at %d, content has %d bytes", offset, lenContent)
	}

	var nodeErr error
	tree.Walk(func(id ast.NodeID, _ int) bool {
		if nodeErr != nil {
			return false
		}
		nodeErr = checkNode(tree, id, sf.ID)
		return nodeErr == nil
	})
	return nodeErr
}

func checkToken(tok *token.Token, sf *source.File, lenContent, offset uint32) error {
	sp := tok.Span
	if sp.File != sf.ID {
		return fmt.Errorf("token %v: span file mismatch: got=%d want=%d", tok.Kind, sp.File, sf.ID)
	}
	if sp.End < sp.Start || sp.End > lenContent {
		return fmt.Errorf("token %v: span %v outside content (%d bytes)", tok.Kind, sp, lenContent)
	}
	if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
		return fmt.Errorf("token %v at %v: text %q, content %q", tok.Kind, sp, tok.Text, got)
	}
	at := offset
	for _, tr := range tok.Leading {
		if tr.Span.Start != at {
			return fmt.Errorf("trivia %v at %v: expected start %d", tr.Kind, tr.Span, at)
		}
		if tr.Span.End > lenContent || string(sf.Content[tr.Span.Start:tr.Span.End]) != tr.Text {
			return fmt.Errorf("trivia %v at %v: text mismatch", tr.Kind, tr.Span)
		}
		at = tr.Span.End
	}
	if sp.Start != at {
		return fmt.Errorf("token %v at %v: gap or overlap, expected start %d", tok.Kind, sp, at)
	}
	return nil
}

func checkNode(tree *ast.Tree, id ast.NodeID, file source.FileID) error {
	n := tree.Node(id)
	if len(n.Children) == 0 {
		return nil
	}
	if n.Span.File != file {
		return fmt.Errorf("node %v: span file mismatch", n.Kind)
	}
	prevEnd := n.Span.Start
	for _, c := range n.Children {
		var sp source.Span
		if c.IsNode() {
			child := tree.Node(c.Node)
			if child == nil {
				return fmt.Errorf("node %v: dangling child %d", n.Kind, c.Node)
			}
			if len(child.Children) == 0 {
				continue
			}
			sp = child.Span
		} else {
			sp = tree.Token(c.Token).Span
		}
		if sp.Start < prevEnd || sp.End > n.Span.End {
			return fmt.Errorf("node %v %v: child span %v out of order or outside", n.Kind, n.Span, sp)
		}
		prevEnd = sp.End
	}
	return nil
}

// CheckRoundTrip verifies that concatenating the leaves of tree with their
// trivia reproduces sf byte for byte.
func CheckRoundTrip(tree *ast.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return ErrNilInput
	}
	got := tree.Text()
	want := string(sf.Content)
	if got == want {
		return nil
	}
	i := 0
	for i < len(got) && i < len(want) && got[i] == want[i] {
		i++
	}
	return fmt.Errorf("round trip differs at byte %d: got %q, want %q", i, excerpt(got, i), excerpt(want, i))
}

func excerpt(s string, at int) string {
	end := min(at+16, len(s))
	return s[at:end]
}
