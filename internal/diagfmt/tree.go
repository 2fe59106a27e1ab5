package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"joy/internal/ast"
	"joy/internal/source"
	"joy/internal/token"
)

// TreeOpts configures tree output.
type TreeOpts struct {
	// Positions adds [row, col] - [row, col] ranges (0-based) to s-expressions.
	Positions bool
	// Tokens includes anonymous tokens (brackets, terminators) in the
	// indented and encoded forms.
	Tokens bool
}

// NodeOutput is the JSON and msgpack form of a tree node. Leaf tokens are
// nodes without children whose Type is the token kind.
type NodeOutput struct {
	Type     string       `json:"type" msgpack:"type"`
	Named    bool         `json:"named" msgpack:"named"`
	Span     source.Span  `json:"span" msgpack:"span"`
	Text     string       `json:"text,omitempty" msgpack:"text,omitempty"`
	Error    bool         `json:"error,omitempty" msgpack:"error,omitempty"`
	Children []NodeOutput `json:"children,omitempty" msgpack:"children,omitempty"`
}

// FormatTreeSexp prints the tree in the s-expression form used by
// tree-sitter: named nodes only, one item per line.
func FormatTreeSexp(w io.Writer, tree *ast.Tree, fs *source.FileSet, opts TreeOpts) error {
	var b strings.Builder
	writeSexp(&b, tree, tree.Root(), fs, opts, 0)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSexp(b *strings.Builder, tree *ast.Tree, id ast.NodeID, fs *source.FileSet, opts TreeOpts, depth int) {
	n := tree.Node(id)
	if depth > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("  ", depth))
	}
	b.WriteByte('(')
	b.WriteString(n.Kind.String())
	if opts.Positions && fs != nil {
		start, end := fs.Resolve(n.Span)
		fmt.Fprintf(b, " [%d, %d] - [%d, %d]", start.Line-1, start.Col-1, end.Line-1, end.Col-1)
	}
	for _, c := range n.Children {
		if c.IsNode() {
			writeSexp(b, tree, c.Node, fs, opts, depth+1)
		}
	}
	b.WriteByte(')')
}

// FormatTreePretty prints an indented tree with box-drawing connectors.
func FormatTreePretty(w io.Writer, tree *ast.Tree, fs *source.FileSet, opts TreeOpts) error {
	root := tree.Node(tree.Root())
	if root == nil {
		return fmt.Errorf("tree has no root")
	}
	header := "source_file"
	if fs != nil {
		if f := fs.Get(tree.File); f != nil {
			header = f.FormatPath("auto", fs.BaseDir())
		}
	}
	if _, err := fmt.Fprintf(w, "%s (span: %s)\n", header, formatSpan(root.Span, fs)); err != nil {
		return err
	}
	writePrettyChildren(w, tree, root, fs, opts, "")
	return nil
}

func writePrettyChildren(w io.Writer, tree *ast.Tree, n *ast.Node, fs *source.FileSet, opts TreeOpts, prefix string) {
	children := visibleChildren(tree, n, opts)
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		if c.IsToken() {
			tok := tree.Token(c.Token)
			fmt.Fprintf(w, "%s%s%s %q\n", prefix, branch, tok.Kind, tok.Text)
			continue
		}
		child := tree.Node(c.Node)
		label := child.Kind.String()
		if tok := leafToken(tree, child); tok != nil {
			label += fmt.Sprintf(" %q", tok.Text)
		}
		fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, branch, label, formatSpan(child.Span, fs))
		if leafToken(tree, child) == nil {
			writePrettyChildren(w, tree, child, fs, opts, prefix+next)
		}
	}
}

func visibleChildren(tree *ast.Tree, n *ast.Node, opts TreeOpts) []ast.Child {
	out := make([]ast.Child, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsToken() {
			if !opts.Tokens || tree.Token(c.Token).Kind == token.EOF {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// leafToken returns the single token of a one-token node.
func leafToken(tree *ast.Tree, n *ast.Node) *token.Token {
	if len(n.Children) != 1 || !n.Children[0].IsToken() {
		return nil
	}
	return tree.Token(n.Children[0].Token)
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil || fs.Get(span.File) == nil {
		return fmt.Sprintf("%d-%d", span.Start, span.End)
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// BuildTreeOutput converts the tree into its encodable form.
func BuildTreeOutput(tree *ast.Tree, opts TreeOpts) NodeOutput {
	return buildNodeOutput(tree, tree.Root(), opts)
}

func buildNodeOutput(tree *ast.Tree, id ast.NodeID, opts TreeOpts) NodeOutput {
	n := tree.Node(id)
	out := NodeOutput{
		Type:  n.Kind.String(),
		Named: true,
		Span:  n.Span,
		Error: n.HasError(),
	}
	if tok := leafToken(tree, n); tok != nil {
		out.Text = tok.Text
		return out
	}
	for _, c := range visibleChildren(tree, n, opts) {
		if c.IsNode() {
			out.Children = append(out.Children, buildNodeOutput(tree, c.Node, opts))
			continue
		}
		tok := tree.Token(c.Token)
		out.Children = append(out.Children, NodeOutput{
			Type: tok.Kind.String(),
			Span: tok.Span,
			Text: tok.Text,
		})
	}
	return out
}

// FormatTreeJSON writes the tree as indented JSON.
func FormatTreeJSON(w io.Writer, tree *ast.Tree, opts TreeOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeOutput(tree, opts))
}

// FormatTreeMsgpack writes the tree as a single msgpack document.
func FormatTreeMsgpack(w io.Writer, tree *ast.Tree, opts TreeOpts) error {
	return msgpack.NewEncoder(w).Encode(BuildTreeOutput(tree, opts))
}
