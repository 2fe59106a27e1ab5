package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"joy/internal/literal"
	"joy/internal/source"
	"joy/internal/token"
)

type TriviaOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type TokenOutput struct {
	Kind    string         `json:"kind"`
	Text    string         `json:"text,omitempty"`
	Span    source.Span    `json:"span"`
	Line    uint32         `json:"line"`
	Col     uint32         `json:"col"`
	Value   any            `json:"value,omitempty"`
	Leading []TriviaOutput `json:"leading,omitempty"`
}

// FormatTokensPretty prints one token per line with its position and the
// kinds of its leading trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// BuildTokensOutput converts tokens into their JSON form. Literal tokens
// carry their decoded value.
func BuildTokensOutput(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if fs != nil && fs.Get(tok.Span.File) != nil {
			pos, _ := fs.Resolve(tok.Span)
			out.Line, out.Col = pos.Line, pos.Col
		}
		if v, err := literal.Decode(tok); err == nil {
			out.Value = literalValue(v)
		}
		for _, tr := range tok.Leading {
			out.Leading = append(out.Leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text})
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens, fs))
}

func literalValue(v literal.Value) any {
	switch v.Kind {
	case token.IntLit:
		return v.Int
	case token.FloatLit:
		return v.Float
	case token.CharLit:
		return string(v.Char)
	case token.StringLit:
		return v.Str
	case token.InterpStringLit:
		return v.Parts
	case token.KwTrue, token.KwFalse:
		return v.Bool
	}
	return nil
}
