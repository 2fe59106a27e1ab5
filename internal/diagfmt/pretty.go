package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"joy/internal/diag"
	"joy/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, code, gutter, caret, fix *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		fix:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.caret, p.fix} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes diagnostics in human-readable form, in bag order (call
// bag.Sort first for a stable listing). Each entry is
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source lines with a ^~~~ underline, then notes and fixes
// when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	file := fs.Get(d.Primary.File)
	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	path := formatPath(fs, d.Primary.File, opts.PathMode)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		pal.severity(d.Severity).Sprint(d.Severity),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)

	writeSnippet(w, file, start, end, opts, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				pal.note.Sprint("note:"), formatPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprintf("fix #%d:", i+1), fix.Title)
			for _, edit := range fix.Edits {
				es, _ := fs.Resolve(edit.Span)
				fmt.Fprintf(w, "    %s:%d:%d apply=%q\n",
					formatPath(fs, edit.Span.File, opts.PathMode), es.Line, es.Col, edit.NewText)
				if !opts.ShowPreview {
					continue
				}
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, line := range preview.before {
					fmt.Fprintf(w, "      - %s\n", line)
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "      + %s\n", line)
				}
			}
		}
	}
}

func writeSnippet(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts, pal palette) {
	ctx := uint32(max(opts.Context, 0))
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	gutterWidth := len(fmt.Sprint(last))

	for line := first; line <= last; line++ {
		if line != start.Line && line > uint32(len(file.LineIdx))+1 {
			break
		}
		text := file.GetLine(line)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, line), displayLine(text, opts.Width))
		if line != start.Line {
			continue
		}

		col := int(start.Col) - 1
		col = min(max(col, 0), len(text))
		stop := len(text)
		if end.Line == start.Line {
			stop = min(max(int(end.Col)-1, col), len(text))
		}
		pad := runewidth.StringWidth(expandTabs(text[:col]))
		width := max(runewidth.StringWidth(expandTabs(text[col:stop])), 1)
		underline := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n",
			pal.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", pad),
			pal.caret.Sprint(underline),
		)
	}
}

func displayLine(text string, width uint8) string {
	text = expandTabs(text)
	if width > 0 {
		return runewidth.Truncate(text, int(width), "…")
	}
	return text
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
