package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/diagfmt"
	"joy/internal/driver"
	"joy/internal/source"
)

type parseFlags struct {
	format    string
	positions bool
	tokens    bool
	jobs      int
}

func newParseCmd(flags *globalFlags) *cobra.Command {
	pf := &parseFlags{}
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.joy|directory>",
		Short: "Parse Joy sources and print the syntax tree",
		Long: `Parse builds the concrete syntax tree of a Joy source file, or of every
source file in a directory, and prints it as an s-expression, an indented
tree, JSON or msgpack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, flags, pf, args[0])
		},
	}
	cmd.Flags().StringVar(&pf.format, "format", "sexp", "output format (sexp|pretty|json|msgpack)")
	cmd.Flags().BoolVar(&pf.positions, "positions", false, "include node positions")
	cmd.Flags().BoolVar(&pf.tokens, "tokens", false, "include anonymous tokens")
	cmd.Flags().IntVar(&pf.jobs, "jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func runParse(cmd *cobra.Command, flags *globalFlags, pf *parseFlags, path string) error {
	switch pf.format {
	case "sexp", "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", pf.format)
	}
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	opts, _, err := resolveOptions(cmd, flags, path)
	if err != nil {
		return err
	}
	// Cached entries hold diagnostics only, and parse must print trees.
	opts.Cache = nil
	treeOpts := diagfmt.TreeOpts{Positions: pf.positions, Tokens: pf.tokens}
	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(flags.color, os.Stderr),
		Context: 1,
		Width:   terminalWidth(os.Stderr),
	}
	out := cmd.OutOrStdout()

	if !st.IsDir() {
		result, err := driver.Parse(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if result.Bag.Len() > 0 && !flags.quiet {
			diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, prettyOpts)
		}
		if err := writeTree(out, pf.format, result.Tree, result.FileSet, treeOpts); err != nil {
			return err
		}
		return exitForBag(result.Bag)
	}

	if pf.format == "msgpack" {
		return fmt.Errorf("msgpack output requires a single file")
	}
	fs, results, err := driver.ParseDir(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, r := range results {
		if r.Bag.Len() > 0 && !flags.quiet {
			diagfmt.Pretty(cmd.ErrOrStderr(), r.Bag, fs, prettyOpts)
		}
		failed = failed || r.Bag.HasErrors()
	}

	if pf.format == "json" {
		output := make(map[string]*diagfmt.NodeOutput, len(results))
		for _, r := range results {
			display := displayPath(fs, r.FileID)
			if r.Tree == nil {
				output[display] = nil
				continue
			}
			node := diagfmt.BuildTreeOutput(r.Tree, treeOpts)
			output[display] = &node
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			return err
		}
	} else {
		for idx, r := range results {
			if !flags.quiet {
				if _, err := fmt.Fprintf(out, "== %s ==\n", displayPath(fs, r.FileID)); err != nil {
					return err
				}
			}
			if r.Tree != nil {
				if err := writeTree(out, pf.format, r.Tree, fs, treeOpts); err != nil {
					return err
				}
			}
			if !flags.quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
		}
	}
	if failed {
		return exitCodeError{code: 1}
	}
	return nil
}

func writeTree(w io.Writer, format string, tree *ast.Tree, fs *source.FileSet, opts diagfmt.TreeOpts) error {
	switch format {
	case "sexp":
		return diagfmt.FormatTreeSexp(w, tree, fs, opts)
	case "pretty":
		return diagfmt.FormatTreePretty(w, tree, fs, opts)
	case "json":
		return diagfmt.FormatTreeJSON(w, tree, opts)
	case "msgpack":
		return diagfmt.FormatTreeMsgpack(w, tree, opts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func displayPath(fs *source.FileSet, id source.FileID) string {
	file := fs.Get(id)
	if file == nil {
		return "<unknown>"
	}
	return file.FormatPath("auto", fs.BaseDir())
}

func exitForBag(bag *diag.Bag) error {
	if bag.HasErrors() {
		return exitCodeError{code: 1}
	}
	return nil
}
