package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"joy/internal/diag"
	"joy/internal/diagfmt"
	"joy/internal/driver"
	"joy/internal/observ"
	"joy/internal/project"
	"joy/internal/source"
)

type checkFlags struct {
	format    string
	ui        string
	jobs      int
	noCache   bool
	withNotes bool
	suggest   bool
	preview   bool
	fullPath  bool
	pathMode  string
	noWarn    bool
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	cf := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check [flags] <file.joy|directory>",
		Short: "Report lexical and syntax diagnostics",
		Long: `Check parses a Joy source file, or every source file in a directory, and
prints only the diagnostics. The exit status is 1 when any error is found`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, cf, args[0])
		},
	}
	cmd.Flags().StringVar(&cf.format, "format", "pretty", "output format (pretty|json|short)")
	cmd.Flags().StringVar(&cf.ui, "ui", "off", "progress UI for directories (auto|on|off)")
	cmd.Flags().IntVar(&cf.jobs, "jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().BoolVar(&cf.noCache, "no-cache", false, "ignore the parse cache configured in joy.toml")
	cmd.Flags().BoolVar(&cf.withNotes, "with-notes", false, "include diagnostic notes in output")
	cmd.Flags().BoolVar(&cf.suggest, "suggest", false, "include fix suggestions in output")
	cmd.Flags().BoolVar(&cf.preview, "preview", false, "show a preview of suggested fixes")
	cmd.Flags().BoolVar(&cf.fullPath, "fullpath", false, "emit absolute file paths in output (same as --path-mode absolute)")
	cmd.Flags().StringVar(&cf.pathMode, "path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	cmd.Flags().BoolVar(&cf.noWarn, "no-warnings", false, "drop warnings from the output")
	return cmd
}

type checkSummary struct {
	files    int
	cached   int
	errors   int
	warnings int
}

func runCheck(cmd *cobra.Command, flags *globalFlags, cf *checkFlags, path string) error {
	switch cf.format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", cf.format)
	}
	mode, err := readUIMode(cf.ui)
	if err != nil {
		return err
	}
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	opts, _, err := resolveOptions(cmd, flags, path)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	var (
		fs      *source.FileSet
		bag     = diag.NewBag(0)
		summary checkSummary
	)

	if !st.IsDir() {
		idx := timer.Begin("parse")
		result, parseErr := driver.Parse(cmd.Context(), path, opts)
		timer.End(idx, "")
		if parseErr != nil {
			return fmt.Errorf("check failed: %w", parseErr)
		}
		fs = result.FileSet
		bag.Merge(result.Bag)
		summary.files = 1
	} else {
		var files []string
		timer.Track("collect", func() string {
			files, err = project.CollectSources(path, opts.Extensions)
			return strconv.Itoa(len(files)) + " files"
		})
		if err != nil {
			return err
		}
		if len(files) == 0 {
			if !flags.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: no source files\n", path)
			}
			return nil
		}

		var results []driver.ParseDirResult
		idx := timer.Begin("parse")
		if shouldUseTUI(mode) {
			fs, results, err = parseDirWithUI(cmd.Context(), "joy check", path, files, opts)
		} else {
			fs, results, err = driver.ParseDir(cmd.Context(), path, opts)
		}
		timer.End(idx, "")
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		for _, r := range results {
			bag.Merge(r.Bag)
			if r.Cached {
				summary.cached++
			}
		}
		summary.files = len(results)
	}

	if cf.noWarn {
		bag.Filter(func(d diag.Diagnostic) bool { return d.Severity != diag.SevWarning })
	}
	bag.Sort()
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			summary.errors++
		case diag.SevWarning:
			summary.warnings++
		}
	}

	if err := writeDiagnostics(cmd.OutOrStdout(), bag, fs, flags, cf); err != nil {
		return err
	}
	if !flags.quiet && cf.format == "pretty" {
		printCheckSummary(cmd.ErrOrStderr(), summary)
	}
	if flags.timings && st.IsDir() {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if summary.errors > 0 {
		return exitCodeError{code: 1}
	}
	return nil
}

func writeDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, flags *globalFlags, cf *checkFlags) error {
	pathMode, ok := diagfmt.ParsePathMode(cf.pathMode)
	if !ok {
		return fmt.Errorf("invalid --path-mode value %q", cf.pathMode)
	}
	if cf.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	showFixes := cf.suggest || cf.preview

	switch cf.format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:       useColor(flags.color, os.Stdout),
			Context:     2,
			PathMode:    pathMode,
			Width:       terminalWidth(os.Stdout),
			ShowNotes:   cf.withNotes,
			ShowFixes:   showFixes,
			ShowPreview: cf.preview,
		})
		return nil
	case "short":
		return diagfmt.Short(w, bag, fs, pathMode, cf.withNotes)
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     cf.withNotes,
			IncludeFixes:     showFixes,
			IncludePreviews:  cf.preview,
		})
	default:
		return fmt.Errorf("unknown format: %s", cf.format)
	}
}

func printCheckSummary(w io.Writer, s checkSummary) {
	noun := "files"
	if s.files == 1 {
		noun = "file"
	}
	line := fmt.Sprintf("checked %d %s: %d error(s), %d warning(s)", s.files, noun, s.errors, s.warnings)
	if s.cached > 0 {
		line += fmt.Sprintf(" (%d cached)", s.cached)
	}
	fmt.Fprintln(w, line)
}
