package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"joy/internal/prof"
	"joy/internal/version"
)

// exitCodeError ends the process with code without printing anything more;
// the command has already reported what went wrong.
type exitCodeError struct{ code int }

func (e exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type globalFlags struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	cons           string
	trace          string
	traceLevel     string
	traceMode      string
	traceFormat    string
	traceRingSize  int
	cpuProfile     string
	memProfile     string
	runtimeTrace   string
}

// newRootCmd builds the command tree. The returned cleanup stops profilers
// and flushes tracing; RunE errors skip cobra's post-run hooks, so callers
// run it after Execute.
func newRootCmd() (*cobra.Command, func()) {
	flags := &globalFlags{}
	var (
		stopTrace func()
		session   *prof.Session
	)
	cleanup := func() {
		if stopTrace != nil {
			stopTrace()
			stopTrace = nil
		}
		if err := session.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "joy: profiling: %v\n", err)
		}
	}

	root := &cobra.Command{
		Use:           "joy",
		Short:         "Joy front end: tokenizer, parser and diagnostics",
		Long:          `joy tokenizes and parses Joy programs into concrete syntax trees and reports lexical and syntax diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyColorMode(flags.color); err != nil {
				return err
			}
			var err error
			session, err = prof.Start(prof.Config{
				CPUPath:   flags.cpuProfile,
				MemPath:   flags.memProfile,
				TracePath: flags.runtimeTrace,
			})
			if err != nil {
				return err
			}
			stopTrace, err = setupTracing(cmd, flags)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.color, "color", "auto", "colorize output (auto|on|off)")
	pf.BoolVar(&flags.quiet, "quiet", false, "suppress non-essential output")
	pf.BoolVar(&flags.timings, "timings", false, "show timing information")
	pf.IntVar(&flags.maxDiagnostics, "max-diagnostics", 100, "maximum number of diagnostics per file (0 = unlimited)")
	pf.StringVar(&flags.cons, "cons", "", "cons operator outside quotations (error|operator); defaults to joy.toml")
	pf.StringVar(&flags.trace, "trace", "", "trace output file (- for stderr)")
	pf.StringVar(&flags.traceLevel, "trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.StringVar(&flags.traceMode, "trace-mode", "stream", "trace storage mode (stream|ring)")
	pf.StringVar(&flags.traceFormat, "trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.IntVar(&flags.traceRingSize, "trace-ring-size", 4096, "events kept in ring mode")
	pf.StringVar(&flags.cpuProfile, "cpu-profile", "", "write a CPU profile to file")
	pf.StringVar(&flags.memProfile, "mem-profile", "", "write a heap profile to file on exit")
	pf.StringVar(&flags.runtimeTrace, "runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(
		newTokenizeCmd(flags),
		newParseCmd(flags),
		newCheckCmd(flags),
		newInitCmd(),
		newVersionCmd(),
	)
	return root, cleanup
}

func main() {
	defer dumpTraceOnPanic()
	root, cleanup := newRootCmd()
	err := root.Execute()
	cleanup()
	if err != nil {
		var exit exitCodeError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "joy: %v\n", err)
		os.Exit(2)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of f clamped for diagnostic rendering, or
// 0 when f is not a terminal.
func terminalWidth(f *os.File) uint8 {
	if !isTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 0
	}
	return uint8(min(w, 255))
}
