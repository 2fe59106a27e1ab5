package driver

import (
	"context"
	"strconv"

	"joy/internal/ast"
	"joy/internal/diag"
	"joy/internal/lexer"
	"joy/internal/observ"
	"joy/internal/parser"
	"joy/internal/source"
	"joy/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Bag     *diag.Bag
	Timing  *observ.Report
}

// Parse loads path and parses it into a tree. Only I/O failures are
// returned as errors; lexical and syntax problems end up in Bag.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	timer := observ.NewTimer()
	fs := source.NewFileSet()

	idx := timer.Begin("load")
	fileID, err := fs.Load(path)
	timer.End(idx, "")
	if err != nil {
		return nil, err
	}
	return parseFile(ctx, fs, fs.Get(fileID), opts, timer)
}

// ParseSource parses in-memory content registered under name.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(ctx, fs, fs.Get(fileID), opts, observ.NewTimer())
}

func parseFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options, timer *observ.Timer) (*ParseResult, error) {
	span, ctx := trace.Start(ctx, trace.ScopeFile, "parse_file")
	span.WithExtra("file", file.Path)

	bag := diag.NewBag(opts.MaxDiagnostics)
	popts, err := opts.parserOptions(ctx, bag)
	if err != nil {
		span.End("error")
		return nil, err
	}

	idx := timer.Begin("parse")
	lx := lexer.New(file, lexer.Options{Reporter: popts.Reporter})
	builder := ast.NewBuilder(file.ID, ast.Hints{Tokens: uint(len(file.Content)/4 + 1)})
	res := parser.ParseFile(ctx, lx, builder, popts)
	timer.End(idx, strconv.Itoa(len(res.Tree.Items()))+" items")

	report := timer.Report()
	if opts.Timings {
		appendTimingDiagnostic(bag, file.ID, timingPayload{Kind: "parse", Path: file.Path, TotalMS: report.TotalMS, Phases: report.Phases})
	}
	if dedup, ok := popts.Reporter.(*diag.DedupReporter); ok && dedup.Suppressed() > 0 {
		span.WithExtra("duplicates", strconv.Itoa(dedup.Suppressed()))
	}
	span.WithExtra("diagnostics", strconv.Itoa(bag.Len())).End("")

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    res.Tree,
		Bag:     bag,
		Timing:  &report,
	}, nil
}
