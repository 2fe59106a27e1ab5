package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"joy/internal/driver"
	"joy/internal/source"
	"joy/internal/ui"
)

type parseDirOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// parseDirWithUI runs ParseDir while a Bubble Tea model renders per-file
// progress on stdout.
func parseDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) (*source.FileSet, []driver.ParseDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseDirOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, runOpts)
		outcomeCh <- parseDirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// The model may quit early; keep draining so workers never block.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
