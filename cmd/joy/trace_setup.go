package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"joy/internal/trace"
)

var (
	activeRingMu sync.Mutex
	activeRing   *trace.RingTracer
	activeFormat trace.Format
)

// setupTracing builds the tracer selected by the trace flags and attaches it
// to the command context. The returned cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command, flags *globalFlags) (func(), error) {
	level, err := trace.ParseLevel(flags.traceLevel)
	if err != nil {
		return nil, err
	}
	// --trace alone implies phase-level tracing.
	if level == trace.LevelOff && flags.trace != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	mode, err := trace.ParseMode(flags.traceMode)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(flags.traceFormat)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: flags.trace,
		RingSize:   flags.traceRingSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	ring, isRing := tracer.(*trace.RingTracer)
	if isRing {
		if format == trace.FormatAuto {
			format = trace.FormatText
		}
		activeRingMu.Lock()
		activeRing, activeFormat = ring, format
		activeRingMu.Unlock()
	}

	return func() {
		if isRing {
			if err := dumpRing(flags.trace); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

// dumpRing writes the ring buffer to path, or stderr for "" and "-".
func dumpRing(path string) error {
	activeRingMu.Lock()
	ring, format := activeRing, activeFormat
	activeRing = nil
	activeRingMu.Unlock()
	if ring == nil {
		return nil
	}
	if path == "" || path == "-" {
		return ring.Dump(os.Stderr, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ring.Dump(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// dumpTraceOnPanic flushes the ring buffer to stderr before re-panicking so
// the last events before a crash are not lost.
func dumpTraceOnPanic() {
	if r := recover(); r != nil {
		if err := dumpRing(""); err != nil {
			fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
		}
		panic(r)
	}
}
