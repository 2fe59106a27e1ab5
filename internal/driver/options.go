package driver

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"joy/internal/diag"
	"joy/internal/parser"
	"joy/internal/trace"
)

// Options control a driver run. The zero value parses with default limits
// and no cache.
type Options struct {
	MaxDiagnostics int
	ConsPolicy     parser.ConsPolicy
	// Jobs bounds ParseDir concurrency; <= 0 means GOMAXPROCS.
	Jobs       int
	Extensions []string
	Cache      *DiskCache
	Progress   ProgressSink
	// Timings appends an ObsTimings diagnostic with per-phase durations.
	Timings bool
}

// parserOptions enables per-item trace points only when the context tracer
// records node scope events.
func (o Options) parserOptions(ctx context.Context, bag *diag.Bag) (parser.Options, error) {
	maxErrors, err := safecast.Conv[uint](max(o.MaxDiagnostics, 0))
	if err != nil {
		return parser.Options{}, fmt.Errorf("max diagnostics overflow: %w", err)
	}
	return parser.Options{
		Reporter:             diag.NewDedupReporter(&diag.BagReporter{Bag: bag}),
		MaxErrors:            maxErrors,
		ConsOutsideQuotation: o.ConsPolicy,
		Trace:                trace.FromContext(ctx).Level().ShouldEmit(trace.ScopeNode),
	}, nil
}

// fingerprint identifies the options that change parse output.
func (o Options) fingerprint() []byte {
	return fmt.Appendf(nil, "max=%d;cons=%s", o.MaxDiagnostics, o.ConsPolicy)
}
