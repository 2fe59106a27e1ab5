// Package trace records what the Joy front end is doing: driver commands,
// the lex and parse passes, and per-file work inside ParseDir.
//
// # Usage
//
//	joy check --trace=- --trace-level=phase prog.joy
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event as it happens (text or NDJSON)
//   - RingTracer: keeps the last N events in memory for crash dumps
//
// # Levels and scopes
//
// LevelPhase emits driver and pass spans, LevelDetail adds per-file spans
// and LevelDebug adds per-item points from the parser.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopeFile, "parse_file")
//	defer span.End("")
package trace
