// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form such as
//     LEX1002 or SYN2007 (codes.go).
//   - Message: short, actionable text.
//   - Primary: the source.Span pointing at the problem.
//   - Notes: secondary spans with extra context.
//   - Fixes: structured text edits, e.g. inserting a missing '.'.
//
// # Emitting diagnostics
//
// Phases emit through a Reporter so they stay decoupled from storage. The
// parser builds diagnostics with ReportError(...).WithNote(...).WithFix(...)
// and calls Emit. BagReporter collects into a Bag, which supports limits,
// sorting, deduplication and filtering. DedupReporter drops exact repeats.
//
// Package diag performs no rendering; terminal and JSON output live in
// internal/diagfmt. FormatGoldenDiagnostics gives a stable one-line form for
// tests and the CLI short format.
package diag
