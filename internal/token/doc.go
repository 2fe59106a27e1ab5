// Package token defines lexical token kinds and trivia for the Joy front end.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - Whitespace, newlines and comments never appear in the main token stream;
//     they are attached to the following token as leading Trivia.
//   - true, false and null are reserved words that classify as literals.
//   - Interpolated strings are a single opaque token; splices are not lexed.
package token
