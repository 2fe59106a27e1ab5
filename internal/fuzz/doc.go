// Package fuzztests houses Go fuzz harnesses for the Joy front end
// (source -> lexer -> parser). They guard against panics, hangs and broken
// span layout on arbitrary input.
package fuzztests
