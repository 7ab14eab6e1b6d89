// Package token defines the lexical token types shared by the lexer and
// parser: the token tag set, source positions, and the fixed keyword table.
package token

import "fmt"

// Position identifies a location in source text as a 1-indexed line and
// column. Column counts Unicode code points (runes), not bytes, so
// multi-byte Devanagari identifiers report stable positions.
type Position struct {
	Line   int
	Column int
}

// String renders the position as "line:column", used in diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
