package lexer

import (
	"fmt"
	"strings"

	"github.com/bhasha-lang/bhasha/internal/token"
)

// Error is a single lexical error: an unexpected character or an
// unterminated string literal, tied to the position it was found at.
type Error struct {
	Message string
	Pos     token.Position
}

func (e Error) Error() string {
	return fmt.Sprintf("[LexerError] Line %d, Col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ErrorCollection batches every Error gathered during one panic-mode scan.
// The lexer never stops at the first bad character; it records and
// continues, surfacing the whole batch as a single failure at end of input.
type ErrorCollection struct {
	Errors []Error
}

func (c *ErrorCollection) Error() string {
	var b strings.Builder
	for i, e := range c.Errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
