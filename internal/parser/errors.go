package parser

import (
	"fmt"
	"strings"

	"github.com/bhasha-lang/bhasha/internal/token"
)

// Error is a single syntax error with line/column context, produced by one
// of the three factories below.
type Error struct {
	Message string
	Pos     token.Position
}

func (e Error) Error() string {
	return fmt.Sprintf("[ParserError] Line %d, Col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func expectedToken(pos token.Position, expected string, got token.Token) Error {
	return Error{Pos: pos, Message: fmt.Sprintf("expected %s, got %s %q", expected, got.Type, got.Literal)}
}

func missingToken(pos token.Position, expected string) Error {
	return Error{Pos: pos, Message: fmt.Sprintf("missing %s", expected)}
}

func invalidSyntax(pos token.Position, message string) Error {
	return Error{Pos: pos, Message: message}
}

// ErrorCollection batches every syntax error found during one parse,
// surfaced as a single failure at end of input.
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
