package semantic

import (
	"fmt"
	"strings"
)

// Error is one semantic diagnostic: an undefined name, a redeclaration, a
// context violation (break/continue/return/this/super outside their valid
// construct), an arity mismatch, or a type-checking complaint. Analysis
// never stops at the first one: every Error found during a full walk of
// the program is collected and returned together.
type Error struct {
	Message string
	Line    int
}

func (e Error) Error() string {
	return fmt.Sprintf("[SemanticError] Line %d: %s", e.Line, e.Message)
}

// ErrorCollection batches every Error found during one analysis run.
type ErrorCollection struct {
	Errors []Error
}

func (c *ErrorCollection) Error() string {
	if len(c.Errors) == 0 {
		return "no semantic errors"
	}
	msg := c.Errors[0].Error()
	if len(c.Errors) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(c.Errors)-1)
	}
	return msg
}

func undefinedName(line int, name string, suggestions []string) Error {
	msg := fmt.Sprintf("undefined name '%s'", name)
	if len(suggestions) > 0 {
		msg += ", did you mean '" + strings.Join(suggestions, "' or '") + "'?"
	}
	return Error{Line: line, Message: msg}
}

func redefinition(line int, name string, firstLine int) Error {
	return Error{Line: line, Message: fmt.Sprintf("'%s' is already declared in this scope (first declared on line %d)", name, firstLine)}
}

func notCallable(line int, name string) Error {
	return Error{Line: line, Message: fmt.Sprintf("'%s' is a class; use 'naya %s(...)' to create an instance", name, name)}
}

func arityMismatch(line int, name string, want, got int) Error {
	return Error{Line: line, Message: fmt.Sprintf("'%s' expects %d argument(s), got %d", name, want, got)}
}

func contextError(line int, msg string) Error {
	return Error{Line: line, Message: msg}
}

func typeError(line int, msg string) Error {
	return Error{Line: line, Message: msg}
}

func unknownParent(line int, class, parent string) Error {
	return Error{Line: line, Message: fmt.Sprintf("class '%s' extends unknown class '%s'", class, parent)}
}
