package errors

import (
	"github.com/bhasha-lang/bhasha/internal/interp"
	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/bhasha-lang/bhasha/internal/semantic"
	"github.com/bhasha-lang/bhasha/internal/token"
)

// FromLexer lifts a batch of lexical errors into CompilerErrors carrying
// the original source and file name for a caret-pointing report.
func FromLexer(errs []lexer.Error, source, file string) []*CompilerError {
	out := make([]*CompilerError, len(errs))
	for i, e := range errs {
		out[i] = New("Lexical", e.Pos, e.Message, source, file)
	}
	return out
}

// FromParser lifts a batch of syntax errors the same way.
func FromParser(errs []parser.Error, source, file string) []*CompilerError {
	out := make([]*CompilerError, len(errs))
	for i, e := range errs {
		out[i] = New("Syntactic", e.Pos, e.Message, source, file)
	}
	return out
}

// FromSemantic lifts a batch of static-analysis errors. Semantic.Error
// carries only a line, so the column is pinned to 1.
func FromSemantic(errs []semantic.Error, source, file string) []*CompilerError {
	out := make([]*CompilerError, len(errs))
	for i, e := range errs {
		out[i] = New("Static", token.Position{Line: e.Line, Column: 1}, e.Message, source, file)
	}
	return out
}

// FromRuntime lifts a single uncaught runtime error, prefixing its kind
// so `TypeError` / `DivisionByZeroError` / etc. stay visible alongside
// the bilingual stage label.
func FromRuntime(err *interp.RuntimeError, source, file string) *CompilerError {
	return New("Runtime", token.Position{Line: err.Line, Column: 1}, "["+err.Kind+"] "+err.Message, source, file)
}
