// Package errors formats diagnostics from every pipeline phase (lexer,
// parser, semantic analyzer, and interpreter) into one consistent
// presentation: a stage label, a source line, a caret pointing at the
// offending column, and the message itself. The stage label is rendered
// in English, Hindi, or both; the message text is printed as the phase
// produced it, in English.
package errors

import (
	"fmt"
	"strings"

	"github.com/bhasha-lang/bhasha/internal/token"
)

// Language selects whether Format renders the stage label in English,
// Hindi, or both; the message text itself is not translated. Bilingual
// is the default: a learner reading bhasha's own errors benefits from
// seeing both until they know the vocabulary.
type Language int

const (
	Bilingual Language = iota
	English
	Hindi
)

// stageNames gives each pipeline stage a bilingual label for the error
// header, e.g. "Syntactic Error / वाक्य रचना त्रुटि".
var stageNames = map[string][2]string{
	"Lexical":   {"Lexical Error", "शाब्दिक त्रुटि"},
	"Syntactic": {"Syntactic Error", "वाक्य रचना त्रुटि"},
	"Static":    {"Static Error", "स्थैतिक त्रुटि"},
	"Runtime":   {"Runtime Error", "रनटाइम त्रुटि"},
}

// CompilerError is one diagnostic with enough context to render a
// source-pointing report: which stage raised it, where, and the
// underlying message.
type CompilerError struct {
	Stage   string // "Lexical", "Syntactic", "Static", or "Runtime"
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New constructs a CompilerError tied to a source position.
func New(stage string, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Stage: stage, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface using the Bilingual default.
func (e *CompilerError) Error() string {
	return e.Format(Bilingual, false)
}

// Format renders the error with a source line and caret, in the
// requested language. If color is true, the caret and message are
// wrapped in ANSI escapes for terminal output.
func (e *CompilerError) Format(lang Language, color bool) string {
	var sb strings.Builder

	names, ok := stageNames[e.Stage]
	if !ok {
		names = [2]string{e.Stage, e.Stage}
	}
	sb.WriteString(e.header(names, lang))
	sb.WriteString("\n")

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *CompilerError) header(names [2]string, lang Language) string {
	label := names[0]
	switch lang {
	case Hindi:
		label = names[1]
	case Bilingual:
		label = names[0] + " / " + names[1]
	}
	if e.File != "" {
		return fmt.Sprintf("%s in %s:%d:%d", label, e.File, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s at line %d:%d", label, e.Pos.Line, e.Pos.Column)
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Collection batches every CompilerError produced by one pipeline run so
// a driver can print them together rather than stopping at the first.
type Collection struct {
	Errors []*CompilerError
}

func (c *Collection) Error() string {
	var b strings.Builder
	for i, e := range c.Errors {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
