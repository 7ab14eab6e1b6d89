package errors

import (
	"testing"

	"github.com/bhasha-lang/bhasha/internal/token"
	"github.com/stretchr/testify/require"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	source := "maan x = @\n"
	e := New("Lexical", token.Position{Line: 1, Column: 10}, "unexpected character '@'", source, "main.bh")

	out := e.Format(English, false)
	require.Contains(t, out, "Lexical Error in main.bh:1:10")
	require.Contains(t, out, "maan x = @")
	require.Contains(t, out, "^")
	require.Contains(t, out, "unexpected character '@'")
}

func TestFormatLanguageSelection(t *testing.T) {
	e := New("Syntactic", token.Position{Line: 2, Column: 1}, "missing ')'", "", "")

	require.Contains(t, e.Format(English, false), "Syntactic Error")
	require.Contains(t, e.Format(Hindi, false), "वाक्य रचना त्रुटि")

	bilingual := e.Format(Bilingual, false)
	require.Contains(t, bilingual, "Syntactic Error")
	require.Contains(t, bilingual, "वाक्य रचना त्रुटि")
}

func TestFormatWithColorWrapsCaretAndMessage(t *testing.T) {
	e := New("Runtime", token.Position{Line: 1, Column: 1}, "boom", "x\n", "")
	out := e.Format(English, true)
	require.Contains(t, out, "\033[1;31m")
	require.Contains(t, out, "\033[1m")
}

func TestUnknownStageFallsBackToRawLabel(t *testing.T) {
	e := New("Mystery", token.Position{Line: 1, Column: 1}, "huh", "", "")
	require.Contains(t, e.Format(English, false), "Mystery")
}

func TestCollectionJoinsEveryError(t *testing.T) {
	c := &Collection{Errors: []*CompilerError{
		New("Lexical", token.Position{Line: 1, Column: 1}, "first", "", ""),
		New("Lexical", token.Position{Line: 2, Column: 1}, "second", "", ""),
	}}
	msg := c.Error()
	require.Contains(t, msg, "first")
	require.Contains(t, msg, "second")
}

func TestErrorUsesBilingualDefault(t *testing.T) {
	e := New("Static", token.Position{Line: 1, Column: 1}, "oops", "", "")
	require.Contains(t, e.Error(), "Static Error / स्थैतिक त्रुटि")
}
