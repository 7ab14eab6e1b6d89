package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/bhasha-lang/bhasha/internal/semantic"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// TestFixtures runs every .bh script under testdata/fixtures through the
// full pipeline and snapshot-tests its stdout with go-snaps.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/fixtures/*.bh")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".bh")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			require.NoError(t, err)

			toks, lexErrs := lexer.TokenizeSafe(string(source))
			require.Empty(t, lexErrs)

			p := parser.New(toks)
			program := p.ParseProgram()
			require.Empty(t, p.Errors())

			semErrs := semantic.New().Analyze(program)
			require.Empty(t, semErrs)

			var out bytes.Buffer
			interpreter := New(&out, strings.NewReader(""))
			require.NoError(t, interpreter.Execute(program))

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
