package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it, for CLI-level tests that can't inject a
// writer directly.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, pipeErr := os.Pipe()
	require.NoError(t, pipeErr)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), fnErr
}

func resetEvalFlag(t *testing.T) {
	t.Helper()
	old := evalExpr
	t.Cleanup(func() { evalExpr = old })
}

func TestRunScriptFromFile(t *testing.T) {
	resetEvalFlag(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "main.bh")
	require.NoError(t, os.WriteFile(path, []byte(`likho("Namaste, Duniya!")`), 0o644))

	out, err := captureStdout(t, func() error { return runScript(runCmd, []string{path}) })
	require.NoError(t, err)
	require.Equal(t, "Namaste, Duniya!\n", out)
}

func TestRunScriptFromEvalFlag(t *testing.T) {
	resetEvalFlag(t)
	evalExpr = `likho(1 + 2)`

	out, err := captureStdout(t, func() error { return runScript(runCmd, nil) })
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestRunScriptReportsSemanticErrors(t *testing.T) {
	resetEvalFlag(t)
	evalExpr = `ruk`

	_, err := captureStdout(t, func() error { return runScript(runCmd, nil) })
	require.Error(t, err)
}
