// Package cmd wires bhasha's five pipeline phases into a Cobra CLI with
// one subcommand per phase boundary: lex, parse, check, ir, run.
package cmd

import (
	"fmt"
	"os"

	"github.com/bhasha-lang/bhasha/internal/errors"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var (
	evalExpr string
	hindi    bool
	english  bool
)

var rootCmd = &cobra.Command{
	Use:   "bhasha",
	Short: "bhasha interpreter and compiler pipeline",
	Long: `bhasha is a small Hindi-keyword imperative/OOP scripting language.

This CLI exposes every phase of its pipeline as its own subcommand:
  lex    tokenize source and print the token stream
  parse  parse source and print the AST
  check  run the semantic analyzer and report diagnostics
  ir     lower a program to three-address code and print it
  run    execute a program end to end`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
	rootCmd.PersistentFlags().BoolVar(&hindi, "hindi", false, "render diagnostic stage labels in Hindi only")
	rootCmd.PersistentFlags().BoolVar(&english, "english", false, "render diagnostics in English only")
}

// readSource resolves the input source from either --eval or a single
// positional file argument, per every subcommand's shared contract.
func readSource(args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e/--eval for inline source")
}

// errorLanguage resolves the --hindi/--english flags to a diagnostics
// language, defaulting to bilingual when neither is set.
func errorLanguage() errors.Language {
	switch {
	case hindi:
		return errors.Hindi
	case english:
		return errors.English
	default:
		return errors.Bilingual
	}
}
