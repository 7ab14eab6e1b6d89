package cmd

import (
	"fmt"

	"github.com/bhasha-lang/bhasha/internal/errors"
	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/bhasha-lang/bhasha/internal/semantic"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run the semantic analyzer and report diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	// All three front-end phases run unconditionally, so one check
	// invocation reports the whole batch of diagnostics at once.
	toks, lexErrs := lexer.TokenizeSafe(source)
	p := parser.New(toks)
	program := p.ParseProgram()

	diags := errors.FromLexer(lexErrs, source, filename)
	diags = append(diags, errors.FromParser(p.Errors(), source, filename)...)
	diags = append(diags, errors.FromSemantic(semantic.New().Analyze(program), source, filename)...)
	if len(diags) > 0 {
		printCompilerErrors(diags)
		return fmt.Errorf("found %d error(s)", len(diags))
	}

	fmt.Println("no errors found")
	return nil
}
