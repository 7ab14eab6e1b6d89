package cmd

import (
	"fmt"

	"github.com/bhasha-lang/bhasha/internal/errors"
	"github.com/bhasha-lang/bhasha/internal/ir"
	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/bhasha-lang/bhasha/internal/semantic"
	"github.com/spf13/cobra"
)

var skipCheck bool

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Lower a bhasha program to three-address code and print it",
	Long: `Lower a bhasha program to its diagnostic three-address-code form.

The generated instructions are never executed; ir is a read-only view of
how the interpreter would desugar control flow (elif chains, for-each
loops, try/finally) before evaluating it directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)
	irCmd.Flags().BoolVar(&skipCheck, "skip-check", false, "lower without running the semantic analyzer first")
}

func runIR(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	toks, lexErrs := lexer.TokenizeSafe(source)
	if len(lexErrs) > 0 {
		printCompilerErrors(errors.FromLexer(lexErrs, source, filename))
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	p := parser.New(toks)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		printCompilerErrors(errors.FromParser(p.Errors(), source, filename))
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if !skipCheck {
		semErrs := semantic.New().Analyze(program)
		if len(semErrs) > 0 {
			printCompilerErrors(errors.FromSemantic(semErrs, source, filename))
			return fmt.Errorf("semantic analysis failed with %d error(s)", len(semErrs))
		}
	}

	fmt.Println(ir.Generate(program).Dump())
	return nil
}
