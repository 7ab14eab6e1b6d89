package cmd

import (
	"fmt"
	"os"

	"github.com/bhasha-lang/bhasha/internal/errors"
	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a bhasha file or expression and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
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

	fmt.Println(program.String())
	return nil
}

func printCompilerErrors(errs []*errors.CompilerError) {
	lang := errorLanguage()
	for i, e := range errs {
		if i > 0 {
			fmt.Fprintln(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, e.Format(lang, false))
	}
}
