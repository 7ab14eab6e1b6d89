package cmd

import (
	"fmt"
	"os"

	"github.com/bhasha-lang/bhasha/internal/config"
	"github.com/bhasha-lang/bhasha/internal/errors"
	"github.com/bhasha-lang/bhasha/internal/interp"
	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/parser"
	"github.com/bhasha-lang/bhasha/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	typeCheck bool
	maxDepth  int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a bhasha program",
	Long: `Execute a bhasha program from a file or inline expression.

Examples:
  bhasha run script.bh
  bhasha run -e "likho(\"Namaste, Duniya!\")"
  bhasha run --type-check=false script.bh`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&typeCheck, "type-check", true, "run the semantic analyzer before executing (default: true)")
	runCmd.Flags().IntVar(&maxDepth, "max-recursion-depth", 0, "override the call-depth ceiling (0 keeps the built-in default)")
}

func runScript(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	// TokenizeSafe keeps the (possibly partial) token stream even when
	// lexical errors exist, so parser diagnostics from the same run are
	// still discovered and the whole batch is reported together.
	toks, lexErrs := lexer.TokenizeSafe(source)
	p := parser.New(toks)
	program := p.ParseProgram()

	diags := errors.FromLexer(lexErrs, source, filename)
	diags = append(diags, errors.FromParser(p.Errors(), source, filename)...)
	if len(diags) > 0 {
		printCompilerErrors(diags)
		return fmt.Errorf("found %d error(s)", len(diags))
	}

	if typeCheck {
		semErrs := semantic.New().Analyze(program)
		if len(semErrs) > 0 {
			printCompilerErrors(errors.FromSemantic(semErrs, source, filename))
			return fmt.Errorf("semantic analysis failed with %d error(s)", len(semErrs))
		}
	}

	cfg := config.Default()
	cfg.ErrorLanguage = errorLanguage()
	cfg.MaxRecursionDepth = maxDepth
	cfg.File = filename

	interpreter := interp.New(os.Stdout, os.Stdin)
	interpreter.SetMaxRecursionDepth(cfg.MaxRecursionDepth)

	if execErr := interpreter.Execute(program); execErr != nil {
		if rtErr, ok := execErr.(*interp.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, errors.FromRuntime(rtErr, source, cfg.File).Format(cfg.ErrorLanguage, false))
		} else {
			fmt.Fprintln(os.Stderr, execErr)
		}
		return fmt.Errorf("execution failed")
	}
	return nil
}
