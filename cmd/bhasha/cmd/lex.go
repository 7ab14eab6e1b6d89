package cmd

import (
	"fmt"

	"github.com/bhasha-lang/bhasha/internal/lexer"
	"github.com/bhasha-lang/bhasha/internal/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a bhasha file or expression",
	Long: `Tokenize a bhasha program and print the resulting tokens.

Examples:
  bhasha lex script.bh
  bhasha lex -e "maan x = 42"
  bhasha lex --show-pos script.bh`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func runLex(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	toks, lexErrs := lexer.TokenizeSafe(source)
	for _, tok := range toks {
		printToken(tok)
	}

	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Println(e.Error())
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-12s] %q", tok.Type, tok.Literal)
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
