package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/token"
)

var (
	lexTabWidth int
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a basis source file and print the resulting tokens",
	Long: `Tokenize a basis source file and print the resulting tokens.

Useful for debugging the lexer and for checking bound computation
without running the full parser.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().IntVar(&lexTabWidth, "tab-width", 4, "columns a tab expands to for bound computation")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token kind names")
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	toks, err := lexer.Scan(string(content), lexer.WithTabWidth(lexTabWidth))
	if err != nil {
		printDiag(path, string(content), err)
		return fmt.Errorf("lex failed")
	}

	for _, tok := range toks {
		printToken(tok)
	}
	return nil
}

func printToken(tok *token.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-12s]", tok.Kind)
	}
	out += fmt.Sprintf(" %q", tok.Text)
	if lexShowPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
