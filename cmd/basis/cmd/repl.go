package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/basis-lang/basis/internal/astbuilder"
	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/parser"
)

// replMode selects what a successfully parsed line prints.
type replMode int

const (
	replModeAST replMode = iota
	replModeTokens
	replModeTree
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive line-editing front end over the lex/parse pipeline",
	Long: `An interactive prompt that feeds each line through lex -> parse ->
build and reports the result. Each line is treated as a whole
compilation unit: it's a debugging aid for trying grammar fragments,
not a session with persistent state across lines.

Commands:
  :tokens   show the token stream for subsequent input
  :tree     show the parse tree for subsequent input
  :ast      show the built AST summary for subsequent input (default)
  :quit     exit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("basis> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	prompt := color.New(color.FgCyan)
	errColor := color.New(color.FgRed)

	mode := replModeAST
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":tokens":
			mode = replModeTokens
			prompt.Println("-- showing tokens")
			continue
		case ":tree":
			mode = replModeTree
			prompt.Println("-- showing parse tree")
			continue
		case ":ast":
			mode = replModeAST
			prompt.Println("-- showing AST summary")
			continue
		}

		result := parser.Parse(line, lexer.WithTabWidth(8))
		if result.Err != nil {
			errColor.Println(result.Err.Error())
			continue
		}

		switch mode {
		case replModeTokens:
			for _, tok := range result.Tokens {
				fmt.Printf("%s %q @%s\n", tok.Kind, tok.Text, tok.Pos)
			}
		case replModeTree:
			dumpTree(result.Tree, 0)
		default:
			unit, err := astbuilder.Build(result.Tree)
			if err != nil {
				errColor.Println(err.Error())
				continue
			}
			fmt.Printf("ok: %d import(s), %d definition(s)\n", len(unit.Imports), len(unit.Definitions))
		}
	}
}
