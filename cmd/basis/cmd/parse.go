package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/basis-lang/basis/internal/astbuilder"
	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/parser"
	"github.com/basis-lang/basis/internal/parsetree"
)

var (
	parseTabWidth int
	parseDumpTree bool
	parseDumpAST  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a basis source file and report success or a diagnostic",
	Long: `Parse a basis source file through the full lex -> parse -> build
pipeline. Prints nothing on success unless --dump-tree or --dump-ast is
given; on failure, prints a formatted diagnostic and exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().IntVar(&parseTabWidth, "tab-width", 4, "columns a tab expands to for bound computation")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-tree", false, "dump the generic parse tree")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the built AST")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	source := string(content)

	result := parser.Parse(source, lexer.WithTabWidth(parseTabWidth))
	if result.Err != nil {
		printDiag(path, source, result.Err)
		return fmt.Errorf("parse failed")
	}

	if parseDumpTree {
		dumpTree(result.Tree, 0)
	}

	unit, err := astbuilder.Build(result.Tree)
	if err != nil {
		printDiag(path, source, err)
		return fmt.Errorf("build failed")
	}

	if parseDumpAST {
		fmt.Printf("CompilationUnit: %d import(s), %d definition(s)\n", len(unit.Imports), len(unit.Definitions))
	}
	return nil
}

func dumpTree(n *parsetree.Node, depth int) {
	for ; n != nil; n = n.Next {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		if n.Token != nil {
			fmt.Printf("%s%d %q\n", indent, n.Production, n.Token.Text)
		} else {
			fmt.Printf("%s%d\n", indent, n.Production)
		}
		dumpTree(n.Down, depth+1)
	}
}
