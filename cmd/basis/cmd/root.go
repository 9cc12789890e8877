package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/basis-lang/basis/internal/astbuilder"
	"github.com/basis-lang/basis/internal/diag"
	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/parser"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	rootFile     string
	rootTabWidth int
)

var rootCmd = &cobra.Command{
	Use:   "basis",
	Short: "Front end for the basis language",
	Long: `basis is the lexer, parser, and AST builder for the basis
language: a module system of declarations (alias, domain, enum, record,
object, instance, class) and commands (plain, vcommand, constructor)
built over a two-dimensional, indentation-bounded parser-combinator
engine.

It is a from-scratch front end, not a port: the grammar, AST, and
diagnostics are purpose-built for this language rather than adapted
from another one.

With -file <path>, runs the source through the full lex -> parse ->
build pipeline directly: silent on success, a formatted diagnostic and
a non-zero exit on failure.`,
	Version: Version,
	RunE:    runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if rootFile == "" {
		return cmd.Help()
	}
	content, err := os.ReadFile(rootFile)
	if err != nil {
		return &diag.FileOpenError{Path: rootFile, Err: err}
	}
	source := string(content)

	result := parser.Parse(source, lexer.WithTabWidth(rootTabWidth))
	if result.Err != nil {
		printDiag(rootFile, source, result.Err)
		os.Exit(1)
	}
	if _, err := astbuilder.Build(result.Tree); err != nil {
		printDiag(rootFile, source, err)
		os.Exit(1)
	}
	return nil
}

// Execute runs the root command. The single-dash "-file" spelling is
// accepted as well as "--file".
func Execute() error {
	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if a == "-file" || (len(a) > 6 && a[:6] == "-file=") {
			a = "-" + a
		}
		args = append(args, a)
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")
	rootCmd.Flags().StringVar(&rootFile, "file", "", "source file to run through the full pipeline")
	rootCmd.Flags().IntVar(&rootTabWidth, "tab-width", 4, "columns a tab expands to for bound computation")
}

// printDiag formats err as a diag.Report with a source excerpt and
// writes it to stderr, honoring the global --no-color flag.
func printDiag(file, source string, err error) {
	useColor := true
	if noColor, ferr := rootCmd.PersistentFlags().GetBool("no-color"); ferr == nil {
		useColor = !noColor
	}
	report := diag.NewReport(file, source, err)
	fmt.Fprint(os.Stderr, report.Format(useColor))
}
