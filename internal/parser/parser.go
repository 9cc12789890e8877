// Package parser drives the lexer and the combinator grammar end to
// end: it scans a source string into tokens, runs the compilation-unit
// production over them, and turns whatever remains unconsumed or
// unmatched into a diagnostic.
package parser

import (
	"github.com/basis-lang/basis/internal/combinator"
	"github.com/basis-lang/basis/internal/diag"
	"github.com/basis-lang/basis/internal/grammar"
	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/parsetree"
	"github.com/basis-lang/basis/internal/token"
)

// Result is the outcome of parsing one source file: whichever of Tree
// or Err is non-nil reflects success or failure. Tokens is retained
// for callers (such as the REPL and the "parse" CLI subcommand) that
// want to report diagnostics with full source context.
type Result struct {
	Tokens []*token.Token
	Tree   *parsetree.Node
	Err    error
}

// Parse scans input and parses it against the compilation-unit
// grammar. On success Result.Tree holds the root COMPILATION_UNIT node
// and every token was consumed. On failure Result.Err is either a
// *diag.LexError (malformed source) or a *diag.ParseError (the
// furthest point any alternative reached before giving up).
func Parse(input string, opts ...lexer.Option) Result {
	toks, err := lexer.Scan(input, opts...)
	if err != nil {
		return Result{Err: err}
	}

	g := grammar.Get()
	var far combinator.Furthest
	next, tree, ok := g.CompilationUnit(toks, 0, combinator.NoLimit, &far)
	if !ok || next != len(toks) {
		return Result{Tokens: toks, Err: &diag.ParseError{Furthest: far.Token}}
	}
	return Result{Tokens: toks, Tree: tree}
}
