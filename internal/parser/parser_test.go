package parser

import (
	"testing"

	"github.com/basis-lang/basis/internal/diag"
	"github.com/basis-lang/basis/internal/parsetree"
)

func TestParseEnumDeclSucceeds(t *testing.T) {
	result := Parse(".enum Fish: sockeye = 0, salmon = 1")
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Tree == nil {
		t.Fatal("expected a non-nil tree")
	}
	if result.Tree.Production != parsetree.COMPILATION_UNIT {
		t.Fatalf("expected COMPILATION_UNIT root, got %v", result.Tree.Production)
	}
	if result.Tree.Down == nil || result.Tree.Down.Production != parsetree.ENUM_DECL {
		t.Fatalf("expected an ENUM_DECL definition under the root, got %+v", result.Tree.Down)
	}
	if len(result.Tokens) == 0 {
		t.Fatal("expected tokens to be retained on success")
	}
}

func TestParseMultipleDefinitions(t *testing.T) {
	src := ".enum Fish: sockeye = 0, salmon = 1\n.program main: x, y\n"
	result := Parse(src)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	kids := 0
	for n := result.Tree.Down; n != nil; n = n.Next {
		kids++
	}
	if kids != 2 {
		t.Fatalf("expected 2 top-level definitions, got %d", kids)
	}
}

func TestParseLexErrorSurfacesAsLexError(t *testing.T) {
	result := Parse("1a")
	if result.Err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := result.Err.(*diag.LexError); !ok {
		t.Fatalf("got %T, want *diag.LexError", result.Err)
	}
	if result.Tree != nil {
		t.Fatal("expected no tree on lex failure")
	}
}

func TestParseSyntaxErrorSurfacesFurthestToken(t *testing.T) {
	// "Sockeye" is a TYPENAME, not a valid enum item name (IDENTIFIER).
	result := Parse(".enum Fish: Sockeye = 0")
	if result.Err == nil {
		t.Fatal("expected an error")
	}
	parseErr, ok := result.Err.(*diag.ParseError)
	if !ok {
		t.Fatalf("got %T, want *diag.ParseError", result.Err)
	}
	if parseErr.Furthest == nil {
		t.Fatal("expected a furthest token to be recorded")
	}
	if parseErr.Furthest.Text != "Sockeye" {
		t.Fatalf("furthest token = %q, want %q", parseErr.Furthest.Text, "Sockeye")
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	// A well-formed enum decl followed by a stray token the grammar
	// can't attach anywhere.
	result := Parse(".enum Fish: sockeye = 0 )")
	if result.Err == nil {
		t.Fatal("expected an error for unconsumed trailing token")
	}
	if _, ok := result.Err.(*diag.ParseError); !ok {
		t.Fatalf("got %T, want *diag.ParseError", result.Err)
	}
}
