package grammar_test

import (
	"testing"

	"github.com/basis-lang/basis/internal/combinator"
	"github.com/basis-lang/basis/internal/grammar"
	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/parsetree"
)

func TestCmdSignatureConstructorShape(t *testing.T) {
	g := grammar.New()
	src := "Foo: Int x -> r"
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	var far combinator.Furthest
	next, node, ok := g.CmdSignature(toks, 0, combinator.NoLimit, &far)
	if !ok {
		t.Fatalf("expected constructor signature to parse")
	}
	if next != len(toks) {
		t.Fatalf("expected full consumption, stopped at %d of %d", next, len(toks))
	}
	kids := flatten(node.Down)
	if kids[0].Production != parsetree.TYPENAME || kids[0].Token.Text != "Foo" {
		t.Fatalf("expected leading TYPENAME Foo, got %v", kids[0].Production)
	}
}

func TestCmdSignatureDestructorShape(t *testing.T) {
	g := grammar.New()
	src := "@ Foo f"
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	var far combinator.Furthest
	next, node, ok := g.CmdSignature(toks, 0, combinator.NoLimit, &far)
	if !ok {
		t.Fatalf("expected destructor signature to parse")
	}
	if next != len(toks) {
		t.Fatalf("expected full consumption, stopped at %d of %d", next, len(toks))
	}
	kids := flatten(node.Down)
	if kids[0].Production != parsetree.DESTRUCTOR_MARKER {
		t.Fatalf("expected leading DESTRUCTOR_MARKER, got %v", kids[0].Production)
	}
	if kids[1].Production != parsetree.CMD_RECEIVER {
		t.Fatalf("expected CMD_RECEIVER after marker, got %v", kids[1].Production)
	}
}

func TestCmdSignatureFailHandlerShape(t *testing.T) {
	g := grammar.New()
	src := "@! Foo f: Int x"
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	var far combinator.Furthest
	next, node, ok := g.CmdSignature(toks, 0, combinator.NoLimit, &far)
	if !ok {
		t.Fatalf("expected fail-handler signature to parse")
	}
	if next != len(toks) {
		t.Fatalf("expected full consumption, stopped at %d of %d", next, len(toks))
	}
	kids := flatten(node.Down)
	if kids[0].Production != parsetree.FAILHANDLER_MARKER {
		t.Fatalf("expected leading FAILHANDLER_MARKER, got %v", kids[0].Production)
	}
}
