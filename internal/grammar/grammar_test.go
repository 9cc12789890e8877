package grammar_test

import (
	"testing"

	"github.com/basis-lang/basis/internal/combinator"
	"github.com/basis-lang/basis/internal/grammar"
	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/parsetree"
)

func parseAll(t *testing.T, src string, fn combinator.ParseFn) (int, *parsetree.Node, bool) {
	t.Helper()
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	var far combinator.Furthest
	next, node, ok := fn(toks, 0, combinator.NoLimit, &far)
	return next, node, ok
}

func TestEnumDeclParses(t *testing.T) {
	g := grammar.New()
	next, node, ok := parseAll(t, ".enum Fish: sockeye = 0, salmon = 1", g.EnumDecl)
	if !ok {
		t.Fatalf("expected enum decl to parse")
	}
	toks, _ := lexer.Scan(".enum Fish: sockeye = 0, salmon = 1")
	if next != len(toks) {
		t.Fatalf("expected full consumption, stopped at %d of %d", next, len(toks))
	}
	if node.Production != parsetree.ENUM_DECL {
		t.Fatalf("expected ENUM_DECL root, got %v", node.Production)
	}

	kids := flatten(node.Down)
	if len(kids) != 3 {
		t.Fatalf("expected name + 2 items, got %d children", len(kids))
	}
	if kids[1].Production != parsetree.ENUM_ITEM || kids[2].Production != parsetree.ENUM_ITEM {
		t.Fatalf("expected trailing children to be ENUM_ITEM")
	}
}

func TestBoundedClassBodySucceeds(t *testing.T) {
	g := grammar.New()
	src := ".class Foo:\n  .cmd bar: Int x -> r\n  .cmd baz\n"
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	var far combinator.Furthest
	next, node, ok := g.ClassDecl(toks, 0, combinator.NoLimit, &far)
	if !ok {
		t.Fatalf("expected class body to parse")
	}
	if next != len(toks) {
		t.Fatalf("expected full consumption, stopped at %d of %d", next, len(toks))
	}
	kids := flatten(node.Down)
	// name + two .cmd members (bar has no body => CMD_DECL, baz likewise)
	if len(kids) != 3 {
		t.Fatalf("expected name + 2 members, got %d", len(kids))
	}
}

func TestBoundedClassBodyRejectsUnindentedMember(t *testing.T) {
	g := grammar.New()
	// the second .cmd is unindented back to column 1, outside .class's bound
	src := ".class Foo:\n  .cmd bar: Int x -> r\n.cmd baz\n"
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	var far combinator.Furthest
	next, node, ok := g.ClassDecl(toks, 0, combinator.NoLimit, &far)
	if !ok {
		t.Fatalf("expected the class with its one indented member to parse")
	}
	// the bound ends the class body, leaving the unindented .cmd unconsumed
	if next == len(toks) || toks[next].Text != ".cmd" || toks[next].Pos.Column != 1 {
		t.Fatalf("expected unindented second member to break the class body's bound, stopped at %d of %d", next, len(toks))
	}
	if kids := flatten(node.Down); len(kids) != 2 {
		t.Fatalf("expected name + 1 member, got %d", len(kids))
	}
}

func TestFurthestPositionLocatesBadEnumItemName(t *testing.T) {
	g := grammar.New()
	src := ".enum Fish: Sockeye = 0"
	toks, err := lexer.Scan(src)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	var far combinator.Furthest
	_, _, ok := g.EnumDecl(toks, 0, combinator.NoLimit, &far)
	if ok {
		t.Fatalf("expected capitalized enum item name to fail (TYPENAME, not IDENTIFIER)")
	}
	if far.Token == nil {
		t.Fatalf("expected a furthest token to be recorded")
	}
	if far.Token.Text != "Sockeye" {
		t.Fatalf("expected furthest failure at %q, got %q", "Sockeye", far.Token.Text)
	}
}

func flatten(n *parsetree.Node) []*parsetree.Node {
	var out []*parsetree.Node
	for ; n != nil; n = n.Next {
		out = append(out, n)
	}
	return out
}
