package grammar_test

import (
	"testing"

	"github.com/basis-lang/basis/internal/grammar"
	"github.com/basis-lang/basis/internal/lexer"
	"github.com/basis-lang/basis/internal/parsetree"
)

func TestEnumDeclRejectsLowercaseName(t *testing.T) {
	g := grammar.New()
	_, _, ok := parseAll(t, ".enum fish: sockeye = 0", g.EnumDecl)
	if ok {
		t.Fatalf("expected lowercase enum name to be rejected")
	}
}

func TestEnumDeclTwoNameShape(t *testing.T) {
	g := grammar.New()
	src := ".enum T Fish: sockeye = 0, salmon = 1"
	next, node, ok := parseAll(t, src, g.EnumDecl)
	if !ok {
		t.Fatalf("expected two-name enum decl to parse")
	}
	toks, _ := lexer.Scan(src)
	if next != len(toks) {
		t.Fatalf("expected full consumption, stopped at %d of %d", next, len(toks))
	}
	kids := flatten(node.Down)
	if kids[0].Production != parsetree.ENUM_NAME1 || kids[0].Token.Text != "T" {
		t.Fatalf("expected ENUM_NAME1 T, got %v %q", kids[0].Production, kids[0].Token.Text)
	}
	if kids[1].Production != parsetree.ENUM_NAME2 || kids[1].Token.Text != "Fish" {
		t.Fatalf("expected ENUM_NAME2 Fish, got %v %q", kids[1].Production, kids[1].Token.Text)
	}
}

func TestClassDeclRejectsLowercaseName(t *testing.T) {
	g := grammar.New()
	_, _, ok := parseAll(t, ".class foo:\n  .cmd bar\n", g.ClassDecl)
	if ok {
		t.Fatalf("expected lowercase class name to be rejected")
	}
}

func TestRecordDeclRejectsLowercaseName(t *testing.T) {
	g := grammar.New()
	_, _, ok := parseAll(t, ".record point: Int x", g.RecordDecl)
	if ok {
		t.Fatalf("expected lowercase record name to be rejected")
	}
}

func TestRecordDeclGenericSingleParam(t *testing.T) {
	g := grammar.New()
	src := ".record Pair[T]: T first, T second"
	next, node, ok := parseAll(t, src, g.RecordDecl)
	if !ok {
		t.Fatalf("expected generic record decl to parse")
	}
	toks, _ := lexer.Scan(src)
	if next != len(toks) {
		t.Fatalf("expected full consumption, stopped at %d of %d", next, len(toks))
	}
	kids := flatten(node.Down)
	if kids[1].Production != parsetree.TYPE_PARAM {
		t.Fatalf("expected TYPE_PARAM after name, got %v", kids[1].Production)
	}
}

func TestRecordDeclGenericConstParam(t *testing.T) {
	g := grammar.New()
	src := ".record Buffer[Int size]: [size]Byte data"
	_, _, ok := parseAll(t, src, g.RecordDecl)
	if !ok {
		t.Fatalf("expected const-generic record decl to parse")
	}
}

func TestObjectDeclGenericTwoParams(t *testing.T) {
	g := grammar.New()
	src := ".object Map[K, V]: K key, V value"
	_, _, ok := parseAll(t, src, g.ObjectDecl)
	if !ok {
		t.Fatalf("expected two-param generic object decl to parse")
	}
}

func TestAliasDeclGeneric(t *testing.T) {
	g := grammar.New()
	src := ".alias List[T]: ^[]T"
	_, _, ok := parseAll(t, src, g.AliasDecl)
	if !ok {
		t.Fatalf("expected generic alias decl to parse")
	}
}
