package combinator

import (
	"testing"

	"github.com/basis-lang/basis/internal/parsetree"
	"github.com/basis-lang/basis/internal/token"
)

func toks(kinds ...token.Kind) []*token.Token {
	out := make([]*token.Token, len(kinds))
	for i, k := range kinds {
		out[i] = &token.Token{Kind: k, Text: k.String()}
	}
	return out
}

func TestMatchAdvancesAndProducesLeaf(t *testing.T) {
	ts := toks(token.IDENTIFIER)
	var far Furthest
	next, node, ok := Match(parsetree.IDENTIFIER, token.IDENTIFIER)(ts, 0, noLimit, &far)
	if !ok || next != 1 || node == nil || node.Production != parsetree.IDENTIFIER {
		t.Fatalf("got next=%d node=%v ok=%v", next, node, ok)
	}
}

func TestDiscardProducesNoNode(t *testing.T) {
	ts := toks(token.COLON)
	var far Furthest
	next, node, ok := Discard(token.COLON)(ts, 0, noLimit, &far)
	if !ok || next != 1 || node != nil {
		t.Fatalf("got next=%d node=%v ok=%v", next, node, ok)
	}
}

func TestMaybeAlwaysSucceeds(t *testing.T) {
	ts := toks(token.COLON)
	var far Furthest
	next, _, ok := Maybe(Match(parsetree.IDENTIFIER, token.IDENTIFIER))(ts, 0, noLimit, &far)
	if !ok || next != 0 {
		t.Fatalf("Maybe should succeed without consuming on mismatch, got next=%d ok=%v", next, ok)
	}
}

func TestAnyRestoresCursorBetweenAttempts(t *testing.T) {
	ts := toks(token.IDENTIFIER)
	var far Furthest
	fn := Any(
		Match(parsetree.TYPENAME, token.TYPENAME),
		Match(parsetree.IDENTIFIER, token.IDENTIFIER),
	)
	next, node, ok := fn(ts, 0, noLimit, &far)
	if !ok || next != 1 || node.Production != parsetree.IDENTIFIER {
		t.Fatalf("got next=%d node=%v ok=%v", next, node, ok)
	}
}

func TestAnyFailsWhenAllFail(t *testing.T) {
	ts := toks(token.COLON)
	var far Furthest
	fn := Any(
		Match(parsetree.TYPENAME, token.TYPENAME),
		Match(parsetree.IDENTIFIER, token.IDENTIFIER),
	)
	if _, _, ok := fn(ts, 0, noLimit, &far); ok {
		t.Fatal("expected failure")
	}
}

func TestAllChainsNodesAndSkipsDiscards(t *testing.T) {
	ts := toks(token.IDENTIFIER, token.COLON, token.TYPENAME)
	var far Furthest
	fn := All(
		Match(parsetree.IDENTIFIER, token.IDENTIFIER),
		Discard(token.COLON),
		Match(parsetree.TYPENAME, token.TYPENAME),
	)
	next, node, ok := fn(ts, 0, noLimit, &far)
	if !ok || next != 3 {
		t.Fatalf("got next=%d ok=%v", next, ok)
	}
	if node.Production != parsetree.IDENTIFIER || node.Next == nil || node.Next.Production != parsetree.TYPENAME {
		t.Fatalf("expected IDENTIFIER->TYPENAME chain with COLON skipped, got %+v", node)
	}
}

func TestOneOrMoreRequiresAtLeastOne(t *testing.T) {
	ts := toks(token.COLON)
	var far Furthest
	if _, _, ok := OneOrMore(Match(parsetree.IDENTIFIER, token.IDENTIFIER))(ts, 0, noLimit, &far); ok {
		t.Fatal("expected failure on zero matches")
	}
}

func TestOneOrMoreCollectsAll(t *testing.T) {
	ts := toks(token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER, token.COLON)
	var far Furthest
	next, node, ok := OneOrMore(Match(parsetree.IDENTIFIER, token.IDENTIFIER))(ts, 0, noLimit, &far)
	if !ok || next != 3 {
		t.Fatalf("got next=%d ok=%v", next, ok)
	}
	count := 0
	for n := node; n != nil; n = n.Next {
		count++
	}
	if count != 3 {
		t.Fatalf("got %d nodes, want 3", count)
	}
}

func TestSeparatedRejectsDanglingSeparator(t *testing.T) {
	ts := toks(token.IDENTIFIER, token.COMMA)
	var far Furthest
	fn := Separated(Match(parsetree.IDENTIFIER, token.IDENTIFIER), Discard(token.COMMA))
	if _, _, ok := fn(ts, 0, noLimit, &far); ok {
		t.Fatal("expected failure: separator with nothing following")
	}
}

func TestSeparatedCollectsElements(t *testing.T) {
	ts := toks(token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.COMMA, token.IDENTIFIER)
	var far Furthest
	fn := Separated(Match(parsetree.IDENTIFIER, token.IDENTIFIER), Discard(token.COMMA))
	next, node, ok := fn(ts, 0, noLimit, &far)
	if !ok || next != 5 {
		t.Fatalf("got next=%d ok=%v", next, ok)
	}
	count := 0
	for n := node; n != nil; n = n.Next {
		count++
	}
	if count != 3 {
		t.Fatalf("got %d elements, want 3", count)
	}
}

func TestPrefixSkipsWhenLeadNotPresent(t *testing.T) {
	ts := toks(token.IDENTIFIER)
	var far Furthest
	fn := Prefix(Discard(token.BANG), Match(parsetree.IDENTIFIER, token.IDENTIFIER))
	next, node, ok := fn(ts, 0, noLimit, &far)
	if !ok || next != 0 || node != nil {
		t.Fatalf("expected no-op success, got next=%d node=%v ok=%v", next, node, ok)
	}
}

func TestPrefixMakesRestMandatoryOnceLeadMatches(t *testing.T) {
	ts := toks(token.BANG, token.COLON)
	var far Furthest
	fn := Prefix(Discard(token.BANG), Match(parsetree.IDENTIFIER, token.IDENTIFIER))
	if _, _, ok := fn(ts, 0, noLimit, &far); ok {
		t.Fatal("expected failure: lead matched but mandatory tail did not")
	}
}

func TestFurthestFailureTracksDeepestAttempt(t *testing.T) {
	ts := toks(token.IDENTIFIER, token.IDENTIFIER, token.COLON)
	var far Furthest
	fn := Any(
		All(Match(parsetree.IDENTIFIER, token.IDENTIFIER), Match(parsetree.IDENTIFIER, token.IDENTIFIER), Match(parsetree.TYPENAME, token.TYPENAME)),
		Match(parsetree.IDENTIFIER, token.IDENTIFIER),
	)
	fn(ts, 0, noLimit, &far)
	if far.Pos != 2 {
		t.Fatalf("Furthest.Pos = %d, want 2", far.Pos)
	}
}

func TestBoundedGroupRejectsPartialConsumption(t *testing.T) {
	a := &token.Token{Kind: token.IDENTIFIER, Text: "a", Pos: token.Position{Line: 1, Column: 1}}
	b := &token.Token{Kind: token.IDENTIFIER, Text: "b", Pos: token.Position{Line: 2, Column: 1}}
	c := &token.Token{Kind: token.IDENTIFIER, Text: "c", Pos: token.Position{Line: 3, Column: 1}}
	a.Bound = c
	ts := []*token.Token{a, b, c}
	var far Furthest
	fn := BoundedGroup(parsetree.BLOCK, Match(parsetree.IDENTIFIER, token.IDENTIFIER))
	if _, _, ok := fn(ts, 0, noLimit, &far); ok {
		t.Fatal("expected failure: only one of two bounded tokens consumed")
	}
}

func TestBoundedGroupAcceptsFullConsumption(t *testing.T) {
	a := &token.Token{Kind: token.IDENTIFIER, Text: "a", Pos: token.Position{Line: 1, Column: 1}}
	b := &token.Token{Kind: token.IDENTIFIER, Text: "b", Pos: token.Position{Line: 2, Column: 1}}
	c := &token.Token{Kind: token.IDENTIFIER, Text: "c", Pos: token.Position{Line: 3, Column: 1}}
	a.Bound = c
	ts := []*token.Token{a, b, c}
	var far Furthest
	fn := BoundedGroup(parsetree.BLOCK, OneOrMore(Match(parsetree.IDENTIFIER, token.IDENTIFIER)))
	next, node, ok := fn(ts, 0, noLimit, &far)
	if !ok || next != 2 {
		t.Fatalf("got next=%d ok=%v", next, ok)
	}
	if node.Production != parsetree.BLOCK {
		t.Fatalf("got %+v", node)
	}
}

// TestAllPreservesMultiNodeChainFromEarlierStep guards against
// appending the next step after only the head of a chain a prior step
// produced, which would silently drop every sibling after the first.
func TestAllPreservesMultiNodeChainFromEarlierStep(t *testing.T) {
	ts := toks(token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.TYPENAME)
	var far Furthest
	list := Separated(Match(parsetree.IDENTIFIER, token.IDENTIFIER), Discard(token.COMMA))
	fn := All(list, Match(parsetree.TYPENAME, token.TYPENAME))
	next, node, ok := fn(ts, 0, noLimit, &far)
	if !ok || next != 6 {
		t.Fatalf("got next=%d ok=%v", next, ok)
	}
	count := 0
	for n := node; n != nil; n = n.Next {
		count++
	}
	if count != 4 {
		t.Fatalf("got %d nodes in chain, want 4 (3 identifiers + 1 typename)", count)
	}
	if node.Next.Next.Next.Production != parsetree.TYPENAME {
		t.Fatalf("expected typename node to be reachable at the end of the chain, got %+v", node)
	}
}

func TestForwardBreaksInitCycle(t *testing.T) {
	var expr ParseFn
	ref := Forward(&expr)
	expr = Match(parsetree.IDENTIFIER, token.IDENTIFIER)

	ts := toks(token.IDENTIFIER)
	var far Furthest
	if _, _, ok := ref(ts, 0, noLimit, &far); !ok {
		t.Fatal("expected Forward to dispatch to the now-assigned fn")
	}
}
