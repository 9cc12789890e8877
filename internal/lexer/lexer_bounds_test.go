package lexer

import "testing"

// TestScanBounds checks indentation-bound assignment on a small
// mixed-indentation snippet:
//
//	a b
//	 c
//	d
//
// a.bound = d, b.bound = c, c.bound = d, d.bound = nil.
func TestScanBounds(t *testing.T) {
	toks, err := Scan("a b\n c\nd")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(toks), toks)
	}
	a, b, c, d := toks[0], toks[1], toks[2], toks[3]

	if a.Bound != d {
		t.Errorf("a.Bound = %v, want d", a.Bound)
	}
	if b.Bound != c {
		t.Errorf("b.Bound = %v, want c", b.Bound)
	}
	if c.Bound != d {
		t.Errorf("c.Bound = %v, want d", c.Bound)
	}
	if d.Bound != nil {
		t.Errorf("d.Bound = %v, want nil", d.Bound)
	}
}

func TestBoundOrdering(t *testing.T) {
	toks, err := Scan(".class Foo:\n  .cmd bar\n  .cmd baz\nx")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	for _, tok := range toks {
		if tok.Bound == nil {
			continue
		}
		if tok.Bound.Pos.Column > tok.Pos.Column {
			t.Errorf("token %q at col %d has bound %q at col %d (> not allowed)",
				tok.Text, tok.Pos.Column, tok.Bound.Text, tok.Bound.Pos.Column)
		}
		boundIsLater := false
		for _, u := range toks {
			if u == tok.Bound {
				boundIsLater = true
				break
			}
		}
		if !boundIsLater {
			t.Errorf("token %q bound %q not found in sequence", tok.Text, tok.Bound.Text)
		}
	}
}

func TestScanIdempotent(t *testing.T) {
	src := ".class Foo:\n  .cmd bar: Int x -> r\n  .cmd baz\n"
	a, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	b, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			t.Fatalf("token %d differs: %v vs %v", i, a[i], b[i])
		}
		// structurally equal bound: both nil, or both point at the same index.
		aIdx, bIdx := -1, -1
		if a[i].Bound != nil {
			for j, t2 := range a {
				if t2 == a[i].Bound {
					aIdx = j
					break
				}
			}
		}
		if b[i].Bound != nil {
			for j, t2 := range b {
				if t2 == b[i].Bound {
					bIdx = j
					break
				}
			}
		}
		if aIdx != bIdx {
			t.Fatalf("token %d bound index differs: %d vs %d", i, aIdx, bIdx)
		}
	}
}
