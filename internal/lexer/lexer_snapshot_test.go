package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestScanSnapshots locks down the token stream (including bound targets)
// for a handful of representative programs.
func TestScanSnapshots(t *testing.T) {
	cases := map[string]string{
		"enum":       ".enum Fish: sockeye = 0, salmon = 1",
		"class_body": ".class Foo:\n  .cmd bar: Int x -> r\n  .cmd baz\n",
		"vcommand":   "a :: b:: doThing: x, y",
	}
	for name, src := range cases {
		toks, err := Scan(src)
		if err != nil {
			t.Fatalf("%s: Scan: %v", name, err)
		}
		var sb strings.Builder
		for i, tok := range toks {
			boundIdx := -1
			for j, other := range toks {
				if other == tok.Bound {
					boundIdx = j
					break
				}
			}
			fmt.Fprintf(&sb, "%d: %s %q @%s bound=%d\n", i, tok.Kind, tok.Text, tok.Pos, boundIdx)
		}
		snaps.MatchSnapshot(t, name, sb.String())
	}
}
