package astbuilder

import (
	"github.com/basis-lang/basis/internal/ast"
	"github.com/basis-lang/basis/internal/parsetree"
)

// buildCmdSignature reads a CMD_SIGNATURE node's flat child list. Five
// shapes share the same parameter/implicit-parameter/return-value
// tail, discriminated by what leads the child list:
//   - DESTRUCTOR_MARKER / FAILHANDLER_MARKER, then a single
//     CMD_RECEIVER — "@ Type name: ..." / "@! Type name: ...".
//   - one or more CMD_RECEIVER nodes then a CMD_NAME_SPEC — vcommand.
//   - a bare TYPENAME leaf — constructor, no separate name.
//   - a CMD_NAME_SPEC with nothing before it — regular.
//
// Each run is identified by its own production tag, never by
// position, since any of the runs may be empty.
func buildCmdSignature(n *parsetree.Node) ast.CmdSignature {
	kids := children(n.Down)
	i := 0

	switch kids[0].Production {
	case parsetree.DESTRUCTOR_MARKER, parsetree.FAILHANDLER_MARKER:
		kind := ast.CmdDestructor
		if kids[0].Production == parsetree.FAILHANDLER_MARKER {
			kind = ast.CmdFailHandler
		}
		rk := children(kids[1].Down)
		receiver := ast.CmdReceiver{Type: buildTypeExpr(rk[0]), Name: rk[1].Token.Text}
		params, implicit, retVal := buildCmdTail(kids[2:])
		return ast.CmdSignature{
			Kind: kind, Receivers: []ast.CmdReceiver{receiver},
			Params: params, ImplicitParams: implicit, ReturnVal: retVal,
		}
	case parsetree.TYPENAME:
		name := kids[0].Token.Text
		params, implicit, retVal := buildCmdTail(kids[1:])
		return ast.CmdSignature{
			Kind: ast.CmdConstructor, Name: name,
			Params: params, ImplicitParams: implicit, ReturnVal: retVal,
		}
	}

	var receivers []ast.CmdReceiver
	for ; i < len(kids) && kids[i].Production == parsetree.CMD_RECEIVER; i++ {
		rk := children(kids[i].Down)
		receivers = append(receivers, ast.CmdReceiver{Type: buildTypeExpr(rk[0]), Name: rk[1].Token.Text})
	}

	nameSpec := kids[i]
	i++
	nsKids := children(nameSpec.Down)
	mayFail, fails := false, false
	j := 0
	if j < len(nsKids) && nsKids[j].Production == parsetree.MAYFAIL_MARKER {
		mayFail = true
		j++
	}
	if j < len(nsKids) && nsKids[j].Production == parsetree.FAILS_MARKER {
		fails = true
		j++
	}
	name := nsKids[j].Token.Text

	params, implicit, retVal := buildCmdTail(kids[i:])

	kind := ast.CmdRegular
	if len(receivers) > 0 {
		kind = ast.CmdVCommand
	}

	return ast.CmdSignature{
		Kind: kind, Name: name, MayFail: mayFail, Fails: fails,
		Receivers: receivers, Params: params, ImplicitParams: implicit, ReturnVal: retVal,
	}
}

// buildCmdTail reads the shared "zero or more CMD_PARAM, zero or more
// CMD_IMPLICIT_PARAMS, optional trailing IDENTIFIER" run common to all
// five CmdSignature shapes.
func buildCmdTail(kids []*parsetree.Node) (params, implicit []ast.CmdParam, retVal string) {
	i := 0
	for ; i < len(kids) && kids[i].Production == parsetree.CMD_PARAM; i++ {
		pk := children(kids[i].Down)
		params = append(params, ast.CmdParam{Type: buildTypeExpr(pk[0]), Name: pk[1].Token.Text})
	}
	for ; i < len(kids) && kids[i].Production == parsetree.CMD_IMPLICIT_PARAMS; i++ {
		pk := children(kids[i].Down)
		implicit = append(implicit, ast.CmdParam{Type: buildTypeExpr(pk[0]), Name: pk[1].Token.Text})
	}
	if i < len(kids) && kids[i].Production == parsetree.IDENTIFIER {
		retVal = kids[i].Token.Text
	}
	return params, implicit, retVal
}

func buildCmdDecl(n *parsetree.Node) *ast.CmdDecl {
	sig := buildCmdSignature(n.Down)
	return ast.NewCmdDecl(posOf(n), sig)
}

func buildIntrinsicDecl(n *parsetree.Node) *ast.IntrinsicDecl {
	sig := buildCmdSignature(n.Down)
	return ast.NewIntrinsicDecl(posOf(n), sig)
}

func buildCmdDef(n *parsetree.Node) *ast.CmdDef {
	kids := children(n.Down)
	sig := buildCmdSignature(kids[0])
	body := buildCmdBody(kids[1])
	return ast.NewCmdDef(posOf(n), sig, body)
}

func buildCmdBody(n *parsetree.Node) *ast.CmdBody {
	kids := children(n.Down)
	if len(kids) == 0 {
		return ast.NewEmptyCmdBody(posOf(n))
	}
	return ast.NewCmdBody(posOf(n), buildCallGroup(kids[0]))
}

func buildClassDecl(n *parsetree.Node) *ast.ClassDecl {
	kids := children(n.Down)
	name := kids[0].Token.Text
	var members []ast.Node
	for _, k := range kids[1:] {
		if k.Production == parsetree.CMD_DEF {
			members = append(members, buildCmdDef(k))
		} else {
			members = append(members, buildCmdDecl(k))
		}
	}
	return ast.NewClassDecl(posOf(n), name, members)
}

func buildProgramDecl(n *parsetree.Node) *ast.ProgramDecl {
	kids := children(n.Down)
	entry := buildCallInvoke(kids[0])
	return ast.NewProgramDecl(posOf(n), entry)
}

func buildTestDecl(n *parsetree.Node) *ast.TestDecl {
	kids := children(n.Down)
	label := kids[0].Token.Text
	body := buildCallGroup(kids[1])
	return ast.NewTestDecl(posOf(n), label, body)
}
