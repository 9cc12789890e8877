package astbuilder

import (
	"github.com/basis-lang/basis/internal/ast"
	"github.com/basis-lang/basis/internal/parsetree"
)

// buildCallGroup folds a CALL_GROUP node's flat statement chain. Each
// statement is itself a Group tagged with its own distinguishing
// production (BLOCK, CALL_ASSIGNMENT, CALL_EXPRESSION, one of the
// CALL_INVOKE_* kinds, or CALL_QUOTE), so dispatch is a plain switch
// over the tag.
func buildCallGroup(n *parsetree.Node) *ast.CallGroup {
	kids := children(n.Down)
	stmts := make([]ast.Node, 0, len(kids))
	for _, k := range kids {
		stmts = append(stmts, buildStatement(k))
	}
	return ast.NewCallGroup(posOf(n), stmts)
}

func buildStatement(n *parsetree.Node) ast.Node {
	switch n.Production {
	case parsetree.BLOCK:
		return buildBlock(n)
	case parsetree.CALL_ASSIGNMENT:
		return buildCallAssignment(n)
	case parsetree.CALL_EXPRESSION:
		return buildCallExpression(n)
	case parsetree.CALL_QUOTE:
		return buildCallQuote(n)
	default:
		return buildCallInvoke(n)
	}
}

// buildIdentifierExpr reads a node produced directly by the identifier
// expression alternative (either ALLOC_IDENTIFIER, whose single child
// is the bare name, or IDENTIFIER wrapping a qualified-name chain).
func buildIdentifierExpr(n *parsetree.Node) *ast.IdentifierExpr {
	if n.Production == parsetree.ALLOC_IDENTIFIER {
		return ast.NewIdentifierExpr(posOf(n), n.Down.Token.Text, true)
	}
	text, _ := qualifiedName(children(n.Down))
	return ast.NewIdentifierExpr(posOf(n), text, false)
}

func buildLiteral(n *parsetree.Node) *ast.Literal {
	return ast.NewLiteral(posOf(n), n.Token.Text)
}

// buildTerm reads one operand of a term/operator chain, as flattened
// by CALL_EXPRESSION/SUBCALL_EXPRESSION. Operator nodes never reach
// here: the caller classifies each child by
// position parity before dispatching, since an operator leaf and a
// bare identifier term share the IDENTIFIER production tag and can
// only be told apart by where they fall in the alternating sequence.
func buildTerm(n *parsetree.Node) ast.Node {
	switch n.Production {
	case parsetree.DECIMAL, parsetree.HEX, parsetree.NUMBER, parsetree.STRING:
		return buildLiteral(n)
	case parsetree.ALLOC_IDENTIFIER, parsetree.IDENTIFIER:
		return buildIdentifierExpr(n)
	case parsetree.CALL_QUOTE:
		return buildCallQuote(n)
	case parsetree.CMD_LITERAL:
		return buildCmdLiteral(n)
	default:
		return buildCallInvoke(n)
	}
}

// buildOperatorText reads the literal operator text off an opTerm
// node, whose single child is the matched punctuation leaf.
func buildOperatorText(n *parsetree.Node) string {
	return n.Down.Token.Text
}

// buildTermOperatorChain splits a flat term/operator/term/... chain by
// position parity (even = term, odd = operator) into the alternating
// Terms slice CallExpression and SubcallExpr both store.
func buildTermOperatorChain(kids []*parsetree.Node) []ast.Node {
	terms := make([]ast.Node, 0, len(kids))
	for i, k := range kids {
		if i%2 == 0 {
			terms = append(terms, buildTerm(k))
		} else {
			terms = append(terms, ast.NewIdentifierExpr(posOf(k), buildOperatorText(k), false))
		}
	}
	return terms
}

func buildCallExpression(n *parsetree.Node) *ast.CallExpression {
	return ast.NewCallExpression(posOf(n), buildTermOperatorChain(children(n.Down)))
}

func buildSubcallExpr(n *parsetree.Node) *ast.SubcallExpr {
	return ast.NewSubcallExpr(posOf(n), buildTermOperatorChain(children(n.Down)))
}

func buildCallParameter(n *parsetree.Node) *ast.CallParameter {
	if n.Down == nil {
		return ast.NewEmptyCallParameter(posOf(n))
	}
	return ast.NewCallParameter(posOf(n), buildSubcallExpr(n.Down))
}

// buildCallInvoke dispatches the three invocation shapes, each
// identified by its own CALL_INVOKE_* production tag. The vcommand
// form wraps each receiver in its own CALL_RECEIVER node
// so the flat child list can tell a run of receivers apart from the
// target that follows it, even when the target is itself a bare
// lowercase identifier indistinguishable in tag from a receiver.
func buildCallInvoke(n *parsetree.Node) *ast.CallInvoke {
	kids := children(n.Down)
	switch n.Production {
	case parsetree.CALL_INVOKE_VCOMMAND:
		i := 0
		var receivers []string
		for ; i < len(kids) && kids[i].Production == parsetree.CALL_RECEIVER; i++ {
			receivers = append(receivers, kids[i].Down.Token.Text)
		}
		target := kids[i].Token.Text
		i++
		params := buildCallParameters(kids[i:])
		return ast.NewCallInvoke(posOf(n), ast.InvokeVCommand, target, "", receivers, params)
	case parsetree.CALL_INVOKE_CONSTRUCTOR:
		target := kids[0].Token.Text
		params := buildCallParameters(kids[1:])
		return ast.NewCallInvoke(posOf(n), ast.InvokeConstructor, target, "", nil, params)
	default: // CALL_INVOKE_COMMAND
		target := kids[0].Token.Text
		params := buildCallParameters(kids[1:])
		return ast.NewCallInvoke(posOf(n), ast.InvokeCommand, target, "", nil, params)
	}
}

func buildCallParameters(kids []*parsetree.Node) []*ast.CallParameter {
	if len(kids) == 0 {
		return nil
	}
	params := make([]*ast.CallParameter, 0, len(kids))
	for _, k := range kids {
		params = append(params, buildCallParameter(k))
	}
	return params
}

func buildCallAssignment(n *parsetree.Node) *ast.CallAssignment {
	kids := children(n.Down)
	target := buildIdentifierExpr(kids[0].Down)

	i := 1
	var exprs []ast.Node
	for ; i < len(kids) && kids[i].Production == parsetree.SUBCALL_EXPRESSION; i++ {
		exprs = append(exprs, buildSubcallExpr(kids[i]))
	}

	var postOps []ast.PostOp
	for ; i+1 < len(kids); i += 2 {
		postOps = append(postOps, ast.PostOp{
			Operator: buildOperatorText(kids[i]),
			RHS:      buildSubcallExpr(kids[i+1]),
		})
	}
	return ast.NewCallAssignment(posOf(n), target, exprs, postOps)
}

// quoteKindOf maps a CMD_TYPE_LEADER token to the matching
// CallQuoteKind, mirroring cmdKindOf's three-way split.
func quoteKindOf(n *parsetree.Node) ast.CallQuoteKind {
	switch cmdKindOf(n.Token) {
	case ast.CmdMayFail:
		return ast.QuoteMayFail
	case ast.CmdFails:
		return ast.QuoteFails
	default:
		return ast.QuoteNoFail
	}
}

// buildCallQuote handles both quote shapes: a bare subquote reference
// (single IDENTIFIER child) and an inline "{…}" quote block, optionally
// led by one of the three command-type markers.
func buildCallQuote(n *parsetree.Node) *ast.CallQuote {
	kids := children(n.Down)
	if len(kids) == 1 && kids[0].Production == parsetree.IDENTIFIER && kids[0].Token != nil {
		return ast.NewCallQuote(posOf(n), ast.QuoteSubquote, ast.NewIdentifierExpr(posOf(kids[0]), kids[0].Token.Text, false))
	}
	kind := ast.QuoteNoFail
	i := 0
	if len(kids) > 0 && kids[i].Production == parsetree.CMD_TYPE_LEADER {
		kind = quoteKindOf(kids[i])
		i++
	}
	return ast.NewCallQuote(posOf(n), kind, buildCallGroup(kids[i]))
}

// buildCmdLiteral reads an inline command lambda: a leader marker, an
// optional comma-separated parameter list, then a call-group body,
// built the same way a CmdSignature's plain parameter run is.
func buildCmdLiteral(n *parsetree.Node) *ast.CmdLiteral {
	kids := children(n.Down)
	kind := cmdKindOf(kids[0].Token)
	i := 1
	var params []ast.CmdParam
	for ; i < len(kids) && kids[i].Production == parsetree.CMD_PARAM; i++ {
		pk := children(kids[i].Down)
		params = append(params, ast.CmdParam{Type: buildTypeExpr(pk[0]), Name: pk[1].Token.Text})
	}
	body := buildCallGroup(kids[i])
	return ast.NewCmdLiteral(posOf(n), kind, params, body)
}

// blockKindOf maps a BLOCK_HEADER leaf's token kind to its BlockKind.
func blockKindOf(n *parsetree.Node) ast.BlockKind {
	switch n.Token.Text {
	case "??":
		return ast.BlockDoWhenMulti
	case "?-":
		return ast.BlockDoWhenFail
	case "?":
		return ast.BlockDoWhen
	case "!":
		return ast.BlockDoElse
	case "-":
		return ast.BlockDoUnless
	case "%":
		return ast.BlockDoBlock
	case "^":
		return ast.BlockDoRewind
	case "|":
		return ast.BlockDoRecover
	case "@!":
		return ast.BlockOnExitFail
	case "@":
		return ast.BlockOnExit
	default:
		return ast.BlockDoWhen
	}
}

func buildBlock(n *parsetree.Node) *ast.Block {
	kids := children(n.Down)
	header, bodyNode := kids[0], kids[1]
	body := buildCallGroup(bodyNode)

	if header.Production == parsetree.RECOVER_SPEC {
		var recoverType, recoverName string
		for _, hk := range children(header.Down) {
			if hk.Production == parsetree.TYPENAME {
				recoverType = hk.Token.Text
			} else {
				recoverName = hk.Token.Text
			}
		}
		return ast.NewRecoverSpecBlock(posOf(n), recoverType, recoverName, body)
	}
	return ast.NewBlock(posOf(n), blockKindOf(header), body)
}
