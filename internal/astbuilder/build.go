// Package astbuilder folds the generic parsetree.Node forest the
// combinator engine produces into the typed ast.Node tree. Every
// builder function here receives the Down-chain of its
// own Group node and walks it once, dispatching on each child's
// Production tag rather than its position — the grammar interleaves
// unwrapped list productions (qualified-name segments, type
// arguments) with wrapped ones, so position alone can't tell them
// apart, but the tag always can.
package astbuilder

import (
	"fmt"

	"github.com/basis-lang/basis/internal/ast"
	"github.com/basis-lang/basis/internal/parsetree"
	"github.com/basis-lang/basis/internal/token"
)

// Build folds the root COMPILATION_UNIT parse tree into a
// *ast.CompilationUnit.
func Build(tree *parsetree.Node) (*ast.CompilationUnit, error) {
	if tree == nil {
		return nil, fmt.Errorf("astbuilder: empty parse tree")
	}
	if tree.Production != parsetree.COMPILATION_UNIT {
		return nil, fmt.Errorf("astbuilder: expected COMPILATION_UNIT root, got %v", tree.Production)
	}
	kids := children(tree.Down)

	pos := posOf(tree)
	var module *ast.ModuleDecl
	var imports []*ast.ImportDecl
	var defs []ast.Node

	for _, k := range kids {
		switch k.Production {
		case parsetree.MODULE_DECL:
			module = buildModuleDecl(k)
		case parsetree.IMPORT_DECL:
			imports = append(imports, buildImportDecl(k))
		default:
			def, err := buildDefinition(k)
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
		}
	}
	return ast.NewCompilationUnit(pos, module, imports, defs), nil
}

func buildDefinition(n *parsetree.Node) (ast.Node, error) {
	switch n.Production {
	case parsetree.ALIAS_DECL:
		return buildAliasDecl(n), nil
	case parsetree.DOMAIN_DECL:
		return buildDomainDecl(n), nil
	case parsetree.ENUM_DECL:
		return buildEnumDecl(n), nil
	case parsetree.RECORD_DECL:
		return buildRecordDecl(n), nil
	case parsetree.OBJECT_DECL:
		return buildObjectDecl(n), nil
	case parsetree.INSTANCE_DECL:
		return buildInstanceDecl(n), nil
	case parsetree.CLASS_DECL:
		return buildClassDecl(n), nil
	case parsetree.CMD_DECL:
		return buildCmdDecl(n), nil
	case parsetree.CMD_DEF:
		return buildCmdDef(n), nil
	case parsetree.INTRINSIC_DECL:
		return buildIntrinsicDecl(n), nil
	case parsetree.PROGRAM_DECL:
		return buildProgramDecl(n), nil
	case parsetree.TEST_DECL:
		return buildTestDecl(n), nil
	default:
		return nil, fmt.Errorf("astbuilder: unexpected top-level production %v", n.Production)
	}
}

// children flattens a Down-chain (linked through Next) into a slice,
// which every builder function below indexes and filters by
// Production tag.
func children(n *parsetree.Node) []*parsetree.Node {
	var out []*parsetree.Node
	for ; n != nil; n = n.Next {
		out = append(out, n)
	}
	return out
}

// posOf reports the position of the leftmost terminal under n,
// descending through Down until a token-bearing leaf is found: every
// AST node's location comes from its first descendant terminal.
func posOf(n *parsetree.Node) token.Position {
	for n != nil {
		if n.Token != nil {
			return n.Token.Pos
		}
		n = n.Down
	}
	return token.Position{}
}

// qualifiedName flattens a chain of IDENTIFIER/TYPENAME leaves from a
// "::"-separated qualified name production into its textual form,
// ignoring any trailing nodes of a different production (e.g.
// type-argument lists that follow it in the same flat child list).
func qualifiedName(nodes []*parsetree.Node) (string, int) {
	var segs []string
	i := 0
	for ; i < len(nodes); i++ {
		n := nodes[i]
		if n.Token == nil || (n.Production != parsetree.IDENTIFIER && n.Production != parsetree.TYPENAME) {
			break
		}
		segs = append(segs, n.Token.Text)
	}
	text := ""
	for j, s := range segs {
		if j > 0 {
			text += "::"
		}
		text += s
	}
	return text, i
}

// cmdKindOf maps one of the three command-type leader tokens to its
// ast.CmdKind.
func cmdKindOf(tok *token.Token) ast.CmdKind {
	switch tok.Kind {
	case token.QLANGLE:
		return ast.CmdMayFail
	case token.BANGLANGLE:
		return ast.CmdFails
	default:
		return ast.CmdNoFail
	}
}
