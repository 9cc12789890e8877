package astbuilder

import (
	"github.com/basis-lang/basis/internal/ast"
	"github.com/basis-lang/basis/internal/parsetree"
)

func buildModuleDecl(n *parsetree.Node) *ast.ModuleDecl {
	name, _ := qualifiedName(children(n.Down))
	return ast.NewModuleDecl(posOf(n), name)
}

func buildImportDecl(n *parsetree.Node) *ast.ImportDecl {
	kids := children(n.Down)
	if len(kids) == 1 && kids[0].Production == parsetree.STRING {
		return ast.NewFileImport(posOf(n), kids[0].Token.Text)
	}
	qualifier := ""
	rest := kids
	if len(rest) > 0 && rest[0].Production == parsetree.IMPORT_QUALIFIER {
		qualifier = rest[0].Token.Text
		rest = rest[1:]
	}
	name, _ := qualifiedName(rest)
	return ast.NewModuleImport(posOf(n), qualifier, name)
}

// buildTypeParams reads the zero or more TYPE_PARAM nodes that may
// follow a generic declaration's name, returning the built params and
// the index of the first child past them.
func buildTypeParams(kids []*parsetree.Node, i int) ([]ast.CmdParam, int) {
	var params []ast.CmdParam
	for ; i < len(kids) && kids[i].Production == parsetree.TYPE_PARAM; i++ {
		pk := children(kids[i].Down)
		name := ""
		if len(pk) > 1 {
			name = pk[1].Token.Text
		}
		params = append(params, ast.CmdParam{Type: buildTypeExpr(pk[0]), Name: name})
	}
	return params, i
}

func buildAliasDecl(n *parsetree.Node) *ast.AliasDecl {
	kids := children(n.Down)
	name := kids[0].Token.Text
	typeParams, i := buildTypeParams(kids, 1)
	typ := buildTypeExpr(kids[i])
	return ast.NewAliasDecl(posOf(n), name, typeParams, typ)
}

func buildDomainDecl(n *parsetree.Node) *ast.DomainDecl {
	kids := children(n.Down)
	name := kids[0].Token.Text
	typeParams, i := buildTypeParams(kids, 1)
	parent := buildTypeExpr(kids[i])
	return ast.NewDomainDecl(posOf(n), name, typeParams, parent)
}

func buildEnumDecl(n *parsetree.Node) *ast.EnumDecl {
	kids := children(n.Down)
	name1 := kids[0].Token.Text
	i := 1
	name2 := ""
	if i < len(kids) && kids[i].Production == parsetree.ENUM_NAME2 {
		name2 = kids[i].Token.Text
		i++
	}
	var items []*ast.EnumItem
	for ; i < len(kids); i++ {
		items = append(items, buildEnumItem(kids[i]))
	}
	return ast.NewEnumDecl(posOf(n), name1, name2, items)
}

func buildEnumItem(n *parsetree.Node) *ast.EnumItem {
	kids := children(n.Down)
	return ast.NewEnumItem(posOf(n), kids[0].Token.Text, kids[1].Token.Text)
}

func buildRecordDecl(n *parsetree.Node) *ast.RecordDecl {
	kids := children(n.Down)
	name := kids[0].Token.Text
	typeParams, i := buildTypeParams(kids, 1)
	var fields []*ast.FieldDecl
	for _, k := range kids[i:] {
		fields = append(fields, buildFieldDecl(k))
	}
	return ast.NewRecordDecl(posOf(n), name, typeParams, fields)
}

func buildObjectDecl(n *parsetree.Node) *ast.ObjectDecl {
	kids := children(n.Down)
	name := kids[0].Token.Text
	typeParams, i := buildTypeParams(kids, 1)
	var fields []*ast.FieldDecl
	for _, k := range kids[i:] {
		fields = append(fields, buildFieldDecl(k))
	}
	return ast.NewObjectDecl(posOf(n), name, typeParams, fields)
}

func buildFieldDecl(n *parsetree.Node) *ast.FieldDecl {
	kids := children(n.Down)
	typ := buildTypeExpr(kids[0])
	name := kids[len(kids)-1].Token.Text
	return ast.NewFieldDecl(posOf(n), typ, name)
}

func buildInstanceDecl(n *parsetree.Node) *ast.InstanceDecl {
	kids := children(n.Down)
	name := kids[0].Token.Text
	typeParams, i := buildTypeParams(kids, 1)
	var types []*ast.InstanceType
	for _, k := range kids[i:] {
		types = append(types, buildInstanceType(k))
	}
	return ast.NewInstanceDecl(posOf(n), name, typeParams, types)
}

func buildInstanceType(n *parsetree.Node) *ast.InstanceType {
	kids := children(n.Down)
	typeName := kids[0].Token.Text
	delegate := ""
	if len(kids) > 1 {
		delegate = kids[1].Token.Text
	}
	return ast.NewInstanceType(posOf(n), typeName, delegate)
}

// buildTypeExpr dispatches on the production tag the type-expression
// grammar wraps its result in, since TypeExpr is recursive and each
// shape nests the next TypeExpr somewhere in its own child list.
func buildTypeExpr(n *parsetree.Node) *ast.TypeExpr {
	switch n.Production {
	case parsetree.TYPE_EXPR_PTR:
		return buildPointerType(n)
	case parsetree.TYPE_EXPR_RANGE:
		return buildRangeType(n)
	case parsetree.TYPE_EXPR_CMD:
		return buildCommandType(n)
	default:
		return buildNamedType(n)
	}
}

func buildNamedType(n *parsetree.Node) *ast.TypeExpr {
	kids := children(n.Down)
	name, consumed := qualifiedName(kids)
	var args []*ast.TypeExpr
	for _, k := range kids[consumed:] {
		args = append(args, buildTypeArg(k))
	}
	return ast.NewNamedType(posOf(n), name, args)
}

func buildTypeArg(n *parsetree.Node) *ast.TypeExpr {
	kids := children(n.Down)
	i := 0
	writeable := false
	if i < len(kids) && kids[i].Production == parsetree.APOSTROPHE_MARKER {
		writeable = true
		i++
	}
	arg := buildTypeExpr(kids[i])
	arg.Writeable = writeable
	return arg
}

func buildPointerType(n *parsetree.Node) *ast.TypeExpr {
	kids := children(n.Down)
	depth := 0
	i := 0
	for ; i < len(kids) && kids[i].Production == parsetree.CARAT_MARKER; i++ {
		depth++
	}
	inner := buildTypeExpr(kids[i])
	return ast.NewPointerType(posOf(n), depth, inner)
}

func buildRangeType(n *parsetree.Node) *ast.TypeExpr {
	kids := children(n.Down)
	i := 0
	size := ""
	switch kids[i].Production {
	case parsetree.DECIMAL, parsetree.NUMBER, parsetree.IDENTIFIER:
		size = kids[i].Token.Text
		i++
	}
	inner := buildTypeExpr(kids[i])
	return ast.NewRangeType(posOf(n), size, inner)
}

func buildCommandType(n *parsetree.Node) *ast.TypeExpr {
	kids := children(n.Down)
	kind := cmdKindOf(kids[0].Token)
	var args []*ast.TypeExpr
	for _, k := range kids[1:] {
		args = append(args, buildTypeArg(k))
	}
	return ast.NewCommandType(posOf(n), kind, args, false)
}
