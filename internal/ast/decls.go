package ast

import "github.com/basis-lang/basis/internal/token"

// ModuleDecl names the module a compilation unit belongs to
// (".module Name::Path").
type ModuleDecl struct {
	base
	Name string
}

func NewModuleDecl(pos token.Position, name string) *ModuleDecl {
	return &ModuleDecl{base: base{pos}, Name: name}
}

func (n *ModuleDecl) Accept(v Visitor) { v.VisitModuleDecl(n) }

// ImportKind distinguishes a file-path import from a named module
// import.
type ImportKind int

const (
	ImportStandard ImportKind = iota
	ImportFile
)

// ImportDecl is one ".import" clause: either a quoted file path, or a
// module name with an optional qualifier prefix ("io: Util::Helpers").
type ImportDecl struct {
	base
	Kind      ImportKind
	Path      string
	Qualifier string
	Name      string
}

func NewFileImport(pos token.Position, path string) *ImportDecl {
	return &ImportDecl{base: base{pos}, Kind: ImportFile, Path: path}
}

func NewModuleImport(pos token.Position, qualifier, name string) *ImportDecl {
	return &ImportDecl{base: base{pos}, Kind: ImportStandard, Qualifier: qualifier, Name: name}
}

func (n *ImportDecl) Accept(v Visitor) { v.VisitImportDecl(n) }

// AliasDecl binds a new type name to an existing type expression
// (".alias Name[T, U]: Type"). TypeParams is empty unless the name is
// followed by a bracketed type-parameter list.
type AliasDecl struct {
	base
	Name       string
	TypeParams []CmdParam
	Type       *TypeExpr
}

func NewAliasDecl(pos token.Position, name string, typeParams []CmdParam, typ *TypeExpr) *AliasDecl {
	return &AliasDecl{base: base{pos}, Name: name, TypeParams: typeParams, Type: typ}
}

func (n *AliasDecl) Accept(v Visitor) { v.VisitAliasDecl(n) }

// DomainDecl introduces a new nominal type rooted at an existing type
// (".domain Name[T]: Parent"). TypeParams is empty unless the name is
// followed by a bracketed type-parameter list.
type DomainDecl struct {
	base
	Name       string
	TypeParams []CmdParam
	Parent     *TypeExpr
}

func NewDomainDecl(pos token.Position, name string, typeParams []CmdParam, parent *TypeExpr) *DomainDecl {
	return &DomainDecl{base: base{pos}, Name: name, TypeParams: typeParams, Parent: parent}
}

func (n *DomainDecl) Accept(v Visitor) { v.VisitDomainDecl(n) }
