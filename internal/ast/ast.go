// Package ast defines the typed Abstract Syntax Tree that the builder
// folds a generic parsetree.Node forest into: around thirty node types
// reachable through a Visitor, each carrying the source position of
// its first token for diagnostics.
package ast

import "github.com/basis-lang/basis/internal/token"

// Node is the common interface implemented by every AST node. Pos
// reports where the node begins in the source; Accept dispatches to
// the matching Visitor method via double dispatch.
type Node interface {
	Pos() token.Position
	Accept(v Visitor)
}

// base embeds the source position shared by every concrete node.
type base struct {
	position token.Position
}

func (b base) Pos() token.Position { return b.position }

// Visitor is implemented by anything that walks the AST. Embed
// DefaultVisitor to implement only the methods a particular walk
// cares about.
type Visitor interface {
	VisitCompilationUnit(*CompilationUnit)
	VisitModuleDecl(*ModuleDecl)
	VisitImportDecl(*ImportDecl)
	VisitTypeExpr(*TypeExpr)
	VisitAliasDecl(*AliasDecl)
	VisitDomainDecl(*DomainDecl)
	VisitEnumDecl(*EnumDecl)
	VisitEnumItem(*EnumItem)
	VisitFieldDecl(*FieldDecl)
	VisitRecordDecl(*RecordDecl)
	VisitObjectDecl(*ObjectDecl)
	VisitInstanceType(*InstanceType)
	VisitInstanceDecl(*InstanceDecl)
	VisitCmdDecl(*CmdDecl)
	VisitCmdDef(*CmdDef)
	VisitIntrinsicDecl(*IntrinsicDecl)
	VisitClassDecl(*ClassDecl)
	VisitProgramDecl(*ProgramDecl)
	VisitTestDecl(*TestDecl)
	VisitCmdBody(*CmdBody)
	VisitCallGroup(*CallGroup)
	VisitCallInvoke(*CallInvoke)
	VisitCallAssignment(*CallAssignment)
	VisitCallExpression(*CallExpression)
	VisitBlock(*Block)
	VisitLiteral(*Literal)
	VisitIdentifierExpr(*IdentifierExpr)
	VisitSubcallExpr(*SubcallExpr)
	VisitCallQuote(*CallQuote)
	VisitCmdLiteral(*CmdLiteral)
	VisitCallParameter(*CallParameter)
}

// DefaultVisitor implements Visitor with no-op methods. Embed it in a
// concrete visitor and override only the node kinds it needs to act on.
type DefaultVisitor struct{}

func (DefaultVisitor) VisitCompilationUnit(*CompilationUnit)   {}
func (DefaultVisitor) VisitModuleDecl(*ModuleDecl)             {}
func (DefaultVisitor) VisitImportDecl(*ImportDecl)             {}
func (DefaultVisitor) VisitTypeExpr(*TypeExpr)                 {}
func (DefaultVisitor) VisitAliasDecl(*AliasDecl)               {}
func (DefaultVisitor) VisitDomainDecl(*DomainDecl)             {}
func (DefaultVisitor) VisitEnumDecl(*EnumDecl)                 {}
func (DefaultVisitor) VisitEnumItem(*EnumItem)                 {}
func (DefaultVisitor) VisitFieldDecl(*FieldDecl)               {}
func (DefaultVisitor) VisitRecordDecl(*RecordDecl)             {}
func (DefaultVisitor) VisitObjectDecl(*ObjectDecl)             {}
func (DefaultVisitor) VisitInstanceType(*InstanceType)         {}
func (DefaultVisitor) VisitInstanceDecl(*InstanceDecl)         {}
func (DefaultVisitor) VisitCmdDecl(*CmdDecl)                   {}
func (DefaultVisitor) VisitCmdDef(*CmdDef)                     {}
func (DefaultVisitor) VisitIntrinsicDecl(*IntrinsicDecl)       {}
func (DefaultVisitor) VisitClassDecl(*ClassDecl)                {}
func (DefaultVisitor) VisitProgramDecl(*ProgramDecl)            {}
func (DefaultVisitor) VisitTestDecl(*TestDecl)                  {}
func (DefaultVisitor) VisitCmdBody(*CmdBody)                    {}
func (DefaultVisitor) VisitCallGroup(*CallGroup)                {}
func (DefaultVisitor) VisitCallInvoke(*CallInvoke)              {}
func (DefaultVisitor) VisitCallAssignment(*CallAssignment)      {}
func (DefaultVisitor) VisitCallExpression(*CallExpression)      {}
func (DefaultVisitor) VisitBlock(*Block)                        {}
func (DefaultVisitor) VisitLiteral(*Literal)                    {}
func (DefaultVisitor) VisitIdentifierExpr(*IdentifierExpr)      {}
func (DefaultVisitor) VisitSubcallExpr(*SubcallExpr)            {}
func (DefaultVisitor) VisitCallQuote(*CallQuote)                {}
func (DefaultVisitor) VisitCmdLiteral(*CmdLiteral)              {}
func (DefaultVisitor) VisitCallParameter(*CallParameter)        {}

// CompilationUnit is the root of every parsed file: an optional module
// declaration, zero or more imports, and the top-level definitions.
type CompilationUnit struct {
	base
	Module      *ModuleDecl
	Imports     []*ImportDecl
	Definitions []Node
}

func NewCompilationUnit(pos token.Position, module *ModuleDecl, imports []*ImportDecl, defs []Node) *CompilationUnit {
	return &CompilationUnit{base: base{pos}, Module: module, Imports: imports, Definitions: defs}
}

func (n *CompilationUnit) Accept(v Visitor) { v.VisitCompilationUnit(n) }
