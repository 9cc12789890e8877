package ast

import "github.com/basis-lang/basis/internal/token"

// ClassDecl is ".class Name:" followed by an indented sequence of
// CmdDecl/CmdDef members, scoped by indentation into a bounded block.
type ClassDecl struct {
	base
	Name    string
	Members []Node
}

func NewClassDecl(pos token.Position, name string, members []Node) *ClassDecl {
	return &ClassDecl{base: base{pos}, Name: name, Members: members}
}

func (n *ClassDecl) Accept(v Visitor) { v.VisitClassDecl(n) }

// ProgramDecl is the single ".program" entry point of a compilation
// unit: one call invocation run at start-up.
type ProgramDecl struct {
	base
	EntryPoint *CallInvoke
}

func NewProgramDecl(pos token.Position, entry *CallInvoke) *ProgramDecl {
	return &ProgramDecl{base: base{pos}, EntryPoint: entry}
}

func (n *ProgramDecl) Accept(v Visitor) { v.VisitProgramDecl(n) }

// TestDecl is a ".test "label": <CallGroup>" block.
type TestDecl struct {
	base
	Label string
	Body  *CallGroup
}

func NewTestDecl(pos token.Position, label string, body *CallGroup) *TestDecl {
	return &TestDecl{base: base{pos}, Label: label, Body: body}
}

func (n *TestDecl) Accept(v Visitor) { v.VisitTestDecl(n) }
