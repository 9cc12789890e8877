package ast

import "github.com/basis-lang/basis/internal/token"

// CmdParam is one parameter of a command signature. When IsTypeVar is
// set the parameter was written as "(T : SomeType)", binding the type
// variable TypeVarName rather than a value name.
type CmdParam struct {
	Type        *TypeExpr
	Name        string
	IsTypeVar   bool
	TypeVarName string
}

// CmdReceiver is one "Type name" receiver slot on a vcommand,
// destructor or fail-handler signature.
type CmdReceiver struct {
	Type *TypeExpr
	Name string
}

// CmdSignatureKind selects which of the five shapes a CmdSignature
// takes.
type CmdSignatureKind int

const (
	CmdRegular CmdSignatureKind = iota
	CmdVCommand
	CmdConstructor
	CmdDestructor
	CmdFailHandler
)

func (k CmdSignatureKind) String() string {
	switch k {
	case CmdRegular:
		return "Regular"
	case CmdVCommand:
		return "VCommand"
	case CmdConstructor:
		return "Constructor"
	case CmdDestructor:
		return "Destructor"
	case CmdFailHandler:
		return "FailHandler"
	default:
		return "Unknown"
	}
}

// CmdSignature is shared by CmdDecl, CmdDef and IntrinsicDecl: a name,
// its failure markers, its receivers (vcommand, destructor and
// fail-handler forms; a constructor keeps its typename in Name and has
// no receivers), its parameters, and its return value name.
type CmdSignature struct {
	Kind           CmdSignatureKind
	Name           string
	MayFail        bool
	Fails          bool
	Receivers      []CmdReceiver
	Params         []CmdParam
	ImplicitParams []CmdParam
	ReturnVal      string
}

// CmdDecl is a command prototype with no body (".cmd name: ...").
type CmdDecl struct {
	base
	Signature CmdSignature
}

func NewCmdDecl(pos token.Position, sig CmdSignature) *CmdDecl {
	return &CmdDecl{base: base{pos}, Signature: sig}
}

func (n *CmdDecl) Accept(v Visitor) { v.VisitCmdDecl(n) }

// IntrinsicDecl declares a command implemented by the runtime rather
// than by user-supplied code (".intrinsic name: ...").
type IntrinsicDecl struct {
	base
	Signature CmdSignature
}

func NewIntrinsicDecl(pos token.Position, sig CmdSignature) *IntrinsicDecl {
	return &IntrinsicDecl{base: base{pos}, Signature: sig}
}

func (n *IntrinsicDecl) Accept(v Visitor) { v.VisitIntrinsicDecl(n) }

// CmdBody is a command's "= /" (empty) or "= <CallGroup>" body.
type CmdBody struct {
	base
	IsEmpty bool
	Group   *CallGroup
}

func NewEmptyCmdBody(pos token.Position) *CmdBody {
	return &CmdBody{base: base{pos}, IsEmpty: true}
}

func NewCmdBody(pos token.Position, group *CallGroup) *CmdBody {
	return &CmdBody{base: base{pos}, Group: group}
}

func (n *CmdBody) Accept(v Visitor) { v.VisitCmdBody(n) }

// CmdDef is a full command definition: signature plus body.
type CmdDef struct {
	base
	Signature CmdSignature
	Body      *CmdBody
}

func NewCmdDef(pos token.Position, sig CmdSignature, body *CmdBody) *CmdDef {
	return &CmdDef{base: base{pos}, Signature: sig, Body: body}
}

func (n *CmdDef) Accept(v Visitor) { v.VisitCmdDef(n) }
