package ast

import "github.com/basis-lang/basis/internal/token"

// TypeKind distinguishes the shape a TypeExpr takes.
type TypeKind int

const (
	TypeNamed TypeKind = iota
	TypePointer
	TypeRange
	TypeCommand
	TypeDomain
)

func (k TypeKind) String() string {
	switch k {
	case TypeNamed:
		return "Named"
	case TypePointer:
		return "Pointer"
	case TypeRange:
		return "Range"
	case TypeCommand:
		return "Command"
	case TypeDomain:
		return "Domain"
	default:
		return "Unknown"
	}
}

// CmdKind distinguishes the three failure modes a command type (or a
// .cmd name) can declare: plain, mayFail ('?'), and fails ('!').
type CmdKind int

const (
	CmdNoFail CmdKind = iota
	CmdMayFail
	CmdFails
)

func (k CmdKind) String() string {
	switch k {
	case CmdNoFail:
		return "NoFail"
	case CmdMayFail:
		return "MayFail"
	case CmdFails:
		return "Fails"
	default:
		return "Unknown"
	}
}

// TypeExpr is the recursive type-expression node: a named type, a
// pointer to one, a fixed- or unbounded-size range of one, a command
// type, or (post-resolution) a domain type. It covers every type
// production (TYPE_EXPR, TYPE_EXPR_PTR, TYPE_EXPR_RANGE, TYPE_EXPR_CMD
// and their argument lists) in a single struct.
type TypeExpr struct {
	base
	Kind    TypeKind
	CmdKind CmdKind

	TypeName string      // Named/Domain: qualified text, "::"-joined
	TypeArgs []*TypeExpr  // type parameters on a named type
	PtrDepth int          // Pointer: number of '^' markers
	Inner    *TypeExpr    // Pointer inner type, Range element type
	RangeSize string      // Range: size text (literal or identifier), "" if unbounded
	CmdArgs  []*TypeExpr  // Command: parameter types
	Writeable bool        // command-type argument marked with the writeable "'" prefix
}

func NewNamedType(pos token.Position, name string, args []*TypeExpr) *TypeExpr {
	return &TypeExpr{base: base{pos}, Kind: TypeNamed, TypeName: name, TypeArgs: args}
}

func NewPointerType(pos token.Position, depth int, inner *TypeExpr) *TypeExpr {
	return &TypeExpr{base: base{pos}, Kind: TypePointer, PtrDepth: depth, Inner: inner}
}

func NewRangeType(pos token.Position, size string, inner *TypeExpr) *TypeExpr {
	return &TypeExpr{base: base{pos}, Kind: TypeRange, RangeSize: size, Inner: inner}
}

func NewCommandType(pos token.Position, kind CmdKind, args []*TypeExpr, writeable bool) *TypeExpr {
	return &TypeExpr{base: base{pos}, Kind: TypeCommand, CmdKind: kind, CmdArgs: args, Writeable: writeable}
}

func (n *TypeExpr) Accept(v Visitor) { v.VisitTypeExpr(n) }
