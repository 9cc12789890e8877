package ast

import "github.com/basis-lang/basis/internal/token"

// EnumItem is one "name = value" member of an enum declaration.
type EnumItem struct {
	base
	Name  string
	Value string
}

func NewEnumItem(pos token.Position, name, value string) *EnumItem {
	return &EnumItem{base: base{pos}, Name: name, Value: value}
}

func (n *EnumItem) Accept(v Visitor) { v.VisitEnumItem(n) }

// EnumDecl is ".enum Name1 [Name2]: item, item, ..." — both names are
// typenames; Name2, when present, names a second typename the enum is
// also registered under.
type EnumDecl struct {
	base
	Name1 string
	Name2 string
	Items []*EnumItem
}

func NewEnumDecl(pos token.Position, name1, name2 string, items []*EnumItem) *EnumDecl {
	return &EnumDecl{base: base{pos}, Name1: name1, Name2: name2, Items: items}
}

func (n *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(n) }

// FieldDecl is one typed field shared by RecordDecl and ObjectDecl.
type FieldDecl struct {
	base
	Type *TypeExpr
	Name string
}

func NewFieldDecl(pos token.Position, typ *TypeExpr, name string) *FieldDecl {
	return &FieldDecl{base: base{pos}, Type: typ, Name: name}
}

func (n *FieldDecl) Accept(v Visitor) { v.VisitFieldDecl(n) }

// RecordDecl is a ".record Name[T, U]: field, field, ..." value type.
// TypeParams is empty unless the name is followed by a bracketed
// type-parameter list.
type RecordDecl struct {
	base
	Name       string
	TypeParams []CmdParam
	Fields     []*FieldDecl
}

func NewRecordDecl(pos token.Position, name string, typeParams []CmdParam, fields []*FieldDecl) *RecordDecl {
	return &RecordDecl{base: base{pos}, Name: name, TypeParams: typeParams, Fields: fields}
}

func (n *RecordDecl) Accept(v Visitor) { v.VisitRecordDecl(n) }

// ObjectDecl is a ".object Name[T, U]: field, field, ..." reference
// type. TypeParams is empty unless the name is followed by a
// bracketed type-parameter list.
type ObjectDecl struct {
	base
	Name       string
	TypeParams []CmdParam
	Fields     []*FieldDecl
}

func NewObjectDecl(pos token.Position, name string, typeParams []CmdParam, fields []*FieldDecl) *ObjectDecl {
	return &ObjectDecl{base: base{pos}, Name: name, TypeParams: typeParams, Fields: fields}
}

func (n *ObjectDecl) Accept(v Visitor) { v.VisitObjectDecl(n) }

// InstanceType is one "TypeName(delegate)" entry of an instance
// declaration; Delegate is empty when the parenthesized identifier is
// absent.
type InstanceType struct {
	base
	TypeName string
	Delegate string
}

func NewInstanceType(pos token.Position, typeName, delegate string) *InstanceType {
	return &InstanceType{base: base{pos}, TypeName: typeName, Delegate: delegate}
}

func (n *InstanceType) Accept(v Visitor) { v.VisitInstanceType(n) }

// InstanceDecl is ".instance Name[T]: Type(d), Type2, ..." binding a
// class name to the interfaces it implements. TypeParams is empty
// unless the name is followed by a bracketed type-parameter list.
type InstanceDecl struct {
	base
	Name       string
	TypeParams []CmdParam
	Types      []*InstanceType
}

func NewInstanceDecl(pos token.Position, name string, typeParams []CmdParam, types []*InstanceType) *InstanceDecl {
	return &InstanceDecl{base: base{pos}, Name: name, TypeParams: typeParams, Types: types}
}

func (n *InstanceDecl) Accept(v Visitor) { v.VisitInstanceDecl(n) }
