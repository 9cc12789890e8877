// Package grammar wires the combinator primitives into the concrete,
// declarative grammar for source files: every literal, reserved word,
// and punctuation token, built up through type expressions, command
// signatures, and call statements into a single COMPILATION_UNIT entry
// point. Grammar is a value holding one ParseFn field per production,
// built once by its constructor.
package grammar

import (
	"sync"

	c "github.com/basis-lang/basis/internal/combinator"
	p "github.com/basis-lang/basis/internal/parsetree"
	t "github.com/basis-lang/basis/internal/token"
)

// Grammar holds one ParseFn per named production. Fields that
// recursively refer to each other (TypeExpr, CallExpression,
// CallGroup) are wired through combinator.Forward during New and are
// safe to use from the moment New returns.
type Grammar struct {
	// literals and identifiers
	Decimal    c.ParseFn
	Hex        c.ParseFn
	Number     c.ParseFn
	String     c.ParseFn
	Literal    c.ParseFn
	Identifier c.ParseFn
	Typename   c.ParseFn

	QualifiedName c.ParseFn

	ModuleDecl c.ParseFn
	ImportDecl c.ParseFn

	AliasDecl  c.ParseFn
	DomainDecl c.ParseFn

	EnumDecl c.ParseFn

	FieldDecl  c.ParseFn
	RecordDecl c.ParseFn
	ObjectDecl c.ParseFn

	InstanceDecl c.ParseFn

	TypeExpr     c.ParseFn
	typeExprImpl c.ParseFn

	CmdSignature c.ParseFn
	CmdDecl      c.ParseFn
	CmdDef       c.ParseFn
	IntrinsicDecl c.ParseFn

	ClassDecl   c.ParseFn
	ProgramDecl c.ParseFn
	TestDecl    c.ParseFn

	CallGroup     c.ParseFn
	callGroupImpl c.ParseFn
	CallInvoke    c.ParseFn
	CallAssignment c.ParseFn
	CallExpression c.ParseFn
	callExprImpl   c.ParseFn
	SubcallExpr    c.ParseFn
	CallQuote      c.ParseFn
	CmdLiteral     c.ParseFn
	CallParameter  c.ParseFn
	Block          c.ParseFn

	Definition c.ParseFn
	CompilationUnit c.ParseFn
}

var (
	instance *Grammar
	once     sync.Once
)

// Get returns the process-wide grammar, building it exactly once: the
// grammar is stateless and pure, so one instance serves every parse.
func Get() *Grammar {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New builds a fresh Grammar. Tests that want an isolated instance
// (rather than the shared singleton from Get) can call this directly.
func New() *Grammar {
	g := &Grammar{}
	g.initLiterals()
	g.initQualifiedNames()
	g.initModuleImport()
	g.initAliasDomain()
	g.initEnum()
	g.initRecordObject()
	g.initInstance()
	g.initTypeExpr()
	g.initCmd()
	g.initClassProgramTest()
	g.initCalls()
	g.initCompilationUnit()
	return g
}

func (g *Grammar) initLiterals() {
	g.Decimal = c.Match(p.DECIMAL, t.DECIMAL)
	g.Hex = c.Match(p.HEX, t.HEX)
	g.Number = c.Match(p.NUMBER, t.NUMBER)
	g.String = c.Match(p.STRING, t.STRING)
	g.Literal = c.Any(g.Decimal, g.Hex, g.Number, g.String)
	g.Identifier = c.Match(p.IDENTIFIER, t.IDENTIFIER)
	g.Typename = c.Match(p.TYPENAME, t.TYPENAME)
}

// initQualifiedNames builds the "::"-joined name production shared by
// module names, type names, and command targets. The "::" separators
// are discarded rather than matched, so the builder only ever sees the
// identifier/typename segments and joins them itself.
func (g *Grammar) initQualifiedNames() {
	segment := c.Any(g.Typename, g.Identifier)
	g.QualifiedName = c.Separated(segment, c.Discard(t.DCOLON))
}

func (g *Grammar) initModuleImport() {
	g.ModuleDecl = c.Group(p.MODULE_DECL, c.All(
		c.Discard(t.MODULE),
		g.QualifiedName,
	))

	fileImport := c.Group(p.IMPORT_DECL, c.All(
		c.Discard(t.IMPORT),
		c.Match(p.STRING, t.STRING),
	))
	namedImport := c.Group(p.IMPORT_DECL, c.All(
		c.Discard(t.IMPORT),
		c.Maybe(c.All(c.Match(p.IMPORT_QUALIFIER, t.IDENTIFIER), c.Discard(t.COLON))),
		g.QualifiedName,
	))
	g.ImportDecl = c.Any(fileImport, namedImport)
}

// typeParamList builds the optional bracketed type-parameter list that
// follows a declared name in generic declarations: "[T]", "[T, U]", or
// "[Int size]" (a value-level, const-generic parameter). Each item is
// a TYPE_PARAM wrapping a TypeExpr and an optional trailing
// identifier, which covers both a bare type variable ("T") and a
// "Type name" pair in one shape, the same way CMD_PARAM does for
// command parameters.
func (g *Grammar) typeParamList() c.ParseFn {
	item := c.Group(p.TYPE_PARAM, c.All(c.Forward(&g.TypeExpr), c.Maybe(g.Identifier)))
	list := c.Separated(item, c.Discard(t.COMMA))
	return c.Maybe(c.All(c.Discard(t.LBRACKET), list, c.Discard(t.RBRACKET)))
}

func (g *Grammar) initAliasDomain() {
	g.AliasDecl = c.Group(p.ALIAS_DECL, c.All(
		c.Discard(t.ALIAS),
		g.Typename,
		g.typeParamList(),
		c.Discard(t.COLON),
		c.Forward(&g.TypeExpr),
	))
	g.DomainDecl = c.Group(p.DOMAIN_DECL, c.All(
		c.Discard(t.DOMAIN),
		g.Typename,
		g.typeParamList(),
		c.Discard(t.COLON),
		c.Forward(&g.TypeExpr),
	))
}

// initEnum mirrors Grammar2.cpp's DEF_ENUM verbatim: a bounded group
// whose body, after both names, is a comma-separated list of
// "name = literal" items. Both Name1 and Name2 are typenames (the
// latter optional) and precede the colon — "enum Name1 [Name2]: items".
func (g *Grammar) initEnum() {
	item := c.Group(p.ENUM_ITEM, c.All(
		g.Identifier,
		c.Discard(t.EQUALS),
		g.Literal,
	))
	itemList := c.Separated(item, c.Discard(t.COMMA))
	name1 := c.Match(p.ENUM_NAME1, t.TYPENAME)
	name2 := c.Maybe(c.Match(p.ENUM_NAME2, t.TYPENAME))
	g.EnumDecl = c.BoundedGroup(p.ENUM_DECL,
		c.Discard(t.ENUM), name1, name2, c.Discard(t.COLON), itemList,
	)
}

func (g *Grammar) initRecordObject() {
	field := c.Group(p.FIELD_DECL, c.All(
		c.Forward(&g.TypeExpr),
		g.Identifier,
	))
	fieldList := c.Separated(field, c.Discard(t.COMMA))

	g.RecordDecl = c.BoundedGroup(p.RECORD_DECL,
		c.Discard(t.RECORD), g.Typename, g.typeParamList(), c.Discard(t.COLON), fieldList,
	)
	g.ObjectDecl = c.BoundedGroup(p.OBJECT_DECL,
		c.Discard(t.OBJECT), g.Typename, g.typeParamList(), c.Discard(t.COLON), fieldList,
	)
}

func (g *Grammar) initInstance() {
	delegate := c.Maybe(c.All(c.Discard(t.LPAREN), g.Identifier, c.Discard(t.RPAREN)))
	instanceType := c.Group(p.INSTANCE_TYPE, c.All(g.Typename, delegate))
	typeList := c.Separated(instanceType, c.Discard(t.COMMA))
	g.InstanceDecl = c.BoundedGroup(p.INSTANCE_DECL,
		c.Discard(t.INSTANCE), g.Typename, g.typeParamList(), c.Discard(t.COLON), typeList,
	)
}

// initTypeExpr builds the recursive type-expression grammar: pointer
// markers, range brackets, command-type leaders, and named types with
// optional type-argument lists, in that precedence order. CmdKind is
// discriminated by which of the three leader punctuation tokens
// matched.
func (g *Grammar) initTypeExpr() {
	typeArg := c.Group(p.TYPE_ARG, c.All(
		c.Maybe(c.Match(p.APOSTROPHE_MARKER, t.APOSTROPHE)),
		c.Forward(&g.TypeExpr),
	))
	typeArgList := c.Separated(typeArg, c.Discard(t.COMMA))
	typeParms := c.Maybe(c.All(c.Discard(t.LANGLE), typeArgList, c.Discard(t.RANGLE)))

	named := c.Group(p.TYPE_EXPR, c.All(g.QualifiedName, typeParms))

	ptr := c.Group(p.TYPE_EXPR_PTR, c.All(
		c.OneOrMore(c.Match(p.CARAT_MARKER, t.CARAT)),
		c.Forward(&g.TypeExpr),
	))

	// A range bound is either a literal (decimal or numeric constant) or
	// an identifier naming a const-generic parameter in scope, per
	// original_source/basis_tests/test_grammar2.cpp's "[size]Byte data"
	// fields in declarations like ".record Buffer[Int size]: [size]Byte data".
	rangeSize := c.Maybe(c.Any(g.Decimal, g.Number, g.Identifier))
	rng := c.Group(p.TYPE_EXPR_RANGE, c.All(
		c.Discard(t.LBRACKET), rangeSize, c.Discard(t.RBRACKET),
		c.Forward(&g.TypeExpr),
	))

	cmdLeader := c.Any(
		c.Match(p.CMD_TYPE_LEADER, t.COLANGLE),
		c.Match(p.CMD_TYPE_LEADER, t.QLANGLE),
		c.Match(p.CMD_TYPE_LEADER, t.BANGLANGLE),
	)
	cmdArgs := c.Maybe(c.All(c.Discard(t.LPAREN), typeArgList, c.Discard(t.RPAREN)))
	cmd := c.Group(p.TYPE_EXPR_CMD, c.All(cmdLeader, cmdArgs))

	g.typeExprImpl = c.Any(ptr, rng, cmd, named)
	g.TypeExpr = c.Forward(&g.typeExprImpl)
}

// initCmd builds all five CmdSignature shapes: plain, vcommand
// (receivers joined by "::" before the name), constructor (a bare
// Typename with no name and no "::"), destructor ("@ Type name: ..."),
// and fail-handler ("@! Type name: ..."). The parameter,
// implicit-parameter, and return-value tail is shared by all five.
func (g *Grammar) initCmd() {
	// The type-variable parameter shape "(T : SomeType)" that
	// CmdParam.IsTypeVar models is carried in the AST for forward
	// compatibility, but only plain "Type name" parameters are parsed;
	// the template-syntax form is left unimplemented.
	param := c.Group(p.CMD_PARAM, c.All(c.Forward(&g.TypeExpr), g.Identifier))
	params := c.Maybe(c.Separated(param, c.Discard(t.COMMA)))
	implicitParam := c.Group(p.CMD_IMPLICIT_PARAMS, c.All(c.Forward(&g.TypeExpr), g.Identifier))
	implicitParams := c.Maybe(c.All(c.Discard(t.LBRACE), c.Separated(implicitParam, c.Discard(t.COMMA)), c.Discard(t.RBRACE)))
	retval := c.Maybe(c.All(c.Discard(t.RARROW), g.Identifier))

	nameSpec := c.Group(p.CMD_NAME_SPEC, c.All(
		c.Maybe(c.Match(p.MAYFAIL_MARKER, t.QMARK)),
		c.Maybe(c.Match(p.FAILS_MARKER, t.BANG)),
		g.Identifier,
	))

	receiver := c.Group(p.CMD_RECEIVER, c.All(c.Forward(&g.TypeExpr), g.Identifier))
	// As with a vcommand invocation, each receiver carries its own
	// trailing "::"; a greedy OneOrMore naturally stops right before
	// nameSpec (whose single identifier can't itself complete a second
	// "TypeExpr Identifier" receiver pair).
	receivers := c.OneOrMore(c.All(receiver, c.Discard(t.DCOLON)))

	// The colon and everything after it are only present as a unit: a
	// bare "baz" with no params, implicit params, or return value needs
	// no colon at all, but the moment any of those appear the colon is
	// mandatory.
	tail := c.Maybe(c.All(c.Discard(t.COLON), params, implicitParams, retval))

	regular := c.Group(p.CMD_SIGNATURE, c.All(nameSpec, tail))
	vcommand := c.Group(p.CMD_SIGNATURE, c.All(receivers, nameSpec, tail))

	// Constructor: a bare Typename stands in for both receiver and
	// name, with no "::" — "Type: params -> ret". Since g.Typename
	// only matches a TYPENAME-kind token and nameSpec only matches a
	// lowercase IDENTIFIER, the two shapes never compete for the same
	// input.
	constructor := c.Group(p.CMD_SIGNATURE, c.All(g.Typename, tail))

	// Destructor/fail-handler: a single "Type name" receiver led by a
	// marker token, with no separate command name — the receiver is
	// the whole subject. "@ Type name: ..." / "@! Type name: ...".
	singleReceiver := c.Group(p.CMD_RECEIVER, c.All(c.Forward(&g.TypeExpr), g.Identifier))
	destructor := c.Group(p.CMD_SIGNATURE, c.All(
		c.Match(p.DESTRUCTOR_MARKER, t.AMPHORA), singleReceiver, tail,
	))
	failHandler := c.Group(p.CMD_SIGNATURE, c.All(
		c.Match(p.FAILHANDLER_MARKER, t.AMBANG), singleReceiver, tail,
	))

	g.CmdSignature = c.Any(destructor, failHandler, vcommand, constructor, regular)

	g.CmdDecl = c.BoundedGroup(p.CMD_DECL, c.Discard(t.CMD), g.CmdSignature)
	g.IntrinsicDecl = c.BoundedGroup(p.INTRINSIC_DECL, c.Discard(t.INTRINSIC), g.CmdSignature)

	emptyBody := c.Group(p.CMD_BODY, c.All(c.Discard(t.EQUALS), c.Discard(t.SLASH)))
	fullBody := c.Group(p.CMD_BODY, c.All(c.Discard(t.EQUALS), c.Forward(&g.CallGroup)))
	body := c.Any(emptyBody, fullBody)
	g.CmdDef = c.BoundedGroup(p.CMD_DEF, c.Discard(t.CMD), g.CmdSignature, body)
}

func (g *Grammar) initClassProgramTest() {
	member := c.Any(g.CmdDef, g.CmdDecl)
	g.ClassDecl = c.BoundedGroup(p.CLASS_DECL,
		c.Discard(t.CLASS), g.Typename, c.Discard(t.COLON), c.OneOrMore(c.Bound(member)),
	)
	g.ProgramDecl = c.BoundedGroup(p.PROGRAM_DECL, c.Discard(t.PROGRAM), c.Forward(&g.CallInvoke))
	g.TestDecl = c.BoundedGroup(p.TEST_DECL,
		c.Discard(t.TEST), g.String, c.Discard(t.COLON), c.Forward(&g.CallGroup),
	)
}

// initCalls builds the statement-level grammar: invocations,
// assignments, operator expressions, quotes, inline command literals,
// control-flow blocks, and the call groups (sequences of statements)
// that hold them all.
func (g *Grammar) initCalls() {
	allocIdent := c.Group(p.ALLOC_IDENTIFIER, c.All(c.Discard(t.POUND), g.Identifier))
	identExpr := c.Any(allocIdent, c.Group(p.IDENTIFIER, c.All(g.QualifiedName)))

	emptyParam := c.Group(p.CALL_PARAMETER, c.Discard(t.SLASH))
	exprParam := c.Group(p.CALL_PARAMETER, c.Forward(&g.SubcallExpr))
	g.CallParameter = c.Any(emptyParam, exprParam)

	paramList := c.Maybe(c.Separated(g.CallParameter, c.Discard(t.COMMA)))

	target := c.Any(g.Typename, g.Identifier)
	// Each receiver is unconditionally followed by its own "::", so a
	// greedy OneOrMore naturally stops right before the target name
	// (which is not itself followed by "::") instead of over-consuming
	// the way a Separated list would.
	// Each receiver is wrapped in its own CALL_RECEIVER node so the
	// flat child list can separate the receiver run from the target
	// that follows purely by tag, even when the target resolves to a
	// bare identifier indistinguishable in token shape from a
	// receiver.
	callReceiver := c.Group(p.CALL_RECEIVER, c.All(g.Identifier, c.Discard(t.DCOLON)))
	vcommandInvoke := c.Group(p.CALL_INVOKE_VCOMMAND, c.All(
		c.OneOrMore(callReceiver),
		target, c.Discard(t.COLON), paramList,
	))
	constructorInvoke := c.Group(p.CALL_INVOKE_CONSTRUCTOR, c.All(
		g.Typename, c.Discard(t.COLON), paramList,
	))
	commandInvoke := c.Group(p.CALL_INVOKE_COMMAND, c.All(
		g.Identifier, c.Discard(t.COLON), paramList,
	))
	g.CallInvoke = c.Any(vcommandInvoke, constructorInvoke, commandInvoke)

	term := c.Any(g.Literal, identExpr, g.CallInvoke, c.Forward(&g.CallQuote), c.Forward(&g.CmdLiteral))

	opTerm := c.Group(p.IDENTIFIER, c.Any(
		c.Match(p.IDENTIFIER, t.PLUS), c.Match(p.IDENTIFIER, t.MINUS),
		c.Match(p.IDENTIFIER, t.ASTERISK), c.Match(p.IDENTIFIER, t.SLASH),
		c.Match(p.IDENTIFIER, t.PERCENT), c.Match(p.IDENTIFIER, t.AMPERSAND),
	))

	g.callExprImpl = c.Group(p.CALL_EXPRESSION, c.All(term, c.OneOrMore(c.All(opTerm, term))))
	g.CallExpression = c.Forward(&g.callExprImpl)

	g.SubcallExpr = c.Group(p.SUBCALL_EXPRESSION, c.All(term, c.Any0(c.All(opTerm, term))))

	assignTarget := c.Group(p.IDENTIFIER, identExpr)
	exprChain := c.Separated(g.SubcallExpr, c.Discard(t.PIPE))
	postOp := c.All(opTerm, g.SubcallExpr)
	g.CallAssignment = c.Group(p.CALL_ASSIGNMENT, c.All(
		assignTarget, c.Discard(t.LARROW), exprChain, c.Any0(postOp),
	))

	cmdLeader := c.Any(
		c.Match(p.CMD_TYPE_LEADER, t.COLANGLE),
		c.Match(p.CMD_TYPE_LEADER, t.QLANGLE),
		c.Match(p.CMD_TYPE_LEADER, t.BANGLANGLE),
	)
	litParam := c.Group(p.CMD_PARAM, c.All(c.Forward(&g.TypeExpr), g.Identifier))
	litParams := c.Maybe(c.Separated(litParam, c.Discard(t.COMMA)))
	g.CmdLiteral = c.Group(p.CMD_LITERAL, c.All(cmdLeader, litParams, c.Discard(t.RARROW), c.Forward(&g.CallGroup)))

	subquote := c.Group(p.CALL_QUOTE, c.All(c.Discard(t.QCOLON), g.Identifier))
	quoteBlock := c.Group(p.CALL_QUOTE, c.All(
		c.Maybe(cmdLeader), c.Discard(t.LBRACE), c.Forward(&g.CallGroup), c.Discard(t.RBRACE),
	))
	g.CallQuote = c.Any(quoteBlock, subquote)

	blockHeader := c.Any(
		c.Match(p.BLOCK_HEADER, t.QMARK),
		c.Match(p.BLOCK_HEADER, t.QQMARK),
		c.Match(p.BLOCK_HEADER, t.QMINUS),
		c.Match(p.BLOCK_HEADER, t.BANG),
		c.Match(p.BLOCK_HEADER, t.MINUS),
		c.Match(p.BLOCK_HEADER, t.PERCENT),
		c.Match(p.BLOCK_HEADER, t.CARAT),
		c.Match(p.BLOCK_HEADER, t.AMPHORA),
		c.Match(p.BLOCK_HEADER, t.AMBANG),
	)
	// Type and bound name are each independently optional: "|: Err ->",
	// "|: e ->", "|: Err e ->", and "|: ->" are all valid recovery
	// headers.
	recoverSpecHeader := c.Group(p.RECOVER_SPEC, c.All(
		c.Discard(t.PIPECOL), c.Maybe(g.Typename), c.Maybe(g.Identifier), c.Discard(t.RARROW),
	))
	bareRecoverHeader := c.Match(p.BLOCK_HEADER, t.PIPE)
	header := c.Any(recoverSpecHeader, bareRecoverHeader, blockHeader)
	g.Block = c.Group(p.BLOCK, c.All(header, c.Forward(&g.CallGroup)))

	statement := c.Any(g.Block, g.CallAssignment, g.CallExpression, g.CallInvoke, g.CallQuote)
	g.callGroupImpl = c.Group(p.CALL_GROUP, c.OneOrMore(c.Bound(statement)))
	g.CallGroup = c.Forward(&g.callGroupImpl)
}

func (g *Grammar) initCompilationUnit() {
	moduleSection := c.Maybe(g.ModuleDecl)
	imports := c.Any0(g.ImportDecl)
	def := c.Any(
		g.AliasDecl, g.DomainDecl, g.EnumDecl, g.RecordDecl, g.ObjectDecl,
		g.InstanceDecl, g.ClassDecl, g.CmdDef, g.CmdDecl, g.IntrinsicDecl,
		g.ProgramDecl, g.TestDecl,
	)
	g.Definition = def
	defs := c.Any0(c.Bound(def))
	g.CompilationUnit = c.Group(p.COMPILATION_UNIT, c.All(moduleSection, imports, defs))
}
