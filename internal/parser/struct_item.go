package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// fieldModifiers is the modifier set legal on struct fields.
var fieldModifiers = []string{"const", "export", "private"}

// parseStruct parses `attrs* mods* struct Name template? { members }`.
func (p *Parser) parseStruct(res *Result) bool {
	m := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()

	kw, ok := p.expectIdentifier("struct")
	if !ok {
		p.s.reset(m)
		return false
	}
	p.s.tagLast(token.AnalyzedKeyword)
	p.checkModifiers(mods, token.ProtectionKeywords, "a struct")

	from := p.headStart(attrs, mods)
	if from.IsUnknown() {
		from = kw.Pos
	}

	def := &ast.StructDefinition{
		Info:       ast.MakeInfo(from, p.file),
		Attributes: attrs,
		Modifiers:  mods,
	}

	name, ok := p.expectIdentifier()
	if !ok || token.IsKeyword(name.Content) {
		p.errAfterLast(diag.SynExpectedIdentifier, "Expected a struct name")
		name = p.missingToken(token.Identifier, "")
	} else {
		p.s.tagLast(token.AnalyzedType)
	}
	def.Name = name

	if p.atOperator("<") {
		def.Template, _ = p.parseTemplate()
	}

	if _, ok := p.expectOperator("{"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected '{' to open the struct body")
		def.SetPos(p.span(from))
		res.Structs = append(res.Structs, def)
		return true
	}

	for {
		if p.atOperator("}") {
			p.s.advance()
			break
		}
		if p.s.eof() {
			p.errAfterLast(diag.SynExpectedOperator, "Expected '}' to close the struct body")
			break
		}
		p.guard()
		p.parseStructMember(def)
	}

	def.SetPos(p.span(from))
	res.Structs = append(res.Structs, def)
	return true
}

// parseStructMember parses one member, trying the alternatives in order
// and keeping the most-promising failure diagnostics.
func (p *Parser) parseStructMember(def *ast.StructDefinition) {
	m := p.s.mark()
	ord := diag.NewOrderedCollection()

	alternatives := []topAlternative{
		{"constructor", func() bool { return p.parseConstructor(def) }},
		{"destructor", func() bool { return p.parseDestructor(def) }},
		{"indexer-set", func() bool { return p.parseIndexer(def, ast.GeneralIndexerSet) }},
		{"indexer-get", func() bool { return p.parseIndexer(def, ast.GeneralIndexerGet) }},
		{"operator", func() bool { return p.parseOperatorMember(def) }},
		{"method", func() bool { return p.parseMethod(def) }},
		{"field", func() bool { return p.parseField(def) }},
	}

	for _, alt := range alternatives {
		ov := p.bag.PushOverride()
		if alt.run() {
			ov.Apply()
			return
		}
		importance := p.s.consumedSince(m)
		ord.AddAll(importance, ov.Take())
		p.s.reset(m)
	}

	if ord.Len() > 0 {
		ord.CommitTo(p.bag)
	} else {
		p.err(diag.SynExpectedStatement, p.s.cur().Pos, "Expected a struct member")
	}
	p.resyncStatement()
}

// parseConstructor parses `new(params) body`.
func (p *Parser) parseConstructor(def *ast.StructDefinition) bool {
	m := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()
	if !p.atIdentifier("new") || !p.s.peekAt(1).IsOperator("(") {
		p.s.reset(m)
		return false
	}
	kw := p.s.advance() // 'new'
	p.s.tagLast(token.AnalyzedKeyword)

	from := p.headStart(attrs, mods)
	if from.IsUnknown() {
		from = kw.Pos
	}

	params, ok := p.parseParameterList(paramContextConstructor)
	if !ok {
		p.s.reset(m)
		return false
	}
	p.checkModifiers(mods, functionModifiers, "a constructor")

	ctor := &ast.ConstructorDefinition{
		Info:       ast.MakeInfo(from, p.file),
		Attributes: attrs,
		Modifiers:  mods,
		Params:     params,
		Body:       p.requireBody(),
	}
	ctor.SetPos(p.span(from))
	def.Constructors = append(def.Constructors, ctor)
	return true
}

// parseDestructor parses `~(params) body`.
func (p *Parser) parseDestructor(def *ast.StructDefinition) bool {
	m := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()

	if !p.atOperator("~") || !p.s.peekAt(1).IsOperator("(") {
		p.s.reset(m)
		return false
	}
	tilde := p.s.advance()

	from := p.headStart(attrs, mods)
	if from.IsUnknown() {
		from = tilde.Pos
	}

	params, ok := p.parseParameterList(paramContextGeneral)
	if !ok {
		p.s.reset(m)
		return false
	}
	p.checkModifiers(mods, functionModifiers, "a destructor")

	gen := &ast.GeneralFunctionDefinition{
		Info:       ast.MakeInfo(from, p.file),
		Attributes: attrs,
		Modifiers:  mods,
		Kind:       ast.GeneralDestructor,
		Params:     params,
		Body:       p.requireBody(),
	}
	gen.SetPos(p.span(from))
	def.GeneralMethods = append(def.GeneralMethods, gen)
	return true
}

// parseIndexer parses `ret [](params) body` (get) or
// `ret []=(params) body` (set).
func (p *Parser) parseIndexer(def *ast.StructDefinition, kind ast.GeneralFunctionKind) bool {
	m := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()
	from := p.headStart(attrs, mods)

	ret, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer | typeMemberHead)
	if !ok {
		p.s.reset(m)
		return false
	}
	if from.IsUnknown() {
		from = ret.Pos()
	}

	if _, ok := p.expectOperator("["); !ok {
		p.s.reset(m)
		return false
	}
	if _, ok := p.expectOperator("]"); !ok {
		p.s.reset(m)
		return false
	}
	if kind == ast.GeneralIndexerSet {
		if _, ok := p.expectOperator("="); !ok {
			p.s.reset(m)
			return false
		}
	}
	if !p.atOperator("(") {
		p.s.reset(m)
		return false
	}

	params, ok := p.parseParameterList(paramContextGeneral)
	if !ok {
		p.s.reset(m)
		return false
	}
	p.checkModifiers(mods, functionModifiers, "an indexer")

	gen := &ast.GeneralFunctionDefinition{
		Info:       ast.MakeInfo(from, p.file),
		Attributes: attrs,
		Modifiers:  mods,
		Kind:       kind,
		ReturnType: ret,
		Params:     params,
		Body:       p.requireBody(),
	}
	gen.SetPos(p.span(from))
	def.GeneralMethods = append(def.GeneralMethods, gen)
	return true
}

// parseOperatorMember parses an operator definition inside a struct.
func (p *Parser) parseOperatorMember(def *ast.StructDefinition) bool {
	opDef, ok := p.parseOperatorDefinition()
	if !ok {
		return false
	}
	def.Operators = append(def.Operators, opDef)
	return true
}

// parseMethod parses a method (same shape as a function definition).
func (p *Parser) parseMethod(def *ast.StructDefinition) bool {
	fn, ok := p.parseFunctionDef()
	if !ok {
		return false
	}
	def.Methods = append(def.Methods, fn)
	return true
}

// parseField parses `attrs* mods* type name (= value)? ;`.
func (p *Parser) parseField(def *ast.StructDefinition) bool {
	m := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()
	from := p.headStart(attrs, mods)

	typ, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer | typeAllowStackArrayNoLength)
	if !ok {
		p.s.reset(m)
		return false
	}
	if from.IsUnknown() {
		from = typ.Pos()
	}

	name, ok := p.expectIdentifier()
	if !ok || token.IsKeyword(name.Content) {
		p.s.reset(m)
		return false
	}
	if !p.atOperator("=", ";") {
		p.s.reset(m)
		return false
	}
	p.s.tagLast(token.AnalyzedField)
	p.checkModifiers(mods, fieldModifiers, "a field")

	field := &ast.FieldDefinition{
		Info:       ast.MakeInfo(from, p.file),
		Attributes: attrs,
		Modifiers:  mods,
		Type:       typ,
		Name:       name,
	}
	if _, ok := p.expectOperator("="); ok {
		field.Value = p.requireExpression("Expected a field value")
	}
	p.expectSemicolon()
	field.SetPos(p.span(from))
	def.Fields = append(def.Fields, field)
	return true
}
