package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// functionModifiers is the modifier set legal on functions, methods,
// operators and constructors.
var functionModifiers = []string{"inline", "export", "private"}

// parseFunction parses a top-level function definition.
func (p *Parser) parseFunction(res *Result) bool {
	def, ok := p.parseFunctionDef()
	if !ok {
		return false
	}
	res.Functions = append(res.Functions, def)
	return true
}

// parseOperatorDef parses a top-level operator definition.
func (p *Parser) parseOperatorDef(res *Result) bool {
	def, ok := p.parseOperatorDefinition()
	if !ok {
		return false
	}
	res.Operators = append(res.Operators, def)
	return true
}

// parseFunctionDef parses `attrs* mods* ret name template? (params) body`.
// It fails silently until the '(' that confirms the signature; failures
// inside the parameter list abandon the definition with diagnostics,
// leaving them to the importance ranking.
func (p *Parser) parseFunctionDef() (*ast.FunctionDefinition, bool) {
	m := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()
	from := p.headStart(attrs, mods)

	ret, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer)
	if !ok {
		p.s.reset(m)
		return nil, false
	}
	name, ok := p.expectIdentifier()
	if !ok || token.IsKeyword(name.Content) {
		p.s.reset(m)
		return nil, false
	}

	var tmpl *ast.TemplateInfo
	if p.atOperator("<") {
		tmpl, _ = p.parseTemplate()
	}

	if !p.atOperator("(") {
		p.s.reset(m)
		return nil, false
	}
	p.s.tagLast(token.AnalyzedFunction)
	if from.IsUnknown() {
		from = ret.Pos()
	}

	params, ok := p.parseParameterList(paramContextFunction)
	if !ok {
		return nil, false
	}

	p.checkModifiers(mods, functionModifiers, "a function")

	def := &ast.FunctionDefinition{
		Info:       ast.MakeInfo(from, p.file),
		Attributes: attrs,
		Modifiers:  mods,
		Template:   tmpl,
		ReturnType: ret,
		Name:       name,
		Params:     params,
		Body:       p.requireBody(),
	}
	def.SetPos(p.span(from))
	return def, true
}

// parseOperatorDefinition parses `attrs* mods* ret OP (params) body`
// where OP is an overloadable operator or the `()` call operator.
func (p *Parser) parseOperatorDefinition() (*ast.OperatorDefinition, bool) {
	m := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()
	from := p.headStart(attrs, mods)

	ret, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer | typeMemberHead)
	if !ok {
		p.s.reset(m)
		return nil, false
	}

	op, ok := p.parseOverloadableOperator()
	if !ok || !p.atOperator("(") {
		p.s.reset(m)
		return nil, false
	}
	if from.IsUnknown() {
		from = ret.Pos()
	}

	params, ok := p.parseParameterList(paramContextOperator)
	if !ok {
		return nil, false
	}

	p.checkModifiers(mods, functionModifiers, "an operator")

	def := &ast.OperatorDefinition{
		Info:       ast.MakeInfo(from, p.file),
		Attributes: attrs,
		Modifiers:  mods,
		ReturnType: ret,
		Operator:   op,
		Params:     params,
		Body:       p.requireBody(),
	}
	def.SetPos(p.span(from))
	return def, true
}

// parseOverloadableOperator consumes the operator being defined. The
// call operator is two tokens `(` `)`; they concatenate into one.
func (p *Parser) parseOverloadableOperator() (token.Token, bool) {
	cur := p.s.cur()
	if cur.IsOperator("(") && p.s.peekAt(1).IsOperator(")") && p.s.peekAt(2).IsOperator("(") {
		open := p.s.advance()
		closing := p.s.advance()
		if joined, ok := open.Concat(closing); ok {
			return joined, true
		}
		return token.NewMissing(token.Operator, "()", open.Pos, p.file), true
	}
	for _, name := range token.OverloadableOperators {
		if name == "()" {
			continue
		}
		if cur.IsOperator(name) {
			return p.s.advance(), true
		}
	}
	return token.Token{}, false
}

// parseTemplate parses `<T, U>` after a definition name. An empty
// `<>` parses with a warning.
func (p *Parser) parseTemplate() (*ast.TemplateInfo, bool) {
	m := p.s.mark()
	open, ok := p.expectOperator("<")
	if !ok {
		return nil, false
	}
	tmpl := &ast.TemplateInfo{Info: ast.MakeInfo(open.Pos, p.file)}

	if _, ok := p.expectOperator(">"); ok {
		p.warn(diag.SynEmptyTemplate, p.span(open.Pos), "empty template")
		tmpl.SetPos(p.span(open.Pos))
		return tmpl, true
	}

	for {
		name, ok := p.expectIdentifier()
		if !ok || token.IsKeyword(name.Content) {
			p.s.reset(m)
			return nil, false
		}
		p.s.tagLast(token.AnalyzedType)
		tmpl.Params = append(tmpl.Params, name)
		if _, ok := p.expectOperator(","); !ok {
			break
		}
	}
	if _, ok := p.expectOperator(">"); !ok {
		p.s.reset(m)
		return nil, false
	}
	tmpl.SetPos(p.span(open.Pos))
	return tmpl, true
}

// requireBody parses a block body or recovers with a placeholder.
func (p *Parser) requireBody() ast.Statement {
	if block, ok := p.parseBlock(); ok {
		return block
	}
	p.errAfterLast(diag.SynExpectedBlock, "Expected a body block")
	return ast.NewMissingBlock(p.s.afterLast(), p.file)
}

// headStart returns the position a definition starts at, accounting
// for attributes and modifiers.
func (p *Parser) headStart(attrs []*ast.AttributeUsage, mods []token.Token) source.Position {
	if len(attrs) > 0 {
		return attrs[0].Pos()
	}
	if len(mods) > 0 {
		return mods[0].Pos
	}
	return source.UnknownPosition
}
