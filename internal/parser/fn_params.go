package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// paramContext selects the allowed parameter modifiers and whether
// default values are permitted, per defining construct.
type paramContext uint8

const (
	paramContextFunction paramContext = iota
	paramContextOperator
	paramContextConstructor
	paramContextLambda
	paramContextGeneral
)

func (c paramContext) allowedModifiers() []string {
	switch c {
	case paramContextFunction, paramContextOperator, paramContextGeneral:
		return []string{"this", "const", "ref", "temp"}
	default:
		return []string{"const", "ref", "temp"}
	}
}

func (c paramContext) allowDefaults() bool {
	switch c {
	case paramContextFunction, paramContextConstructor:
		return true
	default:
		return false
	}
}

func (c paramContext) String() string {
	switch c {
	case paramContextFunction:
		return "a function parameter"
	case paramContextOperator:
		return "an operator parameter"
	case paramContextConstructor:
		return "a constructor parameter"
	case paramContextLambda:
		return "a lambda parameter"
	case paramContextGeneral:
		return "a parameter"
	}
	return "a parameter"
}

// parseParameterList parses `(param, ...)`. The production fails when a
// parameter cannot be recognized at all — the caller decides whether
// the whole definition is abandoned — but a missing closing ')' only
// diagnoses and recovers.
func (p *Parser) parseParameterList(ctx paramContext) (*ast.ParameterDefinitionCollection, bool) {
	open, ok := p.expectOperator("(")
	if !ok {
		return nil, false
	}
	coll := &ast.ParameterDefinitionCollection{Info: ast.MakeInfo(open.Pos, p.file)}

	seenDefault := false
	if !p.atOperator(")") {
		idx := 0
		for {
			param, ok := p.parseParameter(ctx, idx, &seenDefault)
			if !ok {
				p.errAfterLast(diag.SynExpectedParameter, "Expected parameter type")
				return coll, false
			}
			coll.Params = append(coll.Params, param)
			if _, ok := p.expectOperator(","); !ok {
				break
			}
			idx++
		}
	}

	if _, ok := p.expectOperator(")"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ')' to close the parameter list")
	}
	coll.SetPos(p.span(open.Pos))
	return coll, true
}

// parseParameter parses `modifiers* type name (= default)?`.
func (p *Parser) parseParameter(ctx paramContext, idx int, seenDefault *bool) (*ast.ParameterDefinition, bool) {
	from := p.s.cur().Pos
	mods := p.parseModifiers()

	typ, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer | typeAllowStackArrayNoLength)
	if !ok {
		return nil, false
	}

	name, ok := p.expectIdentifier()
	if !ok || token.IsKeyword(name.Content) {
		p.errAfterLast(diag.SynExpectedIdentifier, "Expected a parameter name")
		name = p.missingToken(token.Identifier, "")
	} else {
		p.s.tagLast(token.AnalyzedParameter)
	}

	p.checkModifiers(mods, ctx.allowedModifiers(), ctx.String())

	param := &ast.ParameterDefinition{
		Info:      ast.MakeInfo(from, p.file),
		Modifiers: mods,
		Type:      typ,
		Name:      name,
	}
	if param.HasModifier("this") && idx != 0 {
		p.err(diag.SynThisParameterPosition, param.Pos(),
			"the 'this' parameter must come first")
	}

	if _, ok := p.expectOperator("="); ok {
		value := p.requireExpression("Expected a default value")
		if !ctx.allowDefaults() {
			p.err(diag.SynDefaultValueForbidden, value.Pos(),
				"default values are not allowed on "+ctx.String())
		} else {
			param.Default = value
			*seenDefault = true
		}
	} else if *seenDefault && ctx.allowDefaults() {
		p.err(diag.SynDefaultValueOrder, param.Pos(),
			"a parameter without a default value may not follow one with a default value")
	}

	param.SetPos(p.span(from))
	return param, true
}
