package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// parseUsing parses `using "path";` or `using a.b.c;`.
func (p *Parser) parseUsing(res *Result) bool {
	kw, ok := p.expectIdentifier("using")
	if !ok {
		return false
	}
	p.s.tagLast(token.AnalyzedKeyword)

	def := &ast.UsingDefinition{Info: ast.MakeInfo(kw.Pos, p.file)}

	if p.s.cur().Kind == token.LiteralString {
		lit := p.s.advance()
		def.Path = []token.Token{lit}
		def.IsString = true
	} else if name, ok := p.expectIdentifier(); ok {
		def.Path = []token.Token{name}
		for {
			if _, ok := p.expectOperator("."); !ok {
				break
			}
			part, ok := p.expectIdentifier()
			if !ok {
				p.errAfterLast(diag.SynExpectedIdentifier, "Expected an identifier after '.'")
				part = p.missingToken(token.Identifier, "")
			}
			def.Path = append(def.Path, part)
		}
	} else {
		p.errAfterLast(diag.SynExpectedIdentifier, "Expected an import path")
		def.Path = []token.Token{p.missingToken(token.Identifier, "")}
	}

	p.expectSemicolon()
	def.SetPos(p.span(kw.Pos))
	res.Usings = append(res.Usings, def)
	return true
}

// parseAlias parses `alias Name = type;`.
func (p *Parser) parseAlias(res *Result) bool {
	start := p.s.mark()
	attrs := p.parseAttributes()
	mods := p.parseModifiers()

	kw, ok := p.expectIdentifier("alias")
	if !ok {
		p.s.reset(start)
		return false
	}
	p.s.tagLast(token.AnalyzedKeyword)
	p.checkModifiers(mods, token.ProtectionKeywords, "an alias")

	from := kw.Pos
	if len(attrs) > 0 {
		from = attrs[0].Pos()
	} else if len(mods) > 0 {
		from = mods[0].Pos
	}

	name, ok := p.expectIdentifier()
	if !ok {
		p.errAfterLast(diag.SynExpectedIdentifier, "Expected an alias name")
		name = p.missingToken(token.Identifier, "")
	}
	p.s.tagLast(token.AnalyzedType)

	if _, ok := p.expectOperator("="); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected '=' after the alias name")
	}

	typ, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer | typeAllowStackArrayNoLength)
	if !ok {
		p.errAfterLast(diag.SynExpectedType, "Expected a type for the alias")
		typ = ast.NewMissingTypeInstance(p.s.afterLast(), p.file)
	}

	p.expectSemicolon()
	res.Aliases = append(res.Aliases, &ast.AliasDefinition{
		Info:       p.info(from),
		Attributes: attrs,
		Modifiers:  mods,
		Name:       name,
		Type:       typ,
	})
	return true
}
