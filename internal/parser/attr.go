package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// parseAttributes parses zero or more `[Name]` / `[Name(args)]` usages.
// A '[' that does not continue as an attribute is left for the caller
// (it may open a list expression).
func (p *Parser) parseAttributes() []*ast.AttributeUsage {
	var out []*ast.AttributeUsage
	for {
		if !p.atOperator("[") {
			return out
		}
		// attribute shape: '[' ident (']' | '(')
		if p.s.peekAt(1).Kind != token.Identifier {
			return out
		}
		if after := p.s.peekAt(2); !after.IsOperator("]", "(") {
			return out
		}

		open := p.s.advance() // '['
		name, _ := p.expectIdentifier()
		p.s.tagLast(token.AnalyzedAttribute)

		attr := &ast.AttributeUsage{
			Info: ast.MakeInfo(open.Pos, p.file),
			Name: name,
		}
		if p.atOperator("(") {
			if args, ok := p.parseArgumentList(); ok {
				attr.Args = args
			}
		}
		if _, ok := p.expectOperator("]"); !ok {
			p.errAfterLast(diag.SynExpectedOperator, "Expected ']' to close the attribute")
		}
		attr.SetPos(p.span(open.Pos))
		out = append(out, attr)
	}
}

// parseModifiers consumes the run of modifier and protection keywords
// before a definition.
func (p *Parser) parseModifiers() []token.Token {
	var out []token.Token
	for {
		cur := p.s.cur()
		if cur.Kind != token.Identifier || !token.IsModifier(cur.Content) {
			return out
		}
		tok := p.s.advance()
		p.s.tagLast(token.AnalyzedModifier)
		for _, seen := range out {
			if seen.Content == tok.Content {
				p.warn(diag.SynDuplicateModifier, tok.Pos, "duplicate modifier '"+tok.Content+"'")
				break
			}
		}
		out = append(out, tok)
	}
}

// checkModifiers reports every modifier outside the allowed set for the
// context. The modifiers stay on the definition regardless.
func (p *Parser) checkModifiers(mods []token.Token, allowed []string, context string) {
	for _, m := range mods {
		found := false
		for _, a := range allowed {
			if m.Content == a {
				found = true
				break
			}
		}
		if !found {
			p.err(diag.SynModifierNotAllowed, m.Pos,
				"modifier '"+m.Content+"' is not allowed on "+context)
		}
	}
}
