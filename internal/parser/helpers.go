package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// expectIdentifier consumes the current token when it is an identifier
// (optionally one of the given spellings); on a miss the cursor is left
// unchanged and no diagnostic is emitted.
func (p *Parser) expectIdentifier(names ...string) (token.Token, bool) {
	if p.s.cur().IsIdentifier(names...) {
		return p.s.advance(), true
	}
	return token.Token{}, false
}

// expectOperator consumes the current token when it is an operator with
// one of the given spellings.
func (p *Parser) expectOperator(names ...string) (token.Token, bool) {
	if p.s.cur().IsOperator(names...) {
		return p.s.advance(), true
	}
	return token.Token{}, false
}

// expectLiteral consumes the current token when it is any literal.
func (p *Parser) expectLiteral() (token.Token, bool) {
	if p.s.cur().Kind.IsLiteral() {
		return p.s.advance(), true
	}
	return token.Token{}, false
}

// atOperator reports whether the current token is one of the given
// operators, without consuming.
func (p *Parser) atOperator(names ...string) bool {
	return p.s.cur().IsOperator(names...)
}

// atIdentifier reports whether the current token is an identifier with
// one of the given spellings, without consuming.
func (p *Parser) atIdentifier(names ...string) bool {
	return p.s.cur().IsIdentifier(names...)
}

// err emits a positioned error.
func (p *Parser) err(code diag.Code, pos source.Position, msg string) {
	p.bag.Add(diag.New(diag.SevError, code, pos, p.file, msg))
}

// warn emits a positioned warning.
func (p *Parser) warn(code diag.Code, pos source.Position, msg string) {
	p.bag.Add(diag.New(diag.SevWarning, code, pos, p.file, msg))
}

// errAfterLast emits an error anchored just past the last consumed
// token — where the missing element was expected.
func (p *Parser) errAfterLast(code diag.Code, msg string) {
	p.err(code, p.s.afterLast(), msg)
}

// missingToken fabricates the named token at the expected location.
func (p *Parser) missingToken(kind token.Kind, content string) token.Token {
	return token.NewMissing(kind, content, p.s.afterLast(), p.file)
}

// expectSemicolon consumes a ';' or warns that it is missing. Extra
// semicolons are consumed with their own warning.
func (p *Parser) expectSemicolon() {
	if _, ok := p.expectOperator(";"); !ok {
		p.warn(diag.SynMissingSemicolon, p.s.afterLast(), "expected ';'")
		return
	}
	for p.atOperator(";") {
		tok := p.s.advance()
		p.warn(diag.SynUnnecessarySemicolon, tok.Pos, "unnecessary ';'")
	}
}

// span covers from a start position to the end of the last consumed
// token.
func (p *Parser) span(from source.Position) source.Position {
	return from.Cover(p.s.afterLast().Before())
}

// info builds a node header covering from a start position to the last
// consumed token.
func (p *Parser) info(from source.Position) ast.Info {
	return ast.MakeInfo(p.span(from), p.file)
}
