package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// typeFlags gate which type forms may appear in a given context.
type typeFlags uint8

const (
	// typeAllowAny permits the `any` type.
	typeAllowAny typeFlags = 1 << iota
	// typeAllowFunctionPointer permits `Ret(Params)` forms.
	typeAllowFunctionPointer
	// typeAllowStackArrayNoLength permits `T[]`.
	typeAllowStackArrayNoLength
	// typeMemberHead stops the postfix loop before it would swallow a
	// struct-member head (`*(`, `()(`, `[](`, `[]=`), so operator and
	// indexer definitions stay parseable.
	typeMemberHead
)

// parseType parses a type instance: identifier with optional generic
// arguments followed by any run of `*`, `(params)` and `[len?]`
// postfixes, optionally preceded by a `@closure` modifier.
func (p *Parser) parseType(flags typeFlags) (ast.TypeInstance, bool) {
	m := p.s.mark()

	if p.atClosurePrefix() {
		return p.parseClosureType(flags, m)
	}

	name, ok := p.expectIdentifier()
	if !ok {
		return nil, false
	}
	if token.IsKeyword(name.Content) && !token.IsBuiltinType(name.Content) {
		// keywords never start a type
		p.s.reset(m)
		return nil, false
	}
	p.s.tagLast(token.AnalyzedType)

	simple := &ast.TypeInstanceSimple{
		Info: ast.MakeInfo(name.Pos, p.file),
		Name: name,
	}
	if p.atOperator("<") {
		p.parseGenericArgs(simple)
	}

	if name.Content == "any" && flags&typeAllowAny == 0 {
		p.err(diag.SynTypeNotAllowed, name.Pos, "the 'any' type is not allowed here")
	}

	var t ast.TypeInstance = simple
	t = p.parseTypePostfix(t, flags)
	return t, true
}

// atClosurePrefix reports whether the current token begins a `@name`
// closure modifier. A combined `@name` token (from a foreign tokenizer)
// is split in place first, mirroring the `>>` discipline.
func (p *Parser) atClosurePrefix() bool {
	cur := p.s.cur()
	if cur.Kind != token.Operator || len(cur.Content) == 0 || cur.Content[0] != '@' {
		return false
	}
	if len(cur.Content) > 1 {
		if !p.s.splitCurrent(1) {
			return false
		}
		// re-type the split-off word as an identifier
		idx := p.s.curIdx()
		if idx >= 0 && idx+1 < len(p.s.toks) {
			p.s.toks[idx+1].Kind = token.Identifier
		}
	}
	return true
}

// parseClosureType parses `@name fnType`.
func (p *Parser) parseClosureType(flags typeFlags, m int) (ast.TypeInstance, bool) {
	at := p.s.advance() // '@'
	name, ok := p.expectIdentifier()
	if !ok {
		p.s.reset(m)
		return nil, false
	}
	p.s.tagLast(token.AnalyzedModifier)

	inner, ok := p.parseType(flags &^ typeMemberHead)
	if !ok {
		p.s.reset(m)
		return nil, false
	}
	fn, isFn := inner.(*ast.TypeInstanceFunction)
	if !isFn {
		p.err(diag.SynTypeNotAllowed, name.Pos,
			"closure modifier '@"+name.Content+"' requires a function type")
		return inner, true
	}
	fn.Closure = &name
	fn.SetPos(at.Pos.Cover(fn.Pos()))
	return fn, true
}

// parseGenericArgs parses `<T, U>` onto simple, backtracking entirely
// when the angle bracket turns out not to open a generic list.
func (p *Parser) parseGenericArgs(simple *ast.TypeInstanceSimple) {
	m := p.s.mark()
	p.s.advance() // '<'

	var args []ast.TypeInstance
	inner := typeAllowAny | typeAllowFunctionPointer | typeAllowStackArrayNoLength
	first, ok := p.parseType(inner)
	if !ok {
		p.s.reset(m)
		return
	}
	args = append(args, first)
	for {
		if _, ok := p.expectOperator(","); !ok {
			break
		}
		arg, ok := p.parseType(inner)
		if !ok {
			p.s.reset(m)
			return
		}
		args = append(args, arg)
	}
	if !p.closeGenericList() {
		p.s.reset(m)
		return
	}
	simple.Generics = args
	simple.SetPos(p.span(simple.Name.Pos))
}

// closeGenericList consumes the closing '>' of a generic argument
// list. A `>>` token (or an unexpected `>>>`) is split in place: the
// first '>' closes this list and the remainder stays current for the
// outer list.
func (p *Parser) closeGenericList() bool {
	cur := p.s.cur()
	if cur.IsOperator(">") {
		p.s.advance()
		return true
	}
	if cur.IsOperator(">>", ">>>") {
		if p.s.splitCurrent(1) {
			p.s.advance() // the first '>'
			return true
		}
	}
	return false
}

// parseTypePostfix applies the `*`, `(params)` and `[len?]` postfixes.
func (p *Parser) parseTypePostfix(t ast.TypeInstance, flags typeFlags) ast.TypeInstance {
	for {
		switch {
		case p.atOperator("*"):
			if flags&typeMemberHead != 0 && p.s.peekAt(1).IsOperator("(") {
				return t // `*(` opens an operator definition head
			}
			p.s.advance()
			t = &ast.TypeInstancePointer{Info: p.info(t.Pos()), Inner: t}

		case p.atOperator("("):
			if flags&typeMemberHead != 0 &&
				p.s.peekAt(1).IsOperator(")") && p.s.peekAt(2).IsOperator("(") {
				return t // `()(` is the call operator head
			}
			if flags&typeAllowFunctionPointer == 0 {
				p.err(diag.SynTypeNotAllowed, p.s.cur().Pos, "a function type is not allowed here")
			}
			t = p.parseFunctionTypeSuffix(t)

		case p.atOperator("["):
			if flags&typeMemberHead != 0 && p.s.peekAt(1).IsOperator("]") &&
				p.s.peekAt(2).IsOperator("(", "=") {
				return t // `[](` / `[]=` open an indexer head
			}
			p.s.advance() // '['
			if _, ok := p.expectOperator("]"); ok {
				if flags&typeAllowStackArrayNoLength == 0 {
					p.err(diag.SynTypeNotAllowed, p.s.afterLast(),
						"a stack array without a length is not allowed here")
				}
				t = &ast.TypeInstanceStackArray{Info: p.info(t.Pos()), Element: t}
				continue
			}
			length, ok := p.parseExpression(false)
			if !ok {
				p.errAfterLast(diag.SynExpectedExpression, "Expected a stack array length")
				length = ast.NewMissingExpression(p.s.afterLast(), p.file)
			}
			if _, ok := p.expectOperator("]"); !ok {
				p.errAfterLast(diag.SynExpectedOperator, "Expected ']' to close the stack array length")
			}
			t = &ast.TypeInstanceStackArray{Info: p.info(t.Pos()), Element: t, Length: length}

		default:
			return t
		}
	}
}

// parseFunctionTypeSuffix parses `(T1, T2)` after a return type.
func (p *Parser) parseFunctionTypeSuffix(ret ast.TypeInstance) ast.TypeInstance {
	p.s.advance() // '('
	fn := &ast.TypeInstanceFunction{Info: ast.MakeInfo(ret.Pos(), p.file), Return: ret}
	inner := typeAllowAny | typeAllowFunctionPointer | typeAllowStackArrayNoLength
	if !p.atOperator(")") {
		for {
			param, ok := p.parseType(inner)
			if !ok {
				p.errAfterLast(diag.SynExpectedType, "Expected a parameter type")
				break
			}
			fn.Params = append(fn.Params, param)
			if _, ok := p.expectOperator(","); !ok {
				break
			}
		}
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ')' to close the function type")
	}
	fn.SetPos(p.span(ret.Pos()))
	return fn
}
