package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// binaryPrecedence returns the binding strength of a binary operator;
// higher binds tighter, 0 means not a binary operator. Associativity is
// left-to-right throughout.
func binaryPrecedence(op string) int {
	switch op {
	case "*", "/", "%":
		return 10
	case "+", "-":
		return 9
	case "<<", ">>":
		return 8
	case "&":
		return 7
	case "^":
		return 6
	case "|":
		return 5
	case "<", ">", "<=", ">=", "!=", "==":
		return 4
	case "&&":
		return 3
	case "||":
		return 2
	}
	return 0
}

// parseExpression parses a full binary expression. allowAs gates the
// `value as T` reinterpret form (it nests poorly in a few contexts).
func (p *Parser) parseExpression(allowAs bool) (ast.Expression, bool) {
	left, ok := p.parseUnary(allowAs)
	if !ok {
		return nil, false
	}
	for {
		cur := p.s.cur()
		if cur.Kind != token.Operator || binaryPrecedence(cur.Content) == 0 {
			break
		}
		op := p.s.advance()
		right, ok := p.parseUnary(allowAs)
		if !ok {
			p.errAfterLast(diag.SynExpectedExpression,
				"Expected an expression after '"+op.Content+"'")
			right = ast.NewMissingExpression(p.s.afterLast(), p.file)
		}
		left = p.attachBinary(left, op, right)
	}
	return left, true
}

// attachBinary inserts a new operator into the tree built so far. The
// tree is left-leaning; the insertion point is the deepest rightmost
// node whose operator binds strictly weaker than the incoming one and
// is not explicitly parenthesized. Right is the one slot mutated after
// construction.
func (p *Parser) attachBinary(left ast.Expression, op token.Token, right ast.Expression) ast.Expression {
	if bl, ok := left.(*ast.BinaryOperatorCall); ok && !bl.Parenthesized &&
		binaryPrecedence(bl.Op.Content) < binaryPrecedence(op.Content) {
		bl.Right = p.attachBinary(bl.Right, op, right)
		bl.SetPos(bl.Left.Pos().Cover(bl.Right.Pos()))
		return bl
	}
	return &ast.BinaryOperatorCall{
		Info:  ast.MakeInfo(left.Pos().Cover(right.Pos()), p.file),
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// parseUnary parses the `! ~ - +` prefixes.
func (p *Parser) parseUnary(allowAs bool) (ast.Expression, bool) {
	if p.atOperator(token.UnaryPrefixOperators...) {
		op := p.s.advance()
		operand, ok := p.parseUnary(allowAs)
		if !ok {
			p.errAfterLast(diag.SynExpectedExpression,
				"Expected an expression after '"+op.Content+"'")
			operand = ast.NewMissingExpression(p.s.afterLast(), p.file)
		}
		return &ast.UnaryOperatorCall{
			Info:    ast.MakeInfo(op.Pos.Cover(operand.Pos()), p.file),
			Op:      op,
			Operand: operand,
		}, true
	}
	return p.parseOneValueChain(allowAs)
}

// parseOneValueChain parses a one-value and its postfix chain:
// member access, index calls, call arguments and `as` reinterprets.
func (p *Parser) parseOneValueChain(allowAs bool) (ast.Expression, bool) {
	v, ok := p.parseOneValue(allowAs)
	if !ok {
		return nil, false
	}
	for {
		switch {
		case p.atOperator("."):
			p.s.advance()
			name, ok := p.expectIdentifier()
			if !ok {
				p.errAfterLast(diag.SynExpectedIdentifier, "Expected a field name after '.'")
				name = p.missingToken(token.Identifier, "")
			}
			p.s.tagLast(token.AnalyzedField)
			v = &ast.FieldAccess{Info: p.info(v.Pos()), Target: v, Name: name}

		case p.atOperator("["):
			p.s.advance()
			index, ok := p.parseExpression(true)
			if !ok {
				p.errAfterLast(diag.SynExpectedExpression, "Expected an index expression")
				index = ast.NewMissingExpression(p.s.afterLast(), p.file)
			}
			if _, ok := p.expectOperator("]"); !ok {
				p.errAfterLast(diag.SynExpectedOperator, "Expected ']' to close the index")
			}
			v = &ast.IndexCall{Info: p.info(v.Pos()), Target: v, Index: index}

		case p.atOperator("("):
			args, ok := p.parseArgumentList()
			if !ok {
				return v, true
			}
			v = &ast.AnyCall{Info: p.info(v.Pos()), Target: v, Args: args}

		case allowAs && p.atIdentifier("as"):
			p.s.advance()
			p.s.tagLast(token.AnalyzedKeyword)
			typ, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer)
			if !ok {
				p.errAfterLast(diag.SynExpectedType, "Expected a type after 'as'")
				typ = ast.NewMissingTypeInstance(p.s.afterLast(), p.file)
			}
			v = &ast.Reinterpret{Info: p.info(v.Pos()), Value: v, Type: typ}

		default:
			return v, true
		}
	}
}

// parseOneValue parses a single value; the alternative order mirrors
// the grammar: lambda, list, literal, cast, parenthesized expression,
// new, reference/dereference, identifier.
func (p *Parser) parseOneValue(allowAs bool) (ast.Expression, bool) {
	cur := p.s.cur()

	if cur.IsOperator("(") {
		if lambda, ok := p.parseLambda(); ok {
			return lambda, true
		}
		if cast, ok := p.parseTypeCast(allowAs); ok {
			return cast, true
		}
		return p.parseParenExpression()
	}

	if cur.IsOperator("[") {
		return p.parseListExpression()
	}

	if cur.Kind.IsLiteral() {
		lit := p.s.advance()
		return ast.NewLiteral(lit, p.file), true
	}

	if cur.IsIdentifier("new") {
		return p.parseNewInstance()
	}
	if cur.IsIdentifier("sizeof") {
		return p.parseSizeOf()
	}

	if cur.IsOperator("&") {
		op := p.s.advance()
		target, ok := p.parseOneValueChain(false)
		if !ok {
			p.errAfterLast(diag.SynExpectedExpression, "Expected a value after '&'")
			target = ast.NewMissingExpression(p.s.afterLast(), p.file)
		}
		return &ast.GetReference{Info: ast.MakeInfo(op.Pos.Cover(target.Pos()), p.file), Target: target}, true
	}
	if cur.IsOperator("*") {
		op := p.s.advance()
		target, ok := p.parseOneValueChain(false)
		if !ok {
			p.errAfterLast(diag.SynExpectedExpression, "Expected a value after '*'")
			target = ast.NewMissingExpression(p.s.afterLast(), p.file)
		}
		return &ast.Dereference{Info: ast.MakeInfo(op.Pos.Cover(target.Pos()), p.file), Target: target}, true
	}

	if cur.Kind == token.Identifier {
		if token.IsKeyword(cur.Content) && cur.Content != "this" {
			return nil, false
		}
		name := p.s.advance()
		return &ast.Identifier{Info: ast.MakeInfo(name.Pos, p.file), Tok: name}, true
	}

	return nil, false
}

// parseLambda attempts `(params) => block-or-expression`; it is fully
// silent on failure.
func (p *Parser) parseLambda() (ast.Expression, bool) {
	m := p.s.mark()
	ov := p.bag.PushOverride()

	params, ok := p.parseParameterList(paramContextLambda)
	if !ok || !p.atOperator("=>") {
		ov.Drop()
		p.s.reset(m)
		return nil, false
	}
	ov.Apply()
	p.s.advance() // '=>'

	lambda := &ast.Lambda{Info: ast.MakeInfo(params.Pos(), p.file), Params: params}
	if p.atOperator("{") {
		var body ast.Statement
		if block, ok := p.parseBlock(); ok {
			body = block
		} else {
			body = ast.NewMissingBlock(p.s.afterLast(), p.file)
		}
		lambda.Body = body
	} else {
		value, ok := p.parseExpression(true)
		if !ok {
			p.errAfterLast(diag.SynExpectedExpression, "Expected a lambda body")
			value = ast.NewMissingExpression(p.s.afterLast(), p.file)
		}
		lambda.Value = value
	}
	lambda.SetPos(p.span(params.Pos()))
	return lambda, true
}

// parseTypeCast attempts `(T) value`; it backtracks when the value is
// absent so `(expr)` can be tried next.
func (p *Parser) parseTypeCast(allowAs bool) (ast.Expression, bool) {
	m := p.s.mark()
	ov := p.bag.PushOverride()

	open, _ := p.expectOperator("(")
	typ, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer)
	if !ok {
		ov.Drop()
		p.s.reset(m)
		return nil, false
	}
	if _, ok := p.expectOperator(")"); !ok {
		ov.Drop()
		p.s.reset(m)
		return nil, false
	}
	value, ok := p.parseOneValueChain(allowAs)
	if !ok {
		ov.Drop()
		p.s.reset(m)
		return nil, false
	}
	ov.Apply()
	return &ast.ManagedTypeCast{
		Info:  ast.MakeInfo(open.Pos.Cover(value.Pos()), p.file),
		Type:  typ,
		Value: value,
	}, true
}

// parseParenExpression parses `(expr)`, marking a binary result as
// parenthesized so re-association respects the explicit grouping.
func (p *Parser) parseParenExpression() (ast.Expression, bool) {
	if _, ok := p.expectOperator("("); !ok {
		return nil, false
	}
	expr, ok := p.parseExpression(true)
	if !ok {
		p.errAfterLast(diag.SynExpectedExpression, "Expected an expression after '('")
		expr = ast.NewMissingExpression(p.s.afterLast(), p.file)
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ')' to close the expression")
	}
	if bin, isBin := expr.(*ast.BinaryOperatorCall); isBin {
		bin.Parenthesized = true
	}
	return expr, true
}

// parseListExpression parses `[a, b, c]`.
func (p *Parser) parseListExpression() (ast.Expression, bool) {
	open, ok := p.expectOperator("[")
	if !ok {
		return nil, false
	}
	list := &ast.ListExpression{Info: ast.MakeInfo(open.Pos, p.file)}
	if !p.atOperator("]") {
		for {
			el, ok := p.parseExpression(true)
			if !ok {
				p.errAfterLast(diag.SynExpectedExpression, "Expected a list element")
				el = ast.NewMissingExpression(p.s.afterLast(), p.file)
			}
			list.Elements = append(list.Elements, el)
			if _, ok := p.expectOperator(","); !ok {
				break
			}
		}
	}
	if _, ok := p.expectOperator("]"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ']' to close the list")
	}
	list.SetPos(p.span(open.Pos))
	return list, true
}

// parseNewInstance parses `new T` and `new T(args)`.
func (p *Parser) parseNewInstance() (ast.Expression, bool) {
	kw := p.s.advance() // 'new'
	p.s.tagLast(token.AnalyzedKeyword)

	m := p.s.mark()
	ov := p.bag.PushOverride()
	typ, ok := p.parseType(typeAllowFunctionPointer)
	if fn, isFn := typ.(*ast.TypeInstanceFunction); isFn && fn.Closure == nil {
		// `new T(args)`: the parentheses hold constructor arguments, not
		// function-type parameters; step back to just after T
		ov.Drop()
		p.s.reset(m)
		for end := fn.Return.Pos().End.Offset; p.s.cur().Pos.Start.Offset < end; {
			p.s.advance()
		}
		typ = fn.Return
	} else {
		ov.Apply()
	}
	if !ok {
		p.errAfterLast(diag.SynExpectedType, "Expected a type after 'new'")
		typ = ast.NewMissingTypeInstance(p.s.afterLast(), p.file)
	}
	inst := &ast.NewInstance{Info: ast.MakeInfo(kw.Pos, p.file), Type: typ}
	if p.atOperator("(") {
		if args, ok := p.parseArgumentList(); ok {
			inst.Args = args
			inst.HasArgs = true
		}
	}
	inst.SetPos(p.span(kw.Pos))
	return inst, true
}

// parseSizeOf parses `sizeof(T)`.
func (p *Parser) parseSizeOf() (ast.Expression, bool) {
	kw := p.s.advance() // 'sizeof'
	p.s.tagLast(token.AnalyzedKeyword)

	if _, ok := p.expectOperator("("); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected '(' after 'sizeof'")
	}
	typ, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer | typeAllowStackArrayNoLength)
	if !ok {
		p.errAfterLast(diag.SynExpectedType, "Expected a type in 'sizeof'")
		typ = ast.NewMissingTypeInstance(p.s.afterLast(), p.file)
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ')' to close 'sizeof'")
	}
	return &ast.SizeOf{Info: p.info(kw.Pos), Type: typ}, true
}

// parseArgumentList parses `(arg, ...)` where each argument may carry
// value modifiers.
func (p *Parser) parseArgumentList() (*ast.ArgumentListExpression, bool) {
	open, ok := p.expectOperator("(")
	if !ok {
		return nil, false
	}
	list := &ast.ArgumentListExpression{Info: ast.MakeInfo(open.Pos, p.file)}
	if !p.atOperator(")") {
		for {
			list.Args = append(list.Args, p.parseArgument())
			if _, ok := p.expectOperator(","); !ok {
				break
			}
		}
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ')' to close the argument list")
	}
	list.SetPos(p.span(open.Pos))
	return list, true
}

// argumentModifiers is the modifier set legal on call arguments.
var argumentModifiers = []string{"ref", "temp", "const"}

func (p *Parser) parseArgument() ast.Expression {
	from := p.s.cur().Pos

	var mods []token.Token
	for p.atIdentifier(argumentModifiers...) {
		mods = append(mods, p.s.advance())
		p.s.tagLast(token.AnalyzedModifier)
	}

	value, ok := p.parseExpression(true)
	if !ok {
		if len(mods) > 0 {
			p.warn(diag.SynModifierWithoutValue, p.s.afterLast(),
				"modifier without a value, is this intended?")
			return &ast.ArgumentExpression{
				Info:      p.info(from),
				Modifiers: mods,
				Value:     ast.NewMissingExpression(p.s.afterLast(), p.file),
			}
		}
		p.errAfterLast(diag.SynExpectedExpression, "Expected an argument")
		missing := &ast.MissingArgumentExpression{}
		missing.Info = ast.MakeInfo(p.s.afterLast().Before(), p.file)
		missing.Value = ast.NewMissingExpression(p.s.afterLast(), p.file)
		return missing
	}
	return &ast.ArgumentExpression{Info: p.info(from), Modifiers: mods, Value: value}
}
