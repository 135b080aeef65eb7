package parser

import (
	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/token"
)

// parseStatement parses one statement. The cursor is unchanged when no
// statement form matches.
func (p *Parser) parseStatement() (ast.Statement, bool) {
	p.guard()
	cur := p.s.cur()

	if cur.IsOperator(";") {
		tok := p.s.advance()
		p.warn(diag.SynEmptyStatement, tok.Pos, "empty statement")
		return &ast.EmptyStatement{Info: ast.MakeInfo(tok.Pos, p.file)}, true
	}

	if cur.IsOperator("{") {
		return p.parseBlock()
	}

	// label: identifier ':'
	if cur.Kind == token.Identifier && !token.IsKeyword(cur.Content) &&
		p.s.peekAt(1).IsOperator(":") {
		name := p.s.advance()
		p.s.tagLast(token.AnalyzedLabel)
		colon := p.s.advance()
		return &ast.InstructionLabelDeclaration{
			Info: ast.MakeInfo(name.Pos.Cover(colon.Pos), p.file),
			Name: name,
		}, true
	}

	switch {
	case cur.IsIdentifier("if"):
		return p.parseIf()
	case cur.IsIdentifier("while"):
		return p.parseWhile()
	case cur.IsIdentifier("for"):
		return p.parseFor()
	case cur.IsIdentifier("return", "yield", "goto", "break", "crash", "delete"):
		return p.parseKeywordCall()
	}

	return p.parseSimpleStatement(true)
}

// parseSimpleStatement parses the statement forms that may also appear
// as a for-loop initializer or step: variable definitions, assignments
// and statement-expressions. requireSemi is false for the step, which
// the ')' terminates instead.
func (p *Parser) parseSimpleStatement(requireSemi bool) (ast.Statement, bool) {
	if stmt, ok := p.parseVariableDefinition(requireSemi); ok {
		return stmt, true
	}

	from := p.s.cur().Pos
	expr, ok := p.parseExpression(true)
	if !ok {
		return nil, false
	}

	var stmt ast.Statement
	switch {
	case p.atOperator("="):
		p.s.advance()
		value := p.requireExpression("Expected a value after '='")
		stmt = &ast.SimpleAssignment{Info: p.info(from), Target: expr, Value: value}

	case p.atOperator(token.CompoundAssignOperators...):
		op := p.s.advance()
		value := p.requireExpression("Expected a value after '" + op.Content + "'")
		stmt = &ast.CompoundAssignment{Info: p.info(from), Target: expr, Op: op, Value: value}

	case p.atOperator(token.IncDecOperators...):
		op := p.s.advance()
		stmt = &ast.ShortOperatorCall{Info: p.info(from), Target: expr, Op: op}

	default:
		if !ast.IsStatementExpression(expr) {
			// not a statement grammatically; fail the production so the
			// importance ranking can pick the best explanation
			p.err(diag.SynExpressionStatement, expr.Pos(),
				"only call expressions may be used as statements")
			return nil, false
		}
		stmt = &ast.ExpressionStatement{Info: ast.MakeInfo(expr.Pos(), p.file), Expr: expr}
	}

	if requireSemi {
		p.expectSemicolon()
	}
	return stmt, true
}

// requireExpression parses an expression or recovers with a missing
// placeholder at the expected location.
func (p *Parser) requireExpression(msg string) ast.Expression {
	expr, ok := p.parseExpression(true)
	if !ok {
		p.errAfterLast(diag.SynExpectedExpression, msg)
		return ast.NewMissingExpression(p.s.afterLast(), p.file)
	}
	return expr
}

// variableModifiers is the modifier set legal on local variables.
var variableModifiers = []string{"const", "temp", "ref", "export", "private"}

// parseVariableDefinition attempts `modifiers* type name (= value)? ;`
// or `var name = value;`. It is fully silent on failure.
func (p *Parser) parseVariableDefinition(requireSemi bool) (ast.Statement, bool) {
	m := p.s.mark()
	ov := p.bag.PushOverride()

	from := p.s.cur().Pos
	mods := p.parseModifiers()

	if _, ok := p.expectIdentifier("var"); ok {
		p.s.tagLast(token.AnalyzedKeyword)
		name, ok := p.expectIdentifier()
		if !ok || token.IsKeyword(name.Content) {
			ov.Drop()
			p.s.reset(m)
			return nil, false
		}
		p.s.tagLast(token.AnalyzedVariable)
		ov.Apply()
		p.checkModifiers(mods, variableModifiers, "a variable")

		def := &ast.VariableDefinition{Info: p.info(from), Modifiers: mods, Name: name}
		if _, ok := p.expectOperator("="); !ok {
			p.errAfterLast(diag.SynExpectedOperator, "Expected '=' after the variable name")
		} else {
			def.Value = p.requireExpression("Expected an initial value")
		}
		if requireSemi {
			p.expectSemicolon()
		}
		def.SetPos(p.span(from))
		return def, true
	}

	typ, ok := p.parseType(typeAllowAny | typeAllowFunctionPointer)
	if !ok {
		ov.Drop()
		p.s.reset(m)
		return nil, false
	}
	name, ok := p.expectIdentifier()
	if !ok || token.IsKeyword(name.Content) {
		ov.Drop()
		p.s.reset(m)
		return nil, false
	}
	// a declaration continues with '=' or ';'; anything else means this
	// was an expression after all
	if !p.atOperator("=", ";") {
		ov.Drop()
		p.s.reset(m)
		return nil, false
	}
	p.s.tagLast(token.AnalyzedVariable)
	ov.Apply()
	p.checkModifiers(mods, variableModifiers, "a variable")

	def := &ast.VariableDefinition{Info: p.info(from), Modifiers: mods, Type: typ, Name: name}
	if _, ok := p.expectOperator("="); ok {
		def.Value = p.requireExpression("Expected an initial value")
	}
	if requireSemi {
		p.expectSemicolon()
	}
	def.SetPos(p.span(from))
	return def, true
}

// parseBlock parses `{ statements }` with per-statement recovery: an
// unparseable stretch becomes a MissingStatement and the cursor resyncs
// to the next ';' or '}'.
func (p *Parser) parseBlock() (*ast.Block, bool) {
	open, ok := p.expectOperator("{")
	if !ok {
		return nil, false
	}
	block := &ast.Block{Info: ast.MakeInfo(open.Pos, p.file), Open: open}

	stalled := false
	for {
		if p.atOperator("}") {
			block.Close = p.s.advance()
			block.SetPos(p.span(open.Pos))
			return block, true
		}
		if p.s.eof() {
			if !stalled {
				p.errAfterLast(diag.SynExpectedOperator, "Expected '}' to close the block")
			}
			block.Close = p.missingToken(token.Operator, "}")
			block.SetPos(p.span(open.Pos))
			return block, true
		}
		stmt, ok := p.parseStatement()
		if !ok {
			p.err(diag.SynExpectedStatement, p.s.cur().Pos, "Expected a statement")
			block.Statements = append(block.Statements, ast.NewMissingStatement(p.s.cur().Pos, p.file))
			stalled = true
			p.resyncStatement()
			continue
		}
		block.Statements = append(block.Statements, stmt)
	}
}

// resyncStatement skips to just past the next ';' (or up to the next
// '}' / EOF) after a failed statement.
func (p *Parser) resyncStatement() {
	for !p.s.eof() {
		cur := p.s.cur()
		if cur.IsOperator(";") {
			p.s.advance()
			return
		}
		if cur.IsOperator("}") {
			return
		}
		p.s.advance()
	}
}

// requireStatement parses the body of a control-flow statement or
// recovers with a placeholder.
func (p *Parser) requireStatement() ast.Statement {
	stmt, ok := p.parseStatement()
	if !ok {
		p.err(diag.SynExpectedStatement, p.s.cur().Pos, "Expected a statement")
		return ast.NewMissingStatement(p.s.cur().Pos, p.file)
	}
	return stmt
}

func (p *Parser) parseIf() (ast.Statement, bool) {
	kw := p.s.advance() // 'if'
	p.s.tagLast(token.AnalyzedKeyword)

	cond := p.parseParenCondition("if")
	then := p.requireStatement()

	node := &ast.IfElse{Info: ast.MakeInfo(kw.Pos, p.file), Condition: cond, Then: then}
	if _, ok := p.expectIdentifier("else"); ok {
		p.s.tagLast(token.AnalyzedKeyword)
		node.Else = p.requireStatement()
	}
	node.SetPos(p.span(kw.Pos))
	return node, true
}

func (p *Parser) parseWhile() (ast.Statement, bool) {
	kw := p.s.advance() // 'while'
	p.s.tagLast(token.AnalyzedKeyword)

	cond := p.parseParenCondition("while")
	body := p.requireStatement()

	node := &ast.While{Info: p.info(kw.Pos), Condition: cond, Body: body}
	node.SetPos(p.span(kw.Pos))
	return node, true
}

// parseParenCondition parses `( expr )` after if/while.
func (p *Parser) parseParenCondition(kw string) ast.Expression {
	if _, ok := p.expectOperator("("); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected '(' after '"+kw+"'")
	}
	cond := p.requireExpression("Expected a condition")
	if _, ok := p.expectOperator(")"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ')' after the condition")
	}
	return cond
}

func (p *Parser) parseFor() (ast.Statement, bool) {
	kw := p.s.advance() // 'for'
	p.s.tagLast(token.AnalyzedKeyword)

	node := &ast.For{Info: ast.MakeInfo(kw.Pos, p.file)}
	if _, ok := p.expectOperator("("); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected '(' after 'for'")
	}

	// initializer (consumes its own ';')
	if _, ok := p.expectOperator(";"); !ok {
		init, ok := p.parseSimpleStatement(true)
		if !ok {
			p.err(diag.SynExpectedStatement, p.s.cur().Pos, "Expected a loop initializer")
			p.resyncStatement()
		} else {
			node.Init = init
		}
	}

	// condition
	if _, ok := p.expectOperator(";"); !ok {
		node.Condition = p.requireExpression("Expected a loop condition")
		if _, ok := p.expectOperator(";"); !ok {
			p.errAfterLast(diag.SynExpectedOperator, "Expected ';' after the loop condition")
		}
	}

	// step (terminated by ')')
	if !p.atOperator(")") {
		step, ok := p.parseSimpleStatement(false)
		if !ok {
			p.err(diag.SynExpectedStatement, p.s.cur().Pos, "Expected a loop step")
		} else {
			node.Step = step
		}
	}
	if _, ok := p.expectOperator(")"); !ok {
		p.errAfterLast(diag.SynExpectedOperator, "Expected ')' to close the loop header")
	}

	node.Body = p.requireStatement()
	node.SetPos(p.span(kw.Pos))
	return node, true
}

// parseKeywordCall parses return/yield/goto/break/crash/delete.
func (p *Parser) parseKeywordCall() (ast.Statement, bool) {
	kw := p.s.advance()
	p.s.tagLast(token.AnalyzedKeyword)

	var stmt ast.Statement
	switch kw.Content {
	case "return":
		node := &ast.Return{Info: ast.MakeInfo(kw.Pos, p.file)}
		if !p.atOperator(";", "}") && !p.s.eof() {
			node.Value = p.requireExpression("Expected a return value")
		}
		node.SetPos(p.span(kw.Pos))
		stmt = node

	case "yield":
		stmt = &ast.Yield{Info: ast.MakeInfo(kw.Pos, p.file)}

	case "break":
		stmt = &ast.Break{Info: ast.MakeInfo(kw.Pos, p.file)}

	case "goto":
		label, ok := p.expectIdentifier()
		if !ok {
			p.errAfterLast(diag.SynExpectedIdentifier, "Expected a label after 'goto'")
			label = p.missingToken(token.Identifier, "")
		}
		p.s.tagLast(token.AnalyzedLabel)
		stmt = &ast.Goto{Info: p.info(kw.Pos), Label: label}

	case "crash":
		node := &ast.Crash{Info: ast.MakeInfo(kw.Pos, p.file)}
		if !p.atOperator(";", "}") && !p.s.eof() {
			node.Value = p.requireExpression("Expected a crash value")
		}
		node.SetPos(p.span(kw.Pos))
		stmt = node

	case "delete":
		value := p.requireExpression("Expected a value after 'delete'")
		stmt = &ast.Delete{Info: p.info(kw.Pos), Value: value}
	}

	p.expectSemicolon()
	return stmt, true
}
