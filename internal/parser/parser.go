// Package parser implements the recursive-descent, backtracking parser
// for Ember source. Productions return (node, ok); a failed alternative
// rewinds the cursor and leaves its diagnostics to the importance
// ranking, so only the best-matching explanation of bad input survives.
package parser

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// maxParserSteps is the endless-loop guard: no sane file needs this
// many cursor movements, so exceeding it means a production failed to
// make progress and the parse aborts with an internal error.
const maxParserSteps = 1 << 24

// Result is the outcome of parsing one file.
type Result struct {
	Functions []*ast.FunctionDefinition
	Operators []*ast.OperatorDefinition
	Structs   []*ast.StructDefinition
	Usings    []*ast.UsingDefinition
	Aliases   []*ast.AliasDefinition
	TopLevel  []ast.Statement

	// OriginalTokens is the tokenizer's output as handed to the parser;
	// Tokens is the live list after in-place splits (`>>` -> `>` `>`,
	// `@word` -> `@` `word`).
	OriginalTokens []token.Token
	Tokens         []token.Token
}

// Parser holds the state for parsing a single file.
type Parser struct {
	s    *stream
	file source.FileID
	bag  *diag.Bag
}

// syntaxBailout is the one unwinding path: thrown (as a panic) when
// recovery cannot continue, caught at the top of Parse and converted to
// a diagnostic.
type syntaxBailout struct {
	pos source.Position
	msg string
}

// Parse parses a whole file worth of tokens into a Result. It never
// fails: ill-formed input yields a Result with fewer items plus
// diagnostics in bag.
func Parse(tokens []token.Token, file source.FileID, bag *diag.Bag) *Result {
	return parse(tokens, file, bag, false)
}

// ParseExpression parses a single expression in the relaxed mode: the
// top-level statement and semicolon rules are suspended and the result
// carries one expression statement.
func ParseExpression(tokens []token.Token, file source.FileID, bag *diag.Bag) *Result {
	return parse(tokens, file, bag, true)
}

func parse(tokens []token.Token, file source.FileID, bag *diag.Bag, exprOnly bool) *Result {
	original := make([]token.Token, len(tokens))
	copy(original, tokens)
	owned := make([]token.Token, len(tokens))
	copy(owned, tokens)

	p := &Parser{
		s:    newStream(owned, file),
		file: file,
		bag:  bag,
	}
	res := &Result{OriginalTokens: original}

	defer func() {
		res.Tokens = p.s.toks
		if r := recover(); r != nil {
			if b, ok := r.(syntaxBailout); ok {
				p.err(diag.InternalError, b.pos, b.msg+" (this is internal)")
				return
			}
			panic(r)
		}
	}()

	if exprOnly {
		p.parseExpressionUnit(res)
		return res
	}

	for !p.s.eof() {
		p.guard()
		p.parseTopItem(res)
	}
	return res
}

// guard trips the endless-loop defense.
func (p *Parser) guard() {
	if p.s.steps > maxParserSteps {
		panic(syntaxBailout{pos: p.s.cur().Pos, msg: "parser made no progress"})
	}
}

// parseExpressionUnit handles the ParseExpression entry.
func (p *Parser) parseExpressionUnit(res *Result) {
	if p.s.eof() {
		return
	}
	expr, ok := p.parseExpression(true)
	if !ok {
		p.err(diag.SynExpectedExpression, p.s.cur().Pos, "Expected an expression")
		return
	}
	res.TopLevel = append(res.TopLevel, &ast.ExpressionStatement{
		Info: ast.MakeInfo(expr.Pos(), p.file),
		Expr: expr,
	})
	if !p.s.eof() {
		p.err(diag.SynUnexpectedToken, p.s.cur().Pos,
			fmt.Sprintf("unexpected %q after expression", p.s.cur().Content))
	}
}

// topAlternative is one candidate interpretation of the next top-level
// item. The body runs inside a diagnostics override scope; returning
// false rewinds both cursor and diagnostics.
type topAlternative struct {
	name string
	run  func() bool
}

// parseTopItem parses one top-level item, trying the alternatives in
// order and keeping only the most-promising failure diagnostics.
func (p *Parser) parseTopItem(res *Result) {
	m := p.s.mark()
	ord := diag.NewOrderedCollection()

	alternatives := []topAlternative{
		{"using", func() bool { return p.parseUsing(res) }},
		{"alias", func() bool { return p.parseAlias(res) }},
		{"struct", func() bool { return p.parseStruct(res) }},
		{"operator", func() bool { return p.parseOperatorDef(res) }},
		{"function", func() bool { return p.parseFunction(res) }},
		{"statement", func() bool { return p.parseTopStatement(res) }},
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

	// Nothing matched: report the surviving explanations (or a generic
	// one) and step over a token so the loop makes progress.
	if ord.Len() > 0 {
		ord.CommitTo(p.bag)
	} else {
		p.err(diag.SynExpectedStatement, p.s.cur().Pos, "Expected a statement")
	}
	p.s.advance()
}

// parseTopStatement wraps a statement as a top-level item.
func (p *Parser) parseTopStatement(res *Result) bool {
	stmt, ok := p.parseStatement()
	if !ok {
		return false
	}
	res.TopLevel = append(res.TopLevel, stmt)
	return true
}
