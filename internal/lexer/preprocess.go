package lexer

import (
	"strings"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

type conditionPhase uint8

const (
	phaseIf conditionPhase = iota
	phaseElse
)

// conditionFrame is one nesting level of #if. conditions holds the
// evaluated branch conditions seen so far; the last entry is the branch
// currently in effect.
type conditionFrame struct {
	phase      conditionPhase
	conditions []bool
	pos        source.Position
	file       source.FileID
}

func (f *conditionFrame) anyTaken() bool {
	for _, c := range f.conditions {
		if c {
			return true
		}
	}
	return false
}

// preprocessor is the conditional-inclusion state machine. It lives
// inside the lexer; every emitted token consults its skip state.
type preprocessor struct {
	stack   []conditionFrame
	defined map[string]struct{}
}

func newPreprocessor(defines []string) preprocessor {
	defined := make(map[string]struct{}, len(defines))
	for _, d := range defines {
		if d != "" {
			defined[d] = struct{}{}
		}
	}
	return preprocessor{defined: defined}
}

// isSkipping reports whether the current branch of any open condition is
// inactive.
func (p *preprocessor) isSkipping() bool {
	for i := range p.stack {
		conds := p.stack[i].conditions
		if len(conds) > 0 && !conds[len(conds)-1] {
			return true
		}
	}
	return false
}

// scanDirectiveLine scans "#word [argument]" to the end of the line,
// emits the tokens, and applies the directive to the preprocessor state.
// Directive tokens keep their kinds at a skip boundary: only when the
// region was skipped both before and after the directive do they re-type
// to PreprocessSkipped.
func (lx *Lexer) scanDirectiveLine() {
	skippedBefore := lx.pre.isSkipping()

	start := lx.cursor.Point()
	lx.cursor.Bump() // '#'
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	identTok := lx.make(token.PreprocessIdentifier, start)
	identIdx := lx.emitRaw(identTok)

	wsIdx := -1
	if b := lx.cursor.Peek(); b == ' ' || b == '\t' {
		wsIdx = lx.emitRaw(lx.scanWhitespace())
	}

	argIdx := -1
	var argTok token.Token
	if b := lx.cursor.Peek(); !lx.cursor.EOF() && b != '\n' && b != '\r' {
		argStart := lx.cursor.Point()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
			lx.cursor.Bump()
		}
		argTok = lx.make(token.PreprocessArgument, argStart)
		argIdx = lx.emitRaw(argTok)
	}

	lx.pre.apply(lx.bag, identTok, argTok, argIdx >= 0, lx.file.ID)

	if skippedBefore && lx.pre.isSkipping() {
		lx.out[identIdx].Kind = token.PreprocessSkipped
		if wsIdx >= 0 {
			lx.out[wsIdx].Kind = token.PreprocessSkipped
		}
		if argIdx >= 0 {
			lx.out[argIdx].Kind = token.PreprocessSkipped
		}
	}
}

// apply runs one directive through the state machine.
func (p *preprocessor) apply(bag *diag.Bag, ident, arg token.Token, hasArg bool, file source.FileID) {
	name := strings.TrimPrefix(ident.Content, "#")
	argName := ""
	if hasArg {
		if fields := strings.Fields(arg.Content); len(fields) > 0 {
			argName = fields[0]
		}
	}

	requireArg := func() bool {
		if argName == "" {
			bag.AddError(diag.PreMissingArgument, ident.After(), file,
				"#"+name+" requires an argument")
			return false
		}
		return true
	}

	switch name {
	case "if":
		cond := false
		if requireArg() {
			cond = p.has(argName)
		}
		p.stack = append(p.stack, conditionFrame{
			phase:      phaseIf,
			conditions: []bool{cond},
			pos:        ident.Pos,
			file:       file,
		})

	case "elseif":
		if len(p.stack) == 0 {
			bag.AddError(diag.PreUnmatchedElse, ident.Pos, file, "#elseif without #if")
			return
		}
		frame := &p.stack[len(p.stack)-1]
		if frame.phase == phaseElse {
			bag.AddError(diag.PreElseAfterElse, ident.Pos, file, "#elseif after #else")
			return
		}
		cond := false
		if requireArg() {
			cond = !frame.anyTaken() && p.has(argName)
		}
		frame.conditions = append(frame.conditions, cond)

	case "else":
		if len(p.stack) == 0 {
			bag.AddError(diag.PreUnmatchedElse, ident.Pos, file, "#else without #if")
			return
		}
		frame := &p.stack[len(p.stack)-1]
		if frame.phase == phaseElse {
			bag.AddError(diag.PreElseAfterElse, ident.Pos, file, "#else after #else")
			return
		}
		frame.conditions = append(frame.conditions, !frame.anyTaken())
		frame.phase = phaseElse

	case "endif":
		if len(p.stack) == 0 {
			bag.AddError(diag.PreUnmatchedEndif, ident.Pos, file, "#endif without #if")
			return
		}
		p.stack = p.stack[:len(p.stack)-1]

	case "define":
		if requireArg() && !p.isSkipping() {
			p.defined[argName] = struct{}{}
		}

	case "undefine":
		if requireArg() && !p.isSkipping() {
			delete(p.defined, argName)
		}

	default:
		bag.AddError(diag.PreUnknownTag, ident.Pos, file, "unknown preprocessor tag #"+name)
	}
}

func (p *preprocessor) has(name string) bool {
	_, ok := p.defined[name]
	return ok
}

// finish reports any condition still open at end of input.
func (p *preprocessor) finish(bag *diag.Bag) {
	for i := range p.stack {
		bag.AddWarning(diag.PreUnclosedCondition, p.stack[i].pos, p.stack[i].file,
			"#if is never closed")
	}
	p.stack = p.stack[:0]
}
