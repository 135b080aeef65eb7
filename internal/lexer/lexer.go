// Package lexer turns source text into the token stream the parser
// consumes. The conditional preprocessor is integrated: #if skipping is
// applied while tokens are produced, so every token of an inactive
// region is present in the stream but re-typed PreprocessSkipped.
package lexer

import (
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/token"
)

// Lexer scans one file. Use Tokenize; the type is exported for tests
// that want to drive scanning token by token.
type Lexer struct {
	file   *source.File
	cursor Cursor
	bag    *diag.Bag
	pre    preprocessor
	out    []token.Token
}

// New creates a lexer over file reporting into bag. defines seeds the
// preprocessor variable set.
func New(file *source.File, bag *diag.Bag, defines []string) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		bag:    bag,
		pre:    newPreprocessor(defines),
		out:    make([]token.Token, 0, len(file.Content)/4),
	}
}

// Tokenize scans the whole file and returns the token sequence,
// including whitespace, line breaks, comments and preprocessor tokens.
func Tokenize(file *source.File, bag *diag.Bag, defines []string) []token.Token {
	lx := New(file, bag, defines)
	for !lx.cursor.EOF() {
		lx.scanOne()
	}
	lx.pre.finish(lx.bag)
	return lx.out
}

// scanOne scans the next token (or directive line) and appends it.
func (lx *Lexer) scanOne() {
	b := lx.cursor.Peek()
	switch {
	case b == ' ' || b == '\t':
		lx.emit(lx.scanWhitespace())
	case b == '\n' || b == '\r':
		lx.emit(lx.scanLineBreak())
	case b == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
		lx.emit(lx.scanComment())
	case b == '#':
		lx.scanDirectiveLine()
	case b == '"':
		lx.emit(lx.scanString())
	case b == '\'':
		lx.emit(lx.scanCharacter())
	case isDec(b):
		lx.emit(lx.scanNumber())
	case isIdentStart(b):
		lx.emit(lx.scanIdentifier())
	default:
		lx.scanOperator()
	}
}

// emit appends tok, re-typing it when the preprocessor is skipping.
func (lx *Lexer) emit(tok token.Token) {
	if lx.pre.isSkipping() {
		tok.Kind = token.PreprocessSkipped
	}
	lx.out = append(lx.out, tok)
}

// emitRaw appends tok without consulting the skip state; directive
// token typing is decided by the caller.
func (lx *Lexer) emitRaw(tok token.Token) int {
	lx.out = append(lx.out, tok)
	return len(lx.out) - 1
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Point()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.make(token.Whitespace, start)
}

func (lx *Lexer) scanLineBreak() token.Token {
	start := lx.cursor.Point()
	// one token per line break; lone '\r' counts as a break too
	if lx.cursor.Peek() == '\r' {
		lx.cursor.Bump()
		lx.cursor.Eat('\n')
	} else {
		lx.cursor.Bump()
	}
	return lx.make(token.LineBreak, start)
}

func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Point()
	lx.cursor.Bump() // '/'
	if lx.cursor.Peek() == '/' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return lx.make(token.Comment, start)
	}

	// block comment, nesting allowed
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	pos := lx.cursor.PosFrom(start)
	if depth > 0 {
		lx.bag.AddError(diag.LexUnterminatedBlockComment, pos, lx.file.ID, "unterminated block comment")
	}
	return lx.make(token.CommentMultiline, start)
}

func (lx *Lexer) scanIdentifier() token.Token {
	start := lx.cursor.Point()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.make(token.Identifier, start)
}

// scanOperator scans the greedy multi-character operator set, falling
// back to single characters; unknown bytes are reported and dropped so
// scanning can continue.
func (lx *Lexer) scanOperator() {
	start := lx.cursor.Point()
	if b0, b1, ok := lx.cursor.Peek2(); ok && token.LookupOperator2(b0, b1) {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.emit(lx.make(token.Operator, start))
		return
	}
	b := lx.cursor.Bump()
	if token.LookupOperator1(b) {
		lx.emit(lx.make(token.Operator, start))
		return
	}
	pos := lx.cursor.PosFrom(start)
	lx.bag.AddError(diag.LexUnknownChar, pos, lx.file.ID, "unknown character "+lx.cursor.Text(pos))
}

func (lx *Lexer) make(kind token.Kind, start source.Point) token.Token {
	pos := lx.cursor.PosFrom(start)
	return token.Token{
		Kind:    kind,
		Content: lx.cursor.Text(pos),
		Pos:     pos,
		File:    lx.file.ID,
	}
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}
