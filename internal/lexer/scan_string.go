package lexer

import (
	"ember/internal/diag"
	"ember/internal/token"
)

// recognized escape characters after '\'
func isEscapeChar(b byte) bool {
	switch b {
	case 'n', 't', 'r', '0', '\\', '"', '\'', 'x':
		return true
	default:
		return false
	}
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Point()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.make(token.LiteralString, start)
		}
		if b == '\n' {
			pos := lx.cursor.PosFrom(start)
			lx.bag.AddError(diag.LexUnterminatedString, pos, lx.file.ID, "newline in string literal")
			return lx.make(token.LiteralString, start)
		}
		if b == '\\' {
			escStart := lx.cursor.Point()
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			e := lx.cursor.Bump()
			if !isEscapeChar(e) {
				pos := lx.cursor.PosFrom(escStart)
				lx.bag.AddWarning(diag.LexInvalidEscape, pos, lx.file.ID, "unknown escape sequence "+lx.cursor.Text(pos))
			}
			continue
		}
		lx.cursor.Bump()
	}
	pos := lx.cursor.PosFrom(start)
	lx.bag.AddError(diag.LexUnterminatedString, pos, lx.file.ID, "unterminated string literal")
	return lx.make(token.LiteralString, start)
}

func (lx *Lexer) scanCharacter() token.Token {
	start := lx.cursor.Point()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			return lx.make(token.LiteralCharacter, start)
		}
		if b == '\n' {
			pos := lx.cursor.PosFrom(start)
			lx.bag.AddError(diag.LexUnterminatedChar, pos, lx.file.ID, "newline in character literal")
			return lx.make(token.LiteralCharacter, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
		}
		lx.cursor.Bump()
	}
	pos := lx.cursor.PosFrom(start)
	lx.bag.AddError(diag.LexUnterminatedChar, pos, lx.file.ID, "unterminated character literal")
	return lx.make(token.LiteralCharacter, start)
}
