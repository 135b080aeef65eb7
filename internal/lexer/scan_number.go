package lexer

import (
	"ember/internal/diag"
	"ember/internal/token"
)

// Numeric forms:
//   - [0-9_]+                  -> LiteralNumber
//   - [0-9_]+ '.' [0-9_]+      -> LiteralFloat (dot must be followed by a digit)
//   - 0x[0-9a-fA-F_]+          -> LiteralHex
//   - 0b[01_]+                 -> LiteralBinary
//
// Underscores are digit separators and legal anywhere between digits.
// A bare "0x"/"0b" is reported and the literal reads as zero downstream.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Point()

	if lx.cursor.Peek() == '0' {
		if b1 := lx.cursor.PeekAt(1); b1 == 'x' || b1 == 'X' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits := 0
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				if lx.cursor.Peek() != '_' {
					digits++
				}
				lx.cursor.Bump()
			}
			tok := lx.make(token.LiteralHex, start)
			if digits == 0 {
				lx.bag.AddError(diag.LexInvalidHexLiteral, tok.Pos, lx.file.ID, "Invalid hex literal")
			}
			return tok
		}
		if b1 := lx.cursor.PeekAt(1); b1 == 'b' || b1 == 'B' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits := 0
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' || lx.cursor.Peek() == '_' {
				if lx.cursor.Peek() != '_' {
					digits++
				}
				lx.cursor.Bump()
			}
			tok := lx.make(token.LiteralBinary, start)
			if digits == 0 {
				lx.bag.AddError(diag.LexInvalidBinaryLiteral, tok.Pos, lx.file.ID, "Invalid binary literal")
			}
			return tok
		}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// fraction only when a digit follows the dot; "1." stays Number + '.'
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		return lx.make(token.LiteralFloat, start)
	}

	return lx.make(token.LiteralNumber, start)
}
