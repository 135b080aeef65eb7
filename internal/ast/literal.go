package ast

import (
	"strconv"
	"strings"

	"ember/internal/source"
	"ember/internal/token"
)

// NewLiteral decodes tok into a Literal node. Underscore separators are
// stripped before conversion; a literal with no remaining digits (bare
// "0x", underscore-only) decodes as zero. The tokenizer is responsible
// for diagnosing malformed literals, so decoding never reports.
func NewLiteral(tok token.Token, file source.FileID) *Literal {
	lit := &Literal{
		Info: MakeInfo(tok.Pos, file),
		Tok:  tok,
	}
	switch tok.Kind {
	case token.LiteralNumber:
		lit.Kind = LitInt
		lit.IntValue = decodeUint(stripUnderscores(tok.Content), 10)
	case token.LiteralHex:
		lit.Kind = LitHex
		lit.IntValue = decodeUint(stripUnderscores(trimBasePrefix(tok.Content)), 16)
	case token.LiteralBinary:
		lit.Kind = LitBinary
		lit.IntValue = decodeUint(stripUnderscores(trimBasePrefix(tok.Content)), 2)
	case token.LiteralFloat:
		lit.Kind = LitFloat
		if v, err := strconv.ParseFloat(stripUnderscores(tok.Content), 64); err == nil {
			lit.FloatValue = v
		}
	case token.LiteralString:
		lit.Kind = LitString
		lit.StringValue = decodeStringBody(tok.Content, '"')
	case token.LiteralCharacter:
		lit.Kind = LitChar
		body := decodeStringBody(tok.Content, '\'')
		for _, r := range body {
			lit.IntValue = uint64(r)
			break
		}
		lit.StringValue = body
	}
	return lit
}

func stripUnderscores(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

func trimBasePrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' {
		return s[2:]
	}
	return s
}

func decodeUint(digits string, base int) uint64 {
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0
	}
	return v
}

// decodeStringBody strips the surrounding quotes (tolerating an
// unterminated literal) and resolves escape sequences.
func decodeStringBody(content string, quote byte) string {
	if len(content) > 0 && content[0] == quote {
		content = content[1:]
	}
	if len(content) > 0 && content[len(content)-1] == quote {
		content = content[:len(content)-1]
	}
	if !strings.ContainsRune(content, '\\') {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c != '\\' || i+1 >= len(content) {
			b.WriteByte(c)
			continue
		}
		i++
		switch content[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+2 < len(content) {
				if v, err := strconv.ParseUint(content[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte('x')
		default:
			b.WriteByte(content[i])
		}
	}
	return b.String()
}
