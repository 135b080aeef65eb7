package ast

import (
	"testing"

	"ember/internal/source"
	"ember/internal/token"
)

func litToken(kind token.Kind, content string) token.Token {
	return token.Token{
		Kind:    kind,
		Content: content,
		Pos: source.NewPosition(
			source.Point{Offset: 0, Line: 1, Col: 1},
			source.Point{Offset: uint32(len(content)), Line: 1, Col: 1 + uint32(len(content))},
		),
	}
}

func TestLiteralDecoding(t *testing.T) {
	tests := []struct {
		name    string
		kind    token.Kind
		content string
		wantInt uint64
	}{
		{"decimal", token.LiteralNumber, "42", 42},
		{"decimal with separators", token.LiteralNumber, "10_000", 10000},
		{"underscore only", token.LiteralNumber, "___", 0},
		{"hex", token.LiteralHex, "0xFF", 255},
		{"hex with separators", token.LiteralHex, "0xF_F", 255},
		{"bare hex", token.LiteralHex, "0x", 0},
		{"binary", token.LiteralBinary, "0b101", 5},
		{"bare binary", token.LiteralBinary, "0b", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := NewLiteral(litToken(tt.kind, tt.content), 0)
			if lit.IntValue != tt.wantInt {
				t.Fatalf("IntValue = %d, want %d", lit.IntValue, tt.wantInt)
			}
		})
	}
}

func TestFloatDecoding(t *testing.T) {
	lit := NewLiteral(litToken(token.LiteralFloat, "3.25"), 0)
	if lit.Kind != LitFloat || lit.FloatValue != 3.25 {
		t.Fatalf("float = %v", lit.FloatValue)
	}
	lit = NewLiteral(litToken(token.LiteralFloat, "1_0.5"), 0)
	if lit.FloatValue != 10.5 {
		t.Fatalf("float = %v", lit.FloatValue)
	}
}

func TestStringDecoding(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{`"plain"`, "plain"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote\""`, `quote"`},
		{`"hex\x41"`, "hexA"},
		{`"unterminated`, "unterminated"},
	}
	for _, tt := range tests {
		lit := NewLiteral(litToken(token.LiteralString, tt.content), 0)
		if lit.StringValue != tt.want {
			t.Errorf("%q decoded to %q, want %q", tt.content, lit.StringValue, tt.want)
		}
	}
}

func TestCharDecoding(t *testing.T) {
	lit := NewLiteral(litToken(token.LiteralCharacter, `'A'`), 0)
	if lit.Kind != LitChar || lit.IntValue != 'A' {
		t.Fatalf("char = %d", lit.IntValue)
	}
	lit = NewLiteral(litToken(token.LiteralCharacter, `'\n'`), 0)
	if lit.IntValue != '\n' {
		t.Fatalf("escaped char = %d", lit.IntValue)
	}
}
