package token_test

import (
	"testing"

	"ember/internal/source"
	"ember/internal/token"
)

func makeToken(kind token.Kind, content string, off uint32) token.Token {
	return token.Token{
		Kind:    kind,
		Content: content,
		Pos: source.NewPosition(
			source.Point{Offset: off, Line: 1, Col: off + 1},
			source.Point{Offset: off + uint32(len(content)), Line: 1, Col: off + 1 + uint32(len(content))},
		),
	}
}

func TestConcatAdjacent(t *testing.T) {
	a := makeToken(token.Operator, "(", 0)
	b := makeToken(token.Operator, ")", 1)

	joined, ok := a.Concat(b)
	if !ok {
		t.Fatal("adjacent tokens must concatenate")
	}
	if joined.Content != "()" {
		t.Fatalf("content = %q", joined.Content)
	}
	if joined.Pos.Start.Offset != 0 || joined.Pos.End.Offset != 2 {
		t.Fatalf("pos = %v", joined.Pos)
	}
}

func TestConcatGap(t *testing.T) {
	a := makeToken(token.Operator, "(", 0)
	b := makeToken(token.Operator, ")", 5)
	if _, ok := a.Concat(b); ok {
		t.Fatal("non-adjacent tokens must not concatenate")
	}
}

func TestSlice(t *testing.T) {
	tok := makeToken(token.Operator, ">>", 4)

	left, right, ok := tok.Slice(1)
	if !ok {
		t.Fatal("slice at 1 must work")
	}
	if left.Content != ">" || right.Content != ">" {
		t.Fatalf("contents = %q %q", left.Content, right.Content)
	}
	if left.Pos.End != right.Pos.Start {
		t.Fatal("halves must touch")
	}
	if right.Pos.Start.Col != tok.Pos.Start.Col+1 {
		t.Fatalf("right col = %d", right.Pos.Start.Col)
	}
}

func TestSliceBounds(t *testing.T) {
	tok := makeToken(token.Operator, ">>", 0)
	if _, _, ok := tok.Slice(0); ok {
		t.Fatal("slice at 0 must fail")
	}
	if _, _, ok := tok.Slice(2); ok {
		t.Fatal("slice at len must fail")
	}
}

func TestSliceInsideRune(t *testing.T) {
	tok := makeToken(token.Identifier, "héllo", 0)
	// byte 2 is the continuation byte of 'é'
	if _, _, ok := tok.Slice(2); ok {
		t.Fatal("slice inside a rune must yield a null partition")
	}
}

func TestNewMissing(t *testing.T) {
	at := source.NewPosition(source.Point{Offset: 9, Line: 2, Col: 3}, source.Point{Offset: 9, Line: 2, Col: 3})
	tok := token.NewMissing(token.Operator, "}", at, 0)
	if !tok.Synthetic {
		t.Fatal("missing tokens are synthetic")
	}
	if tok.Pos != at {
		t.Fatalf("pos = %v", tok.Pos)
	}
}

func TestMatchers(t *testing.T) {
	op := makeToken(token.Operator, "+=", 0)
	if !op.IsOperator() || !op.IsOperator("+=", "-=") || op.IsOperator("-") {
		t.Fatal("operator matching broken")
	}
	id := makeToken(token.Identifier, "while", 0)
	if !id.IsIdentifier() || !id.IsIdentifier("while") || id.IsIdentifier("for") {
		t.Fatal("identifier matching broken")
	}
	if op.IsIdentifier() || id.IsOperator() {
		t.Fatal("kind confusion")
	}
}

func TestTriviaKinds(t *testing.T) {
	trivia := []token.Kind{
		token.Whitespace, token.LineBreak, token.Comment, token.CommentMultiline,
		token.PreprocessIdentifier, token.PreprocessArgument, token.PreprocessSkipped,
	}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Errorf("%v must be trivia", k)
		}
	}
	solid := []token.Kind{token.Identifier, token.Operator, token.LiteralNumber, token.LiteralString}
	for _, k := range solid {
		if k.IsTrivia() {
			t.Errorf("%v must not be trivia", k)
		}
	}
}

func TestKeywordCatalogs(t *testing.T) {
	for _, kw := range []string{"using", "struct", "alias", "if", "crash", "temp", "export"} {
		if !token.IsKeyword(kw) {
			t.Errorf("%q must be a keyword", kw)
		}
	}
	for _, name := range []string{"int", "foo", "u8"} {
		if token.IsKeyword(name) {
			t.Errorf("%q must not be a keyword", name)
		}
	}
	if !token.IsBuiltinType("u32") || token.IsBuiltinType("banana") {
		t.Fatal("builtin type catalog broken")
	}
}
