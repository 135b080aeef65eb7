package token

import (
	"fmt"

	"ember/internal/source"
)

// Token is a single lexeme with its location and analysis metadata.
// Content is a slice of the original source for tokens produced by the
// tokenizer; synthesized tokens carry fabricated content.
type Token struct {
	Kind      Kind
	Content   string
	Pos       source.Position
	File      source.FileID
	Synthetic bool
	// Analyzed is mutated during parsing to tag the token's semantic
	// color category. It never affects parsing decisions.
	Analyzed AnalyzedKind
}

// NewMissing fabricates a synthetic token at the given position, used by
// the parser to stand in for an expected-but-absent token.
func NewMissing(kind Kind, content string, at source.Position, file source.FileID) Token {
	return Token{
		Kind:      kind,
		Content:   content,
		Pos:       at,
		File:      file,
		Synthetic: true,
	}
}

// Loc returns the token's (position, file) pair.
func (t Token) Loc() source.Location {
	return source.NewLocation(t.Pos, t.File)
}

// After returns the zero-width position immediately after the token.
func (t Token) After() source.Position {
	return t.Pos.After()
}

// IsIdentifier reports whether the token is an identifier with one of
// the given spellings; with no arguments, any identifier matches.
func (t Token) IsIdentifier(names ...string) bool {
	if t.Kind != Identifier {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if t.Content == n {
			return true
		}
	}
	return false
}

// IsOperator reports whether the token is an operator with one of the
// given spellings; with no arguments, any operator matches.
func (t Token) IsOperator(names ...string) bool {
	if t.Kind != Operator {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if t.Content == n {
			return true
		}
	}
	return false
}

// Concat joins two adjacent tokens of the same kind into one spanning
// both. It reports false when the tokens do not touch.
func (t Token) Concat(other Token) (Token, bool) {
	if t.File != other.File || t.Pos.End != other.Pos.Start {
		return Token{}, false
	}
	return Token{
		Kind:      t.Kind,
		Content:   t.Content + other.Content,
		Pos:       source.NewPosition(t.Pos.Start, other.Pos.End),
		File:      t.File,
		Synthetic: t.Synthetic || other.Synthetic,
	}, true
}

// Slice splits the token at byte n of its content, yielding the two
// halves. It reports false when n would split outside the content or on
// a non-boundary (multi-byte rune), in which case the partition is null.
func (t Token) Slice(n uint32) (Token, Token, bool) {
	if n == 0 || n >= uint32(len(t.Content)) {
		return Token{}, Token{}, false
	}
	// refuse to split inside a UTF-8 sequence
	if t.Content[n]&0xC0 == 0x80 {
		return Token{}, Token{}, false
	}
	left, right, ok := t.Pos.CutAt(n)
	if !ok {
		return Token{}, Token{}, false
	}
	a := t
	a.Content = t.Content[:n]
	a.Pos = left
	b := t
	b.Content = t.Content[n:]
	b.Pos = right
	return a, b, true
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Content, t.Pos)
}
