package parser

import (
	"slices"

	"ember/internal/source"
	"ember/internal/token"
)

// stream is the parser's owned, mutable view of the token list. The
// cursor is a plain index, so a restore point is an int; trivia (and
// preprocessor tokens) are skipped before every significant read. The
// list itself mutates during parsing: `>>` and `@word` tokens are split
// in place, which is observable on the final token list.
type stream struct {
	toks []token.Token
	i    int
	file source.FileID
	// last is the most recently consumed significant token, used to
	// anchor "expected X after Y" diagnostics and missing nodes.
	last token.Token
	// lastIdx is the list index of that token, for analyzed-kind tags.
	lastIdx int
	// steps counts cursor movements; the endless-loop guard trips on it.
	steps int
}

func newStream(toks []token.Token, file source.FileID) *stream {
	return &stream{toks: toks, file: file, lastIdx: -1}
}

// skip advances the cursor past trivia.
func (s *stream) skip() {
	for s.i < len(s.toks) && s.toks[s.i].Kind.IsTrivia() {
		s.i++
	}
}

// eof reports whether only trivia remains.
func (s *stream) eof() bool {
	s.skip()
	return s.i >= len(s.toks)
}

// eofToken synthesizes the EOF sentinel at the end of the list.
func (s *stream) eofToken() token.Token {
	pos := source.Position{}
	if n := len(s.toks); n > 0 {
		pos = s.toks[n-1].Pos.After()
	}
	return token.NewMissing(token.EOF, "", pos, s.file)
}

// cur returns the current significant token without consuming it.
func (s *stream) cur() token.Token {
	s.skip()
	if s.i >= len(s.toks) {
		return s.eofToken()
	}
	return s.toks[s.i]
}

// curIdx returns the list index of the current significant token, or -1
// at EOF.
func (s *stream) curIdx() int {
	s.skip()
	if s.i >= len(s.toks) {
		return -1
	}
	return s.i
}

// peekAt returns the n-th significant token after the current one
// (n == 0 is cur) without consuming anything.
func (s *stream) peekAt(n int) token.Token {
	s.skip()
	j := s.i
	for {
		for j < len(s.toks) && s.toks[j].Kind.IsTrivia() {
			j++
		}
		if j >= len(s.toks) {
			return s.eofToken()
		}
		if n == 0 {
			return s.toks[j]
		}
		n--
		j++
	}
}

// advance consumes and returns the current significant token.
func (s *stream) advance() token.Token {
	s.skip()
	s.steps++
	if s.i >= len(s.toks) {
		return s.eofToken()
	}
	tok := s.toks[s.i]
	s.last = tok
	s.lastIdx = s.i
	s.i++
	return tok
}

// mark records a restore point; reset rewinds to one.
func (s *stream) mark() int { return s.i }

func (s *stream) reset(m int) { s.i = m }

// consumedSince counts the significant tokens between a restore point
// and the cursor; the parser uses it as the importance of a failed
// alternative.
func (s *stream) consumedSince(m int) int {
	n := 0
	hi := s.i
	if hi > len(s.toks) {
		hi = len(s.toks)
	}
	for j := m; j < hi; j++ {
		if !s.toks[j].Kind.IsTrivia() {
			n++
		}
	}
	return n
}

// afterLast returns the zero-width position just past the last consumed
// token — the canonical anchor for missing nodes and late diagnostics.
func (s *stream) afterLast() source.Position {
	if s.lastIdx < 0 {
		if len(s.toks) > 0 {
			return s.toks[0].Pos.Before()
		}
		return source.Position{}
	}
	return s.last.After()
}

// tagLast sets the analyzed kind of the last consumed token.
func (s *stream) tagLast(kind token.AnalyzedKind) {
	if s.lastIdx >= 0 && s.lastIdx < len(s.toks) {
		s.toks[s.lastIdx].Analyzed = kind
	}
}

// splitCurrent splits the current significant token at byte n of its
// content, leaving the cursor on the first half. Used for `>>` inside
// nested generics and for combined `@word` tokens; reports false when
// the token cannot be split there.
func (s *stream) splitCurrent(n uint32) bool {
	idx := s.curIdx()
	if idx < 0 {
		return false
	}
	a, b, ok := s.toks[idx].Slice(n)
	if !ok {
		return false
	}
	s.toks[idx] = a
	s.toks = slices.Insert(s.toks, idx+1, b)
	return true
}
