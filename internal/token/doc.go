// Package token defines lexical token kinds for the Ember front-end.
// Invariants:
//   - Token.Content is a slice of the original source for tokens the
//     tokenizer produced; Token.Pos matches Content exactly.
//   - Keywords and built-in type names lex as Identifier; the parser and
//     later phases recognize them by Content.
//   - Operators share the single Operator kind; the spelling is Content.
//   - Synthetic tokens (Token.Synthetic) are fabricated by the parser for
//     recovery and carry a zero-width or synthesized position.
//   - Token.Analyzed is the only field mutated after creation.
package token
