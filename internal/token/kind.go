package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the token stream. The tokenizer never emits
	// it; the parser synthesizes one when it reads past the last token.
	EOF Kind = iota

	// Identifier represents an identifier or keyword token.
	Identifier
	// LiteralNumber represents a decimal integer literal.
	LiteralNumber
	// LiteralFloat represents a floating-point literal.
	LiteralFloat
	// LiteralHex represents a 0x-prefixed integer literal.
	LiteralHex
	// LiteralBinary represents a 0b-prefixed integer literal.
	LiteralBinary
	// LiteralString represents a double-quoted string literal.
	LiteralString
	// LiteralCharacter represents a single-quoted character literal.
	LiteralCharacter
	// Operator represents any operator or punctuation token; the exact
	// operator is the token's Content.
	Operator
	// Whitespace represents a run of spaces and tabs.
	Whitespace
	// LineBreak represents a single line break.
	LineBreak
	// Comment represents a line comment, including the leading //.
	Comment
	// CommentMultiline represents a block comment, including delimiters.
	CommentMultiline
	// PreprocessIdentifier represents a '#'-prefixed directive word.
	PreprocessIdentifier
	// PreprocessArgument represents the rest of the line following a
	// preprocess identifier.
	PreprocessArgument
	// PreprocessSkipped marks a token inside an inactive #if region. The
	// original text and position are preserved.
	PreprocessSkipped
)

var kindNames = [...]string{
	EOF:                  "EOF",
	Identifier:           "Identifier",
	LiteralNumber:        "LiteralNumber",
	LiteralFloat:         "LiteralFloat",
	LiteralHex:           "LiteralHex",
	LiteralBinary:        "LiteralBinary",
	LiteralString:        "LiteralString",
	LiteralCharacter:     "LiteralCharacter",
	Operator:             "Operator",
	Whitespace:           "Whitespace",
	LineBreak:            "LineBreak",
	Comment:              "Comment",
	CommentMultiline:     "CommentMultiline",
	PreprocessIdentifier: "PreprocessIdentifier",
	PreprocessArgument:   "PreprocessArgument",
	PreprocessSkipped:    "PreprocessSkipped",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsTrivia reports whether the parser skips tokens of this kind:
// whitespace, line breaks, comments and all preprocessor tokens.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineBreak, Comment, CommentMultiline,
		PreprocessIdentifier, PreprocessArgument, PreprocessSkipped:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the kind is one of the literal kinds.
func (k Kind) IsLiteral() bool {
	switch k {
	case LiteralNumber, LiteralFloat, LiteralHex, LiteralBinary,
		LiteralString, LiteralCharacter:
		return true
	default:
		return false
	}
}

// AnalyzedKind is the semantic color category a token is tagged with
// during parsing; an external syntax highlighter consumes it.
type AnalyzedKind uint8

const (
	AnalyzedNone AnalyzedKind = iota
	AnalyzedKeyword
	AnalyzedType
	AnalyzedFunction
	AnalyzedField
	AnalyzedParameter
	AnalyzedVariable
	AnalyzedConstant
	AnalyzedLabel
	AnalyzedModifier
	AnalyzedAttribute
)

var analyzedNames = [...]string{
	AnalyzedNone:      "none",
	AnalyzedKeyword:   "keyword",
	AnalyzedType:      "type",
	AnalyzedFunction:  "function",
	AnalyzedField:     "field",
	AnalyzedParameter: "parameter",
	AnalyzedVariable:  "variable",
	AnalyzedConstant:  "constant",
	AnalyzedLabel:     "label",
	AnalyzedModifier:  "modifier",
	AnalyzedAttribute: "attribute",
}

func (k AnalyzedKind) String() string {
	if int(k) < len(analyzedNames) {
		return analyzedNames[k]
	}
	return "none"
}
