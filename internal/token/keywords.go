package token

import "slices"

// Keyword catalogs. Keywords are not separate token kinds: they lex as
// Identifier and the parser matches on Content, so user code may still
// use them as names where the grammar is unambiguous.

// DeclarationKeywords begin top-level declarations.
var DeclarationKeywords = []string{"using", "struct", "alias"}

// StatementKeywords appear in statement or expression position.
var StatementKeywords = []string{
	"if", "else", "while", "for", "return", "yield", "goto", "break",
	"crash", "delete", "new", "as", "var", "this", "sizeof",
}

// ModifierKeywords may prefix definitions and parameters.
var ModifierKeywords = []string{"inline", "const", "ref", "temp", "this"}

// ProtectionKeywords control visibility of definitions.
var ProtectionKeywords = []string{"export", "private"}

// BuiltinTypes is the closed list of built-in type names.
var BuiltinTypes = []string{
	"any", "void", "bool", "int", "float", "double", "char", "byte",
	"string",
	"u8", "u16", "u32", "u64",
	"i8", "i16", "i32", "i64",
	"f32", "f64",
}

// OverloadableOperators may be defined on structs; "()" is the call
// operator.
var OverloadableOperators = []string{
	"<<", ">>", "+", "-", "*", "/", "%", "&", "|", "^",
	"<", ">", "<=", ">=", "!=", "==", "&&", "||", "()",
}

// CompoundAssignOperators form compound assignment statements.
var CompoundAssignOperators = []string{"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^="}

// UnaryPrefixOperators may prefix a value.
var UnaryPrefixOperators = []string{"!", "~", "-", "+"}

// IncDecOperators form the short operator-call statements.
var IncDecOperators = []string{"++", "--"}

// multiCharOperators is the recognized multi-character operator set, in
// scan order (longest first within a shared prefix).
var multiCharOperators = []string{
	"<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "=>", "->",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
}

// singleCharOperators is the recognized single-character operator set.
const singleCharOperators = ".,;:(){}[]<>+-*/%&|^~!=?@"

// IsKeyword reports whether name appears in any keyword catalog.
func IsKeyword(name string) bool {
	return slices.Contains(DeclarationKeywords, name) ||
		slices.Contains(StatementKeywords, name) ||
		slices.Contains(ModifierKeywords, name) ||
		slices.Contains(ProtectionKeywords, name)
}

// IsBuiltinType reports whether name is a built-in type name.
func IsBuiltinType(name string) bool {
	return slices.Contains(BuiltinTypes, name)
}

// IsModifier reports whether name is a modifier or protection keyword.
func IsModifier(name string) bool {
	return slices.Contains(ModifierKeywords, name) ||
		slices.Contains(ProtectionKeywords, name)
}

// LookupOperator2 returns true when the two bytes form a recognized
// two-character operator.
func LookupOperator2(a, b byte) bool {
	probe := string([]byte{a, b})
	return slices.Contains(multiCharOperators, probe)
}

// LookupOperator1 returns true when b is a recognized single-character
// operator.
func LookupOperator1(b byte) bool {
	for i := 0; i < len(singleCharOperators); i++ {
		if singleCharOperators[i] == b {
			return true
		}
	}
	return false
}
