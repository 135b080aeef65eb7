package ast

import (
	"strings"

	"ember/internal/token"
)

// UsingDefinition is `using "path";` or `using a.b.c;`. Path holds the
// string literal or the dotted identifier tokens.
type UsingDefinition struct {
	Info
	Path     []token.Token
	IsString bool
}

func (*UsingDefinition) defNode() {}

// PathString returns the requested unit as the source provider expects
// it: the unquoted string, or the identifiers joined with dots.
func (d *UsingDefinition) PathString() string {
	if d.IsString && len(d.Path) == 1 {
		return NewLiteral(d.Path[0], d.Source).StringValue
	}
	parts := make([]string, 0, len(d.Path))
	for _, t := range d.Path {
		parts = append(parts, t.Content)
	}
	return strings.Join(parts, ".")
}

// AliasDefinition is `alias Name = type;`.
type AliasDefinition struct {
	Info
	Attributes []*AttributeUsage
	Modifiers  []token.Token
	Name       token.Token
	Type       TypeInstance
}

func (*AliasDefinition) defNode() {}

// TemplateInfo is the `<T, U>` parameter list of a templated definition.
type TemplateInfo struct {
	Info
	Params []token.Token
}

func (*TemplateInfo) defNode() {}

// AttributeUsage is `[Name]` or `[Name(args)]` preceding a definition.
type AttributeUsage struct {
	Info
	Name token.Token
	Args *ArgumentListExpression // nil when absent
}

func (*AttributeUsage) defNode() {}

// ParameterDefinition is `modifiers* type name (= default)?`.
type ParameterDefinition struct {
	Info
	Modifiers []token.Token
	Type      TypeInstance
	Name      token.Token
	Default   Expression // nil when absent
}

func (*ParameterDefinition) defNode() {}

// HasModifier reports whether the parameter carries the named modifier.
func (d *ParameterDefinition) HasModifier(name string) bool {
	for _, m := range d.Modifiers {
		if m.Content == name {
			return true
		}
	}
	return false
}

// ParameterDefinitionCollection is the parenthesized parameter list.
type ParameterDefinitionCollection struct {
	Info
	Params []*ParameterDefinition
}

func (*ParameterDefinitionCollection) defNode() {}

// FieldDefinition is a struct field: `modifiers* type name (= value)?;`.
type FieldDefinition struct {
	Info
	Attributes []*AttributeUsage
	Modifiers  []token.Token
	Type       TypeInstance
	Name       token.Token
	Value      Expression // nil when absent
}

func (*FieldDefinition) defNode() {}

// FunctionDefinition is `modifiers* ret name(params) body`, at the top
// level or as a struct method.
type FunctionDefinition struct {
	Info
	Attributes []*AttributeUsage
	Modifiers  []token.Token
	Template   *TemplateInfo // nil when absent
	ReturnType TypeInstance
	Name       token.Token
	Params     *ParameterDefinitionCollection
	Body       Statement // *Block, or *MissingBlock after recovery
}

func (*FunctionDefinition) defNode() {}

// GeneralFunctionKind is the closed set of struct-member functions
// whose identity is not an ordinary identifier.
type GeneralFunctionKind uint8

const (
	GeneralIndexerGet GeneralFunctionKind = iota // []
	GeneralIndexerSet                            // []=
	GeneralDestructor                            // ~
)

func (k GeneralFunctionKind) String() string {
	switch k {
	case GeneralIndexerGet:
		return "[]"
	case GeneralIndexerSet:
		return "[]="
	case GeneralDestructor:
		return "~"
	}
	return "?"
}

// GeneralFunctionDefinition is an indexer-get, indexer-set or
// destructor member.
type GeneralFunctionDefinition struct {
	Info
	Attributes []*AttributeUsage
	Modifiers  []token.Token
	Kind       GeneralFunctionKind
	ReturnType TypeInstance // nil for the destructor
	Params     *ParameterDefinitionCollection
	Body       Statement
}

func (*GeneralFunctionDefinition) defNode() {}

// OperatorDefinition is `ret OP(params) body` where OP is one of the
// overloadable operators (including the call operator `()`).
type OperatorDefinition struct {
	Info
	Attributes []*AttributeUsage
	Modifiers  []token.Token
	ReturnType TypeInstance
	Operator   token.Token
	Params     *ParameterDefinitionCollection
	Body       Statement
}

func (*OperatorDefinition) defNode() {}

// ConstructorDefinition is `new(params) body` inside a struct.
type ConstructorDefinition struct {
	Info
	Attributes []*AttributeUsage
	Modifiers  []token.Token
	Params     *ParameterDefinitionCollection
	Body       Statement
}

func (*ConstructorDefinition) defNode() {}

// StructDefinition is a struct with its members grouped by kind.
type StructDefinition struct {
	Info
	Attributes     []*AttributeUsage
	Modifiers      []token.Token
	Name           token.Token
	Template       *TemplateInfo // nil when absent
	Fields         []*FieldDefinition
	Methods        []*FunctionDefinition
	GeneralMethods []*GeneralFunctionDefinition
	Operators      []*OperatorDefinition
	Constructors   []*ConstructorDefinition
}

func (*StructDefinition) defNode() {}
