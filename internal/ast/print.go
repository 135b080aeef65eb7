package ast

import (
	"fmt"
	"strings"

	"ember/internal/token"
)

// String renders nodes back to canonical source text. Trivia is not
// reproduced; re-tokenizing the output yields the node's token sequence
// modulo trivia and synthesized tokens.

func (e *Literal) String() string { return e.Tok.Content }

func (e *Identifier) String() string { return e.Tok.Content }

func (e *FieldAccess) String() string {
	return fmt.Sprintf("%s.%s", exprString(e.Target), e.Name.Content)
}

func (e *IndexCall) String() string {
	return fmt.Sprintf("%s[%s]", exprString(e.Target), exprString(e.Index))
}

func (e *AnyCall) String() string {
	return exprString(e.Target) + argsString(e.Args)
}

func (e *NewInstance) String() string {
	if e.HasArgs {
		return "new " + typeString(e.Type) + argsString(e.Args)
	}
	return "new " + typeString(e.Type)
}

func (e *BinaryOperatorCall) String() string {
	s := fmt.Sprintf("%s %s %s", exprString(e.Left), e.Op.Content, exprString(e.Right))
	if e.Parenthesized {
		return "(" + s + ")"
	}
	return s
}

func (e *UnaryOperatorCall) String() string {
	return e.Op.Content + exprString(e.Operand)
}

func (e *ArgumentExpression) String() string {
	var b strings.Builder
	for _, m := range e.Modifiers {
		b.WriteString(m.Content)
		b.WriteByte(' ')
	}
	b.WriteString(exprString(e.Value))
	return b.String()
}

func (e *ArgumentListExpression) String() string {
	parts := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		parts = append(parts, exprString(a))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (e *ListExpression) String() string {
	parts := make([]string, 0, len(e.Elements))
	for _, el := range e.Elements {
		parts = append(parts, exprString(el))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (e *Lambda) String() string {
	head := paramsString(e.Params) + " => "
	if e.Value != nil {
		return head + exprString(e.Value)
	}
	return head + stmtString(e.Body)
}

func (e *GetReference) String() string { return "&" + exprString(e.Target) }

func (e *Dereference) String() string { return "*" + exprString(e.Target) }

func (e *ManagedTypeCast) String() string {
	return "(" + typeString(e.Type) + ") " + exprString(e.Value)
}

func (e *Reinterpret) String() string {
	return exprString(e.Value) + " as " + typeString(e.Type)
}

func (e *SizeOf) String() string { return "sizeof(" + typeString(e.Type) + ")" }

func (*MissingExpression) String() string { return "<missing>" }

func (t *TypeInstanceSimple) String() string {
	if len(t.Generics) == 0 {
		return t.Name.Content
	}
	parts := make([]string, 0, len(t.Generics))
	for _, g := range t.Generics {
		parts = append(parts, typeString(g))
	}
	return t.Name.Content + "<" + strings.Join(parts, ", ") + ">"
}

func (t *TypeInstancePointer) String() string { return typeString(t.Inner) + "*" }

func (t *TypeInstanceFunction) String() string {
	parts := make([]string, 0, len(t.Params))
	for _, p := range t.Params {
		parts = append(parts, typeString(p))
	}
	prefix := ""
	if t.Closure != nil {
		prefix = "@" + t.Closure.Content + " "
	}
	return prefix + typeString(t.Return) + "(" + strings.Join(parts, ", ") + ")"
}

func (t *TypeInstanceStackArray) String() string {
	if t.Length == nil {
		return typeString(t.Element) + "[]"
	}
	return typeString(t.Element) + "[" + exprString(t.Length) + "]"
}

func (*MissingTypeInstance) String() string { return "<missing>" }

func (s *EmptyStatement) String() string { return ";" }

func (s *Block) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, st := range s.Statements {
		b.WriteString(stmtString(st))
		b.WriteByte(' ')
	}
	b.WriteString("}")
	return b.String()
}

func (s *IfElse) String() string {
	out := "if (" + exprString(s.Condition) + ") " + stmtString(s.Then)
	if s.Else != nil {
		out += " else " + stmtString(s.Else)
	}
	return out
}

func (s *While) String() string {
	return "while (" + exprString(s.Condition) + ") " + stmtString(s.Body)
}

func (s *For) String() string {
	init, cond, step := "", "", ""
	if s.Init != nil {
		init = strings.TrimSuffix(stmtString(s.Init), ";")
	}
	if s.Condition != nil {
		cond = exprString(s.Condition)
	}
	if s.Step != nil {
		step = strings.TrimSuffix(stmtString(s.Step), ";")
	}
	return "for (" + init + "; " + cond + "; " + step + ") " + stmtString(s.Body)
}

func (s *Return) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + exprString(s.Value) + ";"
}

func (s *Break) String() string { return "break;" }

func (s *Goto) String() string { return "goto " + s.Label.Content + ";" }

func (s *Crash) String() string {
	if s.Value == nil {
		return "crash;"
	}
	return "crash " + exprString(s.Value) + ";"
}

func (s *Delete) String() string { return "delete " + exprString(s.Value) + ";" }

func (s *Yield) String() string { return "yield;" }

func (s *InstructionLabelDeclaration) String() string { return s.Name.Content + ":" }

func (s *VariableDefinition) String() string {
	var b strings.Builder
	for _, m := range s.Modifiers {
		b.WriteString(m.Content)
		b.WriteByte(' ')
	}
	if s.Type != nil {
		b.WriteString(typeString(s.Type))
	} else {
		b.WriteString("var")
	}
	b.WriteByte(' ')
	b.WriteString(s.Name.Content)
	if s.Value != nil {
		b.WriteString(" = ")
		b.WriteString(exprString(s.Value))
	}
	b.WriteString(";")
	return b.String()
}

func (s *SimpleAssignment) String() string {
	return exprString(s.Target) + " = " + exprString(s.Value) + ";"
}

func (s *CompoundAssignment) String() string {
	return exprString(s.Target) + " " + s.Op.Content + " " + exprString(s.Value) + ";"
}

func (s *ShortOperatorCall) String() string {
	return exprString(s.Target) + s.Op.Content + ";"
}

func (s *ExpressionStatement) String() string { return exprString(s.Expr) + ";" }

func (*MissingStatement) String() string { return "<missing>" }

func (d *UsingDefinition) String() string {
	if d.IsString && len(d.Path) == 1 {
		return "using " + d.Path[0].Content + ";"
	}
	return "using " + d.PathString() + ";"
}

func (d *AliasDefinition) String() string {
	return defPrefix(d.Attributes, d.Modifiers) + "alias " + d.Name.Content + " = " + typeString(d.Type) + ";"
}

func (d *TemplateInfo) String() string {
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		parts = append(parts, p.Content)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func (d *AttributeUsage) String() string {
	if d.Args == nil {
		return "[" + d.Name.Content + "]"
	}
	return "[" + d.Name.Content + d.Args.String() + "]"
}

func (d *ParameterDefinition) String() string {
	var b strings.Builder
	for _, m := range d.Modifiers {
		b.WriteString(m.Content)
		b.WriteByte(' ')
	}
	b.WriteString(typeString(d.Type))
	b.WriteByte(' ')
	b.WriteString(d.Name.Content)
	if d.Default != nil {
		b.WriteString(" = ")
		b.WriteString(exprString(d.Default))
	}
	return b.String()
}

func (d *ParameterDefinitionCollection) String() string {
	parts := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		parts = append(parts, p.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (d *FieldDefinition) String() string {
	out := defPrefix(d.Attributes, d.Modifiers) + typeString(d.Type) + " " + d.Name.Content
	if d.Value != nil {
		out += " = " + exprString(d.Value)
	}
	return out + ";"
}

func (d *FunctionDefinition) String() string {
	out := defPrefix(d.Attributes, d.Modifiers) + typeString(d.ReturnType) + " " + d.Name.Content
	if d.Template != nil {
		out += d.Template.String()
	}
	return out + paramsString(d.Params) + " " + stmtString(d.Body)
}

func (d *GeneralFunctionDefinition) String() string {
	out := defPrefix(d.Attributes, d.Modifiers)
	if d.ReturnType != nil {
		out += typeString(d.ReturnType) + " "
	}
	return out + d.Kind.String() + paramsString(d.Params) + " " + stmtString(d.Body)
}

func (d *OperatorDefinition) String() string {
	return defPrefix(d.Attributes, d.Modifiers) + typeString(d.ReturnType) + " " +
		d.Operator.Content + paramsString(d.Params) + " " + stmtString(d.Body)
}

func (d *ConstructorDefinition) String() string {
	return defPrefix(d.Attributes, d.Modifiers) + "new" + paramsString(d.Params) + " " + stmtString(d.Body)
}

func (d *StructDefinition) String() string {
	var b strings.Builder
	b.WriteString(defPrefix(d.Attributes, d.Modifiers))
	b.WriteString("struct ")
	b.WriteString(d.Name.Content)
	if d.Template != nil {
		b.WriteString(d.Template.String())
	}
	b.WriteString(" { ")
	for _, f := range d.Fields {
		b.WriteString(f.String())
		b.WriteByte(' ')
	}
	for _, c := range d.Constructors {
		b.WriteString(c.String())
		b.WriteByte(' ')
	}
	for _, m := range d.Methods {
		b.WriteString(m.String())
		b.WriteByte(' ')
	}
	for _, g := range d.GeneralMethods {
		b.WriteString(g.String())
		b.WriteByte(' ')
	}
	for _, o := range d.Operators {
		b.WriteString(o.String())
		b.WriteByte(' ')
	}
	b.WriteString("}")
	return b.String()
}

func defPrefix(attrs []*AttributeUsage, mods []token.Token) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(a.String())
		b.WriteByte(' ')
	}
	for _, m := range mods {
		b.WriteString(m.Content)
		b.WriteByte(' ')
	}
	return b.String()
}

func exprString(e Expression) string {
	if e == nil {
		return "<nil>"
	}
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return "<expr>"
}

func stmtString(s Statement) string {
	if s == nil {
		return "<nil>"
	}
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return "<stmt>"
}

func typeString(t TypeInstance) string {
	if t == nil {
		return "<nil>"
	}
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return "<type>"
}

func argsString(a *ArgumentListExpression) string {
	if a == nil {
		return "()"
	}
	return a.String()
}

func paramsString(p *ParameterDefinitionCollection) string {
	if p == nil {
		return "()"
	}
	return p.String()
}
