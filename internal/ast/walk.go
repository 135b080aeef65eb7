package ast

// Walk traverses the tree rooted at n in pre-order, calling pred for
// every node. When pred returns false the whole traversal stops; Walk
// reports whether it ran to completion. Children are visited in source
// order; the enumeration is explicit per node kind.
func Walk(n Node, pred func(Node) bool) bool {
	if n == nil {
		return true
	}
	if !pred(n) {
		return false
	}
	for _, child := range children(n) {
		if !Walk(child, pred) {
			return false
		}
	}
	return true
}

// WalkFunctions traverses like Walk and additionally invokes onFunc for
// every compiled-function reference a node carries (calls, constructor
// calls, heap allocations, destructors, function references, scope
// cleanup). When a node's destructor and deallocator alias the same
// function, it is reported once.
func WalkFunctions(n Node, pred func(Node) bool, onFunc func(*FunctionRef)) bool {
	return Walk(n, func(node Node) bool {
		if !pred(node) {
			return false
		}
		for _, ref := range functionRefs(node) {
			if ref != nil {
				onFunc(ref)
			}
		}
		return true
	})
}

func functionRefs(n Node) []*FunctionRef {
	switch x := n.(type) {
	case *AnyCall:
		return []*FunctionRef{x.Function}
	case *IndexCall:
		return []*FunctionRef{x.Function}
	case *NewInstance:
		return []*FunctionRef{x.Constructor, x.Allocator}
	case *Identifier:
		return []*FunctionRef{x.Function}
	case *BinaryOperatorCall:
		return []*FunctionRef{x.Function}
	case *UnaryOperatorCall:
		return []*FunctionRef{x.Function}
	case *CompoundAssignment:
		return []*FunctionRef{x.Function}
	case *Block:
		return []*FunctionRef{x.Cleanup}
	case *Delete:
		if x.Destructor != nil && x.Destructor == x.Deallocator {
			return []*FunctionRef{x.Destructor}
		}
		return []*FunctionRef{x.Destructor, x.Deallocator}
	default:
		return nil
	}
}

// appendNode appends non-nil nodes; typed nils from interface fields
// are the caller's responsibility to avoid.
func appendNode(dst []Node, nodes ...Node) []Node {
	for _, n := range nodes {
		if n != nil {
			dst = append(dst, n)
		}
	}
	return dst
}

//nolint:gocyclo // one arm per node kind, by design
func children(n Node) []Node {
	var out []Node
	switch x := n.(type) {
	// statements
	case *EmptyStatement, *Break, *Yield, *Goto, *InstructionLabelDeclaration,
		*MissingStatement, *MissingExpression, *MissingTypeInstance:
		return nil
	case *Block:
		for _, s := range x.Statements {
			out = appendNode(out, s)
		}
	case *MissingBlock:
		for _, s := range x.Statements {
			out = appendNode(out, s)
		}
	case *IfElse:
		out = appendNode(out, x.Condition, x.Then, x.Else)
	case *While:
		out = appendNode(out, x.Condition, x.Body)
	case *For:
		out = appendNode(out, x.Init, x.Condition, x.Step, x.Body)
	case *Return:
		out = appendNode(out, x.Value)
	case *Crash:
		out = appendNode(out, x.Value)
	case *Delete:
		out = appendNode(out, x.Value)
	case *VariableDefinition:
		out = appendNode(out, x.Type, x.Value)
	case *SimpleAssignment:
		out = appendNode(out, x.Target, x.Value)
	case *CompoundAssignment:
		out = appendNode(out, x.Target, x.Value)
	case *ShortOperatorCall:
		out = appendNode(out, x.Target)
	case *ExpressionStatement:
		out = appendNode(out, x.Expr)

	// expressions
	case *Literal, *Identifier, *MissingLiteral, *MissingIdentifierExpression:
		return nil
	case *FieldAccess:
		out = appendNode(out, x.Target)
	case *IndexCall:
		out = appendNode(out, x.Target, x.Index)
	case *AnyCall:
		out = appendNode(out, x.Target)
		if x.Args != nil {
			out = appendNode(out, x.Args)
		}
	case *NewInstance:
		out = appendNode(out, x.Type)
		if x.Args != nil {
			out = appendNode(out, x.Args)
		}
	case *BinaryOperatorCall:
		out = appendNode(out, x.Left, x.Right)
	case *UnaryOperatorCall:
		out = appendNode(out, x.Operand)
	case *ArgumentExpression:
		out = appendNode(out, x.Value)
	case *MissingArgumentExpression:
		out = appendNode(out, x.Value)
	case *ArgumentListExpression:
		for _, a := range x.Args {
			out = appendNode(out, a)
		}
	case *ListExpression:
		for _, e := range x.Elements {
			out = appendNode(out, e)
		}
	case *Lambda:
		if x.Params != nil {
			out = appendNode(out, x.Params)
		}
		out = appendNode(out, x.Body, x.Value)
	case *GetReference:
		out = appendNode(out, x.Target)
	case *Dereference:
		out = appendNode(out, x.Target)
	case *ManagedTypeCast:
		out = appendNode(out, x.Type, x.Value)
	case *Reinterpret:
		out = appendNode(out, x.Value, x.Type)
	case *SizeOf:
		out = appendNode(out, x.Type)

	// types
	case *TypeInstanceSimple:
		for _, g := range x.Generics {
			out = appendNode(out, g)
		}
	case *TypeInstancePointer:
		out = appendNode(out, x.Inner)
	case *TypeInstanceFunction:
		out = appendNode(out, x.Return)
		for _, p := range x.Params {
			out = appendNode(out, p)
		}
	case *TypeInstanceStackArray:
		out = appendNode(out, x.Element, x.Length)

	// definitions
	case *UsingDefinition, *TemplateInfo:
		return nil
	case *AliasDefinition:
		out = attrNodes(out, x.Attributes)
		out = appendNode(out, x.Type)
	case *AttributeUsage:
		if x.Args != nil {
			out = appendNode(out, x.Args)
		}
	case *ParameterDefinition:
		out = appendNode(out, x.Type, x.Default)
	case *ParameterDefinitionCollection:
		for _, p := range x.Params {
			out = appendNode(out, p)
		}
	case *FieldDefinition:
		out = attrNodes(out, x.Attributes)
		out = appendNode(out, x.Type, x.Value)
	case *FunctionDefinition:
		out = attrNodes(out, x.Attributes)
		if x.Template != nil {
			out = appendNode(out, x.Template)
		}
		out = appendNode(out, x.ReturnType)
		if x.Params != nil {
			out = appendNode(out, x.Params)
		}
		out = appendNode(out, x.Body)
	case *GeneralFunctionDefinition:
		out = attrNodes(out, x.Attributes)
		out = appendNode(out, x.ReturnType)
		if x.Params != nil {
			out = appendNode(out, x.Params)
		}
		out = appendNode(out, x.Body)
	case *OperatorDefinition:
		out = attrNodes(out, x.Attributes)
		out = appendNode(out, x.ReturnType)
		if x.Params != nil {
			out = appendNode(out, x.Params)
		}
		out = appendNode(out, x.Body)
	case *ConstructorDefinition:
		out = attrNodes(out, x.Attributes)
		if x.Params != nil {
			out = appendNode(out, x.Params)
		}
		out = appendNode(out, x.Body)
	case *StructDefinition:
		out = attrNodes(out, x.Attributes)
		if x.Template != nil {
			out = appendNode(out, x.Template)
		}
		for _, f := range x.Fields {
			out = appendNode(out, f)
		}
		for _, c := range x.Constructors {
			out = appendNode(out, c)
		}
		for _, m := range x.Methods {
			out = appendNode(out, m)
		}
		for _, g := range x.GeneralMethods {
			out = appendNode(out, g)
		}
		for _, o := range x.Operators {
			out = appendNode(out, o)
		}
	}
	return out
}

func attrNodes(dst []Node, attrs []*AttributeUsage) []Node {
	for _, a := range attrs {
		dst = appendNode(dst, a)
	}
	return dst
}
