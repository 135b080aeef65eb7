package parser

import (
	"testing"

	"ember/internal/ast"
	"ember/internal/diag"
)

func TestStructFullMemberSet(t *testing.T) {
	src := `struct List {
	int length;
	int* data;
	new(int capacity) { }
	~() { }
	int [](int index) { return 0; }
	void []=(int index, int value) { }
	List +(List a, List b) { return a; }
	int size() { return length; }
}`
	res := parseClean(t, src)
	s := res.Structs[0]

	if len(s.Fields) != 2 {
		t.Fatalf("fields = %d", len(s.Fields))
	}
	if len(s.Constructors) != 1 {
		t.Fatalf("constructors = %d", len(s.Constructors))
	}
	if len(s.Methods) != 1 || s.Methods[0].Name.Content != "size" {
		t.Fatalf("methods = %v", s.Methods)
	}
	if len(s.Operators) != 1 || s.Operators[0].Operator.Content != "+" {
		t.Fatalf("operators = %v", s.Operators)
	}

	if len(s.GeneralMethods) != 3 {
		t.Fatalf("general methods = %d", len(s.GeneralMethods))
	}
	kinds := map[ast.GeneralFunctionKind]bool{}
	for _, g := range s.GeneralMethods {
		kinds[g.Kind] = true
	}
	if !kinds[ast.GeneralDestructor] || !kinds[ast.GeneralIndexerGet] || !kinds[ast.GeneralIndexerSet] {
		t.Fatalf("kinds = %v", kinds)
	}
}

func TestStructTemplate(t *testing.T) {
	res := parseClean(t, "struct Pair<K, V> { K key; V value; }")
	s := res.Structs[0]
	if s.Template == nil || len(s.Template.Params) != 2 {
		t.Fatalf("template = %v", s.Template)
	}
	if s.Template.Params[0].Content != "K" || s.Template.Params[1].Content != "V" {
		t.Fatalf("params = %v", s.Template.Params)
	}
}

func TestEmptyTemplateWarns(t *testing.T) {
	_, bag := parseSource(t, "struct Box<> { int v; }")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynEmptyTemplate && d.Severity == diag.SevWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestCallOperatorDefinition(t *testing.T) {
	res := parseClean(t, "struct Adder { int ()(int a) { return a; } }")
	s := res.Structs[0]
	if len(s.Operators) != 1 || s.Operators[0].Operator.Content != "()" {
		t.Fatalf("operators = %v", s.Operators)
	}
}

func TestTopLevelOperator(t *testing.T) {
	res := parseClean(t, "Point +(Point a, Point b) { return a; }")
	if len(res.Operators) != 1 {
		t.Fatalf("operators = %d", len(res.Operators))
	}
	op := res.Operators[0]
	if op.Operator.Content != "+" || len(op.Params.Params) != 2 {
		t.Fatalf("operator = %+v", op)
	}
}

func TestTopLevelShiftOperator(t *testing.T) {
	res := parseClean(t, "Stream <<(Stream s, int v) { return s; }")
	if len(res.Operators) != 1 || res.Operators[0].Operator.Content != "<<" {
		t.Fatalf("operators = %v", res.Operators)
	}
}

func TestMultiplyOperatorVersusPointerReturn(t *testing.T) {
	// `int *(...)` defines operator '*'; `int* f(...)` is a function
	res := parseClean(t, "int *(int a, int b) { return 0; }")
	if len(res.Operators) != 1 || res.Operators[0].Operator.Content != "*" {
		t.Fatalf("operators = %v", res.Operators)
	}

	res = parseClean(t, "int* f(int a) { return 0; }")
	if len(res.Functions) != 1 {
		t.Fatalf("functions = %v", res.Functions)
	}
	if _, ok := res.Functions[0].ReturnType.(*ast.TypeInstancePointer); !ok {
		t.Fatalf("return type = %v", res.Functions[0].ReturnType)
	}
}

func TestStructModifiersAndAttributes(t *testing.T) {
	res := parseClean(t, "[Packed] export struct Header { int magic; }")
	s := res.Structs[0]
	if len(s.Attributes) != 1 || s.Attributes[0].Name.Content != "Packed" {
		t.Fatalf("attributes = %v", s.Attributes)
	}
	if len(s.Modifiers) != 1 || s.Modifiers[0].Content != "export" {
		t.Fatalf("modifiers = %v", s.Modifiers)
	}
}

func TestFieldModifierViolationKeepsField(t *testing.T) {
	res, bag := parseSource(t, "struct S { ref int x; }")
	if !bag.HasErrors() {
		t.Fatal("ref is not a field modifier")
	}
	s := res.Structs[0]
	if len(s.Fields) != 1 {
		t.Fatal("the field must survive the modifier violation")
	}
	if len(s.Fields[0].Modifiers) != 1 || s.Fields[0].Modifiers[0].Content != "ref" {
		t.Fatal("the offending modifier must stay on the definition")
	}
}

func TestUsingForms(t *testing.T) {
	res := parseClean(t, "using core.io;\nusing \"vendor/json\";\nint x = 1;")
	if len(res.Usings) != 2 {
		t.Fatalf("usings = %d", len(res.Usings))
	}
	if res.Usings[0].PathString() != "core.io" {
		t.Fatalf("dotted = %q", res.Usings[0].PathString())
	}
	if res.Usings[1].PathString() != "vendor/json" {
		t.Fatalf("string = %q", res.Usings[1].PathString())
	}
}

func TestAlias(t *testing.T) {
	res := parseClean(t, "alias Callback = void(int);")
	a := res.Aliases[0]
	if a.Name.Content != "Callback" {
		t.Fatalf("name = %q", a.Name.Content)
	}
	fn, ok := a.Type.(*ast.TypeInstanceFunction)
	if !ok || len(fn.Params) != 1 {
		t.Fatalf("type = %v", a.Type)
	}
}

func TestParameterRules(t *testing.T) {
	// defaults must stay trailing
	_, bag := parseSource(t, "int f(int a = 1, int b) { return 0; }")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynDefaultValueOrder {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v", bag.Items())
	}

	// 'this' only on the first parameter
	_, bag = parseSource(t, "int f(int a, this int b) { return 0; }")
	found = false
	for _, d := range bag.Items() {
		if d.Code == diag.SynThisParameterPosition {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
}

func TestLambdaParamsRejectDefaults(t *testing.T) {
	res, bag := parseSource(t, "int x = (int a = 1) => a;")
	if len(res.TopLevel) != 1 {
		t.Fatalf("top level = %d", len(res.TopLevel))
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynDefaultValueForbidden {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	def := res.TopLevel[0].(*ast.VariableDefinition)
	lam := def.Value.(*ast.Lambda)
	if lam.Params.Params[0].Default != nil {
		t.Fatal("forbidden default must not be stored")
	}
}
