package parser

import (
	"testing"

	"ember/internal/ast"
)

func TestMissingClosingBrace(t *testing.T) {
	res, bag := parseSource(t, "int f() { return 1;")
	if len(res.Functions) != 1 {
		t.Fatalf("functions = %d", len(res.Functions))
	}
	block, ok := res.Functions[0].Body.(*ast.Block)
	if !ok {
		t.Fatalf("body = %T", res.Functions[0].Body)
	}
	if !block.Close.Synthetic {
		t.Fatal("closing brace must be synthesized")
	}
	if !bag.HasErrors() {
		t.Fatal("missing '}' must be diagnosed")
	}
	// the fabricated token sits at end of input
	if block.Close.Pos.Start.Offset != 19 {
		t.Fatalf("close at %v, want offset 19", block.Close.Pos)
	}
}

func TestGarbageInBlock(t *testing.T) {
	res, bag := parseSource(t, "int f() { ??? ; return 1; }")
	if len(res.Functions) != 1 {
		t.Fatalf("functions = %d", len(res.Functions))
	}
	block := res.Functions[0].Body.(*ast.Block)

	if !hasMessage(bag, "Expected a statement") {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	var missing, returns int
	for _, s := range block.Statements {
		if ast.IsMissing(s) {
			missing++
		}
		if _, ok := s.(*ast.Return); ok {
			returns++
		}
	}
	if missing == 0 {
		t.Fatal("unparsed content must leave a MissingStatement")
	}
	if returns != 1 {
		t.Fatal("parsing must continue after the garbage")
	}
}

func TestMissingFunctionBody(t *testing.T) {
	res, bag := parseSource(t, "int f(int a)")
	if len(res.Functions) != 1 {
		t.Fatalf("functions = %d (diags %v)", len(res.Functions), bag.Items())
	}
	if !ast.IsMissing(res.Functions[0].Body) {
		t.Fatalf("body = %T, want missing", res.Functions[0].Body)
	}
	if !bag.HasErrors() {
		t.Fatal("missing body must be diagnosed")
	}
}

func TestMissingConditionRecovers(t *testing.T) {
	res, bag := parseSource(t, "int f() { if () { g(); } return 1; }")
	if !bag.HasErrors() {
		t.Fatal("missing condition must be diagnosed")
	}
	block := res.Functions[0].Body.(*ast.Block)
	ifStmt, ok := block.Statements[0].(*ast.IfElse)
	if !ok {
		t.Fatalf("statement = %T", block.Statements[0])
	}
	if !ast.IsMissing(ifStmt.Condition.(ast.Node)) {
		t.Fatalf("condition = %T, want missing", ifStmt.Condition)
	}
	if len(block.Statements) != 2 {
		t.Fatal("parsing must continue after the broken if")
	}
}

func TestMissingValueAfterAssign(t *testing.T) {
	res, bag := parseSource(t, "int x = ;")
	if !bag.HasErrors() {
		t.Fatal("missing value must be diagnosed")
	}
	def, ok := res.TopLevel[0].(*ast.VariableDefinition)
	if !ok {
		t.Fatalf("statement = %T", res.TopLevel[0])
	}
	if !ast.IsMissing(def.Value.(ast.Node)) {
		t.Fatalf("value = %T, want missing", def.Value)
	}
}

func TestStructGarbageMemberRecovers(t *testing.T) {
	res, bag := parseSource(t, "struct S { ??? ; int x; }")
	if !bag.HasErrors() {
		t.Fatal("garbage member must be diagnosed")
	}
	s := res.Structs[0]
	if len(s.Fields) != 1 || s.Fields[0].Name.Content != "x" {
		t.Fatalf("fields = %v; member recovery broken", s.Fields)
	}
}

func TestImportanceRanking(t *testing.T) {
	// the function interpretation consumed the most tokens before
	// failing, so only its explanation survives
	_, bag := parseSource(t, "int f(")
	if hasMessage(bag, "only call expressions") {
		t.Fatalf("low-importance explanation leaked: %v", bag.Items())
	}
}

func TestParserNeverLosesLaterItems(t *testing.T) {
	res, _ := parseSource(t, "@@@\nint ok() { return 1; }")
	if len(res.Functions) != 1 || res.Functions[0].Name.Content != "ok" {
		t.Fatalf("functions = %v; recovery must reach later items", res.Functions)
	}
}
