package diag_test

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
)

func positioned(msg string, off uint32) diag.Diagnostic {
	pos := source.NewPosition(
		source.Point{Offset: off, Line: 1, Col: off + 1},
		source.Point{Offset: off + 1, Line: 1, Col: off + 2},
	)
	return diag.New(diag.SevError, diag.SynExpectedStatement, pos, 0, msg)
}

func TestAddDedup(t *testing.T) {
	bag := diag.NewBag()
	d := positioned("boom", 3)

	if !bag.Add(d) {
		t.Fatal("first add must succeed")
	}
	if bag.Add(d) {
		t.Fatal("second add of an equal diagnostic must be dropped")
	}
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}

	// different position is a different diagnostic
	if !bag.Add(positioned("boom", 7)) {
		t.Fatal("different position must be kept")
	}
}

func TestPrintOrder(t *testing.T) {
	bag := diag.NewBag()
	bag.Add(positioned("late", 1))
	bag.AddGlobal(diag.SevWarning, diag.UnknownCode, "global")

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].Positioned || !items[1].Positioned {
		t.Fatal("context-less diagnostics must print first")
	}
}

func TestHasErrorsAndErr(t *testing.T) {
	bag := diag.NewBag()
	bag.AddGlobal(diag.SevWarning, diag.UnknownCode, "warn")
	if bag.HasErrors() {
		t.Fatal("warnings are not errors")
	}
	if bag.Err() != nil {
		t.Fatal("Err must be nil without errors")
	}

	bag.Add(positioned("bad", 0))
	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
	if bag.Err() == nil {
		t.Fatal("Err must surface the first error")
	}
}

func TestOverrideApply(t *testing.T) {
	bag := diag.NewBag()
	ov := bag.PushOverride()
	bag.Add(positioned("scoped", 2))

	if bag.Len() != 0 {
		t.Fatal("scoped diagnostics must not be visible before apply")
	}
	ov.Apply()
	if bag.Len() != 1 {
		t.Fatalf("len after apply = %d, want 1", bag.Len())
	}
}

func TestOverrideDrop(t *testing.T) {
	bag := diag.NewBag()
	ov := bag.PushOverride()
	bag.Add(positioned("scoped", 2))
	ov.Drop()
	if bag.Len() != 0 {
		t.Fatalf("len after drop = %d, want 0", bag.Len())
	}
}

func TestOverrideNesting(t *testing.T) {
	bag := diag.NewBag()
	outer := bag.PushOverride()
	bag.Add(positioned("outer", 1))
	inner := bag.PushOverride()
	bag.Add(positioned("inner", 2))

	inner.Apply() // flushes into outer's scope
	if bag.Len() != 0 {
		t.Fatal("inner apply must not reach the base collection")
	}
	outer.Apply()
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestOverrideMismatchPanics(t *testing.T) {
	bag := diag.NewBag()
	outer := bag.PushOverride()
	_ = bag.PushOverride()

	defer func() {
		if recover() == nil {
			t.Fatal("popping out of order must panic")
		}
	}()
	outer.Apply()
}

func TestOverrideTake(t *testing.T) {
	bag := diag.NewBag()
	ov := bag.PushOverride()
	bag.Add(positioned("kept", 4))

	got := ov.Take()
	if len(got) != 1 || got[0].Message != "kept" {
		t.Fatalf("take = %v", got)
	}
	if bag.Len() != 0 {
		t.Fatal("take must not commit")
	}
}

func TestSeverityStrings(t *testing.T) {
	tests := []struct {
		sev  diag.Severity
		want string
	}{
		{diag.SevError, "ERROR"},
		{diag.SevWarning, "WARNING"},
		{diag.SevInfo, "INFO"},
		{diag.SevHint, "HINT"},
		{diag.SevOptimization, "OPTIMIZATION"},
		{diag.SevFailedOptimization, "FAILED OPTIMIZATION"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestSubDiagnostics(t *testing.T) {
	d := positioned("parent", 0).WithSub(positioned("child", 1))
	if len(d.Subs) != 1 {
		t.Fatal("sub not attached")
	}

	bag := diag.NewBag()
	bag.Add(d)
	// same parent with a different sub tree is not a duplicate
	if !bag.Add(positioned("parent", 0)) {
		t.Fatal("sub trees must participate in equality")
	}
}
