package diag_test

import (
	"testing"

	"ember/internal/diag"
)

func TestOrderedCompileKeepsMax(t *testing.T) {
	ord := diag.NewOrderedCollection()
	ord.Add(1, positioned("shallow", 0))
	ord.Add(5, positioned("deep", 1))
	ord.Add(5, positioned("also deep", 2))
	ord.Add(3, positioned("middle", 3))

	got := ord.Compile()
	if len(got) != 2 {
		t.Fatalf("compiled %d, want 2", len(got))
	}
	if got[0].Message != "deep" || got[1].Message != "also deep" {
		t.Fatalf("compiled = %v", got)
	}

	// every survivor is at the maximum importance (nothing below max)
	if ord.Max() != 5 {
		t.Fatalf("max = %d", ord.Max())
	}
}

func TestOrderedCompileEmpty(t *testing.T) {
	ord := diag.NewOrderedCollection()
	if got := ord.Compile(); got != nil {
		t.Fatalf("empty compile = %v", got)
	}
}

func TestOrderedSubs(t *testing.T) {
	ord := diag.NewOrderedCollection()
	ord.AddOrdered(diag.OrderedDiagnostic{
		Importance: 2,
		Diag:       positioned("outer", 0),
		Subs: []diag.OrderedDiagnostic{
			{Importance: 1, Diag: positioned("low sub", 1)},
			{Importance: 4, Diag: positioned("high sub", 2)},
		},
	})

	got := ord.Compile()
	if len(got) != 1 {
		t.Fatalf("compiled %d, want 1", len(got))
	}
	if len(got[0].Subs) != 1 || got[0].Subs[0].Message != "high sub" {
		t.Fatalf("subs = %v", got[0].Subs)
	}
}

func TestOrderedCommitTo(t *testing.T) {
	ord := diag.NewOrderedCollection()
	ord.Add(2, positioned("keep", 0))
	ord.Add(1, positioned("drop", 1))

	bag := diag.NewBag()
	ord.CommitTo(bag)
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}
	if bag.Positioned()[0].Message != "keep" {
		t.Fatal("wrong survivor")
	}
}
