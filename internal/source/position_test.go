package source

import "testing"

func pt(off, line, col uint32) Point {
	return Point{Offset: off, Line: line, Col: col}
}

func TestPositionCover(t *testing.T) {
	a := NewPosition(pt(2, 1, 3), pt(5, 1, 6))
	b := NewPosition(pt(8, 2, 1), pt(12, 2, 5))

	got := a.Cover(b)
	if got.Start.Offset != 2 || got.End.Offset != 12 {
		t.Fatalf("Cover = %v, want 2..12", got)
	}

	// covering in the other direction gives the same bounding box
	got = b.Cover(a)
	if got.Start.Offset != 2 || got.End.Offset != 12 {
		t.Fatalf("reverse Cover = %v, want 2..12", got)
	}
}

func TestPositionCoverUnknown(t *testing.T) {
	a := NewPosition(pt(2, 1, 3), pt(5, 1, 6))

	if got := a.Cover(UnknownPosition); got != a {
		t.Fatalf("Cover(Unknown) = %v, want %v", got, a)
	}
	if got := UnknownPosition.Cover(a); got != a {
		t.Fatalf("Unknown.Cover(a) = %v, want %v", got, a)
	}
}

func TestPositionContains(t *testing.T) {
	outer := NewPosition(pt(0, 1, 1), pt(10, 1, 11))
	inner := NewPosition(pt(3, 1, 4), pt(7, 1, 8))

	if !outer.Contains(inner) {
		t.Fatal("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Fatal("inner should not contain outer")
	}
	if !outer.Contains(outer) {
		t.Fatal("a position contains itself")
	}
	// Unknown bypasses ordering checks
	if !outer.Contains(UnknownPosition) || !UnknownPosition.Contains(outer) {
		t.Fatal("Unknown must bypass containment checks")
	}
}

func TestPositionBeforeAfter(t *testing.T) {
	p := NewPosition(pt(2, 1, 3), pt(5, 1, 6))

	before := p.Before()
	if !before.Empty() || before.Start != p.Start {
		t.Fatalf("Before = %v", before)
	}
	after := p.After()
	if !after.Empty() || after.Start != p.End {
		t.Fatalf("After = %v", after)
	}
}

func TestUnknownPositionIdentity(t *testing.T) {
	if !UnknownPosition.IsUnknown() {
		t.Fatal("UnknownPosition must be unknown")
	}
	if NewPosition(pt(0, 1, 1), pt(0, 1, 1)).IsUnknown() {
		t.Fatal("a real position must not be unknown")
	}
}

func TestPositionCutAt(t *testing.T) {
	p := NewPosition(pt(10, 2, 4), pt(14, 2, 8))

	left, right, ok := p.CutAt(2)
	if !ok {
		t.Fatal("CutAt(2) should work")
	}
	if left.Start.Offset != 10 || left.End.Offset != 12 {
		t.Fatalf("left = %v", left)
	}
	if right.Start.Offset != 12 || right.End.Offset != 14 {
		t.Fatalf("right = %v", right)
	}
	if right.Start.Col != 6 {
		t.Fatalf("right col = %d, want 6", right.Start.Col)
	}

	if _, _, ok := p.CutAt(99); ok {
		t.Fatal("CutAt out of range must fail")
	}
}
