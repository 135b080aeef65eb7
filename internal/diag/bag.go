package diag

import (
	"errors"

	"ember/internal/source"
)

// Bag collects diagnostics for one compilation. Positioned and
// context-less diagnostics are kept in separate ordered lists; appends
// de-duplicate by equality. A Bag also carries a stack of override
// scopes: a pushed scope receives all appends until it is applied
// (flushed into its parent) or dropped (discarded).
type Bag struct {
	positioned []Diagnostic
	global     []Diagnostic
	overrides  []*Bag
}

// NewBag creates an empty collection.
func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) target() *Bag {
	if n := len(b.overrides); n > 0 {
		return b.overrides[n-1]
	}
	return b
}

// Add appends d to the active scope. It reports false when an equal
// diagnostic was already present and the append was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	t := b.target()
	list := &t.positioned
	if !d.Positioned {
		list = &t.global
	}
	for i := range *list {
		if (*list)[i].Equal(d) {
			return false
		}
	}
	*list = append(*list, d)
	return true
}

// AddError is shorthand for Add of a positioned error.
func (b *Bag) AddError(code Code, pos source.Position, file source.FileID, msg string) {
	b.Add(New(SevError, code, pos, file, msg))
}

// AddWarning is shorthand for Add of a positioned warning.
func (b *Bag) AddWarning(code Code, pos source.Position, file source.FileID, msg string) {
	b.Add(New(SevWarning, code, pos, file, msg))
}

// AddGlobal is shorthand for Add of a context-less diagnostic.
func (b *Bag) AddGlobal(sev Severity, code Code, msg string) {
	b.Add(NewGlobal(sev, code, msg))
}

// Override is a pending scope created by PushOverride. Exactly one of
// Apply, Drop or Take must be called, and scopes must unwind in LIFO
// order; violating either is a programmer error and panics.
type Override struct {
	owner *Bag
	child *Bag
	done  bool
}

// PushOverride starts a scoped sub-collection.
func (b *Bag) PushOverride() *Override {
	child := NewBag()
	b.overrides = append(b.overrides, child)
	return &Override{owner: b, child: child}
}

func (o *Override) pop() {
	if o.done {
		panic("diag: override scope finished twice")
	}
	n := len(o.owner.overrides)
	if n == 0 || o.owner.overrides[n-1] != o.child {
		panic("diag: override scope popped out of order")
	}
	o.owner.overrides = o.owner.overrides[:n-1]
	o.done = true
}

// Apply commits the scope: its diagnostics flush into the enclosing
// scope (re-checking dedup there).
func (o *Override) Apply() {
	o.pop()
	for _, d := range o.child.global {
		o.owner.Add(d)
	}
	for _, d := range o.child.positioned {
		o.owner.Add(d)
	}
}

// Drop discards the scope and everything recorded in it.
func (o *Override) Drop() {
	o.pop()
}

// Take discards the scope but returns what it recorded, context-less
// entries first, so the caller can re-rank them.
func (o *Override) Take() []Diagnostic {
	o.pop()
	out := make([]Diagnostic, 0, len(o.child.global)+len(o.child.positioned))
	out = append(out, o.child.global...)
	out = append(out, o.child.positioned...)
	return out
}

// Positioned returns the positioned list in append order. Read-only.
func (b *Bag) Positioned() []Diagnostic {
	return b.positioned
}

// Global returns the context-less list in append order. Read-only.
func (b *Bag) Global() []Diagnostic {
	return b.global
}

// Items returns all diagnostics in print order: context-less first,
// then positioned.
func (b *Bag) Items() []Diagnostic {
	out := make([]Diagnostic, 0, len(b.global)+len(b.positioned))
	out = append(out, b.global...)
	out = append(out, b.positioned...)
	return out
}

// Len returns the number of committed diagnostics.
func (b *Bag) Len() int {
	return len(b.global) + len(b.positioned)
}

// HasErrors reports whether any committed diagnostic is error-level.
func (b *Bag) HasErrors() bool {
	for i := range b.global {
		if b.global[i].IsError() {
			return true
		}
	}
	for i := range b.positioned {
		if b.positioned[i].IsError() {
			return true
		}
	}
	return false
}

// CountAtLeast returns the number of diagnostics at or above sev.
func (b *Bag) CountAtLeast(sev Severity) int {
	n := 0
	for _, d := range b.Items() {
		if d.Severity >= sev {
			n++
		}
	}
	return n
}

// Err returns the first error-level diagnostic as a Go error, or nil.
func (b *Bag) Err() error {
	for _, d := range b.Items() {
		if d.IsError() {
			return errors.New(d.String())
		}
	}
	return nil
}

// Merge appends everything from other, with dedup.
func (b *Bag) Merge(other *Bag) {
	for _, d := range other.global {
		b.Add(d)
	}
	for _, d := range other.positioned {
		b.Add(d)
	}
}
