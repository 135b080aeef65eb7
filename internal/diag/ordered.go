package diag

// OrderedDiagnostic tags a diagnostic with an importance used to pick
// the best explanation among competing failed parse alternatives. The
// parser uses "how many tokens did the alternative consume before
// failing" as the importance.
type OrderedDiagnostic struct {
	Importance int
	Diag       Diagnostic
	Subs       []OrderedDiagnostic
}

// OrderedCollection accumulates candidates from competing alternatives.
type OrderedCollection struct {
	items []OrderedDiagnostic
}

// NewOrderedCollection creates an empty collection.
func NewOrderedCollection() *OrderedCollection {
	return &OrderedCollection{}
}

// Add records one candidate diagnostic at the given importance.
func (c *OrderedCollection) Add(importance int, d Diagnostic) {
	c.items = append(c.items, OrderedDiagnostic{Importance: importance, Diag: d})
}

// AddAll records a batch of diagnostics, all at the same importance.
func (c *OrderedCollection) AddAll(importance int, ds []Diagnostic) {
	for _, d := range ds {
		c.Add(importance, d)
	}
}

// AddOrdered records a pre-built candidate, subtree included.
func (c *OrderedCollection) AddOrdered(od OrderedDiagnostic) {
	c.items = append(c.items, od)
}

// Len returns the number of recorded candidates.
func (c *OrderedCollection) Len() int {
	return len(c.items)
}

// Max returns the highest importance present, or 0 for an empty
// collection.
func (c *OrderedCollection) Max() int {
	maxImp := 0
	for i := range c.items {
		if c.items[i].Importance > maxImp {
			maxImp = c.items[i].Importance
		}
	}
	return maxImp
}

// Compile yields the diagnostics tied for the maximum importance, in
// insertion order. Lower-ranked candidates are discarded. Sub-candidates
// of a surviving entry compile recursively into the diagnostic's
// sub-error tree.
func (c *OrderedCollection) Compile() []Diagnostic {
	if len(c.items) == 0 {
		return nil
	}
	maxImp := c.Max()
	out := make([]Diagnostic, 0, len(c.items))
	for i := range c.items {
		if c.items[i].Importance != maxImp {
			continue
		}
		d := c.items[i].Diag
		if len(c.items[i].Subs) > 0 {
			sub := OrderedCollection{items: c.items[i].Subs}
			d.Subs = append(d.Subs, sub.Compile()...)
		}
		out = append(out, d)
	}
	return out
}

// CommitTo compiles the collection and appends the survivors to bag.
func (c *OrderedCollection) CommitTo(bag *Bag) {
	for _, d := range c.Compile() {
		bag.Add(d)
	}
}
