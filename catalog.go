package orbtrade

// Catalog maps item names to unit prices. It remembers the order in which
// names were first added, so that search results and exports are stable:
// baseline items come first, items introduced by an override or an import
// keep their document order.
//
// A name is a case-sensitive key. Price zero is a valid price (a free or
// worthless item) and is distinct from the name being absent.
type Catalog struct {
	names []string
	index map[string]Amount
}

// NewCatalog returns a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		names: make([]string, 0),
		index: make(map[string]Amount),
	}
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Get returns the unit price for name, and whether the name is present.
func (c *Catalog) Get(name string) (Amount, bool) {
	price, ok := c.index[name]
	return price, ok
}

// Set records the unit price for name. A new name is appended to the
// enumeration order, an existing one keeps its position.
func (c *Catalog) Set(name string, price Amount) {
	if _, ok := c.index[name]; !ok {
		c.names = append(c.names, name)
	}
	c.index[name] = price
}

func (c *Catalog) Len() int { return len(c.names) }

// Names returns the item names in enumeration order. The slice is a copy.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Clone returns an independent copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	o := NewCatalog()
	for _, name := range c.names {
		o.Set(name, c.index[name])
	}
	return o
}

// Merge overlays o onto c with override semantics: a name present in both
// takes o's price, a name only in o is appended after the existing ones.
// This is the startup combination of the baseline dataset with the persisted
// override snapshot, as opposed to the destructive replacement performed by
// an import.
func (c *Catalog) Merge(o *Catalog) {
	for _, name := range o.names {
		c.Set(name, o.index[name])
	}
}
