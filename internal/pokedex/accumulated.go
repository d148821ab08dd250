package pokedex

import "github.com/alexisbeaulieu97/pokedex/internal/catalog"

// Catalog is the insertion-ordered, id-unique list of every entry seen so far.
// Once an id is present it is never removed or moved.
type Catalog struct {
	entries []catalog.Entry
	index   map[uint32]struct{}
}

// Merge appends, in order, the entries whose id has not been seen yet and
// returns how many were appended. Later duplicates are dropped, never
// overwritten.
func (c *Catalog) Merge(entries []catalog.Entry) int {
	if c.index == nil {
		c.index = make(map[uint32]struct{}, len(entries))
	}

	added := 0
	for _, entry := range entries {
		if _, seen := c.index[entry.ID]; seen {
			continue
		}
		c.index[entry.ID] = struct{}{}
		c.entries = append(c.entries, entry)
		added++
	}
	return added
}

// Contains reports whether an id is already present.
func (c Catalog) Contains(id uint32) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of accumulated entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the accumulated entries in insertion order.
func (c Catalog) Entries() []catalog.Entry {
	out := make([]catalog.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// clone returns a catalog that shares no mutable storage with c.
func (c Catalog) clone() Catalog {
	next := Catalog{
		entries: make([]catalog.Entry, len(c.entries)),
		index:   make(map[uint32]struct{}, len(c.index)),
	}
	copy(next.entries, c.entries)
	for id := range c.index {
		next.index[id] = struct{}{}
	}
	return next
}
