package loader

import "github.com/TJurijs/5esrd-api/rules"

// collector keeps entities unique by rules.NormalizeKey while preserving first-seen order.
type collector[T rules.Entity] struct {
	items     []T
	index     map[string]int
	keepFirst bool
}

func newCollector[T rules.Entity](keepFirst bool) *collector[T] {
	return &collector[T]{index: make(map[string]int), keepFirst: keepFirst}
}

// has reports whether an entity with this name was already collected.
func (c *collector[T]) has(name string) bool {
	_, ok := c.index[rules.NormalizeKey(name)]
	return ok
}

func (c *collector[T]) add(v T) {
	key := rules.NormalizeKey(v.EntityName())

	if i, ok := c.index[key]; ok {
		if !c.keepFirst {
			c.items[i] = v
		}
		return
	}

	c.index[key] = len(c.items)
	c.items = append(c.items, v)
}

func (c *collector[T]) result() []T {
	if c.items == nil {
		return []T{}
	}
	return c.items
}
