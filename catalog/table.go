package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/TJurijs/5esrd-api/rules"
)

// table is one immutable, sorted category with a name index.
type table[T rules.Entity] struct {
	items []T
	byKey map[string]int
	names []string
}

func newTable[T rules.Entity](items []T, compare func(a, b T) int) table[T] {
	sorted := slices.Clone(items)
	if compare == nil {
		compare = byName[T]
	}
	slices.SortStableFunc(sorted, compare)

	t := table[T]{
		items: sorted,
		byKey: make(map[string]int, len(sorted)),
		names: make([]string, len(sorted)),
	}

	for i, item := range sorted {
		key := rules.NormalizeKey(item.EntityName())
		if _, ok := t.byKey[key]; !ok {
			t.byKey[key] = i
		}
		t.names[i] = item.EntityName()
	}

	return t
}

func (t table[T]) get(name string) (T, bool) {
	i, ok := t.byKey[rules.NormalizeKey(name)]
	if !ok {
		var zero T
		return zero, false
	}
	return t.items[i], true
}

func (t table[T]) filter(keep func(T) bool) []T {
	out := []T{}
	for _, item := range t.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (t table[T]) all() []T {
	return append([]T{}, t.items...)
}

// byName orders case-insensitively, falling back to the exact name for a stable total order.
func byName[T rules.Entity](a, b T) int {
	return cmp.Or(
		strings.Compare(strings.ToLower(a.EntityName()), strings.ToLower(b.EntityName())),
		strings.Compare(a.EntityName(), b.EntityName()),
	)
}
