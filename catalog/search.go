package catalog

import (
	"slices"
	"strings"

	"github.com/TJurijs/5esrd-api/rules"
)

// Text filters match case-insensitive substrings. Source, level, challenge rating,
// rarity and attunement match exactly. Empty or nil fields do not filter.

type SpellFilter struct {
	Name   string
	Level  *int
	School string
	Class  string
	Source string
}

type MonsterFilter struct {
	Name   string
	CR     string
	Type   string
	Size   string
	Source string
}

type ItemFilter struct {
	Name       string
	Type       string
	Rarity     string
	Attunement *bool
	Source     string
}

type FeatFilter struct {
	Name     string
	Category string
	Source   string
}

// NameFilter serves the categories searchable only by name and source.
type NameFilter struct {
	Name   string
	Source string
}

func (c *Catalog) SearchSpells(f SpellFilter, p Page) PageResult[rules.Spell] {
	found := c.current().spells.filter(func(s rules.Spell) bool {
		return contains(s.Name, f.Name) &&
			(f.Level == nil || s.Level == *f.Level) &&
			contains(s.School, f.School) &&
			(f.Class == "" || slices.ContainsFunc(s.Classes, func(cls string) bool { return contains(cls, f.Class) })) &&
			sameSource(s.Source, f.Source)
	})
	return Paginate(found, p)
}

func (c *Catalog) SearchMonsters(f MonsterFilter, p Page) PageResult[rules.Monster] {
	found := c.current().monsters.filter(func(m rules.Monster) bool {
		return contains(m.Name, f.Name) &&
			(f.CR == "" || m.CR == f.CR) &&
			contains(m.Type, f.Type) &&
			(f.Size == "" || slices.ContainsFunc(m.Size, func(size string) bool { return contains(size, f.Size) })) &&
			sameSource(m.Source, f.Source)
	})
	return Paginate(found, p)
}

func (c *Catalog) SearchItems(f ItemFilter, p Page) PageResult[rules.Item] {
	found := c.current().items.filter(func(i rules.Item) bool {
		return contains(i.Name, f.Name) &&
			contains(i.Type, f.Type) &&
			(f.Rarity == "" || i.Rarity == f.Rarity) &&
			(f.Attunement == nil || (i.Attunement != "") == *f.Attunement) &&
			sameSource(i.Source, f.Source)
	})
	return Paginate(found, p)
}

func (c *Catalog) SearchFeats(f FeatFilter, p Page) PageResult[rules.Feat] {
	found := c.current().feats.filter(func(feat rules.Feat) bool {
		return contains(feat.Name, f.Name) &&
			contains(feat.Category, f.Category) &&
			sameSource(feat.Source, f.Source)
	})
	return Paginate(found, p)
}

func (c *Catalog) SearchBackgrounds(f NameFilter, p Page) PageResult[rules.Background] {
	return Paginate(filterByName(c.current().backgrounds, f), p)
}

func (c *Catalog) SearchRaces(f NameFilter, p Page) PageResult[rules.Race] {
	return Paginate(filterByName(c.current().races, f), p)
}

func filterByName[T rules.Entity](t table[T], f NameFilter) []T {
	return t.filter(func(e T) bool {
		return contains(e.EntityName(), f.Name) && sameSource(e.EntitySource(), f.Source)
	})
}

// contains reports whether s contains query, ignoring case. An empty query matches everything.
func contains(s, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func sameSource(source, want string) bool {
	return want == "" || source == want
}
