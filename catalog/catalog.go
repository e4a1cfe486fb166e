// Package catalog is the in-memory, read-only index over a loaded dataset.
// All lookups and searches run against an immutable snapshot; Replace swaps the
// snapshot as a whole, so readers never observe a half-updated dataset.
package catalog

import (
	"cmp"
	"strconv"
	"strings"
	"sync"

	"github.com/TJurijs/5esrd-api/rules"
)

type Catalog struct {
	mu   sync.RWMutex
	snap *snapshot
}

type snapshot struct {
	ds          *rules.Dataset
	spells      table[rules.Spell]
	monsters    table[rules.Monster]
	items       table[rules.Item]
	classes     table[rules.Class]
	feats       table[rules.Feat]
	backgrounds table[rules.Background]
	races       table[rules.Race]
	conditions  table[rules.Condition]
	skills      table[rules.Skill]
	languages   table[rules.Language]
}

func New(ds *rules.Dataset) *Catalog {
	return &Catalog{snap: newSnapshot(ds)}
}

// Replace indexes ds and makes it visible to all subsequent calls.
func (c *Catalog) Replace(ds *rules.Dataset) {
	snap := newSnapshot(ds)

	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

func (c *Catalog) current() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

func newSnapshot(ds *rules.Dataset) *snapshot {
	if ds == nil {
		ds = &rules.Dataset{}
	}

	return &snapshot{
		ds:          ds,
		spells:      newTable(ds.Spells, nil),
		monsters:    newTable(ds.Monsters, byChallenge),
		items:       newTable(ds.Items, nil),
		classes:     newTable(ds.Classes, nil),
		feats:       newTable(ds.Feats, nil),
		backgrounds: newTable(ds.Backgrounds, nil),
		races:       newTable(ds.Races, nil),
		conditions:  newTable(ds.Conditions, nil),
		skills:      newTable(ds.Skills, nil),
		languages:   newTable(ds.Languages, nil),
	}
}

// Dataset returns the dataset behind the current snapshot.
func (c *Catalog) Dataset() *rules.Dataset {
	return c.current().ds
}

// Stats reports the number of entries per category.
func (c *Catalog) Stats() map[rules.Kind]int {
	return c.current().ds.Counts()
}

func (c *Catalog) Spell(name string) (rules.Spell, bool)     { return c.current().spells.get(name) }
func (c *Catalog) Monster(name string) (rules.Monster, bool) { return c.current().monsters.get(name) }
func (c *Catalog) Item(name string) (rules.Item, bool)       { return c.current().items.get(name) }
func (c *Catalog) Class(name string) (rules.Class, bool)     { return c.current().classes.get(name) }
func (c *Catalog) Feat(name string) (rules.Feat, bool)       { return c.current().feats.get(name) }
func (c *Catalog) Race(name string) (rules.Race, bool)       { return c.current().races.get(name) }
func (c *Catalog) Skill(name string) (rules.Skill, bool)     { return c.current().skills.get(name) }

func (c *Catalog) Background(name string) (rules.Background, bool) {
	return c.current().backgrounds.get(name)
}

func (c *Catalog) Condition(name string) (rules.Condition, bool) {
	return c.current().conditions.get(name)
}

func (c *Catalog) Language(name string) (rules.Language, bool) {
	return c.current().languages.get(name)
}

// Subclasses returns the subclasses of a class, or an empty list for an unknown class.
func (c *Catalog) Subclasses(className string) []rules.Subclass {
	cls, ok := c.Class(className)
	if !ok || cls.Subclasses == nil {
		return []rules.Subclass{}
	}
	return cls.Subclasses
}

func (c *Catalog) ListClasses(p Page) PageResult[rules.Class] {
	return Paginate(c.current().classes.items, p)
}

func (c *Catalog) ListConditions() []rules.Condition { return c.current().conditions.all() }
func (c *Catalog) ListSkills() []rules.Skill         { return c.current().skills.all() }
func (c *Catalog) ListLanguages() []rules.Language   { return c.current().languages.all() }

// byChallenge orders monsters by numeric challenge rating, then by name.
func byChallenge(a, b rules.Monster) int {
	return cmp.Or(
		cmp.Compare(ChallengeValue(a.CR), ChallengeValue(b.CR)),
		byName(a, b),
	)
}

// ChallengeValue converts a challenge rating such as "1/4" or "10" to a number.
// Unparseable ratings count as 0.
func ChallengeValue(cr string) float64 {
	cr = strings.TrimSpace(cr)

	if num, den, ok := strings.Cut(cr, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0
		}
		return n / d
	}

	v, err := strconv.ParseFloat(cr, 64)
	if err != nil {
		return 0
	}
	return v
}
