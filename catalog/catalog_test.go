package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func spell(name string, level int, school string, classes ...string) rules.Spell {
	return rules.Spell{
		Meta:    rules.Meta{Name: name, Source: "XPHB", SRD52: true},
		Level:   level,
		School:  school,
		Classes: classes,
	}
}

func monster(name, cr, typ string, size ...string) rules.Monster {
	return rules.Monster{
		Meta: rules.Meta{Name: name, Source: "XMM", SRD52: true},
		CR:   cr,
		Type: typ,
		Size: size,
	}
}

func testDataset() *rules.Dataset {
	return &rules.Dataset{
		Spells: []rules.Spell{
			spell("Test Ice Storm", 4, "Evocation", "Druid"),
			spell("Test Fireball", 3, "Evocation", "Wizard", "Sorcerer"),
			spell("Test Cure Wounds", 1, "Abjuration", "Cleric"),
			spell("acid splash", 0, "Evocation", "Wizard"),
		},
		Monsters: []rules.Monster{
			monster("Adult Red Dragon", "17", "dragon", "Huge"),
			monster("Goblin Warrior", "1/4", "fey", "Small"),
			monster("Bandit", "1/8", "humanoid", "Medium", "Small"),
			monster("Awakened Shrub", "0", "plant", "Small"),
			monster("Ape", "1/2", "beast", "Medium"),
			monster("Young Red Dragon", "10", "dragon", "Large"),
		},
		Items: []rules.Item{
			{Meta: rules.Meta{Name: "Potion of Healing", Source: "XDMG"}, Type: "Potion", Rarity: "common"},
			{Meta: rules.Meta{Name: "Wand of Magic Missiles", Source: "XDMG"}, Type: "Wand", Rarity: "uncommon", Attunement: "required"},
			{Meta: rules.Meta{Name: "Longsword", Source: "XPHB"}, Type: "Melee Weapon", Rarity: "none"},
		},
		Classes: []rules.Class{
			{Meta: rules.Meta{Name: "Wizard", Source: "XPHB"}},
			{Meta: rules.Meta{Name: "Fighter", Source: "XPHB"}, Subclasses: []rules.Subclass{{Name: "Champion", ShortName: "Champion"}}},
		},
		Feats: []rules.Feat{
			{Meta: rules.Meta{Name: "Grappler", Source: "XPHB"}, Category: "General"},
			{Meta: rules.Meta{Name: "Alert", Source: "XPHB"}, Category: "Origin"},
			{Meta: rules.Meta{Name: "Archery", Source: "XPHB"}, Category: "Fighting Style"},
		},
		Backgrounds: []rules.Background{
			{Meta: rules.Meta{Name: "Sage", Source: "XPHB"}},
			{Meta: rules.Meta{Name: "Acolyte", Source: "XPHB"}},
		},
		Races: []rules.Race{
			{Meta: rules.Meta{Name: "Dwarf", Source: "XPHB"}},
			{Meta: rules.Meta{Name: "Human", Source: "PHB"}},
		},
		Conditions: []rules.Condition{
			{Meta: rules.Meta{Name: "Prone", Source: "XPHB"}},
			{Meta: rules.Meta{Name: "Blinded", Source: "XPHB"}},
		},
		Skills: []rules.Skill{
			{Meta: rules.Meta{Name: "Stealth", Source: "XPHB"}, Ability: "Dexterity"},
			{Meta: rules.Meta{Name: "Athletics", Source: "XPHB"}, Ability: "Strength"},
		},
		Languages: []rules.Language{
			{Meta: rules.Meta{Name: "Elvish", Source: "XPHB"}},
			{Meta: rules.Meta{Name: "Common", Source: "XPHB"}},
		},
	}
}

func names[T rules.Entity](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.EntityName()
	}
	return out
}

func TestCatalog_Get(t *testing.T) {
	c := New(testDataset())

	s, ok := c.Spell("Test Fireball")
	require.True(t, ok)
	require.Equal(t, "Test Fireball", s.Name)

	s, ok = c.Spell("  test FIREBALL ")
	require.True(t, ok)
	require.Equal(t, "Test Fireball", s.Name)

	_, ok = c.Spell("Nonexistent Spell XYZ")
	require.False(t, ok)

	_, ok = c.Monster("goblin warrior")
	require.True(t, ok)
	_, ok = c.Item("longsword")
	require.True(t, ok)
	_, ok = c.Feat("alert")
	require.True(t, ok)
	_, ok = c.Background("sage")
	require.True(t, ok)
	_, ok = c.Race("dwarf")
	require.True(t, ok)
	_, ok = c.Condition("blinded")
	require.True(t, ok)
	_, ok = c.Skill("stealth")
	require.True(t, ok)
	_, ok = c.Language("common")
	require.True(t, ok)
	_, ok = c.Class("nonexistent xyz")
	require.False(t, ok)
}

func TestCatalog_SearchSpells(t *testing.T) {
	c := New(testDataset())

	testCases := []struct {
		name   string
		filter SpellFilter
		want   []string
	}{
		{
			name:   "no_filters_sorted_by_name",
			filter: SpellFilter{},
			want:   []string{"acid splash", "Test Cure Wounds", "Test Fireball", "Test Ice Storm"},
		},
		{
			name:   "name_substring",
			filter: SpellFilter{Name: "test fire"},
			want:   []string{"Test Fireball"},
		},
		{
			name:   "level",
			filter: SpellFilter{Level: intPtr(3)},
			want:   []string{"Test Fireball"},
		},
		{
			name:   "level_zero_is_a_filter",
			filter: SpellFilter{Level: intPtr(0)},
			want:   []string{"acid splash"},
		},
		{
			name:   "school",
			filter: SpellFilter{School: "abjur"},
			want:   []string{"Test Cure Wounds"},
		},
		{
			name:   "class",
			filter: SpellFilter{Class: "druid"},
			want:   []string{"Test Ice Storm"},
		},
		{
			name:   "source_is_exact",
			filter: SpellFilter{Source: "xphb"},
			want:   []string{},
		},
		{
			name:   "combined",
			filter: SpellFilter{School: "evocation", Class: "wizard", Source: "XPHB"},
			want:   []string{"acid splash", "Test Fireball"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := c.SearchSpells(tc.filter, Page{})
			require.Equal(t, tc.want, names(res.Data))
			require.Equal(t, len(tc.want), res.Total)
		})
	}
}

func TestCatalog_SearchMonsters(t *testing.T) {
	c := New(testDataset())

	all := c.SearchMonsters(MonsterFilter{}, Page{})
	require.Equal(t, []string{
		"Awakened Shrub", "Bandit", "Goblin Warrior", "Ape", "Young Red Dragon", "Adult Red Dragon",
	}, names(all.Data))

	require.Equal(t, []string{"Goblin Warrior"}, names(c.SearchMonsters(MonsterFilter{CR: "1/4"}, Page{}).Data))
	require.Equal(t, []string{"Young Red Dragon", "Adult Red Dragon"}, names(c.SearchMonsters(MonsterFilter{Type: "DRAGON"}, Page{}).Data))
	require.Equal(t, []string{"Awakened Shrub", "Bandit", "Goblin Warrior"}, names(c.SearchMonsters(MonsterFilter{Size: "small"}, Page{}).Data))
	require.Empty(t, c.SearchMonsters(MonsterFilter{CR: "1"}, Page{}).Data)
}

func TestCatalog_SearchItems(t *testing.T) {
	c := New(testDataset())

	require.Equal(t, []string{"Wand of Magic Missiles"}, names(c.SearchItems(ItemFilter{Attunement: boolPtr(true)}, Page{}).Data))
	require.Equal(t, []string{"Longsword", "Potion of Healing"}, names(c.SearchItems(ItemFilter{Attunement: boolPtr(false)}, Page{}).Data))
	require.Equal(t, []string{"Potion of Healing"}, names(c.SearchItems(ItemFilter{Rarity: "common"}, Page{}).Data))
	require.Empty(t, c.SearchItems(ItemFilter{Rarity: "Common"}, Page{}).Data)
	require.Equal(t, []string{"Longsword"}, names(c.SearchItems(ItemFilter{Type: "weapon"}, Page{}).Data))
	require.Equal(t, []string{"Potion of Healing", "Wand of Magic Missiles"}, names(c.SearchItems(ItemFilter{Source: "XDMG"}, Page{}).Data))
}

func TestCatalog_SearchFeatsBackgroundsRaces(t *testing.T) {
	c := New(testDataset())

	require.Equal(t, []string{"Alert", "Archery", "Grappler"}, names(c.SearchFeats(FeatFilter{}, Page{}).Data))
	require.Equal(t, []string{"Archery"}, names(c.SearchFeats(FeatFilter{Category: "fighting"}, Page{}).Data))
	require.Equal(t, []string{"Acolyte", "Sage"}, names(c.SearchBackgrounds(NameFilter{}, Page{}).Data))
	require.Equal(t, []string{"Sage"}, names(c.SearchBackgrounds(NameFilter{Name: "ag"}, Page{}).Data))
	require.Equal(t, []string{"Human"}, names(c.SearchRaces(NameFilter{Source: "PHB"}, Page{}).Data))
}

func TestCatalog_Lists(t *testing.T) {
	c := New(testDataset())

	classes := c.ListClasses(Page{})
	require.Equal(t, 2, classes.Total)
	require.Equal(t, []string{"Fighter", "Wizard"}, names(classes.Data))

	require.Equal(t, []string{"Blinded", "Prone"}, names(c.ListConditions()))
	require.Equal(t, []string{"Athletics", "Stealth"}, names(c.ListSkills()))
	require.Equal(t, []string{"Common", "Elvish"}, names(c.ListLanguages()))

	require.Equal(t, []rules.Subclass{{Name: "Champion", ShortName: "Champion"}}, c.Subclasses("FIGHTER"))
	require.Equal(t, []rules.Subclass{}, c.Subclasses("Wizard"))
	require.Equal(t, []rules.Subclass{}, c.Subclasses("Nonexistent XYZ"))
}

func TestCatalog_ListsAreCopies(t *testing.T) {
	c := New(testDataset())

	skills := c.ListSkills()
	skills[0].Name = "Mutated"

	require.Equal(t, "Athletics", c.ListSkills()[0].Name)
}

func TestCatalog_Stats(t *testing.T) {
	c := New(testDataset())

	stats := c.Stats()
	require.Equal(t, 4, stats[rules.KindSpell])
	require.Equal(t, 6, stats[rules.KindMonster])
	require.Equal(t, 2, stats[rules.KindLanguage])
}

func TestCatalog_NilDataset(t *testing.T) {
	c := New(nil)

	require.Zero(t, c.SearchSpells(SpellFilter{}, Page{}).Total)
	require.NotNil(t, c.SearchSpells(SpellFilter{}, Page{}).Data)
	require.Empty(t, c.ListConditions())
	require.Empty(t, c.Suggest(rules.KindSpell, "fireball", 3))
}

func TestCatalog_Replace(t *testing.T) {
	c := New(testDataset())

	_, ok := c.Spell("Test Fireball")
	require.True(t, ok)

	c.Replace(&rules.Dataset{Spells: []rules.Spell{spell("Light", 0, "Evocation")}})

	_, ok = c.Spell("Test Fireball")
	require.False(t, ok)

	_, ok = c.Spell("light")
	require.True(t, ok)
	require.Equal(t, 1, c.Stats()[rules.KindSpell])
	require.Zero(t, c.Stats()[rules.KindMonster])
}

func TestCatalog_ConcurrentReplace(t *testing.T) {
	c := New(testDataset())

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Replace(&rules.Dataset{Spells: []rules.Spell{spell(fmt.Sprintf("Spell %d", i), 1, "Evocation")}})
		}()
		go func() {
			defer wg.Done()
			res := c.SearchSpells(SpellFilter{}, Page{})
			assert.Equal(t, res.Total, len(res.Data))
		}()
	}
	wg.Wait()
}

func TestChallengeValue(t *testing.T) {
	testCases := []struct {
		cr   string
		want float64
	}{
		{"0", 0},
		{"1/8", 0.125},
		{"1/4", 0.25},
		{"1/2", 0.5},
		{"10", 10},
		{" 30 ", 30},
		{"", 0},
		{"unknown", 0},
		{"1/0", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.cr, func(t *testing.T) {
			require.Equal(t, tc.want, ChallengeValue(tc.cr))
		})
	}
}
