// Package rules holds the domain model served by the API: the SRD 5.2 entities,
// the dataset that groups them and the lookup tables that turn 5etools codes
// into readable text.
package rules

import "strings"

// Meta is embedded in every entity. Its fields are flattened into the entity's JSON.
type Meta struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	SRD52  bool   `json:"srd52"`
}

func (m Meta) EntityName() string   { return m.Name }
func (m Meta) EntitySource() string { return m.Source }

// Entity is anything that can be looked up by name.
type Entity interface {
	EntityName() string
	EntitySource() string
}

// NormalizeKey is the lookup key for a name: lower-cased and trimmed.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type SpellComponents struct {
	Verbal   bool   `json:"verbal"`
	Somatic  bool   `json:"somatic"`
	Material string `json:"material,omitempty"`
	Royalty  bool   `json:"royalty"`
}

type Spell struct {
	Meta
	Level                int             `json:"level"`
	School               string          `json:"school"`
	CastingTime          string          `json:"castingTime"`
	CastingTimeCondition string          `json:"castingTimeCondition,omitempty"`
	Range                string          `json:"range"`
	Components           SpellComponents `json:"components"`
	Duration             string          `json:"duration"`
	Concentration        bool            `json:"concentration"`
	Ritual               bool            `json:"ritual"`
	Description          string          `json:"description"`
	HigherLevels         string          `json:"higherLevels,omitempty"`
	Classes              []string        `json:"classes"`
	DamageTypes          []string        `json:"damageTypes"`
	SavingThrow          []string        `json:"savingThrow"`
	AreaTags             []string        `json:"areaTags"`
	MiscTags             []string        `json:"miscTags"`
}

type MonsterSpeed struct {
	Walk     *int `json:"walk,omitempty"`
	Fly      *int `json:"fly,omitempty"`
	Swim     *int `json:"swim,omitempty"`
	Burrow   *int `json:"burrow,omitempty"`
	Climb    *int `json:"climb,omitempty"`
	CanHover bool `json:"canHover,omitempty"`
}

type MonsterAbilities struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// NamedText is a titled block of rendered text: a monster action, a race trait, a background feature.
type NamedText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Monster struct {
	Meta
	Size                  []string         `json:"size"`
	Type                  string           `json:"type"`
	Alignment             string           `json:"alignment"`
	AC                    int              `json:"ac"`
	ACNote                string           `json:"acNote,omitempty"`
	HP                    HitPoints        `json:"hp"`
	HPFormula             string           `json:"hpFormula,omitempty"`
	Speed                 MonsterSpeed     `json:"speed"`
	Abilities             MonsterAbilities `json:"abilities"`
	SavingThrows          map[string]int   `json:"savingThrows,omitempty"`
	Skills                map[string]int   `json:"skills,omitempty"`
	DamageImmunities      []string         `json:"damageImmunities"`
	DamageResistances     []string         `json:"damageResistances"`
	DamageVulnerabilities []string         `json:"damageVulnerabilities"`
	ConditionImmunities   []string         `json:"conditionImmunities"`
	Senses                []string         `json:"senses"`
	PassivePerception     int              `json:"passivePerception"`
	Languages             []string         `json:"languages"`
	CR                    string           `json:"cr"`
	Traits                []NamedText      `json:"traits"`
	Actions               []NamedText      `json:"actions"`
	BonusActions          []NamedText      `json:"bonusActions,omitempty"`
	Reactions             []NamedText      `json:"reactions,omitempty"`
	LegendaryActions      []NamedText      `json:"legendaryActions,omitempty"`
	MythicActions         []NamedText      `json:"mythicActions,omitempty"`
}

type Item struct {
	Meta
	Type             string   `json:"type"`
	Rarity           string   `json:"rarity"`
	Weight           *float64 `json:"weight,omitempty"`
	Value            string   `json:"value,omitempty"`
	Attunement       string   `json:"attunement,omitempty"`
	Wondrous         bool     `json:"wondrous"`
	Properties       []string `json:"properties"`
	Damage           string   `json:"damage,omitempty"`
	DamageType       string   `json:"damageType,omitempty"`
	Range            string   `json:"range,omitempty"`
	AC               *int     `json:"ac,omitempty"`
	BonusAttack      string   `json:"bonusAttack,omitempty"`
	BonusSpellAttack string   `json:"bonusSpellAttack,omitempty"`
	BonusSpellSaveDC string   `json:"bonusSpellSaveDc,omitempty"`
	BonusAC          string   `json:"bonusAc,omitempty"`
	Recharge         string   `json:"recharge,omitempty"`
	Charges          *int     `json:"charges,omitempty"`
	Description      string   `json:"description"`
}

type ClassFeature struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

type Subclass struct {
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	ShortName string         `json:"shortName"`
	Features  []ClassFeature `json:"features"`
}

type Class struct {
	Meta
	HitDie              int            `json:"hitDie"`
	PrimaryAbility      []string       `json:"primaryAbility"`
	SavingThrows        []string       `json:"savingThrows"`
	ArmorProficiencies  []string       `json:"armorProficiencies"`
	WeaponProficiencies []string       `json:"weaponProficiencies"`
	ToolProficiencies   []string       `json:"toolProficiencies"`
	SkillChoices        []string       `json:"skillChoices"`
	SkillCount          int            `json:"skillCount"`
	Features            []ClassFeature `json:"features"`
	Subclasses          []Subclass     `json:"subclasses"`
}

type Feat struct {
	Meta
	Category     string   `json:"category"`
	Prerequisite string   `json:"prerequisite,omitempty"`
	Repeatable   bool     `json:"repeatable"`
	AbilityBoost []string `json:"abilityBoost,omitempty"`
	Description  string   `json:"description"`
}

type Background struct {
	Meta
	SkillProficiencies []string    `json:"skillProficiencies"`
	ToolProficiencies  []string    `json:"toolProficiencies"`
	Languages          []string    `json:"languages"`
	Equipment          string      `json:"equipment"`
	Description        string      `json:"description"`
	Features           []NamedText `json:"features"`
}

type Race struct {
	Meta
	Size          []string    `json:"size"`
	Speed         int         `json:"speed"`
	AbilityBoosts []string    `json:"abilityBoosts,omitempty"`
	Traits        []NamedText `json:"traits"`
	Languages     []string    `json:"languages"`
	Description   string      `json:"description"`
}

type Condition struct {
	Meta
	Description string   `json:"description"`
	Effects     []string `json:"effects"`
}

type Skill struct {
	Meta
	Ability     string `json:"ability"`
	Description string `json:"description"`
}

type Language struct {
	Meta
	Type            string   `json:"type"`
	TypicalSpeakers []string `json:"typicalSpeakers"`
	Script          string   `json:"script,omitempty"`
	Description     string   `json:"description,omitempty"`
}
