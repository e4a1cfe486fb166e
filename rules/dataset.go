package rules

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind names one category of the dataset.
type Kind string

const (
	KindSpell      Kind = "spell"
	KindMonster    Kind = "monster"
	KindItem       Kind = "item"
	KindClass      Kind = "class"
	KindFeat       Kind = "feat"
	KindBackground Kind = "background"
	KindRace       Kind = "race"
	KindCondition  Kind = "condition"
	KindSkill      Kind = "skill"
	KindLanguage   Kind = "language"
)

// Kinds lists every category in load order.
var Kinds = []Kind{
	KindSpell,
	KindMonster,
	KindItem,
	KindClass,
	KindFeat,
	KindBackground,
	KindRace,
	KindCondition,
	KindSkill,
	KindLanguage,
}

var ErrUnknownKind = errors.New("unknown kind")

// ParseKind accepts a kind name such as "spell".
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Dataset is one complete, normalized load of the rules content.
// Within a category names are unique by NormalizeKey.
type Dataset struct {
	Spells      []Spell
	Monsters    []Monster
	Items       []Item
	Classes     []Class
	Feats       []Feat
	Backgrounds []Background
	Races       []Race
	Conditions  []Condition
	Skills      []Skill
	Languages   []Language
}

// Entities returns the entries of one category in dataset order.
func (ds *Dataset) Entities(kind Kind) []Entity {
	switch kind {
	case KindSpell:
		return asEntities(ds.Spells)
	case KindMonster:
		return asEntities(ds.Monsters)
	case KindItem:
		return asEntities(ds.Items)
	case KindClass:
		return asEntities(ds.Classes)
	case KindFeat:
		return asEntities(ds.Feats)
	case KindBackground:
		return asEntities(ds.Backgrounds)
	case KindRace:
		return asEntities(ds.Races)
	case KindCondition:
		return asEntities(ds.Conditions)
	case KindSkill:
		return asEntities(ds.Skills)
	case KindLanguage:
		return asEntities(ds.Languages)
	default:
		return nil
	}
}

// Counts reports the number of entries per category.
func (ds *Dataset) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = len(ds.Entities(k))
	}
	return counts
}

// Total is the number of entries across all categories.
func (ds *Dataset) Total() int {
	total := 0
	for _, n := range ds.Counts() {
		total += n
	}
	return total
}

// AppendJSON decodes body as an entity of the given kind and appends it.
func (ds *Dataset) AppendJSON(kind Kind, body []byte) error {
	switch kind {
	case KindSpell:
		return appendJSON(&ds.Spells, body)
	case KindMonster:
		return appendJSON(&ds.Monsters, body)
	case KindItem:
		return appendJSON(&ds.Items, body)
	case KindClass:
		return appendJSON(&ds.Classes, body)
	case KindFeat:
		return appendJSON(&ds.Feats, body)
	case KindBackground:
		return appendJSON(&ds.Backgrounds, body)
	case KindRace:
		return appendJSON(&ds.Races, body)
	case KindCondition:
		return appendJSON(&ds.Conditions, body)
	case KindSkill:
		return appendJSON(&ds.Skills, body)
	case KindLanguage:
		return appendJSON(&ds.Languages, body)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func asEntities[T Entity](items []T) []Entity {
	out := make([]Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func appendJSON[T any](dst *[]T, body []byte) error {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("failed to decode %T: %w", v, err)
	}
	*dst = append(*dst, v)
	return nil
}
