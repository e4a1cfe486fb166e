package loader

import (
	"context"
	"strconv"
	"strings"

	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

func (l *dirLoader) monsters(ctx context.Context) ([]rules.Monster, error) {
	files, ok := l.indexedFiles("bestiary")
	if !ok {
		log.Warn().Msg("bestiary/index.json not found, skipping monsters")
		return []rules.Monster{}, nil
	}

	c := newCollector[rules.Monster](false)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, ok := l.readJSON("bestiary", file)
		if !ok {
			continue
		}

		for _, raw := range srdEntries(data.Get("monster"), "monster") {
			c.add(parseMonster(raw))
		}
	}

	logLoaded("monsters", len(c.items))
	return c.result(), nil
}

func parseMonster(raw gjson.Result) rules.Monster {
	ac, acNote := parseAC(raw.Get("ac"))
	hp, hpFormula := parseHP(raw.Get("hp"))

	m := rules.Monster{
		Meta:      meta(raw),
		Size:      rules.ExpandAll(strs(raw.Get("size")), rules.Size),
		Type:      creatureType(raw.Get("type")),
		Alignment: rules.Alignment(alignmentCodes(raw.Get("alignment"))),
		AC:        ac,
		ACNote:    acNote,
		HP:        hp,
		HPFormula: hpFormula,
		Speed:     parseSpeed(raw.Get("speed")),
		Abilities: rules.MonsterAbilities{
			Str: intOr(raw.Get("str"), 10),
			Dex: intOr(raw.Get("dex"), 10),
			Con: intOr(raw.Get("con"), 10),
			Int: intOr(raw.Get("int"), 10),
			Wis: intOr(raw.Get("wis"), 10),
			Cha: intOr(raw.Get("cha"), 10),
		},
		SavingThrows:          bonuses(raw.Get("save"), rules.AbilityScore),
		Skills:                bonuses(raw.Get("skill"), nil),
		DamageImmunities:      damageList(raw.Get("immune"), "immune"),
		DamageResistances:     damageList(raw.Get("resist"), "resist"),
		DamageVulnerabilities: damageList(raw.Get("vulnerable"), "vulnerable"),
		ConditionImmunities:   conditionList(raw.Get("conditionImmune")),
		Senses:                expandAll(strs(raw.Get("senses"))),
		PassivePerception:     intOr(raw.Get("passive"), 10),
		Languages:             monsterLanguages(raw.Get("languages")),
		CR:                    challengeRating(raw.Get("cr")),
		Traits:                namedBlocks(raw.Get("trait")),
		Actions:               namedBlocks(raw.Get("action")),
	}

	if v := raw.Get("bonus"); v.Exists() {
		m.BonusActions = namedBlocks(v)
	}
	if v := raw.Get("reaction"); v.Exists() {
		m.Reactions = namedBlocks(v)
	}
	if v := raw.Get("legendary"); v.Exists() {
		m.LegendaryActions = namedBlocks(v)
	}
	if v := raw.Get("mythic"); v.Exists() {
		m.MythicActions = namedBlocks(v)
	}

	return m
}

// parseAC reads the first armor class entry: a bare number or {"ac": 15, "from": ["natural armor"]}.
func parseAC(v gjson.Result) (int, string) {
	first := v.Get("0")

	switch {
	case first.Type == gjson.Number:
		return int(first.Int()), ""
	case first.IsObject():
		note := first.Get("condition").String()
		if from := first.Get("from"); from.IsArray() {
			note = strings.Join(expandAll(strs(from)), ", ")
		}
		return intOr(first.Get("ac"), 10), markup.Expand(note)
	default:
		return 10, ""
	}
}

func parseHP(v gjson.Result) (rules.HitPoints, string) {
	if !v.IsObject() {
		return rules.HitPoints{}, ""
	}

	if special := v.Get("special"); special.Exists() {
		return rules.HitPoints{Special: special.String()}, ""
	}

	return rules.HitPoints{Average: intOr(v.Get("average"), 0)}, v.Get("formula").String()
}

// parseSpeed accepts a bare walking speed or an object whose modes are numbers or {"number": 30, "condition": "..."}.
func parseSpeed(v gjson.Result) rules.MonsterSpeed {
	if v.Type == gjson.Number {
		return rules.MonsterSpeed{Walk: optInt(v)}
	}

	if !v.IsObject() {
		return rules.MonsterSpeed{}
	}

	mode := func(name string) *int {
		m := v.Get(name)
		if m.IsObject() {
			return optInt(m.Get("number"))
		}
		return optInt(m)
	}

	return rules.MonsterSpeed{
		Walk:     mode("walk"),
		Fly:      mode("fly"),
		Swim:     mode("swim"),
		Burrow:   mode("burrow"),
		Climb:    mode("climb"),
		CanHover: v.Get("canHover").Type == gjson.True,
	}
}

// creatureType reads "humanoid", {"type": "fiend", "tags": [...]} or {"type": {"choose": ["beast", "monstrosity"]}}.
func creatureType(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.String()
	}

	t := v.Get("type")
	switch {
	case t.Type == gjson.String:
		return t.String()
	case t.Get("choose").IsArray():
		return strings.Join(strs(t.Get("choose")), " or ")
	default:
		return "unknown"
	}
}

// alignmentCodes keeps the plain codes; conditional alignments ({"alignment": [...], "chance": 50}) are flattened.
func alignmentCodes(v gjson.Result) []string {
	var codes []string
	v.ForEach(func(_, a gjson.Result) bool {
		if a.Type == gjson.String {
			codes = append(codes, a.String())
		} else {
			codes = append(codes, strs(a.Get("alignment"))...)
		}
		return true
	})
	return codes
}

// bonuses parses {"dex": "+5", "con": "+3"} into numbers, optionally renaming keys.
// Values that are not numbers are dropped.
func bonuses(v gjson.Result, rename func(string) string) map[string]int {
	if !v.IsObject() {
		return nil
	}

	out := make(map[string]int)
	v.ForEach(func(k, val gjson.Result) bool {
		n, err := strconv.Atoi(strings.TrimSpace(val.String()))
		if err != nil {
			return true
		}

		key := k.String()
		if rename != nil {
			key = rename(key)
		}
		out[key] = n
		return true
	})

	return out
}

// damageList expands damage codes. Entries are codes, {"special": "..."} or groups such as
// {"resist": ["B", "P", "S"], "note": "from nonmagical attacks"} whose codes are flattened.
func damageList(v gjson.Result, groupKey string) []string {
	out := []string{}

	v.ForEach(func(_, d gjson.Result) bool {
		switch {
		case d.Type == gjson.String:
			out = append(out, rules.DamageType(d.String()))
		case d.IsArray():
			out = append(out, rules.ExpandAll(strs(d), rules.DamageType)...)
		case d.Get("special").Exists():
			out = append(out, d.Get("special").String())
		case d.Get(groupKey).IsArray():
			out = append(out, damageList(d.Get(groupKey), groupKey)...)
		}
		return true
	})

	return out
}

func conditionList(v gjson.Result) []string {
	out := []string{}

	v.ForEach(func(_, c gjson.Result) bool {
		switch {
		case c.Type == gjson.String:
			out = append(out, markup.Expand(c.String()))
		case c.Get("conditionImmune").IsArray():
			out = append(out, conditionList(c.Get("conditionImmune"))...)
		case c.Get("special").Exists():
			out = append(out, c.Get("special").String())
		default:
			out = append(out, c.Raw)
		}
		return true
	})

	return out
}

func monsterLanguages(v gjson.Result) []string {
	out := []string{}
	v.ForEach(func(_, lang gjson.Result) bool {
		if lang.Type == gjson.String {
			out = append(out, rules.MonsterLanguage(markup.Expand(lang.String())))
		} else {
			out = append(out, lang.Raw)
		}
		return true
	})
	return out
}

func challengeRating(v gjson.Result) string {
	switch {
	case v.Type == gjson.String:
		return v.String()
	case v.Get("cr").Exists():
		return v.Get("cr").String()
	default:
		return "0"
	}
}

// namedBlocks renders trait and action arrays. Names can carry markup, e.g. "Fire Breath {@recharge 5}".
func namedBlocks(v gjson.Result) []rules.NamedText {
	out := []rules.NamedText{}
	v.ForEach(func(_, block gjson.Result) bool {
		out = append(out, rules.NamedText{
			Name:        markup.Expand(block.Get("name").String()),
			Description: RenderEntries(block.Get("entries")),
		})
		return true
	})
	return out
}
