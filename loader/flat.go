package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/tidwall/gjson"
)

// loadFlat reads one top-level file holding a single array of records under key.
func loadFlat[T rules.Entity](ctx context.Context, l *dirLoader, file, key, category string, parse func(gjson.Result) T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := newCollector[T](false)

	if data, ok := l.readJSON(file); ok {
		for _, raw := range srdEntries(data.Get(key), key) {
			c.add(parse(raw))
		}
	}

	logLoaded(category, len(c.items))
	return c.result(), nil
}

func (l *dirLoader) feats(ctx context.Context) ([]rules.Feat, error) {
	return loadFlat(ctx, l, "feats.json", "feat", "feats", parseFeat)
}

func (l *dirLoader) backgrounds(ctx context.Context) ([]rules.Background, error) {
	return loadFlat(ctx, l, "backgrounds.json", "background", "backgrounds", parseBackground)
}

func (l *dirLoader) races(ctx context.Context) ([]rules.Race, error) {
	return loadFlat(ctx, l, "races.json", "race", "races", parseRace)
}

func (l *dirLoader) conditions(ctx context.Context) ([]rules.Condition, error) {
	return loadFlat(ctx, l, "conditionsdiseases.json", "condition", "conditions", parseCondition)
}

func (l *dirLoader) skills(ctx context.Context) ([]rules.Skill, error) {
	return loadFlat(ctx, l, "skills.json", "skill", "skills", parseSkill)
}

func (l *dirLoader) languages(ctx context.Context) ([]rules.Language, error) {
	return loadFlat(ctx, l, "languages.json", "language", "languages", parseLanguage)
}

func parseFeat(raw gjson.Result) rules.Feat {
	feat := rules.Feat{
		Meta:         meta(raw),
		Category:     "General",
		Prerequisite: prerequisites(raw.Get("prerequisite")),
		Repeatable:   raw.Get("repeatable").Type == gjson.True,
		Description:  RenderEntries(raw.Get("entries")),
	}

	if cat := raw.Get("category").String(); cat != "" {
		feat.Category = rules.FeatCategory(cat)
	}

	if ability := raw.Get("ability"); ability.IsArray() {
		feat.AbilityBoost = rules.ExpandAll(objectKeys(ability.Get("0")), rules.AbilityScore)
	}

	return feat
}

// prerequisites renders the alternatives of a feat prerequisite, joined with " or ".
// Each alternative is an object whose conditions all apply: {"level": 4, "ability": [{"str": 13}]}.
func prerequisites(v gjson.Result) string {
	var alternatives []string

	v.ForEach(func(_, alt gjson.Result) bool {
		if alt.Type == gjson.String {
			alternatives = append(alternatives, markup.Expand(alt.String()))
			return true
		}

		var conds []string
		alt.ForEach(func(k, val gjson.Result) bool {
			if s := prerequisite(k.String(), val); s != "" {
				conds = append(conds, s)
			}
			return true
		})

		if len(conds) > 0 {
			alternatives = append(alternatives, strings.Join(conds, ", "))
		}
		return true
	})

	return strings.Join(alternatives, " or ")
}

func prerequisite(kind string, v gjson.Result) string {
	switch kind {
	case "level":
		if v.IsObject() {
			return fmt.Sprintf("Level %d", v.Get("level").Int())
		}
		return fmt.Sprintf("Level %d", v.Int())
	case "ability":
		var scores []string
		v.ForEach(func(_, group gjson.Result) bool {
			group.ForEach(func(ab, score gjson.Result) bool {
				scores = append(scores, fmt.Sprintf("%s %d or higher", rules.AbilityScore(ab.String()), score.Int()))
				return true
			})
			return true
		})
		return strings.Join(scores, " or ")
	case "feat", "feature", "background", "race":
		names := expandAll(strs(v))
		for i, name := range names {
			names[i] = refName(name)
		}
		return strings.Join(names, " or ")
	case "spellcasting", "spellcasting2020", "spellcastingFeature", "spellcastingPrepared":
		return "Spellcasting or Pact Magic Feature"
	case "proficiency":
		var profs []string
		v.ForEach(func(_, group gjson.Result) bool {
			group.ForEach(func(k, val gjson.Result) bool {
				profs = append(profs, capitalize(val.String())+" "+capitalize(k.String())+" Proficiency")
				return true
			})
			return true
		})
		return strings.Join(profs, " or ")
	case "other", "otherSummary":
		if v.IsObject() {
			return markup.Expand(v.Get("entry").String())
		}
		return markup.Expand(v.String())
	default:
		return v.Raw
	}
}

// refName reads a plain "name|source|display" reference as used outside markup.
func refName(ref string) string {
	head, _, _ := strings.Cut(ref, "|")
	return head
}

func parseBackground(raw gjson.Result) rules.Background {
	bg := rules.Background{
		Meta:               meta(raw),
		SkillProficiencies: choiceKeys(raw.Get("skillProficiencies"), raw.Get("startingProficiencies.skills")),
		ToolProficiencies:  choiceKeys(raw.Get("toolProficiencies"), raw.Get("startingProficiencies.tools")),
		Languages:          choiceKeys(raw.Get("languageProficiencies"), raw.Get("startingProficiencies.languages")),
		Equipment:          equipment(raw.Get("startingEquipment")),
		Description:        RenderEntries(raw.Get("entries")),
		Features:           namedEntries(raw.Get("entries")),
	}

	if raw.Get("startingProficiencies.languageChoices").Exists() || hasAnyChoice(raw.Get("languageProficiencies")) {
		bg.Languages = []string{"any (your choice)"}
	}

	return bg
}

// choiceKeys lists proficiencies given as [{"insight": true, "religion": true}] or as plain strings.
func choiceKeys(v, fallback gjson.Result) []string {
	if !v.Exists() {
		v = fallback
	}

	out := []string{}
	v.ForEach(func(_, p gjson.Result) bool {
		if p.Type == gjson.String {
			out = append(out, markup.Expand(p.String()))
		} else {
			out = append(out, trueKeys(p)...)
		}
		return true
	})
	return out
}

func hasAnyChoice(v gjson.Result) bool {
	found := false
	v.ForEach(func(_, p gjson.Result) bool {
		found = p.Get("anyStandard").Exists() || p.Get("any").Exists() || p.Get("choose").Exists()
		return !found
	})
	return found
}

// equipment renders starting equipment. The 2024 shape is [{"A": [...], "B": [...]}],
// older data has {"default": ["..."]}.
func equipment(v gjson.Result) string {
	if def := v.Get("default"); def.IsArray() {
		return strings.Join(expandAll(strs(def)), ", ")
	}

	var groups []string
	v.ForEach(func(_, group gjson.Result) bool {
		var options []string
		group.ForEach(func(label, items gjson.Result) bool {
			text := equipmentItems(items)
			if label.String() != "_" {
				text = "(" + label.String() + ") " + text
			}
			options = append(options, text)
			return true
		})
		groups = append(groups, strings.Join(options, "; or "))
		return true
	})

	return strings.Join(groups, "; ")
}

func equipmentItems(items gjson.Result) string {
	var parts []string
	items.ForEach(func(_, it gjson.Result) bool {
		switch {
		case it.Type == gjson.String:
			parts = append(parts, refName(markup.Expand(it.String())))
		case it.Get("item").Exists():
			name := refName(it.Get("item").String())
			if d := it.Get("displayName"); d.Exists() {
				name = d.String()
			}
			if q := it.Get("quantity").Int(); q > 1 {
				name = fmt.Sprintf("%d %s", q, name)
			}
			parts = append(parts, name)
		case it.Get("special").Exists():
			parts = append(parts, it.Get("special").String())
		case it.Get("value").Exists():
			parts = append(parts, coins(it.Get("value").Int()))
		case it.Get("equipmentType").Exists():
			parts = append(parts, it.Get("equipmentType").String())
		}
		return true
	})
	return strings.Join(parts, ", ")
}

// coins renders a value in copper pieces the way the rules print prices.
func coins(cp int64) string {
	if cp%100 == 0 {
		return fmt.Sprintf("%d GP", cp/100)
	}
	if cp%10 == 0 {
		return fmt.Sprintf("%d SP", cp/10)
	}
	return fmt.Sprintf("%d CP", cp)
}

// namedEntries returns the named "entries" blocks of an entries array as features or traits.
func namedEntries(entries gjson.Result) []rules.NamedText {
	out := []rules.NamedText{}
	entries.ForEach(func(_, e gjson.Result) bool {
		if e.Get("type").String() == "entries" && e.Get("name").String() != "" {
			out = append(out, rules.NamedText{
				Name:        e.Get("name").String(),
				Description: RenderEntries(e.Get("entries")),
			})
		}
		return true
	})
	return out
}

func parseRace(raw gjson.Result) rules.Race {
	race := rules.Race{
		Meta:        meta(raw),
		Speed:       30,
		Traits:      namedEntries(raw.Get("entries")),
		Languages:   []string{},
		Description: RenderEntries(raw.Get("entries")),
	}

	sizes := []string{"M"}
	switch size := raw.Get("size"); {
	case size.IsArray():
		sizes = strs(size)
	case size.Type == gjson.String:
		sizes = []string{size.String()}
	}
	race.Size = rules.ExpandAll(sizes, rules.Size)

	switch speed := raw.Get("speed"); {
	case speed.Type == gjson.Number:
		race.Speed = int(speed.Int())
	case speed.Get("walk").Type == gjson.Number:
		race.Speed = int(speed.Get("walk").Int())
	}

	if ability := raw.Get("ability"); ability.IsArray() {
		race.AbilityBoosts = rules.ExpandAll(objectKeys(ability.Get("0")), rules.AbilityScore)
	}

	raw.Get("languageProficiencies").ForEach(func(_, lp gjson.Result) bool {
		race.Languages = append(race.Languages, trueKeys(lp)...)
		return true
	})

	return race
}

func parseCondition(raw gjson.Result) rules.Condition {
	cond := rules.Condition{
		Meta:        meta(raw),
		Description: RenderEntries(raw.Get("entries")),
		Effects:     []string{},
	}

	raw.Get("entries").ForEach(func(_, e gjson.Result) bool {
		if e.Get("type").String() != "list" {
			return true
		}
		e.Get("items").ForEach(func(_, item gjson.Result) bool {
			if item.Type == gjson.String {
				cond.Effects = append(cond.Effects, markup.Expand(item.String()))
				return true
			}
			body := RenderEntries(item.Get("entries"))
			if entry := item.Get("entry"); entry.Exists() {
				body = renderEntry(entry)
			}
			cond.Effects = append(cond.Effects, heading(item)+body)
			return true
		})
		return true
	})

	return cond
}

func parseSkill(raw gjson.Result) rules.Skill {
	return rules.Skill{
		Meta:        meta(raw),
		Ability:     rules.AbilityScore(raw.Get("ability").String()),
		Description: RenderEntries(raw.Get("entries")),
	}
}

func parseLanguage(raw gjson.Result) rules.Language {
	lang := rules.Language{
		Meta:            meta(raw),
		Type:            "standard",
		TypicalSpeakers: expandAll(strs(raw.Get("typicalSpeakers"))),
		Script:          raw.Get("script").String(),
		Description:     RenderEntries(raw.Get("entries")),
	}

	if t := raw.Get("type").String(); t != "" {
		lang.Type = t
	}

	return lang
}
