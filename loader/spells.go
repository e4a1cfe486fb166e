package loader

import (
	"context"
	"strings"

	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

func (l *dirLoader) spells(ctx context.Context) ([]rules.Spell, error) {
	files, ok := l.indexedFiles("spells")
	if !ok {
		log.Warn().Msg("spells/index.json not found, skipping spells")
		return []rules.Spell{}, nil
	}

	c := newCollector[rules.Spell](false)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, ok := l.readJSON("spells", file)
		if !ok {
			continue
		}

		for _, raw := range srdEntries(data.Get("spell"), "spell") {
			c.add(parseSpell(raw))
		}
	}

	logLoaded("spells", len(c.items))
	return c.result(), nil
}

func parseSpell(raw gjson.Result) rules.Spell {
	times := castingTimes(raw.Get("time"))
	durations := spellDurations(raw.Get("duration"))

	spell := rules.Spell{
		Meta:          meta(raw),
		Level:         int(raw.Get("level").Int()),
		School:        rules.SpellSchool(raw.Get("school").String()),
		CastingTime:   rules.FormatCastingTime(times),
		Range:         rules.FormatRange(spellRange(raw.Get("range"))),
		Components:    spellComponents(raw.Get("components")),
		Duration:      rules.FormatDuration(durations),
		Concentration: rules.IsConcentration(durations),
		Ritual:        raw.Get("meta.ritual").Type == gjson.True,
		Description:   RenderEntries(raw.Get("entries")),
		Classes:       []string{},
		DamageTypes:   rules.ExpandAll(strs(raw.Get("damageInflict")), rules.DamageType),
		SavingThrow:   rules.ExpandAll(strs(raw.Get("savingThrow")), capitalize),
		AreaTags:      rules.ExpandAll(strs(raw.Get("areaTags")), rules.AreaTag),
		MiscTags:      rules.ExpandAll(strs(raw.Get("miscTags")), rules.MiscTag),
	}

	if len(times) > 0 {
		spell.CastingTimeCondition = times[0].Condition
	}

	// entriesHigherLevel is a list of named blocks; only their bodies are kept
	var higher []string
	raw.Get("entriesHigherLevel").ForEach(func(_, block gjson.Result) bool {
		if s := RenderEntries(block.Get("entries")); s != "" {
			higher = append(higher, s)
		}
		return true
	})
	spell.HigherLevels = strings.Join(higher, "\n")

	raw.Get("classes.fromClassList").ForEach(func(_, cls gjson.Result) bool {
		spell.Classes = append(spell.Classes, cls.Get("name").String())
		return true
	})

	return spell
}

func spellComponents(v gjson.Result) rules.SpellComponents {
	comp := rules.SpellComponents{
		Verbal:  v.Get("v").Type == gjson.True,
		Somatic: v.Get("s").Type == gjson.True,
		Royalty: v.Get("r").Type == gjson.True,
	}

	switch m := v.Get("m"); {
	case m.Type == gjson.String:
		comp.Material = markup.Expand(m.String())
	case m.IsObject():
		comp.Material = markup.Expand(m.Get("text").String())
	}

	return comp
}

func castingTimes(v gjson.Result) []rules.CastingTime {
	var times []rules.CastingTime
	v.ForEach(func(_, t gjson.Result) bool {
		times = append(times, rules.CastingTime{
			Number:    intOr(t.Get("number"), 1),
			Unit:      t.Get("unit").String(),
			Condition: markup.Expand(t.Get("condition").String()),
		})
		return true
	})
	return times
}

func spellRange(v gjson.Result) *rules.SpellRange {
	if !v.IsObject() {
		return nil
	}

	r := &rules.SpellRange{Type: v.Get("type").String()}
	if d := v.Get("distance"); d.IsObject() {
		r.Distance = &rules.Distance{
			Type:   d.Get("type").String(),
			Amount: optInt(d.Get("amount")),
		}
	}

	return r
}

func spellDurations(v gjson.Result) []rules.SpellDuration {
	var out []rules.SpellDuration
	v.ForEach(func(_, d gjson.Result) bool {
		out = append(out, rules.SpellDuration{
			Type:          d.Get("type").String(),
			Unit:          d.Get("duration.type").String(),
			Amount:        optInt(d.Get("duration.amount")),
			Concentration: d.Get("concentration").Type == gjson.True,
		})
		return true
	})
	return out
}

func meta(raw gjson.Result) rules.Meta {
	return rules.Meta{
		Name:   raw.Get("name").String(),
		Source: raw.Get("source").String(),
		SRD52:  true,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
