package loader

import (
	"context"

	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

func (l *dirLoader) classes(ctx context.Context) ([]rules.Class, error) {
	files, ok := l.indexedFiles("class")
	if !ok {
		log.Warn().Msg("class/index.json not found, skipping classes")
		return []rules.Class{}, nil
	}

	c := newCollector[rules.Class](false)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, ok := l.readJSON("class", file)
		if !ok {
			continue
		}

		related := classFile{
			features:         srdEntries(data.Get("classFeature"), "classFeature"),
			subclasses:       srdEntries(data.Get("subclass"), "subclass"),
			subclassFeatures: srdEntries(data.Get("subclassFeature"), "subclassFeature"),
		}

		for _, raw := range srdEntries(data.Get("class"), "class") {
			c.add(parseClass(raw, related))
		}
	}

	logLoaded("classes", len(c.items))
	return c.result(), nil
}

// classFile holds the SRD records that a class file lists next to its classes.
type classFile struct {
	features         []gjson.Result
	subclasses       []gjson.Result
	subclassFeatures []gjson.Result
}

// parseClass builds a class from its record and the feature and subclass records of the same file.
func parseClass(raw gjson.Result, file classFile) rules.Class {
	name := raw.Get("name").String()
	source := raw.Get("source").String()

	cls := rules.Class{
		Meta:                meta(raw),
		HitDie:              intOr(raw.Get("hd.faces"), 8),
		SavingThrows:        rules.ExpandAll(strs(raw.Get("proficiency")), rules.AbilityScore),
		ArmorProficiencies:  proficiencies(raw.Get("startingProficiencies.armor")),
		WeaponProficiencies: proficiencies(raw.Get("startingProficiencies.weapons")),
		ToolProficiencies:   proficiencies(raw.Get("startingProficiencies.tools")),
		SkillChoices:        strs(raw.Get("startingProficiencies.skills.0.choose.from")),
		SkillCount:          intOr(raw.Get("startingProficiencies.skills.0.choose.count"), 0),
		Features:            []rules.ClassFeature{},
		Subclasses:          []rules.Subclass{},
	}

	// 2024 classes carry primaryAbility as [{"str": true}]; older ones only list save proficiencies
	cls.PrimaryAbility = cls.SavingThrows
	if pa := raw.Get("primaryAbility"); pa.IsArray() {
		var abilities []string
		pa.ForEach(func(_, group gjson.Result) bool {
			abilities = append(abilities, rules.ExpandAll(trueKeys(group), rules.AbilityScore)...)
			return true
		})
		cls.PrimaryAbility = abilities
	}

	for _, f := range file.features {
		if f.Get("className").String() == name && f.Get("classSource").String() == source {
			cls.Features = append(cls.Features, parseFeature(f))
		}
	}

	for _, sc := range file.subclasses {
		if sc.Get("className").String() != name {
			continue
		}

		shortName := sc.Get("shortName").String()
		if shortName == "" {
			shortName = sc.Get("name").String()
		}

		sub := rules.Subclass{
			Name:      sc.Get("name").String(),
			Source:    sc.Get("source").String(),
			ShortName: shortName,
			Features:  []rules.ClassFeature{},
		}

		for _, f := range file.subclassFeatures {
			if f.Get("subclassShortName").String() == shortName && f.Get("className").String() == name {
				sub.Features = append(sub.Features, parseFeature(f))
			}
		}

		cls.Subclasses = append(cls.Subclasses, sub)
	}

	return cls
}

func parseFeature(f gjson.Result) rules.ClassFeature {
	return rules.ClassFeature{
		Name:        f.Get("name").String(),
		Level:       int(f.Get("level").Int()),
		Description: RenderEntries(f.Get("entries")),
	}
}

// proficiencies renders strings (which may carry markup) and {"proficiency": "..."} objects.
func proficiencies(v gjson.Result) []string {
	out := []string{}
	v.ForEach(func(_, p gjson.Result) bool {
		switch {
		case p.Type == gjson.String:
			out = append(out, markup.Expand(p.String()))
		case p.Get("proficiency").Exists():
			out = append(out, markup.Expand(p.Get("proficiency").String()))
		default:
			out = append(out, p.Raw)
		}
		return true
	})
	return out
}
