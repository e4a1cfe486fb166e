package catalog

import (
	"slices"
	"strings"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to n names of the given kind that look like name, best match first.
// Subsequence matches ("frbll" for "Fireball") rank before near misses by edit distance ("Firebal").
func (c *Catalog) Suggest(kind rules.Kind, name string, n int) []string {
	query := strings.TrimSpace(name)
	if query == "" || n <= 0 {
		return []string{}
	}

	names := c.current().names(kind)

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})

	out := []string{}
	seen := make(map[string]bool)

	add := func(s string) {
		if len(out) < n && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, r := range ranks {
		add(r.Target)
	}

	type near struct {
		name string
		dist int
	}

	lower := strings.ToLower(query)
	maxDist := max(2, len(lower)/3)

	var misses []near
	for _, candidate := range names {
		if d := fuzzy.LevenshteinDistance(lower, strings.ToLower(candidate)); d <= maxDist {
			misses = append(misses, near{candidate, d})
		}
	}

	slices.SortStableFunc(misses, func(a, b near) int { return a.dist - b.dist })

	for _, m := range misses {
		add(m.name)
	}

	return out
}

func (s *snapshot) names(kind rules.Kind) []string {
	switch kind {
	case rules.KindSpell:
		return s.spells.names
	case rules.KindMonster:
		return s.monsters.names
	case rules.KindItem:
		return s.items.names
	case rules.KindClass:
		return s.classes.names
	case rules.KindFeat:
		return s.feats.names
	case rules.KindBackground:
		return s.backgrounds.names
	case rules.KindRace:
		return s.races.names
	case rules.KindCondition:
		return s.conditions.names
	case rules.KindSkill:
		return s.skills.names
	case rules.KindLanguage:
		return s.languages.names
	default:
		return nil
	}
}
