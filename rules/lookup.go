package rules

import (
	"fmt"
	"slices"
	"strconv"
)

var kindLabels = map[Kind]string{
	KindSpell:      "Spell",
	KindMonster:    "Monster",
	KindItem:       "Item",
	KindClass:      "Class",
	KindFeat:       "Feat",
	KindBackground: "Background",
	KindRace:       "Race",
	KindCondition:  "Condition",
	KindSkill:      "Skill",
	KindLanguage:   "Language",
}

// Label is the capitalized display name of the kind.
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// NotFoundMessage is the error text for an unknown name: "Spell 'x' not found".
func NotFoundMessage(kind Kind, name string) string {
	return fmt.Sprintf("%s '%s' not found", kind.Label(), name)
}

// Rarities lists the item rarities present in the data.
var Rarities = []string{
	"none",
	"common",
	"uncommon",
	"rare",
	"very rare",
	"legendary",
	"artifact",
	"varies",
	"unknown",
	"unknown (magic)",
}

func IsRarity(s string) bool {
	return slices.Contains(Rarities, s)
}

const maxChallengeRating = 30

// IsChallengeRating accepts whole ratings ("0", "17") and the fractional ones.
func IsChallengeRating(s string) bool {
	switch s {
	case "1/8", "1/4", "1/2":
		return true
	}

	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= maxChallengeRating
}
