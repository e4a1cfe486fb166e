package markup

import (
	"strconv"
	"strings"
)

// Rule converts the trimmed content of an invocation into display text.
type Rule func(content string) string

// rules is the built-in table, keyed by case-sensitive tag name.
// It is filled once in init and only read afterwards.
var rules = map[string]Rule{}

func init() {
	register(firstField,
		// formatting spans
		"b", "bold", "i", "italic", "strike", "s", "u", "underline", "sup", "sub",
		"code", "kbd", "note", "tip", "color", "highlight", "style", "font",
		// dice expressions
		"dice", "damage", "d20", "autodice",
		// references to other rules entities
		"condition", "status", "spell", "item", "creature", "class", "subclass",
		"classFeature", "subclassFeature", "feat", "background", "race", "sense",
		"skill", "action", "language", "variantrule", "table", "adventure", "book",
		"filter", "quickref", "charoption", "optfeature", "reward", "vehicle",
		"vehupgrade", "object", "trap", "hazard", "deity", "cult", "boon", "disease",
		"psionic", "itemProperty", "itemMastery",
	)

	register(lastField, "scaledice", "scaledamage")

	register(signedNumber, "hit")
	register(difficultyClass, "dc")
	register(recharge, "recharge")
	register(chance, "chance")

	register(attackRoll, "atkr")
	register(attack, "atk")
	register(savingThrow, "actSave")

	register(label("Failure:"), "actSaveFail")
	register(label("Success:"), "actSaveSuccess")
	register(label("Failure or Success:"), "actSaveSuccessOrFail")
	register(label("Trigger:"), "actTrigger")
	register(label("Response:"), "actResponse")
	register(label("Miss:"), "m")
	register(label("Hit or Miss:"), "hom")
	register(label("Hit: "), "h")

	register(verbatim, "coinssimple", "coinsimple")
}

func register(r Rule, names ...string) {
	for _, name := range names {
		rules[name] = r
	}
}

// resolve picks the rule for name, falling back to the first field for unknown tags.
func resolve(name, content string) string {
	content = strings.TrimSpace(content)

	if r, ok := rules[name]; ok {
		return r(content)
	}

	return firstField(content)
}

// Fields inside a content are separated by '|': {@spell fireball|XPHB}.
const fieldSeparator = "|"

func firstField(content string) string {
	head, _, _ := strings.Cut(content, fieldSeparator)
	return head
}

func lastField(content string) string {
	if i := strings.LastIndex(content, fieldSeparator); i >= 0 {
		return content[i+len(fieldSeparator):]
	}
	return content
}

func verbatim(content string) string {
	return content
}

func label(text string) Rule {
	return func(string) string {
		return text
	}
}

// signedNumber renders an attack bonus: 5 -> +5, -1 -> -1.
func signedNumber(content string) string {
	n, ok := leadingInt(content)
	if !ok {
		return content
	}

	if n >= 0 {
		return "+" + strconv.FormatInt(n, 10)
	}

	return strconv.FormatInt(n, 10)
}

func difficultyClass(content string) string {
	return "DC " + content
}

func chance(content string) string {
	return content + " percent"
}

// Recharge values below 6 are the low end of a d6 range.
const rechargeMax = 6

func recharge(content string) string {
	if content == "" {
		return "(Recharge " + strconv.Itoa(rechargeMax) + ")"
	}

	n, ok := leadingInt(content)
	if !ok {
		return "(Recharge " + content + ")"
	}

	if n < rechargeMax {
		return "(Recharge " + strconv.FormatInt(n, 10) + "–" + strconv.Itoa(rechargeMax) + ")"
	}

	return "(Recharge " + strconv.FormatInt(n, 10) + ")"
}

var attackCodes = map[string]string{
	"m": "Melee",
	"r": "Ranged",
	"g": "Magical",
	"a": "Area",
}

// Older data spells out weapon/spell attacks with two-letter codes.
var legacyAttackCodes = map[string]string{
	"mw":    "Melee Weapon",
	"rw":    "Ranged Weapon",
	"ms":    "Melee Spell",
	"rs":    "Ranged Spell",
	"mw,rw": "Melee or Ranged Weapon",
	"mw,rs": "Melee or Ranged Weapon/Spell",
	"ms,rs": "Melee or Ranged Spell",
}

// joinAttackCodes maps "m,r" to "Melee or Ranged". Unknown codes are kept.
func joinAttackCodes(content string) string {
	codes := strings.Split(content, ",")
	names := make([]string, len(codes))

	for i, code := range codes {
		code = strings.TrimSpace(code)
		if name, ok := attackCodes[code]; ok {
			names[i] = name
		} else {
			names[i] = code
		}
	}

	return strings.Join(names, " or ")
}

func attackRoll(content string) string {
	return joinAttackCodes(content) + " Attack Roll:"
}

func attack(content string) string {
	if phrase, ok := legacyAttackCodes[content]; ok {
		return phrase + " Attack:"
	}
	return joinAttackCodes(content) + " Attack:"
}

var abilityNames = map[string]string{
	"str": "Strength",
	"dex": "Dexterity",
	"con": "Constitution",
	"int": "Intelligence",
	"wis": "Wisdom",
	"cha": "Charisma",
}

func savingThrow(content string) string {
	ability, ok := abilityNames[strings.ToLower(strings.TrimSpace(content))]
	if !ok {
		ability = content
	}
	return ability + " Saving Throw:"
}
