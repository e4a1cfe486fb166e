package rules

import "strings"

// codeTable maps 5etools short codes to display names. Unknown codes pass through.
type codeTable map[string]string

func (t codeTable) expand(code string) string {
	if name, ok := t[code]; ok {
		return name
	}
	return code
}

var spellSchools = codeTable{
	"A": "Abjuration",
	"C": "Conjuration",
	"D": "Divination",
	"E": "Enchantment",
	"I": "Illusion",
	"N": "Necromancy",
	"T": "Transmutation",
	"V": "Evocation",
	"P": "Psionic",
}

func SpellSchool(code string) string { return spellSchools.expand(code) }

var sizes = codeTable{
	"F": "Fine",
	"D": "Diminutive",
	"T": "Tiny",
	"S": "Small",
	"M": "Medium",
	"L": "Large",
	"H": "Huge",
	"G": "Gargantuan",
	"C": "Colossal",
	"V": "Varies",
}

func Size(code string) string { return sizes.expand(code) }

var alignments = codeTable{
	"L":  "Lawful",
	"C":  "Chaotic",
	"N":  "Neutral",
	"NX": "Neutral",
	"NY": "Neutral",
	"G":  "Good",
	"E":  "Evil",
	"U":  "Unaligned",
	"A":  "Any Alignment",
}

// Alignment joins alignment codes into one phrase: ["L", "G"] -> "Lawful Good".
// Repeated words are dropped and no codes at all means "Unaligned".
func Alignment(codes []string) string {
	if len(codes) == 0 {
		return "Unaligned"
	}

	seen := make(map[string]bool, len(codes))
	parts := make([]string, 0, len(codes))

	for _, code := range codes {
		part := alignments.expand(code)
		if seen[part] {
			continue
		}
		seen[part] = true
		parts = append(parts, part)
	}

	return strings.Join(parts, " ")
}

var damageTypes = codeTable{
	"A": "Acid",
	"B": "Bludgeoning",
	"C": "Cold",
	"F": "Fire",
	"O": "Force",
	"L": "Lightning",
	"N": "Necrotic",
	"P": "Piercing",
	"I": "Poison",
	"Y": "Psychic",
	"R": "Radiant",
	"S": "Slashing",
	"T": "Thunder",
}

func DamageType(code string) string { return damageTypes.expand(code) }

var abilityScores = codeTable{
	"str": "Strength",
	"dex": "Dexterity",
	"con": "Constitution",
	"int": "Intelligence",
	"wis": "Wisdom",
	"cha": "Charisma",
}

func AbilityScore(code string) string { return abilityScores.expand(code) }

var monsterLanguages = codeTable{
	"AB":  "Abyssal",
	"AQ":  "Aquan",
	"AU":  "Auran",
	"C":   "Common",
	"CE":  "Celestial",
	"CS":  "Can't Speak Known Languages",
	"CSL": "Common Sign Language",
	"D":   "Dwarvish",
	"DR":  "Draconic",
	"DS":  "Deep Speech",
	"DU":  "Druidic",
	"E":   "Elvish",
	"G":   "Gnomish",
	"GI":  "Giant",
	"GO":  "Goblin",
	"GTH": "Gith",
	"H":   "Halfling",
	"I":   "Infernal",
	"IG":  "Ignan",
	"LF":  "Languages Known in Life",
	"O":   "Orc",
	"OTH": "Other",
	"P":   "Primordial",
	"S":   "Sylvan",
	"T":   "Terran",
	"TC":  "Thieves' Cant",
	"TP":  "Telepathy",
	"U":   "Undercommon",
	"X":   "Any (Choose)",
	"XX":  "All",
}

func MonsterLanguage(code string) string { return monsterLanguages.expand(code) }

var itemTypes = codeTable{
	"$A":  "Art Object",
	"$C":  "Coinage",
	"$G":  "Gemstone",
	"A":   "Ammunition",
	"AF":  "Futuristic Ammunition",
	"AIR": "Vehicle (Air)",
	"AT":  "Artisan's Tools",
	"EXP": "Explosive",
	"FD":  "Food and Drink",
	"G":   "Adventuring Gear",
	"GS":  "Gaming Set",
	"GV":  "Generic Variant",
	"HA":  "Heavy Armor",
	"INS": "Instrument",
	"LA":  "Light Armor",
	"M":   "Melee Weapon",
	"MA":  "Medium Armor",
	"MNT": "Mount",
	"OTH": "Other",
	"P":   "Potion",
	"R":   "Ranged Weapon",
	"RD":  "Rod",
	"RG":  "Ring",
	"S":   "Shield",
	"SC":  "Scroll",
	"SCF": "Spellcasting Focus",
	"SHP": "Vehicle (Water)",
	"SPC": "Vehicle (Space)",
	"T":   "Tools",
	"TAH": "Tack and Harness",
	"TB":  "Trade Bar",
	"TG":  "Trade Good",
	"VEH": "Vehicle (Land)",
	"WD":  "Wand",
}

// ItemType expands an item type code. 2024 data qualifies codes with a source, as in "M|XPHB".
func ItemType(code string) string { return itemTypes.expand(stripSource(code)) }

var itemProperties = codeTable{
	"2H":  "Two-Handed",
	"A":   "Ammunition",
	"AF":  "Futuristic Ammunition",
	"BF":  "Burst Fire",
	"ER":  "Extended Reach",
	"F":   "Finesse",
	"H":   "Heavy",
	"L":   "Light",
	"LD":  "Loading",
	"OTH": "Other",
	"R":   "Reach",
	"RLD": "Reload",
	"S":   "Special",
	"T":   "Thrown",
	"V":   "Versatile",
	"Vst": "Vestige of Divergence",
}

// ItemProperty expands an item property code, with or without a "|SOURCE" suffix.
func ItemProperty(code string) string { return itemProperties.expand(stripSource(code)) }

var itemRecharges = codeTable{
	"round":     "Every Round",
	"restShort": "Short Rest",
	"restLong":  "Long Rest",
	"dawn":      "Dawn",
	"dusk":      "Dusk",
	"midnight":  "Midnight",
	"week":      "Week",
	"month":     "Month",
	"year":      "Year",
	"decade":    "Decade",
	"century":   "Century",
	"special":   "Special",
}

func ItemRecharge(code string) string { return itemRecharges.expand(code) }

var featCategories = codeTable{
	"D":    "Dragonmark",
	"G":    "General",
	"O":    "Origin",
	"FS":   "Fighting Style",
	"FS:P": "Fighting Style (Paladin)",
	"FS:R": "Fighting Style (Ranger)",
	"EB":   "Epic Boon",
}

func FeatCategory(code string) string { return featCategories.expand(code) }

var spellMiscTags = codeTable{
	"HL":   "Healing",
	"THP":  "Grants Temporary HP",
	"SGT":  "Requires Sight",
	"PRM":  "Permanent Effects",
	"SCL":  "Scaling Effects",
	"SCT":  "Scaling Targets",
	"SMN":  "Summons Creature",
	"MAC":  "Modifies AC",
	"TP":   "Teleportation",
	"FMV":  "Forced Movement",
	"RO":   "Rollable Effects",
	"LGTS": "Creates Sunlight",
	"LGT":  "Creates Light",
	"UBA":  "Uses Bonus Action",
	"PS":   "Plane Shifting",
	"OBS":  "Obscures Vision",
	"DFT":  "Difficult Terrain",
	"AAD":  "Additional Attack Damage",
	"OBJ":  "Affects Objects",
	"ADV":  "Grants Advantage",
	"PIR":  "Permanent If Repeated",
}

func MiscTag(code string) string { return spellMiscTags.expand(code) }

var spellAreaTags = codeTable{
	"ST": "Single Target",
	"MT": "Multiple Targets",
	"C":  "Cube",
	"N":  "Cone",
	"Y":  "Cylinder",
	"S":  "Sphere",
	"R":  "Circle",
	"Q":  "Square",
	"L":  "Line",
	"H":  "Hemisphere",
	"W":  "Wall",
	"E":  "Emanation",
}

func AreaTag(code string) string { return spellAreaTags.expand(code) }

var attackTypes = codeTable{
	"MW": "Melee Weapon Attack",
	"RW": "Ranged Weapon Attack",
	"MS": "Melee Spell Attack",
	"RS": "Ranged Spell Attack",
}

func AttackType(code string) string { return attackTypes.expand(code) }

// ExpandAll applies expand to every code.
func ExpandAll(codes []string, expand func(string) string) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = expand(code)
	}
	return out
}

func stripSource(code string) string {
	head, _, _ := strings.Cut(code, "|")
	return head
}
