package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/TJurijs/5esrd-api/rules"
	"github.com/stretchr/testify/require"
)

const testDataPath = "testdata/data"

func loadTestData(t *testing.T) *rules.Dataset {
	t.Helper()

	ds, err := Load(context.Background(), testDataPath)
	require.NoError(t, err)
	require.NotNil(t, ds)

	return ds
}

func findByName[T rules.Entity](t *testing.T, items []T, name string) T {
	t.Helper()

	for _, item := range items {
		if item.EntityName() == name {
			return item
		}
	}

	require.FailNow(t, "entity not found", name)
	var zero T
	return zero
}

func TestLoad_Counts(t *testing.T) {
	ds := loadTestData(t)

	require.Equal(t, map[rules.Kind]int{
		rules.KindSpell:      3,
		rules.KindMonster:    3,
		rules.KindItem:       4,
		rules.KindClass:      1,
		rules.KindFeat:       3,
		rules.KindBackground: 2,
		rules.KindRace:       2,
		rules.KindCondition:  1,
		rules.KindSkill:      2,
		rules.KindLanguage:   3,
	}, ds.Counts())
}

func TestLoad_OnlySRDEntries(t *testing.T) {
	ds := loadTestData(t)

	for _, k := range rules.Kinds {
		for _, e := range ds.Entities(k) {
			require.NotEqual(t, "Secret Homebrew Spell", e.EntityName())
			require.NotEqual(t, "Exotic Blade", e.EntityName())
			require.NotEqual(t, "Sight Rot", e.EntityName())
		}
	}

	// flagged only basicRules2024
	shield := findByName(t, ds.Spells, "Shield")
	require.True(t, shield.SRD52)
}

func TestLoad_Spells(t *testing.T) {
	ds := loadTestData(t)

	fireball := findByName(t, ds.Spells, "Fireball")
	require.Equal(t, "XPHB", fireball.Source)
	require.Equal(t, 3, fireball.Level)
	require.Equal(t, "Evocation", fireball.School)
	require.Equal(t, "1 action", fireball.CastingTime)
	require.Equal(t, "150 feet", fireball.Range)
	require.Equal(t, "Instantaneous", fireball.Duration)
	require.False(t, fireball.Concentration)
	require.Equal(t, rules.SpellComponents{Verbal: true, Somatic: true, Material: "a ball of bat guano and sulfur"}, fireball.Components)
	require.Equal(t,
		"A bright streak flashes from you to a point you choose within range. Each creature in a 20-foot-radius "+
			"Sphere [Area of Effect] centered on that point makes a Dexterity Saving Throw:.\n"+
			"Failure: 8d6 Fire damage. Success: Half damage.",
		fireball.Description)
	require.Equal(t, "The damage increases by 1d6 for each spell slot level above 3.", fireball.HigherLevels)
	require.Equal(t, []string{"Dexterity"}, fireball.SavingThrow)
	require.Equal(t, []string{"Sphere"}, fireball.AreaTags)
	require.Equal(t, []string{"Affects Objects"}, fireball.MiscTags)
	require.Empty(t, fireball.Classes)

	shield := findByName(t, ds.Spells, "Shield")
	require.Equal(t, "1 reaction (which you take when you are hit by an attack roll or targeted by the Magic Missile spell)", shield.CastingTime)
	require.Equal(t, "which you take when you are hit by an attack roll or targeted by the Magic Missile spell", shield.CastingTimeCondition)
	require.Equal(t, "Self", shield.Range)
	require.Equal(t, "1 round", shield.Duration)

	bless := findByName(t, ds.Spells, "Bless")
	require.True(t, bless.Concentration)
	require.Equal(t, "Concentration, up to 1 minute", bless.Duration)
	require.Equal(t, "a Holy Symbol worth 5+ GP", bless.Components.Material)
	require.Equal(t, []string{"Cleric", "Paladin"}, bless.Classes)
}

func TestLoad_Monsters(t *testing.T) {
	ds := loadTestData(t)

	goblin := findByName(t, ds.Monsters, "Goblin Warrior")
	require.Equal(t, []string{"Small"}, goblin.Size)
	require.Equal(t, "fey", goblin.Type)
	require.Equal(t, "Chaotic Neutral", goblin.Alignment)
	require.Equal(t, 15, goblin.AC)
	require.Equal(t, "leather armor, shield", goblin.ACNote)
	require.Equal(t, rules.HitPoints{Average: 10}, goblin.HP)
	require.Equal(t, "3d6", goblin.HPFormula)
	require.Equal(t, 30, *goblin.Speed.Walk)
	require.Nil(t, goblin.Speed.Fly)
	require.Equal(t, map[string]int{"stealth": 6}, goblin.Skills)
	require.Nil(t, goblin.SavingThrows)
	require.Equal(t, []string{"darkvision 60 ft."}, goblin.Senses)
	require.Equal(t, 9, goblin.PassivePerception)
	require.Equal(t, []string{"Common", "Goblin"}, goblin.Languages)
	require.Equal(t, "1/4", goblin.CR)
	require.Empty(t, goblin.Traits)
	require.Len(t, goblin.Actions, 1)
	require.Equal(t, "Scimitar", goblin.Actions[0].Name)
	require.Equal(t,
		"Melee Attack Roll: +4, reach 5 ft. Hit: 5 (1d6 + 2) Slashing damage, plus 2 (1d4) Slashing damage if the attack roll had Advantage.",
		goblin.Actions[0].Description)
	require.Equal(t, []rules.NamedText{{Name: "Nimble Escape", Description: "The goblin takes the Disengage or Hide action."}}, goblin.BonusActions)
	require.Nil(t, goblin.Reactions)

	dragon := findByName(t, ds.Monsters, "Young Red Dragon")
	require.Equal(t, "dragon", dragon.Type)
	require.Equal(t, 18, dragon.AC)
	require.Empty(t, dragon.ACNote)
	require.Equal(t, 80, *dragon.Speed.Fly)
	require.Equal(t, 40, *dragon.Speed.Climb)
	require.True(t, dragon.Speed.CanHover)
	require.Equal(t, map[string]int{"Dexterity": 4, "Wisdom": 4}, dragon.SavingThrows)
	require.Equal(t, []string{"Fire"}, dragon.DamageImmunities)
	require.Equal(t, []string{"Bludgeoning", "Piercing"}, dragon.DamageResistances)
	require.Empty(t, dragon.DamageVulnerabilities)
	require.Equal(t, []string{"frightened"}, dragon.ConditionImmunities)
	require.Equal(t, "10", dragon.CR)
	require.Equal(t, "Fire Breath (Recharge 5–6)", dragon.Actions[0].Name)
	require.Equal(t,
		"Dexterity Saving Throw: DC 17, each creature in a 30-foot Cone [Area of Effect]. Failure: 56 (16d6) Fire damage. Success: Half damage.",
		dragon.Actions[0].Description)
	require.Len(t, dragon.LegendaryActions, 1)

	spirit := findByName(t, ds.Monsters, "Summoned Spirit")
	require.Equal(t, 11, spirit.AC)
	require.Equal(t, "plus the level of the spell", spirit.ACNote)
	require.True(t, spirit.HP.IsSpecial())
	require.Equal(t, "40 + 10 for each spell level above 4", spirit.HP.String())
	require.Equal(t, 30, *spirit.Speed.Walk)
	require.Equal(t, "Unaligned", spirit.Alignment)
	require.Equal(t, rules.MonsterAbilities{Str: 10, Dex: 10, Con: 10, Int: 10, Wis: 10, Cha: 10}, spirit.Abilities)
}

func TestLoad_Items(t *testing.T) {
	ds := loadTestData(t)

	names := make([]string, len(ds.Items))
	for i, item := range ds.Items {
		names[i] = item.Name
	}
	require.Equal(t, []string{"Potion of Healing", "Wand of Magic Missiles", "Holy Avenger", "Longsword"}, names)

	// the entry from items.json wins over the duplicate in items-base.json
	potion := findByName(t, ds.Items, "Potion of Healing")
	require.Equal(t, "XDMG", potion.Source)
	require.Equal(t, "Potion", potion.Type)
	require.Equal(t, "common", potion.Rarity)
	require.Equal(t, 0.5, *potion.Weight)
	require.Equal(t, "5000 cp", potion.Value)
	require.Equal(t, "You regain 2d4 + 2 Hit Points when you drink this potion.", potion.Description)

	wand := findByName(t, ds.Items, "Wand of Magic Missiles")
	require.Equal(t, "Wand", wand.Type)
	require.Equal(t, "required", wand.Attunement)
	require.Equal(t, "Dawn", wand.Recharge)
	require.Equal(t, 7, *wand.Charges)

	avenger := findByName(t, ds.Items, "Holy Avenger")
	require.Equal(t, "Adventuring Gear", avenger.Type)
	require.Equal(t, "by a Paladin", avenger.Attunement)
	require.Equal(t, "+3", avenger.BonusAttack)

	sword := findByName(t, ds.Items, "Longsword")
	require.Equal(t, "Melee Weapon", sword.Type)
	require.Equal(t, "1d8", sword.Damage)
	require.Equal(t, "Slashing", sword.DamageType)
	require.Equal(t, []string{"Versatile", "Finesse"}, sword.Properties)
	require.Equal(t, "1500 cp", sword.Value)
}

func TestLoad_Classes(t *testing.T) {
	ds := loadTestData(t)

	fighter := findByName(t, ds.Classes, "Fighter")
	require.Equal(t, 10, fighter.HitDie)
	require.Equal(t, []string{"Strength", "Constitution"}, fighter.SavingThrows)
	require.Equal(t, []string{"Strength", "Dexterity"}, fighter.PrimaryAbility)
	require.Equal(t, []string{"light armor", "medium", "heavy", "shield"}, fighter.ArmorProficiencies)
	require.Equal(t, []string{"simple", "martial"}, fighter.WeaponProficiencies)
	require.Empty(t, fighter.ToolProficiencies)
	require.Equal(t, []string{"acrobatics", "athletics", "history"}, fighter.SkillChoices)
	require.Equal(t, 2, fighter.SkillCount)

	require.Equal(t, []rules.ClassFeature{
		{Name: "Second Wind", Level: 1, Description: "You can use a Bonus Action to regain 1d10 Hit Points."},
		{Name: "Action Surge", Level: 2, Description: "You can take one additional action."},
	}, fighter.Features)

	require.Len(t, fighter.Subclasses, 1)
	champion := fighter.Subclasses[0]
	require.Equal(t, "Champion", champion.Name)
	require.Equal(t, "Champion", champion.ShortName)
	require.Equal(t, []rules.ClassFeature{
		{Name: "Improved Critical", Level: 3, Description: "Your attack rolls can score a Critical Hit on a roll of 19 or 20."},
	}, champion.Features)
}

func TestLoad_Feats(t *testing.T) {
	ds := loadTestData(t)

	alert := findByName(t, ds.Feats, "Alert")
	require.Equal(t, "Origin", alert.Category)
	require.Empty(t, alert.Prerequisite)
	require.Nil(t, alert.AbilityBoost)
	require.Equal(t,
		"You gain the following benefits.\nInitiative Proficiency: When you roll Initiative, you can add your Proficiency Bonus to the roll.",
		alert.Description)

	grappler := findByName(t, ds.Feats, "Grappler")
	require.Equal(t, "General", grappler.Category)
	require.Equal(t, "Level 4, Strength 13 or higher or Dexterity 13 or higher", grappler.Prerequisite)
	require.Equal(t, []string{"Strength", "Dexterity"}, grappler.AbilityBoost)

	boon := findByName(t, ds.Feats, "Boon of Fate")
	require.Equal(t, "Epic Boon", boon.Category)
	require.Equal(t, "Level 19", boon.Prerequisite)
	require.True(t, boon.Repeatable)
}

func TestLoad_Backgrounds(t *testing.T) {
	ds := loadTestData(t)

	acolyte := findByName(t, ds.Backgrounds, "Acolyte")
	require.Equal(t, []string{"insight", "religion"}, acolyte.SkillProficiencies)
	require.Equal(t, []string{"calligrapher's supplies"}, acolyte.ToolProficiencies)
	require.Empty(t, acolyte.Languages)
	require.Equal(t, "(A) calligrapher's supplies, book, 10 parchment, 8 GP; or (B) 50 GP", acolyte.Equipment)
	require.Equal(t, "You devoted yourself to service in a temple.\nFeat: Magic Initiate (Cleric)", acolyte.Description)
	require.Equal(t, []rules.NamedText{{Name: "Feat", Description: "Magic Initiate (Cleric)"}}, acolyte.Features)

	sage := findByName(t, ds.Backgrounds, "Sage")
	require.Equal(t, []string{"any (your choice)"}, sage.Languages)
	require.Empty(t, sage.Equipment)
}

func TestLoad_Races(t *testing.T) {
	ds := loadTestData(t)

	dwarf := findByName(t, ds.Races, "Dwarf")
	require.Equal(t, []string{"Medium"}, dwarf.Size)
	require.Equal(t, 30, dwarf.Speed)
	require.Equal(t, []string{"common", "dwarvish"}, dwarf.Languages)
	require.Len(t, dwarf.Traits, 2)
	require.Equal(t, rules.NamedText{Name: "Darkvision", Description: "You have Darkvision with a range of 120 feet."}, dwarf.Traits[0])
	require.Nil(t, dwarf.AbilityBoosts)

	halfling := findByName(t, ds.Races, "Halfling")
	require.Equal(t, []string{"Small"}, halfling.Size)
	require.Equal(t, 25, halfling.Speed)
	require.Equal(t, []string{"Dexterity"}, halfling.AbilityBoosts)
	require.Empty(t, halfling.Traits)
}

func TestLoad_ConditionsSkillsLanguages(t *testing.T) {
	ds := loadTestData(t)

	blinded := findByName(t, ds.Conditions, "Blinded")
	require.Equal(t, []string{
		"Can't See: You can't see and automatically fail any ability check that requires sight.",
		"Attacks Affected: Attack rolls against you have Advantage.",
	}, blinded.Effects)
	require.Equal(t,
		"While you have the Blinded condition, you experience the following effects.\n"+
			"• Can't See: You can't see and automatically fail any ability check that requires sight.\n"+
			"• Attacks Affected: Attack rolls against you have Advantage.",
		blinded.Description)

	require.Equal(t, "Strength", findByName(t, ds.Skills, "Athletics").Ability)
	require.Equal(t, "Dexterity", findByName(t, ds.Skills, "Stealth").Ability)

	common := findByName(t, ds.Languages, "Common")
	require.Equal(t, "standard", common.Type)
	require.Equal(t, []string{"Humans"}, common.TypicalSpeakers)
	require.Equal(t, "Common", common.Script)

	require.Equal(t, "rare", findByName(t, ds.Languages, "Abyssal").Type)
	require.Equal(t, "standard", findByName(t, ds.Languages, "Druidic").Type)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	ds, err := Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Zero(t, ds.Total())

	// empty categories are empty slices, not nil, so they serialize as []
	for _, k := range rules.Kinds {
		require.NotNil(t, ds.Entities(k), "kind %s", k)
	}
}

func TestLoad_InvalidDataPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrDataPath)

	file := filepath.Join(t.TempDir(), "file.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o600))

	_, err = Load(context.Background(), file)
	require.ErrorIs(t, err, ErrDataPath)
}

func TestLoad_MalformedFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feats.json"), []byte(`{"feat": [`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills.json"),
		[]byte(`{"skill": [{"name": "Arcana", "source": "XPHB", "srd52": true, "ability": "int"}]}`), 0o600))

	ds, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Empty(t, ds.Feats)
	require.Len(t, ds.Skills, 1)
	require.Equal(t, "Intelligence", ds.Skills[0].Ability)
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, testDataPath)
	require.ErrorIs(t, err, context.Canceled)
}
