package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/TJurijs/5esrd-api/catalog"
	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tools answers MCP tool calls from a catalog.
type Tools struct {
	catalog  *catalog.Catalog
	expander *markup.Expander
}

func NewTools(cat *catalog.Catalog, expander *markup.Expander) *Tools {
	if expander == nil {
		expander = markup.New()
	}
	return &Tools{catalog: cat, expander: expander}
}

func withPaging() mcp.ToolOption {
	return func(tool *mcp.Tool) {
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1"))(tool)
		mcp.WithNumber("limit", mcp.Description(fmt.Sprintf("Results per page, at most %d", catalog.MaxLimit)))(tool)
	}
}

func withName(description string) mcp.ToolOption {
	return mcp.WithString("name", mcp.Required(), mcp.Description(description))
}

// List returns every tool with its handler.
func (t *Tools) List() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("search_spells",
				mcp.WithDescription("Find spells by name, level, school or class. Use when a player casts a spell, asks about a spell, or you need a spell's effect, range or components."),
				mcp.WithString("name", mcp.Description("Partial spell name to search for")),
				mcp.WithNumber("level", mcp.Description("Spell level (0 for cantrips, 1-9)")),
				mcp.WithString("school", mcp.Description("School of magic (e.g. Evocation, Necromancy)")),
				mcp.WithString("class", mcp.Description("Class that can cast the spell (e.g. Wizard, Cleric)")),
				mcp.WithString("source", mcp.Description("Source book code (e.g. XPHB)")),
				withPaging(),
			),
			Handler: t.searchSpells,
		},
		{
			Tool: mcp.NewTool("get_spell",
				mcp.WithDescription("Get complete details of a single spell including casting time, range, components, duration and full description."),
				withName("Spell name"),
			),
			Handler: t.getSpell,
		},
		{
			Tool: mcp.NewTool("search_monsters",
				mcp.WithDescription("Find monsters by name, challenge rating, creature type or size. Use when populating encounters or looking up enemy statistics."),
				mcp.WithString("name", mcp.Description("Partial monster name")),
				mcp.WithString("cr", mcp.Description(`Challenge rating (e.g. "1", "1/2", "10")`)),
				mcp.WithString("type", mcp.Description("Creature type (e.g. beast, undead, humanoid)")),
				mcp.WithString("size", mcp.Description("Creature size (e.g. Tiny, Medium, Huge)")),
				mcp.WithString("source", mcp.Description("Source book code (e.g. XMM)")),
				withPaging(),
			),
			Handler: t.searchMonsters,
		},
		{
			Tool: mcp.NewTool("get_monster",
				mcp.WithDescription("Get a monster's full stat block including AC, HP, speed, ability scores, actions and special traits."),
				withName("Monster name"),
			),
			Handler: t.getMonster,
		},
		{
			Tool: mcp.NewTool("search_items",
				mcp.WithDescription("Find weapons, armor and magic items by name, type or rarity."),
				mcp.WithString("name", mcp.Description("Partial item name")),
				mcp.WithString("type", mcp.Description("Item type (e.g. Melee Weapon, Heavy Armor, Potion)")),
				mcp.WithString("rarity", mcp.Description("Item rarity: "+strings.Join(rules.Rarities, ", "))),
				mcp.WithBoolean("attunement", mcp.Description("True to show only items requiring attunement, false for the rest")),
				mcp.WithString("source", mcp.Description("Source book code (e.g. XDMG)")),
				withPaging(),
			),
			Handler: t.searchItems,
		},
		{
			Tool: mcp.NewTool("get_item",
				mcp.WithDescription("Get full item description, properties, damage and mechanical effects."),
				withName("Item name"),
			),
			Handler: t.getItem,
		},
		{
			Tool: mcp.NewTool("get_class",
				mcp.WithDescription("Get class features, hit die, saving throws and proficiencies for a character class."),
				withName("Class name (e.g. Wizard, Fighter, Cleric)"),
			),
			Handler: t.getClass,
		},
		{
			Tool: mcp.NewTool("get_subclasses",
				mcp.WithDescription("Get all available subclasses for a given class."),
				mcp.WithString("className", mcp.Required(), mcp.Description("Class name")),
			),
			Handler: t.getSubclasses,
		},
		{
			Tool: mcp.NewTool("list_classes",
				mcp.WithDescription("List all available character classes."),
			),
			Handler: t.listClasses,
		},
		{
			Tool: mcp.NewTool("search_feats",
				mcp.WithDescription("Find feats by name or category. Use when a player levels up and wants to choose a feat."),
				mcp.WithString("name", mcp.Description("Partial feat name")),
				mcp.WithString("category", mcp.Description("Feat category: General, Origin, Epic Boon, Fighting Style")),
				mcp.WithString("source", mcp.Description("Source book code (e.g. XPHB)")),
				withPaging(),
			),
			Handler: t.searchFeats,
		},
		{
			Tool: mcp.NewTool("get_feat",
				mcp.WithDescription("Get a feat's prerequisites and full description of benefits."),
				withName("Feat name"),
			),
			Handler: t.getFeat,
		},
		{
			Tool: mcp.NewTool("get_background",
				mcp.WithDescription("Get a background's features, skill proficiencies and starting equipment."),
				withName("Background name"),
			),
			Handler: t.getBackground,
		},
		{
			Tool: mcp.NewTool("get_race",
				mcp.WithDescription("Get racial traits, movement speed and ability bonuses for a species."),
				withName("Race or species name"),
			),
			Handler: t.getRace,
		},
		{
			Tool: mcp.NewTool("get_condition",
				mcp.WithDescription("Look up what a condition does mechanically. Use when a creature becomes Blinded, Poisoned, Stunned and so on."),
				withName("Condition name (e.g. Blinded, Grappled, Poisoned)"),
			),
			Handler: t.getCondition,
		},
		{
			Tool: mcp.NewTool("list_conditions",
				mcp.WithDescription("List all conditions. Use for quick reference when unsure of a condition name."),
			),
			Handler: t.listConditions,
		},
		{
			Tool: mcp.NewTool("get_skill",
				mcp.WithDescription("Look up which ability score a skill uses and what it covers."),
				withName("Skill name (e.g. Perception, Stealth, Athletics)"),
			),
			Handler: t.getSkill,
		},
		{
			Tool: mcp.NewTool("list_skills",
				mcp.WithDescription("List all skills with their governing ability scores."),
			),
			Handler: t.listSkills,
		},
		{
			Tool: mcp.NewTool("expand_markup",
				mcp.WithDescription("Convert 5etools inline markup such as {@dice 1d6} or {@hit 5} into plain text."),
				mcp.WithString("text", mcp.Required(), mcp.Description("Text containing {@tag ...} markup")),
			),
			Handler: t.expandMarkup,
		},
	}
}

func (t *Tools) searchSpells(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := newArgReader(req)
	filter := catalog.SpellFilter{
		Name:   args.string("name"),
		Level:  args.int("level"),
		School: args.string("school"),
		Class:  args.string("class"),
		Source: args.string("source"),
	}
	page := args.page()

	if args.err != nil {
		return argumentError(args.err)
	}
	if filter.Level != nil && (*filter.Level < 0 || *filter.Level > 9) {
		return argumentError(fmt.Errorf("level must be between 0 and 9, got %d", *filter.Level))
	}

	return jsonResult(t.catalog.SearchSpells(filter, page))
}

func (t *Tools) getSpell(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	spell, ok := t.catalog.Spell(name)
	return entityResult(t, rules.KindSpell, name, spell, ok)
}

func (t *Tools) searchMonsters(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := newArgReader(req)
	filter := catalog.MonsterFilter{
		Name:   args.string("name"),
		CR:     args.string("cr"),
		Type:   args.string("type"),
		Size:   args.string("size"),
		Source: args.string("source"),
	}
	page := args.page()

	if args.err != nil {
		return argumentError(args.err)
	}
	if filter.CR != "" && !rules.IsChallengeRating(filter.CR) {
		return argumentError(fmt.Errorf("invalid challenge rating %q, expected a number or 1/8, 1/4, 1/2", filter.CR))
	}

	return jsonResult(t.catalog.SearchMonsters(filter, page))
}

func (t *Tools) getMonster(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	monster, ok := t.catalog.Monster(name)
	return entityResult(t, rules.KindMonster, name, monster, ok)
}

func (t *Tools) searchItems(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := newArgReader(req)
	filter := catalog.ItemFilter{
		Name:       args.string("name"),
		Type:       args.string("type"),
		Rarity:     args.string("rarity"),
		Attunement: args.bool("attunement"),
		Source:     args.string("source"),
	}
	page := args.page()

	if args.err != nil {
		return argumentError(args.err)
	}
	if filter.Rarity != "" && !rules.IsRarity(filter.Rarity) {
		return argumentError(fmt.Errorf("unknown rarity %q", filter.Rarity))
	}

	return jsonResult(t.catalog.SearchItems(filter, page))
}

func (t *Tools) getItem(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	item, ok := t.catalog.Item(name)
	return entityResult(t, rules.KindItem, name, item, ok)
}

func (t *Tools) getClass(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	class, ok := t.catalog.Class(name)
	return entityResult(t, rules.KindClass, name, class, ok)
}

func (t *Tools) getSubclasses(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	className, err := req.RequireString("className")
	if err != nil {
		return argumentError(err)
	}
	return jsonResult(listPayload[rules.Subclass]{Data: t.catalog.Subclasses(className)})
}

func (t *Tools) listClasses(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.catalog.ListClasses(catalog.Page{Limit: catalog.MaxLimit}))
}

func (t *Tools) searchFeats(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := newArgReader(req)
	filter := catalog.FeatFilter{
		Name:     args.string("name"),
		Category: args.string("category"),
		Source:   args.string("source"),
	}
	page := args.page()

	if args.err != nil {
		return argumentError(args.err)
	}

	return jsonResult(t.catalog.SearchFeats(filter, page))
}

func (t *Tools) getFeat(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	feat, ok := t.catalog.Feat(name)
	return entityResult(t, rules.KindFeat, name, feat, ok)
}

func (t *Tools) getBackground(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	background, ok := t.catalog.Background(name)
	return entityResult(t, rules.KindBackground, name, background, ok)
}

func (t *Tools) getRace(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	race, ok := t.catalog.Race(name)
	return entityResult(t, rules.KindRace, name, race, ok)
}

func (t *Tools) getCondition(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	condition, ok := t.catalog.Condition(name)
	return entityResult(t, rules.KindCondition, name, condition, ok)
}

func (t *Tools) listConditions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(listPayload[rules.Condition]{Data: t.catalog.ListConditions()})
}

func (t *Tools) getSkill(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argumentError(err)
	}
	skill, ok := t.catalog.Skill(name)
	return entityResult(t, rules.KindSkill, name, skill, ok)
}

func (t *Tools) listSkills(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(listPayload[rules.Skill]{Data: t.catalog.ListSkills()})
}

func (t *Tools) expandMarkup(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return argumentError(err)
	}
	return jsonResult(expandPayload{Text: t.expander.Expand(text)})
}
