package loader

import (
	"context"

	"github.com/TJurijs/5esrd-api/markup"
	"github.com/TJurijs/5esrd-api/rules"
	"github.com/tidwall/gjson"
)

// itemFiles are read in order; an item already loaded from an earlier file wins.
var itemFiles = []string{"items.json", "items-base.json"}

func (l *dirLoader) items(ctx context.Context) ([]rules.Item, error) {
	c := newCollector[rules.Item](true)

	for _, file := range itemFiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, ok := l.readJSON(file)
		if !ok {
			continue
		}

		for _, key := range []string{"item", "baseitem"} {
			for _, raw := range srdEntries(data.Get(key), "item") {
				if c.has(raw.Get("name").String()) {
					continue
				}
				c.add(parseItem(raw))
			}
		}
	}

	logLoaded("items", len(c.items))
	return c.result(), nil
}

func parseItem(raw gjson.Result) rules.Item {
	item := rules.Item{
		Meta:             meta(raw),
		Type:             "Adventuring Gear",
		Rarity:           "none",
		Weight:           optFloat(raw.Get("weight")),
		Wondrous:         raw.Get("wondrous").Type == gjson.True,
		Properties:       []string{},
		Damage:           raw.Get("dmg1").String(),
		Range:            raw.Get("range").String(),
		AC:               optInt(raw.Get("ac")),
		BonusAttack:      raw.Get("bonusWeapon").String(),
		BonusSpellAttack: raw.Get("bonusSpellAttack").String(),
		BonusSpellSaveDC: raw.Get("bonusSpellSaveDc").String(),
		BonusAC:          raw.Get("bonusAc").String(),
		Charges:          optInt(raw.Get("charges")),
		Description:      RenderEntries(raw.Get("entries")),
	}

	if t := raw.Get("type").String(); t != "" {
		item.Type = rules.ItemType(t)
	}

	if r := raw.Get("rarity").String(); r != "" {
		item.Rarity = r
	}

	if v := raw.Get("value"); v.Exists() {
		item.Value = v.String() + " cp"
	}

	switch attune := raw.Get("reqAttune"); attune.Type {
	case gjson.String:
		item.Attunement = markup.Expand(attune.String())
	case gjson.True:
		item.Attunement = "required"
	}

	// 2024 data lists properties as "F|XPHB" strings or {"uid": "F|XPHB"} objects
	raw.Get("property").ForEach(func(_, p gjson.Result) bool {
		code := p.String()
		if p.IsObject() {
			code = p.Get("uid").String()
		}
		item.Properties = append(item.Properties, rules.ItemProperty(code))
		return true
	})

	if dt := raw.Get("dmgType").String(); dt != "" {
		item.DamageType = rules.DamageType(dt)
	}

	if rc := raw.Get("recharge").String(); rc != "" {
		item.Recharge = rules.ItemRecharge(rc)
	}

	return item
}
