package loader

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRenderEntries(t *testing.T) {
	testCases := []struct {
		name    string
		entries string
		want    string
	}{
		{
			name:    "missing",
			entries: ``,
			want:    "",
		},
		{
			name:    "strings_are_expanded",
			entries: `["Make a {@actSave con}.", "{@h}{@damage 2d6}"]`,
			want:    "Make a Constitution Saving Throw:.\nHit: 2d6",
		},
		{
			name:    "list_of_strings",
			entries: `[{"type": "list", "items": ["one {@b bold}", "two"]}]`,
			want:    "• one bold\n• two",
		},
		{
			name:    "list_of_named_items",
			entries: `[{"type": "list", "items": [{"type": "item", "name": "Speed.", "entries": ["Your Speed is 0."]}, {"type": "item", "name": "Grip", "entry": "You let go."}]}]`,
			want:    "• Speed: Your Speed is 0.\n• Grip: You let go.",
		},
		{
			name:    "table",
			entries: `[{"type": "table", "colLabels": ["{@dice d6}", "Effect"], "rows": [["1", "{@condition Blinded|XPHB}"], [{"type": "cell", "roll": {"min": 2, "max": 6}}, "Nothing"]]}]`,
			want:    "d6 | Effect\n1 | Blinded\n2–6 | Nothing",
		},
		{
			name:    "table_without_header",
			entries: `[{"type": "table", "rows": [[1, "a"], [{"type": "cell", "roll": {"exact": 2}}, "b"]]}]`,
			want:    "1 | a\n2 | b",
		},
		{
			name:    "named_entries",
			entries: `[{"type": "entries", "name": "Darkvision", "entries": ["You see in the dark.", "Up to 60 feet."]}]`,
			want:    "Darkvision: You see in the dark.\nUp to 60 feet.",
		},
		{
			name:    "unnamed_inset",
			entries: `[{"type": "inset", "entries": ["Boxed text."]}]`,
			want:    "Boxed text.",
		},
		{
			name:    "items_recurse",
			entries: `[{"type": "options", "items": ["A", {"type": "entries", "name": "B", "entries": ["b"]}]}]`,
			want:    "A\nB: b",
		},
		{
			name:    "empty_parts_dropped",
			entries: `["", {"type": "image"}, 42, "kept"]`,
			want:    "kept",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RenderEntries(gjson.Parse(tc.entries)))
		})
	}
}

func TestIsSRD(t *testing.T) {
	testCases := []struct {
		raw  string
		want bool
	}{
		{`{"srd52": true}`, true},
		{`{"basicRules2024": true}`, true},
		{`{"srd52": "Giant Ape"}`, true},
		{`{"srd52": false}`, false},
		{`{"srd52": ""}`, false},
		{`{"srd": true}`, false},
		{`{}`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			require.Equal(t, tc.want, isSRD(gjson.Parse(tc.raw)))
		})
	}
}

func TestPrerequisites(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{"none", ``, ""},
		{"level", `[{"level": 4}]`, "Level 4"},
		{"class_level", `[{"level": {"level": 4, "class": {"name": "Fighter"}}}]`, "Level 4"},
		{"ability_alternatives", `[{"ability": [{"str": 13}, {"dex": 13}]}]`, "Strength 13 or higher or Dexterity 13 or higher"},
		{"feature", `[{"feature": ["Fighting Style"]}]`, "Fighting Style"},
		{"feat_reference", `[{"feat": ["magic initiate|xphb|Magic Initiate"]}]`, "magic initiate"},
		{"spellcasting", `[{"spellcasting2020": true}]`, "Spellcasting or Pact Magic Feature"},
		{"armor_proficiency", `[{"proficiency": [{"armor": "medium"}]}]`, "Medium Armor Proficiency"},
		{"alternatives", `[{"level": 4}, {"other": "Access to the Bardic Inspiration feature"}]`, "Level 4 or Access to the Bardic Inspiration feature"},
		{"unknown_kept_raw", `[{"psionics": true}]`, "true"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, prerequisites(gjson.Parse(tc.raw)))
		})
	}
}

func TestCoins(t *testing.T) {
	require.Equal(t, "50 GP", coins(5000))
	require.Equal(t, "5 SP", coins(50))
	require.Equal(t, "7 CP", coins(7))
	require.Equal(t, "0 GP", coins(0))
}
