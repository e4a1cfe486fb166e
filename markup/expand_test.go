package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand_EndToEnd(t *testing.T) {
	input := "{@atkr m,r} {@hit 12}, reach 5 ft. {@h}31 ({@damage 4d12 + 5}) Force damage."
	want := "Melee or Ranged Attack Roll: +12, reach 5 ft. Hit: 31 (4d12 + 5) Force damage."

	require.Equal(t, want, Expand(input))
}

func TestExpand_NoMarkupIsUnchanged(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a {curly} brace",
		"an @ sign and } stray { braces",
		"{@",
		"{@}",
		"{@ b}",
		"multi\nline\ttext ✓",
	}

	for _, inp := range inputs {
		require.Equal(t, inp, Expand(inp), "input %q", inp)
	}
}

func TestExpand_Nesting(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bold_around_dc",
			input: "{@b {@dc 15}}",
			want:  "DC 15",
		},
		{
			name:  "three_levels",
			input: "{@i {@b {@hit 3}} to hit}",
			want:  "+3 to hit",
		},
		{
			name:  "siblings_inside_parent",
			input: "{@note {@condition blinded} and {@condition deafened|XPHB}}",
			want:  "blinded and deafened",
		},
		{
			name:  "outer_fields_after_inner_resolution",
			input: "{@spell {@b fireball}|XPHB}",
			want:  "fireball",
		},
		{
			name:  "scaled_dice_last_field",
			input: "deals {@scaledamage 8d6|3-9|1d6} more",
			want:  "deals 1d6 more",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Expand(tc.input))
		})
	}
}

func TestExpand_Idempotent(t *testing.T) {
	inputs := []string{
		"{@atkr m,r} {@hit 12}, reach 5 ft. {@h}31 ({@damage 4d12 + 5}) Force damage.",
		"{@b {@dc 15}}",
		"{@b unterminated",
		"{{@b @x}y}",
		"{@recharge 5} and {@chance 25}",
		"{@unknownTag foo|bar} {@ATK m}",
	}

	for _, inp := range inputs {
		once := Expand(inp)
		require.Equal(t, once, Expand(once), "input %q", inp)
	}
}

func TestExpand_MalformedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unterminated",
			input: "{@b unterminated",
			want:  "{@b unterminated",
		},
		{
			name:  "unterminated_outer_resolved_inner",
			input: "{@b {@dc 10}",
			want:  "{@b DC 10",
		},
		{
			name:  "plain_braces_inside_content",
			input: "{@b {x} y}",
			want:  "{@b {x} y}",
		},
		{
			name:  "extra_closing_brace",
			input: "{@i text}}",
			want:  "text}",
		},
		{
			name:  "empty_name",
			input: "{@ spaced}",
			want:  "{@ spaced}",
		},
		{
			name:  "dangling_open_after_valid",
			input: "{@dc 12} then {@",
			want:  "DC 12 then {@",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Expand(tc.input))
		})
	}
}

// Resolving "{@b @x}" leaves "{@xy}" behind, which is a new invocation of an unknown tag.
func TestExpand_RegeneratedInvocation(t *testing.T) {
	require.Equal(t, "", Expand("{{@b @x}y}"))
}

func TestExpand_PassLimit(t *testing.T) {
	input := "{@b {@i {@u deep}}}"

	require.Equal(t, "deep", New().Expand(input))
	require.Equal(t, "{@b {@i deep}}", New(WithMaxPasses(1)).Expand(input))
	require.Equal(t, "{@b deep}", New(WithMaxPasses(2)).Expand(input))

	// non-positive values fall back to the default ceiling
	require.Equal(t, "deep", New(WithMaxPasses(-3)).Expand(input))
}

func TestExpand_DeepNesting(t *testing.T) {
	depth := 200
	input := strings.Repeat("{@b ", depth) + "core" + strings.Repeat("}", depth)

	require.Equal(t, "core", Expand(input))
}

func TestExpandValue(t *testing.T) {
	text := "{@dc 13}"
	var nilText *string

	require.Equal(t, "DC 13", ExpandValue(text))
	require.Equal(t, "DC 13", ExpandValue(&text))
	require.Equal(t, "", ExpandValue(nilText))
	require.Equal(t, "", ExpandValue(nil))
	require.Equal(t, "", ExpandValue(42))
	require.Equal(t, "", ExpandValue([]string{"{@dc 13}"}))
}

func TestExpand_ConcurrentUse(t *testing.T) {
	e := New()
	input := "{@atk mw} {@hit 4} to hit, {@h}7 ({@damage 1d8 + 3}) slashing damage."
	want := "Melee Weapon Attack: +4 to hit, Hit: 7 (1d8 + 3) slashing damage."

	done := make(chan string)
	for range 16 {
		go func() {
			done <- e.Expand(input)
		}()
	}

	for range 16 {
		require.Equal(t, want, <-done)
	}
}
