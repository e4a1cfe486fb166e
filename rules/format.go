package rules

import (
	"strconv"
	"strings"
)

// Distance is the "distance" object of a 5etools spell range.
type Distance struct {
	Type   string
	Amount *int
}

// SpellRange is the "range" object of a 5etools spell.
type SpellRange struct {
	Type     string
	Distance *Distance
}

// FormatRange renders a spell range: "Self", "Touch", "60 feet", "1 mile".
func FormatRange(r *SpellRange) string {
	if r == nil {
		return "Unknown"
	}

	switch r.Type {
	case "self":
		return "Self"
	case "touch":
		return "Touch"
	case "sight":
		return "Sight"
	case "unlimited":
		return "Unlimited"
	case "special":
		return "Special"
	case "plane":
		return "Unlimited (same plane)"
	case "point", "line", "cube", "cone", "emanation", "radius", "sphere", "hemisphere", "cylinder":
		return formatDistance(r.Type, r.Distance)
	default:
		return r.Type
	}
}

func formatDistance(shape string, d *Distance) string {
	if d == nil {
		return shape
	}

	switch d.Type {
	case "self":
		return "Self"
	case "touch":
		return "Touch"
	case "sight":
		return "Sight"
	case "unlimited":
		return "Unlimited"
	}

	if d.Amount == nil {
		return d.Type
	}

	unit := d.Type
	if *d.Amount == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}

	return strconv.Itoa(*d.Amount) + " " + unit
}

// SpellDuration is one entry of the "duration" array of a 5etools spell.
type SpellDuration struct {
	Type          string
	Unit          string
	Amount        *int
	Concentration bool
}

// FormatDuration renders the first duration entry: "Instantaneous", "Concentration, up to 1 minute".
func FormatDuration(durations []SpellDuration) string {
	if len(durations) == 0 {
		return "Unknown"
	}

	d := durations[0]

	var base string
	switch d.Type {
	case "instant":
		base = "Instantaneous"
	case "special":
		base = "Special"
	case "permanent":
		base = "Permanent"
	case "timed":
		amount := 1
		if d.Amount != nil {
			amount = *d.Amount
		}
		unit := d.Unit
		if unit == "" {
			unit = "round"
		}
		base = strconv.Itoa(amount) + " " + plural(unit, amount)
	default:
		base = d.Type
	}

	if d.Concentration {
		return "Concentration, up to " + base
	}

	return base
}

// IsConcentration reports whether any duration entry requires concentration.
func IsConcentration(durations []SpellDuration) bool {
	for _, d := range durations {
		if d.Concentration {
			return true
		}
	}
	return false
}

// CastingTime is one entry of the "time" array of a 5etools spell.
type CastingTime struct {
	Number    int
	Unit      string
	Condition string
}

// The data says "bonus" where the rules say "bonus action".
var castingUnits = map[string]string{
	"bonus": "bonus action",
}

// FormatCastingTime renders the first casting time: "1 action", "10 minutes", "1 reaction (which you take when ...)".
func FormatCastingTime(times []CastingTime) string {
	if len(times) == 0 {
		return "Unknown"
	}

	t := times[0]
	unit := t.Unit
	if u, ok := castingUnits[unit]; ok {
		unit = u
	}

	base := strconv.Itoa(t.Number) + " " + plural(unit, t.Number)
	if t.Condition != "" {
		return base + " (" + t.Condition + ")"
	}

	return base
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
