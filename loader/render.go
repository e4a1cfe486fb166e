package loader

import (
	"strings"

	"github.com/TJurijs/5esrd-api/markup"
	"github.com/tidwall/gjson"
)

// RenderEntries flattens a 5etools "entries" array into plain text, one block per line.
//
// Strings are expanded with markup.Expand. Lists become "• item" lines, tables become a
// "a | b" header followed by " | " joined rows, named entries are prefixed with "Name: ".
// Empty blocks are dropped.
func RenderEntries(entries gjson.Result) string {
	var parts []string

	entries.ForEach(func(_, e gjson.Result) bool {
		if s := renderEntry(e); s != "" {
			parts = append(parts, s)
		}
		return true
	})

	return strings.Join(parts, "\n")
}

func renderEntry(e gjson.Result) string {
	if e.Type == gjson.String {
		return markup.Expand(e.String())
	}

	if !e.IsObject() {
		return ""
	}

	switch e.Get("type").String() {
	case "list":
		return renderList(e.Get("items"))
	case "table":
		return renderTable(e)
	}

	if entries := e.Get("entries"); entries.Exists() {
		return heading(e) + RenderEntries(entries)
	}

	if entry := e.Get("entry"); entry.Exists() {
		return heading(e) + renderEntry(entry)
	}

	if items := e.Get("items"); items.Exists() {
		return RenderEntries(items)
	}

	return ""
}

// heading is the "Name: " prefix of a named block. List items often end their name with
// a period ("Can't See."), which is dropped in favor of the colon.
func heading(e gjson.Result) string {
	name := strings.TrimRight(strings.TrimSpace(e.Get("name").String()), ".:")
	if name == "" {
		return ""
	}
	return markup.Expand(name) + ": "
}

func renderList(items gjson.Result) string {
	var lines []string

	items.ForEach(func(_, item gjson.Result) bool {
		if item.Type == gjson.String {
			lines = append(lines, "• "+markup.Expand(item.String()))
			return true
		}

		body := RenderEntries(item.Get("entries"))
		if entry := item.Get("entry"); entry.Exists() {
			body = renderEntry(entry)
		}

		lines = append(lines, "• "+heading(item)+body)
		return true
	})

	return strings.Join(lines, "\n")
}

func renderTable(t gjson.Result) string {
	header := strings.Join(expandAll(strs(t.Get("colLabels"))), " | ")

	var rows []string
	t.Get("rows").ForEach(func(_, row gjson.Result) bool {
		var cells []string
		row.ForEach(func(_, cell gjson.Result) bool {
			cells = append(cells, renderCell(cell))
			return true
		})
		rows = append(rows, strings.Join(cells, " | "))
		return true
	})

	body := strings.Join(rows, "\n")

	switch {
	case header == "":
		return body
	case body == "":
		return header
	default:
		return header + "\n" + body
	}
}

// Cells are strings, numbers, or {"type": "cell", ...} objects carrying a roll or a value.
func renderCell(cell gjson.Result) string {
	switch {
	case cell.Type == gjson.String:
		return markup.Expand(cell.String())
	case cell.IsObject():
		if v := cell.Get("value"); v.Exists() {
			return v.String()
		}
		if roll := cell.Get("roll"); roll.Exists() {
			return renderRoll(roll)
		}
		if entry := cell.Get("entry"); entry.Exists() {
			return renderEntry(entry)
		}
		return ""
	default:
		return cell.String()
	}
}

func renderRoll(roll gjson.Result) string {
	if exact := roll.Get("exact"); exact.Exists() {
		return exact.String()
	}

	lo, hi := roll.Get("min"), roll.Get("max")
	if lo.Exists() && hi.Exists() {
		return lo.String() + "–" + hi.String()
	}

	return ""
}

func expandAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, s := range texts {
		out[i] = markup.Expand(s)
	}
	return out
}
