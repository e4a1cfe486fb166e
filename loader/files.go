package loader

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

type dirLoader struct {
	root string
}

// readJSON returns the parsed document at rel, or false when it is missing or not valid JSON.
func (l *dirLoader) readJSON(rel ...string) (gjson.Result, bool) {
	path := filepath.Join(append([]string{l.root}, rel...)...)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("file", path).Msg("data file not found, skipping")
		} else {
			log.Warn().Err(err).Str("file", path).Msg("cannot read data file, skipping")
		}
		return gjson.Result{}, false
	}

	if !gjson.ValidBytes(data) {
		log.Warn().Str("file", path).Msg("data file is not valid JSON, skipping")
		return gjson.Result{}, false
	}

	return gjson.ParseBytes(data), true
}

// indexedFiles reads dir/index.json, a {"SOURCE": "file.json"} object,
// and returns the distinct file names in index order.
func (l *dirLoader) indexedFiles(dir string) ([]string, bool) {
	index, ok := l.readJSON(dir, "index.json")
	if !ok {
		return nil, false
	}

	seen := make(map[string]bool)
	var files []string

	index.ForEach(func(_, v gjson.Result) bool {
		name := v.String()
		if name != "" && !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
		return true
	})

	return files, true
}

// isSRD reports whether a raw entry belongs to the SRD 5.2 subset.
// 5etools marks entries renamed in the SRD with the SRD name instead of true.
func isSRD(v gjson.Result) bool {
	return isMarked(v.Get("srd52")) || isMarked(v.Get("basicRules2024"))
}

func isMarked(flag gjson.Result) bool {
	switch flag.Type {
	case gjson.True:
		return true
	case gjson.String:
		return flag.String() != ""
	default:
		return false
	}
}

// srdEntries returns the SRD entries of arr, warning about the ones only flagged basicRules2024.
func srdEntries(arr gjson.Result, kind string) []gjson.Result {
	var out []gjson.Result

	arr.ForEach(func(_, v gjson.Result) bool {
		if isMarked(v.Get("basicRules2024")) && !isMarked(v.Get("srd52")) {
			log.Warn().Str("kind", kind).Str("name", v.Get("name").String()).
				Msg("entry has basicRules2024 but not srd52, verify against the SRD")
		}
		if isSRD(v) {
			out = append(out, v)
		}
		return true
	})

	return out
}

func strs(v gjson.Result) []string {
	out := []string{}
	v.ForEach(func(_, s gjson.Result) bool {
		out = append(out, s.String())
		return true
	})
	return out
}

func intOr(v gjson.Result, def int) int {
	if v.Type != gjson.Number {
		return def
	}
	return int(v.Int())
}

func optInt(v gjson.Result) *int {
	if v.Type != gjson.Number {
		return nil
	}
	n := int(v.Int())
	return &n
}

func optFloat(v gjson.Result) *float64 {
	if v.Type != gjson.Number {
		return nil
	}
	f := v.Float()
	return &f
}

// trueKeys returns the keys of obj whose value is true (or "true"), in document order.
func trueKeys(obj gjson.Result) []string {
	var keys []string
	obj.ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.True || (v.Type == gjson.String && v.String() == "true") {
			keys = append(keys, k.String())
		}
		return true
	})
	return keys
}

// objectKeys returns every key of obj in document order.
func objectKeys(obj gjson.Result) []string {
	var keys []string
	obj.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}
