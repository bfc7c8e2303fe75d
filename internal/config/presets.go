package config

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// Named validator presets. Each pattern is full-match anchored by the
// validate package, so none of them carry their own anchors.
var presets = map[string]string{
	"email":     `[^@\s]+@[^@\s]+\.[^@\s]+`,
	"digits":    `[0-9]+`,
	"lowercase": `[a-z]+`,
	"uppercase": `[A-Z]+`,
	"alnum":     `[A-Za-z0-9]+`,
	"hex":       `[0-9a-fA-F]+`,
	"date":      `\d{4}-\d{2}-\d{2}`,
	"money":     `-?\d+(\.\d{2})?`,
}

// maxSuggestDistance caps how far a typo may be from a preset name
// before we stop suggesting it.
const maxSuggestDistance = 3

// ResolvePreset returns the pattern behind a preset name. Unknown names
// are configuration errors; close misses get a "did you mean" hint.
func ResolvePreset(name string) (string, error) {
	if p, ok := presets[name]; ok {
		return p, nil
	}
	if s := suggestPreset(name); s != "" {
		return "", fmt.Errorf("unknown preset %q (did you mean %q?)", name, s)
	}
	return "", fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
}

// PresetNames returns all preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func suggestPreset(name string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range PresetNames() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}
