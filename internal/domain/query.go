package domain

import (
	"errors"
	"strings"

	m "github.com/mouse-blink/animfind/internal/model"
)

// ErrMissingInput is reported when the object path or property query is empty.
var ErrMissingInput = errors.New("missing input: enter both object name and property name")

// ApplyPreset returns query with its property replaced by preset, unless
// preset is empty or "None".
func ApplyPreset(query m.Query, preset string) m.Query {
	preset = strings.TrimSpace(preset)
	if preset == "" || strings.EqualFold(preset, m.PresetNone) {
		return query
	}

	query.Property = preset

	return query
}

// ValidateQuery checks a resolved query.
func ValidateQuery(query m.Query) error {
	if query.Missing() {
		return ErrMissingInput
	}

	return nil
}

// Presets returns the built-in property presets followed by extra, without duplicates.
func Presets(extra ...string) []string {
	presets := make([]string, 0, len(m.PropertyPresets)+len(extra))
	seen := make(map[string]struct{}, cap(presets))

	for _, p := range append(append([]string{}, m.PropertyPresets...), extra...) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if _, dup := seen[p]; dup {
			continue
		}

		seen[p] = struct{}{}
		presets = append(presets, p)
	}

	return presets
}
