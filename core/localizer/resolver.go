package localizer

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/l10n/core/contentmap"
)

// Resolve picks the text for code from m.
//
// It returns m[code] when present and not blank, otherwise the entry for first
// (normally the registry's first supported language), otherwise the entry with the
// smallest key. An empty map is a contract violation and yields ErrInvalidContent.
func Resolve(m contentmap.Map, code, first string) (string, error) {
	if len(m) == 0 {
		return "", ErrInvalidContent
	}

	if text, ok := m.Lookup(code); ok && strings.TrimSpace(text) != "" {
		return text, nil
	}

	if text, ok := m.Lookup(first); ok {
		return text, nil
	}

	// Placeholders and malformed content may not key on first.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return m[keys[0]], nil
}
