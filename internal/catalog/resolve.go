package catalog

import (
	"strings"
	"unicode"
)

// Resolve maps a free-text software name to a global catalog key. Strategies run
// in order and the first hit wins: exact key, all whitespace removed, trimmed
// with runs of whitespace collapsed, then a case-insensitive substring match in
// either direction over the keys in ascending order.
func (s *Store) Resolve(raw string) (string, bool) {
	if _, ok := s.integrations[raw]; ok {
		return raw, true
	}
	for _, variant := range []string{stripWhitespace(raw), collapseWhitespace(raw)} {
		if _, ok := s.integrations[variant]; ok {
			return variant, true
		}
	}

	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", false
	}
	for _, key := range s.softwareKeys {
		lowered := strings.ToLower(key)
		if strings.Contains(lowered, needle) || strings.Contains(needle, lowered) {
			return key, true
		}
	}
	return "", false
}

// ResolvedProfile resolves raw and returns its global profile. When resolution
// fails it falls back to an exact lookup of raw, which also fails for names the
// resolver could not place.
func (s *Store) ResolvedProfile(raw string) (string, SoftwareProfile, bool) {
	if key, ok := s.Resolve(raw); ok {
		return key, cloneProfile(s.integrations[key]), true
	}
	return raw, SoftwareProfile{}, false
}

func stripWhitespace(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

func collapseWhitespace(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
