package config

import "strings"

// defaultShortNames maps model family base names to display names.
var defaultShortNames = map[string]string{
	"claude-opus-4-6":   "Opus 4.6",
	"claude-opus-4-5":   "Opus 4.5",
	"claude-opus-4-1":   "Opus 4.1",
	"claude-opus-4":     "Opus 4",
	"claude-sonnet-4-6": "Sonnet 4.6",
	"claude-sonnet-4-5": "Sonnet 4.5",
	"claude-sonnet-4":   "Sonnet 4",
	"claude-haiku-4-5":  "Haiku 4.5",
	"claude-haiku-3-5":  "Haiku 3.5",
}

// shortNameOverrides holds user-configured names, applied on config load.
var shortNameOverrides map[string]string

func applyModelOverrides(overrides map[string]string) {
	shortNameOverrides = overrides
}

// NormalizeModelName strips date suffixes from model identifiers.
// e.g., "claude-sonnet-4-5-20250929" -> "claude-sonnet-4-5"
func NormalizeModelName(raw string) string {
	if _, ok := defaultShortNames[raw]; ok {
		return raw
	}

	// Models can carry date suffixes like -20250929 (8+ digits)
	parts := strings.Split(raw, "-")
	if len(parts) >= 2 {
		last := parts[len(parts)-1]
		if isAllDigits(last) && len(last) >= 8 {
			return strings.Join(parts[:len(parts)-1], "-")
		}
	}
	return raw
}

func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ShortModelName returns a compact display name for a model identifier.
// User overrides win, then the built-in family table, then a name derived
// from the identifier itself ("vendor-family-1-2" -> "Family 1.2"). Unknown
// identifiers fall back to the normalized raw name.
func ShortModelName(raw string) string {
	normalized := NormalizeModelName(raw)

	if name, ok := shortNameOverrides[raw]; ok {
		return name
	}
	if name, ok := shortNameOverrides[normalized]; ok {
		return name
	}
	if name, ok := defaultShortNames[normalized]; ok {
		return name
	}

	if name := deriveShortName(normalized); name != "" {
		return name
	}
	return normalized
}

// deriveShortName title-cases the family segment and joins trailing numeric
// segments with dots. Returns "" when the identifier has no family-version
// structure to work with.
func deriveShortName(normalized string) string {
	parts := strings.Split(normalized, "-")
	if len(parts) < 2 {
		return ""
	}

	// Trailing numeric segments form the version
	var version []string
	i := len(parts) - 1
	for i > 0 && isAllDigits(parts[i]) {
		version = append([]string{parts[i]}, version...)
		i--
	}
	if len(version) == 0 {
		return ""
	}

	family := parts[i]
	if family == "" {
		return ""
	}
	family = strings.ToUpper(family[:1]) + family[1:]
	return family + " " + strings.Join(version, ".")
}
