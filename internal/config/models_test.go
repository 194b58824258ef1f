package config

import "testing"

func TestNormalizeModelName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"claude-sonnet-4-5-20250929", "claude-sonnet-4-5"},
		{"claude-opus-4-6", "claude-opus-4-6"},
		{"claude-opus-4", "claude-opus-4"}, // short version segments stay
		{"gpt-5", "gpt-5"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeModelName(tt.raw); got != tt.want {
			t.Errorf("NormalizeModelName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestShortModelName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"claude-opus-4-6", "Opus 4.6"},
		{"claude-sonnet-4-5-20250929", "Sonnet 4.5"},
		{"claude-haiku-4-5", "Haiku 4.5"},
		// Unknown families derive a name from the identifier structure.
		{"vendor-falcon-2-1", "Falcon 2.1"},
		{"gpt-5", "Gpt 5"},
		// No version segments to work with: the normalized name passes through.
		{"mystery-model", "mystery-model"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := ShortModelName(tt.raw); got != tt.want {
			t.Errorf("ShortModelName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestShortModelName_Overrides(t *testing.T) {
	applyModelOverrides(map[string]string{"claude-opus-4-6": "Big Model"})
	defer applyModelOverrides(nil)

	if got := ShortModelName("claude-opus-4-6"); got != "Big Model" {
		t.Errorf("override ignored: got %q", got)
	}
	// Overrides keyed by normalized name catch dated identifiers too.
	if got := ShortModelName("claude-opus-4-6-20260101"); got != "Big Model" {
		t.Errorf("normalized override ignored: got %q", got)
	}
}
