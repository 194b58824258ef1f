package cli

import "testing"

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1.0K"},
		{1_234, "1.2K"},
		{999_999, "1000.0K"},
		{1_234_567, "1.2M"},
		{1_234_567_890, "1.2B"},
		{-1_500, "-1.5K"},
	}

	for _, tt := range tests {
		if got := FormatTokens(tt.n); got != tt.want {
			t.Errorf("FormatTokens(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		cost float64
		want string
	}{
		{0, "$0.00"},
		{0.005, "$0.01"},
		{9.99, "$9.99"},
		{10, "$10.0"},
		{42.56, "$42.6"},
		{100, "$100"},
		{999.4, "$999"},
		{1000, "$1,000"},
		{1234567.89, "$1,234,568"},
	}

	for _, tt := range tests {
		if got := FormatCost(tt.cost); got != tt.want {
			t.Errorf("FormatCost(%v) = %q, want %q", tt.cost, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{1_234_567, "1,234,567"},
		{-1_234_567, "-1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatShare(t *testing.T) {
	if got := FormatShare(61); got != "61%" {
		t.Errorf("FormatShare(61) = %q, want 61%%", got)
	}
	if got := FormatShare(0); got != "0%" {
		t.Errorf("FormatShare(0) = %q, want 0%%", got)
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"", "", "all time"},
		{"", "2026-08-31", "all time"},
		{"2026-08-31", "2026-08-31", "2026-08-31"},
		{"2026-08-25", "2026-08-31", "2026-08-25 to 2026-08-31"},
	}

	for _, tt := range tests {
		if got := FormatDateRange(tt.start, tt.end); got != tt.want {
			t.Errorf("FormatDateRange(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}
