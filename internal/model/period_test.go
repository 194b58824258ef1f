package model

import "testing"

func TestPeriodDays(t *testing.T) {
	tests := []struct {
		period  Period
		days    int
		limited bool
	}{
		{PeriodDay, 1, true},
		{PeriodWeek, 7, true},
		{PeriodMonth, 30, true},
		{PeriodAll, 0, false},
		{Period("year"), 0, false}, // unrecognized tags fall back to all
		{Period(""), 0, false},
	}

	for _, tt := range tests {
		days, limited := tt.period.Days()
		if days != tt.days || limited != tt.limited {
			t.Errorf("Days(%q) = %d, %v; want %d, %v", tt.period, days, limited, tt.days, tt.limited)
		}
	}
}

func TestPeriodKnown(t *testing.T) {
	for _, p := range []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodAll} {
		if !p.Known() {
			t.Errorf("%q should be known", p)
		}
	}
	for _, p := range []Period{"year", "", "ALL"} {
		if p.Known() {
			t.Errorf("%q should not be known", p)
		}
	}
}

func TestTotalTokens(t *testing.T) {
	r := NewUsageRecord()
	r.TotalInputTokens = 1
	r.TotalOutputTokens = 2
	r.TotalCacheCreationTokens = 3
	r.TotalCacheReadTokens = 4

	if got := r.TotalTokens(); got != 10 {
		t.Errorf("TotalTokens = %d, want 10", got)
	}
}
