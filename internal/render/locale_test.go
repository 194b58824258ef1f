package render

import (
	"testing"

	"usagemark/internal/model"
)

func TestForLocale_Fallback(t *testing.T) {
	if got := ForLocale("de"); got.Title != locales["en"].Title {
		t.Errorf("unknown locale should fall back to English, got %q", got.Title)
	}
	if got := ForLocale("ja"); got.Title != "Claude 使用量" {
		t.Errorf("ja title = %q", got.Title)
	}
}

func TestPeriodLabel(t *testing.T) {
	l := ForLocale("en")

	tests := []struct {
		period model.Period
		want   string
	}{
		{model.PeriodDay, "Today"},
		{model.PeriodWeek, "Last 7 days"},
		{model.PeriodMonth, "Last 30 days"},
		{model.PeriodAll, "All time"},
		{model.Period("fortnight"), "All time"}, // unknown tags read as all time
	}

	for _, tt := range tests {
		if got := l.PeriodLabel(tt.period); got != tt.want {
			t.Errorf("PeriodLabel(%q) = %q, want %q", tt.period, got, tt.want)
		}
	}
}
