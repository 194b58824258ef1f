package pipeline

import (
	"math"
	"testing"

	"usagemark/internal/model"
)

func sampleRecord(cost float64, input, output int64) model.UsageRecord {
	r := model.NewUsageRecord()
	r.TotalCost = cost
	r.TotalInputTokens = input
	r.TotalOutputTokens = output
	return r
}

func TestMerge_Empty(t *testing.T) {
	got := Merge(nil)

	if got.TotalCost != 0 || got.TotalTokens() != 0 {
		t.Errorf("zero record expected, got cost=%v tokens=%d", got.TotalCost, got.TotalTokens())
	}
	if got.ByModel == nil || got.ByDay == nil {
		t.Error("empty merge must still carry non-nil maps")
	}
}

func TestMerge_SingleIdentity(t *testing.T) {
	r := sampleRecord(10, 100, 50)
	r.ByModel["claude-opus-4-6"] = model.ModelUsage{Cost: 10, InputTokens: 100, OutputTokens: 50}

	got := Merge([]model.UsageRecord{r})

	if got.TotalCost != 10 {
		t.Errorf("TotalCost = %v, want 10", got.TotalCost)
	}
	// A single input is passed through untouched, maps included.
	got.ByModel["claude-opus-4-6"] = model.ModelUsage{Cost: 99}
	if r.ByModel["claude-opus-4-6"].Cost != 99 {
		t.Error("single-record merge should share the input's maps")
	}
}

func TestMerge_SumsScalarsAndUnionsMaps(t *testing.T) {
	a := sampleRecord(10, 1000, 500)
	a.TotalCacheCreationTokens = 30
	a.TotalCacheReadTokens = 40
	a.ByModel["claude-opus-4-6"] = model.ModelUsage{Cost: 10, InputTokens: 1000, OutputTokens: 500}
	a.ByDay["2026-08-01"] = model.DayUsage{Cost: 10, Tokens: 1500}

	b := sampleRecord(5, 200, 100)
	b.ByModel["claude-opus-4-6"] = model.ModelUsage{Cost: 3, InputTokens: 100, OutputTokens: 60}
	b.ByModel["claude-haiku-4-5"] = model.ModelUsage{Cost: 2, InputTokens: 100, OutputTokens: 40}
	b.ByDay["2026-08-01"] = model.DayUsage{Cost: 2, Tokens: 200}
	b.ByDay["2026-08-02"] = model.DayUsage{Cost: 3, Tokens: 100}

	got := Merge([]model.UsageRecord{a, b})

	if got.TotalCost != 15 {
		t.Errorf("TotalCost = %v, want 15", got.TotalCost)
	}
	if got.TotalInputTokens != 1200 || got.TotalOutputTokens != 600 {
		t.Errorf("tokens = %d/%d, want 1200/600", got.TotalInputTokens, got.TotalOutputTokens)
	}
	if got.TotalCacheCreationTokens != 30 || got.TotalCacheReadTokens != 40 {
		t.Errorf("cache tokens = %d/%d, want 30/40", got.TotalCacheCreationTokens, got.TotalCacheReadTokens)
	}

	opus := got.ByModel["claude-opus-4-6"]
	if opus.Cost != 13 || opus.InputTokens != 1100 || opus.OutputTokens != 560 {
		t.Errorf("opus = %+v, want cost 13, in 1100, out 560", opus)
	}
	if haiku := got.ByModel["claude-haiku-4-5"]; haiku.Cost != 2 {
		t.Errorf("haiku cost = %v, want 2", haiku.Cost)
	}

	// Overlapping days sum rather than dedupe.
	if d := got.ByDay["2026-08-01"]; d.Cost != 12 || d.Tokens != 1700 {
		t.Errorf("2026-08-01 = %+v, want cost 12, tokens 1700", d)
	}
	if d := got.ByDay["2026-08-02"]; d.Cost != 3 {
		t.Errorf("2026-08-02 cost = %v, want 3", d.Cost)
	}

	// Inputs stay untouched.
	if a.TotalCost != 10 || len(a.ByModel) != 1 {
		t.Error("merge mutated an input record")
	}
}

func TestMerge_OrderIndependent(t *testing.T) {
	a := sampleRecord(1.5, 10, 20)
	a.ByModel["m1"] = model.ModelUsage{Cost: 1.5}
	b := sampleRecord(2.5, 30, 40)
	b.ByModel["m2"] = model.ModelUsage{Cost: 2.5}
	c := sampleRecord(4, 50, 60)
	c.ByDay["2026-08-03"] = model.DayUsage{Cost: 4, Tokens: 110}

	ab := Merge([]model.UsageRecord{a, b, c})
	ba := Merge([]model.UsageRecord{c, b, a})

	if math.Abs(ab.TotalCost-ba.TotalCost) > 1e-9 {
		t.Errorf("cost differs by order: %v vs %v", ab.TotalCost, ba.TotalCost)
	}
	if ab.TotalInputTokens != ba.TotalInputTokens {
		t.Errorf("input tokens differ by order: %d vs %d", ab.TotalInputTokens, ba.TotalInputTokens)
	}
	if len(ab.ByModel) != len(ba.ByModel) || len(ab.ByDay) != len(ba.ByDay) {
		t.Error("map contents differ by order")
	}
}
