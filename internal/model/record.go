// Package model defines the domain value types for usage records and
// processed results.
package model

// ModelUsage holds the aggregate usage attributed to one model.
type ModelUsage struct {
	Cost         float64
	InputTokens  int64
	OutputTokens int64
}

// DayUsage holds the aggregate usage for one calendar day.
type DayUsage struct {
	Cost   float64
	Tokens int64
}

// UsageRecord is the canonical aggregate-usage shape: five scalar totals
// plus per-model and per-day breakdowns. The scalar totals are not required
// to reconcile with the breakdown sums; they may come from a source with a
// different granularity.
//
// Records are value objects. Merge and filter operations return new records
// (or the input untouched on their fast paths) and never mutate their inputs.
type UsageRecord struct {
	TotalCost                float64
	TotalInputTokens         int64
	TotalOutputTokens        int64
	TotalCacheCreationTokens int64
	TotalCacheReadTokens     int64

	ByModel map[string]ModelUsage // model identifier -> usage
	ByDay   map[string]DayUsage   // "2006-01-02" -> usage
}

// NewUsageRecord returns a zero-valued record with empty, non-nil maps.
func NewUsageRecord() UsageRecord {
	return UsageRecord{
		ByModel: make(map[string]ModelUsage),
		ByDay:   make(map[string]DayUsage),
	}
}

// TotalTokens is the sum of the four token totals.
func (r UsageRecord) TotalTokens() int64 {
	return r.TotalInputTokens + r.TotalOutputTokens +
		r.TotalCacheCreationTokens + r.TotalCacheReadTokens
}
