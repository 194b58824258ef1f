package model

// DailyAverage holds per-day averages over the covered period.
type DailyAverage struct {
	Tokens int64   // rounded to the nearest token
	Cost   float64 // left fractional; rendered at fixed precision later
}

// Summary holds the top-level aggregate derived from a filtered record.
type Summary struct {
	TotalTokens        int64
	TotalInputTokens   int64
	TotalOutputTokens  int64
	TotalCacheCreation int64
	TotalCacheRead     int64
	TotalCost          float64
	DailyAverage       DailyAverage
	PeriodDays         int // distinct ByDay keys, floored at 1
}

// ModelBreakdown is one row of the per-model view, percentage-annotated and
// sorted by cost descending.
type ModelBreakdown struct {
	Name         string
	ShortName    string
	Cost         float64
	InputTokens  int64
	OutputTokens int64
	Percentage   int // 0..100, share of total cost
}

// DailyEntry is one row of the per-day view, sorted by date descending.
type DailyEntry struct {
	Date   string // "2006-01-02"
	Tokens int64
	Cost   float64
}

// ProcessedResult is the derived, read-only snapshot handed to renderers.
// It is recomputed on every request and never mutated after construction.
type ProcessedResult struct {
	Summary    Summary
	Models     []ModelBreakdown
	DailyUsage []DailyEntry
	Raw        UsageRecord // the filtered record the views were derived from
	Period     Period
	Estimated  bool // model-level figures were proportionally scaled
}

// TopModel returns the highest-cost model and true, or a zero value and
// false when the breakdown is empty.
func (p ProcessedResult) TopModel() (ModelBreakdown, bool) {
	if len(p.Models) == 0 {
		return ModelBreakdown{}, false
	}
	return p.Models[0], true
}
