package pipeline

import (
	"math"
	"sort"
	"time"

	"usagemark/internal/config"
	"usagemark/internal/model"
)

// Process runs the full derivation pipeline: merge the raw records, filter
// to the period window ending at ref, and build the summary and breakdown
// views. maxDailyRows truncates the daily view to the most recent N days;
// zero keeps every day.
func Process(records []model.UsageRecord, period model.Period, ref time.Time, maxDailyRows int) model.ProcessedResult {
	merged := Merge(records)
	filtered, estimated := FilterByPeriod(merged, period, ref)

	return model.ProcessedResult{
		Summary:    Summarize(filtered),
		Models:     BreakdownModels(filtered),
		DailyUsage: BreakdownDaily(filtered, maxDailyRows),
		Raw:        filtered,
		Period:     period,
		Estimated:  estimated,
	}
}

// Summarize derives the top-level aggregate from a record.
//
// PeriodDays counts distinct byDay keys and floors at 1 so the daily average
// never divides by zero. That makes "no daily data" and "one day of data"
// indistinguishable in the average, a known approximation.
func Summarize(rec model.UsageRecord) model.Summary {
	totalTokens := rec.TotalTokens()

	periodDays := len(rec.ByDay)
	if periodDays == 0 {
		periodDays = 1
	}

	return model.Summary{
		TotalTokens:        totalTokens,
		TotalInputTokens:   rec.TotalInputTokens,
		TotalOutputTokens:  rec.TotalOutputTokens,
		TotalCacheCreation: rec.TotalCacheCreationTokens,
		TotalCacheRead:     rec.TotalCacheReadTokens,
		TotalCost:          rec.TotalCost,
		DailyAverage: model.DailyAverage{
			Tokens: int64(math.Round(float64(totalTokens) / float64(periodDays))),
			Cost:   rec.TotalCost / float64(periodDays),
		},
		PeriodDays: periodDays,
	}
}

// BreakdownModels builds the per-model view: percentage of total cost per
// entry, sorted by cost descending. Ties keep a deterministic order (model
// name ascending) via a name pre-sort followed by a stable cost sort. A zero
// total cost yields 0% for every entry.
func BreakdownModels(rec model.UsageRecord) []model.ModelBreakdown {
	names := make([]string, 0, len(rec.ByModel))
	for name := range rec.ByModel {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]model.ModelBreakdown, 0, len(names))
	for _, name := range names {
		mu := rec.ByModel[name]
		out = append(out, model.ModelBreakdown{
			Name:         name,
			ShortName:    config.ShortModelName(name),
			Cost:         mu.Cost,
			InputTokens:  mu.InputTokens,
			OutputTokens: mu.OutputTokens,
			Percentage:   costShare(mu.Cost, rec.TotalCost),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost > out[j].Cost
	})
	return out
}

// costShare rounds cost/total to a whole percentage, clamped to 0..100 so
// non-reconciled inputs cannot push an entry out of range.
func costShare(cost, total float64) int {
	if total == 0 {
		return 0
	}
	pct := int(math.Round(cost / total * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// BreakdownDaily builds the per-day view sorted by date descending, then
// truncates to the most recent maxRows entries when maxRows > 0.
func BreakdownDaily(rec model.UsageRecord, maxRows int) []model.DailyEntry {
	out := make([]model.DailyEntry, 0, len(rec.ByDay))
	for date, du := range rec.ByDay {
		out = append(out, model.DailyEntry{Date: date, Tokens: du.Tokens, Cost: du.Cost})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	if maxRows > 0 && len(out) > maxRows {
		out = out[:maxRows]
	}
	return out
}
