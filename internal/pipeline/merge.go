// Package pipeline merges raw usage records, filters them to a period
// window, and derives summary and breakdown statistics.
package pipeline

import "usagemark/internal/model"

// Merge combines any number of usage records into one.
//
// Zero records produce a zero-valued record with empty mappings. A single
// record is returned untouched, map references included, so callers can
// detect the single-source fast path. Two or more records are combined
// elementwise: the five scalar totals are summed, and byModel/byDay are
// key-unioned with per-key summation. Summation is commutative and
// associative, so the result does not depend on input order.
//
// Overlapping byDay dates across records are summed, not deduplicated:
// sources are assumed to be different machines or processes whose activity
// for the same date is disjoint.
func Merge(records []model.UsageRecord) model.UsageRecord {
	switch len(records) {
	case 0:
		return model.NewUsageRecord()
	case 1:
		return records[0]
	}

	merged := model.NewUsageRecord()
	for _, r := range records {
		merged.TotalCost += r.TotalCost
		merged.TotalInputTokens += r.TotalInputTokens
		merged.TotalOutputTokens += r.TotalOutputTokens
		merged.TotalCacheCreationTokens += r.TotalCacheCreationTokens
		merged.TotalCacheReadTokens += r.TotalCacheReadTokens

		for name, mu := range r.ByModel {
			acc := merged.ByModel[name]
			acc.Cost += mu.Cost
			acc.InputTokens += mu.InputTokens
			acc.OutputTokens += mu.OutputTokens
			merged.ByModel[name] = acc
		}
		for date, du := range r.ByDay {
			acc := merged.ByDay[date]
			acc.Cost += du.Cost
			acc.Tokens += du.Tokens
			merged.ByDay[date] = acc
		}
	}
	return merged
}
