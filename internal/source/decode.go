// Package source decodes and validates raw usage report files.
//
// Two input shapes are accepted: the canonical record (scalar totals plus
// byModel/byDay mappings) and an external report (a daily array plus an
// optional totals object). The shape is decided once, here at the boundary,
// and external reports are converted to canonical form by a pure mapping;
// nothing downstream ever re-checks shape.
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"usagemark/internal/model"
)

// Shape tags the recognized input layouts.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeCanonical
	ShapeExternal
)

// DetectShape classifies a decoded JSON value. A map with a "daily" or
// "totals" key is an external report; any other map is treated as canonical.
func DetectShape(v any) Shape {
	m, ok := v.(map[string]any)
	if !ok {
		return ShapeUnknown
	}
	if _, ok := m["daily"]; ok {
		return ShapeExternal
	}
	if _, ok := m["totals"]; ok {
		return ShapeExternal
	}
	return ShapeCanonical
}

// Decode parses raw JSON into a canonical usage record. Input failing the
// structural validator is rejected with the accumulated messages.
func Decode(data []byte) (model.UsageRecord, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return model.UsageRecord{}, fmt.Errorf("parsing usage report: %w", err)
	}

	if vr := Validate(probe); !vr.IsValid {
		return model.UsageRecord{}, fmt.Errorf("invalid usage report: %s", vr.Errors[0])
	}

	switch DetectShape(probe) {
	case ShapeExternal:
		var rep externalReport
		if err := json.Unmarshal(data, &rep); err != nil {
			return model.UsageRecord{}, fmt.Errorf("parsing external report: %w", err)
		}
		return convertExternal(rep), nil
	default:
		var rec canonicalRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return model.UsageRecord{}, fmt.Errorf("parsing usage record: %w", err)
		}
		return convertCanonical(rec), nil
	}
}

// DecodeFile reads and decodes a single usage report file.
func DecodeFile(path string) (model.UsageRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("reading %s: %w", path, err)
	}
	rec, err := Decode(data)
	if err != nil {
		return model.UsageRecord{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// convertCanonical defaults the optional mappings so downstream code can
// assume fully-populated records.
func convertCanonical(c canonicalRecord) model.UsageRecord {
	rec := model.UsageRecord{
		TotalCost:                c.TotalCost,
		TotalInputTokens:         c.TotalInputTokens,
		TotalOutputTokens:        c.TotalOutputTokens,
		TotalCacheCreationTokens: c.TotalCacheCreationTokens,
		TotalCacheReadTokens:     c.TotalCacheReadTokens,
		ByModel:                  make(map[string]model.ModelUsage, len(c.ByModel)),
		ByDay:                    make(map[string]model.DayUsage, len(c.ByDay)),
	}
	for name, mu := range c.ByModel {
		rec.ByModel[name] = model.ModelUsage{
			Cost:         mu.Cost,
			InputTokens:  mu.InputTokens,
			OutputTokens: mu.OutputTokens,
		}
	}
	for date, du := range c.ByDay {
		rec.ByDay[date] = model.DayUsage{Cost: du.Cost, Tokens: du.Tokens}
	}
	return rec
}

// convertExternal maps a daily-array report into canonical form: per-day
// model breakdowns are summed into byModel, each day's total cost/tokens
// become a byDay entry, and the scalar totals come from the totals object
// when present or from re-summing the daily entries otherwise. No entries
// are lost; aggregation is purely additive.
func convertExternal(rep externalReport) model.UsageRecord {
	rec := model.NewUsageRecord()

	for _, day := range rep.Daily {
		if day.Date == "" {
			continue
		}

		tokens := day.TotalTokens
		if tokens == 0 {
			tokens = day.InputTokens + day.OutputTokens +
				day.CacheCreationTokens + day.CacheReadTokens
		}

		du := rec.ByDay[day.Date]
		du.Cost += day.TotalCost
		du.Tokens += tokens
		rec.ByDay[day.Date] = du

		for _, mb := range day.ModelBreakdowns {
			mu := rec.ByModel[mb.ModelName]
			mu.Cost += mb.Cost
			mu.InputTokens += mb.InputTokens
			mu.OutputTokens += mb.OutputTokens
			rec.ByModel[mb.ModelName] = mu
		}
	}

	if t := rep.Totals; t != nil {
		rec.TotalCost = t.TotalCost
		rec.TotalInputTokens = t.InputTokens
		rec.TotalOutputTokens = t.OutputTokens
		rec.TotalCacheCreationTokens = t.CacheCreationTokens
		rec.TotalCacheReadTokens = t.CacheReadTokens
		return rec
	}

	for _, day := range rep.Daily {
		rec.TotalCost += day.TotalCost
		rec.TotalInputTokens += day.InputTokens
		rec.TotalOutputTokens += day.OutputTokens
		rec.TotalCacheCreationTokens += day.CacheCreationTokens
		rec.TotalCacheReadTokens += day.CacheReadTokens
	}
	return rec
}
