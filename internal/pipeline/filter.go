package pipeline

import (
	"math"
	"time"

	"usagemark/internal/model"
)

const dateLayout = "2006-01-02"

// PeriodRange computes the inclusive UTC day window for a period relative to
// the reference time. The second return is false when the period does not
// limit the range (all, or any unrecognized tag — the permissive default).
func PeriodRange(p model.Period, ref time.Time) (start, end string, limited bool) {
	days, ok := p.Days()
	if !ok {
		return "", "", false
	}
	utc := ref.UTC()
	end = utc.Format(dateLayout)
	start = utc.AddDate(0, 0, -(days - 1)).Format(dateLayout)
	return start, end, true
}

// FilterByPeriod restricts a record to the period window ending on ref's UTC
// calendar day. The returned flag reports whether model-level figures are
// proportional estimates rather than exact re-summations.
//
// For a limited window, byDay entries inside the window are copied verbatim
// and their costs summed exactly into the new total cost. The token totals
// and the byModel entries cannot be recomputed from daily data (it carries
// no per-token-kind or per-model detail), so they are scaled by the ratio of
// filtered to original total cost; token counts are rounded to the nearest
// integer, costs stay fractional. Renderers must surface the estimate flag
// rather than presenting these figures as exact.
func FilterByPeriod(rec model.UsageRecord, p model.Period, ref time.Time) (model.UsageRecord, bool) {
	start, end, limited := PeriodRange(p, ref)
	if !limited {
		return rec, false
	}

	out := model.NewUsageRecord()

	for date, du := range rec.ByDay {
		// Lexicographic comparison matches chronological order for ISO dates.
		if date >= start && date <= end {
			out.ByDay[date] = du
			out.TotalCost += du.Cost
		}
	}

	ratio := 0.0
	if rec.TotalCost > 0 {
		ratio = out.TotalCost / rec.TotalCost
	}

	out.TotalInputTokens = scaleTokens(rec.TotalInputTokens, ratio)
	out.TotalOutputTokens = scaleTokens(rec.TotalOutputTokens, ratio)
	out.TotalCacheCreationTokens = scaleTokens(rec.TotalCacheCreationTokens, ratio)
	out.TotalCacheReadTokens = scaleTokens(rec.TotalCacheReadTokens, ratio)

	for name, mu := range rec.ByModel {
		out.ByModel[name] = model.ModelUsage{
			Cost:         mu.Cost * ratio,
			InputTokens:  scaleTokens(mu.InputTokens, ratio),
			OutputTokens: scaleTokens(mu.OutputTokens, ratio),
		}
	}

	return out, true
}

func scaleTokens(n int64, ratio float64) int64 {
	return int64(math.Round(float64(n) * ratio))
}
