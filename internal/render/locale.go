// Package render produces the user-facing outputs: the Markdown fragment,
// the SVG badge, and the marker-based document splice.
package render

import "usagemark/internal/model"

// Labels holds the localized strings used by the renderers.
type Labels struct {
	Title string

	PeriodDay   string
	PeriodWeek  string
	PeriodMonth string
	PeriodAll   string

	Metric        string
	Value         string
	TotalTokens   string
	InputTokens   string
	OutputTokens  string
	CacheCreation string
	CacheRead     string
	TotalCost     string
	DailyAverage  string

	ByModel string
	Model   string
	Cost    string
	Input   string
	Output  string
	Share   string

	DailyUsage string
	Date       string
	Tokens     string

	EstimateNote string
	UpdatedAt    string
}

var locales = map[string]Labels{
	"en": {
		Title:         "Claude Usage",
		PeriodDay:     "Today",
		PeriodWeek:    "Last 7 days",
		PeriodMonth:   "Last 30 days",
		PeriodAll:     "All time",
		Metric:        "Metric",
		Value:         "Value",
		TotalTokens:   "Total tokens",
		InputTokens:   "Input tokens",
		OutputTokens:  "Output tokens",
		CacheCreation: "Cache creation",
		CacheRead:     "Cache read",
		TotalCost:     "Total cost",
		DailyAverage:  "Daily average",
		ByModel:       "By model",
		Model:         "Model",
		Cost:          "Cost",
		Input:         "Input",
		Output:        "Output",
		Share:         "Share",
		DailyUsage:    "Daily usage",
		Date:          "Date",
		Tokens:        "Tokens",
		EstimateNote:  "Model figures for limited periods are proportional estimates; per-day model attribution is not available.",
		UpdatedAt:     "Updated",
	},
	"ja": {
		Title:         "Claude 使用量",
		PeriodDay:     "今日",
		PeriodWeek:    "過去7日間",
		PeriodMonth:   "過去30日間",
		PeriodAll:     "全期間",
		Metric:        "項目",
		Value:         "値",
		TotalTokens:   "合計トークン",
		InputTokens:   "入力トークン",
		OutputTokens:  "出力トークン",
		CacheCreation: "キャッシュ作成",
		CacheRead:     "キャッシュ読込",
		TotalCost:     "合計コスト",
		DailyAverage:  "1日平均",
		ByModel:       "モデル別",
		Model:         "モデル",
		Cost:          "コスト",
		Input:         "入力",
		Output:        "出力",
		Share:         "割合",
		DailyUsage:    "日別使用量",
		Date:          "日付",
		Tokens:        "トークン",
		EstimateNote:  "期間指定時のモデル別数値は比例配分による概算です。日別のモデル内訳データはありません。",
		UpdatedAt:     "更新",
	},
}

// ForLocale returns the label table for a locale code, falling back to
// English for unknown codes.
func ForLocale(code string) Labels {
	if l, ok := locales[code]; ok {
		return l
	}
	return locales["en"]
}

// PeriodLabel returns the display label for a period. Unrecognized tags get
// the all-time label, matching the permissive period fallback everywhere
// else in the pipeline.
func (l Labels) PeriodLabel(p model.Period) string {
	switch p {
	case model.PeriodDay:
		return l.PeriodDay
	case model.PeriodWeek:
		return l.PeriodWeek
	case model.PeriodMonth:
		return l.PeriodMonth
	default:
		return l.PeriodAll
	}
}
