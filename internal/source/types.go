package source

// canonicalRecord is the native JSON shape: scalar totals plus byModel and
// byDay mappings. Absent fields decode to zero values, so downstream
// arithmetic never has to re-check presence.
type canonicalRecord struct {
	TotalCost                float64                   `json:"totalCost"`
	TotalInputTokens         int64                     `json:"totalInputTokens"`
	TotalOutputTokens        int64                     `json:"totalOutputTokens"`
	TotalCacheCreationTokens int64                     `json:"totalCacheCreationTokens"`
	TotalCacheReadTokens     int64                     `json:"totalCacheReadTokens"`
	ByModel                  map[string]canonicalModel `json:"byModel"`
	ByDay                    map[string]canonicalDay   `json:"byDay"`
}

type canonicalModel struct {
	Cost         float64 `json:"cost"`
	InputTokens  int64   `json:"inputTokens"`
	OutputTokens int64   `json:"outputTokens"`
}

type canonicalDay struct {
	Cost   float64 `json:"cost"`
	Tokens int64   `json:"tokens"`
}

// externalReport is the alternate input shape produced by external metering
// tools: a daily array with optional per-day model breakdowns, plus an
// optional totals object.
type externalReport struct {
	Daily  []externalDay   `json:"daily"`
	Totals *externalTotals `json:"totals"`
}

type externalDay struct {
	Date                string              `json:"date"`
	InputTokens         int64               `json:"inputTokens"`
	OutputTokens        int64               `json:"outputTokens"`
	CacheCreationTokens int64               `json:"cacheCreationTokens"`
	CacheReadTokens     int64               `json:"cacheReadTokens"`
	TotalTokens         int64               `json:"totalTokens"`
	TotalCost           float64             `json:"totalCost"`
	ModelBreakdowns     []externalBreakdown `json:"modelBreakdowns"`
}

type externalBreakdown struct {
	ModelName    string  `json:"modelName"`
	InputTokens  int64   `json:"inputTokens"`
	OutputTokens int64   `json:"outputTokens"`
	Cost         float64 `json:"cost"`
}

type externalTotals struct {
	InputTokens         int64   `json:"inputTokens"`
	OutputTokens        int64   `json:"outputTokens"`
	CacheCreationTokens int64   `json:"cacheCreationTokens"`
	CacheReadTokens     int64   `json:"cacheReadTokens"`
	TotalCost           float64 `json:"totalCost"`
}
