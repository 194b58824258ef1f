package model

// Period names a relative time window used to filter a record before
// summarization.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Days returns the window length in days and whether the period limits the
// range at all. Unrecognized periods behave as "all": no start limit. That
// fallback is deliberate; callers that want strictness should check Known.
func (p Period) Days() (int, bool) {
	switch p {
	case PeriodDay:
		return 1, true
	case PeriodWeek:
		return 7, true
	case PeriodMonth:
		return 30, true
	default:
		return 0, false
	}
}

// Known reports whether p is one of the four recognized period tags.
func (p Period) Known() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}
