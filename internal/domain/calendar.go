package domain

// ScopeEntry is one department's (or the "all" union's) view of a
// single calendar day. Name arrays are sorted ascending and
// deduplicated; Count is len(Approved)+len(Pending).
type ScopeEntry struct {
	Approved []string `json:"approved"`
	Pending  []string `json:"pending"`
	Count    int      `json:"count"`
}

// DayEntry is one calendar day: both departments plus their union.
type DayEntry struct {
	All ScopeEntry `json:"all"`
	FOH ScopeEntry `json:"foh"`
	BOH ScopeEntry `json:"boh"`
}

// CalendarDoc maps ISO dates (YYYY-MM-DD) to day entries. This is the
// document shape persisted per store and rendered by the CLI.
type CalendarDoc map[string]DayEntry

// HeatLevel buckets a day's request count for display: 1-2 low,
// 3-4 medium, 5-6 high, 7+ critical. Zero or negative counts have
// no heat.
func HeatLevel(count int) string {
	switch {
	case count <= 0:
		return ""
	case count <= 2:
		return "low"
	case count <= 4:
		return "medium"
	case count <= 6:
		return "high"
	default:
		return "critical"
	}
}
