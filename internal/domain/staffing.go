package domain

// WeekDate pairs a weekday abbreviation ("mon".."sun") with its ISO
// date. Ordering follows the source export's column order, which is
// not necessarily Mon-first.
type WeekDate struct {
	DayAbbr string `json:"dayAbbr"`
	ISODate string `json:"isoDate"`
}

// GapCell is the staffing analysis for one (hour, day) cell.
// Net and Gap are not clamped and may be negative.
type GapCell struct {
	Raw            int     `json:"raw"`
	Effective      int     `json:"effective"`
	EffectiveExact float64 `json:"effectiveExact"`
	TimeOff        int     `json:"timeoff"`
	Net            int     `json:"net"`
	Need           int     `json:"need"`
	Gap            int     `json:"gap"`
}

// StaffingDoc is one department's persisted gap analysis for a week.
// Cells is keyed by hour label ("5AM".."11PM") then day abbreviation.
type StaffingDoc struct {
	WeekStart   string                        `json:"weekStart"`
	WeekDates   []WeekDate                    `json:"weekDates"`
	Cells       map[string]map[string]GapCell `json:"cells"`
	LastUpdated string                        `json:"lastUpdated"`
}
