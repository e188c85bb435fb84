package domain

// TierRates maps each tier to its effectiveness fraction: the share of
// nominally-available hours a person in that tier actually works.
type TierRates struct {
	Full    float64 `json:"full"`
	Part    float64 `json:"part"`
	Limited float64 `json:"limited"`
}

// Rate returns the effectiveness rate for a tier. Unknown tiers fall
// back to the part-time rate.
func (r TierRates) Rate(t Tier) float64 {
	switch t {
	case TierFull:
		return r.Full
	case TierLimited:
		return r.Limited
	default:
		return r.Part
	}
}

// Settings holds a store's configurable staffing parameters.
type Settings struct {
	TierRates     TierRates                     `json:"tierRates"`
	StaffingNeeds map[Department]map[string]int `json:"staffingNeeds"`
}

// NeedsFor returns the per-hour required headcount for a department,
// falling back to the built-in defaults when unconfigured.
func (s Settings) NeedsFor(dept Department) map[string]int {
	if needs, ok := s.StaffingNeeds[dept]; ok && len(needs) > 0 {
		return needs
	}
	return DefaultStaffingNeeds[dept]
}

// DefaultTierRates are the built-in effectiveness rates.
var DefaultTierRates = TierRates{Full: 0.70, Part: 0.45, Limited: 0.20}

// DefaultStaffingNeeds are the built-in required headcounts per hour
// label per department.
var DefaultStaffingNeeds = map[Department]map[string]int{
	DeptBOH: {
		"5AM": 4, "6AM": 5, "7AM": 5, "8AM": 6, "9AM": 8, "10AM": 8,
		"11AM": 9, "12PM": 11, "1PM": 10, "2PM": 7, "3PM": 7, "4PM": 7,
		"5PM": 7, "6PM": 3, "7PM": 4, "8PM": 4, "9PM": 7, "10PM": 4, "11PM": 4,
	},
	DeptFOH: {
		"5AM": 4, "6AM": 4, "7AM": 6, "8AM": 6, "9AM": 8, "10AM": 7,
		"11AM": 10, "12PM": 10, "1PM": 11, "2PM": 8, "3PM": 9, "4PM": 7,
		"5PM": 6, "6PM": 4, "7PM": 5, "8PM": 5, "9PM": 6, "10PM": 5, "11PM": 6,
	},
}

// DefaultSettings returns a Settings populated with all defaults.
func DefaultSettings() Settings {
	needs := make(map[Department]map[string]int, len(DefaultStaffingNeeds))
	for dept, table := range DefaultStaffingNeeds {
		copied := make(map[string]int, len(table))
		for label, n := range table {
			copied[label] = n
		}
		needs[dept] = copied
	}
	return Settings{TierRates: DefaultTierRates, StaffingNeeds: needs}
}
