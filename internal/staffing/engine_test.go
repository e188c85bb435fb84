package staffing

import (
	"testing"

	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWeek = []domain.WeekDate{
	{DayAbbr: "mon", ISODate: "2026-03-16"},
	{DayAbbr: "tue", ISODate: "2026-03-17"},
}

func gridFor(hours []int, days ...string) parse.EmployeeGrid {
	grid := make(parse.EmployeeGrid)
	for _, h := range hours {
		label := parse.HourLabel(h)
		grid[label] = make(map[string]bool, len(days))
		for _, d := range days {
			grid[label][d] = true
		}
	}
	return grid
}

func TestComputeEffectiveAvailability_TierWeighting(t *testing.T) {
	employees := map[string]parse.EmployeeGrid{
		"Full":     gridFor([]int{9}, "mon"),
		"Part":     gridFor([]int{9}, "mon"),
		"Limited":  gridFor([]int{9}, "mon"),
		"Untiered": gridFor([]int{9}, "mon"),
	}
	tiers := domain.EmployeeTiers{
		"Full":    domain.TierFull,
		"Part":    domain.TierPart,
		"Limited": domain.TierLimited,
		// "Untiered" has no entry and falls back to part time.
	}

	eff := ComputeEffectiveAvailability(employees, tiers, domain.DefaultTierRates, testWeek)

	assert.InDelta(t, 0.70+0.45+0.20+0.45, eff["9AM"]["mon"], 1e-9)
	assert.Zero(t, eff["9AM"]["tue"])
	assert.Zero(t, eff["10AM"]["mon"])

	// Every hour in the window has an entry for every day.
	require.Len(t, eff, len(parse.Hours))
	for _, byDay := range eff {
		assert.Len(t, byDay, len(testWeek))
	}
}

func TestBuildTimeOffHourly(t *testing.T) {
	records := []domain.TimeOffRecord{
		{Name: "Alice", DateAndTime: "Mon 3/16/26 all day", Status: "Approved"},
		{Name: "Bob", DateAndTime: "Mon 3/16/26 starts 2:00 PM", Status: "Pending"},
		{Name: "Alice", DateAndTime: "Mon 3/16/26 starts 9:00 AM", Status: "Approved"}, // same person, no double count
		{Name: "Cara", DateAndTime: "Sat 3/21/26 all day", Status: "Approved"},         // outside the week
		{Name: "Dave", DateAndTime: "Mon 3/16/26 all day", Status: "Denied"},
	}

	hourly := BuildTimeOffHourly(records, []string{"2026-03-16", "2026-03-17"})

	// Morning: Alice only.
	assert.Equal(t, 1, hourly["9AM"]["2026-03-16"])
	// Afternoon: Alice plus Bob's open-ended start.
	assert.Equal(t, 2, hourly["2PM"]["2026-03-16"])
	assert.Equal(t, 2, hourly["10PM"]["2026-03-16"])
	// Bob's time off has not started at 1pm.
	assert.Equal(t, 1, hourly["1PM"]["2026-03-16"])
	assert.Zero(t, hourly["9AM"]["2026-03-17"])
	assert.NotContains(t, hourly["9AM"], "2026-03-21")
}

func TestComputeStaffingGap(t *testing.T) {
	in := GapInput{
		Raw: map[string]map[string]int{
			"12PM": {"mon": 14},
		},
		Effective: map[string]map[string]float64{
			"12PM": {"mon": 8.24},
		},
		TimeOff: map[string]map[string]int{
			"12PM": {"2026-03-16": 2},
		},
		WeekDates: testWeek,
		Needs:     map[string]int{"12PM": 8},
	}

	cells := ComputeStaffingGap(in)

	cell := cells["12PM"]["mon"]
	assert.Equal(t, 14, cell.Raw)
	assert.Equal(t, 8, cell.Effective)
	assert.InDelta(t, 8.2, cell.EffectiveExact, 1e-9)
	assert.Equal(t, 2, cell.TimeOff)
	assert.Equal(t, 6, cell.Net)
	assert.Equal(t, 8, cell.Need)
	assert.Equal(t, -2, cell.Gap)
	assert.Equal(t, domain.SeverityShort, ClassifySeverity(cell.Gap))

	// Hours with no inputs still get zero-valued cells.
	empty := cells["6AM"]["tue"]
	assert.Zero(t, empty.Raw)
	assert.Zero(t, empty.Gap)
}

func TestComputeStaffingGap_NoClamping(t *testing.T) {
	in := GapInput{
		Effective: map[string]map[string]float64{
			"5AM": {"mon": 0},
		},
		TimeOff: map[string]map[string]int{
			"5AM": {"2026-03-16": 3},
		},
		WeekDates: testWeek[:1],
		Needs:     map[string]int{"5AM": 2},
	}

	cell := ComputeStaffingGap(in)["5AM"]["mon"]
	assert.Equal(t, -3, cell.Net, "net goes negative rather than clamping")
	assert.Equal(t, -5, cell.Gap)
}

func TestClassifySeverity(t *testing.T) {
	cases := map[int]domain.Severity{
		5:  domain.SeveritySurplus,
		2:  domain.SeveritySurplus,
		1:  domain.SeverityTight,
		0:  domain.SeverityTight,
		-1: domain.SeverityTight,
		-2: domain.SeverityShort,
		-3: domain.SeverityShort,
		-4: domain.SeverityCritical,
		-9: domain.SeverityCritical,
	}
	for gap, want := range cases {
		assert.Equal(t, want, ClassifySeverity(gap), "gap %d", gap)
	}
}
