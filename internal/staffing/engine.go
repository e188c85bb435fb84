// Package staffing computes the hour-by-hour gap analysis: raw
// availability weighted by employee tier, net of time-off deductions,
// compared against configured staffing needs. Every function here is
// pure; identical inputs always produce identical outputs.
package staffing

import (
	"math"

	"github.com/shiftboard-app/shiftboard/internal/calendar"
	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
)

// ComputeEffectiveAvailability sums each available employee's tier
// rate per (hour, day). A person with no assigned tier counts at the
// part-time rate. The result is a fractional "effective headcount"
// reflecting that not everyone nominally available actually works.
func ComputeEffectiveAvailability(
	employees map[string]parse.EmployeeGrid,
	tiers domain.EmployeeTiers,
	rates domain.TierRates,
	weekDates []domain.WeekDate,
) map[string]map[string]float64 {
	effective := make(map[string]map[string]float64, len(parse.Hours))
	for _, h := range parse.Hours {
		label := parse.HourLabel(h)
		effective[label] = make(map[string]float64, len(weekDates))
		for _, wd := range weekDates {
			var sum float64
			for name, grid := range employees {
				if grid[label][wd.DayAbbr] {
					sum += rates.Rate(tiers[name])
				}
			}
			effective[label][wd.DayAbbr] = sum
		}
	}
	return effective
}

// BuildTimeOffHourly converts time-off records into per-hour
// deduction counts for the target week: for each hour label and
// in-week ISO date, the number of distinct people whose approved or
// pending time off covers that hour. Dates outside the week are
// ignored.
func BuildTimeOffHourly(records []domain.TimeOffRecord, weekISO []string) map[string]map[string]int {
	week := make(map[string]bool, len(weekISO))
	for _, d := range weekISO {
		week[d] = true
	}

	names := make(map[string]map[string]map[string]bool, len(parse.Hours))
	for _, h := range parse.Hours {
		label := parse.HourLabel(h)
		names[label] = make(map[string]map[string]bool, len(weekISO))
		for _, d := range weekISO {
			names[label][d] = make(map[string]bool)
		}
	}

	for _, rec := range records {
		if !calendar.ClassifyStatus(rec.Status).Recognized() {
			continue
		}
		dates := parse.PhraseDates(rec.DateAndTime)
		if len(dates) == 0 {
			continue
		}
		offHours := parse.PhraseHours(rec.DateAndTime)
		for _, d := range dates {
			iso := parse.ISODate(d)
			if !week[iso] {
				continue
			}
			for _, h := range offHours {
				names[parse.HourLabel(h)][iso][rec.Name] = true
			}
		}
	}

	counts := make(map[string]map[string]int, len(names))
	for label, byDate := range names {
		counts[label] = make(map[string]int, len(weekISO))
		for _, d := range weekISO {
			counts[label][d] = len(byDate[d])
		}
	}
	return counts
}

// GapInput carries everything one gap computation needs.
type GapInput struct {
	Raw       map[string]map[string]int     // hour label → day abbr → headcount
	Effective map[string]map[string]float64 // hour label → day abbr → tier-weighted
	TimeOff   map[string]map[string]int     // hour label → ISO date → deduction
	WeekDates []domain.WeekDate
	Needs     map[string]int // hour label → required headcount
}

// ComputeStaffingGap fills one GapCell per (hour, day). Effective
// headcount is rounded to the nearest integer for the net arithmetic
// while the exact value is kept to one decimal for display. Net and
// gap are never clamped; a negative gap is a shortage.
func ComputeStaffingGap(in GapInput) map[string]map[string]domain.GapCell {
	result := make(map[string]map[string]domain.GapCell, len(parse.Hours))
	for _, h := range parse.Hours {
		label := parse.HourLabel(h)
		result[label] = make(map[string]domain.GapCell, len(in.WeekDates))
		for _, wd := range in.WeekDates {
			raw := in.Raw[label][wd.DayAbbr]
			eff := in.Effective[label][wd.DayAbbr]
			effRounded := int(math.Round(eff))
			deduct := in.TimeOff[label][wd.ISODate]
			net := effRounded - deduct
			need := in.Needs[label]
			result[label][wd.DayAbbr] = domain.GapCell{
				Raw:            raw,
				Effective:      effRounded,
				EffectiveExact: math.Round(eff*10) / 10,
				TimeOff:        deduct,
				Net:            net,
				Need:           need,
				Gap:            net - need,
			}
		}
	}
	return result
}

// ClassifySeverity buckets a gap value. The thresholds are fixed:
// a two-person surplus is comfortable, within one either way is
// tight, two or three short is short, four or more short is critical.
func ClassifySeverity(gap int) domain.Severity {
	switch {
	case gap >= 2:
		return domain.SeveritySurplus
	case gap >= -1:
		return domain.SeverityTight
	case gap >= -3:
		return domain.SeverityShort
	default:
		return domain.SeverityCritical
	}
}
