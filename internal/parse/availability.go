package parse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// AvailabilityResult is the parsed form of a weekly availability
// export: the week's day columns in source order, the aggregate
// headcount available per hour label per day abbreviation, and the
// full per-employee boolean grid the staffing engine weights by tier.
type AvailabilityResult struct {
	WeekDates []domain.WeekDate
	Hourly    map[string]map[string]int
	Employees map[string]EmployeeGrid
	Names     []string
	Count     int
}

// EmployeeGrid marks one employee's availability per hour label per
// day abbreviation.
type EmployeeGrid map[string]map[string]bool

var (
	columnHeaderPattern = regexp.MustCompile(`(?i)^(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\s+(\d{1,2}/\d{1,2}/\d{2,4})`)
	unavailablePattern  = regexp.MustCompile(`(?i)unavailable\s+all\s+day`)
	availablePattern    = regexp.MustCompile(`(?i)^available\s+all\s+day$`)
	partialPattern      = regexp.MustCompile(`(?i)partially\s+available\s+(.*)`)
	rangeSepPattern     = regexp.MustCompile(`\s*-\s*`)
)

type dayColumn struct {
	index   int
	dayAbbr string
	isoDate string
}

// parseColumnHeader recognizes a day column label such as
// "Mon  2/16/26" or "Tue 2/17/2026".
func parseColumnHeader(header string) (domain.WeekDate, bool) {
	h := strings.Trim(strings.TrimSpace(header), `"`)
	m := columnHeaderPattern.FindStringSubmatch(h)
	if m == nil {
		return domain.WeekDate{}, false
	}
	date, ok := ParseShortDate(m[2])
	if !ok {
		return domain.WeekDate{}, false
	}
	return domain.WeekDate{
		DayAbbr: strings.ToLower(m[1][:3]),
		ISODate: ISODate(date),
	}, true
}

// parseHourRange parses one "H:MM AM - H:MM PM" sub-range into hours.
// Start is inclusive, end exclusive; an end of "12:00 AM" means the
// person stays through close. Hours outside the operating window are
// discarded.
func parseHourRange(s string) []int {
	parts := rangeSepPattern.Split(strings.TrimSpace(s), -1)
	if len(parts) != 2 {
		return nil
	}
	start, okStart := ParseClockTime(parts[0])
	end, okEnd := ParseClockTime(parts[1])
	if !okStart || !okEnd {
		return nil
	}
	if end == 0 {
		end = 24
	}
	var hours []int
	for h := start; h < end; h++ {
		if h >= DayStartHour && h <= DayEndHour {
			hours = append(hours, h)
		}
	}
	return hours
}

// parseCell classifies one availability cell value into the set of
// hours the person can work. Unrecognized phrasing means no hours;
// dirty cells are a fact of pasted exports, not an error.
func parseCell(value string) []int {
	val := strings.TrimSpace(value)
	if val == "" || unavailablePattern.MatchString(val) {
		return nil
	}
	if availablePattern.MatchString(val) {
		return Hours
	}
	if m := partialPattern.FindStringSubmatch(val); m != nil {
		seen := make(map[int]bool)
		var hours []int
		for _, r := range strings.Split(m[1], ",") {
			for _, h := range parseHourRange(r) {
				if !seen[h] {
					seen[h] = true
					hours = append(hours, h)
				}
			}
		}
		sort.Ints(hours)
		return hours
	}
	return nil
}

// splitDelimited splits an export line into fields. Tab-delimited
// lines split on tab with surrounding quotes stripped; otherwise the
// line is treated as RFC 4180 CSV, where quoted fields may contain
// commas and doubled quotes encode a literal quote.
func splitDelimited(line string) []string {
	if strings.Contains(line, "\t") {
		parts := strings.Split(line, "\t")
		fields := make([]string, len(parts))
		for i, p := range parts {
			fields[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(p), `"`))
		}
		return fields
	}

	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

// ParseAvailability parses a pasted weekly availability export. It is
// total over text input: structurally absent input (fewer than two
// non-blank lines, or a header with no recognizable day columns)
// reports ok=false with an empty result, and a malformed row or cell
// never prevents the rest from being processed.
func ParseAvailability(text string) (AvailabilityResult, bool) {
	empty := AvailabilityResult{
		Hourly:    map[string]map[string]int{},
		Employees: map[string]EmployeeGrid{},
	}

	text = strings.TrimPrefix(text, "\uFEFF")
	var lines []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return empty, false
	}

	var columns []dayColumn
	for i, field := range splitDelimited(lines[0]) {
		if wd, ok := parseColumnHeader(field); ok {
			columns = append(columns, dayColumn{index: i, dayAbbr: wd.DayAbbr, isoDate: wd.ISODate})
		}
	}
	if len(columns) == 0 {
		return empty, false
	}

	result := AvailabilityResult{
		WeekDates: make([]domain.WeekDate, 0, len(columns)),
		Hourly:    make(map[string]map[string]int),
		Employees: make(map[string]EmployeeGrid),
	}
	for _, c := range columns {
		result.WeekDates = append(result.WeekDates, domain.WeekDate{DayAbbr: c.dayAbbr, ISODate: c.isoDate})
	}
	for _, h := range Hours {
		label := HourLabel(h)
		result.Hourly[label] = make(map[string]int, len(columns))
		for _, c := range columns {
			result.Hourly[label][c.dayAbbr] = 0
		}
	}

	for _, line := range lines[1:] {
		fields := splitDelimited(line)
		if len(fields) <= 1 {
			continue
		}
		name := strings.TrimSpace(strings.Trim(fields[0], `"`))
		if name == "" {
			continue
		}
		result.Count++
		result.Names = append(result.Names, name)

		grid := make(EmployeeGrid, len(Hours))
		for _, h := range Hours {
			label := HourLabel(h)
			grid[label] = make(map[string]bool, len(columns))
			for _, c := range columns {
				grid[label][c.dayAbbr] = false
			}
		}
		result.Employees[name] = grid

		for _, c := range columns {
			var cell string
			if c.index < len(fields) {
				cell = fields[c.index]
			}
			for _, h := range parseCell(cell) {
				label := HourLabel(h)
				result.Hourly[label][c.dayAbbr]++
				grid[label][c.dayAbbr] = true
			}
		}
	}

	sort.Strings(result.Names)
	return result, true
}
