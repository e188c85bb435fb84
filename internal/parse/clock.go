package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

func normalizeUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// The store tracks a fixed 19-hour operating day, 5:00 through 23:00.
// Hours outside this window are never recorded.
const (
	DayStartHour = 5
	DayEndHour   = 23
)

// Hours lists every tracked hour of day in ascending order.
var Hours = func() []int {
	hs := make([]int, 0, DayEndHour-DayStartHour+1)
	for h := DayStartHour; h <= DayEndHour; h++ {
		hs = append(hs, h)
	}
	return hs
}()

const dateLayout = "2006-01-02"

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// ParseClockTime parses a 12-hour clock string such as "4:00 PM" into
// an hour of day in [0,23]. "12:00 AM" is 0 and "12:00 PM" is 12.
// Malformed input reports ok=false rather than failing the batch.
func ParseClockTime(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(normalizeUpper(s))
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h < 1 || h > 12 {
		return 0, false
	}
	switch m[3] {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	}
	return h, true
}

var shortDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)

// ParseShortDate parses an M/D/YY (or M/D/YYYY) date token. Two-digit
// years pivot at 50: y<50 maps to 2000+y, otherwise 1900+y. The pivot
// is fixed for compatibility with the upstream report format.
func ParseShortDate(s string) (time.Time, bool) {
	m := shortDatePattern.FindStringSubmatch(normalizeUpper(s))
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// DateRange returns every date from start (inclusive) to end
// (exclusive) in day steps.
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, cur)
	}
	return dates
}

// ISODate formats a date as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format(dateLayout)
}

// HourLabel converts an hour of day to its display token:
// 5 → "5AM", 12 → "12PM", 13 → "1PM", 0 or 24 → "12AM".
func HourLabel(h int) string {
	switch {
	case h == 0 || h == 24:
		return "12AM"
	case h < 12:
		return fmt.Sprintf("%dAM", h)
	case h == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", h-12)
	}
}

var labelPattern = regexp.MustCompile(`^(\d{1,2})(AM|PM)$`)

// LabelToHour reverses HourLabel. Unrecognized labels map to 0.
func LabelToHour(label string) int {
	m := labelPattern.FindStringSubmatch(normalizeUpper(label))
	if m == nil {
		return 0
	}
	h, _ := strconv.Atoi(m[1])
	if m[2] == "AM" && h == 12 {
		return 0
	}
	if m[2] == "PM" && h != 12 {
		return h + 12
	}
	return h
}
