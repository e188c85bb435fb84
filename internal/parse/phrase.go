package parse

import (
	"regexp"
	"time"
)

var (
	throughPattern     = regexp.MustCompile(`(?i)\bThrough\b`)
	midnightEndPattern = regexp.MustCompile(`(?i)ends\s+12:00\s*AM`)
	allDayPattern      = regexp.MustCompile(`(?i)all\s+day`)
	startsPattern      = regexp.MustCompile(`(?i)starts\s+(\d{1,2}:\d{2}\s*(?:AM|PM))`)
	endsPattern        = regexp.MustCompile(`(?i)ends\s+(\d{1,2}:\d{2}\s*(?:AM|PM))`)
)

// PhraseDates resolves the calendar dates a time-off phrase covers.
//
// A phrase ending "ends 12:00 AM" states an exclusive end date (the
// stay is over at the start of that day), so the last extracted token
// is dropped before range handling. A "Through" phrase with at least
// two remaining tokens expands from the first date through the last
// (exclusive); anything else is a single-day entry on the first token.
func PhraseDates(phrase string) []time.Time {
	tokens := rawDatePattern.FindAllString(phrase, -1)
	if midnightEndPattern.MatchString(phrase) && len(tokens) > 0 {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return nil
	}
	if throughPattern.MatchString(phrase) && len(tokens) >= 2 {
		start, okStart := ParseShortDate(tokens[0])
		end, okEnd := ParseShortDate(tokens[len(tokens)-1])
		if !okStart || !okEnd {
			return nil
		}
		return DateRange(start, end)
	}
	d, ok := ParseShortDate(tokens[0])
	if !ok {
		return nil
	}
	return []time.Time{d}
}

// PhraseHours resolves which operating hours a time-off phrase covers
// on each of its days. "all day" covers the full window; explicit
// "starts H:MM" / "ends H:MM" bound the window and are open-ended on
// the missing side; an end of 12:00 AM runs through close. When no
// time information parses, the whole day is covered.
func PhraseHours(phrase string) []int {
	if allDayPattern.MatchString(phrase) {
		return Hours
	}

	startsM := startsPattern.FindStringSubmatch(phrase)
	endsM := endsPattern.FindStringSubmatch(phrase)

	switch {
	case startsM != nil && endsM != nil:
		start, okStart := ParseClockTime(startsM[1])
		end, okEnd := ParseClockTime(endsM[1])
		if !okStart || !okEnd {
			return Hours
		}
		if end == 0 {
			end = 24
		}
		return hoursWithin(start, end)
	case startsM != nil:
		start, ok := ParseClockTime(startsM[1])
		if !ok {
			return Hours
		}
		return hoursWithin(start, 24)
	case endsM != nil:
		end, ok := ParseClockTime(endsM[1])
		if !ok {
			return Hours
		}
		if end == 0 {
			end = 24
		}
		return hoursWithin(0, end)
	default:
		return Hours
	}
}

func hoursWithin(start, end int) []int {
	var hours []int
	for _, h := range Hours {
		if h >= start && h < end {
			hours = append(hours, h)
		}
	}
	return hours
}
