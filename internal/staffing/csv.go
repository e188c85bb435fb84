package staffing

import (
	"fmt"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
)

// ToCSV renders an hourly grid as CSV: a "Hour,<Day>,..." header row,
// then one row per operating hour with a display-formatted hour label
// ("5 AM") and the value per day in week order. Missing cells are 0.
func ToCSV(hourly map[string]map[string]int, weekDates []domain.WeekDate) string {
	headers := make([]string, 0, len(weekDates)+1)
	headers = append(headers, "Hour")
	for _, wd := range weekDates {
		headers = append(headers, titleDay(wd.DayAbbr))
	}

	rows := []string{strings.Join(headers, ",")}
	for _, h := range parse.Hours {
		label := parse.HourLabel(h)
		cols := make([]string, 0, len(weekDates)+1)
		cols = append(cols, displayHour(h))
		for _, wd := range weekDates {
			cols = append(cols, fmt.Sprintf("%d", hourly[label][wd.DayAbbr]))
		}
		rows = append(rows, strings.Join(cols, ","))
	}
	return strings.Join(rows, "\n")
}

// GapToCSV renders the gap value of a computed staffing grid as CSV.
func GapToCSV(cells map[string]map[string]domain.GapCell, weekDates []domain.WeekDate) string {
	grid := make(map[string]map[string]int, len(cells))
	for label, byDay := range cells {
		grid[label] = make(map[string]int, len(byDay))
		for day, cell := range byDay {
			grid[label][day] = cell.Gap
		}
	}
	return ToCSV(grid, weekDates)
}

// displayHour formats an hour of day as "5 AM" / "12 PM" / "11 PM".
func displayHour(h int) string {
	display := h
	switch {
	case h == 0:
		display = 12
	case h > 12:
		display = h - 12
	}
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d %s", display, meridiem)
}

func titleDay(abbr string) string {
	if abbr == "" {
		return ""
	}
	return strings.ToUpper(abbr[:1]) + abbr[1:]
}
