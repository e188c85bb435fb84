package formatter

import (
	"fmt"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
	"github.com/shiftboard-app/shiftboard/internal/staffing"
)

// FormatStaffingGrid renders the hour-by-day gap grid. Each cell
// shows the gap (signed), colored by severity.
func FormatStaffingGrid(doc *domain.StaffingDoc) string {
	if doc == nil || len(doc.Cells) == 0 {
		return "No staffing analysis computed."
	}

	headers := make([]string, 0, len(doc.WeekDates)+1)
	headers = append(headers, "Hour")
	for _, wd := range doc.WeekDates {
		headers = append(headers, strings.ToUpper(wd.DayAbbr))
	}

	rows := make([][]string, 0, len(parse.Hours))
	for _, h := range parse.Hours {
		label := parse.HourLabel(h)
		row := make([]string, 0, len(doc.WeekDates)+1)
		row = append(row, label)
		for _, wd := range doc.WeekDates {
			cell := doc.Cells[label][wd.DayAbbr]
			sev := staffing.ClassifySeverity(cell.Gap)
			row = append(row, SeverityStyle(sev).Render(signed(cell.Gap)))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, true))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("gap = net effective staff − need  ·  "))
	b.WriteString(StyleGreen.Render("surplus "))
	b.WriteString(StyleYellow.Render("tight "))
	b.WriteString(StyleOrange.Render("short "))
	b.WriteString(StyleRed.Render("critical"))
	b.WriteString("\n")
	return b.String()
}

// FormatGapDetail renders every component of one hour's cells across
// the week.
func FormatGapDetail(doc *domain.StaffingDoc, hourLabel string) string {
	byDay, ok := doc.Cells[hourLabel]
	if !ok {
		return fmt.Sprintf("No data for hour %q.", hourLabel)
	}

	headers := []string{"Day", "Raw", "Effective", "Time off", "Net", "Need", "Gap"}
	rows := make([][]string, 0, len(doc.WeekDates))
	for _, wd := range doc.WeekDates {
		cell := byDay[wd.DayAbbr]
		sev := staffing.ClassifySeverity(cell.Gap)
		rows = append(rows, []string{
			strings.ToUpper(wd.DayAbbr),
			fmt.Sprintf("%d", cell.Raw),
			fmt.Sprintf("%.1f", cell.EffectiveExact),
			fmt.Sprintf("-%d", cell.TimeOff),
			fmt.Sprintf("%d", cell.Net),
			fmt.Sprintf("%d", cell.Need),
			SeverityStyle(sev).Render(signed(cell.Gap)),
		})
	}

	var b strings.Builder
	b.WriteString(Header(hourLabel))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows, true))
	return b.String()
}

func signed(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}
