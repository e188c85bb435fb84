package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// FormatDate renders an ISO date for display: "2026-02-14" → "Feb 14, 2026".
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}

// FormatCalendar renders the per-day overview: one row per date with
// the all/foh/boh request counts, heat-colored.
func FormatCalendar(doc domain.CalendarDoc) string {
	if len(doc) == 0 {
		return "No time-off entries."
	}

	dates := make([]string, 0, len(doc))
	for d := range doc {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	rows := make([][]string, 0, len(dates))
	for _, date := range dates {
		day := doc[date]
		rows = append(rows, []string{
			FormatDate(date),
			heatCount(day.All.Count),
			heatCount(day.FOH.Count),
			heatCount(day.BOH.Count),
		})
	}
	return RenderTable([]string{"Date", "All", "FOH", "BOH"}, rows, true)
}

func heatCount(count int) string {
	s := fmt.Sprintf("%d", count)
	if level := domain.HeatLevel(count); level != "" {
		return HeatStyle(level).Render(s)
	}
	return StyleDim.Render(s)
}

// FormatDay renders one day's details: approved and pending names for
// each scope.
func FormatDay(iso string, day domain.DayEntry) string {
	var b strings.Builder
	b.WriteString(Header(FormatDate(iso)))
	b.WriteString("\n")

	scopes := []struct {
		name  string
		entry domain.ScopeEntry
	}{
		{"All", day.All},
		{"FOH", day.FOH},
		{"BOH", day.BOH},
	}
	for _, s := range scopes {
		b.WriteString(fmt.Sprintf("\n%s (%d)\n", StyleBold.Render(s.name), s.entry.Count))
		writeNames(&b, "approved", s.entry.Approved, StyleGreen)
		writeNames(&b, "pending", s.entry.Pending, StyleYellow)
	}
	return b.String()
}

func writeNames(b *strings.Builder, label string, names []string, style interface{ Render(...string) string }) {
	if len(names) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", style.Render(label), strings.Join(names, ", ")))
}
