package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Headers use the Header style. When rightAlign is true all columns
// after the first are right-aligned, which suits numeric grids.
func RenderTable(headers []string, rows [][]string, rightAlign bool) string {
	if len(headers) == 0 {
		return ""
	}
	cols := len(headers)

	// Column widths are measured on visible width so styled cells
	// align correctly.
	widths := make([]int, cols)
	measure := func(i int, s string) {
		if w := lipgloss.Width(s); w > widths[i] {
			widths[i] = w
		}
	}
	for i, h := range headers {
		measure(i, h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			measure(i, row[i])
		}
	}

	var b strings.Builder
	writeCell := func(i int, cell string, style *lipgloss.Style) {
		pad := widths[i] - lipgloss.Width(cell)
		if pad < 0 {
			pad = 0
		}
		rendered := cell
		if style != nil {
			rendered = style.Render(cell)
		}
		alignRight := rightAlign && i > 0
		if alignRight {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(rendered)
		if i < cols-1 {
			if !alignRight {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}

	for i, h := range headers {
		writeCell(i, h, &StyleHeader)
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, nil)
		}
		b.WriteString("\n")
	}
	return b.String()
}
