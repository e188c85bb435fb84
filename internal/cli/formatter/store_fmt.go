package formatter

import (
	"fmt"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// FormatStoreList renders the known stores as a table.
func FormatStoreList(stores []*domain.Store) string {
	rows := make([][]string, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []string{
			s.ID,
			s.Name,
			s.CreatedAt.Format("2006-01-02"),
			s.LastUpdated.Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"ID", "Name", "Created", "Last updated"}, rows, false)
}

// FormatStoreCreated renders the post-create summary. The management
// key is shown exactly once; it is needed for every future write.
func FormatStoreCreated(s *domain.Store) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Created store %s\n", StyleBold.Render(s.Name)))
	b.WriteString(fmt.Sprintf("  ID:             %s\n", StyleBlue.Render(s.ID)))
	b.WriteString(fmt.Sprintf("  Management key: %s\n", StyleYellow.Render(s.ManagementKey)))
	b.WriteString(StyleDim.Render("Save the management key; it gates every update and is not shown again.\n"))
	return b.String()
}
