package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataRow builds a tab-delimited request row the way the scheduling
// system pastes them: phrase first, status in the sixth column.
func dataRow(phrase, status string) string {
	return strings.Join([]string{phrase, "Time Off", "8h", "", "Manager", status, "note"}, "\t")
}

func TestParseRaw_BasicReport(t *testing.T) {
	text := strings.Join([]string{
		"Weekly Report",
		"some\tnoise\there",
		"Date and Time\tType\tDuration\tBlocked\tApprover\tStatus\tNotes",
		"Alice Anderson",
		dataRow("Mon 3/16/26 all day", "Approved"),
		dataRow("Tue 3/17/26 starts 2:00 PM", "Pending"),
		"Bob Brown",
		dataRow("Wed 3/18/26 all day", "Denied"),
		"",
	}, "\n")

	records := ParseRaw(text)
	require.Len(t, records, 3)

	assert.Equal(t, "Alice Anderson", records[0].Name)
	assert.Equal(t, "Mon 3/16/26 all day", records[0].DateAndTime)
	assert.Equal(t, "Approved", records[0].Status)

	assert.Equal(t, "Alice Anderson", records[1].Name)
	assert.Equal(t, "Pending", records[1].Status)

	// Status recognition is not the extractor's job; Denied rows
	// still come through.
	assert.Equal(t, "Bob Brown", records[2].Name)
	assert.Equal(t, "Denied", records[2].Status)
}

func TestParseRaw_DatePrefixStitching(t *testing.T) {
	text := strings.Join([]string{
		"Date and Time\tType\tDuration\tBlocked\tApprover\tStatus\tNotes",
		"Cara Diaz",
		"Mon 3/16/26 Through",
		dataRow("Fri 3/20/26 ends 12:00 AM", "Approved"),
		dataRow("Sat 3/28/26 all day", "Approved"),
	}, "\n")

	records := ParseRaw(text)
	require.Len(t, records, 2)
	assert.Equal(t, "Mon 3/16/26 Through Fri 3/20/26 ends 12:00 AM", records[0].DateAndTime)
	// The prefix is consumed by the first row only.
	assert.Equal(t, "Sat 3/28/26 all day", records[1].DateAndTime)
}

func TestParseRaw_DataRowBeforeNameSkipped(t *testing.T) {
	text := strings.Join([]string{
		"Date and Time\tType\tDuration\tBlocked\tApprover\tStatus\tNotes",
		dataRow("Mon 3/16/26 all day", "Approved"),
		"Dana Evans",
		dataRow("Tue 3/17/26 all day", "Approved"),
	}, "\n")

	records := ParseRaw(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Dana Evans", records[0].Name)
}

func TestParseRaw_NameLineClearsStalePrefix(t *testing.T) {
	text := strings.Join([]string{
		"Date and Time\tType\tDuration\tBlocked\tApprover\tStatus\tNotes",
		"Cara Diaz",
		"Mon 3/16/26 Through",
		"Evan Fox",
		dataRow("Tue 3/17/26 all day", "Approved"),
	}, "\n")

	records := ParseRaw(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Evan Fox", records[0].Name)
	assert.Equal(t, "Tue 3/17/26 all day", records[0].DateAndTime)
}

func TestParseRaw_MissingHeaderMarker(t *testing.T) {
	assert.Empty(t, ParseRaw("no marker here\njust text\n"))
	assert.Empty(t, ParseRaw(""))
}

func TestParseRaw_StripsBOM(t *testing.T) {
	text := "\uFEFFDate and Time\tType\tDuration\tBlocked\tApprover\tStatus\tNotes\n" +
		"Gia Hall\n" + dataRow("Mon 3/16/26 all day", "Approved")
	records := ParseRaw(text)
	require.Len(t, records, 1)
}

func TestParseRaw_CRLFLines(t *testing.T) {
	text := "Date and Time\tType\tDuration\tBlocked\tApprover\tStatus\tNotes\r\n" +
		"Ian James\r\n" + dataRow("Mon 3/16/26 all day", "Pending") + "\r\n"
	records := ParseRaw(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Ian James", records[0].Name)
}
