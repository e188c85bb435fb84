package staffing

import (
	"strings"
	"testing"

	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV(t *testing.T) {
	hourly := map[string]map[string]int{
		"5AM":  {"mon": 3, "tue": 1},
		"12PM": {"mon": 7},
		"11PM": {"tue": 2},
	}

	out := ToCSV(hourly, testWeek)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, len(parse.Hours)+1)
	assert.Equal(t, "Hour,Mon,Tue", lines[0])
	assert.Equal(t, "5 AM,3,1", lines[1])
	assert.Equal(t, "12 PM,7,0", lines[8])
	assert.Equal(t, "11 PM,0,2", lines[len(lines)-1])
	// Missing cells render as zero, not blank.
	assert.Equal(t, "6 AM,0,0", lines[2])
}

func TestGapToCSV(t *testing.T) {
	cells := map[string]map[string]domain.GapCell{
		"5AM": {"mon": {Gap: -2}, "tue": {Gap: 1}},
	}

	out := GapToCSV(cells, testWeek)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "5 AM,-2,1", lines[1])
}
