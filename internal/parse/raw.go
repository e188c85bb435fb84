package parse

import (
	"regexp"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// headerMarker is the literal column-header fragment that precedes the
// request rows in a pasted time-off report. Everything up to and
// including the marker line is noise.
const headerMarker = "Date and Time\tType\t"

// dataRowFields is the minimum tab-separated field count that makes a
// line a request row rather than a name or continuation line.
const dataRowFields = 6

var rawDatePattern = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2}`)

// rawScanner folds pasted report lines into records. The paste
// flattens a hierarchy (a name line followed by that person's request
// rows, occasionally interrupted by a stray date fragment), so the
// scanner carries the last seen name and any pending date fragment
// across lines.
type rawScanner struct {
	currentName string
	datePrefix  string
	records     []domain.TimeOffRecord
}

func (sc *rawScanner) consume(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	parts := strings.Split(line, "\t")
	if len(parts) >= dataRowFields {
		// Request row. Field 0 is the date-and-time phrase, field 5
		// the status phrase. Rows before the first name line are
		// unattributable and dropped.
		if sc.currentName == "" {
			sc.datePrefix = ""
			return
		}
		dateAndTime := strings.TrimSpace(parts[0])
		status := strings.TrimSpace(parts[5])
		if sc.datePrefix != "" {
			// Stitch a split phrase such as "Mon 3/16/26 Through" +
			// "Fri 3/20/26 ends 12:00 AM" back together.
			dateAndTime = sc.datePrefix + " " + dateAndTime
			sc.datePrefix = ""
		}
		if dateAndTime != "" && status != "" {
			sc.records = append(sc.records, domain.TimeOffRecord{
				Name:        sc.currentName,
				DateAndTime: dateAndTime,
				Status:      status,
			})
		}
		return
	}

	if rawDatePattern.MatchString(trimmed) {
		// Stray date fragment; hold it for the next request row.
		sc.datePrefix = trimmed
		return
	}

	// Anything else short is a person-name line.
	sc.currentName = trimmed
	sc.datePrefix = ""
}

// ParseRaw extracts time-off records from a pasted report. Lines
// before the header marker are discarded; if the marker is absent the
// paste is unusable and the result is empty. One malformed line never
// aborts the rest of the paste.
func ParseRaw(text string) []domain.TimeOffRecord {
	text = strings.TrimPrefix(text, "\uFEFF")
	lines := splitLines(text)

	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, headerMarker) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil
	}

	sc := &rawScanner{}
	for _, line := range lines[headerIdx+1:] {
		sc.consume(line)
	}
	return sc.records
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
