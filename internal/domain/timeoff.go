package domain

// TimeOffRecord is one extracted time-off request row: who, the raw
// date-and-time phrase exactly as pasted, and the raw status phrase.
// Records are transient; they feed the calendar builder and the
// staffing engine's time-off deduction step and are never persisted.
type TimeOffRecord struct {
	Name        string
	DateAndTime string
	Status      string
}
