// Package calendar folds extracted time-off records into the per-day
// calendar document. Accumulation is a mutable nested map behind a
// single get-or-create accessor; BuildOutput is the separate finalize
// step that sorts, unions, and snapshots into the immutable document.
package calendar

import (
	"sort"
	"strings"

	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
)

// ClassifyStatus normalizes a raw status phrase. Matching is a
// case-insensitive substring check, "approved" first.
func ClassifyStatus(phrase string) domain.Status {
	s := strings.ToLower(phrase)
	if strings.Contains(s, "approved") {
		return domain.StatusApproved
	}
	if strings.Contains(s, "pending") {
		return domain.StatusPending
	}
	return domain.StatusUnrecognized
}

// FoldStats reports what a fold over records did with its input.
// Unrecognized statuses and unresolvable date phrases are dropped by
// policy; the counts exist so callers can surface them.
type FoldStats struct {
	Total          int
	Added          int
	DroppedStatus  int
	DroppedNoDates int
}

// Accumulator collects names per date, department, and status.
type Accumulator struct {
	days map[string]map[domain.Department]map[domain.Status]map[string]bool
}

func NewAccumulator() *Accumulator {
	return &Accumulator{days: make(map[string]map[domain.Department]map[domain.Status]map[string]bool)}
}

// entry is the single get-or-create accessor for the nested structure.
func (a *Accumulator) entry(isoDate string, dept domain.Department, status domain.Status) map[string]bool {
	day, ok := a.days[isoDate]
	if !ok {
		day = make(map[domain.Department]map[domain.Status]map[string]bool)
		a.days[isoDate] = day
	}
	scope, ok := day[dept]
	if !ok {
		scope = make(map[domain.Status]map[string]bool)
		day[dept] = scope
	}
	names, ok := scope[status]
	if !ok {
		names = make(map[string]bool)
		scope[status] = names
	}
	return names
}

// Add records one person's time off for one day.
func (a *Accumulator) Add(isoDate string, dept domain.Department, status domain.Status, name string) {
	if !status.Recognized() || name == "" {
		return
	}
	a.entry(isoDate, dept, status)[name] = true
}

// Seed pre-loads one department's entries from a previously built
// document. Updating from a single department's fresh paste must not
// destroy the other department's stored entries; seeding the other
// department before folding preserves them and lets BuildOutput
// recompute the union from the merged state.
func (a *Accumulator) Seed(doc domain.CalendarDoc, dept domain.Department) {
	for isoDate, day := range doc {
		scope := day.BOH
		if dept == domain.DeptFOH {
			scope = day.FOH
		}
		for _, name := range scope.Approved {
			a.Add(isoDate, dept, domain.StatusApproved, name)
		}
		for _, name := range scope.Pending {
			a.Add(isoDate, dept, domain.StatusPending, name)
		}
	}
}

// Fold classifies and dates every record, adding recognized ones into
// the given department. A bad record is dropped, never fatal.
func (a *Accumulator) Fold(records []domain.TimeOffRecord, dept domain.Department) FoldStats {
	stats := FoldStats{Total: len(records)}
	for _, rec := range records {
		status := ClassifyStatus(rec.Status)
		if !status.Recognized() || rec.Name == "" {
			stats.DroppedStatus++
			continue
		}
		dates := parse.PhraseDates(rec.DateAndTime)
		if len(dates) == 0 {
			stats.DroppedNoDates++
			continue
		}
		for _, d := range dates {
			a.Add(parse.ISODate(d), dept, status, rec.Name)
		}
		stats.Added++
	}
	return stats
}

// BuildOutput finalizes the accumulated state into the immutable
// calendar document: dates ascending, name sets sorted into arrays,
// "all" computed as the BOH/FOH union, counts derived from the sets.
func (a *Accumulator) BuildOutput() domain.CalendarDoc {
	out := make(domain.CalendarDoc, len(a.days))

	dates := make([]string, 0, len(a.days))
	for d := range a.days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day := a.days[date]
		fohApproved := day[domain.DeptFOH][domain.StatusApproved]
		fohPending := day[domain.DeptFOH][domain.StatusPending]
		bohApproved := day[domain.DeptBOH][domain.StatusApproved]
		bohPending := day[domain.DeptBOH][domain.StatusPending]

		allApproved := union(fohApproved, bohApproved)
		allPending := union(fohPending, bohPending)

		out[date] = domain.DayEntry{
			All: scopeEntry(allApproved, allPending),
			FOH: scopeEntry(fohApproved, fohPending),
			BOH: scopeEntry(bohApproved, bohPending),
		}
	}
	return out
}

func union(a, b map[string]bool) map[string]bool {
	u := make(map[string]bool, len(a)+len(b))
	for name := range a {
		u[name] = true
	}
	for name := range b {
		u[name] = true
	}
	return u
}

func scopeEntry(approved, pending map[string]bool) domain.ScopeEntry {
	return domain.ScopeEntry{
		Approved: sortedNames(approved),
		Pending:  sortedNames(pending),
		Count:    len(approved) + len(pending),
	}
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
