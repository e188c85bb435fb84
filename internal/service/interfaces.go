package service

import (
	"context"

	"github.com/shiftboard-app/shiftboard/internal/calendar"
	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// ImportResult reports what a time-off import did: how many records
// the paste yielded, what the fold did with them, and the rebuilt
// calendar document as persisted.
type ImportResult struct {
	Records int
	Stats   calendar.FoldStats
	Doc     domain.CalendarDoc
}

// ComputeResult is a computed-and-persisted staffing analysis plus
// the inputs worth echoing back to the caller.
type ComputeResult struct {
	Doc            *domain.StaffingDoc
	EmployeeCount  int
	TimeOffRecords int
}

type StoreService interface {
	Create(ctx context.Context, name string) (*domain.Store, error)
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	Delete(ctx context.Context, id, managementKey string) error

	GetSettings(ctx context.Context, storeID string) (domain.Settings, error)
	SaveSettings(ctx context.Context, storeID, managementKey string, settings domain.Settings) error
	GetTiers(ctx context.Context, storeID string) (domain.EmployeeTiers, error)
	SaveTiers(ctx context.Context, storeID, managementKey string, tiers domain.EmployeeTiers) error
}

type IngestService interface {
	// ImportTimeOff parses a pasted time-off report for one department
	// and rebuilds the store's calendar document, preserving the other
	// department's stored entries.
	ImportTimeOff(ctx context.Context, storeID, managementKey string, dept domain.Department, rawText string) (*ImportResult, error)
	GetCalendar(ctx context.Context, storeID string) (domain.CalendarDoc, error)
}

type StaffingService interface {
	// Compute parses an availability export and a time-off paste,
	// weights availability by the store's tiers and rates, deducts
	// time off, and persists the department's gap analysis.
	Compute(ctx context.Context, storeID, managementKey string, dept domain.Department, availabilityText, timeOffText string) (*ComputeResult, error)
	Get(ctx context.Context, storeID string, dept domain.Department) (*domain.StaffingDoc, error)
}
