package repository

import (
	"context"
	"errors"

	"github.com/shiftboard-app/shiftboard/internal/domain"
)

// ErrNotFound is returned (wrapped) when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// StoreRepo persists stores and their derived documents. Document
// writes replace the stored value wholesale; merge semantics live in
// the service layer, which always writes a fully rebuilt document.
type StoreRepo interface {
	Create(ctx context.Context, s *domain.Store) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	Delete(ctx context.Context, id string) error

	GetCalendar(ctx context.Context, storeID string) (domain.CalendarDoc, error)
	SaveCalendar(ctx context.Context, storeID string, doc domain.CalendarDoc) error

	GetSettings(ctx context.Context, storeID string) (domain.Settings, error)
	SaveSettings(ctx context.Context, storeID string, settings domain.Settings) error

	GetTiers(ctx context.Context, storeID string) (domain.EmployeeTiers, error)
	SaveTiers(ctx context.Context, storeID string, tiers domain.EmployeeTiers) error

	GetStaffing(ctx context.Context, storeID string, dept domain.Department) (*domain.StaffingDoc, error)
	SaveStaffing(ctx context.Context, storeID string, dept domain.Department, doc *domain.StaffingDoc) error
}
