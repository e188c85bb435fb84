package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftboard-app/shiftboard/internal/db"
	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
	"github.com/shiftboard-app/shiftboard/internal/repository"
	"github.com/shiftboard-app/shiftboard/internal/staffing"
)

type staffingService struct {
	stores repository.StoreRepo
	uow    db.UnitOfWork
}

func NewStaffingService(stores repository.StoreRepo, uow db.UnitOfWork) StaffingService {
	return &staffingService{stores: stores, uow: uow}
}

func (s *staffingService) Compute(ctx context.Context, storeID, managementKey string, dept domain.Department, availabilityText, timeOffText string) (*ComputeResult, error) {
	if _, err := requireKey(ctx, s.stores, storeID, managementKey); err != nil {
		return nil, err
	}

	avail, ok := parse.ParseAvailability(availabilityText)
	if !ok {
		return nil, fmt.Errorf("no availability data found in paste (missing day columns?)")
	}

	tiers, err := s.stores.GetTiers(ctx, storeID)
	if err != nil {
		return nil, err
	}
	settings, err := s.stores.GetSettings(ctx, storeID)
	if err != nil {
		return nil, err
	}

	weekISO := make([]string, 0, len(avail.WeekDates))
	for _, wd := range avail.WeekDates {
		weekISO = append(weekISO, wd.ISODate)
	}

	// Time-off deductions reuse the same extractor the calendar uses;
	// a paste without the header marker just deducts nothing.
	records := parse.ParseRaw(timeOffText)
	timeOff := staffing.BuildTimeOffHourly(records, weekISO)

	effective := staffing.ComputeEffectiveAvailability(avail.Employees, tiers, settings.TierRates, avail.WeekDates)
	cells := staffing.ComputeStaffingGap(staffing.GapInput{
		Raw:       avail.Hourly,
		Effective: effective,
		TimeOff:   timeOff,
		WeekDates: avail.WeekDates,
		Needs:     settings.NeedsFor(dept),
	})

	weekStart := ""
	if len(weekISO) > 0 {
		weekStart = weekISO[0]
	}
	doc := &domain.StaffingDoc{
		WeekStart:   weekStart,
		WeekDates:   avail.WeekDates,
		Cells:       cells,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	// SaveStaffing writes the document row and bumps the store's
	// last_updated stamp; the transaction keeps the two in step.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStoreRepo(tx).SaveStaffing(ctx, storeID, dept, doc)
	})
	if err != nil {
		return nil, err
	}
	return &ComputeResult{
		Doc:            doc,
		EmployeeCount:  avail.Count,
		TimeOffRecords: len(records),
	}, nil
}

func (s *staffingService) Get(ctx context.Context, storeID string, dept domain.Department) (*domain.StaffingDoc, error) {
	return s.stores.GetStaffing(ctx, storeID, dept)
}
