package service

import (
	"context"
	"fmt"

	"github.com/shiftboard-app/shiftboard/internal/calendar"
	"github.com/shiftboard-app/shiftboard/internal/db"
	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/parse"
	"github.com/shiftboard-app/shiftboard/internal/repository"
)

type ingestService struct {
	stores repository.StoreRepo
	uow    db.UnitOfWork
}

func NewIngestService(stores repository.StoreRepo, uow db.UnitOfWork) IngestService {
	return &ingestService{stores: stores, uow: uow}
}

func (s *ingestService) ImportTimeOff(ctx context.Context, storeID, managementKey string, dept domain.Department, rawText string) (*ImportResult, error) {
	if _, err := requireKey(ctx, s.stores, storeID, managementKey); err != nil {
		return nil, err
	}

	records := parse.ParseRaw(rawText)
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found in paste (missing \"Date and Time\" header row?)")
	}

	// The calendar is read, rebuilt, and written in one transaction so
	// two concurrent imports cannot interleave their read-modify-write
	// and lose a department's entries.
	var result *ImportResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStores := repository.NewSQLiteStoreRepo(tx)

		existing, err := txStores.GetCalendar(ctx, storeID)
		if err != nil {
			return err
		}

		// Rebuild the document wholesale for the pasted department
		// while carrying the other department's stored entries
		// forward, so a one-department paste never wipes the other's
		// data.
		acc := calendar.NewAccumulator()
		acc.Seed(existing, dept.Other())
		stats := acc.Fold(records, dept)
		doc := acc.BuildOutput()

		if err := txStores.SaveCalendar(ctx, storeID, doc); err != nil {
			return err
		}
		result = &ImportResult{Records: len(records), Stats: stats, Doc: doc}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ingestService) GetCalendar(ctx context.Context, storeID string) (domain.CalendarDoc, error) {
	return s.stores.GetCalendar(ctx, storeID)
}
