package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftboard-app/shiftboard/internal/domain"
	"github.com/shiftboard-app/shiftboard/internal/repository"
)

type storeService struct {
	stores repository.StoreRepo
}

func NewStoreService(stores repository.StoreRepo) StoreService {
	return &storeService{stores: stores}
}

// requireKey checks the caller's management key against the stored
// one. Every write goes through here; reads need only the store ID.
func requireKey(ctx context.Context, stores repository.StoreRepo, storeID, managementKey string) (*domain.Store, error) {
	s, err := stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if managementKey == "" || managementKey != s.ManagementKey {
		return nil, fmt.Errorf("invalid management key for store %q", storeID)
	}
	return s, nil
}

func (s *storeService) Create(ctx context.Context, name string) (*domain.Store, error) {
	if name == "" {
		return nil, fmt.Errorf("store name is required")
	}
	now := time.Now().UTC()
	store := &domain.Store{
		ID:            GenerateStoreID(name),
		Name:          name,
		ManagementKey: GenerateManagementKey(),
		CreatedAt:     now,
		LastUpdated:   now,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *storeService) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	return s.stores.GetByID(ctx, id)
}

func (s *storeService) List(ctx context.Context) ([]*domain.Store, error) {
	return s.stores.List(ctx)
}

func (s *storeService) Delete(ctx context.Context, id, managementKey string) error {
	if _, err := requireKey(ctx, s.stores, id, managementKey); err != nil {
		return err
	}
	return s.stores.Delete(ctx, id)
}

func (s *storeService) GetSettings(ctx context.Context, storeID string) (domain.Settings, error) {
	return s.stores.GetSettings(ctx, storeID)
}

func (s *storeService) SaveSettings(ctx context.Context, storeID, managementKey string, settings domain.Settings) error {
	if _, err := requireKey(ctx, s.stores, storeID, managementKey); err != nil {
		return err
	}
	if err := validateSettings(settings); err != nil {
		return err
	}
	return s.stores.SaveSettings(ctx, storeID, settings)
}

func (s *storeService) GetTiers(ctx context.Context, storeID string) (domain.EmployeeTiers, error) {
	return s.stores.GetTiers(ctx, storeID)
}

func (s *storeService) SaveTiers(ctx context.Context, storeID, managementKey string, tiers domain.EmployeeTiers) error {
	if _, err := requireKey(ctx, s.stores, storeID, managementKey); err != nil {
		return err
	}
	for name, tier := range tiers {
		if !domain.ValidTiers[string(tier)] {
			return fmt.Errorf("employee %q: invalid tier %q (expected full, part, or limited)", name, tier)
		}
	}
	return s.stores.SaveTiers(ctx, storeID, tiers)
}

func validateSettings(settings domain.Settings) error {
	rates := settings.TierRates
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"full", rates.Full},
		{"part", rates.Part},
		{"limited", rates.Limited},
	} {
		if rate.value <= 0 || rate.value > 1 {
			return fmt.Errorf("tier rate %q must be in (0,1], got %v", rate.name, rate.value)
		}
	}
	for dept, needs := range settings.StaffingNeeds {
		if !domain.ValidDepartments[string(dept)] {
			return fmt.Errorf("staffing needs: unknown department %q", dept)
		}
		for label, need := range needs {
			if need < 0 {
				return fmt.Errorf("staffing need for %s %s must not be negative, got %d", dept, label, need)
			}
		}
	}
	return nil
}
