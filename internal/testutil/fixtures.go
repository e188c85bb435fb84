package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shiftboard-app/shiftboard/internal/domain"
)

var testStoreCounter atomic.Int64

// StoreOption mutates a test store fixture.
type StoreOption func(*domain.Store)

func WithManagementKey(key string) StoreOption {
	return func(s *domain.Store) {
		s.ManagementKey = key
	}
}

// NewTestStore builds a store fixture with a unique ID.
func NewTestStore(name string, opts ...StoreOption) *domain.Store {
	now := time.Now().UTC()
	s := &domain.Store{
		ID:            fmt.Sprintf("%s-%04d", name, testStoreCounter.Add(1)),
		Name:          name,
		ManagementKey: "test-key",
		CreatedAt:     now,
		LastUpdated:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
