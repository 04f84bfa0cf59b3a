package pass

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryRepository builds an in-memory issuance record store for
// development and testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].OwnerEmail == email {
			return r.records[i], nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *memoryRepository) ListByStatus(_ context.Context, status string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Record
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Status == status {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}
