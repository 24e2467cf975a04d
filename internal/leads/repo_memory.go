package leads

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[uuid.UUID]Lead
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[uuid.UUID]Lead),
	}
}

// Create stores a lead.
func (r *MemoryRepo) Create(ctx context.Context, lead Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[lead.ID] = lead
	return nil
}

// GetByID returns a lead by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	if err := ctx.Err(); err != nil {
		return Lead{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	lead, ok := r.data[id]
	if !ok {
		return Lead{}, ErrNotFound
	}
	return lead, nil
}
