package leads

import (
	"context"

	"github.com/google/uuid"
)

// Repo defines persistence operations for leads.
type Repo interface {
	Create(ctx context.Context, lead Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
}
