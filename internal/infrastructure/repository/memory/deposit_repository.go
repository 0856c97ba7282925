package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/betmetrics/betmetrics-api/internal/domain/deposit"
)

type DepositRepository struct {
	mu    sync.RWMutex
	items map[string]deposit.Deposit
}

func NewDepositRepository() *DepositRepository {
	return &DepositRepository{
		items: make(map[string]deposit.Deposit),
	}
}

func (r *DepositRepository) ListByUser(_ context.Context, userID string) ([]deposit.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]deposit.Deposit, 0)
	for _, d := range r.items {
		if d.UserID == userID {
			out = append(out, d)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *DepositRepository) Create(_ context.Context, d deposit.Deposit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[d.ID] = d
	return nil
}

func (r *DepositRepository) Delete(_ context.Context, userID, depositID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.items[depositID]
	if ok && d.UserID == userID {
		delete(r.items, depositID)
	}

	return nil
}
