package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/betmetrics/betmetrics-api/internal/domain/bet"
)

type BetRepository struct {
	mu    sync.RWMutex
	items map[string]bet.Bet
}

func NewBetRepository() *BetRepository {
	return &BetRepository{
		items: make(map[string]bet.Bet),
	}
}

func (r *BetRepository) ListByUser(_ context.Context, userID string) ([]bet.Bet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]bet.Bet, 0)
	for _, b := range r.items {
		if b.UserID == userID {
			out = append(out, b)
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

func (r *BetRepository) GetByID(_ context.Context, userID, betID string) (bet.Bet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[betID]
	if !ok || b.UserID != userID {
		return bet.Bet{}, false, nil
	}

	return b, true, nil
}

func (r *BetRepository) Create(_ context.Context, b bet.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[b.ID] = b
	return nil
}

func (r *BetRepository) Update(_ context.Context, b bet.Bet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[b.ID] = b
	return nil
}

func (r *BetRepository) Delete(_ context.Context, userID, betID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.items[betID]
	if ok && b.UserID == userID {
		delete(r.items, betID)
	}

	return nil
}
