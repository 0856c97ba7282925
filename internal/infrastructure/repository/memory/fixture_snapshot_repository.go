package memory

import (
	"context"
	"sync"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixturecache"
)

type FixtureSnapshotRepository struct {
	mu    sync.RWMutex
	items map[string]fixturecache.Snapshot
}

func NewFixtureSnapshotRepository() *FixtureSnapshotRepository {
	return &FixtureSnapshotRepository{
		items: make(map[string]fixturecache.Snapshot),
	}
}

func (r *FixtureSnapshotRepository) GetByDate(_ context.Context, cacheDate string) (fixturecache.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.items[cacheDate]
	if !ok {
		return fixturecache.Snapshot{}, false, nil
	}

	return snapshot, true, nil
}

func (r *FixtureSnapshotRepository) Upsert(_ context.Context, snapshot fixturecache.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[snapshot.CacheDate] = snapshot
	return nil
}

func (r *FixtureSnapshotRepository) DeleteBefore(_ context.Context, cacheDate string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for date := range r.items {
		if date < cacheDate {
			delete(r.items, date)
			deleted++
		}
	}

	return deleted, nil
}
