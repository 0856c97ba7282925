package fixturecache

import "context"

// Repository persists per-day fixture snapshots. Upsert must be
// idempotent on CacheDate: concurrent first-of-the-day writers may race
// and the last equivalent write wins.
type Repository interface {
	GetByDate(ctx context.Context, cacheDate string) (Snapshot, bool, error)
	Upsert(ctx context.Context, snapshot Snapshot) error
	DeleteBefore(ctx context.Context, cacheDate string) (int64, error)
}
