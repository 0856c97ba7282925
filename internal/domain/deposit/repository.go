package deposit

import "context"

// Repository persists bankroll movements, newest first on list.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Deposit, error)
	Create(ctx context.Context, d Deposit) error
	Delete(ctx context.Context, userID, depositID string) error
}
