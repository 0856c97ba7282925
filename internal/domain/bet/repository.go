package bet

import "context"

// Repository persists bets. List returns a user's bets newest first.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Bet, error)
	GetByID(ctx context.Context, userID, betID string) (Bet, bool, error)
	Create(ctx context.Context, b Bet) error
	Update(ctx context.Context, b Bet) error
	Delete(ctx context.Context, userID, betID string) error
}
