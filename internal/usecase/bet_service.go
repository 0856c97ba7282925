package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/betmetrics/betmetrics-api/internal/domain/bet"
	"github.com/betmetrics/betmetrics-api/internal/platform/id"
	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
)

type CreateBetInput struct {
	UserID    string
	MatchName string
	League    string
	BetType   string
	Odds      float64
	Stake     float64
}

// BetList is a user's bets together with the derived aggregate record.
type BetList struct {
	Bets  []bet.Bet `json:"bets"`
	Stats bet.Stats `json:"stats"`
}

// BetService tracks wagers through their lifecycle. Settlement is a
// one-way transition out of pending.
type BetService struct {
	bets   bet.Repository
	ids    id.Generator
	now    func() time.Time
	logger *logging.Logger
}

func NewBetService(bets bet.Repository, ids id.Generator, now func() time.Time, logger *logging.Logger) *BetService {
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &BetService{
		bets:   bets,
		ids:    ids,
		now:    now,
		logger: logger,
	}
}

func (s *BetService) List(ctx context.Context, userID string) (BetList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.List")
	defer span.End()

	if userID == "" {
		return BetList{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.bets.ListByUser(ctx, userID)
	if err != nil {
		return BetList{}, fmt.Errorf("list bets: %w", err)
	}
	if items == nil {
		items = []bet.Bet{}
	}

	return BetList{
		Bets:  items,
		Stats: bet.ComputeStats(items),
	}, nil
}

func (s *BetService) Create(ctx context.Context, input CreateBetInput) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Create")
	defer span.End()

	if input.UserID == "" {
		return bet.Bet{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.MatchName == "" {
		return bet.Bet{}, fmt.Errorf("%w: match name is required", ErrInvalidInput)
	}
	if input.BetType == "" {
		return bet.Bet{}, fmt.Errorf("%w: bet type is required", ErrInvalidInput)
	}
	if input.Odds <= 1 {
		return bet.Bet{}, fmt.Errorf("%w: odds must be greater than 1", ErrInvalidInput)
	}
	if input.Stake <= 0 {
		return bet.Bet{}, fmt.Errorf("%w: stake must be positive", ErrInvalidInput)
	}

	betID, err := s.ids.NewID()
	if err != nil {
		return bet.Bet{}, fmt.Errorf("generate bet id: %w", err)
	}

	b := bet.Bet{
		ID:              betID,
		UserID:          input.UserID,
		MatchName:       input.MatchName,
		League:          input.League,
		BetType:         input.BetType,
		Odds:            input.Odds,
		Stake:           input.Stake,
		PotentialReturn: bet.PotentialReturn(input.Stake, input.Odds),
		Result:          bet.ResultPending,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.bets.Create(ctx, b); err != nil {
		return bet.Bet{}, fmt.Errorf("create bet: %w", err)
	}

	s.logger.InfoContext(ctx, "bet created",
		"bet_id", b.ID,
		"match", b.MatchName,
		"odds", b.Odds,
		"stake", b.Stake,
	)

	return b, nil
}

func (s *BetService) Settle(ctx context.Context, userID, betID string, result bet.Result) (bet.Bet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Settle")
	defer span.End()

	if userID == "" || betID == "" {
		return bet.Bet{}, fmt.Errorf("%w: user id and bet id are required", ErrInvalidInput)
	}

	b, found, err := s.bets.GetByID(ctx, userID, betID)
	if err != nil {
		return bet.Bet{}, fmt.Errorf("load bet: %w", err)
	}
	if !found {
		return bet.Bet{}, fmt.Errorf("%w: bet %s", ErrNotFound, betID)
	}

	if err := b.Settle(result, s.now()); err != nil {
		return bet.Bet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.bets.Update(ctx, b); err != nil {
		return bet.Bet{}, fmt.Errorf("update bet: %w", err)
	}

	s.logger.InfoContext(ctx, "bet settled",
		"bet_id", b.ID,
		"result", string(b.Result),
		"profit_loss", b.ProfitLoss,
	)

	return b, nil
}

func (s *BetService) Delete(ctx context.Context, userID, betID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.Delete")
	defer span.End()

	if userID == "" || betID == "" {
		return fmt.Errorf("%w: user id and bet id are required", ErrInvalidInput)
	}

	_, found, err := s.bets.GetByID(ctx, userID, betID)
	if err != nil {
		return fmt.Errorf("load bet: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: bet %s", ErrNotFound, betID)
	}

	if err := s.bets.Delete(ctx, userID, betID); err != nil {
		return fmt.Errorf("delete bet: %w", err)
	}

	return nil
}
