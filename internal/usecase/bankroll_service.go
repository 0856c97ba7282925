package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/betmetrics/betmetrics-api/internal/domain/bet"
	"github.com/betmetrics/betmetrics-api/internal/domain/deposit"
	"github.com/betmetrics/betmetrics-api/internal/platform/id"
	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
)

type AddDepositInput struct {
	UserID      string
	Amount      float64
	Description string
}

// BankrollSummary is the deposit history plus the derived balance.
// Balance folds settled bet results into the deposit total.
type BankrollSummary struct {
	Deposits     []deposit.Deposit `json:"deposits"`
	TotalDeposit float64           `json:"totalDeposit"`
	BetProfit    float64           `json:"betProfit"`
	Balance      float64           `json:"balance"`
}

// BankrollService manages a user's deposit ledger. Withdrawals are
// negative deposits.
type BankrollService struct {
	deposits deposit.Repository
	bets     bet.Repository
	ids      id.Generator
	now      func() time.Time
	logger   *logging.Logger
}

func NewBankrollService(deposits deposit.Repository, bets bet.Repository, ids id.Generator, now func() time.Time, logger *logging.Logger) *BankrollService {
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &BankrollService{
		deposits: deposits,
		bets:     bets,
		ids:      ids,
		now:      now,
		logger:   logger,
	}
}

func (s *BankrollService) Summary(ctx context.Context, userID string) (BankrollSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BankrollService.Summary")
	defer span.End()

	if userID == "" {
		return BankrollSummary{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	deposits, err := s.deposits.ListByUser(ctx, userID)
	if err != nil {
		return BankrollSummary{}, fmt.Errorf("list deposits: %w", err)
	}
	if deposits == nil {
		deposits = []deposit.Deposit{}
	}

	bets, err := s.bets.ListByUser(ctx, userID)
	if err != nil {
		return BankrollSummary{}, fmt.Errorf("list bets: %w", err)
	}

	var betProfit float64
	for _, b := range bets {
		betProfit += b.ProfitLoss
	}

	totalDeposit := deposit.Total(deposits)

	return BankrollSummary{
		Deposits:     deposits,
		TotalDeposit: totalDeposit,
		BetProfit:    betProfit,
		Balance:      totalDeposit + betProfit,
	}, nil
}

func (s *BankrollService) Add(ctx context.Context, input AddDepositInput) (deposit.Deposit, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BankrollService.Add")
	defer span.End()

	if input.UserID == "" {
		return deposit.Deposit{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Amount == 0 {
		return deposit.Deposit{}, fmt.Errorf("%w: amount must not be zero", ErrInvalidInput)
	}

	description := input.Description
	if description == "" {
		description = deposit.DefaultDescription
	}

	depositID, err := s.ids.NewID()
	if err != nil {
		return deposit.Deposit{}, fmt.Errorf("generate deposit id: %w", err)
	}

	d := deposit.Deposit{
		ID:          depositID,
		UserID:      input.UserID,
		Amount:      input.Amount,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.deposits.Create(ctx, d); err != nil {
		return deposit.Deposit{}, fmt.Errorf("create deposit: %w", err)
	}

	s.logger.InfoContext(ctx, "deposit recorded",
		"deposit_id", d.ID,
		"amount", d.Amount,
	)

	return d, nil
}

func (s *BankrollService) Delete(ctx context.Context, userID, depositID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BankrollService.Delete")
	defer span.End()

	if userID == "" || depositID == "" {
		return fmt.Errorf("%w: user id and deposit id are required", ErrInvalidInput)
	}

	if err := s.deposits.Delete(ctx, userID, depositID); err != nil {
		return fmt.Errorf("delete deposit: %w", err)
	}

	return nil
}
