package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/betmetrics/betmetrics-api/internal/domain/deposit"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

func (h *Handler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDeposits")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	summary, err := h.bankrollService.Summary(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "bankroll summary failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bankrollSummaryToDTO(summary))
}

func (h *Handler) AddDeposit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddDeposit")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req addDepositRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.bankrollService.Add(ctx, usecase.AddDepositInput{
		UserID:      principal.UserID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add deposit failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, depositToDTO(created))
}

func (h *Handler) DeleteDeposit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDeposit")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	depositID := strings.TrimSpace(r.PathValue("depositID"))
	if depositID == "" {
		writeError(ctx, w, fmt.Errorf("%w: deposit id is required", usecase.ErrInvalidInput))
		return
	}

	if err := h.bankrollService.Delete(ctx, principal.UserID, depositID); err != nil {
		h.logger.WarnContext(ctx, "delete deposit failed", "user_id", principal.UserID, "deposit_id", depositID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

type depositDTO struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

type bankrollSummaryDTO struct {
	Deposits     []depositDTO `json:"deposits"`
	TotalDeposit float64      `json:"totalDeposit"`
	BetProfit    float64      `json:"betProfit"`
	Balance      float64      `json:"balance"`
}

func depositToDTO(d deposit.Deposit) depositDTO {
	return depositDTO{
		ID:          d.ID,
		Amount:      d.Amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func bankrollSummaryToDTO(summary usecase.BankrollSummary) bankrollSummaryDTO {
	deposits := make([]depositDTO, 0, len(summary.Deposits))
	for _, d := range summary.Deposits {
		deposits = append(deposits, depositToDTO(d))
	}

	return bankrollSummaryDTO{
		Deposits:     deposits,
		TotalDeposit: summary.TotalDeposit,
		BetProfit:    summary.BetProfit,
		Balance:      summary.Balance,
	}
}
