package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/betmetrics/betmetrics-api/internal/domain/bet"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

func (h *Handler) ListBets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBets")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	list, err := h.betService.List(ctx, principal.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list bets failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betListToDTO(list))
}

func (h *Handler) CreateBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBet")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createBetRequest
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

	created, err := h.betService.Create(ctx, usecase.CreateBetInput{
		UserID:    principal.UserID,
		MatchName: req.MatchName,
		League:    req.League,
		BetType:   req.BetType,
		Odds:      req.Odds,
		Stake:     req.Stake,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create bet failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, betToDTO(created))
}

func (h *Handler) SettleBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SettleBet")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	betID := strings.TrimSpace(r.PathValue("betID"))

	var req settleBetRequest
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

	result, err := bet.ParseResult(req.Result)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	settled, err := h.betService.Settle(ctx, principal.UserID, betID, result)
	if err != nil {
		h.logger.WarnContext(ctx, "settle bet failed", "user_id", principal.UserID, "bet_id", betID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betToDTO(settled))
}

func (h *Handler) DeleteBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBet")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	betID := strings.TrimSpace(r.PathValue("betID"))
	if err := h.betService.Delete(ctx, principal.UserID, betID); err != nil {
		h.logger.WarnContext(ctx, "delete bet failed", "user_id", principal.UserID, "bet_id", betID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

type betDTO struct {
	ID              string  `json:"id"`
	MatchName       string  `json:"matchName"`
	League          string  `json:"league,omitempty"`
	BetType         string  `json:"betType"`
	Odds            float64 `json:"odds"`
	Stake           float64 `json:"stake"`
	PotentialReturn float64 `json:"potentialReturn"`
	Result          string  `json:"result"`
	ProfitLoss      float64 `json:"profitLoss"`
	CreatedAt       string  `json:"createdAt"`
	SettledAt       string  `json:"settledAt,omitempty"`
}

type betListDTO struct {
	Bets  []betDTO  `json:"bets"`
	Stats bet.Stats `json:"stats"`
}

func betToDTO(b bet.Bet) betDTO {
	dto := betDTO{
		ID:              b.ID,
		MatchName:       b.MatchName,
		League:          b.League,
		BetType:         b.BetType,
		Odds:            b.Odds,
		Stake:           b.Stake,
		PotentialReturn: b.PotentialReturn,
		Result:          string(b.Result),
		ProfitLoss:      b.ProfitLoss,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.SettledAt != nil {
		dto.SettledAt = b.SettledAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func betListToDTO(list usecase.BetList) betListDTO {
	bets := make([]betDTO, 0, len(list.Bets))
	for _, b := range list.Bets {
		bets = append(bets, betToDTO(b))
	}

	return betListDTO{
		Bets:  bets,
		Stats: list.Stats,
	}
}
