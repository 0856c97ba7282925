package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

type Handler struct {
	fixtureService  *usecase.FixtureService
	analysisService *usecase.AnalysisService
	betService      *usecase.BetService
	bankrollService *usecase.BankrollService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	fixtureService *usecase.FixtureService,
	analysisService *usecase.AnalysisService,
	betService *usecase.BetService,
	bankrollService *usecase.BankrollService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		fixtureService:  fixtureService,
		analysisService: analysisService,
		betService:      betService,
		bankrollService: bankrollService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type createBetRequest struct {
	MatchName string  `json:"match_name" validate:"required,max=200"`
	League    string  `json:"league" validate:"omitempty,max=120"`
	BetType   string  `json:"bet_type" validate:"required,max=60"`
	Odds      float64 `json:"odds" validate:"required,gt=1"`
	Stake     float64 `json:"stake" validate:"required,gt=0"`
}

type settleBetRequest struct {
	Result string `json:"result" validate:"required,oneof=win loss void"`
}

type addDepositRequest struct {
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description" validate:"omitempty,max=200"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
