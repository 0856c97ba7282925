package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

func (h *Handler) GetMatchAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchAnalysis")
	defer span.End()

	if _, ok := principalFromContext(ctx); !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	homeTeam := strings.TrimSpace(r.PathValue("homeTeam"))
	awayTeam := strings.TrimSpace(r.PathValue("awayTeam"))

	analysis, err := h.analysisService.Analyze(ctx, homeTeam, awayTeam)
	if err != nil {
		h.logger.WarnContext(ctx, "match analysis failed", "home", homeTeam, "away", awayTeam, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysis)
}

func (h *Handler) EvaluateOdds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EvaluateOdds")
	defer span.End()

	if _, ok := principalFromContext(ctx); !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	probability, err := parseFloatQuery(r, "probability")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	odds, err := parseFloatQuery(r, "odds")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	evaluation, err := h.analysisService.EvaluateOdds(probability, odds)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evaluation)
}

func (h *Handler) ScanValueOpportunities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScanValueOpportunities")
	defer span.End()

	if _, ok := principalFromContext(ctx); !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	input := usecase.ScanInput{}
	var err error
	if input.HomeOdds, err = parseOptionalFloatQuery(r, "home_odds"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.DrawOdds, err = parseOptionalFloatQuery(r, "draw_odds"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.AwayOdds, err = parseOptionalFloatQuery(r, "away_odds"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.HomeOdds == 0 && input.DrawOdds == 0 && input.AwayOdds == 0 {
		writeError(ctx, w, fmt.Errorf("%w: at least one of home_odds, draw_odds, away_odds is required", usecase.ErrInvalidInput))
		return
	}

	feed := h.fixtureService.TodayFixtures(ctx)

	opportunities, err := h.analysisService.ScanFixtures(ctx, feed.Fixtures, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "value scan failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, opportunities)
}

func parseFloatQuery(r *http.Request, name string) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: query parameter %q is required", usecase.ErrInvalidInput, name)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %q must be a number", usecase.ErrInvalidInput, name)
	}

	return value, nil
}

func parseOptionalFloatQuery(r *http.Request, name string) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %q must be a number", usecase.ErrInvalidInput, name)
	}

	return value, nil
}
