package httpapi

import (
	"fmt"
	"net/http"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixture"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

type fixtureFeedDTO struct {
	Fixtures         []fixture.Fixture            `json:"fixtures"`
	FixturesByLeague map[string][]fixture.Fixture `json:"fixturesByLeague"`
	Date             string                       `json:"date"`
	FromCache        bool                         `json:"fromCache"`
	APICallsToday    int                          `json:"apiCallsToday"`
	Message          string                       `json:"message,omitempty"`
	Error            string                       `json:"error,omitempty"`
}

func (h *Handler) GetTodayFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTodayFixtures")
	defer span.End()

	if _, ok := principalFromContext(ctx); !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	feed := h.fixtureService.TodayFixtures(ctx)

	writeSuccess(ctx, w, http.StatusOK, fixtureFeedDTO{
		Fixtures:         feed.Fixtures,
		FixturesByLeague: feed.FixturesByLeague,
		Date:             feed.Date,
		FromCache:        feed.FromCache,
		APICallsToday:    feed.APICallsToday,
		Message:          feed.Message,
		Error:            feed.ErrorDetail,
	})
}
