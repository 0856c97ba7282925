package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/betmetrics/betmetrics-api/internal/domain/leagues"
	"github.com/betmetrics/betmetrics-api/internal/domain/user"
	"github.com/betmetrics/betmetrics-api/internal/infrastructure/repository/memory"
	"github.com/betmetrics/betmetrics-api/internal/platform/cache"
	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

type stubVerifier struct{}

func (stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token != "valid-token" {
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: "user-1", Email: "user@example.com"}, nil
}

type stubFixtureProvider struct {
	rows []usecase.ExternalFixture
}

func (p *stubFixtureProvider) EventsByDate(_ context.Context, _ string) ([]usecase.ExternalFixture, error) {
	return p.rows, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	provider := &stubFixtureProvider{rows: []usecase.ExternalFixture{
		{
			ID: 9001, Date: "2026-03-14", Timestamp: 1773500400,
			LeagueID: 152, LeagueName: "Premier League", Country: "England",
			HomeTeamName: "Liverpool", AwayTeamName: "Manchester City",
		},
	}}

	fixtureService := usecase.NewFixtureService(
		memory.NewFixtureSnapshotRepository(),
		provider,
		leagues.Default(),
		usecase.FixtureServiceConfig{RetentionDays: 30},
		logging.NewNop(),
	)
	analysisService := usecase.NewAnalysisService(
		memory.NewTeamStatsRepository(memory.SeedTeamStats()),
		cache.NewStore(time.Minute),
		logging.NewNop(),
	)
	betRepo := memory.NewBetRepository()
	betService := usecase.NewBetService(betRepo, nil, nil, logging.NewNop())
	bankrollService := usecase.NewBankrollService(memory.NewDepositRepository(), betRepo, nil, nil, logging.NewNop())

	handler := NewHandler(fixtureService, analysisService, betService, bankrollService, logging.NewNop())
	return NewRouter(handler, stubVerifier{}, logging.NewNop(), []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal envelope: %v", err)
		}
	}

	return rec, envelope
}

func TestRouter_HealthzNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected healthz payload: %v", envelope)
	}
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/v1/fixtures/today", "/v1/bets", "/v1/deposits"} {
		rec, _ := doRequest(t, router, http.MethodGet, path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
	}

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/fixtures/today", "wrong-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", rec.Code)
	}
}

func TestRouter_TodayFixtures(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/fixtures/today", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	data, _ := envelope["data"].(map[string]any)
	fixtures, _ := data["fixtures"].([]any)
	if len(fixtures) != 1 {
		t.Fatalf("unexpected fixture count: %d", len(fixtures))
	}
	if data["fromCache"] != false {
		t.Fatalf("first call should not be cached")
	}

	_, envelope = doRequest(t, router, http.MethodGet, "/v1/fixtures/today", "valid-token", "")
	data, _ = envelope["data"].(map[string]any)
	if data["fromCache"] != true {
		t.Fatalf("second call should be cached")
	}
	if calls, _ := data["apiCallsToday"].(float64); calls != 1 {
		t.Fatalf("unexpected apiCallsToday: %v", data["apiCallsToday"])
	}
}

func TestRouter_MatchAnalysis(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/analysis/Flamengo/Palmeiras", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	data, _ := envelope["data"].(map[string]any)
	predictions, _ := data["predictions"].(map[string]any)
	if predictions == nil {
		t.Fatalf("missing predictions in payload: %v", envelope)
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/analysis/Flamengo/Nowhere%20FC", "valid-token", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown team should 404, got %d", rec.Code)
	}
}

func TestRouter_EvaluateOdds(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/analysis/ev?probability=0.5&odds=2.2", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}

	data, _ := envelope["data"].(map[string]any)
	if indicator, _ := data["indicator"].(string); indicator != "positive" {
		t.Fatalf("unexpected indicator: %v", data["indicator"])
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/analysis/ev?probability=abc&odds=2.2", "valid-token", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad probability should 400, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/analysis/ev?odds=2.2", "valid-token", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing probability should 400, got %d", rec.Code)
	}
}

func TestRouter_BetLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/bets", "valid-token",
		`{"match_name":"Flamengo x Palmeiras","league":"Brasileirão Série A","bet_type":"homeWin","odds":2.1,"stake":50}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	betID, _ := data["id"].(string)
	if betID == "" {
		t.Fatalf("bet id missing in response: %v", envelope)
	}

	rec, envelope = doRequest(t, router, http.MethodPost, "/v1/bets/"+betID+"/settle", "valid-token", `{"result":"win"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("settle failed: %d body=%s", rec.Code, rec.Body.String())
	}
	data, _ = envelope["data"].(map[string]any)
	if profit, _ := data["profitLoss"].(float64); profit != 55 {
		t.Fatalf("unexpected profit: %v", data["profitLoss"])
	}

	rec, envelope = doRequest(t, router, http.MethodGet, "/v1/bets", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}
	data, _ = envelope["data"].(map[string]any)
	stats, _ := data["stats"].(map[string]any)
	if won, _ := stats["wonBets"].(float64); won != 1 {
		t.Fatalf("unexpected stats: %v", stats)
	}

	rec, _ = doRequest(t, router, http.MethodDelete, "/v1/bets/"+betID, "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", rec.Code)
	}
}

func TestRouter_CreateBet_Invalid(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/v1/bets", "valid-token",
		`{"match_name":"A x B","bet_type":"homeWin","odds":1.0,"stake":50}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unit odds should 400, got %d", rec.Code)
	}

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/bets", "valid-token", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body should 400, got %d", rec.Code)
	}
}

func TestRouter_DepositLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/deposits", "valid-token", `{"amount":500}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d body=%s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if desc, _ := data["description"].(string); desc != "Aporte" {
		t.Fatalf("description should default: %v", data["description"])
	}
	depositID, _ := data["id"].(string)

	rec, envelope = doRequest(t, router, http.MethodGet, "/v1/deposits", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rec.Code)
	}
	data, _ = envelope["data"].(map[string]any)
	if balance, _ := data["balance"].(float64); balance != 500 {
		t.Fatalf("unexpected balance: %v", data["balance"])
	}

	rec, _ = doRequest(t, router, http.MethodDelete, "/v1/deposits/"+depositID, "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", rec.Code)
	}
}
