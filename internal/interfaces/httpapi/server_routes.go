package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/fixtures/today", RequireAuth(verifier, http.HandlerFunc(handler.GetTodayFixtures)))

	mux.Handle("GET /v1/analysis/ev", RequireAuth(verifier, http.HandlerFunc(handler.EvaluateOdds)))
	mux.Handle("GET /v1/analysis/opportunities", RequireAuth(verifier, http.HandlerFunc(handler.ScanValueOpportunities)))
	mux.Handle("GET /v1/analysis/{homeTeam}/{awayTeam}", RequireAuth(verifier, http.HandlerFunc(handler.GetMatchAnalysis)))

	mux.Handle("GET /v1/bets", RequireAuth(verifier, http.HandlerFunc(handler.ListBets)))
	mux.Handle("POST /v1/bets", RequireAuth(verifier, http.HandlerFunc(handler.CreateBet)))
	mux.Handle("POST /v1/bets/{betID}/settle", RequireAuth(verifier, http.HandlerFunc(handler.SettleBet)))
	mux.Handle("DELETE /v1/bets/{betID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteBet)))

	mux.Handle("GET /v1/deposits", RequireAuth(verifier, http.HandlerFunc(handler.ListDeposits)))
	mux.Handle("POST /v1/deposits", RequireAuth(verifier, http.HandlerFunc(handler.AddDeposit)))
	mux.Handle("DELETE /v1/deposits/{depositID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteDeposit)))
}
