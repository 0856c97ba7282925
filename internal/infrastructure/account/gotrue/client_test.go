package gotrue

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
	"github.com/betmetrics/betmetrics-api/internal/usecase"
)

func TestClient_VerifyAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Fatalf("missing apikey header")
		}

		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"user-123","email":"user@example.com"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "anon-key", logging.NewNop())

	principal, err := client.VerifyAccessToken(t.Context(), "good-token")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if principal.UserID != "user-123" || principal.Email != "user@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	if _, err := client.VerifyAccessToken(t.Context(), "bad-token"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if _, err := client.VerifyAccessToken(t.Context(), "  "); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for blank token, got %v", err)
	}
}

func TestClient_VerifyAccessToken_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "", logging.NewNop())

	_, err := client.VerifyAccessToken(t.Context(), "token")
	if err == nil {
		t.Fatalf("expected error on upstream failure")
	}
	if errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("upstream failure must not read as unauthorized: %v", err)
	}
}
