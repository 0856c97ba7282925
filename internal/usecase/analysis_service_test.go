package usecase

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixture"
	"github.com/betmetrics/betmetrics-api/internal/domain/prediction"
	"github.com/betmetrics/betmetrics-api/internal/infrastructure/repository/memory"
	"github.com/betmetrics/betmetrics-api/internal/platform/cache"
	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
)

func newAnalysisService() *AnalysisService {
	statsRepo := memory.NewTeamStatsRepository(memory.SeedTeamStats())
	return NewAnalysisService(statsRepo, cache.NewStore(time.Minute), logging.NewNop())
}

func TestAnalysisService_Analyze_KnownPairing(t *testing.T) {
	svc := newAnalysisService()

	analysis, err := svc.Analyze(t.Context(), "Flamengo", "Palmeiras")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	p := analysis.Predictions
	total := p.HomeWin.Probability + p.Draw.Probability + p.AwayWin.Probability
	if math.Abs(total-1) > 1e-9 {
		t.Fatalf("1X2 probabilities sum to %v, want 1", total)
	}
	for name, outcome := range map[string]prediction.Outcome{
		"homeWin": p.HomeWin,
		"draw":    p.Draw,
		"awayWin": p.AwayWin,
	} {
		if outcome.Probability < 0 {
			t.Fatalf("%s probability negative: %v", name, outcome.Probability)
		}
	}

	if p.Over25.Probability < 0.25 || p.Over25.Probability > 0.85 {
		t.Fatalf("over25 outside clamp range: %v", p.Over25.Probability)
	}
	if p.BTTS.Probability < 0.30 || p.BTTS.Probability > 0.85 {
		t.Fatalf("btts outside clamp range: %v", p.BTTS.Probability)
	}
	if analysis.HeadToHead.Source != "placeholder" {
		t.Fatalf("head-to-head must be marked placeholder, got %q", analysis.HeadToHead.Source)
	}
}

func TestAnalysisService_Analyze_UnknownTeam(t *testing.T) {
	svc := newAnalysisService()

	_, err := svc.Analyze(t.Context(), "Flamengo", "Nonexistent FC")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = svc.Analyze(t.Context(), "Nonexistent FC", "Flamengo")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalysisService_Analyze_EmptyTeam(t *testing.T) {
	svc := newAnalysisService()

	_, err := svc.Analyze(t.Context(), "", "Flamengo")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalysisService_EvaluateOdds(t *testing.T) {
	svc := newAnalysisService()

	t.Run("positive value", func(t *testing.T) {
		eval, err := svc.EvaluateOdds(0.5, 2.2)
		if err != nil {
			t.Fatalf("evaluate failed: %v", err)
		}
		if math.Abs(eval.ExpectedValue-0.1) > 1e-9 {
			t.Fatalf("unexpected EV: %v", eval.ExpectedValue)
		}
		if eval.Indicator != prediction.EVPositive {
			t.Fatalf("unexpected indicator: %s", eval.Indicator)
		}
		if math.Abs(eval.FairOdds-2.0) > 1e-9 {
			t.Fatalf("unexpected fair odds: %v", eval.FairOdds)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		eval, err := svc.EvaluateOdds(0.5, 1.8)
		if err != nil {
			t.Fatalf("evaluate failed: %v", err)
		}
		if math.Abs(eval.ExpectedValue+0.1) > 1e-9 {
			t.Fatalf("unexpected EV: %v", eval.ExpectedValue)
		}
		if eval.Indicator != prediction.EVNegative {
			t.Fatalf("unexpected indicator: %s", eval.Indicator)
		}
	})

	t.Run("neutral inside margin", func(t *testing.T) {
		eval, err := svc.EvaluateOdds(0.5, 1.98)
		if err != nil {
			t.Fatalf("evaluate failed: %v", err)
		}
		if eval.Indicator != prediction.EVNeutral {
			t.Fatalf("unexpected indicator: %s", eval.Indicator)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		if _, err := svc.EvaluateOdds(0, 2.0); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for zero probability, got %v", err)
		}
		if _, err := svc.EvaluateOdds(0.5, 1.0); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for unit odds, got %v", err)
		}
	})
}

func TestAnalysisService_ScanFixtures(t *testing.T) {
	svc := newAnalysisService()

	fixtures := []fixture.Fixture{
		{
			ID:       1,
			HomeTeam: fixture.Team{Name: "Manchester City"},
			AwayTeam: fixture.Team{Name: "Cruzeiro"},
		},
		{
			ID:       2,
			HomeTeam: fixture.Team{Name: "Unknown United"},
			AwayTeam: fixture.Team{Name: "Flamengo"},
		},
		{
			ID:       3,
			HomeTeam: fixture.Team{Name: "Cruzeiro"},
			AwayTeam: fixture.Team{Name: "Manchester City"},
		},
	}

	// Generous home odds: a strong home favorite prices positive.
	opportunities, err := svc.ScanFixtures(t.Context(), fixtures, ScanInput{
		HomeOdds:   2.5,
		MaxWorkers: 2,
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	for _, op := range opportunities {
		if op.Evaluation.Indicator != prediction.EVPositive {
			t.Fatalf("scan returned non-positive opportunity: %+v", op.Evaluation)
		}
		if op.Fixture.ID == 2 {
			t.Fatalf("fixture with unknown team was not skipped")
		}
	}

	found := false
	for _, op := range opportunities {
		if op.Fixture.ID == 1 {
			found = true
			if op.Market != "homeWin" {
				t.Fatalf("unexpected market for strong favorite: %s", op.Market)
			}
		}
	}
	if !found {
		t.Fatalf("strong home favorite at long odds should be flagged")
	}
}

func TestAnalysisService_ScanFixtures_Empty(t *testing.T) {
	svc := newAnalysisService()

	opportunities, err := svc.ScanFixtures(t.Context(), nil, ScanInput{HomeOdds: 2.0})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(opportunities) != 0 {
		t.Fatalf("expected empty result, got %d", len(opportunities))
	}
}
