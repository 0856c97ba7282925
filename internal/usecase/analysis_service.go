package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/betmetrics/betmetrics-api/internal/domain/fixture"
	"github.com/betmetrics/betmetrics-api/internal/domain/prediction"
	"github.com/betmetrics/betmetrics-api/internal/domain/teamstats"
	"github.com/betmetrics/betmetrics-api/internal/platform/cache"
	"github.com/betmetrics/betmetrics-api/internal/platform/logging"
)

const defaultScanWorkers = 4

// EVEvaluation is one market priced against the model.
type EVEvaluation struct {
	Probability        float64                `json:"probability"`
	Odds               float64                `json:"odds"`
	ExpectedValue      float64                `json:"expectedValue"`
	FairOdds           float64                `json:"fairOdds"`
	ImpliedProbability float64                `json:"impliedProbability"`
	Indicator          prediction.EVIndicator `json:"indicator"`
}

// ValueOpportunity is a fixture whose strongest 1X2 market prices
// positive against the supplied odds.
type ValueOpportunity struct {
	Fixture    fixture.Fixture          `json:"fixture"`
	Market     string                   `json:"market"`
	Analysis   prediction.MatchAnalysis `json:"analysis"`
	Evaluation EVEvaluation             `json:"evaluation"`
}

// ScanInput carries per-market odds for the value scan. Zero odds for a
// market skips that market.
type ScanInput struct {
	HomeOdds   float64
	DrawOdds   float64
	AwayOdds   float64
	MaxWorkers int
}

// AnalysisService computes match predictions from stored team stats.
// Analyses are memoized per pairing; the underlying model is pure so a
// cached entry never goes stale within its TTL window.
type AnalysisService struct {
	stats  teamstats.Repository
	memo   *cache.Store
	logger *logging.Logger
}

func NewAnalysisService(stats teamstats.Repository, memo *cache.Store, logger *logging.Logger) *AnalysisService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AnalysisService{
		stats:  stats,
		memo:   memo,
		logger: logger,
	}
}

// Analyze computes the prediction set for a pairing looked up by exact
// team name. Unknown teams yield ErrNotFound.
func (s *AnalysisService) Analyze(ctx context.Context, homeTeam, awayTeam string) (prediction.MatchAnalysis, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.Analyze")
	defer span.End()

	if homeTeam == "" || awayTeam == "" {
		return prediction.MatchAnalysis{}, fmt.Errorf("%w: home and away team are required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		return s.analyze(ctx, homeTeam, awayTeam)
	}

	if s.memo == nil {
		v, err := load(ctx)
		if err != nil {
			return prediction.MatchAnalysis{}, err
		}
		return v.(prediction.MatchAnalysis), nil
	}

	v, err := s.memo.GetOrLoad(ctx, "analysis:"+homeTeam+"|"+awayTeam, load)
	if err != nil {
		return prediction.MatchAnalysis{}, err
	}

	analysis, ok := v.(prediction.MatchAnalysis)
	if !ok {
		return prediction.MatchAnalysis{}, fmt.Errorf("unexpected cached analysis type %T", v)
	}
	return analysis, nil
}

func (s *AnalysisService) analyze(ctx context.Context, homeTeam, awayTeam string) (prediction.MatchAnalysis, error) {
	home, found, err := s.stats.GetByTeam(ctx, homeTeam)
	if err != nil {
		return prediction.MatchAnalysis{}, fmt.Errorf("load home team stats: %w", err)
	}
	if !found {
		return prediction.MatchAnalysis{}, fmt.Errorf("%w: no stats for team %q", ErrNotFound, homeTeam)
	}

	away, found, err := s.stats.GetByTeam(ctx, awayTeam)
	if err != nil {
		return prediction.MatchAnalysis{}, fmt.Errorf("load away team stats: %w", err)
	}
	if !found {
		return prediction.MatchAnalysis{}, fmt.Errorf("%w: no stats for team %q", ErrNotFound, awayTeam)
	}

	return prediction.Analyze(home, away), nil
}

// EvaluateOdds prices one market probability against decimal odds.
func (s *AnalysisService) EvaluateOdds(probability, odds float64) (EVEvaluation, error) {
	if probability <= 0 || probability > 1 {
		return EVEvaluation{}, fmt.Errorf("%w: probability must be in (0, 1]", ErrInvalidInput)
	}
	if odds <= 1 {
		return EVEvaluation{}, fmt.Errorf("%w: odds must be greater than 1", ErrInvalidInput)
	}

	return EVEvaluation{
		Probability:        probability,
		Odds:               odds,
		ExpectedValue:      prediction.ExpectedValue(probability, odds),
		FairOdds:           prediction.FairOdds(probability),
		ImpliedProbability: prediction.ImpliedProbability(odds),
		Indicator:          prediction.IndicatorFor(probability, odds),
	}, nil
}

// ScanFixtures analyzes a day's fixtures concurrently and returns the
// ones whose best 1X2 market prices positive at the given odds.
// Fixtures with unknown teams are skipped, not reported as errors.
func (s *AnalysisService) ScanFixtures(ctx context.Context, fixtures []fixture.Fixture, input ScanInput) ([]ValueOpportunity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalysisService.ScanFixtures")
	defer span.End()

	if len(fixtures) == 0 {
		return []ValueOpportunity{}, nil
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = defaultScanWorkers
	}
	if workerCount > len(fixtures) {
		workerCount = len(fixtures)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ValueOpportunity, len(fixtures))

	var skippedCount atomic.Int32

	var workers sync.WaitGroup
	for _, f := range fixtures {
		f := f
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			analysis, analyzeErr := s.Analyze(ctx, f.HomeTeam.Name, f.AwayTeam.Name)
			if analyzeErr != nil {
				skippedCount.Add(1)
				return
			}

			market, evaluation, ok := bestMarket(analysis, input)
			if !ok || evaluation.Indicator != prediction.EVPositive {
				return
			}

			results <- ValueOpportunity{
				Fixture:    f,
				Market:     market,
				Analysis:   analysis,
				Evaluation: evaluation,
			}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit fixture to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]ValueOpportunity, 0, len(fixtures))
	for opportunity := range results {
		out = append(out, opportunity)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Evaluation.ExpectedValue != out[j].Evaluation.ExpectedValue {
			return out[i].Evaluation.ExpectedValue > out[j].Evaluation.ExpectedValue
		}
		return out[i].Fixture.ID < out[j].Fixture.ID
	})

	if skipped := skippedCount.Load(); skipped > 0 {
		s.logger.DebugContext(ctx, "fixtures skipped in value scan", "skipped", skipped, "scanned", len(fixtures))
	}

	return out, nil
}

// bestMarket picks the highest-EV 1X2 market among those with odds set.
func bestMarket(analysis prediction.MatchAnalysis, input ScanInput) (string, EVEvaluation, bool) {
	type candidate struct {
		market      string
		probability float64
		odds        float64
	}

	candidates := []candidate{
		{"homeWin", analysis.Predictions.HomeWin.Probability, input.HomeOdds},
		{"draw", analysis.Predictions.Draw.Probability, input.DrawOdds},
		{"awayWin", analysis.Predictions.AwayWin.Probability, input.AwayOdds},
	}

	best := ""
	var bestEval EVEvaluation
	found := false
	for _, c := range candidates {
		if c.odds <= 1 {
			continue
		}

		eval := EVEvaluation{
			Probability:        c.probability,
			Odds:               c.odds,
			ExpectedValue:      prediction.ExpectedValue(c.probability, c.odds),
			FairOdds:           prediction.FairOdds(c.probability),
			ImpliedProbability: prediction.ImpliedProbability(c.odds),
			Indicator:          prediction.IndicatorFor(c.probability, c.odds),
		}
		if !found || eval.ExpectedValue > bestEval.ExpectedValue {
			best = c.market
			bestEval = eval
			found = true
		}
	}

	return best, bestEval, found
}
