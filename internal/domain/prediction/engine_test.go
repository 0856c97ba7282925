package prediction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betmetrics/betmetrics-api/internal/domain/teamstats"
)

func statLine(form int, scored, conceded float64, btts, fts int) teamstats.TeamStats {
	return teamstats.TeamStats{
		AvgGoalsScored:   scored,
		AvgGoalsConceded: conceded,
		BothTeamsScored:  btts,
		FailedToScore:    fts,
		Form:             form,
	}
}

func TestAnalyze_ProbabilitiesSumToOne(t *testing.T) {
	pairs := []struct {
		name string
		home teamstats.TeamStats
		away teamstats.TeamStats
	}{
		{name: "even sides", home: statLine(60, 1.5, 1.2, 5, 3), away: statLine(60, 1.5, 1.2, 5, 3)},
		{name: "strong home", home: statLine(88, 2.8, 0.8, 6, 0), away: statLine(48, 1.3, 1.4, 2, 5)},
		{name: "strong away", home: statLine(48, 1.3, 1.4, 2, 5), away: statLine(88, 2.8, 0.8, 6, 0)},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.home, tt.away).Predictions
			sum := got.HomeWin.Probability + got.Draw.Probability + got.AwayWin.Probability
			require.InDelta(t, 1.0, sum, 1e-9)
			require.GreaterOrEqual(t, got.HomeWin.Probability, 0.0)
			require.GreaterOrEqual(t, got.Draw.Probability, 0.0)
			require.GreaterOrEqual(t, got.AwayWin.Probability, 0.0)
		})
	}
}

func TestAnalyze_HomeAdvantageOnEvenSides(t *testing.T) {
	side := statLine(60, 1.5, 1.2, 5, 3)
	got := Analyze(side, side).Predictions

	// Identical sides: only the flat home bonus separates the 1X2 seeds.
	require.Greater(t, got.HomeWin.Probability, got.AwayWin.Probability)
}

func TestAnalyze_ClampsDerivedMarkets(t *testing.T) {
	t.Run("low scoring floor", func(t *testing.T) {
		got := Analyze(statLine(50, 0.2, 1.0, 0, 10), statLine(50, 0.2, 1.0, 0, 10)).Predictions
		require.InDelta(t, 0.25, got.Over25.Probability, 1e-9)
		require.InDelta(t, 0.30, got.BTTS.Probability, 1e-9)
	})

	t.Run("high scoring ceiling", func(t *testing.T) {
		got := Analyze(statLine(50, 3.5, 2.0, 10, 0), statLine(50, 3.2, 2.0, 10, 0)).Predictions
		require.InDelta(t, 0.85, got.Over25.Probability, 1e-9)
		require.InDelta(t, 0.85, got.BTTS.Probability, 1e-9)
	})
}

func TestAnalyze_HeadToHeadIsPlaceholder(t *testing.T) {
	got := Analyze(statLine(60, 1.5, 1.2, 5, 3), statLine(55, 1.4, 1.1, 4, 4))
	require.Equal(t, "placeholder", got.HeadToHead.Source)
}

func TestConfidenceFor_Boundaries(t *testing.T) {
	require.Equal(t, ConfidenceHigh, ConfidenceFor(0.60))
	require.Equal(t, ConfidenceMedium, ConfidenceFor(0.599))
	require.Equal(t, ConfidenceMedium, ConfidenceFor(0.45))
	require.Equal(t, ConfidenceLow, ConfidenceFor(0.449))
}

func TestConfidenceForInverse(t *testing.T) {
	require.Equal(t, ConfidenceHigh, ConfidenceForInverse(0.35))
	require.Equal(t, ConfidenceLow, ConfidenceForInverse(0.70))
}

func TestExpectedValueAndFairOdds(t *testing.T) {
	require.InDelta(t, 0.10, ExpectedValue(0.5, 2.2), 1e-9)
	require.InDelta(t, -0.10, ExpectedValue(0.5, 1.8), 1e-9)
	require.InDelta(t, 2.0, FairOdds(0.5), 1e-9)
	require.Zero(t, FairOdds(0))
}

func TestIndicatorFor(t *testing.T) {
	require.Equal(t, EVPositive, IndicatorFor(0.5, 2.2))
	require.Equal(t, EVNegative, IndicatorFor(0.3, 2.0))

	// EV is negative but the model sits within the margin of the
	// implied probability, so the market reads as fairly priced.
	impliedMinusMargin := 1/1.98 - 0.05
	require.True(t, 0.5 > impliedMinusMargin)
	require.True(t, math.Signbit(ExpectedValue(0.5, 1.98)))
	require.Equal(t, EVNeutral, IndicatorFor(0.5, 1.98))
}
