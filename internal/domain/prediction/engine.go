package prediction

import (
	"math"

	"github.com/betmetrics/betmetrics-api/internal/domain/teamstats"
)

// Model constants for the heuristic 1X2 seeding. The flat home bonus
// encodes home-field advantage on top of the base home-win prior.
const (
	baseHomeWinProb = 0.35
	baseDrawProb    = 0.28
	baseAwayWinProb = 0.32
	homeFieldBonus  = 0.05
	formWeight      = 0.2
	goalWeight      = 0.1
	drawFormPenalty = 0.1
)

// Outcome is one market estimate.
type Outcome struct {
	Probability float64    `json:"probability"`
	Confidence  Confidence `json:"confidence"`
}

// HeadToHead summarizes historical meetings between the two sides.
// Source is "placeholder" until a results feed exists; the figures are
// fixed and must not be presented as real history.
type HeadToHead struct {
	HomeWins       int     `json:"homeWins"`
	Draws          int     `json:"draws"`
	AwayWins       int     `json:"awayWins"`
	AvgGoals       float64 `json:"avgGoals"`
	BTTSPercentage int     `json:"bttsPercentage"`
	Source         string  `json:"source"`
}

// MatchAnalysis is the full prediction set for one pairing. Computed on
// demand, never persisted.
type MatchAnalysis struct {
	HomeTeam    teamstats.TeamStats `json:"homeTeam"`
	AwayTeam    teamstats.TeamStats `json:"awayTeam"`
	HeadToHead  HeadToHead          `json:"headToHead"`
	Predictions Predictions         `json:"predictions"`
}

type Predictions struct {
	HomeWin Outcome `json:"homeWin"`
	Draw    Outcome `json:"draw"`
	AwayWin Outcome `json:"awayWin"`
	Over25  Outcome `json:"over25"`
	BTTS    Outcome `json:"btts"`
}

// Analyze derives match probabilities from two rolling stat lines. Pure
// and deterministic; no I/O.
//
// The three 1X2 seeds are clamped at zero before normalization. The
// original formulas can go negative for extreme form gaps, and a
// negative value must never survive into a probability.
func Analyze(home, away teamstats.TeamStats) MatchAnalysis {
	formAdvantage := float64(home.Form-away.Form) / 100
	homeGoalAdvantage := (home.AvgGoalsScored - away.AvgGoalsConceded) / 2
	awayGoalAdvantage := (away.AvgGoalsScored - home.AvgGoalsConceded) / 2

	homeWin := baseHomeWinProb + formWeight*formAdvantage + goalWeight*homeGoalAdvantage + homeFieldBonus
	draw := baseDrawProb - drawFormPenalty*math.Abs(formAdvantage)
	awayWin := baseAwayWinProb - formWeight*formAdvantage + goalWeight*awayGoalAdvantage

	homeWin, draw, awayWin = normalize(homeWin, draw, awayWin)

	avgTotalGoals := home.AvgGoalsScored + away.AvgGoalsScored
	over25 := clamp((avgTotalGoals-1.5)/3, 0.25, 0.85)

	btts := clamp(
		0.6*float64(home.BothTeamsScored+away.BothTeamsScored)/20+
			0.4*(1-float64(home.FailedToScore+away.FailedToScore)/20),
		0.30, 0.85,
	)

	return MatchAnalysis{
		HomeTeam:   home,
		AwayTeam:   away,
		HeadToHead: placeholderHeadToHead(),
		Predictions: Predictions{
			HomeWin: Outcome{Probability: homeWin, Confidence: ConfidenceFor(homeWin)},
			Draw:    Outcome{Probability: draw, Confidence: ConfidenceFor(draw)},
			AwayWin: Outcome{Probability: awayWin, Confidence: ConfidenceFor(awayWin)},
			Over25:  Outcome{Probability: over25, Confidence: ConfidenceFor(over25)},
			BTTS:    Outcome{Probability: btts, Confidence: ConfidenceFor(btts)},
		},
	}
}

// normalize clamps negative seeds to zero and scales the trio to sum to
// one. If everything clamps away it falls back to the flat priors.
func normalize(homeWin, draw, awayWin float64) (float64, float64, float64) {
	homeWin = math.Max(homeWin, 0)
	draw = math.Max(draw, 0)
	awayWin = math.Max(awayWin, 0)

	total := homeWin + draw + awayWin
	if total <= 0 {
		homeWin, draw, awayWin = baseHomeWinProb, baseDrawProb, baseAwayWinProb
		total = homeWin + draw + awayWin
	}

	return homeWin / total, draw / total, awayWin / total
}

func placeholderHeadToHead() HeadToHead {
	return HeadToHead{
		HomeWins:       3,
		Draws:          2,
		AwayWins:       2,
		AvgGoals:       2.7,
		BTTSPercentage: 57,
		Source:         "placeholder",
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
