package prediction

// EVIndicator flags how a market's odds compare with the model estimate.
type EVIndicator string

const (
	EVPositive EVIndicator = "positive"
	EVNeutral  EVIndicator = "neutral"
	EVNegative EVIndicator = "negative"
)

// negativeEdgeMargin: the indicator only turns negative when the model
// probability sits clearly below the market-implied probability, not on
// any sub-zero EV.
const negativeEdgeMargin = 0.05

// ExpectedValue is probability*odds - 1: the average return per unit
// staked if the model probability is right. Positive means value.
func ExpectedValue(probability, odds float64) float64 {
	return probability*odds - 1
}

// FairOdds is the break-even price for the model probability.
func FairOdds(probability float64) float64 {
	if probability <= 0 {
		return 0
	}
	return 1 / probability
}

// ImpliedProbability converts decimal odds to the bookmaker's implied
// probability (vig included).
func ImpliedProbability(odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return 1 / odds
}

func IndicatorFor(probability, odds float64) EVIndicator {
	if ExpectedValue(probability, odds) > 0 {
		return EVPositive
	}
	if probability < ImpliedProbability(odds)-negativeEdgeMargin {
		return EVNegative
	}
	return EVNeutral
}
