package prediction

// Confidence buckets a probability estimate for display.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Bucket thresholds: 0.60 and above is high, 0.45 and above is medium.
const (
	confidenceHighFloor   = 0.60
	confidenceMediumFloor = 0.45
)

func ConfidenceFor(probability float64) Confidence {
	switch {
	case probability >= confidenceHighFloor:
		return ConfidenceHigh
	case probability >= confidenceMediumFloor:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ConfidenceForInverse buckets the complementary market (under 2.5,
// BTTS-no): the same thresholds applied to 1-p, so a high probability in
// the primary outcome means low confidence in its inverse.
func ConfidenceForInverse(probability float64) Confidence {
	return ConfidenceFor(1 - probability)
}
