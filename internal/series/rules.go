package series

import "math"

// Regime labels.
const (
	RegimeLow           = "Low"
	RegimeNormal        = "Normal"
	RegimeHigh          = "High"
	RegimeContango      = "Contango"
	RegimeBackwardation = "Backwardation"
)

const (
	etfToxicVPIN          = 0.5
	calmVPIN              = 0.3
	toxicVPIN             = 0.5
	dislocationArbitrage  = 1.5
	dislocationNormalizer = 5.0
)

// VolRegime classifies ETF flow toxicity: High above 0.5 VPIN, Low otherwise.
func VolRegime(vpin float64) string {
	if vpin > etfToxicVPIN {
		return RegimeHigh
	}
	return RegimeLow
}

// ToxicityRegime buckets daily VPIN into Low (<0.3), High (>0.5) or Normal.
func ToxicityRegime(vpin float64) string {
	switch {
	case vpin < calmVPIN:
		return RegimeLow
	case vpin > toxicVPIN:
		return RegimeHigh
	default:
		return RegimeNormal
	}
}

// TermRegime is Contango when the front future trades above spot.
func TermRegime(spot, oneMonth float64) string {
	if oneMonth > spot {
		return RegimeContango
	}
	return RegimeBackwardation
}

// DislocationScore sums the US/Europe and Europe/Asia realized vol gaps in units of five vol points.
func DislocationScore(us, europe, asia float64) float64 {
	return math.Abs(us-europe)/dislocationNormalizer + math.Abs(europe-asia)/dislocationNormalizer
}

// ArbitrageOpportunity flags scores above 1.5.
func ArbitrageOpportunity(score float64) bool {
	return score > dislocationArbitrage
}
