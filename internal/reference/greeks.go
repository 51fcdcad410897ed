package reference

// Position is the Greek exposure of one book line.
type Position struct {
	Position       string  `json:"position"`
	Vega           float64 `json:"vega"`
	Gamma          float64 `json:"gamma"`
	Theta          float64 `json:"theta"`
	Delta          float64 `json:"delta"`
	VRPSensitivity float64 `json:"vrpSensitivity"`
}

var portfolio = []Position{
	{Position: "VIX Calls", Vega: 25000, Gamma: 150, Theta: -850, Delta: 1250, VRPSensitivity: 0.85},
	{Position: "SPX Puts", Vega: 18500, Gamma: 285, Theta: -1240, Delta: -8500, VRPSensitivity: 0.72},
	{Position: "Variance Swaps", Vega: 42000, Gamma: 0, Theta: -120, Delta: 0, VRPSensitivity: 1.45},
}

// DefaultVRPShifts are the variance risk premium moves, in vol points, the sensitivity chart plots.
var DefaultVRPShifts = []float64{-2, -1, 0, 1, 2}

// PortfolioGreeks returns a copy of the book.
func PortfolioGreeks() []Position {
	return append([]Position(nil), portfolio...)
}

// Totals is the aggregate Greek exposure of a book.
type Totals struct {
	Vega  float64 `json:"vega"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Delta float64 `json:"delta"`
}

// TotalGreeks sums each Greek across positions.
func TotalGreeks(positions []Position) Totals {
	var t Totals
	for _, p := range positions {
		t.Vega += p.Vega
		t.Gamma += p.Gamma
		t.Theta += p.Theta
		t.Delta += p.Delta
	}
	return t
}

// ScenarioPoint is the book P&L for one VRP shift.
type ScenarioPoint struct {
	Shift float64 `json:"shift"`
	PnL   float64 `json:"pnl"`
}

// VRPSensitivity returns sum(vega * vrpSensitivity * shift) for every shift.
func VRPSensitivity(positions []Position, shifts []float64) []ScenarioPoint {
	out := make([]ScenarioPoint, 0, len(shifts))
	for _, shift := range shifts {
		var pnl float64
		for _, p := range positions {
			pnl += p.Vega * p.VRPSensitivity * shift
		}
		out = append(out, ScenarioPoint{Shift: shift, PnL: pnl})
	}
	return out
}
