package reference

// TermPoint is one tenor of the static VIX futures curve.
type TermPoint struct {
	Tenor      string  `json:"tenor"`
	ImpliedVol float64 `json:"impliedVol"`
	Days       int     `json:"days"`
}

var vixCurve = []TermPoint{
	{Tenor: "1M", ImpliedVol: 15.2, Days: 30},
	{Tenor: "2M", ImpliedVol: 16.8, Days: 60},
	{Tenor: "3M", ImpliedVol: 18.1, Days: 90},
	{Tenor: "6M", ImpliedVol: 20.3, Days: 180},
	{Tenor: "9M", ImpliedVol: 21.5, Days: 270},
	{Tenor: "12M", ImpliedVol: 22.1, Days: 360},
}

// VIXCurve returns the static implied-vol term curve.
func VIXCurve() []TermPoint {
	return append([]TermPoint(nil), vixCurve...)
}

// Surface is an implied volatility grid: IV[i][j] is maturity i, strike j.
type Surface struct {
	Strikes    []float64   `json:"strikes"`
	Maturities []float64   `json:"maturities"`
	IV         [][]float64 `json:"iv"`
}

const (
	surfaceATMBase   = 15.0
	surfaceTermSlope = 60.0 // days per vol point of ATM term premium
	surfaceSkew      = 0.4  // vol points per strike percent below 100
)

// SurfaceVol is 15 + days/60 + (100 - strike)*0.4, strike in percent of spot.
func SurfaceVol(strike, days float64) float64 {
	return surfaceATMBase + days/surfaceTermSlope + (100-strike)*surfaceSkew
}

// VolSurface evaluates SurfaceVol over the strike and maturity grid.
func VolSurface(strikes, maturities []float64) Surface {
	s := Surface{
		Strikes:    append([]float64(nil), strikes...),
		Maturities: append([]float64(nil), maturities...),
		IV:         make([][]float64, len(maturities)),
	}
	for i, days := range maturities {
		row := make([]float64, len(strikes))
		for j, k := range strikes {
			row[j] = SurfaceVol(k, days)
		}
		s.IV[i] = row
	}
	return s
}

// DefaultVolSurface is the 80-110 strike by 30-360 day grid of the surface panel.
func DefaultVolSurface() Surface {
	return VolSurface(
		[]float64{80, 85, 90, 95, 100, 105, 110},
		[]float64{30, 60, 90, 180, 270, 360},
	)
}
