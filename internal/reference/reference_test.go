package reference

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrategyTableMatchesFundamentalLaw(t *testing.T) {
	for _, s := range Strategies() {
		require.InDelta(t, s.ExpectedIR, FundamentalLaw(s.IC, s.Breadth, s.TC), 0.01, s.Name)
	}
}

func TestStrategiesReturnsCopy(t *testing.T) {
	got := Strategies()
	got[0].Name = "mutated"
	require.Equal(t, "ETF-NAV Arbitrage", Strategies()[0].Name)
}

func TestProjectionEvaluate(t *testing.T) {
	res, err := Projection{IC: 0.1, Breadth: 100, TC: 0.5, RiskPct: 4}.Evaluate()
	require.NoError(t, err)
	require.InDelta(t, 0.5, res.ExpectedIR, 1e-12)
	require.InDelta(t, 2.0, res.ExpectedAlphaPct, 1e-12)
	require.InDelta(t, 20000, res.ValueAddedK, 1e-9)
	require.Equal(t, 100.0, res.Breadth)
}

func TestProjectionRejectsOutOfRangeInputs(t *testing.T) {
	cases := map[string]Projection{
		"ic":      {IC: 1.5, Breadth: 10, TC: 0.5, RiskPct: 1},
		"breadth": {IC: 0.1, Breadth: -1, TC: 0.5, RiskPct: 1},
		"tc":      {IC: 0.1, Breadth: 10, TC: 2, RiskPct: 1},
		"risk":    {IC: 0.1, Breadth: 10, TC: 0.5, RiskPct: -3},
	}
	for name, p := range cases {
		_, err := p.Evaluate()
		require.ErrorIs(t, err, ErrInvalidInput, name)
		require.Contains(t, err.Error(), name)
	}
}

func TestImportanceByCategory(t *testing.T) {
	got := ImportanceByCategory(Features())
	require.Len(t, got, 3)
	require.Equal(t, "Microstructure", got[0].Category)
	require.InDelta(t, 0.5004, got[0].Importance, 1e-9)
	require.Equal(t, "Vol", got[1].Category)
	require.InDelta(t, 0.3699, got[1].Importance, 1e-9)
	require.Equal(t, "Risk Factor", got[2].Category)
	require.InDelta(t, 0.1197, got[2].Importance, 1e-9)
}

func TestTotalGreeks(t *testing.T) {
	totals := TotalGreeks(PortfolioGreeks())
	require.Equal(t, Totals{Vega: 85500, Gamma: 435, Theta: -2210, Delta: -7250}, totals)
	require.Equal(t, Totals{}, TotalGreeks(nil))
}

func TestVRPSensitivity(t *testing.T) {
	points := VRPSensitivity(PortfolioGreeks(), DefaultVRPShifts)
	require.Len(t, points, 5)
	require.InDelta(t, -190940, points[0].PnL, 1e-6)
	require.InDelta(t, 0, points[2].PnL, 1e-12)
	require.InDelta(t, 95470, points[3].PnL, 1e-6)
	require.Equal(t, 2.0, points[4].Shift)
}

func TestVolSurface(t *testing.T) {
	s := DefaultVolSurface()
	require.Len(t, s.IV, len(s.Maturities))
	for _, row := range s.IV {
		require.Len(t, row, len(s.Strikes))
	}
	// maturity 30d, strike 80%
	require.InDelta(t, 23.5, s.IV[0][0], 1e-12)
	// maturity 60d, ATM
	require.InDelta(t, 16, s.IV[1][4], 1e-12)
	require.Greater(t, s.IV[0][0], s.IV[0][6])
}

func TestVIXCurveIsUpwardSloping(t *testing.T) {
	curve := VIXCurve()
	require.Len(t, curve, 6)
	for i := 1; i < len(curve); i++ {
		require.Greater(t, curve[i].ImpliedVol, curve[i-1].ImpliedVol)
		require.Greater(t, curve[i].Days, curve[i-1].Days)
	}
}
