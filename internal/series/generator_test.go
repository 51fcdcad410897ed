package series

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestGenerateReturnsExactLength(t *testing.T) {
	gen := NewGenerator(WithSeed(7))
	for _, d := range Domains() {
		for _, n := range []int{0, 1, 7, 40} {
			s, err := gen.Generate(d, n)
			require.NoError(t, err, "domain %s n=%d", d, n)
			require.Equal(t, n, s.Len(), "domain %s", d)
			require.NotNil(t, s.Records, "domain %s n=%d", d, n)
			require.Equal(t, d, s.Domain)
			require.Equal(t, d.Cadence(), s.Cadence)
		}
	}
}

func TestTypedGeneratorsReturnEmptySliceForZero(t *testing.T) {
	gen := NewGenerator(WithSeed(1))

	etf, err := gen.ETFArbitrage(0)
	require.NoError(t, err)
	require.NotNil(t, etf)
	require.Empty(t, etf)

	divs, err := gen.DividendFutures(0)
	require.NoError(t, err)
	require.NotNil(t, divs)
	require.Empty(t, divs)
}

func TestNegativeLengthRejected(t *testing.T) {
	gen := NewGenerator(WithSeed(1))
	for _, d := range Domains() {
		_, err := gen.Generate(d, -1)
		require.ErrorIs(t, err, ErrInvalidParameter, "domain %s", d)
	}
	_, err := gen.VarianceSwaps(-3)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestUnknownDomainRejected(t *testing.T) {
	_, err := NewGenerator(WithSeed(1)).Generate(Domain("greeks"), 5)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = ParseDomain("nope")
	require.ErrorIs(t, err, ErrInvalidParameter)

	d, err := ParseDomain(" vixTermStructure ")
	require.NoError(t, err)
	require.Equal(t, DomainVIXTerm, d)
}

func TestPeriodsAdvanceAtFixedCadence(t *testing.T) {
	gen := NewGenerator(WithSeed(11))
	for _, d := range Domains() {
		s, err := gen.Generate(d, 30)
		require.NoError(t, err)
		for i := 1; i < s.Len(); i++ {
			prev := s.Records[i-1].Time()
			cur := s.Records[i].Time()
			require.True(t, cur.After(prev), "domain %s period %d", d, i)
			require.Equal(t, d.Cadence().Step(prev, 1), cur, "domain %s period %d", d, i)

			prevLabel := s.Records[i-1].Fields()[0].Value.(string)
			curLabel := s.Records[i].Fields()[0].Value.(string)
			require.Less(t, prevLabel, curLabel, "domain %s period %d", d, i)
		}
	}
}

func TestEveryRecordHasSameFiniteFields(t *testing.T) {
	gen := NewGenerator(WithSeed(3))
	for _, d := range Domains() {
		s, err := gen.Generate(d, 60)
		require.NoError(t, err)
		cols := s.Columns()
		require.NotEmpty(t, cols)
		for i, rec := range s.Records {
			fields := rec.Fields()
			require.Len(t, fields, len(cols), "domain %s period %d", d, i)
			for j, f := range fields {
				require.Equal(t, cols[j], f.Name)
				require.NotNil(t, f.Value, "domain %s field %s", d, f.Name)
				switch v := f.Value.(type) {
				case float64:
					require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "domain %s field %s = %v", d, f.Name, v)
				case string, bool:
				default:
					t.Fatalf("domain %s field %s has unexpected type %T", d, f.Name, v)
				}
			}
		}
	}
}

func TestThresholdRulesHoldPerRecord(t *testing.T) {
	gen := NewGenerator(WithSeed(5))

	etf, err := gen.ETFArbitrage(500)
	require.NoError(t, err)
	for _, r := range etf {
		require.Equal(t, r.VPINToxicity > 0.5, r.VolRegime == RegimeHigh)
		require.Contains(t, []string{RegimeHigh, RegimeLow}, r.VolRegime)
	}

	tox, err := gen.OrderFlowToxicity(500)
	require.NoError(t, err)
	for _, r := range tox {
		require.Equal(t, r.VPIN > 0.5, r.Regime == RegimeHigh)
		require.Equal(t, r.VPIN < 0.3, r.Regime == RegimeLow)
		require.Equal(t, r.VPIN >= 0.3 && r.VPIN <= 0.5, r.Regime == RegimeNormal)
	}

	vix, err := gen.VIXTermStructure(200)
	require.NoError(t, err)
	for _, r := range vix {
		require.Equal(t, r.VIX1M > r.VIXSpot, r.Regime == RegimeContango)
	}

	dis, err := gen.GlobalDislocations(300)
	require.NoError(t, err)
	for _, r := range dis {
		require.Equal(t, r.DislocationScore > 1.5, r.ArbitrageOpportunity)
	}
}

func TestDependentFieldsSatisfyDefinitions(t *testing.T) {
	gen := NewGenerator(WithSeed(9))

	swaps, err := gen.VarianceSwaps(100)
	require.NoError(t, err)
	for _, r := range swaps {
		want := 1_000_000 * 2 * math.Sqrt(r.FairStrike)
		require.InEpsilon(t, want, r.VegaNotional, 1e-9)
		require.InDelta(t, 1_000_000*(r.RealizedVariance-r.FairStrike), r.PayoffUSD, 1e-6)
		require.InDelta(t, r.PayoffUSD*0.15, r.ConvexityValue, 1e-6)
	}

	etf, err := gen.ETFArbitrage(100)
	require.NoError(t, err)
	for _, r := range etf {
		require.InEpsilon(t, r.NAV*(1+r.PremiumDiscountBps/10000), r.ETFPrice, 1e-12)
	}

	dis, err := gen.GlobalDislocations(100)
	require.NoError(t, err)
	for _, r := range dis {
		want := math.Abs(r.USRealizedVol-r.EuropeRealizedVol)/5 + math.Abs(r.EuropeRealizedVol-r.AsiaRealizedVol)/5
		require.InDelta(t, want, r.DislocationScore, 1e-12)
	}

	fc, err := gen.VolatilityForecasts(100)
	require.NoError(t, err)
	for _, r := range fc {
		require.Equal(t, r.RealizedVol20D, r.VolCone50)
		require.InDelta(t, r.RealizedVol20D*1.15, r.VolCone75, 1e-12)
		require.InDelta(t, r.RealizedVol20D*1.3, r.VolCone90, 1e-12)
		require.InDelta(t, math.Abs(r.EWMAForecast-r.RealizedVol20D), r.ForecastErrorEWMA, 1e-12)
		require.InDelta(t, math.Abs(r.GARCHForecast-r.RealizedVol20D), r.ForecastErrorGARCH, 1e-12)
	}

	vix, err := gen.VIXTermStructure(100)
	require.NoError(t, err)
	for _, r := range vix {
		require.Greater(t, r.VIX2M, r.VIX1M)
		require.Greater(t, r.VIX3M, r.VIX2M)
		require.InDelta(t, (r.VIX1M-r.VIXSpot)/r.VIXSpot*100, r.RollYieldPct, 1e-9)
	}
}

func TestSeededGeneratorsAreReproducible(t *testing.T) {
	a := NewGenerator(WithSeed(42))
	b := NewGenerator(WithSeed(42))
	for _, d := range Domains() {
		sa, err := a.Generate(d, 25)
		require.NoError(t, err)
		sb, err := b.Generate(d, 25)
		require.NoError(t, err)
		require.Equal(t, sa, sb, "domain %s", d)
	}

	other, err := NewGenerator(WithSeed(43)).Generate(DomainVIXTerm, 25)
	require.NoError(t, err)
	again, err := NewGenerator(WithSeed(42)).Generate(DomainVIXTerm, 25)
	require.NoError(t, err)
	require.NotEqual(t, again, other)
}

func TestVIXTermStructureScenario(t *testing.T) {
	recs, err := NewGenerator(WithSeed(2024)).VIXTermStructure(5)
	require.NoError(t, err)
	require.Len(t, recs, 5)

	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i, r := range recs {
		require.Equal(t, wantDates[i], r.Date)
		require.Greater(t, r.VIX1M, r.VIXSpot-5)
		require.Less(t, r.VIX1M, r.VIXSpot+10)
		require.Equal(t, TermRegime(r.VIXSpot, r.VIX1M), r.Regime)
	}
}

func TestDividendFuturesScenario(t *testing.T) {
	recs, err := NewGenerator(WithSeed(2024)).DividendFutures(4)
	require.NoError(t, err)
	require.Len(t, recs, 4)

	wantQuarters := []string{"2024-Q1", "2024-Q2", "2024-Q3", "2024-Q4"}
	for i, r := range recs {
		require.Equal(t, wantQuarters[i], r.Quarter)
		require.Equal(t, (r.ImpliedDividend-r.ExpectedDividend)*20, r.ArbitrageSpreadBps)
		require.Equal(t, (r.RealizedDividend-r.ImpliedDividend)*10, r.PnLPer1000Units)
	}

	next, err := NewGenerator(WithSeed(1)).DividendFutures(6)
	require.NoError(t, err)
	require.Equal(t, "2025-Q1", next[4].Quarter)
	require.Equal(t, "2025-Q2", next[5].Quarter)
}

func TestETFTimestampsAreHourlyISO(t *testing.T) {
	recs, err := NewGenerator(WithSeed(1)).ETFArbitrage(26)
	require.NoError(t, err)
	require.Equal(t, "2025-09-01T00:00:00.000Z", recs[0].Timestamp)
	require.Equal(t, "2025-09-01T01:00:00.000Z", recs[1].Timestamp)
	require.Equal(t, "2025-09-02T01:00:00.000Z", recs[25].Timestamp)
}

func TestConstantSourceFollowsWave(t *testing.T) {
	gen := NewGenerator(WithSource(constSource(0)))
	recs, err := gen.ETFArbitrage(3)
	require.NoError(t, err)
	for i, r := range recs {
		require.InDelta(t, 450+5*math.Sin(float64(i)/48), r.NAV, 1e-12)
		require.InDelta(t, -15+10*math.Sin(float64(i)/100), r.PremiumDiscountBps, 1e-12)
		require.InDelta(t, 0.2, r.VPINToxicity, 1e-12)
		require.Equal(t, RegimeLow, r.VolRegime)
	}

	hedge, err := NewGenerator(WithSource(constSource(0.5))).DynamicHedging(2)
	require.NoError(t, err)
	require.InDelta(t, 0, hedge[0].PortfolioDelta, 1e-9)
	require.InDelta(t, 350, hedge[0].PortfolioGamma, 1e-9)
	require.InDelta(t, 0.91, hedge[1].HedgeRatio, 1e-12)
}

func TestWithAnchorMovesFirstPeriod(t *testing.T) {
	start := time.Date(2030, time.March, 15, 0, 0, 0, 0, time.UTC)
	gen := NewGenerator(WithSeed(1), WithAnchor(DomainOrderFlowToxicity, start))
	require.Equal(t, start, gen.Anchor(DomainOrderFlowToxicity))
	require.Equal(t, FrameworkAnchor, gen.Anchor(DomainVarianceSwaps))

	recs, err := gen.OrderFlowToxicity(2)
	require.NoError(t, err)
	require.Equal(t, "2030-03-15", recs[0].Date)
	require.Equal(t, "2030-03-16", recs[1].Date)
}

func TestNonFiniteOutputIsGenerationFailure(t *testing.T) {
	gen := NewGenerator(WithSource(constSource(math.NaN())))
	_, err := gen.OrderFlowToxicity(3)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrGenerationFailure))

	_, err = gen.Generate(DomainAlphaFactors, 1)
	require.ErrorIs(t, err, ErrGenerationFailure)
}

func TestSeriesMapsExposeFieldNames(t *testing.T) {
	s, err := NewGenerator(WithSeed(1)).Generate(DomainOrderFlowToxicity, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"date", "vpin", "buyVolume", "sellVolume", "regime"}, s.Columns())

	maps := s.Maps()
	require.Len(t, maps, 2)
	require.Equal(t, "2024-11-01", maps[0]["date"])
	require.IsType(t, float64(0), maps[0]["vpin"])
	require.IsType(t, "", maps[1]["regime"])
}
