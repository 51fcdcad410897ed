package series

import (
	"math"
	"time"
)

// ETF creation/redemption flow.
var (
	navLevel     = Level{Wave: Wave{Base: 450, Amplitude: 5, Period: 48}, Noise: Noise{Lo: 0, Hi: 2}}
	premiumLevel = Level{Wave: Wave{Amplitude: 10, Period: 100}, Noise: Noise{Lo: -15, Hi: 15}}
	flowVPIN     = flat(0.2, 0, 0.4)
)

const (
	creationPremiumBps   = 10.0
	redemptionDiscount   = -10.0
	stressedPremiumBps   = 15.0
	stressedVPINAddOn    = 0.15
	heavyCreationUnits   = 500_000.0
	normalCreationUnits  = 100_000.0
	heavyRedemptionUnits = 400_000.0
	normalRedemptionUnit = 80_000.0
)

// ETFArbitrage generates n hourly periods of ETF NAV, premium and flow.
func (g *Generator) ETFArbitrage(n int) ([]ETFArbRecord, error) {
	return build(g, DomainETFArb, n, func(i int, at time.Time, label string) ETFArbRecord {
		nav := g.level(navLevel, i)
		premium := g.level(premiumLevel, i)

		creation := g.uniform(0, normalCreationUnits)
		if premium > creationPremiumBps {
			creation = g.uniform(0, heavyCreationUnits)
		}
		redemption := g.uniform(0, normalRedemptionUnit)
		if premium < redemptionDiscount {
			redemption = g.uniform(0, heavyRedemptionUnits)
		}

		vpin := g.level(flowVPIN, i)
		if math.Abs(premium) > stressedPremiumBps {
			vpin += stressedVPINAddOn
		}

		return ETFArbRecord{
			At:                 at,
			Timestamp:          label,
			NAV:                nav,
			ETFPrice:           nav * (1 + premium/10000),
			PremiumDiscountBps: premium,
			CreationUnits:      creation,
			RedemptionUnits:    redemption,
			VPINToxicity:       vpin,
			VolRegime:          VolRegime(vpin),
		}
	})
}

// Alpha model inputs.
var (
	alphaRealizedVol = Level{Wave: Wave{Base: 12, Amplitude: 3, Period: 30}, Noise: Noise{Lo: 0, Hi: 8}}
	alphaVPIN        = flat(0.25, 0, 0.35)
	alphaImbalance   = flat(0, -0.3, 0.3)
	alphaVIX         = Level{Wave: Wave{Base: 14, Amplitude: 4, Period: 40}, Noise: Noise{Lo: 0, Hi: 6}}
	alphaTermSlope   = Level{Wave: Wave{Base: 4, Amplitude: 2, Period: 50}, Noise: Noise{Lo: 0, Hi: 4}}
	alphaTarget      = Level{Wave: Wave{Base: 13, Amplitude: 3, Period: 30, Shift: 1}, Noise: Noise{Lo: 0, Hi: 7}}
)

// AlphaFactors generates n daily rows of alpha model features.
func (g *Generator) AlphaFactors(n int) ([]AlphaFactorRecord, error) {
	return build(g, DomainAlphaFactors, n, func(i int, at time.Time, label string) AlphaFactorRecord {
		return AlphaFactorRecord{
			At:                 at,
			Date:               label,
			RealizedVol20D:     g.level(alphaRealizedVol, i),
			VPINToxicity:       g.level(alphaVPIN, i),
			OrderImbalance:     g.level(alphaImbalance, i),
			VIXLevel:           g.level(alphaVIX, i),
			TermStructureSlope: g.level(alphaTermSlope, i),
			TargetVolNextDay:   g.level(alphaTarget, i),
		}
	})
}

// Regional realized volatility; Europe and Asia lag the US cycle by 10 and 20 days.
var (
	usVol          = Level{Wave: Wave{Base: 15, Amplitude: 5, Period: 30}, Noise: Noise{Lo: 0, Hi: 3}}
	europeVol      = Level{Wave: Wave{Base: 16, Amplitude: 4.5, Period: 30, Shift: 10}, Noise: Noise{Lo: 0, Hi: 3}}
	asiaVol        = Level{Wave: Wave{Base: 17, Amplitude: 5.5, Period: 30, Shift: 20}, Noise: Noise{Lo: 0, Hi: 3.5}}
	regionalCorrel = flat(0.75, -0.15, 0.15)
)

// GlobalDislocations generates n daily rows of cross-region volatility dislocation.
func (g *Generator) GlobalDislocations(n int) ([]DislocationRecord, error) {
	return build(g, DomainGlobalDislocations, n, func(i int, at time.Time, label string) DislocationRecord {
		us := g.level(usVol, i)
		eu := g.level(europeVol, i)
		asia := g.level(asiaVol, i)
		score := DislocationScore(us, eu, asia)
		return DislocationRecord{
			At:                     at,
			Date:                   label,
			USRealizedVol:          us,
			EuropeRealizedVol:      eu,
			AsiaRealizedVol:        asia,
			CrossRegionCorrelation: g.level(regionalCorrel, i),
			DislocationScore:       score,
			ArbitrageOpportunity:   ArbitrageOpportunity(score),
		}
	})
}

// Variance swap marks. Strikes and variances are in vol points squared.
var (
	fairStrikeLevel  = flat(250, 0, 100)
	realizedVarLevel = Level{Wave: Wave{Base: 275, Amplitude: 80, Period: 40}, Noise: Noise{Lo: 0, Hi: 50}}
)

const (
	varianceNotional  = 1_000_000.0
	convexityFraction = 0.15
)

// VarianceSwaps generates n daily variance swap marks.
func (g *Generator) VarianceSwaps(n int) ([]VarianceSwapRecord, error) {
	return build(g, DomainVarianceSwaps, n, func(i int, at time.Time, label string) VarianceSwapRecord {
		strike := g.level(fairStrikeLevel, i)
		realized := g.level(realizedVarLevel, i)
		payoff := varianceNotional * (realized - strike)
		return VarianceSwapRecord{
			At:               at,
			Date:             label,
			FairStrike:       strike,
			RealizedVariance: realized,
			PayoffUSD:        payoff,
			VegaNotional:     varianceNotional * 2 * math.Sqrt(strike),
			ConvexityValue:   payoff * convexityFraction,
		}
	})
}

// Dividend futures.
var (
	expectedDividend = flat(50, 0, 10)
	impliedSpread    = Noise{Lo: -2.5, Hi: 2.5}
	realizedSpread   = Noise{Lo: -4, Hi: 4}
)

const (
	dividendSpreadBps = 20.0
	dividendUnitsPnL  = 10.0
)

// DividendFutures generates n quarterly dividend futures rows starting 2024-Q1.
func (g *Generator) DividendFutures(n int) ([]DividendFutureRecord, error) {
	return build(g, DomainDividendFutures, n, func(i int, at time.Time, label string) DividendFutureRecord {
		expected := g.level(expectedDividend, i)
		implied := expected + impliedSpread.Draw(g.src)
		realized := expected + realizedSpread.Draw(g.src)
		return DividendFutureRecord{
			At:                 at,
			Quarter:            label,
			ExpectedDividend:   expected,
			ImpliedDividend:    implied,
			RealizedDividend:   realized,
			ArbitrageSpreadBps: (implied - expected) * dividendSpreadBps,
			PnLPer1000Units:    (realized - implied) * dividendUnitsPnL,
		}
	})
}

// VIX curve. Each tenor adds a positive increment to the previous one.
var (
	vixSpotLevel = Level{Wave: Wave{Base: 15, Amplitude: 5, Period: 50}, Noise: Noise{Lo: 0, Hi: 3}}
	frontStep    = Noise{Lo: 1.5, Hi: 3.5}
	secondStep   = Noise{Lo: 1.2, Hi: 2.7}
	thirdStep    = Noise{Lo: 1, Hi: 2}
	weekForecast = Noise{Lo: -1, Hi: 1}
)

// VIXTermStructure generates n daily VIX spot and futures curves.
func (g *Generator) VIXTermStructure(n int) ([]VIXTermRecord, error) {
	return build(g, DomainVIXTerm, n, func(i int, at time.Time, label string) VIXTermRecord {
		spot := g.level(vixSpotLevel, i)
		m1 := spot + frontStep.Draw(g.src)
		m2 := m1 + secondStep.Draw(g.src)
		m3 := m2 + thirdStep.Draw(g.src)
		return VIXTermRecord{
			At:           at,
			Date:         label,
			VIXSpot:      spot,
			VIX1M:        m1,
			VIX2M:        m2,
			VIX3M:        m3,
			Regime:       TermRegime(spot, m1),
			RollYieldPct: (m1 - spot) / spot * 100,
			Forecast7Day: spot + weekForecast.Draw(g.src),
		}
	})
}

// Volatility forecasts. EWMA and GARCH are realized vol plus noise, not fitted models.
var (
	forecastRealized = Level{Wave: Wave{Base: 16, Amplitude: 4, Period: 30}, Noise: Noise{Lo: 0, Hi: 2}}
	ewmaNoise        = Noise{Lo: -0.75, Hi: 0.75}
	garchNoise       = Noise{Lo: -1, Hi: 1}
)

const (
	cone75 = 1.15
	cone90 = 1.3
)

// VolatilityForecasts generates n daily forecast comparisons.
func (g *Generator) VolatilityForecasts(n int) ([]VolForecastRecord, error) {
	return build(g, DomainVolForecasts, n, func(i int, at time.Time, label string) VolForecastRecord {
		rv := g.level(forecastRealized, i)
		ewma := rv + ewmaNoise.Draw(g.src)
		garch := rv + garchNoise.Draw(g.src)
		return VolForecastRecord{
			At:                 at,
			Date:               label,
			RealizedVol20D:     rv,
			EWMAForecast:       ewma,
			GARCHForecast:      garch,
			VolCone50:          rv,
			VolCone75:          rv * cone75,
			VolCone90:          rv * cone90,
			ForecastErrorEWMA:  math.Abs(ewma - rv),
			ForecastErrorGARCH: math.Abs(garch - rv),
		}
	})
}

// Dynamic hedging book.
var (
	hedgeDelta      = flat(0, -10_000, 10_000)
	hedgeGamma      = flat(200, 0, 300)
	hedgeVega       = flat(40_000, 0, 30_000)
	hedgeTheta      = flat(-1500, -1000, 0)
	hedgeRatio      = flat(0.85, 0, 0.12)
	hedgeRehedge    = flat(5000, 0, 5000)
	hedgeGammaScalp = flat(0, -3200, 4800)
)

// DynamicHedging generates n daily portfolio Greek snapshots.
func (g *Generator) DynamicHedging(n int) ([]HedgingRecord, error) {
	return build(g, DomainDynamicHedging, n, func(i int, at time.Time, label string) HedgingRecord {
		return HedgingRecord{
			At:               at,
			Date:             label,
			PortfolioDelta:   g.level(hedgeDelta, i),
			PortfolioGamma:   g.level(hedgeGamma, i),
			PortfolioVega:    g.level(hedgeVega, i),
			PortfolioTheta:   g.level(hedgeTheta, i),
			HedgeRatio:       g.level(hedgeRatio, i),
			RehedgeCost:      g.level(hedgeRehedge, i),
			GammaScalpingPnL: g.level(hedgeGammaScalp, i),
		}
	})
}

// Order-flow toxicity.
var (
	toxicityVPIN = flat(0.2, 0, 0.5)
	buyVolume    = flat(50_000_000, 0, 30_000_000)
	sellVolume   = flat(48_000_000, 0, 32_000_000)
)

// OrderFlowToxicity generates n daily VPIN readings.
func (g *Generator) OrderFlowToxicity(n int) ([]ToxicityRecord, error) {
	return build(g, DomainOrderFlowToxicity, n, func(i int, at time.Time, label string) ToxicityRecord {
		vpin := g.level(toxicityVPIN, i)
		return ToxicityRecord{
			At:         at,
			Date:       label,
			VPIN:       vpin,
			BuyVolume:  g.level(buyVolume, i),
			SellVolume: g.level(sellVolume, i),
			Regime:     ToxicityRegime(vpin),
		}
	})
}
