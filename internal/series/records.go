package series

import "time"

// Field is one named value of a record.
type Field struct {
	Name  string
	Value any
}

// Record is a single period of any dataset.
type Record interface {
	// Time is the start of the period.
	Time() time.Time
	// Fields lists the record's values in column order, period label first.
	Fields() []Field
}

// Series is an ordered dataset for one domain.
type Series struct {
	Domain  Domain   `json:"domain"`
	Cadence Cadence  `json:"cadence"`
	Records []Record `json:"records"`
}

// Len returns the number of periods.
func (s Series) Len() int { return len(s.Records) }

// Columns returns the field names shared by every record, or nil for an empty series.
func (s Series) Columns() []string {
	if len(s.Records) == 0 {
		return nil
	}
	fields := s.Records[0].Fields()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}
	return cols
}

// Maps renders every record as a field-name keyed map.
func (s Series) Maps() []map[string]any {
	out := make([]map[string]any, 0, len(s.Records))
	for _, rec := range s.Records {
		fields := rec.Fields()
		m := make(map[string]any, len(fields))
		for _, f := range fields {
			m[f.Name] = f.Value
		}
		out = append(out, m)
	}
	return out
}

// ETFArbRecord is one hour of ETF creation/redemption flow.
type ETFArbRecord struct {
	At                 time.Time `json:"-" parquet:"-"`
	Timestamp          string    `json:"timestamp" parquet:"timestamp"`
	NAV                float64   `json:"nav" parquet:"nav"`
	ETFPrice           float64   `json:"etfPrice" parquet:"etfPrice"`
	PremiumDiscountBps float64   `json:"premiumDiscountBps" parquet:"premiumDiscountBps"`
	CreationUnits      float64   `json:"creationUnits" parquet:"creationUnits"`
	RedemptionUnits    float64   `json:"redemptionUnits" parquet:"redemptionUnits"`
	VPINToxicity       float64   `json:"vpinToxicity" parquet:"vpinToxicity"`
	VolRegime          string    `json:"volRegime" parquet:"volRegime"`
}

func (r ETFArbRecord) Time() time.Time { return r.At }

func (r ETFArbRecord) Fields() []Field {
	return []Field{
		{"timestamp", r.Timestamp},
		{"nav", r.NAV},
		{"etfPrice", r.ETFPrice},
		{"premiumDiscountBps", r.PremiumDiscountBps},
		{"creationUnits", r.CreationUnits},
		{"redemptionUnits", r.RedemptionUnits},
		{"vpinToxicity", r.VPINToxicity},
		{"volRegime", r.VolRegime},
	}
}

// AlphaFactorRecord holds the daily model inputs and next-day volatility target.
type AlphaFactorRecord struct {
	At                 time.Time `json:"-" parquet:"-"`
	Date               string    `json:"date" parquet:"date"`
	RealizedVol20D     float64   `json:"realizedVol20D" parquet:"realizedVol20D"`
	VPINToxicity       float64   `json:"vpinToxicity" parquet:"vpinToxicity"`
	OrderImbalance     float64   `json:"orderImbalance" parquet:"orderImbalance"`
	VIXLevel           float64   `json:"vixLevel" parquet:"vixLevel"`
	TermStructureSlope float64   `json:"termStructureSlope" parquet:"termStructureSlope"`
	TargetVolNextDay   float64   `json:"targetVolNextDay" parquet:"targetVolNextDay"`
}

func (r AlphaFactorRecord) Time() time.Time { return r.At }

func (r AlphaFactorRecord) Fields() []Field {
	return []Field{
		{"date", r.Date},
		{"realizedVol20D", r.RealizedVol20D},
		{"vpinToxicity", r.VPINToxicity},
		{"orderImbalance", r.OrderImbalance},
		{"vixLevel", r.VIXLevel},
		{"termStructureSlope", r.TermStructureSlope},
		{"targetVolNextDay", r.TargetVolNextDay},
	}
}

// DislocationRecord compares realized volatility across regions.
type DislocationRecord struct {
	At                     time.Time `json:"-" parquet:"-"`
	Date                   string    `json:"date" parquet:"date"`
	USRealizedVol          float64   `json:"usRealizedVol" parquet:"usRealizedVol"`
	EuropeRealizedVol      float64   `json:"europeRealizedVol" parquet:"europeRealizedVol"`
	AsiaRealizedVol        float64   `json:"asiaRealizedVol" parquet:"asiaRealizedVol"`
	CrossRegionCorrelation float64   `json:"crossRegionCorrelation" parquet:"crossRegionCorrelation"`
	DislocationScore       float64   `json:"dislocationScore" parquet:"dislocationScore"`
	ArbitrageOpportunity   bool      `json:"arbitrageOpportunity" parquet:"arbitrageOpportunity"`
}

func (r DislocationRecord) Time() time.Time { return r.At }

func (r DislocationRecord) Fields() []Field {
	return []Field{
		{"date", r.Date},
		{"usRealizedVol", r.USRealizedVol},
		{"europeRealizedVol", r.EuropeRealizedVol},
		{"asiaRealizedVol", r.AsiaRealizedVol},
		{"crossRegionCorrelation", r.CrossRegionCorrelation},
		{"dislocationScore", r.DislocationScore},
		{"arbitrageOpportunity", r.ArbitrageOpportunity},
	}
}

// VarianceSwapRecord is a daily variance swap mark.
type VarianceSwapRecord struct {
	At               time.Time `json:"-" parquet:"-"`
	Date             string    `json:"date" parquet:"date"`
	FairStrike       float64   `json:"fairStrike" parquet:"fairStrike"`
	RealizedVariance float64   `json:"realizedVariance" parquet:"realizedVariance"`
	PayoffUSD        float64   `json:"payoffUSD" parquet:"payoffUSD"`
	VegaNotional     float64   `json:"vegaNotional" parquet:"vegaNotional"`
	ConvexityValue   float64   `json:"convexityValue" parquet:"convexityValue"`
}

func (r VarianceSwapRecord) Time() time.Time { return r.At }

func (r VarianceSwapRecord) Fields() []Field {
	return []Field{
		{"date", r.Date},
		{"fairStrike", r.FairStrike},
		{"realizedVariance", r.RealizedVariance},
		{"payoffUSD", r.PayoffUSD},
		{"vegaNotional", r.VegaNotional},
		{"convexityValue", r.ConvexityValue},
	}
}

// DividendFutureRecord is one quarter of index dividend expectations.
type DividendFutureRecord struct {
	At                 time.Time `json:"-" parquet:"-"`
	Quarter            string    `json:"quarter" parquet:"quarter"`
	ExpectedDividend   float64   `json:"expectedDividend" parquet:"expectedDividend"`
	ImpliedDividend    float64   `json:"impliedDividend" parquet:"impliedDividend"`
	RealizedDividend   float64   `json:"realizedDividend" parquet:"realizedDividend"`
	ArbitrageSpreadBps float64   `json:"arbitrageSpreadBps" parquet:"arbitrageSpreadBps"`
	PnLPer1000Units    float64   `json:"pnlPer1000Units" parquet:"pnlPer1000Units"`
}

func (r DividendFutureRecord) Time() time.Time { return r.At }

func (r DividendFutureRecord) Fields() []Field {
	return []Field{
		{"quarter", r.Quarter},
		{"expectedDividend", r.ExpectedDividend},
		{"impliedDividend", r.ImpliedDividend},
		{"realizedDividend", r.RealizedDividend},
		{"arbitrageSpreadBps", r.ArbitrageSpreadBps},
		{"pnlPer1000Units", r.PnLPer1000Units},
	}
}

// VIXTermRecord is a daily snapshot of spot VIX and the first three futures tenors.
type VIXTermRecord struct {
	At           time.Time `json:"-" parquet:"-"`
	Date         string    `json:"date" parquet:"date"`
	VIXSpot      float64   `json:"vixSpot" parquet:"vixSpot"`
	VIX1M        float64   `json:"vix1M" parquet:"vix1M"`
	VIX2M        float64   `json:"vix2M" parquet:"vix2M"`
	VIX3M        float64   `json:"vix3M" parquet:"vix3M"`
	Regime       string    `json:"regime" parquet:"regime"`
	RollYieldPct float64   `json:"rollYieldPct" parquet:"rollYieldPct"`
	Forecast7Day float64   `json:"forecast7Day" parquet:"forecast7Day"`
}

func (r VIXTermRecord) Time() time.Time { return r.At }

func (r VIXTermRecord) Fields() []Field {
	return []Field{
		{"date", r.Date},
		{"vixSpot", r.VIXSpot},
		{"vix1M", r.VIX1M},
		{"vix2M", r.VIX2M},
		{"vix3M", r.VIX3M},
		{"regime", r.Regime},
		{"rollYieldPct", r.RollYieldPct},
		{"forecast7Day", r.Forecast7Day},
	}
}

// VolForecastRecord pairs realized volatility with illustrative EWMA and GARCH forecasts.
type VolForecastRecord struct {
	At                 time.Time `json:"-" parquet:"-"`
	Date               string    `json:"date" parquet:"date"`
	RealizedVol20D     float64   `json:"realizedVol20D" parquet:"realizedVol20D"`
	EWMAForecast       float64   `json:"ewmaForecast" parquet:"ewmaForecast"`
	GARCHForecast      float64   `json:"garchForecast" parquet:"garchForecast"`
	VolCone50          float64   `json:"volCone50" parquet:"volCone50"`
	VolCone75          float64   `json:"volCone75" parquet:"volCone75"`
	VolCone90          float64   `json:"volCone90" parquet:"volCone90"`
	ForecastErrorEWMA  float64   `json:"forecastErrorEWMA" parquet:"forecastErrorEWMA"`
	ForecastErrorGARCH float64   `json:"forecastErrorGARCH" parquet:"forecastErrorGARCH"`
}

func (r VolForecastRecord) Time() time.Time { return r.At }

func (r VolForecastRecord) Fields() []Field {
	return []Field{
		{"date", r.Date},
		{"realizedVol20D", r.RealizedVol20D},
		{"ewmaForecast", r.EWMAForecast},
		{"garchForecast", r.GARCHForecast},
		{"volCone50", r.VolCone50},
		{"volCone75", r.VolCone75},
		{"volCone90", r.VolCone90},
		{"forecastErrorEWMA", r.ForecastErrorEWMA},
		{"forecastErrorGARCH", r.ForecastErrorGARCH},
	}
}

// HedgingRecord is the daily Greek exposure and hedging cost of the book.
type HedgingRecord struct {
	At               time.Time `json:"-" parquet:"-"`
	Date             string    `json:"date" parquet:"date"`
	PortfolioDelta   float64   `json:"portfolioDelta" parquet:"portfolioDelta"`
	PortfolioGamma   float64   `json:"portfolioGamma" parquet:"portfolioGamma"`
	PortfolioVega    float64   `json:"portfolioVega" parquet:"portfolioVega"`
	PortfolioTheta   float64   `json:"portfolioTheta" parquet:"portfolioTheta"`
	HedgeRatio       float64   `json:"hedgeRatio" parquet:"hedgeRatio"`
	RehedgeCost      float64   `json:"rehedgeCost" parquet:"rehedgeCost"`
	GammaScalpingPnL float64   `json:"gammaScalpingPnL" parquet:"gammaScalpingPnL"`
}

func (r HedgingRecord) Time() time.Time { return r.At }

func (r HedgingRecord) Fields() []Field {
	return []Field{
		{"date", r.Date},
		{"portfolioDelta", r.PortfolioDelta},
		{"portfolioGamma", r.PortfolioGamma},
		{"portfolioVega", r.PortfolioVega},
		{"portfolioTheta", r.PortfolioTheta},
		{"hedgeRatio", r.HedgeRatio},
		{"rehedgeCost", r.RehedgeCost},
		{"gammaScalpingPnL", r.GammaScalpingPnL},
	}
}

// ToxicityRecord is a daily VPIN reading with traded volume per side.
type ToxicityRecord struct {
	At         time.Time `json:"-" parquet:"-"`
	Date       string    `json:"date" parquet:"date"`
	VPIN       float64   `json:"vpin" parquet:"vpin"`
	BuyVolume  float64   `json:"buyVolume" parquet:"buyVolume"`
	SellVolume float64   `json:"sellVolume" parquet:"sellVolume"`
	Regime     string    `json:"regime" parquet:"regime"`
}

func (r ToxicityRecord) Time() time.Time { return r.At }

func (r ToxicityRecord) Fields() []Field {
	return []Field{
		{"date", r.Date},
		{"vpin", r.VPIN},
		{"buyVolume", r.BuyVolume},
		{"sellVolume", r.SellVolume},
		{"regime", r.Regime},
	}
}
