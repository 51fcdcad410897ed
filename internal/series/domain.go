// Package series generates the synthetic volatility datasets shown on the dashboard.
package series

import (
	"fmt"
	"strings"
	"time"
)

// Domain names one generated dataset. Values match the keys the dashboard reads.
type Domain string

const (
	DomainETFArb             Domain = "etfArbData"
	DomainAlphaFactors       Domain = "alphaFactors"
	DomainGlobalDislocations Domain = "globalEquityDislocations"
	DomainVarianceSwaps      Domain = "varianceSwaps"
	DomainDividendFutures    Domain = "dividendFutures"
	DomainVIXTerm            Domain = "vixTermStructure"
	DomainVolForecasts       Domain = "volatilityForecasts"
	DomainDynamicHedging     Domain = "dynamicHedging"
	DomainOrderFlowToxicity  Domain = "orderFlowToxicity"
)

// Anchors for the first period of each dataset.
var (
	// ETFArbAnchor starts the hourly ETF creation/redemption series.
	ETFArbAnchor = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	// ResearchAnchor starts the alpha factor and order-flow toxicity series.
	ResearchAnchor = time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	// FrameworkAnchor starts the volatility framework series (dislocations, swaps, VIX, forecasts, hedging, dividends).
	FrameworkAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
)

type domainInfo struct {
	cadence Cadence
	length  int
	anchor  time.Time
}

var domainOrder = []Domain{
	DomainETFArb,
	DomainAlphaFactors,
	DomainGlobalDislocations,
	DomainVarianceSwaps,
	DomainDividendFutures,
	DomainVIXTerm,
	DomainVolForecasts,
	DomainDynamicHedging,
	DomainOrderFlowToxicity,
}

var domainTable = map[Domain]domainInfo{
	DomainETFArb:             {cadence: Hourly, length: 504, anchor: ETFArbAnchor},
	DomainAlphaFactors:       {cadence: Daily, length: 252, anchor: ResearchAnchor},
	DomainGlobalDislocations: {cadence: Daily, length: 252, anchor: FrameworkAnchor},
	DomainVarianceSwaps:      {cadence: Daily, length: 252, anchor: FrameworkAnchor},
	DomainDividendFutures:    {cadence: Quarterly, length: 20, anchor: FrameworkAnchor},
	DomainVIXTerm:            {cadence: Daily, length: 252, anchor: FrameworkAnchor},
	DomainVolForecasts:       {cadence: Daily, length: 222, anchor: FrameworkAnchor},
	DomainDynamicHedging:     {cadence: Daily, length: 252, anchor: FrameworkAnchor},
	DomainOrderFlowToxicity:  {cadence: Daily, length: 252, anchor: ResearchAnchor},
}

// Domains lists every dataset in generation order.
func Domains() []Domain {
	out := make([]Domain, len(domainOrder))
	copy(out, domainOrder)
	return out
}

// ParseDomain resolves a dataset key, ignoring surrounding whitespace.
func ParseDomain(name string) (Domain, error) {
	d := Domain(strings.TrimSpace(name))
	if !d.Valid() {
		return "", fmt.Errorf("%w: unknown domain %q", ErrInvalidParameter, name)
	}
	return d, nil
}

// Valid reports whether d is one of the known datasets.
func (d Domain) Valid() bool {
	_, ok := domainTable[d]
	return ok
}

// Cadence returns the step between consecutive periods.
func (d Domain) Cadence() Cadence { return domainTable[d].cadence }

// DefaultLength is the number of periods the dashboard loads at start-up.
func (d Domain) DefaultLength() int { return domainTable[d].length }

// DefaultAnchor is the first period of the dataset unless overridden.
func (d Domain) DefaultAnchor() time.Time { return domainTable[d].anchor }

func (d Domain) String() string { return string(d) }
