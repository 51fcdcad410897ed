// Package reference holds the static tables the dashboard shows next to the generated series.
package reference

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidInput rejects calculator inputs outside their meaningful range.
var ErrInvalidInput = errors.New("invalid input")

// Strategy is a Grinold-Kahn strategy row: information coefficient, breadth and transfer coefficient.
type Strategy struct {
	Name          string  `json:"name"`
	IC            float64 `json:"ic"`
	Breadth       float64 `json:"breadth"`
	TC            float64 `json:"tc"`
	ExpectedIR    float64 `json:"expectedIR"`
	ExpectedAlpha float64 `json:"expectedAlpha"`
}

var strategies = []Strategy{
	{Name: "ETF-NAV Arbitrage", IC: 0.20, Breadth: 1260, TC: 0.95, ExpectedIR: 6.74, ExpectedAlpha: 0.270},
	{Name: "Variance Risk Premium", IC: 0.15, Breadth: 252, TC: 0.90, ExpectedIR: 2.14, ExpectedAlpha: 0.214},
	{Name: "Vol Factor Timing", IC: 0.08, Breadth: 252, TC: 0.85, ExpectedIR: 1.08, ExpectedAlpha: 0.086},
	{Name: "Term Structure Arb", IC: 0.12, Breadth: 52, TC: 0.75, ExpectedIR: 0.65, ExpectedAlpha: 0.065},
}

// Strategies returns a copy of the strategy table.
func Strategies() []Strategy {
	return append([]Strategy(nil), strategies...)
}

// FundamentalLaw is IR = IC * sqrt(breadth) * TC.
func FundamentalLaw(ic, breadth, tc float64) float64 {
	return ic * math.Sqrt(breadth) * tc
}

// bookThousands converts an alpha percentage into $K on a $10M book.
const bookThousands = 10_000

// Projection is the interactive fundamental-law calculator.
type Projection struct {
	IC      float64 `json:"ic"`
	Breadth float64 `json:"breadth"`
	TC      float64 `json:"tc"`
	RiskPct float64 `json:"riskPct"`
}

// ProjectionResult is the calculator output.
type ProjectionResult struct {
	Projection
	ExpectedIR       float64 `json:"expectedIR"`
	ExpectedAlphaPct float64 `json:"expectedAlphaPct"`
	ValueAddedK      float64 `json:"valueAddedK"`
}

// Validate checks the calculator inputs.
func (p Projection) Validate() error {
	var errs []error
	if !isFinite(p.IC) || p.IC < -1 || p.IC > 1 {
		errs = append(errs, fmt.Errorf("ic must be within [-1, 1], got %v", p.IC))
	}
	if !isFinite(p.Breadth) || p.Breadth < 0 {
		errs = append(errs, fmt.Errorf("breadth must be non-negative, got %v", p.Breadth))
	}
	if !isFinite(p.TC) || p.TC < 0 || p.TC > 1 {
		errs = append(errs, fmt.Errorf("tc must be within [0, 1], got %v", p.TC))
	}
	if !isFinite(p.RiskPct) || p.RiskPct < 0 {
		errs = append(errs, fmt.Errorf("risk must be non-negative, got %v", p.RiskPct))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// Evaluate applies the fundamental law and scales it by active risk.
func (p Projection) Evaluate() (ProjectionResult, error) {
	if err := p.Validate(); err != nil {
		return ProjectionResult{}, err
	}
	ir := FundamentalLaw(p.IC, p.Breadth, p.TC)
	alpha := ir * p.RiskPct
	return ProjectionResult{
		Projection:       p,
		ExpectedIR:       ir,
		ExpectedAlphaPct: alpha,
		ValueAddedK:      alpha * bookThousands,
	}, nil
}

// Feature is one ML model input with its importance score.
type Feature struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
	Category   string  `json:"category"`
}

var features = []Feature{
	{Feature: "ETF_Premium", Importance: 0.2003, Category: "Microstructure"},
	{Feature: "Term_Structure_Slope", Importance: 0.1551, Category: "Vol"},
	{Feature: "VIX_Level", Importance: 0.1272, Category: "Vol"},
	{Feature: "VPIN_Toxicity", Importance: 0.1226, Category: "Microstructure"},
	{Feature: "Order_Imbalance", Importance: 0.0985, Category: "Microstructure"},
	{Feature: "Realized_Vol_20D", Importance: 0.0876, Category: "Vol"},
	{Feature: "Market_Beta", Importance: 0.0654, Category: "Risk Factor"},
	{Feature: "Momentum_5D", Importance: 0.0543, Category: "Risk Factor"},
	{Feature: "Volume_Ratio", Importance: 0.0432, Category: "Microstructure"},
	{Feature: "Spread_Width", Importance: 0.0358, Category: "Microstructure"},
}

// Features returns the feature importance table, most important first.
func Features() []Feature {
	return append([]Feature(nil), features...)
}

// CategoryImportance is the summed importance of one feature category.
type CategoryImportance struct {
	Category   string  `json:"category"`
	Importance float64 `json:"importance"`
}

// ImportanceByCategory sums importance per category, largest first.
func ImportanceByCategory(fs []Feature) []CategoryImportance {
	totals := make(map[string]float64)
	for _, f := range fs {
		totals[f.Category] += f.Importance
	}
	out := make([]CategoryImportance, 0, len(totals))
	for cat, imp := range totals {
		out = append(out, CategoryImportance{Category: cat, Importance: imp})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Importance == out[j].Importance {
			return out[i].Category < out[j].Category
		}
		return out[i].Importance > out[j].Importance
	})
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
