package series

import (
	"fmt"
	"math"
	"time"
)

// Generator builds datasets from a shared random source.
// It is not safe for concurrent use: every call advances the source.
type Generator struct {
	src     Source
	anchors map[Domain]time.Time
}

// Option configures Generator construction parameters.
type Option func(*Generator)

// WithSource injects the random stream, e.g. a seeded source in tests.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithSeed is shorthand for WithSource(NewSource(seed)).
func WithSeed(seed int64) Option {
	return WithSource(NewSource(seed))
}

// WithAnchor moves the first period of a dataset.
func WithAnchor(d Domain, at time.Time) Option {
	return func(g *Generator) {
		if d.Valid() && !at.IsZero() {
			g.anchors[d] = at.UTC()
		}
	}
}

// NewGenerator returns a generator seeded from the clock unless a source is injected.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{anchors: make(map[Domain]time.Time)}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = clockSource()
	}
	return g
}

// Anchor returns the first period used for d.
func (g *Generator) Anchor(d Domain) time.Time {
	if at, ok := g.anchors[d]; ok {
		return at
	}
	return d.DefaultAnchor()
}

// Generate produces n periods of any domain.
func (g *Generator) Generate(d Domain, n int) (Series, error) {
	switch d {
	case DomainETFArb:
		recs, err := g.ETFArbitrage(n)
		return wrap(d, recs, err)
	case DomainAlphaFactors:
		recs, err := g.AlphaFactors(n)
		return wrap(d, recs, err)
	case DomainGlobalDislocations:
		recs, err := g.GlobalDislocations(n)
		return wrap(d, recs, err)
	case DomainVarianceSwaps:
		recs, err := g.VarianceSwaps(n)
		return wrap(d, recs, err)
	case DomainDividendFutures:
		recs, err := g.DividendFutures(n)
		return wrap(d, recs, err)
	case DomainVIXTerm:
		recs, err := g.VIXTermStructure(n)
		return wrap(d, recs, err)
	case DomainVolForecasts:
		recs, err := g.VolatilityForecasts(n)
		return wrap(d, recs, err)
	case DomainDynamicHedging:
		recs, err := g.DynamicHedging(n)
		return wrap(d, recs, err)
	case DomainOrderFlowToxicity:
		recs, err := g.OrderFlowToxicity(n)
		return wrap(d, recs, err)
	default:
		return Series{}, fmt.Errorf("%w: unknown domain %q", ErrInvalidParameter, d)
	}
}

func wrap[T Record](d Domain, recs []T, err error) (Series, error) {
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", d, err)
	}
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = rec
	}
	return Series{Domain: d, Cadence: d.Cadence(), Records: out}, nil
}

// build is the routine shared by every domain: step the clock from the anchor,
// let row fill the fields for period i, and reject non-finite output.
func build[T Record](g *Generator, d Domain, n int, row func(i int, at time.Time, label string) T) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: length must be non-negative, got %d", ErrInvalidParameter, n)
	}
	cadence := d.Cadence()
	anchor := g.Anchor(d)
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		at := cadence.Step(anchor, i)
		rec := row(i, at, cadence.Label(at))
		if err := checkFinite(rec); err != nil {
			return nil, fmt.Errorf("period %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func checkFinite(rec Record) error {
	for _, f := range rec.Fields() {
		v, ok := f.Value.(float64)
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: field %s is %v", ErrGenerationFailure, f.Name, v)
		}
	}
	return nil
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return Noise{Lo: lo, Hi: hi}.Draw(g.src)
}

func (g *Generator) level(l Level, i int) float64 {
	return l.At(i, g.src)
}
