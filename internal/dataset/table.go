// Package dataset holds the generated snapshot that every consumer reads from.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"voldash/internal/metrics"
	"voldash/internal/series"
)

// ErrUnknownDomain is returned when a table has no dataset for the requested key.
var ErrUnknownDomain = errors.New("unknown domain")

// Table is an immutable snapshot of every generated dataset.
// It is safe for concurrent readers once Build returns.
type Table struct {
	id          uuid.UUID
	generatedAt time.Time
	order       []series.Domain
	data        map[series.Domain]series.Series
}

// Info describes one dataset of the snapshot.
type Info struct {
	Domain  series.Domain  `json:"domain"`
	Cadence series.Cadence `json:"cadence"`
	Count   int            `json:"count"`
}

// Build generates every domain in order. Lengths missing from the map use
// the domain default. Any failure discards the partial table.
func Build(ctx context.Context, gen *series.Generator, lengths map[series.Domain]int, log zerolog.Logger) (*Table, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil generator", series.ErrInvalidParameter)
	}
	t := &Table{
		id:    uuid.New(),
		order: series.Domains(),
		data:  make(map[series.Domain]series.Series, len(series.Domains())),
	}
	for _, d := range t.order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, ok := lengths[d]
		if !ok {
			n = d.DefaultLength()
		}
		started := time.Now()
		s, err := gen.Generate(d, n)
		if err != nil {
			log.Error().Err(err).Str("domain", d.String()).Int("length", n).Msg("generation failed")
			return nil, err
		}
		elapsed := time.Since(started)
		metrics.GenerationSeconds.WithLabelValues(d.String()).Observe(elapsed.Seconds())
		metrics.RecordsGenerated.WithLabelValues(d.String()).Add(float64(s.Len()))
		log.Debug().Str("domain", d.String()).Int("records", s.Len()).Dur("elapsed", elapsed).Msg("dataset generated")
		t.data[d] = s
	}
	t.generatedAt = time.Now().UTC()
	log.Info().Str("snapshot", t.id.String()).Int("domains", len(t.order)).Msg("snapshot built")
	return t, nil
}

// ID identifies this snapshot.
func (t *Table) ID() string { return t.id.String() }

// GeneratedAt is when Build finished.
func (t *Table) GeneratedAt() time.Time { return t.generatedAt }

// Domains lists the datasets in generation order.
func (t *Table) Domains() []series.Domain {
	out := make([]series.Domain, len(t.order))
	copy(out, t.order)
	return out
}

// Infos describes every dataset in generation order.
func (t *Table) Infos() []Info {
	out := make([]Info, 0, len(t.order))
	for _, d := range t.order {
		s := t.data[d]
		out = append(out, Info{Domain: d, Cadence: s.Cadence, Count: s.Len()})
	}
	return out
}

// Series returns a copy of the dataset for d.
func (t *Table) Series(d series.Domain) (series.Series, error) {
	return t.slice(d, 0, -1)
}

// Head returns the first n periods of d, or all of them when n exceeds the length.
func (t *Table) Head(d series.Domain, n int) (series.Series, error) {
	if n < 0 {
		return series.Series{}, fmt.Errorf("%w: head length must be non-negative, got %d", series.ErrInvalidParameter, n)
	}
	return t.slice(d, 0, n)
}

// Tail returns the last n periods of d, or all of them when n exceeds the length.
func (t *Table) Tail(d series.Domain, n int) (series.Series, error) {
	if n < 0 {
		return series.Series{}, fmt.Errorf("%w: tail length must be non-negative, got %d", series.ErrInvalidParameter, n)
	}
	s, ok := t.data[d]
	if !ok {
		return series.Series{}, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}
	from := s.Len() - n
	if from < 0 {
		from = 0
	}
	return t.slice(d, from, -1)
}

// Summary summarizes the dataset for d.
func (t *Table) Summary(d series.Domain) (Summary, error) {
	s, ok := t.data[d]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}
	return Summarize(s), nil
}

// slice copies records [from, to); to < 0 means through the end.
func (t *Table) slice(d series.Domain, from, to int) (series.Series, error) {
	s, ok := t.data[d]
	if !ok {
		return series.Series{}, fmt.Errorf("%w: %q", ErrUnknownDomain, d)
	}
	if to < 0 || to > s.Len() {
		to = s.Len()
	}
	recs := make([]series.Record, to-from)
	copy(recs, s.Records[from:to])
	return series.Series{Domain: s.Domain, Cadence: s.Cadence, Records: recs}, nil
}
