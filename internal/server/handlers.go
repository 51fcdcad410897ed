package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"voldash/internal/dataset"
	"voldash/internal/reference"
	"voldash/internal/series"
)

type seriesResponse struct {
	Domain  series.Domain   `json:"domain"`
	Cadence series.Cadence  `json:"cadence"`
	Count   int             `json:"count"`
	Records []series.Record `json:"records"`
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"id":          s.table.ID(),
		"generatedAt": s.table.GeneratedAt().Format(time.RFC3339Nano),
		"domains":     s.table.Infos(),
	})
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	d, ok := s.domainParam(w, r)
	if !ok {
		return
	}
	first, hasFirst, err := countParam(r, "first")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	last, hasLast, err := countParam(r, "last")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var out series.Series
	switch {
	case hasFirst && hasLast:
		writeError(w, http.StatusBadRequest, errors.New("first and last are mutually exclusive"))
		return
	case hasFirst:
		out, err = s.table.Head(d, first)
	case hasLast:
		out, err = s.table.Tail(d, last)
	default:
		out, err = s.table.Series(d)
	}
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, seriesResponse{
		Domain:  out.Domain,
		Cadence: out.Cadence,
		Count:   out.Len(),
		Records: out.Records,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	d, ok := s.domainParam(w, r)
	if !ok {
		return
	}
	sum, err := s.table.Summary(d)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) domainParam(w http.ResponseWriter, r *http.Request) (series.Domain, bool) {
	d, err := series.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return "", false
	}
	return d, true
}

func countParam(r *http.Request, name string) (int, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, true, fmt.Errorf("%s must be a non-negative integer, got %q", name, raw)
	}
	return n, true, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dataset.ErrUnknownDomain):
		return http.StatusNotFound
	case errors.Is(err, series.ErrInvalidParameter), errors.Is(err, reference.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleStrategies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"strategies": reference.Strategies()})
}

func handleFeatures(w http.ResponseWriter, _ *http.Request) {
	features := reference.Features()
	writeJSON(w, http.StatusOK, map[string]any{
		"features":   features,
		"byCategory": reference.ImportanceByCategory(features),
	})
}

func handleGreeks(w http.ResponseWriter, _ *http.Request) {
	positions := reference.PortfolioGreeks()
	writeJSON(w, http.StatusOK, map[string]any{
		"positions":   positions,
		"totals":      reference.TotalGreeks(positions),
		"vrpScenario": reference.VRPSensitivity(positions, reference.DefaultVRPShifts),
	})
}

func handleVIXCurve(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"curve": reference.VIXCurve()})
}

func handleVolSurface(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, reference.DefaultVolSurface())
}

func handleFundamentalLaw(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var p reference.Projection
	for _, field := range []struct {
		name string
		dst  *float64
	}{
		{"ic", &p.IC},
		{"breadth", &p.Breadth},
		{"tc", &p.TC},
		{"risk", &p.RiskPct},
	} {
		raw := q.Get(field.name)
		if raw == "" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %s is required", reference.ErrInvalidInput, field.name))
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %s: %v", reference.ErrInvalidInput, field.name, err))
			return
		}
		*field.dst = v
	}
	res, err := p.Evaluate()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
