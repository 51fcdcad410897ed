package dataset

import (
	"fmt"
	"math"

	"voldash/internal/series"
)

// Stats aggregates one numeric field.
type Stats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Summary is the panel view of a dataset: size, period range and per-field aggregates.
type Summary struct {
	Domain      series.Domain             `json:"domain"`
	Count       int                       `json:"count"`
	First       string                    `json:"first,omitempty"`
	Last        string                    `json:"last,omitempty"`
	Numeric     map[string]Stats          `json:"numeric"`
	Categorical map[string]map[string]int `json:"categorical"`
}

// Summarize computes mean/min/max for numeric fields and value counts for
// string and bool fields. The leading period label is reported as First/Last only.
func Summarize(s series.Series) Summary {
	sum := Summary{
		Domain:      s.Domain,
		Count:       s.Len(),
		Numeric:     map[string]Stats{},
		Categorical: map[string]map[string]int{},
	}
	if s.Len() == 0 {
		return sum
	}
	sum.First = label(s.Records[0])
	sum.Last = label(s.Records[s.Len()-1])

	totals := map[string]float64{}
	for _, rec := range s.Records {
		for _, f := range rec.Fields()[1:] {
			switch v := f.Value.(type) {
			case float64:
				st, seen := sum.Numeric[f.Name]
				if !seen {
					st = Stats{Min: math.Inf(1), Max: math.Inf(-1)}
				}
				st.Min = math.Min(st.Min, v)
				st.Max = math.Max(st.Max, v)
				sum.Numeric[f.Name] = st
				totals[f.Name] += v
			case string, bool:
				counts := sum.Categorical[f.Name]
				if counts == nil {
					counts = map[string]int{}
					sum.Categorical[f.Name] = counts
				}
				counts[fmt.Sprint(v)]++
			}
		}
	}
	for name, st := range sum.Numeric {
		st.Mean = totals[name] / float64(sum.Count)
		sum.Numeric[name] = st
	}
	return sum
}

func label(rec series.Record) string {
	fields := rec.Fields()
	if len(fields) == 0 {
		return ""
	}
	return fmt.Sprint(fields[0].Value)
}
