package export

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"voldash/internal/series"
)

// writeParquet writes the dataset with the schema derived from its record type.
func writeParquet(w io.Writer, s series.Series) error {
	switch s.Domain {
	case series.DomainETFArb:
		return writeRows[series.ETFArbRecord](w, s)
	case series.DomainAlphaFactors:
		return writeRows[series.AlphaFactorRecord](w, s)
	case series.DomainGlobalDislocations:
		return writeRows[series.DislocationRecord](w, s)
	case series.DomainVarianceSwaps:
		return writeRows[series.VarianceSwapRecord](w, s)
	case series.DomainDividendFutures:
		return writeRows[series.DividendFutureRecord](w, s)
	case series.DomainVIXTerm:
		return writeRows[series.VIXTermRecord](w, s)
	case series.DomainVolForecasts:
		return writeRows[series.VolForecastRecord](w, s)
	case series.DomainDynamicHedging:
		return writeRows[series.HedgingRecord](w, s)
	case series.DomainOrderFlowToxicity:
		return writeRows[series.ToxicityRecord](w, s)
	default:
		return fmt.Errorf("%w: unknown domain %q", series.ErrInvalidParameter, s.Domain)
	}
}

func writeRows[T series.Record](w io.Writer, s series.Series) error {
	rows := make([]T, 0, s.Len())
	for i, rec := range s.Records {
		row, ok := rec.(T)
		if !ok {
			return fmt.Errorf("%w: record %d of %s has type %T", series.ErrInvalidParameter, i, s.Domain, rec)
		}
		rows = append(rows, row)
	}
	return parquet.Write(w, rows)
}
