package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"voldash/internal/series"
)

// Source is the read side of a snapshot.
type Source interface {
	Domains() []series.Domain
	Series(d series.Domain) (series.Series, error)
}

// WriteSeries encodes one dataset to w. Precision only affects CSV.
func WriteSeries(w io.Writer, s series.Series, format Format, precision int) error {
	switch format {
	case JSONL:
		return writeJSONL(w, s)
	case CSV:
		return writeCSV(w, s, precision)
	case Parquet:
		return writeParquet(w, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Dir writes <domain>.<ext> for every dataset and format and returns the paths written.
func Dir(dir string, src Source, formats []Format, precision int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	var written []string
	for _, d := range src.Domains() {
		s, err := src.Series(d)
		if err != nil {
			return written, err
		}
		for _, f := range formats {
			path := filepath.Join(dir, d.String()+"."+f.Ext())
			if err := writeFile(path, s, f, precision); err != nil {
				return written, fmt.Errorf("%s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}

func writeFile(path string, s series.Series, f Format, precision int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSeries(file, s, f, precision); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// writeJSONL emits one record object per line.
func writeJSONL(w io.Writer, s series.Series) error {
	enc := json.NewEncoder(w)
	for _, rec := range s.Records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeCSV emits a header row in field order followed by one row per record.
func writeCSV(w io.Writer, s series.Series, precision int) error {
	if precision < 0 {
		return fmt.Errorf("%w: precision must be non-negative, got %d", series.ErrInvalidParameter, precision)
	}
	cw := csv.NewWriter(w)
	if cols := s.Columns(); cols != nil {
		if err := cw.Write(cols); err != nil {
			return err
		}
	}
	row := make([]string, 0, len(s.Columns()))
	for _, rec := range s.Records {
		row = row[:0]
		for _, f := range rec.Fields() {
			row = append(row, formatValue(f.Value, int32(precision)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatValue(v any, precision int32) string {
	switch x := v.(type) {
	case float64:
		return decimal.NewFromFloat(x).StringFixed(precision)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
