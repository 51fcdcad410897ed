package export

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"voldash/internal/dataset"
	"voldash/internal/series"
)

func dislocations() series.Series {
	return series.Series{
		Domain:  series.DomainGlobalDislocations,
		Cadence: series.Daily,
		Records: []series.Record{
			series.DislocationRecord{Date: "2024-01-01", USRealizedVol: 18.123456789, EuropeRealizedVol: 20, AsiaRealizedVol: 22.5, CrossRegionCorrelation: 0.71, DislocationScore: 1.2, ArbitrageOpportunity: false},
			series.DislocationRecord{Date: "2024-01-02", USRealizedVol: 19, EuropeRealizedVol: 24, AsiaRealizedVol: 21, CrossRegionCorrelation: 0.64, DislocationScore: 1.8, ArbitrageOpportunity: true},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	require.Equal(t, CSV, f)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	fs, err := ParseFormats([]string{"jsonl", "parquet"})
	require.NoError(t, err)
	require.Equal(t, []Format{JSONL, Parquet}, fs)
	_, err = ParseFormats([]string{"jsonl", "yaml"})
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, dislocations(), CSV, 3))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"date", "usRealizedVol", "europeRealizedVol", "asiaRealizedVol", "crossRegionCorrelation", "dislocationScore", "arbitrageOpportunity"}, rows[0])
	require.Equal(t, []string{"2024-01-01", "18.123", "20.000", "22.500", "0.710", "1.200", "false"}, rows[1])
	require.Equal(t, "true", rows[2][6])

	err = WriteSeries(&buf, dislocations(), CSV, -1)
	require.ErrorIs(t, err, series.ErrInvalidParameter)
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, dislocations(), JSONL, 0))

	scanner := bufio.NewScanner(&buf)
	var lines []map[string]any
	for scanner.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m))
		lines = append(lines, m)
	}
	require.Len(t, lines, 2)
	require.Equal(t, "2024-01-02", lines[1]["date"])
	require.Equal(t, true, lines[1]["arbitrageOpportunity"])
	require.NotContains(t, lines[0], "At")
}

func TestWriteParquetReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, dislocations(), Parquet, 0))

	rows, err := parquet.Read[series.DislocationRecord](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "2024-01-01", rows[0].Date)
	require.InDelta(t, 18.123456789, rows[0].USRealizedVol, 1e-12)
	require.True(t, rows[1].ArbitrageOpportunity)
}

func TestWriteParquetRejectsMismatchedRecords(t *testing.T) {
	s := dislocations()
	s.Domain = series.DomainVIXTerm
	err := WriteSeries(&bytes.Buffer{}, s, Parquet, 0)
	require.ErrorIs(t, err, series.ErrInvalidParameter)

	err = WriteSeries(&bytes.Buffer{}, s, Format("xml"), 0)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDirWritesEveryDomainAndFormat(t *testing.T) {
	lengths := map[series.Domain]int{}
	for _, d := range series.Domains() {
		lengths[d] = 4
	}
	table, err := dataset.Build(context.Background(), series.NewGenerator(series.WithSeed(5)), lengths, zerolog.Nop())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "out")
	paths, err := Dir(dir, table, []Format{JSONL, CSV, Parquet}, 4)
	require.NoError(t, err)
	require.Len(t, paths, 3*len(series.Domains()))

	for _, d := range series.Domains() {
		for _, ext := range []string{"jsonl", "csv", "parquet"} {
			info, err := os.Stat(filepath.Join(dir, d.String()+"."+ext))
			require.NoError(t, err)
			require.Positive(t, info.Size())
		}
	}

	rows, err := parquet.ReadFile[series.DividendFutureRecord](filepath.Join(dir, "dividendFutures.parquet"))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, "2024-Q1", rows[0].Quarter)
}
