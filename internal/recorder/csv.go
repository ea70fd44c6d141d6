package recorder

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"GoldTrack/internal/model"
)

var csvHeader = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// CSVRecorder writes the price series to a flat CSV file, date first,
// one row per trading day. The file is overwritten on each run.
type CSVRecorder struct {
	Path string
}

// NewCSVRecorder creates a recorder writing to the given path.
func NewCSVRecorder(path string) *CSVRecorder {
	return &CSVRecorder{Path: path}
}

func (r *CSVRecorder) Record(series *model.PriceSeries) error {
	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("export csv to %s: %w", r.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("export csv: write header: %w", err)
	}
	for _, b := range series.Bars {
		record := []string{
			b.Date.Format("2006-01-02"),
			formatPrice(b.Open),
			formatPrice(b.High),
			formatPrice(b.Low),
			formatPrice(b.Close),
			strconv.FormatFloat(b.Volume, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("export csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export csv to %s: %w", r.Path, err)
	}
	return nil
}

func (r *CSVRecorder) Close() error { return nil }

// formatPrice uses the shortest representation that round-trips exactly.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ReadCSV reads bars back from a CSV export. Columns are located by header
// name so column order does not matter.
func ReadCSV(r io.Reader) ([]model.Bar, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(map[string]int)
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range []string{"date", "open", "high", "low", "close"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var bars []model.Bar
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		date, err := time.ParseInLocation("2006-01-02", record[idx["date"]], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", record[idx["date"]], err)
		}
		b := model.Bar{Date: date}
		if b.Open, err = strconv.ParseFloat(record[idx["open"]], 64); err != nil {
			return nil, fmt.Errorf("parse open: %w", err)
		}
		if b.High, err = strconv.ParseFloat(record[idx["high"]], 64); err != nil {
			return nil, fmt.Errorf("parse high: %w", err)
		}
		if b.Low, err = strconv.ParseFloat(record[idx["low"]], 64); err != nil {
			return nil, fmt.Errorf("parse low: %w", err)
		}
		if b.Close, err = strconv.ParseFloat(record[idx["close"]], 64); err != nil {
			return nil, fmt.Errorf("parse close: %w", err)
		}
		if vi, ok := idx["volume"]; ok && vi < len(record) {
			b.Volume, _ = strconv.ParseFloat(record[vi], 64)
		}
		bars = append(bars, b)
	}
	return bars, nil
}
